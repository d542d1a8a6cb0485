// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package main contains the root command.
package main

import (
	"errors"
	"os"

	"github.com/blitzytest02/12nov02/cmd/greeter/template"
	"github.com/blitzytest02/12nov02/internal/pkg/cli"
	"github.com/blitzytest02/12nov02/internal/pkg/term/color"
	"github.com/blitzytest02/12nov02/internal/pkg/term/log"
	"github.com/blitzytest02/12nov02/internal/pkg/version"
	"github.com/spf13/cobra"
)

type actionRecommender interface {
	RecommendActions() string
}

func init() {
	color.DisableColorBasedOnEnvVar()
	cobra.EnableCommandSorting = false // Maintain the order in which we add commands.
}

func main() {
	cmd := buildRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Errorln(err.Error())
		var ac actionRecommender
		if errors.As(err, &ac) {
			log.Infoln(ac.RecommendActions())
		}
		os.Exit(1)
	}
}

func buildRootCmd() *cobra.Command {
	serveCmd := cli.BuildServeCmd()
	cmd := &cobra.Command{
		Use:   "greeter",
		Short: shortDescription,
		Long: `Serve static greetings over HTTP.
Running greeter without a command is the same as "greeter serve".`,
		Example: `
  Start the server on port 3000.
  /code $ greeter
  Displays the help menu for the "routes" command.
  /code $ greeter routes --help`,
		Args:          cobra.NoArgs,
		RunE:          serveCmd.RunE,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.SetOut(log.OutputWriter)
	cmd.SetErr(log.DiagnosticWriter)

	// Sets version for --version flag. Version command gives more detailed
	// version information.
	cmd.Version = version.Version
	cmd.SetVersionTemplate("greeter version: {{.Version}}\n")

	// NOTE: Order for each grouping below is significant in that it affects help menu output ordering.
	// "Run" command group.
	cmd.AddCommand(serveCmd)
	cmd.AddCommand(cli.BuildRoutesCmd())

	// "Settings" command group.
	cmd.AddCommand(cli.BuildVersionCmd())

	cmd.SetUsageTemplate(template.RootUsage)
	return cmd
}
