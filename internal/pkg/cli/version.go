// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"

	"github.com/blitzytest02/12nov02/cmd/greeter/template"
	"github.com/blitzytest02/12nov02/internal/pkg/cli/group"
	"github.com/blitzytest02/12nov02/internal/pkg/version"
	"github.com/spf13/cobra"
)

// BuildVersionCmd builds the command for displaying the version.
func BuildVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number.",
		Args:  cobra.NoArgs,
		RunE: runCmdE(func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "version: %s, built for %s\n", version.Version, version.Platform)
			return nil
		}),
		Annotations: map[string]string{
			"group": group.Settings,
		},
	}
	cmd.SetUsageTemplate(template.Usage)
	return cmd
}
