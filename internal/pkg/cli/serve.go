// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"

	"github.com/blitzytest02/12nov02/cmd/greeter/template"
	"github.com/blitzytest02/12nov02/internal/pkg/cli/group"
	"github.com/blitzytest02/12nov02/internal/pkg/server"
	"github.com/blitzytest02/12nov02/internal/pkg/term/log"
	"github.com/spf13/cobra"
)

type serveOpts struct {
	srv httpServer
	out logger
}

func newServeOpts() *serveOpts {
	return &serveOpts{
		srv: server.New(),
		out: log.New(log.OutputWriter),
	}
}

// Validate is a no-op for this command.
func (o *serveOpts) Validate() error {
	return nil
}

// Execute binds the listening socket, reports the bound port on standard output, and serves requests.
// It only returns if the socket can't be bound or stops accepting connections.
func (o *serveOpts) Execute() error {
	if err := o.srv.Listen(); err != nil {
		if server.IsAddrInUse(err) {
			return &errPortInUse{port: server.Port, err: err}
		}
		return fmt.Errorf("start server: %w", err)
	}
	o.out.Infof("Server listening on port %d\n", o.srv.Port())
	if err := o.srv.Serve(); err != nil {
		return fmt.Errorf("serve requests: %w", err)
	}
	return nil
}

// BuildServeCmd builds the command for serving the greeter routes.
func BuildServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the greeting routes on port 3000.",
		Long: fmt.Sprintf(`Serve the greeting routes on port %d.
The server runs until the process is stopped.`, server.Port),
		Example: `
  Start the server.
  /code $ greeter serve
  Ask for an evening greeting from another terminal.
  /code $ curl localhost:3000/evening`,
		Args: cobra.NoArgs,
		RunE: runCmdE(func(cmd *cobra.Command, args []string) error {
			return run(newServeOpts())
		}),
		Annotations: map[string]string{
			"group": group.Run,
		},
	}
	cmd.SetUsageTemplate(template.Usage)
	return cmd
}
