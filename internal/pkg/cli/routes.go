// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/blitzytest02/12nov02/cmd/greeter/template"
	"github.com/blitzytest02/12nov02/internal/pkg/cli/group"
	"github.com/blitzytest02/12nov02/internal/pkg/server"
	"github.com/blitzytest02/12nov02/internal/pkg/term/log"
	"github.com/dustin/go-humanize/english"
	"github.com/spf13/cobra"
)

const (
	// Display settings.
	minCellWidth           = 12  // minimum number of characters in a table's cell.
	tabWidth               = 4   // number of characters in between columns.
	cellPaddingWidth       = 2   // number of padding characters added by default to a cell.
	paddingChar            = ' ' // character in between columns.
	noAdditionalFormatting = 0
)

type listRoutesVars struct {
	shouldOutputJSON bool
}

type listRoutesOpts struct {
	listRoutesVars

	routes func() []server.Route
	w      io.Writer
}

// routesJSONOutput is the output struct for route list.
type routesJSONOutput struct {
	Routes []server.Route `json:"routes"`
}

func newListRoutesOpts(vars listRoutesVars) *listRoutesOpts {
	return &listRoutesOpts{
		listRoutesVars: vars,

		routes: server.Routes,
		w:      log.OutputWriter,
	}
}

// Validate is a no-op for this command.
func (o *listRoutesOpts) Validate() error {
	return nil
}

// Execute writes the served routes in a human- or machine-readable format.
func (o *listRoutesOpts) Execute() error {
	routes := o.routes()
	if o.shouldOutputJSON {
		b, err := json.Marshal(routesJSONOutput{Routes: routes})
		if err != nil {
			return fmt.Errorf("marshal routes: %w", err)
		}
		fmt.Fprintf(o.w, "%s\n", b)
		return nil
	}
	o.humanOutput(routes)
	return nil
}

func (o *listRoutesOpts) humanOutput(routes []server.Route) {
	writer := tabwriter.NewWriter(o.w, minCellWidth, tabWidth, cellPaddingWidth, paddingChar, noAdditionalFormatting)
	headers := []string{"Method", "Path", "Response"}
	fmt.Fprintf(writer, "%s\n", strings.Join(headers, "\t"))
	fmt.Fprintf(writer, "%s\n", strings.Join(underline(headers), "\t"))
	for _, route := range routes {
		fmt.Fprintf(writer, "%s\t%s\t%s\n", route.Method, route.Path, route.Body)
	}
	writer.Flush()
	fmt.Fprintf(o.w, "\n%s served on port %d.\n", english.Plural(len(routes), "route", ""), server.Port)
}

func underline(headings []string) []string {
	var lines []string
	for _, heading := range headings {
		lines = append(lines, strings.Repeat("-", len(heading)))
	}
	return lines
}

// BuildRoutesCmd builds the command for listing the routes the server responds to.
func BuildRoutesCmd() *cobra.Command {
	vars := listRoutesVars{}
	cmd := &cobra.Command{
		Use:   "routes",
		Short: "List the routes served by the greeter.",
		Example: `
  List the routes in a table.
  /code $ greeter routes
  List the routes as JSON.
  /code $ greeter routes --json`,
		Args: cobra.NoArgs,
		RunE: runCmdE(func(cmd *cobra.Command, args []string) error {
			return run(newListRoutesOpts(vars))
		}),
		Annotations: map[string]string{
			"group": group.Run,
		},
	}
	cmd.Flags().BoolVar(&vars.shouldOutputJSON, jsonFlag, false, jsonFlagDescription)
	cmd.SetUsageTemplate(template.Usage)
	return cmd
}
