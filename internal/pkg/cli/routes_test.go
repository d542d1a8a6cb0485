// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"strings"
	"testing"

	"github.com/blitzytest02/12nov02/internal/pkg/server"
	"github.com/stretchr/testify/require"
)

func TestListRoutesOpts_Execute(t *testing.T) {
	testCases := map[string]struct {
		inJSON   bool
		inRoutes []server.Route

		wantedContent string
	}{
		"json output": {
			inJSON: true,
			inRoutes: []server.Route{
				{Method: "GET", Path: "/", Body: "Hello world"},
				{Method: "GET", Path: "/evening", Body: "Good evening"},
			},

			wantedContent: `{"routes":[{"method":"GET","path":"/","body":"Hello world"},{"method":"GET","path":"/evening","body":"Good evening"}]}` + "\n",
		},
		"human output": {
			inRoutes: []server.Route{
				{Method: "GET", Path: "/", Body: "Hello world"},
				{Method: "GET", Path: "/evening", Body: "Good evening"},
			},

			wantedContent: "Method      Path        Response\n" +
				"------      ----        --------\n" +
				"GET         /           Hello world\n" +
				"GET         /evening    Good evening\n" +
				"\n2 routes served on port 3000.\n",
		},
		"columns widen to fit longer cells": {
			inRoutes: []server.Route{
				{Method: "GET", Path: "/a-much-longer-greeting", Body: "Hi"},
			},

			wantedContent: "Method      Path                     Response\n" +
				"------      ----                     --------\n" +
				"GET         /a-much-longer-greeting  Hi\n" +
				"\n1 route served on port 3000.\n",
		},
		"human output with a single route": {
			inRoutes: []server.Route{
				{Method: "GET", Path: "/", Body: "Hello world"},
			},

			wantedContent: "Method      Path        Response\n" +
				"------      ----        --------\n" +
				"GET         /           Hello world\n" +
				"\n1 route served on port 3000.\n",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			// GIVEN
			b := &strings.Builder{}
			opts := &listRoutesOpts{
				listRoutesVars: listRoutesVars{
					shouldOutputJSON: tc.inJSON,
				},
				routes: func() []server.Route {
					return tc.inRoutes
				},
				w: b,
			}

			// WHEN
			err := opts.Execute()

			// THEN
			require.NoError(t, err)
			require.Equal(t, tc.wantedContent, b.String())
		})
	}
}

func TestBuildRoutesCmd(t *testing.T) {
	cmd := BuildRoutesCmd()

	require.Equal(t, "routes", cmd.Use)
	require.NotNil(t, cmd.Flags().Lookup(jsonFlag))
}
