// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package color

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

func TestDisableColorBasedOnEnvVar(t *testing.T) {
	testCases := map[string]struct {
		inEnv     map[string]string
		inNoColor bool

		wantedNoColor bool
	}{
		"disables color when COLOR is false": {
			inEnv:         map[string]string{EnvVar: "false"},
			wantedNoColor: true,
		},
		"accepts any boolean spelling": {
			inEnv:         map[string]string{EnvVar: "0"},
			wantedNoColor: true,
		},
		"enables color when COLOR is true": {
			inEnv:         map[string]string{EnvVar: "TRUE"},
			inNoColor:     true,
			wantedNoColor: false,
		},
		"keeps the detected setting when COLOR is unset": {
			inEnv:         map[string]string{},
			inNoColor:     true,
			wantedNoColor: true,
		},
		"keeps the detected setting when COLOR is not a boolean": {
			inEnv:         map[string]string{EnvVar: "sometimes"},
			wantedNoColor: false,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			// GIVEN
			color.NoColor = tc.inNoColor
			lookupEnv = func(key string) (string, bool) {
				v, ok := tc.inEnv[key]
				return v, ok
			}

			// WHEN
			DisableColorBasedOnEnvVar()

			// THEN
			require.Equal(t, tc.wantedNoColor, color.NoColor)
		})
	}
}

func TestHighlight(t *testing.T) {
	color.NoColor = true

	require.Equal(t, "`greeter serve`", HighlightCode("greeter serve"))
	require.Equal(t, "3000", HighlightUserInput("3000"))
}
