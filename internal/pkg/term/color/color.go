// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package color toggles and applies terminal colors for the greeter's output.
package color

import (
	"os"
	"strconv"

	"github.com/fatih/color"
)

// EnvVar forces color output on or off when set to a boolean.
const EnvVar = "COLOR"

var lookupEnv = os.LookupEnv

var (
	userInput = color.New(color.FgHiCyan)
	code      = color.New(color.FgHiMagenta)
)

// DisableColorBasedOnEnvVar overrides the terminal detection of the color library when
// COLOR holds a boolean. Unset or unparsable values leave the detected setting alone.
func DisableColorBasedOnEnvVar() {
	value, ok := lookupEnv(EnvVar)
	if !ok {
		return
	}
	enabled, err := strconv.ParseBool(value)
	if err != nil {
		return
	}
	color.NoColor = !enabled
}

// HighlightUserInput colors a value the user can change, such as the port, and returns it.
func HighlightUserInput(s string) string {
	return userInput.Sprint(s)
}

// HighlightCode wraps the string with the ` character, colors it as a command, and returns it.
func HighlightCode(s string) string {
	return code.Sprintf("`%s`", s)
}
