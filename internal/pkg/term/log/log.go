// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package log prints colored status messages to the terminal.
package log

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var errorSprintf = color.HiRedString

// Wrapper writers around standard error and standard output that work on windows.
var (
	DiagnosticWriter io.Writer = color.Error
	OutputWriter     io.Writer = color.Output
)

// Errorln prefixes the message with a red "✘ Error!", and writes to standard error with a new line.
func Errorln(args ...interface{}) {
	msg := fmt.Sprintf("%s %s", errorSprintf(errorPrefix), fmt.Sprint(args...))
	fmt.Fprintln(DiagnosticWriter, msg)
}

// Infoln writes the message to standard error with the default color and new line.
func Infoln(args ...interface{}) {
	fmt.Fprintln(DiagnosticWriter, args...)
}
