// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package log

import (
	"fmt"
	"io"
)

// Logger writes lines of output to an io.Writer.
type Logger struct {
	w io.Writer
}

// New creates a new Logger.
func New(w io.Writer) *Logger {
	return &Logger{
		w: w,
	}
}

// Infof formats according to the specifier, and writes the message.
func (l *Logger) Infof(format string, args ...interface{}) {
	fmt.Fprintf(l.w, format, args...)
}
