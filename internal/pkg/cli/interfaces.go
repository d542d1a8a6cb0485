// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

// actionCommand is the interface that every command runs through.
type actionCommand interface {
	// Validate returns an error if a flag's value is invalid.
	Validate() error

	// Execute runs the command after collecting all required options.
	Execute() error
}

type httpServer interface {
	Listen() error
	Port() int
	Serve() error
}

type logger interface {
	Infof(format string, args ...interface{})
}
