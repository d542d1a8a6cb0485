// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package version holds variables for generating version information.
package version

// Version is this binary's version. Set with linker flags when building the greeter.
var Version = "v0.0.0"

// Platform is the operating system and architecture the binary was built for. Set with linker flags.
var Platform = "unknown"
