// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

// Long flag names.
const (
	jsonFlag = "json"
)

// Descriptions for flags.
const (
	jsonFlagDescription = "Optional. Output in JSON format."
)
