// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"strconv"

	"github.com/blitzytest02/12nov02/internal/pkg/term/color"
)

type errPortInUse struct {
	port int
	err  error
}

func (e *errPortInUse) Error() string {
	return fmt.Sprintf("port %d is already in use: %v", e.port, e.err)
}

func (e *errPortInUse) Unwrap() error {
	return e.err
}

// RecommendActions returns recommended actions to be taken after the error.
func (e *errPortInUse) RecommendActions() string {
	return fmt.Sprintf("Stop the process bound to port %s, for example another %s, and try again.",
		color.HighlightUserInput(strconv.Itoa(e.port)), color.HighlightCode("greeter serve"))
}
