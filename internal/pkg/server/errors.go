// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"errors"
	"fmt"
	"syscall"
)

// ErrListen is returned when the listening socket can't be bound.
type ErrListen struct {
	Addr string
	err  error
}

func (e *ErrListen) Error() string {
	return fmt.Sprintf("listen on %s: %v", e.Addr, e.err)
}

// Unwrap returns the underlying operating system error.
func (e *ErrListen) Unwrap() error {
	return e.err
}

// IsAddrInUse returns true if the error is caused by another process already bound to the address.
func IsAddrInUse(err error) bool {
	return errors.Is(err, syscall.EADDRINUSE)
}
