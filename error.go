// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package prism

import (
	"errors"
	"fmt"
)

// ErrOverflow indicates that an arithmetic result does not fit in an int.
var ErrOverflow = errors.New("integer overflow")

// OverflowError describes the operands of an addition that overflowed.
// It wraps ErrOverflow.
type OverflowError struct {
	A, B int
}

func (oe *OverflowError) Error() string {
	return fmt.Sprintf("%d + %d: %s", oe.A, oe.B, ErrOverflow)
}

func (oe *OverflowError) Unwrap() error {
	return ErrOverflow
}
