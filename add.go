// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package prism

// Add returns a + b. On overflow the result wraps, as with Go's + operator.
func Add(a, b int) int {
	return a + b
}

// AddChecked returns a + b, or an *OverflowError if the sum does not fit
// in an int.
func AddChecked(a, b int) (int, error) {
	sum := a + b

	// overflow happened iff both operands share a sign that the sum does not
	if (a >= 0) == (b >= 0) && (sum >= 0) != (a >= 0) {
		return 0, &OverflowError{A: a, B: b}
	}

	return sum, nil
}
