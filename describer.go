// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package prism

// Describer is implemented by types that can print a description of
// themselves. PrintDescription must not modify its receiver.
type Describer interface {
	PrintDescription()
}

// Describers is an aggregate Describer.
type Describers []Describer

// PrintDescription prints the description of each Describer in
// this aggregate, in order.
func (ds Describers) PrintDescription() {
	for _, d := range ds {
		d.PrintDescription()
	}
}

// DescribeAll prints the description of each Describer in order.
func DescribeAll(ds ...Describer) {
	Describers(ds).PrintDescription()
}
