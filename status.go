// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package prism

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrInvalidStatus indicates that a name did not correspond to any Status.
var ErrInvalidStatus = errors.New("invalid status")

// status is the closed set of tags behind a Status. Only this package
// can produce these values.
type status uint8

const (
	active status = iota
	inactive
	pending
)

// Status is the state of an entity. The only values of this type are
// StatusActive, StatusInactive, and StatusPending.
//
// The zero value is StatusActive.
type Status struct {
	s status
}

var (
	// StatusActive indicates an entity that is in use.
	StatusActive = Status{s: active}

	// StatusInactive indicates an entity that is not in use.
	StatusInactive = Status{s: inactive}

	// StatusPending indicates an entity waiting on a transition.
	StatusPending = Status{s: pending}
)

// Statuses returns each Status in declaration order.
func Statuses() []Status {
	return []Status{StatusActive, StatusInactive, StatusPending}
}

// StatusVisitor handles each Status variant. Adding a variant adds a method
// here, so every visitor must be revisited before the code compiles again.
type StatusVisitor interface {
	VisitActive()
	VisitInactive()
	VisitPending()
}

// Visit invokes the visitor method that corresponds to this Status.
func (s Status) Visit(v StatusVisitor) {
	switch s.s {
	case active:
		v.VisitActive()

	case inactive:
		v.VisitInactive()

	case pending:
		v.VisitPending()
	}
}

// nameVisitor captures the display name of a Status.
type nameVisitor struct {
	name string
}

func (nv *nameVisitor) VisitActive()   { nv.name = "Active" }
func (nv *nameVisitor) VisitInactive() { nv.name = "Inactive" }
func (nv *nameVisitor) VisitPending()  { nv.name = "Pending" }

// String returns the display name of this Status, e.g. "Active".
func (s Status) String() string {
	var nv nameVisitor
	s.Visit(&nv)
	return nv.name
}

// MarshalText produces the lower-case name of this Status.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(s.String())), nil
}

// UnmarshalText parses a Status name, ignoring case and surrounding space.
func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}

	*s = parsed
	return nil
}

// ParseStatus returns the Status with the given name. Matching is case-insensitive.
func ParseStatus(name string) (Status, error) {
	trimmed := strings.TrimSpace(name)
	for _, s := range Statuses() {
		if strings.EqualFold(trimmed, s.String()) {
			return s, nil
		}
	}

	return Status{}, fmt.Errorf("%w: [%s]", ErrInvalidStatus, name)
}

// statusPrinter writes the fixed console message for each variant.
type statusPrinter struct {
	w   io.Writer
	err error
}

func (sp *statusPrinter) println(msg string) {
	_, sp.err = fmt.Fprintln(sp.w, msg)
}

func (sp *statusPrinter) VisitActive()   { sp.println("Active") }
func (sp *statusPrinter) VisitInactive() { sp.println("Inactive") }
func (sp *statusPrinter) VisitPending()  { sp.println("Pending") }

// PrintStatus writes the message for s as a single line to w.
func PrintStatus(w io.Writer, s Status) error {
	sp := statusPrinter{w: w}
	s.Visit(&sp)
	return sp.err
}
