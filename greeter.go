// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package prism

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Greeter prints a fixed message and counts how many times Greet was called.
//
// A Greeter is not safe for concurrent use. It is meant to be owned by a
// single caller for its entire lifetime.
type Greeter struct {
	message string

	// count is the number of Greet invocations. It never decreases.
	count int

	// lastGreeted is the UTC time of the most recent Greet.
	lastGreeted time.Time

	out    io.Writer
	logger zerolog.Logger

	// now is the strategy used to get the current time.
	// by default, time.Now is used.
	now now
}

var _ Describer = (*Greeter)(nil)

// GreeterOption is a configurable option for tailoring a Greeter.
type GreeterOption interface {
	apply(*Greeter)
}

type greeterOptionFunc func(*Greeter)

func (f greeterOptionFunc) apply(g *Greeter) { f(g) }

// WithOutput sets the console a Greeter prints to. If unset or nil,
// os.Stdout is used.
func WithOutput(w io.Writer) GreeterOption {
	return greeterOptionFunc(func(g *Greeter) {
		if w == nil {
			w = os.Stdout
		}

		g.out = w
	})
}

// WithLogger sets the logger used for diagnostics. By default, a Greeter
// does not log.
func WithLogger(l zerolog.Logger) GreeterOption {
	return greeterOptionFunc(func(g *Greeter) {
		g.logger = l
	})
}

// NewGreeter constructs a Greeter for the given message. The returned
// Greeter has a count of zero.
func NewGreeter(message string, opts ...GreeterOption) *Greeter {
	g := &Greeter{
		message: message,
		out:     os.Stdout,
		logger:  zerolog.Nop(),
		now:     time.Now,
	}

	for _, o := range opts {
		o.apply(g)
	}

	return g
}

// Message returns the message this Greeter prints.
func (g *Greeter) Message() string {
	return g.message
}

// Count returns the number of times Greet has been called.
func (g *Greeter) Count() int {
	return g.count
}

// LastGreeted returns the UTC time of the most recent call to Greet. The
// zero time is returned if Greet has never been called.
func (g *Greeter) LastGreeted() time.Time {
	return g.lastGreeted
}

// println writes a line to the console. A Greeter's operations have no
// error result, so write failures are logged instead.
func (g *Greeter) println(line string) {
	if _, err := fmt.Fprintln(g.out, line); err != nil {
		g.logger.Error().Err(err).Str("message", g.message).Msg("console write failed")
	}
}

// Greet prints the message once and increments the count.
func (g *Greeter) Greet() {
	g.println(g.message)
	g.count++
	g.lastGreeted = g.now().UTC()

	g.logger.Debug().
		Int("count", g.count).
		Time("lastGreeted", g.lastGreeted).
		Msg("greeted")
}

// GreetMultiple prints the message times times, each line prefixed with its
// 1-based index, e.g. "2: Hello". If times is not positive, nothing is printed.
//
// Unlike Greet, this method does not change the count.
func (g *Greeter) GreetMultiple(times int) {
	for i := 1; i <= times; i++ {
		g.println(fmt.Sprintf("%d: %s", i, g.message))
	}
}

// Description returns the text that PrintDescription prints.
func (g *Greeter) Description() string {
	return "Greeter with message: " + g.message
}

// PrintDescription prints this Greeter's description.
func (g *Greeter) PrintDescription() {
	g.println(g.Description())
}
