// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package prism

import (
	"time"

	"github.com/xmidt-org/chronon"
)

// fakeNow creates a controllable now closure from the given FakeClock.
func fakeNow(fc *chronon.FakeClock) now {
	return func() time.Time {
		return fc.Now()
	}
}
