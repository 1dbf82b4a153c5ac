// SPDX-License-Identifier: MPL-2.0

// Copyright (C) 2024-2025 SUSE LLC
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package assert provides a minimal internal assertion helper.
package assert

import "fmt"

// Assert panics with msg if cond is false. It exists to flag programmer
// errors (invariant violations reached through incorrect API usage, such
// as calling an operation that requires canonical input on a non-canonical
// string) as opposed to ordinary runtime conditions, which are always
// returned as errors.
func Assert(cond bool, msg string) {
	if !cond {
		panic(fmt.Sprintf("pathkit: assertion failed: %s", msg))
	}
}

// Assertf is like Assert but with a format string.
func Assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("pathkit: assertion failed: %s", fmt.Sprintf(format, args...)))
	}
}
