// SPDX-License-Identifier: MPL-2.0

// Copyright (C) 2024-2025 SUSE LLC
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

//go:build !windows

// Package platform wraps the handful of raw OS calls the absolute
// resolver needs to read the current working directory. It is split by
// build tag between POSIX and Windows implementations.
package platform

import "golang.org/x/sys/unix"

// Getwd returns the process's current working directory via the raw
// getcwd(2) syscall, preferred here over os.Getwd for a direct syscall
// view rather than the os package's higher-level wrapper.
func Getwd() (string, error) {
	return unix.Getwd()
}
