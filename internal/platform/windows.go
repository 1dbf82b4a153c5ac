// SPDX-License-Identifier: MPL-2.0

// Copyright (C) 2024-2025 SUSE LLC
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

//go:build windows

package platform

import "golang.org/x/sys/windows"

// Getwd returns the process's current working directory.
func Getwd() (string, error) {
	return windows.Getwd()
}

// GetDriveCwd returns the current working directory of the given drive
// letter (e.g. 'C'), without changing the process's own CWD. Windows
// tracks one CWD per drive; GetFullPathName on "X:." is the documented
// way to read a specific drive's CWD without calling SetCurrentDirectory.
func GetDriveCwd(drive byte) (string, error) {
	spec := string(drive) + ":."
	p, err := windows.UTF16PtrFromString(spec)
	if err != nil {
		return "", err
	}
	buf := make([]uint16, windows.MAX_PATH)
	n, err := windows.GetFullPathName(p, uint32(len(buf)), &buf[0], nil)
	if err != nil {
		return "", err
	}
	if int(n) > len(buf) {
		buf = make([]uint16, n)
		if _, err := windows.GetFullPathName(p, uint32(len(buf)), &buf[0], nil); err != nil {
			return "", err
		}
	}
	return windows.UTF16ToString(buf), nil
}
