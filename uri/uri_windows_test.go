// SPDX-License-Identifier: MPL-2.0

// Copyright (C) 2024-2025 SUSE LLC
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

//go:build windows

package uri

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDirentFromFileURLDriveLetter(t *testing.T) {
	got, err := GetDirentFromFileURL("file:///C:/temp")
	require.NoError(t, err)
	assert.Equal(t, "C:/temp", got)
}

func TestGetDirentFromFileURLDriveConventionPipe(t *testing.T) {
	// "/A: or /A%7C becomes A:/".
	got, err := GetDirentFromFileURL("file:///A%7C/dir")
	require.NoError(t, err)
	assert.Equal(t, "A:/dir", got)
}

func TestGetDirentFromFileURLUNC(t *testing.T) {
	got, err := GetDirentFromFileURL("file://srv/share/sub")
	require.NoError(t, err)
	assert.Equal(t, "//srv/share/sub", got)
}

func TestGetFileURLFromDirentDos(t *testing.T) {
	got, err := GetFileURLFromDirent("C:/temp")
	require.NoError(t, err)
	assert.Equal(t, "file:///C:/temp", got)

	got, err = GetFileURLFromDirent("//srv/share/sub")
	require.NoError(t, err)
	assert.Equal(t, "file://srv/share/sub", got)
}

func TestFileURLRoundTripDos(t *testing.T) {
	inputs := []string{"C:/temp", "C:/a/b c.txt", "//srv/share/sub"}
	for _, d := range inputs {
		url, err := GetFileURLFromDirent(d)
		require.NoError(t, err)
		back, err := GetDirentFromFileURL(url)
		require.NoError(t, err)
		assert.Equal(t, d, back, "round trip for %q via %q", d, url)
	}
}
