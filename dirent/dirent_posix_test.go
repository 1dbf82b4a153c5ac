// SPDX-License-Identifier: MPL-2.0

// Copyright (C) 2024-2025 SUSE LLC
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

//go:build !windows

package dirent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStylePosix(t *testing.T) {
	assert.Equal(t, ".", LocalStyle(""))
	assert.Equal(t, "/", LocalStyle("/"))
	assert.Equal(t, "/a/b", LocalStyle("/a//b/"))
}

func TestIsAbsolutePosix(t *testing.T) {
	assert.True(t, IsAbsolute("/a/b"))
	assert.False(t, IsAbsolute("a/b"))
	assert.False(t, IsAbsolute(""))
}

func TestGetAbsoluteAlreadyAbsolute(t *testing.T) {
	// An already-absolute input never needs to consult the CWD, so this
	// exercises GetAbsolute without depending on the process environment.
	got, err := GetAbsolute("/a/./b/../c")
	require.NoError(t, err)
	assert.Equal(t, "/a/b/../c", got)
}

func TestCanonicalizeDosShapesInertOnPosix(t *testing.T) {
	// On POSIX a colon has no special meaning: "X:/" is just an ordinary
	// relative name.
	assert.Equal(t, "X:", Canonicalize("X:/"))
}

func TestCanonicalizeHttpLikeColonOnPosix(t *testing.T) {
	// A colon-bearing relative component is still just a byte sequence on
	// POSIX dirents; nothing about "http:" is special here.
	assert.Equal(t, "http:", Canonicalize("http:"))
}
