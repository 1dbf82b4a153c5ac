// SPDX-License-Identifier: MPL-2.0

// Copyright (C) 2024-2025 SUSE LLC
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package relpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeNeverRooted(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{".", ""},
		{"/", ""},
		{"/a/b", "a/b"},
		{"a/./b", "a/b"},
		{"a/../b", "a/../b"},
		{"a//b", "a/b"},
	}
	for _, tt := range tests {
		got := Canonicalize(tt.in)
		assert.Equal(t, tt.want, got, "Canonicalize(%q)", tt.in)
		assert.False(t, IsAbsolute(got))
	}
}

func TestCanonicalizeIdempotent(t *testing.T) {
	inputs := []string{"", "a/b", "a/../b", "/a/b/"}
	for _, in := range inputs {
		once := Canonicalize(in)
		assert.Equal(t, once, Canonicalize(once))
	}
}

func TestIsCanonicalAgreesWithCanonicalize(t *testing.T) {
	for _, in := range []string{"", "a/b", "/a/b", "a/./b", "a//b", "a/../b"} {
		assert.Equal(t, Canonicalize(in) == in, IsCanonical(in), "IsCanonical(%q)", in)
	}
	assert.True(t, IsCanonical("a/b/c"))
	assert.False(t, IsCanonical("/a/b"))
}

func TestFromURIPathSingleSlashAfterScheme(t *testing.T) {
	// relpaths fold a URI's authority into path form with a single slash
	// after the scheme, since relpaths have no authority concept of
	// their own.
	assert.Equal(t, "http:/hst", FromURIPath("http", "hst", ""))
	assert.Equal(t, "http:/hst/foo/bar", FromURIPath("http", "hst", "foo/bar"))
}

func TestJoinSkipAncestorInverse(t *testing.T) {
	a, b := "a/b", "a/b/c/d"
	require.True(t, IsAncestor(a, b))
	assert.Equal(t, b, Join(a, SkipAncestor(a, b)))
}

func TestSkipAncestorForWorkingCopyRelativeAddress(t *testing.T) {
	// Mirrors node.c's pattern: a node's relpath inside its working copy
	// root, computed as the suffix past the root relpath.
	root := "trunk/subdir"
	node := "trunk/subdir/a/b.c"
	assert.Equal(t, "a/b.c", SkipAncestor(root, node))
}

func TestIsChildExcludesEqual(t *testing.T) {
	suffix, ok := IsChild("a/b", "a/b")
	assert.False(t, ok)
	assert.Empty(t, suffix)

	suffix, ok = IsChild("a/b", "a/b/c")
	assert.True(t, ok)
	assert.Equal(t, "c", suffix)
}

func TestGetLongestAncestorNeverSplitsMidComponent(t *testing.T) {
	assert.Equal(t, "foo", GetLongestAncestor("foo/bar", "foo/baz"))
	assert.Equal(t, "", GetLongestAncestor("foo", "foot"))
}

func TestCondenseTargetsNestedInputs(t *testing.T) {
	// A path and one of its own descendants: the descendant's suffix is
	// still emitted relative to the common ancestor, not elided.
	ancestor, suffixes := CondenseTargets([]string{"a/b", "a/b/c"})
	assert.Equal(t, "a/b", ancestor)
	assert.Equal(t, []string{"", "c"}, suffixes)
}

func TestBasenameDirnameRoundTrip(t *testing.T) {
	p := "a/b/c"
	dir, base := Split(p)
	assert.Equal(t, "a/b", dir)
	assert.Equal(t, "c", base)
	assert.Equal(t, p, Join(dir, base))
}
