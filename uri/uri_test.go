// SPDX-License-Identifier: MPL-2.0

// Copyright (C) 2024-2025 SUSE LLC
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package uri

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeWorkedExamples(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"http://HST/FOO/BaR", "http://hst/FOO/BaR"},
		{"s://d/c($) .+?", "s://d/c($)%20.+%3F"},
		{"file:///C%3a/temp", "file:///C:/temp"},
		{"http:///", "http://"},
		{"", ""},
		{".", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Canonicalize(tt.in), "Canonicalize(%q)", tt.in)
	}
}

func TestCanonicalizeIdempotent(t *testing.T) {
	inputs := []string{
		"http://HST/FOO/BaR",
		"s://d/c($) .+?",
		"file:///C%3a/temp",
		"http:///",
		"mailto:foo@bar",
		"relative/path",
	}
	for _, in := range inputs {
		once := Canonicalize(in)
		assert.Equal(t, once, Canonicalize(once), "idempotence for %q", in)
	}
}

func TestIsCanonicalAgreesWithCanonicalize(t *testing.T) {
	inputs := []string{"http://hst/FOO/BaR", "http://HST/foo", "file:///C:/temp"}
	for _, in := range inputs {
		assert.Equal(t, Canonicalize(in) == in, IsCanonical(in))
	}
}

func TestIsAbsolute(t *testing.T) {
	assert.True(t, IsAbsolute("http://hst/foo"))
	assert.True(t, IsAbsolute("mailto:foo@bar"))
	assert.False(t, IsAbsolute("relative/path"))
	assert.False(t, IsAbsolute(""))
}

func TestGetLongestAncestorAuthorityOddity(t *testing.T) {
	// This diverges from a naive "root of authority" intuition because
	// "http://" and "http://test" simply have different root segments
	// once split.
	assert.Equal(t, "", GetLongestAncestor("http://", "http://test"))
}

func TestGetLongestAncestorCommutative(t *testing.T) {
	a, b := "http://hst/a/b/c", "http://hst/a/b/d"
	assert.Equal(t, GetLongestAncestor(a, b), GetLongestAncestor(b, a))
	assert.Equal(t, "http://hst/a/b", GetLongestAncestor(a, b))
}

func TestGetLongestAncestorDifferentAuthority(t *testing.T) {
	assert.Equal(t, "", GetLongestAncestor("http://hst1/a", "http://hst2/a"))
}

func TestJoinResetsOnAbsolute(t *testing.T) {
	assert.Equal(t, "http://other/x", Join("http://hst/a/b", "http://other/x"))
	assert.Equal(t, "http://hst/a/b/c", Join("http://hst/a/b", "c"))
}

func TestJoinSkipAncestorInverse(t *testing.T) {
	a, b := "http://hst/a/b", "http://hst/a/b/c/d"
	require.True(t, IsAncestor(a, b))
	assert.Equal(t, b, Join(a, SkipAncestor(a, b)))
}

func TestSplitRoundTrip(t *testing.T) {
	p := Canonicalize("http://hst/a/b/c")
	dir, base := Split(p)
	assert.Equal(t, p, Join(dir, base))
}

func TestCondenseTargetsDifferentAuthorities(t *testing.T) {
	ancestor, suffixes := CondenseTargets([]string{"http://hst1/a", "http://hst2/a"})
	assert.Equal(t, "", ancestor)
	assert.Equal(t, []string{"http://hst1/a", "http://hst2/a"}, suffixes)
}

func TestPercentEscapeMalformedIsReEscaped(t *testing.T) {
	assert.Equal(t, "http://hst/a%25b", Canonicalize("http://hst/a%b"))
}
