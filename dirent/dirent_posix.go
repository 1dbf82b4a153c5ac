// SPDX-License-Identifier: MPL-2.0

// Copyright (C) 2024-2025 SUSE LLC
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

//go:build !windows

package dirent

import (
	"strings"

	"github.com/opensvn/pathkit/internal/algebra"
	"github.com/opensvn/pathkit/internal/platform"
)

// posixSplitter implements the POSIX dirent root model: the only root is
// a single "/"; there is no drive or UNC concept.
type posixSplitter struct{}

var plat algebra.Splitter = posixSplitter{}

func (posixSplitter) TranslateSeparators(s string) string { return s }

func (posixSplitter) SplitRoot(s string) (root, rest string) {
	if strings.HasPrefix(s, "/") {
		return "/", s[1:]
	}
	return "", s
}

func (posixSplitter) IsAbsoluteRoot(root string) bool { return root != "" }

// CombineDriveRoot never applies on POSIX: the only root is "/", which
// IsAbsoluteRoot already reports as absolute, so Join never reaches here.
func (posixSplitter) CombineDriveRoot(string, string) (string, bool, bool) { return "", false, false }

// LocalStyle renders a dirent the way a POSIX shell would display it: the
// canonical form, with the empty relative path rendered as ".".
func LocalStyle(s string) string {
	c := Canonicalize(s)
	if c == "" {
		return "."
	}
	return c
}

func absolutePrefix(string) (string, error) {
	return platform.Getwd()
}
