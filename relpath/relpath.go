// SPDX-License-Identifier: MPL-2.0

// Copyright (C) 2024-2025 SUSE LLC
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package relpath implements the path algebra for repository-relative
// paths: hierarchical names with no root segment at all. A relpath never
// begins with '/' and carries no platform-specific shape, so unlike
// dirent there is no build-tag split here — the same Splitter serves
// every platform.
package relpath

import (
	"github.com/opensvn/pathkit/internal/algebra"
)

// plainSplitter implements the relpath root model: there is no root
// segment, ever.
type plainSplitter struct{}

func (plainSplitter) TranslateSeparators(s string) string { return s }

// SplitRoot always reports an empty root; a leading '/' on the input, if
// any, is dropped as part of the remainder rather than treated as a
// root.
func (plainSplitter) SplitRoot(s string) (root, rest string) {
	if len(s) > 0 && s[0] == '/' {
		return "", s[1:]
	}
	return "", s
}

func (plainSplitter) IsAbsoluteRoot(string) bool { return false }

// CombineDriveRoot never applies: SplitRoot never reports a nonempty
// root, so Join never reaches here.
func (plainSplitter) CombineDriveRoot(string, string) (string, bool, bool) { return "", false, false }

var plat algebra.Splitter = plainSplitter{}

// Canonicalize produces the unique canonical form of s. It is total and
// idempotent, and the result never begins with '/'.
func Canonicalize(s string) string { return algebra.Canonicalize(plat, s) }

// IsCanonical reports whether s is already canonical.
func IsCanonical(s string) bool { return algebra.IsCanonical(plat, s) }

// IsRoot reports whether s, once canonicalized, is the empty relpath —
// the only "root" a relpath can have.
func IsRoot(s string) bool { return algebra.IsRoot(plat, s) }

// IsAbsolute always reports false: a relpath is never rooted.
func IsAbsolute(s string) bool { return algebra.IsAbsolute(plat, s) }

// Basename returns the last component of p.
func Basename(p string) string { return algebra.Basename(plat, p) }

// Dirname returns the parent of p.
func Dirname(p string) string { return algebra.Dirname(plat, p) }

// Split returns (Dirname(p), Basename(p)).
func Split(p string) (dir, base string) { return algebra.Split(plat, p) }

// Join joins base and comp. A relpath comp never carries a root of its
// own, so Join never resets here; it is kept as a thin wrapper over the
// shared engine for API symmetry with dirent and uri.
func Join(base, comp string) string { return algebra.Join(plat, base, comp) }

// JoinMany left-folds Join over rest.
func JoinMany(first string, rest ...string) string { return algebra.JoinMany(plat, first, rest...) }

// IsAncestor reports whether a is an ancestor of (or equal to) b.
func IsAncestor(a, b string) bool { return algebra.IsAncestor(plat, a, b) }

// SkipAncestor returns the suffix of b past a, or b unchanged.
//
// This is the primitive node.c leans on to compute a working-copy node's
// address relative to its working copy root: given the root relpath and
// the node's own relpath, SkipAncestor yields the node's address inside
// that root.
func SkipAncestor(a, b string) string { return algebra.SkipAncestor(plat, a, b) }

// IsChild returns the suffix of b past a only if b is strictly below a.
func IsChild(a, b string) (string, bool) { return algebra.IsChild(plat, a, b) }

// GetLongestAncestor returns the longest common ancestor of a and b.
func GetLongestAncestor(a, b string) string { return algebra.GetLongestAncestor(plat, a, b) }

// CondenseTargets computes the common ancestor of paths and their
// suffixes relative to it. Kept for symmetry since the underlying
// engine already supports it uniformly across kinds; tree-conflict
// skeletons condense sets of relpaths the same way the working copy
// condenses dirents.
func CondenseTargets(paths []string) (ancestor string, suffixes []string) {
	return algebra.CondenseTargets(plat, paths)
}

// FromURIPath folds a URI's scheme and path into relpath form:
// "http://hst" canonicalizes to "http:/hst" (a single slash after the
// scheme) because relpaths have no authority concept. Callers are
// responsible for deciding when a URI should be
// treated as a relpath; this module never auto-detects the kind of its
// input.
func FromURIPath(scheme, authority, path string) string {
	s := scheme + ":/" + authority
	if path != "" {
		s += "/" + path
	}
	return Canonicalize(s)
}
