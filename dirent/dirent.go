// SPDX-License-Identifier: MPL-2.0

// Copyright (C) 2024-2025 SUSE LLC
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package dirent implements the path algebra for local filesystem dirents.
// On POSIX the root model is a single "/"; on DOS it additionally covers
// drive letters ("X:", "X:/") and UNC shares ("//host/share"). The
// platform is selected at compile time (see dirent_posix.go and
// dirent_windows.go).
package dirent

import (
	"fmt"
	"strings"

	"github.com/opensvn/pathkit"
	"github.com/opensvn/pathkit/internal/algebra"
)

// Canonicalize produces the unique canonical form of s for this platform.
// It is total (never fails) and idempotent.
func Canonicalize(s string) string { return algebra.Canonicalize(plat, s) }

// IsCanonical reports whether s is already canonical.
func IsCanonical(s string) bool { return algebra.IsCanonical(plat, s) }

// IsRoot reports whether s names the root of its own root segment.
func IsRoot(s string) bool { return algebra.IsRoot(plat, s) }

// IsAbsolute reports whether s is absolute. On DOS a drive-relative path
// ("X:foo") and a driveless "/foo" are rooted but not absolute.
func IsAbsolute(s string) bool { return algebra.IsAbsolute(plat, s) }

// Basename returns the last component of p.
func Basename(p string) string { return algebra.Basename(plat, p) }

// Dirname returns the parent of p.
func Dirname(p string) string { return algebra.Dirname(plat, p) }

// Split returns (Dirname(p), Basename(p)).
func Split(p string) (dir, base string) { return algebra.Split(plat, p) }

// Join joins base and comp, resetting to comp entirely if comp carries an
// absolute root of its own. On DOS a rooted but non-absolute comp ("/dir",
// "X:foo") takes base's drive or UNC share instead when base has a
// matching one.
func Join(base, comp string) string { return algebra.Join(plat, base, comp) }

// JoinMany left-folds Join over rest.
func JoinMany(first string, rest ...string) string { return algebra.JoinMany(plat, first, rest...) }

// IsAncestor reports whether a is an ancestor of (or equal to) b.
func IsAncestor(a, b string) bool { return algebra.IsAncestor(plat, a, b) }

// SkipAncestor returns the suffix of b past a, or b unchanged.
func SkipAncestor(a, b string) string { return algebra.SkipAncestor(plat, a, b) }

// IsChild returns the suffix of b past a only if b is strictly below a.
func IsChild(a, b string) (string, bool) { return algebra.IsChild(plat, a, b) }

// GetLongestAncestor returns the longest common ancestor of a and b.
func GetLongestAncestor(a, b string) string { return algebra.GetLongestAncestor(plat, a, b) }

// CondenseTargets computes the common ancestor of paths and their
// suffixes relative to it.
func CondenseTargets(paths []string) (ancestor string, suffixes []string) {
	return algebra.CondenseTargets(plat, paths)
}

// InternalStyle converts s to the module's internal '/'-separated form.
// On DOS this also translates '\' to '/'; on POSIX it is equivalent to
// Canonicalize.
func InternalStyle(s string) string { return Canonicalize(s) }

// IsUnderRoot resolves p, a user-supplied relative path, against base, a
// trusted absolute dirent, and reports whether the result stays inside
// base. Unlike Canonicalize, this performs a controlled walk of ".."
// components (bounded at base) rather than preserving them literally,
// because this is explicitly a safety check and not canonicalization;
// the never-walk-".." policy applies to Canonicalize, not here. This
// mirrors a bounded-buffer symlink-safe join performed purely
// lexically: no stat/readlink calls, and escape attempts are rejected
// rather than silently clamped to base.
func IsUnderRoot(base, p string) (resolved string, ok bool) {
	cb := Canonicalize(base)
	translated := plat.TranslateSeparators(p)
	comps := algebra.SplitComponents(translated)
	stack := make([]string, 0, len(comps))
	for _, c := range comps {
		if c == ".." {
			if len(stack) == 0 {
				return "", false
			}
			stack = stack[:len(stack)-1]
		} else {
			stack = append(stack, c)
		}
	}
	return Join(cb, strings.Join(stack, "/")), true
}

// GetAbsolute binds a relative dirent to the process's (and, on DOS, the
// relevant per-drive) current working directory. If p is already
// absolute, it is simply canonicalized.
func GetAbsolute(p string) (string, error) {
	c := Canonicalize(p)
	if IsAbsolute(c) {
		return c, nil
	}
	prefix, err := absolutePrefix(c)
	if err != nil {
		return "", fmt.Errorf("%w: %w", pathkit.ErrSystemError, err)
	}
	return Canonicalize(Join(prefix, c)), nil
}
