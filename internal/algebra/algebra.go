// SPDX-License-Identifier: MPL-2.0

// Copyright (C) 2024-2025 SUSE LLC
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package algebra implements the lexical engine shared by the dirent,
// relpath and uri packages: canonicalization, composition and ancestry,
// all defined purely in terms of a small per-kind Splitter that knows how
// to recognize and normalize that kind's root segment. The three public
// packages differ only in their Splitter implementation; every operation
// here is otherwise identical across dirent, relpath and uri.
package algebra

import (
	"strings"

	"github.com/opensvn/pathkit/internal/assert"
	"github.com/opensvn/pathkit/internal/gocompat"
)

// Splitter captures everything the shared engine needs to know about one
// name-kind's root model. Implementations must be stateless.
type Splitter interface {
	// TranslateSeparators converts the kind's "local" separator into the
	// internal '/' form. It is a no-op for every kind except DOS dirents,
	// which translate '\' to '/' before any other processing.
	TranslateSeparators(s string) string

	// SplitRoot splits an internal-style (translated) string into its
	// normalized root segment and the remainder that follows it. The
	// root segment returned is already normalized per the kind's rules
	// (drive letter uppercased, UNC host lowercased, URI scheme/authority
	// lowercased, and so on).
	SplitRoot(s string) (root, rest string)

	// IsAbsoluteRoot reports whether a nonempty root segment returned by
	// SplitRoot counts as "absolute" for this kind. Every kind answers
	// true unconditionally except DOS dirents, where a bare drive-relative
	// root ("X:") and the driveless bare "/" root are roots but not
	// absolute paths.
	IsAbsoluteRoot(root string) bool

	// CombineDriveRoot is consulted by Join when comp carries a root that
	// is not absolute (IsAbsoluteRoot(compRoot) is false). Rather than
	// comp's root unconditionally replacing base's, this gives a kind the
	// chance to splice base's root onto comp instead, when base actually
	// carries the missing information comp's own root lacks. Returning
	// ok=false keeps the ordinary full-reset behavior (comp replaces base
	// entirely). keepBaseRest distinguishes the two DOS shapes that reach
	// here: a drive-relative comp ("X:foo") concatenates onto base's own
	// path, since base's path is genuinely that drive's current directory;
	// a driveless bare-"/" comp discards base's path entirely, keeping only
	// the drive (or UNC share) base happened to be rooted on. Every kind
	// except DOS dirents has no non-absolute root shape that needs this and
	// always returns ok=false.
	CombineDriveRoot(baseRoot, compRoot string) (combinedRoot string, keepBaseRest, ok bool)
}

// SplitComponents splits rest (the part of a path after its root) on '/',
// dropping empty components (collapsing "//") and single-dot components,
// but never collapsing ".." — per the never-walk-".." policy, ".." is
// preserved literally because symlinks can make "foo/.." different from
// the empty path.
func SplitComponents(rest string) []string {
	if rest == "" {
		return nil
	}
	parts := strings.Split(rest, "/")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" || p == "." {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Assemble reattaches a joined component string to a root segment. A root
// ending in a single '/' (POSIX "/", DOS "X:/"; UNC "//host/share" is
// handled by its Splitter returning a root that does not end in '/', see
// below) or ':' (DOS drive-relative "X:", URI non-hierarchical "scheme:")
// attaches directly with no inserted separator. A root ending in the
// doubled "//" marker (a hierarchical URI root with an empty authority,
// e.g. "file://") still needs a '/' inserted before the first component,
// because that doubled slash belongs to the scheme/authority boundary, not
// to the path — the path's own root slash is separate (so "file://" joined
// with "C:/temp" must become "file:///C:/temp", not "file://C:/temp").
// Every other nonempty root (DOS UNC roots, URI "scheme://authority" roots
// with a nonempty authority) also needs an inserted '/'.
func Assemble(root, joined string) string {
	switch {
	case joined == "":
		return root
	case root == "":
		return joined
	case strings.HasSuffix(root, "//"):
		return root + "/" + joined
	case strings.HasSuffix(root, "/"), strings.HasSuffix(root, ":"):
		return root + joined
	default:
		return root + "/" + joined
	}
}

// Canonicalize is the total, idempotent canonicalization function:
// translate separators, split off the (already normalized) root, drop
// empty/dot components while preserving "..", and reassemble.
func Canonicalize(sp Splitter, s string) string {
	s = sp.TranslateSeparators(s)
	root, rest := sp.SplitRoot(s)
	comps := SplitComponents(rest)
	return Assemble(root, strings.Join(comps, "/"))
}

// IsCanonical reports whether s is already in canonical form.
func IsCanonical(sp Splitter, s string) bool {
	return Canonicalize(sp, s) == s
}

// IsRoot reports whether s, once canonicalized, equals its own root
// segment in its entirety.
func IsRoot(sp Splitter, s string) bool {
	c := Canonicalize(sp, s)
	root, rest := sp.SplitRoot(c)
	return rest == "" && root == c
}

// IsAbsolute reports whether s, once canonicalized, has a nonempty root
// segment that counts as absolute for this kind.
func IsAbsolute(sp Splitter, s string) bool {
	c := Canonicalize(sp, s)
	root, _ := sp.SplitRoot(c)
	if root == "" {
		return false
	}
	return sp.IsAbsoluteRoot(root)
}

// Basename returns the last component of p after its root segment; empty
// when p equals its root, and the whole string when p has no separators
// and no root.
func Basename(sp Splitter, p string) string {
	c := Canonicalize(sp, p)
	_, rest := sp.SplitRoot(c)
	if rest == "" {
		return ""
	}
	if idx := strings.LastIndexByte(rest, '/'); idx != -1 {
		return rest[idx+1:]
	}
	return rest
}

// Dirname returns the prefix of p up to but not including the last
// separator after the root; when p is at the root, returns p itself.
func Dirname(sp Splitter, p string) string {
	c := Canonicalize(sp, p)
	root, rest := sp.SplitRoot(c)
	if rest == "" {
		return c
	}
	idx := strings.LastIndexByte(rest, '/')
	if idx == -1 {
		return root
	}
	return Assemble(root, strings.Join(SplitComponents(rest[:idx]), "/"))
}

// Split returns (Dirname(p), Basename(p)) computed together.
func Split(sp Splitter, p string) (dir, base string) {
	return Dirname(sp, p), Basename(sp, p)
}

// Join joins base and comp. If comp carries an absolute root of its own it
// entirely replaces base — the "reset on absolute" rule. If comp carries a
// root that is rooted but not absolute (DOS drive-relative "X:", or the
// driveless bare "/"), the kind gets a chance via CombineDriveRoot to
// splice base's root onto comp instead of discarding base outright; only
// when that declines does comp fall back to replacing base wholesale (this
// is what keeps join("aa", "A:") == "A:", since "aa" has no root to splice
// from). Whether base's own path survives the splice or is discarded is
// itself up to CombineDriveRoot: joining a bare "/" onto "X:/abc" yields
// "X:/" + comp's own path, not "X:/abc" + comp's path. Otherwise the two
// are concatenated component-wise and reassembled, which is what makes the
// result respect a drive-relative base's no-separator-after-colon rule
// automatically.
func Join(sp Splitter, base, comp string) string {
	cb := Canonicalize(sp, base)
	cc := Canonicalize(sp, comp)
	if rootC, restC := sp.SplitRoot(cc); rootC != "" {
		if sp.IsAbsoluteRoot(rootC) {
			return cc
		}
		rootB, restB := sp.SplitRoot(cb)
		combinedRoot, keepBaseRest, ok := sp.CombineDriveRoot(rootB, rootC)
		if !ok {
			return cc
		}
		var all []string
		if keepBaseRest {
			all = gocompat.SlicesClone(SplitComponents(restB))
			all = append(all, SplitComponents(restC)...)
		} else {
			all = SplitComponents(restC)
		}
		result := Assemble(combinedRoot, strings.Join(all, "/"))
		assert.Assertf(IsCanonical(sp, result), "Join(%q, %q) produced non-canonical result %q", base, comp, result)
		return result
	}
	if cb == "" {
		return cc
	}
	if cc == "" {
		return cb
	}
	rootB, restB := sp.SplitRoot(cb)
	compsB := SplitComponents(restB)
	compsC := SplitComponents(cc)
	all := gocompat.SlicesClone(compsB)
	all = append(all, compsC...)
	result := Assemble(rootB, strings.Join(all, "/"))
	assert.Assertf(IsCanonical(sp, result), "Join(%q, %q) produced non-canonical result %q", base, comp, result)
	return result
}

// JoinMany left-folds Join over rest, starting from first. A late
// absolute argument discards everything before it; a rooted but
// non-absolute one is combined with the accumulated result as Join does.
func JoinMany(sp Splitter, first string, rest ...string) string {
	acc := Canonicalize(sp, first)
	for _, r := range rest {
		acc = Join(sp, acc, r)
	}
	return acc
}

// hasPathPrefix reports whether cb is ca itself or ca followed by a
// properly-bounded continuation: either ca ends at a natural root
// boundary ('/' or ':'), or the next byte of cb past ca is '/'.
func hasPathPrefix(ca, cb string) bool {
	if !strings.HasPrefix(cb, ca) {
		return false
	}
	rem := cb[len(ca):]
	if rem == "" {
		return true
	}
	if strings.HasSuffix(ca, "/") || strings.HasSuffix(ca, ":") {
		return true
	}
	return strings.HasPrefix(rem, "/")
}

// IsAncestor reports whether a is an ancestor of (or equal to) b. A
// nonempty a is only an ancestor of a b with the same root segment.
func IsAncestor(sp Splitter, a, b string) bool {
	ca, cb := Canonicalize(sp, a), Canonicalize(sp, b)
	if ca == cb {
		return true
	}
	if ca == "" {
		if cb == "" {
			return true
		}
		return !(IsAbsolute(sp, cb) && IsRoot(sp, cb))
	}
	rootA, _ := sp.SplitRoot(ca)
	rootB, _ := sp.SplitRoot(cb)
	if rootA != rootB {
		return false
	}
	return hasPathPrefix(ca, cb)
}

// SkipAncestor returns the suffix of b past a and its following
// separator, or b unchanged if a is not an ancestor of b.
func SkipAncestor(sp Splitter, a, b string) string {
	ca, cb := Canonicalize(sp, a), Canonicalize(sp, b)
	if !IsAncestor(sp, ca, cb) {
		return cb
	}
	if ca == cb {
		return ""
	}
	if ca == "" {
		return cb
	}
	rem := cb[len(ca):]
	if strings.HasSuffix(ca, "/") || strings.HasSuffix(ca, ":") {
		return rem
	}
	return strings.TrimPrefix(rem, "/")
}

// IsChild is like SkipAncestor but only succeeds when b is strictly below
// a; if b == a it reports false.
func IsChild(sp Splitter, a, b string) (string, bool) {
	ca, cb := Canonicalize(sp, a), Canonicalize(sp, b)
	if ca == cb {
		return "", false
	}
	if !IsAncestor(sp, ca, cb) {
		return "", false
	}
	return SkipAncestor(sp, ca, cb), true
}

// GetLongestAncestor walks a and b component by component after verifying
// root compatibility; names with different roots have no common ancestor.
// A prefix match never stops in the middle of a component.
func GetLongestAncestor(sp Splitter, a, b string) string {
	ca, cb := Canonicalize(sp, a), Canonicalize(sp, b)
	rootA, restA := sp.SplitRoot(ca)
	rootB, restB := sp.SplitRoot(cb)
	if rootA != rootB {
		return ""
	}
	compsA := SplitComponents(restA)
	compsB := SplitComponents(restB)
	var common []string
	for i := 0; i < len(compsA) && i < len(compsB); i++ {
		if compsA[i] != compsB[i] {
			break
		}
		common = append(common, compsA[i])
	}
	result := Assemble(rootA, strings.Join(common, "/"))
	if result != "" {
		assert.Assertf(IsAncestor(sp, result, ca) && IsAncestor(sp, result, cb),
			"GetLongestAncestor(%q, %q) = %q is not an ancestor of both", a, b, result)
	}
	return result
}

// CondenseTargets computes the longest common ancestor of all paths and
// the vector of suffixes relative to it. When the inputs span
// incompatible roots (different DOS drives, different URI authorities)
// the common ancestor degenerates to "" and the suffixes fall back to the
// original canonical names, via the same SkipAncestor/IsAncestor rules
// used everywhere else — there is no special-cased "incompatible roots"
// branch here.
func CondenseTargets(sp Splitter, paths []string) (ancestor string, suffixes []string) {
	if len(paths) == 0 {
		return "", nil
	}
	canon := make([]string, len(paths))
	for i, p := range paths {
		canon[i] = Canonicalize(sp, p)
	}
	ancestor = canon[0]
	for _, p := range canon[1:] {
		ancestor = GetLongestAncestor(sp, ancestor, p)
	}
	suffixes = make([]string, len(canon))
	for i, p := range canon {
		suffixes[i] = SkipAncestor(sp, ancestor, p)
	}
	return ancestor, suffixes
}
