// SPDX-License-Identifier: MPL-2.0

// Copyright (C) 2024-2025 SUSE LLC
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package uri implements the path algebra for absolute hierarchical
// names with a scheme and optional authority. Only the syntactic layer
// is handled: no network resolution, no RFC-3986 full conformance, just
// the pragmatic subset the rest of the module needs to canonicalize,
// compose and compare URIs the same way it does dirents and relpaths.
package uri

import (
	"fmt"
	"strings"

	"github.com/opensvn/pathkit"
	"github.com/opensvn/pathkit/internal/algebra"
	"github.com/opensvn/pathkit/internal/bytesutil"
	"github.com/opensvn/pathkit/internal/gocompat"
)

// schemeExtraChars are the non-alphanumeric bytes allowed after the first
// character of a scheme name.
var schemeExtraChars = []byte{'+', '-', '.'}

// uriSplitter implements the uri root model: "scheme://authority" for
// hierarchical schemes, or "scheme:" otherwise. Unlike dirent, every
// nonempty uri root counts as absolute — there is no drive-relative
// exception.
type uriSplitter struct{}

var plat algebra.Splitter = uriSplitter{}

func (uriSplitter) TranslateSeparators(s string) string { return s }

// classifyScheme scans s for a leading "scheme:": the colon must be
// preceded by a nonempty run matching
// [A-Za-z][A-Za-z0-9+.-]*. A path containing a '/' before any ':' fails
// this automatically, since '/' is not a legal scheme byte — that is
// what keeps a relative path like "foo/bar:baz" from being misread as
// absolute.
func classifyScheme(s string) (scheme, rest string, ok bool) {
	idx := strings.IndexByte(s, ':')
	if idx <= 0 {
		return "", s, false
	}
	cand := s[:idx]
	if !bytesutil.IsAlpha(cand[0]) {
		return "", s, false
	}
	for i := 1; i < len(cand); i++ {
		c := cand[i]
		switch {
		case bytesutil.IsAlpha(c), c >= '0' && c <= '9', gocompat.SlicesContains(schemeExtraChars, c):
		default:
			return "", s, false
		}
	}
	return cand, s[idx+1:], true
}

// normalizeAuthority lowercases the host portion of an authority while
// preserving the case of any "user[:pass]@" prefix.
func normalizeAuthority(a string) string {
	if idx := strings.LastIndexByte(a, '@'); idx != -1 {
		return a[:idx+1] + bytesutil.ToLower(a[idx+1:])
	}
	return bytesutil.ToLower(a)
}

// upperCaseFileDrive implements the DOS file:// drive-letter rule: a
// drive letter sitting at the front of the path position is uppercased.
func upperCaseFileDrive(lowerScheme, rest string) string {
	if lowerScheme != "file" {
		return rest
	}
	if len(rest) >= 3 && rest[0] == '/' && bytesutil.IsAlpha(rest[1]) && rest[2] == ':' {
		return "/" + string(bytesutil.ASCIIUpper(rest[1])) + rest[2:]
	}
	return rest
}

// SplitRoot also folds in percent-escape normalization of the path
// remainder, rather than leaving it to a separate pass: applying it
// here, before SplitComponents ever sees the string,
// means every shared algebra operation (Canonicalize, Join, ancestry)
// produces percent-normalized results uniformly, not just Canonicalize.
func (uriSplitter) SplitRoot(s string) (root, rest string) {
	scheme, afterColon, ok := classifyScheme(s)
	if !ok {
		return "", s
	}
	lowerScheme := bytesutil.ToLower(scheme)
	if strings.HasPrefix(afterColon, "//") {
		afterSlashes := afterColon[2:]
		var authority, pathRest string
		if idx := strings.IndexByte(afterSlashes, '/'); idx == -1 {
			authority, pathRest = afterSlashes, ""
		} else {
			authority, pathRest = afterSlashes[:idx], afterSlashes[idx:]
		}
		root = lowerScheme + "://" + normalizeAuthority(authority)
		rest = upperCaseFileDrive(lowerScheme, bytesutil.NormalizePercentEscapes(pathRest))
		return root, rest
	}
	return lowerScheme + ":", bytesutil.NormalizePercentEscapes(afterColon)
}

func (uriSplitter) IsAbsoluteRoot(root string) bool { return root != "" }

// CombineDriveRoot never applies: every nonempty uri root is absolute, so
// Join never reaches here.
func (uriSplitter) CombineDriveRoot(string, string) (string, bool, bool) { return "", false, false }

// Canonicalize produces the unique canonical form of s. It is total and
// idempotent: malformed percent-escapes are repaired rather than
// rejected.
func Canonicalize(s string) string { return algebra.Canonicalize(plat, s) }

// IsCanonical reports whether s is already canonical.
func IsCanonical(s string) bool { return algebra.IsCanonical(plat, s) }

// IsRoot reports whether s, once canonicalized, equals its own root
// segment in its entirety.
func IsRoot(s string) bool { return algebra.IsRoot(plat, s) }

// IsAbsolute reports whether s carries a scheme. Every uri root counts
// as absolute, including the non-hierarchical "scheme:" shape.
func IsAbsolute(s string) bool { return algebra.IsAbsolute(plat, s) }

// Basename returns the last path component of p.
func Basename(p string) string { return algebra.Basename(plat, p) }

// Dirname returns the parent of p.
func Dirname(p string) string { return algebra.Dirname(plat, p) }

// Split returns (Dirname(p), Basename(p)).
func Split(p string) (dir, base string) { return algebra.Split(plat, p) }

// Join joins base and comp, resetting to comp entirely if comp carries a
// scheme of its own.
func Join(base, comp string) string { return algebra.Join(plat, base, comp) }

// JoinMany left-folds Join over rest.
func JoinMany(first string, rest ...string) string { return algebra.JoinMany(plat, first, rest...) }

// IsAncestor reports whether a is an ancestor of (or equal to) b. Two
// uris are only comparable when their scheme and authority match
// exactly after canonicalization: a root mismatch is treated as
// incompatible, the same way GetLongestAncestor treats it.
func IsAncestor(a, b string) bool { return algebra.IsAncestor(plat, a, b) }

// SkipAncestor returns the suffix of b past a, or b unchanged.
func SkipAncestor(a, b string) string { return algebra.SkipAncestor(plat, a, b) }

// IsChild returns the suffix of b past a only if b is strictly below a.
func IsChild(a, b string) (string, bool) { return algebra.IsChild(plat, a, b) }

// GetLongestAncestor returns the longest common ancestor of a and b. A
// bare authority-only root and a path beneath a like-named but textually
// longer authority never share an ancestor:
// GetLongestAncestor("http://", "http://test") == "", since "http://"
// and "http://test" have different (mismatched) roots once split —
// "test" is part of the authority of the second, not a path component
// shared with the first.
func GetLongestAncestor(a, b string) string { return algebra.GetLongestAncestor(plat, a, b) }

// CondenseTargets computes the common ancestor of paths and their
// suffixes relative to it. When inputs span different schemes or
// authorities the ancestor degenerates to "" and the suffixes fall back
// to the original canonical uris.
func CondenseTargets(paths []string) (ancestor string, suffixes []string) {
	return algebra.CondenseTargets(plat, paths)
}

// parseFileURL validates that url has a file: scheme with a hierarchical
// "//" authority marker, lowercases the host, and strictly
// percent-decodes the path. It does not yet apply the platform's
// host policy (localhost-only vs. UNC-eligible) or the drive-letter
// convention; callers do that next.
func parseFileURL(url string) (host, decodedPath string, err error) {
	scheme, afterColon, ok := classifyScheme(url)
	if !ok || bytesutil.ToLower(scheme) != "file" {
		return "", "", fmt.Errorf("%w: not a file: URL", pathkit.ErrMalformedInput)
	}
	if !strings.HasPrefix(afterColon, "//") {
		return "", "", fmt.Errorf("%w: file URL missing // authority marker", pathkit.ErrMalformedInput)
	}
	afterSlashes := afterColon[2:]
	var rawHost, rawPath string
	if idx := strings.IndexByte(afterSlashes, '/'); idx == -1 {
		rawHost, rawPath = afterSlashes, ""
	} else {
		rawHost, rawPath = afterSlashes[:idx], afterSlashes[idx:]
	}
	decoded, ok := bytesutil.PercentDecode(rawPath)
	if !ok {
		return "", "", fmt.Errorf("%w: malformed percent-escape in file URL path", pathkit.ErrMalformedInput)
	}
	return bytesutil.ToLower(rawHost), decoded, nil
}

// applyDriveConvention implements the "a path /A: or /A%7C becomes A:/"
// rule: a leading "/<letter>:" or "/<letter>|" (the '|' is
// what a decoded "%7C" yields, an old file-URL stand-in for ':') is
// rewritten to a DOS drive-absolute path.
func applyDriveConvention(p string) string {
	if len(p) >= 3 && p[0] == '/' && bytesutil.IsAlpha(p[1]) && (p[2] == ':' || p[2] == '|') {
		drive := bytesutil.ASCIIUpper(p[1])
		return string(drive) + ":/" + strings.TrimPrefix(p[3:], "/")
	}
	return p
}

// GetDirentFromFileURL converts a file: URL to a canonical absolute
// dirent. The host policy (localhost-only on POSIX, UNC-eligible on
// DOS) is platform-specific; see uri_posix.go and uri_windows.go.
func GetDirentFromFileURL(url string) (string, error) {
	host, decodedPath, err := parseFileURL(url)
	if err != nil {
		return "", err
	}
	return direntFromHostAndPath(host, applyDriveConvention(decodedPath))
}

// GetFileURLFromDirent converts a canonical absolute dirent to a file:
// URL, percent-encoding unsafe path bytes.
func GetFileURLFromDirent(d string) (string, error) {
	host, path := fileURLPathFromDirent(d)
	return "file://" + host + bytesutil.PercentEncodePath(path), nil
}
