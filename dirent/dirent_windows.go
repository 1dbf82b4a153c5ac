// SPDX-License-Identifier: MPL-2.0

// Copyright (C) 2024-2025 SUSE LLC
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

//go:build windows

package dirent

import (
	"fmt"
	"strings"

	"github.com/opensvn/pathkit/internal/algebra"
	"github.com/opensvn/pathkit/internal/bytesutil"
	"github.com/opensvn/pathkit/internal/platform"
)

// dosSplitter implements the DOS dirent root model: drive letters
// ("X:", "X:/"), UNC shares ("//host/share") and the bare-slash root
// ("/", left un-prefixed by a drive here; GetAbsolute prepends one).
type dosSplitter struct{}

var plat algebra.Splitter = dosSplitter{}

func (dosSplitter) TranslateSeparators(s string) string {
	return strings.ReplaceAll(s, "\\", "/")
}

func (dosSplitter) SplitRoot(s string) (root, rest string) {
	switch {
	case strings.HasPrefix(s, "//"):
		return splitUNCRoot(s)
	case len(s) >= 2 && bytesutil.IsAlpha(s[0]) && s[1] == ':':
		drive := bytesutil.ASCIIUpper(s[0])
		if len(s) >= 3 && s[2] == '/' {
			return fmt.Sprintf("%c:/", drive), s[3:]
		}
		return fmt.Sprintf("%c:", drive), s[2:]
	case strings.HasPrefix(s, "/"):
		return "/", s[1:]
	default:
		return "", s
	}
}

// splitUNCRoot parses the "//host/share" root shape. A UNC root with no
// share component collapses to "/host", preserved as a documented
// historical quirk — see DESIGN.md.
func splitUNCRoot(s string) (root, rest string) {
	afterSlashes := s[2:]
	host, afterHost, hasMore := cutSlash(afterSlashes)
	host = bytesutil.ToLower(host)
	if !hasMore || afterHost == "" {
		return "/" + host, afterHost
	}
	share, rest, _ := cutSlash(afterHost)
	if share == "" {
		return "/" + host, rest
	}
	return "//" + host + "/" + share, rest
}

func cutSlash(s string) (before, after string, found bool) {
	if i := strings.IndexByte(s, '/'); i != -1 {
		return s[:i], s[i+1:], true
	}
	return s, "", false
}

func (dosSplitter) IsAbsoluteRoot(root string) bool {
	// A bare drive-relative root ("X:") is not absolute. Neither is a bare
	// "/" root with no drive letter: canonicalization leaves it as-is but
	// GetAbsolute still has to prepend the current drive, which only
	// makes sense if "/" alone isn't yet fully absolute. Every other
	// nonempty DOS root (drive-absolute, UNC) is.
	return root != "/" && !strings.HasSuffix(root, ":")
}

// driveRoot normalizes a DOS drive root ("X:" or "X:/") to its
// slash-terminated form, reporting ok=false for anything else (UNC,
// empty).
func driveRoot(root string) (string, bool) {
	if len(root) >= 2 && bytesutil.IsAlpha(root[0]) && root[1] == ':' {
		if strings.HasSuffix(root, "/") {
			return root, true
		}
		return root + "/", true
	}
	return "", false
}

// CombineDriveRoot splices base's root onto a comp whose own root is
// rooted but not absolute, rather than letting comp discard base outright.
// Two shapes reach here: a driveless bare "/" comp, which inherits
// whichever drive (or UNC share) base is already rooted on but otherwise
// resets — base's own path is dropped, since "/dir" means "dir off the
// root of the current drive", not "dir under base's directory"; and a
// drive-relative "X:" comp, which only combines when base is rooted on
// that very same drive letter (since that is the only case where base's
// path is actually "the current directory on X"), and there base's path
// is kept and comp's appended after it. Any other pairing (no root on
// base, or a different drive) declines so Join falls back to the ordinary
// full reset.
func (dosSplitter) CombineDriveRoot(baseRoot, compRoot string) (root string, keepBaseRest, ok bool) {
	switch {
	case compRoot == "/":
		if strings.HasPrefix(baseRoot, "//") {
			return baseRoot, false, true
		}
		root, ok = driveRoot(baseRoot)
		return root, false, ok
	case strings.HasSuffix(compRoot, ":"):
		if r, ok := driveRoot(baseRoot); ok && baseRoot[0] == compRoot[0] {
			return r, true, true
		}
		return "", false, false
	default:
		return "", false, false
	}
}

// LocalStyle renders a dirent the way Windows would display it: the
// canonical form with '/' translated back to '\'. UNC roots naturally
// come out as "\\host\share\..." since every separator is translated.
func LocalStyle(s string) string {
	c := Canonicalize(s)
	if c == "" {
		return "."
	}
	return strings.ReplaceAll(c, "/", "\\")
}

func absolutePrefix(c string) (string, error) {
	root, _ := plat.SplitRoot(c)
	switch {
	case strings.HasSuffix(root, ":"):
		// Drive-relative: resolve against that drive's own CWD.
		return platform.GetDriveCwd(root[0])
	case root == "/":
		// Bare-slash root: resolve against the current drive.
		cwd, err := platform.Getwd()
		if err != nil {
			return "", err
		}
		curRoot, _ := plat.SplitRoot(strings.ReplaceAll(cwd, "\\", "/"))
		return strings.TrimSuffix(curRoot, "/"), nil
	default:
		cwd, err := platform.Getwd()
		if err != nil {
			return "", err
		}
		return strings.ReplaceAll(cwd, "\\", "/"), nil
	}
}
