// SPDX-License-Identifier: MPL-2.0

// Copyright (C) 2024-2025 SUSE LLC
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

//go:build windows

package uri

import (
	"strings"

	"github.com/opensvn/pathkit/dirent"
)

// direntFromHostAndPath implements the DOS file-URL host policy: an
// empty or "localhost" host resolves to a local path; any other host
// becomes a UNC dirent ("//host/share/...").
func direntFromHostAndPath(host, path string) (string, error) {
	if host == "" || host == "localhost" {
		return dirent.Canonicalize(path), nil
	}
	return dirent.Canonicalize("//" + host + path), nil
}

// fileURLPathFromDirent splits a canonical DOS dirent back into the
// (host, path) shape a file: URL needs: a UNC dirent yields its host and
// the "/share/..." remainder; everything else has no host and becomes
// "/" followed by the dirent in path position ("X:/..." becomes
// "/X:/...").
func fileURLPathFromDirent(d string) (host, path string) {
	c := dirent.Canonicalize(d)
	if strings.HasPrefix(c, "//") {
		rest := c[2:]
		if idx := strings.IndexByte(rest, '/'); idx != -1 {
			return rest[:idx], rest[idx:]
		}
		return rest, ""
	}
	return "", "/" + c
}
