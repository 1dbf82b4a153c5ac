// SPDX-License-Identifier: MPL-2.0

// Copyright (C) 2024-2025 SUSE LLC
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

//go:build !windows

package uri

import (
	"fmt"

	"github.com/opensvn/pathkit"
	"github.com/opensvn/pathkit/dirent"
)

// direntFromHostAndPath enforces the POSIX file-URL host policy: the
// host must be empty or "localhost"; any other host is an error since
// POSIX dirents have no UNC concept to fall back on.
func direntFromHostAndPath(host, path string) (string, error) {
	if host != "" && host != "localhost" {
		return "", fmt.Errorf("%w: file URL host %q not supported on this platform", pathkit.ErrMalformedInput, host)
	}
	return dirent.Canonicalize(path), nil
}

// fileURLPathFromDirent has no host concept on POSIX: the dirent's own
// canonical form, already rooted at "/", becomes the URL path directly.
func fileURLPathFromDirent(d string) (host, path string) {
	return "", dirent.Canonicalize(d)
}
