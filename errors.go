// SPDX-License-Identifier: MPL-2.0

// Copyright (C) 2024-2025 SUSE LLC
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package pathkit is the root of a small family of packages (dirent,
// relpath, uri) implementing a uniform path algebra across local
// filesystem dirents, repository-relative paths and absolute URIs. This
// root package holds only the error values shared by all three.
package pathkit

import "errors"

// ErrMalformedInput is returned when a percent-decoding failure occurs in
// a strict context, or a file-URL carries a scheme other than "file", or a
// non-UNC, non-localhost host. Canonicalization itself never returns this
// error: malformed percent-escapes there are repaired, not rejected.
var ErrMalformedInput = errors.New("pathkit: malformed input")

// ErrSystemError is returned when the absolute resolver cannot acquire the
// process (or, on DOS, per-drive) current working directory.
var ErrSystemError = errors.New("pathkit: failed to determine current working directory")
