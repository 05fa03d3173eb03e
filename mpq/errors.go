// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

package mpq

import "errors"

// Sentinel error kinds, checked with errors.Is. Callers that need the
// offending name or byte value get it from the wrapped message produced by
// findFile/ReadFile (via github.com/pkg/errors.Wrapf) rather than from a
// typed field.
var (
	ErrBadMagic                 = errors.New("mpq: bad archive magic")
	ErrTruncated                = errors.New("mpq: truncated archive data")
	ErrMisalignedCipherBuffer   = errors.New("mpq: cipher buffer length not a multiple of 4")
	ErrNotFound                 = errors.New("mpq: entry not found")
	ErrUnsupportedEncrypted     = errors.New("mpq: encrypted entries are not supported")
	ErrUnsupportedVersion       = errors.New("mpq: unsupported archive format version")
	ErrUnknownCompressionScheme = errors.New("mpq: unknown compression scheme")
	ErrCorruptCompression       = errors.New("mpq: decompressed size mismatch")
)
