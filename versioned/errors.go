// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

package versioned

import "github.com/pkg/errors"

// Sentinel error kinds, checked with errors.Is. Every wrapped occurrence
// carries the byte offset into the entry buffer at the point of failure,
// added via github.com/pkg/errors.Wrapf at the call site.
var (
	ErrUnexpectedEOF      = errors.New("versioned: unexpected end of input")
	ErrBadKindByte        = errors.New("versioned: unrecognized kind byte")
	ErrTypeMismatch       = errors.New("versioned: type mismatch")
	ErrBadTag             = errors.New("versioned: unknown struct field tag")
	ErrUnknownChoice      = errors.New("versioned: unknown choice selector")
	ErrIntOutOfRange      = errors.New("versioned: integer out of range")
	ErrNegativeInUnsigned = errors.New("versioned: negative value in unsigned context")
	ErrTrailingBytes      = errors.New("versioned: trailing bytes after decode")
)
