// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

package versioned

import "github.com/pkg/errors"

// maxVlqBytes bounds the continuation loop: 10 bytes carry 6 + 9*7 = 69
// data bits, more than enough for a 64-bit result, and catches a
// corrupt stream whose continuation bit never clears.
const maxVlqBytes = 10

// readVlqUnsigned decodes the variable-length-quantity scheme, rejecting
// a set sign bit on the first byte as ErrNegativeInUnsigned (e.g. 0x01
// would decode to -0).
func (r *reader) readVlqUnsigned() (uint64, error) {
	b, err := r.readByte()
	if err != nil {
		return 0, err
	}
	if b&1 == 1 {
		return 0, ErrNegativeInUnsigned
	}

	result := uint64(b>>1) & 0x3F
	shift := uint(6)
	count := 1
	for b&0x80 != 0 {
		if count >= maxVlqBytes {
			return 0, errors.Wrapf(ErrIntOutOfRange, "offset %d: vlq exceeds maximum length", r.pos)
		}
		b, err = r.readByte()
		if err != nil {
			return 0, err
		}
		result |= uint64(b&0x7F) << shift
		shift += 7
		count++
	}
	return result, nil
}

// readVlqSigned decodes the same scheme but treats the first byte's LSB
// as the sign bit rather than rejecting it.
func (r *reader) readVlqSigned() (int64, error) {
	b, err := r.readByte()
	if err != nil {
		return 0, err
	}
	neg := b&1 == 1

	result := uint64(b>>1) & 0x3F
	shift := uint(6)
	count := 1
	for b&0x80 != 0 {
		if count >= maxVlqBytes {
			return 0, errors.Wrapf(ErrIntOutOfRange, "offset %d: vlq exceeds maximum length", r.pos)
		}
		b, err = r.readByte()
		if err != nil {
			return 0, err
		}
		result |= uint64(b&0x7F) << shift
		shift += 7
		count++
	}

	if neg {
		return -int64(result), nil
	}
	return int64(result), nil
}
