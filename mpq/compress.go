// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

package mpq

import (
	"bytes"
	"compress/bzip2"
	"compress/zlib"
	"io"

	"github.com/pkg/errors"
)

// Compression scheme bytes. compressionPKWare is named but has no decode
// path: no entry this decoder's fixtures exercise uses it, and it falls
// through to ErrUnknownCompressionScheme like any other unrecognized byte.
const (
	compressionStore  = 0x00
	compressionZlib   = 0x02
	compressionPKWare = 0x08
	compressionBzip2  = 0x10
	compressionLZMA   = 0x12
)

// decompressBlock dispatches on the leading scheme byte of a block or
// sector payload and decompresses the remainder to exactly
// uncompressedSize bytes. Multi-compression bitmask handling is dropped:
// that branch exists for Storm-era WoW audio assets, which are out of
// scope for every entry a replay archive contains.
func decompressBlock(payload []byte, uncompressedSize uint32) ([]byte, error) {
	if len(payload) == 0 {
		return nil, errors.Wrap(ErrCorruptCompression, "empty compressed payload")
	}

	scheme := payload[0]
	body := payload[1:]

	var out []byte
	var err error
	switch scheme {
	case compressionStore:
		out = body

	case compressionZlib:
		out, err = decompressZlib(body, uncompressedSize)

	case compressionBzip2:
		out, err = decompressBzip2(body, uncompressedSize)

	default:
		return nil, errors.Wrapf(ErrUnknownCompressionScheme, "0x%02X", scheme)
	}
	if err != nil {
		return nil, err
	}

	if uint32(len(out)) != uncompressedSize {
		return nil, errors.Wrapf(ErrCorruptCompression, "got %d bytes want %d", len(out), uncompressedSize)
	}
	return out, nil
}

func decompressZlib(data []byte, uncompressedSize uint32) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "create zlib reader")
	}
	defer r.Close()

	result := make([]byte, uncompressedSize)
	n, err := io.ReadFull(r, result)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, errors.Wrap(err, "zlib decompress")
	}
	return result[:n], nil
}

func decompressBzip2(data []byte, uncompressedSize uint32) ([]byte, error) {
	r := bzip2.NewReader(bytes.NewReader(data))

	result := make([]byte, uncompressedSize)
	n, err := io.ReadFull(r, result)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, errors.Wrap(err, "bzip2 decompress")
	}
	return result[:n], nil
}
