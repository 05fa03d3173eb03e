// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

package mpq

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// Attributes flag bits within the (attributes) special file.
const (
	attributesFlagCRC32     = 0x00000001
	attributesFlagTimestamp = 0x00000002
	attributesFlagMD5       = 0x00000004
)

// Attributes is the parsed contents of the optional "(attributes)" special
// file: one CRC32 per block-table entry, in block-table order. This module
// only ever consumes one that already exists in an archive being read, so
// it is a reader plus a per-entry CRC32 check rather than a generator.
type Attributes struct {
	Version uint32
	Flags   uint32
	CRC32   []uint32
}

// ReadAttributes reads and parses "(attributes)" if present. It returns
// (nil, nil) when the archive has no attributes file, since the file is
// always optional.
func (a *Archive) ReadAttributes() (*Attributes, error) {
	if !a.HasFile("(attributes)") {
		return nil, nil
	}

	var buf []byte
	if _, err := a.ReadFile("(attributes)", &buf); err != nil {
		return nil, errors.Wrap(err, "read (attributes)")
	}
	if len(buf) < 8 {
		return nil, errors.Errorf("(attributes): too small: %d bytes", len(buf))
	}

	attrs := &Attributes{
		Version: binary.LittleEndian.Uint32(buf[0:4]),
		Flags:   binary.LittleEndian.Uint32(buf[4:8]),
	}

	if attrs.Flags&attributesFlagCRC32 == 0 {
		return attrs, nil
	}

	n := len(a.blockTable)
	need := 8 + n*4
	if len(buf) < need {
		return nil, errors.Errorf("(attributes): CRC32 table truncated: have %d need %d", len(buf), need)
	}

	attrs.CRC32 = make([]uint32, n)
	for i := 0; i < n; i++ {
		offset := 8 + i*4
		attrs.CRC32[i] = binary.LittleEndian.Uint32(buf[offset : offset+4])
	}
	return attrs, nil
}

// ValidateEntry reads name and cross-checks its CRC32 against the archive's
// (attributes) table, returning (false, nil) if they disagree. It is a
// no-op returning (true, nil) when the attributes file (or its CRC32 flag)
// is absent; an entry that cannot be found is reported as an error.
func (a *Archive) ValidateEntry(name string) (bool, error) {
	attrs, err := a.ReadAttributes()
	if err != nil {
		return false, err
	}
	if attrs == nil || attrs.CRC32 == nil {
		return true, nil
	}

	block, err := a.findFile(name)
	if err != nil {
		return false, err
	}

	index := -1
	for i := range a.blockTable {
		if &a.blockTable[i] == block {
			index = i
			break
		}
	}
	if index < 0 || index >= len(attrs.CRC32) {
		return false, errors.Errorf("%s: block index out of range for attributes table", name)
	}

	var data []byte
	if _, err := a.ReadFile(name, &data); err != nil {
		return false, err
	}

	want := attrs.CRC32[index]
	got := crc32(data)
	return got == want, nil
}
