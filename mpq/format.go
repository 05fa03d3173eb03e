// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

package mpq

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// MPQ format constants.
const (
	// mpqMagic is "MPQ\x1A" read as a little-endian u32.
	mpqMagic = 0x1A51504D
	// userDataMagic is "MPQ\x1B" read as a little-endian u32.
	userDataMagic = 0x1B51504D

	// Format versions.
	formatVersion1 = 0 // Original format (up to 4GB)
	formatVersion2 = 1 // Extended format (Burning Crusade+)

	// Header sizes.
	headerSizeV1 = 0x20 // 32 bytes
	headerSizeV2 = 0x2C // 44 bytes

	// Block table entry flags.
	fileImplode      = 0x00000100 // Imploded (PKWARE compression)
	fileCompress     = 0x00000200 // Compressed (multi-algorithm)
	fileEncrypted    = 0x00010000 // Encrypted
	fileFixKey       = 0x00020000 // Key adjusted by block offset/size
	filePatchFile    = 0x00100000 // Patch file
	fileSingleUnit   = 0x01000000 // Single unit (not split into sectors)
	fileDeleteMarker = 0x02000000 // File is a deletion marker
	fileSectorCRC    = 0x04000000 // Sector CRC values present
	fileExists       = 0x80000000 // Slot is occupied

	// Hash table entry constants.
	hashTableEmpty   = 0xFFFFFFFF
	hashTableDeleted = 0xFFFFFFFE

	localeNeutral = 0x00000000

	// defaultSectorSizeShift is the sector_size_shift of a known test
	// replay; the actual per-archive shift always comes from the header,
	// this constant is only used by the tests' synthetic archives.
	defaultSectorSizeShift = 3
	// sectorSizeBase is the archive sector-size formula: 512 << shift.
	sectorSizeBase = 512
)

// baseHeader is the MPQ archive file header (V1 layout, 32 bytes).
type baseHeader struct {
	Magic            uint32 // "MPQ\x1A"
	HeaderSize       uint32 // Size of this header (0x20 for V1, 0x2C for V2)
	ArchiveSize      uint32 // Size of the entire archive
	FormatVersion    uint16 // Format version (0 = V1, 1 = V2)
	SectorSizeShift  uint16 // Power-of-2 shift in the 512<<shift formula
	HashTableOffset  uint32 // Offset to hash table, relative to file header
	BlockTableOffset uint32 // Offset to block table, relative to file header
	HashTableSize    uint32 // Number of entries in hash table
	BlockTableSize   uint32 // Number of entries in block table
}

// extendedHeader contains the V2-only extension fields (12 bytes) that
// follow baseHeader when FormatVersion >= formatVersion2 and HeaderSize >=
// headerSizeV2. readFileHeaderAt reads them for V2 archives and the
// table-offset getters fold the high offset bits in; Load accepts V1 and
// V2 and rejects any newer format version with ErrUnsupportedVersion.
type extendedHeader struct {
	HiBlockTableOffset64 uint64 // 64-bit offset to the hi-block table
	HashTableOffsetHi    uint16 // High 16 bits of hash table offset
	BlockTableOffsetHi   uint16 // High 16 bits of block table offset
}

// archiveHeader combines the V1 header, the optional V2 extension, and the
// absolute byte offset at which the file header itself was found -- either
// 0, or the mpq_header_offset declared by a preceding user-data header.
type archiveHeader struct {
	baseHeader
	extendedHeader
	ArchiveOffset uint64
}

func (h *archiveHeader) getHashTableOffset64() uint64 {
	if h.FormatVersion >= formatVersion2 {
		return uint64(h.HashTableOffset) | (uint64(h.HashTableOffsetHi) << 32)
	}
	return uint64(h.HashTableOffset)
}

func (h *archiveHeader) getBlockTableOffset64() uint64 {
	if h.FormatVersion >= formatVersion2 {
		return uint64(h.BlockTableOffset) | (uint64(h.BlockTableOffsetHi) << 32)
	}
	return uint64(h.BlockTableOffset)
}

func (h *archiveHeader) sectorSize() uint32 {
	return sectorSizeBase << h.SectorSizeShift
}

// hashTableEntry is one decrypted 16-byte hash-directory slot.
type hashTableEntry struct {
	HashA      uint32 // First hash of the file name
	HashB      uint32 // Second hash of the file name
	Locale     uint16 // Locale ID
	Platform   uint16 // Platform ID (0 = default)
	BlockIndex uint32 // Index into the block table
}

// blockTableEntry is one decrypted 16-byte block-directory slot.
type blockTableEntry struct {
	FilePos        uint32 // Offset of the file data, relative to file header
	CompressedSize uint32 // Archived (on-disk) file size
	FileSize       uint32 // Uncompressed file size
	Flags          uint32 // File flags
}

// userDataHeader is the optional header preceding the file header.
type userDataHeader struct {
	Magic          uint32
	UserDataSize   uint32
	HeaderOffset   uint32
	UserHeaderSize uint32
}

// findArchiveHeader locates the file header, following a user-data header
// indirection when present, decoding little-endian structs via
// binary.Read the same way the rest of this package does.
func findArchiveHeader(r io.ReadSeeker) (*archiveHeader, error) {
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, errors.Wrap(err, "seek to offset 0")
	}

	var magic uint32
	if err := binary.Read(r, binary.LittleEndian, &magic); err != nil {
		return nil, errors.Wrap(ErrTruncated, "read magic")
	}

	switch magic {
	case mpqMagic:
		return readFileHeaderAt(r, 0)

	case userDataMagic:
		var ud userDataHeader
		ud.Magic = magic
		if err := binary.Read(r, binary.LittleEndian, &ud.UserDataSize); err != nil {
			return nil, errors.Wrap(ErrTruncated, "read user data size")
		}
		if err := binary.Read(r, binary.LittleEndian, &ud.HeaderOffset); err != nil {
			return nil, errors.Wrap(ErrTruncated, "read embedded header offset")
		}
		if err := binary.Read(r, binary.LittleEndian, &ud.UserHeaderSize); err != nil {
			return nil, errors.Wrap(ErrTruncated, "read user header size")
		}
		return readFileHeaderAt(r, int64(ud.HeaderOffset))

	default:
		return nil, errors.Wrapf(ErrBadMagic, "0x%08X", magic)
	}
}

// readFileHeaderAt seeks to offset and reads the base (and, if declared,
// extended) file header, recording offset as the header's ArchiveOffset.
func readFileHeaderAt(r io.ReadSeeker, offset int64) (*archiveHeader, error) {
	if _, err := r.Seek(offset, io.SeekStart); err != nil {
		return nil, errors.Wrapf(err, "seek to file header at %d", offset)
	}

	h := &archiveHeader{ArchiveOffset: uint64(offset)}
	if err := binary.Read(r, binary.LittleEndian, &h.baseHeader); err != nil {
		return nil, errors.Wrap(ErrTruncated, "read file header")
	}

	if h.baseHeader.Magic != mpqMagic {
		return nil, errors.Wrapf(ErrBadMagic, "0x%08X", h.baseHeader.Magic)
	}

	if h.FormatVersion >= formatVersion2 && h.HeaderSize >= headerSizeV2 {
		if err := binary.Read(r, binary.LittleEndian, &h.extendedHeader); err != nil {
			return nil, errors.Wrap(ErrTruncated, "read extended header")
		}
	}

	return h, nil
}

func readUint32Array(r io.Reader, data []uint32) error {
	return binary.Read(r, binary.LittleEndian, data)
}
