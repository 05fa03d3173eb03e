// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

// Package mpq reads the MPQ (Mo'PaQ) archive container that every
// StarCraft II replay is wrapped in: it discovers the file header (plain or
// behind a user-data header), decrypts the hash and block directory
// tables with the custom Blizzard stream cipher, and resolves named
// entries to their decompressed bytes. Writing archives, multi-archive
// patch chains, and encrypted entries are out of scope -- see DESIGN.md.
package mpq

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// Archive is a read-only, opened MPQ container. It owns its source and its
// two fully-decrypted directory tables; it is not safe for concurrent
// ReadFile calls (ReadFile seeks the shared source).
type Archive struct {
	source     io.ReadSeeker
	header     *archiveHeader
	hashTable  []hashTableEntry
	blockTable []blockTableEntry
}

// Load reads the archive header (following a user-data indirection if
// present), then loads and decrypts both directory tables. The source
// must support random-access reads; Load neither appends to nor
// truncates it.
func Load(source io.ReadSeeker) (*Archive, error) {
	header, err := findArchiveHeader(source)
	if err != nil {
		return nil, err
	}

	if header.FormatVersion > formatVersion2 {
		return nil, errors.Wrapf(ErrUnsupportedVersion, "%d", header.FormatVersion)
	}

	hashTable, err := readHashTable(source, header)
	if err != nil {
		return nil, err
	}

	blockTable, err := readBlockTable(source, header)
	if err != nil {
		return nil, err
	}

	return &Archive{
		source:     source,
		header:     header,
		hashTable:  hashTable,
		blockTable: blockTable,
	}, nil
}

func readHashTable(source io.ReadSeeker, header *archiveHeader) ([]hashTableEntry, error) {
	offset := header.getHashTableOffset64() + header.ArchiveOffset
	if _, err := source.Seek(int64(offset), io.SeekStart); err != nil {
		return nil, errors.Wrapf(err, "seek to hash table at %d", offset)
	}

	words := make([]uint32, header.HashTableSize*4)
	if err := readUint32Array(source, words); err != nil {
		return nil, errors.Wrap(ErrTruncated, "read hash table")
	}
	decryptBlock(words, hashString("(hash table)", hashTypeFileKey))

	table := make([]hashTableEntry, header.HashTableSize)
	for i := range table {
		table[i] = hashTableEntry{
			HashA:      words[i*4],
			HashB:      words[i*4+1],
			Locale:     uint16(words[i*4+2] & 0xFFFF),
			Platform:   uint16(words[i*4+2] >> 16),
			BlockIndex: words[i*4+3],
		}
	}
	return table, nil
}

func readBlockTable(source io.ReadSeeker, header *archiveHeader) ([]blockTableEntry, error) {
	offset := header.getBlockTableOffset64() + header.ArchiveOffset
	if _, err := source.Seek(int64(offset), io.SeekStart); err != nil {
		return nil, errors.Wrapf(err, "seek to block table at %d", offset)
	}

	words := make([]uint32, header.BlockTableSize*4)
	if err := readUint32Array(source, words); err != nil {
		return nil, errors.Wrap(ErrTruncated, "read block table")
	}
	decryptBlock(words, hashString("(block table)", hashTypeFileKey))

	table := make([]blockTableEntry, header.BlockTableSize)
	for i := range table {
		table[i] = blockTableEntry{
			FilePos:        words[i*4],
			CompressedSize: words[i*4+1],
			FileSize:       words[i*4+2],
			Flags:          words[i*4+3],
		}
	}
	return table, nil
}

// findFile looks up name in the hash table (first match wins; duplicate-key
// locale/platform filtering is out of scope) and returns its resolved
// block entry.
func (a *Archive) findFile(name string) (*blockTableEntry, error) {
	hashA := hashString(name, hashTypeNameA)
	hashB := hashString(name, hashTypeNameB)

	for i := range a.hashTable {
		entry := &a.hashTable[i]
		if entry.BlockIndex == hashTableEmpty {
			continue
		}
		if entry.BlockIndex == hashTableDeleted {
			continue
		}
		if entry.HashA != hashA || entry.HashB != hashB {
			continue
		}
		if entry.BlockIndex >= uint32(len(a.blockTable)) {
			continue
		}
		block := &a.blockTable[entry.BlockIndex]
		if block.Flags&fileExists == 0 {
			continue
		}
		return block, nil
	}
	return nil, errors.Wrapf(ErrNotFound, "%s", name)
}

// HasFile reports whether name resolves to an occupied, non-deleted block.
func (a *Archive) HasFile(name string) bool {
	block, err := a.findFile(name)
	if err != nil {
		return false
	}
	return block.Flags&fileDeleteMarker == 0
}

// ReadFile resolves name, applies the block decode algorithm, and
// appends the resulting plaintext bytes to dst. It returns the number
// of bytes appended.
func (a *Archive) ReadFile(name string, dst *[]byte) (int, error) {
	block, err := a.findFile(name)
	if err != nil {
		return 0, err
	}

	if block.Flags&fileExists == 0 {
		return 0, errors.Wrapf(ErrNotFound, "%s", name)
	}
	if block.Flags&fileEncrypted != 0 {
		return 0, errors.Wrapf(ErrUnsupportedEncrypted, "%s", name)
	}
	if block.CompressedSize == 0 {
		return 0, nil
	}

	absOffset := int64(uint64(block.FilePos) + a.header.ArchiveOffset)
	if _, err := a.source.Seek(absOffset, io.SeekStart); err != nil {
		return 0, errors.Wrapf(err, "seek to %s at offset %d", name, absOffset)
	}

	payload := make([]byte, block.CompressedSize)
	if _, err := io.ReadFull(a.source, payload); err != nil {
		return 0, errors.Wrapf(ErrTruncated, "read %s: %v", name, err)
	}

	var plain []byte
	switch {
	case block.Flags&fileSingleUnit != 0:
		plain, err = a.decodeSingleUnit(payload, block)
	default:
		plain, err = a.decodeSectors(payload, block)
	}
	if err != nil {
		return 0, err
	}

	*dst = append(*dst, plain...)
	return len(plain), nil
}

// decodeSingleUnit decodes a block stored as one contiguous unit,
// optionally compressed.
func (a *Archive) decodeSingleUnit(payload []byte, block *blockTableEntry) ([]byte, error) {
	if block.Flags&fileCompress != 0 && block.FileSize > block.CompressedSize {
		return decompressBlock(payload, block.FileSize)
	}
	if uint32(len(payload)) != block.FileSize {
		return nil, errors.Wrapf(ErrCorruptCompression, "uncompressed size mismatch: got %d want %d", len(payload), block.FileSize)
	}
	return payload, nil
}

// decodeSectors decodes a block that begins with a little-endian u32
// array of ⌈size/sectorSize⌉+1 sector offsets, optionally followed by
// one CRC32 per sector when fileSectorCRC is set, followed by the
// sector payloads themselves.
func (a *Archive) decodeSectors(payload []byte, block *blockTableEntry) ([]byte, error) {
	sectorSize := a.header.sectorSize()
	numSectors := (block.FileSize + sectorSize - 1) / sectorSize
	if numSectors == 0 {
		numSectors = 1
	}

	offsetTableBytes := (numSectors + 1) * 4
	if uint32(len(payload)) < offsetTableBytes {
		return nil, errors.Wrap(ErrTruncated, "sector offset table")
	}

	offsets := make([]uint32, numSectors+1)
	for i := range offsets {
		offsets[i] = binary.LittleEndian.Uint32(payload[i*4 : i*4+4])
	}

	var crcs []uint32
	if block.Flags&fileSectorCRC != 0 {
		crcTableEnd := offsetTableBytes + numSectors*4
		if uint32(len(payload)) < crcTableEnd {
			return nil, errors.Wrap(ErrTruncated, "sector CRC table")
		}
		crcs = make([]uint32, numSectors)
		for i := uint32(0); i < numSectors; i++ {
			start := offsetTableBytes + i*4
			crcs[i] = binary.LittleEndian.Uint32(payload[start : start+4])
		}
	}

	result := make([]byte, 0, block.FileSize)
	for i := uint32(0); i < numSectors; i++ {
		start, end := offsets[i], offsets[i+1]
		if start > uint32(len(payload)) || end > uint32(len(payload)) || end < start {
			return nil, errors.Wrapf(ErrCorruptCompression, "invalid sector offsets %d-%d", start, end)
		}
		sector := payload[start:end]

		expected := sectorSize
		if i == numSectors-1 {
			expected = block.FileSize - i*sectorSize
		}

		var out []byte
		var err error
		if block.Flags&fileCompress != 0 && uint32(len(sector)) < expected {
			out, err = decompressBlock(sector, expected)
			if err != nil {
				return nil, errors.Wrapf(err, "sector %d", i)
			}
		} else {
			if uint32(len(sector)) != expected {
				return nil, errors.Wrapf(ErrCorruptCompression, "sector %d: got %d want %d", i, len(sector), expected)
			}
			out = sector
		}

		if crcs != nil {
			// Despite the on-wire field being called a sector "CRC", the
			// archive format actually checksums sector payloads with
			// Adler-32, not CRC-32 (crc32.go's crc32() is the (attributes)
			// file's per-entry checksum instead, a distinct algorithm).
			if got := adler32(out); got != crcs[i] {
				return nil, errors.Wrapf(ErrCorruptCompression, "sector %d CRC mismatch: got 0x%08X want 0x%08X", i, got, crcs[i])
			}
		}

		result = append(result, out...)
	}
	return result, nil
}
