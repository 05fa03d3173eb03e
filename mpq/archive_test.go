// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

package mpq

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

func writeUint32LE(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}

func writeUint16LE(buf *bytes.Buffer, v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	buf.Write(b[:])
}

// buildTestArchive assembles a minimal, valid V1 MPQ archive in memory
// holding a single uncompressed, unencrypted, single-unit entry named
// mpqName. It mirrors the archive's on-wire layout, built by encrypting
// the directory tables with encryptBlock (the inverse of the decrypt this
// package implements) rather than replaying byte-for-byte captured
// fixtures, since no binary replay sample is available in the retrieval
// pack.
func buildTestArchive(mpqName string, data []byte) []byte {
	const hashSize = 4
	const blockSize = 1

	headerSize := uint32(headerSizeV1)
	fileOffset := headerSize
	hashTableOffset := fileOffset + uint32(len(data))
	blockTableOffset := hashTableOffset + hashSize*16

	var buf bytes.Buffer

	writeUint32LE(&buf, mpqMagic)
	writeUint32LE(&buf, headerSize)
	writeUint32LE(&buf, blockTableOffset+blockSize*16)
	writeUint16LE(&buf, uint16(formatVersion1))
	writeUint16LE(&buf, uint16(defaultSectorSizeShift))
	writeUint32LE(&buf, hashTableOffset)
	writeUint32LE(&buf, blockTableOffset)
	writeUint32LE(&buf, hashSize)
	writeUint32LE(&buf, blockSize)

	buf.Write(data)

	hashWords := make([]uint32, hashSize*4)
	for i := range hashWords {
		hashWords[i] = hashTableEmpty
	}
	hashA := hashString(mpqName, hashTypeNameA)
	hashB := hashString(mpqName, hashTypeNameB)
	slot := hashString(mpqName, hashTypeTableOffset) % hashSize
	hashWords[slot*4+0] = hashA
	hashWords[slot*4+1] = hashB
	hashWords[slot*4+2] = uint32(localeNeutral)
	hashWords[slot*4+3] = 0
	encryptBlock(hashWords, hashString("(hash table)", hashTypeFileKey))
	for _, w := range hashWords {
		writeUint32LE(&buf, w)
	}

	blockWords := []uint32{
		fileOffset,
		uint32(len(data)),
		uint32(len(data)),
		fileExists | fileSingleUnit,
	}
	encryptBlock(blockWords, hashString("(block table)", hashTypeFileKey))
	for _, w := range blockWords {
		writeUint32LE(&buf, w)
	}

	return buf.Bytes()
}

// testArchiveEntry is one named entry passed to buildTestArchiveMulti. Its
// block-table index is its position in the slice, since (attributes)'s
// CRC32 table is indexed by block-table order and tests need to predict it.
type testArchiveEntry struct {
	name string
	data []byte
}

// buildTestArchiveMulti is buildTestArchive generalized to several
// uncompressed, unencrypted, single-unit entries, in block-table order. It
// is used by tests that need an "(attributes)" and/or "(signature)" special
// file alongside one or more ordinary entries.
func buildTestArchiveMulti(entries []testArchiveEntry) []byte {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.name
	}

	hashSize := uint32(4)
	for hashSize < uint32(len(names))*2 {
		hashSize *= 2
	}
	blockSize := uint32(len(names))

	headerSize := uint32(headerSizeV1)
	fileOffset := headerSize

	var dataBuf bytes.Buffer
	offsets := make([]uint32, len(names))
	sizes := make([]uint32, len(names))
	for i, e := range entries {
		offsets[i] = fileOffset + uint32(dataBuf.Len())
		sizes[i] = uint32(len(e.data))
		dataBuf.Write(e.data)
	}

	hashTableOffset := fileOffset + uint32(dataBuf.Len())
	blockTableOffset := hashTableOffset + hashSize*16

	var buf bytes.Buffer
	writeUint32LE(&buf, mpqMagic)
	writeUint32LE(&buf, headerSize)
	writeUint32LE(&buf, blockTableOffset+blockSize*16)
	writeUint16LE(&buf, uint16(formatVersion1))
	writeUint16LE(&buf, uint16(defaultSectorSizeShift))
	writeUint32LE(&buf, hashTableOffset)
	writeUint32LE(&buf, blockTableOffset)
	writeUint32LE(&buf, hashSize)
	writeUint32LE(&buf, blockSize)

	buf.Write(dataBuf.Bytes())

	hashWords := make([]uint32, hashSize*4)
	for i := range hashWords {
		hashWords[i] = hashTableEmpty
	}
	for i, name := range names {
		hashA := hashString(name, hashTypeNameA)
		hashB := hashString(name, hashTypeNameB)
		slot := hashString(name, hashTypeTableOffset) % hashSize
		for hashWords[slot*4+3] != hashTableEmpty {
			slot = (slot + 1) % hashSize
		}
		hashWords[slot*4+0] = hashA
		hashWords[slot*4+1] = hashB
		hashWords[slot*4+2] = uint32(localeNeutral)
		hashWords[slot*4+3] = uint32(i)
	}
	encryptBlock(hashWords, hashString("(hash table)", hashTypeFileKey))
	for _, w := range hashWords {
		writeUint32LE(&buf, w)
	}

	blockWords := make([]uint32, 0, blockSize*4)
	for i := range names {
		blockWords = append(blockWords, offsets[i], sizes[i], sizes[i], fileExists|fileSingleUnit)
	}
	encryptBlock(blockWords, hashString("(block table)", hashTypeFileKey))
	for _, w := range blockWords {
		writeUint32LE(&buf, w)
	}

	return buf.Bytes()
}

func TestLoadAndReadFile(t *testing.T) {
	want := []byte("hello, replay")
	raw := buildTestArchive("test.txt", want)

	archive, err := Load(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if !archive.HasFile("test.txt") {
		t.Fatalf("HasFile(test.txt) = false, want true")
	}
	if !archive.HasFile("TEST.TXT") {
		t.Errorf("HasFile is not case-insensitive")
	}

	var got []byte
	n, err := archive.ReadFile("test.txt", &got)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if n != len(want) {
		t.Errorf("ReadFile returned %d bytes, want %d", n, len(want))
	}
	if !bytes.Equal(got, want) {
		t.Errorf("ReadFile = %q, want %q", got, want)
	}
}

func TestReadFileNotFound(t *testing.T) {
	raw := buildTestArchive("test.txt", []byte("x"))
	archive, err := Load(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	var buf []byte
	if _, err := archive.ReadFile("missing.txt", &buf); !errors.Is(err, ErrNotFound) {
		t.Fatalf("ReadFile(missing.txt): got %v, want ErrNotFound", err)
	}
}

func TestLoadBadMagic(t *testing.T) {
	raw := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	if _, err := Load(bytes.NewReader(raw)); !errors.Is(err, ErrBadMagic) {
		t.Fatalf("Load: got %v, want ErrBadMagic", err)
	}
}

func TestLoadUserDataIndirection(t *testing.T) {
	inner := buildTestArchive("test.txt", []byte("payload"))

	var buf bytes.Buffer
	const embeddedOffset = 64

	writeUint32LE(&buf, userDataMagic)
	writeUint32LE(&buf, embeddedOffset) // user data size (unused by Load)
	writeUint32LE(&buf, embeddedOffset) // mpq_header_offset
	writeUint32LE(&buf, 16)             // user header size
	buf.Write(make([]byte, embeddedOffset-buf.Len()))
	buf.Write(inner)

	archive, err := Load(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Load with user-data header: %v", err)
	}
	if archive.header.ArchiveOffset != embeddedOffset {
		t.Errorf("ArchiveOffset = %d, want %d", archive.header.ArchiveOffset, embeddedOffset)
	}

	var got []byte
	if _, err := archive.ReadFile("test.txt", &got); err != nil {
		t.Fatalf("ReadFile after user-data indirection: %v", err)
	}
	if string(got) != "payload" {
		t.Errorf("ReadFile = %q, want %q", got, "payload")
	}
}

// TestSectorDecode exercises the multi-unit sector branch, which the
// reference implementations leave unimplemented.
func TestSectorDecode(t *testing.T) {
	sectorSize := uint32(sectorSizeBase << defaultSectorSizeShift)
	fileSize := sectorSize + 10 // two sectors: one full, one partial
	sector0 := bytes.Repeat([]byte{0xAB}, int(sectorSize))
	sector1 := bytes.Repeat([]byte{0xCD}, 10)

	var payload bytes.Buffer
	off0 := uint32(3 * 4) // offset table has 3 entries (2 sectors + 1)
	off1 := off0 + sectorSize
	off2 := off1 + 10
	writeUint32LE(&payload, off0)
	writeUint32LE(&payload, off1)
	writeUint32LE(&payload, off2)
	payload.Write(sector0)
	payload.Write(sector1)

	a := &Archive{header: &archiveHeader{}}
	a.header.SectorSizeShift = defaultSectorSizeShift

	block := &blockTableEntry{FileSize: fileSize, Flags: fileExists}
	got, err := a.decodeSectors(payload.Bytes(), block)
	if err != nil {
		t.Fatalf("decodeSectors: %v", err)
	}

	want := append(append([]byte{}, sector0...), sector1...)
	if !bytes.Equal(got, want) {
		t.Fatalf("decodeSectors produced %d bytes, want %d", len(got), len(want))
	}
}

// TestArchiveHeaderFixture pins a known archive's literal header values
// against the struct layout, guarding against field reordering.
func TestArchiveHeaderFixture(t *testing.T) {
	h := archiveHeader{
		baseHeader: baseHeader{
			Magic:            mpqMagic,
			HeaderSize:       44,
			ArchiveSize:      205044,
			FormatVersion:    formatVersion2,
			SectorSizeShift:  3,
			HashTableOffset:  204628,
			BlockTableOffset: 204884,
			HashTableSize:    16,
			BlockTableSize:   10,
		},
		ArchiveOffset: 1024,
	}

	if h.sectorSize() != 4096 {
		t.Errorf("sectorSize() = %d, want 4096", h.sectorSize())
	}
	if h.getHashTableOffset64() != 204628 {
		t.Errorf("getHashTableOffset64() = %d, want 204628", h.getHashTableOffset64())
	}
	if h.getBlockTableOffset64() != 204884 {
		t.Errorf("getBlockTableOffset64() = %d, want 204884", h.getBlockTableOffset64())
	}
}

// TestBlockTableFixture pins a known archive's literal block-table
// tuples, verifying the shared fileExists|fileCompress|fileSingleUnit
// flag combination decodes as expected.
func TestBlockTableFixture(t *testing.T) {
	fixtures := []blockTableEntry{
		{FilePos: 0x0000002C, CompressedSize: 727, FileSize: 890, Flags: 0x81000200},
		{FilePos: 0x00000303, CompressedSize: 801, FileSize: 1257, Flags: 0x81000200},
		{FilePos: 0x00000624, CompressedSize: 194096, FileSize: 479869, Flags: 0x81000200},
		{FilePos: 0x0002FC54, CompressedSize: 226, FileSize: 334, Flags: 0x81000200},
		{FilePos: 0x0002FD36, CompressedSize: 97, FileSize: 97, Flags: 0x81000200},
		{FilePos: 0x0002FD97, CompressedSize: 1323, FileSize: 1970, Flags: 0x81000200},
		{FilePos: 0x000302C2, CompressedSize: 6407, FileSize: 12431, Flags: 0x81000200},
		{FilePos: 0x00031BC9, CompressedSize: 533, FileSize: 2400, Flags: 0x81000200},
		{FilePos: 0x00031DDE, CompressedSize: 120, FileSize: 164, Flags: 0x81000200},
		{FilePos: 0x00031E56, CompressedSize: 254, FileSize: 288, Flags: 0x81000200},
	}

	for i, f := range fixtures {
		if f.Flags&fileExists == 0 {
			t.Errorf("entry %d: fileExists not set", i)
		}
		if f.Flags&fileCompress == 0 {
			t.Errorf("entry %d: fileCompress not set", i)
		}
		if f.Flags&fileSingleUnit == 0 {
			t.Errorf("entry %d: fileSingleUnit not set", i)
		}
		if f.Flags&fileEncrypted != 0 {
			t.Errorf("entry %d: fileEncrypted unexpectedly set", i)
		}
	}
}

// TestDecompressUnknownScheme asserts the scheme-byte dispatch rejects
// anything outside store/zlib/bzip2.
func TestDecompressUnknownScheme(t *testing.T) {
	payload := []byte{compressionPKWare, 1, 2, 3}
	if _, err := decompressBlock(payload, 3); !errors.Is(err, ErrUnknownCompressionScheme) {
		t.Fatalf("decompressBlock: got %v, want ErrUnknownCompressionScheme", err)
	}
}
