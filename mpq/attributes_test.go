// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

package mpq

import (
	"bytes"
	"testing"
)

func buildAttributesFile(crcs []uint32) []byte {
	var buf bytes.Buffer
	writeUint32LE(&buf, 100) // version
	writeUint32LE(&buf, attributesFlagCRC32)
	for _, c := range crcs {
		writeUint32LE(&buf, c)
	}
	return buf.Bytes()
}

// TestValidateEntryAccepts builds a two-entry archive ("replay.details"
// plus "(attributes)") whose CRC32 table matches the real content, and
// checks ValidateEntry reports agreement.
func TestValidateEntryAccepts(t *testing.T) {
	details := []byte("m_title fixture payload")
	attrs := buildAttributesFile([]uint32{crc32(details), 0})

	raw := buildTestArchiveMulti([]testArchiveEntry{
		{"replay.details", details},
		{"(attributes)", attrs},
	})

	archive, err := Load(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	ok, err := archive.ValidateEntry("replay.details")
	if err != nil {
		t.Fatalf("ValidateEntry: %v", err)
	}
	if !ok {
		t.Fatal("ValidateEntry = false, want true for a matching CRC32")
	}
}

// TestValidateEntryDetectsMismatch corrupts the attributes table's CRC32
// entry and checks ValidateEntry reports disagreement rather than erroring.
func TestValidateEntryDetectsMismatch(t *testing.T) {
	details := []byte("m_title fixture payload")
	attrs := buildAttributesFile([]uint32{crc32(details) ^ 0xFFFFFFFF, 0})

	raw := buildTestArchiveMulti([]testArchiveEntry{
		{"replay.details", details},
		{"(attributes)", attrs},
	})

	archive, err := Load(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	ok, err := archive.ValidateEntry("replay.details")
	if err != nil {
		t.Fatalf("ValidateEntry: %v", err)
	}
	if ok {
		t.Fatal("ValidateEntry = true, want false for a tampered CRC32")
	}
}

// TestValidateEntryNoAttributes confirms the no-op contract: an archive
// with no (attributes) file at all reports (true, nil) for any entry.
func TestValidateEntryNoAttributes(t *testing.T) {
	raw := buildTestArchive("replay.details", []byte("payload"))
	archive, err := Load(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	ok, err := archive.ValidateEntry("replay.details")
	if err != nil {
		t.Fatalf("ValidateEntry: %v", err)
	}
	if !ok {
		t.Fatal("ValidateEntry = false, want true when no (attributes) file is present")
	}
}

// TestReadAttributesNoFlags confirms a version/flags-only attributes file
// (no CRC32 bit set) parses without requiring a checksum table.
func TestReadAttributesNoFlags(t *testing.T) {
	var buf bytes.Buffer
	writeUint32LE(&buf, 100)
	writeUint32LE(&buf, 0)

	raw := buildTestArchiveMulti([]testArchiveEntry{
		{"replay.details", []byte("x")},
		{"(attributes)", buf.Bytes()},
	})
	archive, err := Load(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	attrs, err := archive.ReadAttributes()
	if err != nil {
		t.Fatalf("ReadAttributes: %v", err)
	}
	if attrs == nil {
		t.Fatal("ReadAttributes = nil, want non-nil")
	}
	if attrs.CRC32 != nil {
		t.Errorf("CRC32 = %v, want nil when the CRC32 flag is unset", attrs.CRC32)
	}
}
