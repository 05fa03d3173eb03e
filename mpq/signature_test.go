// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

package mpq

import (
	"bytes"
	"testing"
)

func buildSignatureFile(version uint32, sig []byte) []byte {
	var buf bytes.Buffer
	writeUint32LE(&buf, version)
	writeUint32LE(&buf, uint32(len(sig)))
	buf.Write(sig)
	return buf.Bytes()
}

// TestReadSignatureWeak builds an archive with a version-0 (weak) signature
// and checks ReadSignature parses it and VerifySignature accepts its shape.
func TestReadSignatureWeak(t *testing.T) {
	sig := bytes.Repeat([]byte{0x42}, 64)
	raw := buildTestArchiveMulti([]testArchiveEntry{
		{"replay.details", []byte("payload")},
		{"(signature)", buildSignatureFile(0, sig)},
	})

	archive, err := Load(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	info, err := archive.ReadSignature()
	if err != nil {
		t.Fatalf("ReadSignature: %v", err)
	}
	if info == nil {
		t.Fatal("ReadSignature = nil, want non-nil")
	}
	if info.Version != 0 {
		t.Errorf("Version = %d, want 0", info.Version)
	}
	if !bytes.Equal(info.Signature, sig) {
		t.Errorf("Signature = %x, want %x", info.Signature, sig)
	}
	if err := info.VerifySignature(); err != nil {
		t.Errorf("VerifySignature: %v", err)
	}
}

// TestVerifySignatureRejectsShortWeak confirms VerifySignature enforces the
// weak-signature minimum length rather than accepting any version-0 blob.
func TestVerifySignatureRejectsShortWeak(t *testing.T) {
	info := &SignatureInfo{Version: 0, Signature: make([]byte, 10)}
	if err := info.VerifySignature(); err == nil {
		t.Fatal("VerifySignature: want error for an undersized weak signature, got nil")
	}
}

// TestVerifySignatureRejectsUnknownVersion confirms an unrecognized
// signature version is rejected rather than silently accepted.
func TestVerifySignatureRejectsUnknownVersion(t *testing.T) {
	info := &SignatureInfo{Version: 7, Signature: make([]byte, 256)}
	if err := info.VerifySignature(); err == nil {
		t.Fatal("VerifySignature: want error for an unknown version, got nil")
	}
}

// TestReadSignatureAbsent confirms the always-optional contract: an
// archive with no "(signature)" file reports (nil, nil).
func TestReadSignatureAbsent(t *testing.T) {
	raw := buildTestArchive("replay.details", []byte("payload"))
	archive, err := Load(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	info, err := archive.ReadSignature()
	if err != nil {
		t.Fatalf("ReadSignature: %v", err)
	}
	if info != nil {
		t.Errorf("ReadSignature = %+v, want nil", info)
	}
}

// TestVerifySignatureNilReceiver confirms the nil-safety documented on
// VerifySignature: calling it on a nil *SignatureInfo errors instead of
// panicking.
func TestVerifySignatureNilReceiver(t *testing.T) {
	var info *SignatureInfo
	if err := info.VerifySignature(); err == nil {
		t.Fatal("VerifySignature: want error for a nil receiver, got nil")
	}
}
