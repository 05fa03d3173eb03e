// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

package mpq

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// SignatureInfo is the parsed contents of the "(signature)" special file.
type SignatureInfo struct {
	Version   uint32
	Signature []byte
}

// ReadSignature reads and parses the "(signature)" special file if present.
// It returns (nil, nil) when the archive has no signature, since the file
// is always optional.
func (a *Archive) ReadSignature() (*SignatureInfo, error) {
	if !a.HasFile("(signature)") {
		return nil, nil
	}

	var buf []byte
	if _, err := a.ReadFile("(signature)", &buf); err != nil {
		return nil, errors.Wrap(err, "read (signature)")
	}
	if len(buf) < 8 {
		return nil, errors.Errorf("(signature): too small: %d bytes", len(buf))
	}

	version := binary.LittleEndian.Uint32(buf[0:4])
	sigLength := binary.LittleEndian.Uint32(buf[4:8])
	if uint32(len(buf)) < 8+sigLength {
		return nil, errors.Errorf("(signature): truncated: want %d have %d", 8+sigLength, len(buf))
	}

	signature := make([]byte, sigLength)
	copy(signature, buf[8:8+sigLength])

	return &SignatureInfo{
		Version:   version,
		Signature: signature,
	}, nil
}

// VerifySignature performs basic shape validation only: full RSA/DSA
// verification requires Blizzard's specific public keys and is out of
// scope here. Calling it on a nil *SignatureInfo returns an error rather
// than panicking.
func (s *SignatureInfo) VerifySignature() error {
	if s == nil {
		return errors.New("no signature available")
	}
	switch s.Version {
	case 0: // weak signature (deprecated)
		if len(s.Signature) < 64 {
			return errors.Errorf("weak signature too short: %d bytes", len(s.Signature))
		}
	case 1: // strong signature
		if len(s.Signature) < 256 {
			return errors.Errorf("strong signature too short: %d bytes", len(s.Signature))
		}
	default:
		return errors.Errorf("unknown signature version: %d", s.Version)
	}
	return nil
}
