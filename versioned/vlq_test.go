// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

package versioned

import "testing"

func TestReadVlqSignedBoundaries(t *testing.T) {
	cases := []struct {
		name string
		buf  []byte
		want int64
	}{
		{"zero", []byte{0x00}, 0},
		{"negative one", []byte{0x03}, -1},
		{"sixty-three", []byte{0x7E}, 63},
		{"sixty-four", []byte{0x80, 0x01}, 64},
		{"negative sixty-four", []byte{0x81, 0x01}, -64},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := &reader{buf: c.buf}
			got, err := r.readVlqSigned()
			if err != nil {
				t.Fatalf("readVlqSigned(%v): %v", c.buf, err)
			}
			if got != c.want {
				t.Errorf("readVlqSigned(%v) = %d, want %d", c.buf, got, c.want)
			}
			if r.pos != len(c.buf) {
				t.Errorf("consumed %d bytes, want %d", r.pos, len(c.buf))
			}
		})
	}
}

func TestReadVlqUnsignedRejectsNegative(t *testing.T) {
	// Unsigned decode of 0x01 (which would decode to -0) is an error.
	r := &reader{buf: []byte{0x01}}
	if _, err := r.readVlqUnsigned(); err != ErrNegativeInUnsigned {
		t.Fatalf("readVlqUnsigned(0x01): got %v, want ErrNegativeInUnsigned", err)
	}
}

func TestReadVlqUnsignedMatchesSignedMagnitude(t *testing.T) {
	r := &reader{buf: []byte{0x80, 0x01}}
	got, err := r.readVlqUnsigned()
	if err != nil {
		t.Fatalf("readVlqUnsigned: %v", err)
	}
	if got != 64 {
		t.Errorf("readVlqUnsigned(0x80 0x01) = %d, want 64", got)
	}
}
