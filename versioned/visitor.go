// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

package versioned

// Visitor receives one event per decoded value, in the order they
// appear on the wire. Decode drives a Visitor without materializing
// any tree itself: the value package's Builder is one such Visitor,
// producing a generic Value tree; typed record population is another.
//
// Choice values are transparent: the selected arm is decoded and
// emitted directly, with no wrapping event, since the arm's own type
// already carries the information a caller needs.
type Visitor interface {
	Bool(v bool) error
	Int(v int64) error
	Bytes(v []byte) error
	String(v string) error
	FourCC(v []byte) error
	Real32(v float32) error
	Real64(v float64) error
	Null() error

	BeginArray(length int) error
	EndArray() error

	BeginStruct(fieldCount int) error
	FieldName(name string) error
	EndStruct() error

	BeginOptionalSome() error
	EndOptionalSome() error
	OptionalNone() error
}
