// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

// Package versioned decodes the tag-prefixed binary format used by SC2
// replay entries (replay.header, replay.details, ...) against a static
// type catalogue, exposing the result through an event-driven Visitor
// rather than materializing a tree itself — the value package is the
// tree-building consumer of that visitor surface.
package versioned

// TypeId indexes into a TypeInfo catalogue.
type TypeId uint32

// Kind identifies which of the catalogue's type-descriptor shapes a
// TypeInfo carries.
type Kind int

const (
	KindArray Kind = iota
	KindBitArray
	KindBlob
	KindBool
	KindChoice
	KindFourCC
	KindInt
	KindNull
	KindOptional
	KindReal32
	KindReal64
	KindStruct
)

// IntBounds bounds a vlq-encoded integer: the value emitted by the wire
// is bounds.Min + vlq. BitLen is carried for catalogue fidelity but is
// not consulted during decode (the wire length is self-describing via
// the vlq continuation bit, not the declared bit width).
type IntBounds struct {
	Min    int64
	BitLen uint8
}

// StructField is one field of a Struct type: its emitted name, the
// typeid of its value, and the wire tag used to address it inside an
// encoded struct.
type StructField struct {
	Name string
	Type TypeId
	Tag  int32
}

// Struct lists a struct type's fields; order matches declaration order
// in the source protocol, used only for documentation (field lookup at
// decode time is by Tag, not position).
type Struct struct {
	Fields []StructField
}

// ChoiceOption names one arm of a Choice type: the field name it
// would take were it a struct field, and the typeid of its payload.
type ChoiceOption struct {
	Name string
	Type TypeId
}

// TypeInfo is one entry of a protocol's compile-time type catalogue.
// Only the fields relevant to Kind are populated; the rest are zero.
type TypeInfo struct {
	Kind    Kind
	Bounds  IntBounds // Array length bounds, BitArray/Blob length bounds, Choice selector bounds, Int value bounds
	Elem    TypeId    // Array element type, Optional payload type
	Struct  Struct    // Struct
	Choices map[uint32]ChoiceOption // Choice
}
