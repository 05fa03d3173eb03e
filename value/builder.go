// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

package value

import "github.com/pkg/errors"

// Builder implements versioned.Visitor, assembling the events driven by
// versioned.Decode into a Value tree without versioned ever importing
// this package.
type Builder struct {
	stack  []*frame
	result *Value
	done   bool
}

type frameKind int

const (
	frameArray frameKind = iota
	frameStruct
	frameOptional
)

type frame struct {
	kind  frameKind
	array []*Value
	dict  *Dict
	field string
	inner *Value
}

// NewBuilder returns a Builder ready to receive one decode's events.
func NewBuilder() *Builder {
	return &Builder{}
}

// Result returns the tree built so far. It is an error to call this
// before the driving Decode call has completed (the stack must be
// fully unwound) or before anything has been emitted.
func (b *Builder) Result() (*Value, error) {
	if len(b.stack) != 0 {
		return nil, errors.New("value: builder result requested with unclosed array/struct/optional")
	}
	if !b.done {
		return nil, errors.New("value: builder produced no value")
	}
	return b.result, nil
}

func (b *Builder) emit(v *Value) error {
	if len(b.stack) == 0 {
		b.result = v
		b.done = true
		return nil
	}
	top := b.stack[len(b.stack)-1]
	switch top.kind {
	case frameArray:
		top.array = append(top.array, v)
	case frameStruct:
		top.dict.set(top.field, v)
		top.field = ""
	case frameOptional:
		top.inner = v
	}
	return nil
}

func (b *Builder) pop() *frame {
	top := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	return top
}

func (b *Builder) Bool(v bool) error { return b.emit(newBool(v)) }

// Int splits the decoder's single signed-64 result between the tree's
// I64 and U64 variants by sign: the catalogue's IntBounds already
// shifted the wire value by bounds.min, so a negative result can only
// come from a field whose declared range dips below zero (e.g.
// m_timeLocalOffset), while the common non-negative case (counts,
// color components, ids) is the unsigned variant accessors expect.
func (b *Builder) Int(v int64) error {
	if v < 0 {
		return b.emit(newI64(v))
	}
	return b.emit(newU64(uint64(v)))
}

func (b *Builder) Bytes(v []byte) error {
	return b.emit(newBytes(append([]byte(nil), v...)))
}

func (b *Builder) String(v string) error { return b.emit(newString(v)) }

// FourCC has no dedicated Value variant; it is carried as its raw 4
// bytes, the same representation an un-decodable Blob gets.
func (b *Builder) FourCC(v []byte) error {
	return b.emit(newBytes(append([]byte(nil), v...)))
}

func (b *Builder) Real32(v float32) error { return b.emit(newReal64(float64(v))) }
func (b *Builder) Real64(v float64) error { return b.emit(newReal64(v)) }
func (b *Builder) Null() error            { return b.emit(newNull()) }

func (b *Builder) BeginArray(length int) error {
	b.stack = append(b.stack, &frame{kind: frameArray, array: make([]*Value, 0, length)})
	return nil
}

func (b *Builder) EndArray() error {
	top := b.pop()
	return b.emit(newArray(top.array))
}

func (b *Builder) BeginStruct(fieldCount int) error {
	b.stack = append(b.stack, &frame{kind: frameStruct, dict: newDict()})
	return nil
}

func (b *Builder) FieldName(name string) error {
	b.stack[len(b.stack)-1].field = name
	return nil
}

func (b *Builder) EndStruct() error {
	top := b.pop()
	return b.emit(newDictValue(top.dict))
}

func (b *Builder) BeginOptionalSome() error {
	b.stack = append(b.stack, &frame{kind: frameOptional})
	return nil
}

func (b *Builder) EndOptionalSome() error {
	top := b.pop()
	return b.emit(newOptional(top.inner))
}

// OptionalNone maps straight to Null, not Optional(Null): the reference
// value tree's deserializer visitor (visit_none) does the same, and
// there is consequently no "present-but-empty" Optional state to model.
func (b *Builder) OptionalNone() error { return b.emit(newNull()) }
