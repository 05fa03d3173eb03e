// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

package versioned

import (
	"encoding/binary"
	"math"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Wire kind bytes. wireFourCCOrReal32 is shared between the FourCC and
// Real32 catalogue kinds; which one a given occurrence means is decided
// by the context TypeInfo, not the byte itself.
const (
	wireArray          = 0x00
	wireBitArray       = 0x01
	wireBlob           = 0x02
	wireChoice         = 0x03
	wireOptional       = 0x04
	wireStruct         = 0x05
	wireBool           = 0x06
	wireFourCCOrReal32 = 0x07
	wireReal64         = 0x08
	wireInt            = 0x09
)

// reader is a byte-oriented cursor over one entry's decoded bytes.
type reader struct {
	buf []byte
	pos int
}

func (r *reader) readByte() (byte, error) {
	if r.pos >= len(r.buf) {
		return 0, errors.Wrapf(ErrUnexpectedEOF, "offset %d", r.pos)
	}
	b := r.buf[r.pos]
	r.pos++
	return b, nil
}

func (r *reader) readBytes(n int) ([]byte, error) {
	if n < 0 || r.pos+n > len(r.buf) {
		return nil, errors.Wrapf(ErrUnexpectedEOF, "offset %d: want %d bytes", r.pos, n)
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// decoder walks a byte buffer against a type catalogue, maintaining a
// type-context stack whose top is always the expected type of the
// value about to be decoded.
type decoder struct {
	r         reader
	typeinfos []TypeInfo
	stack     []TypeId
}

func (d *decoder) push(t TypeId) { d.stack = append(d.stack, t) }

func (d *decoder) pop() {
	d.stack = d.stack[:len(d.stack)-1]
}

func (d *decoder) top() TypeInfo {
	if len(d.stack) == 0 {
		panic("versioned: type-context stack empty")
	}
	id := d.stack[len(d.stack)-1]
	if int(id) >= len(d.typeinfos) {
		panic("versioned: typeid out of range in catalogue")
	}
	return d.typeinfos[id]
}

// Decode walks input against typeinfos starting from root, driving v
// with one event per decoded value.
func Decode(typeinfos []TypeInfo, root TypeId, input []byte, v Visitor) error {
	d := &decoder{typeinfos: typeinfos, r: reader{buf: input}}

	d.push(root)
	err := d.decodeValue(v)
	d.pop()
	if err != nil {
		return err
	}

	if d.r.pos != len(d.r.buf) {
		return errors.Wrapf(ErrTrailingBytes, "offset %d of %d", d.r.pos, len(d.r.buf))
	}
	if len(d.stack) != 0 {
		panic("versioned: type-context stack not balanced at decode completion")
	}
	return nil
}

func typeMismatch(offset int, expected Kind, gotKindByte byte) error {
	return errors.Wrapf(ErrTypeMismatch, "offset %d: expected kind %d, got wire byte 0x%02X", offset, expected, gotKindByte)
}

func (d *decoder) decodeValue(v Visitor) error {
	ctx := d.top()

	kindByte, err := d.r.readByte()
	if err != nil {
		return err
	}

	switch kindByte {
	case wireArray:
		return d.decodeArray(ctx, v)
	case wireBitArray:
		return d.decodeBitArray(ctx, v)
	case wireBlob:
		return d.decodeBlob(ctx, v)
	case wireChoice:
		return d.decodeChoice(ctx, v)
	case wireOptional:
		return d.decodeOptional(ctx, v)
	case wireStruct:
		return d.decodeStruct(ctx, v)
	case wireBool:
		return d.decodeBool(ctx, v)
	case wireFourCCOrReal32:
		return d.decodeFourCCOrReal32(ctx, v)
	case wireReal64:
		return d.decodeReal64(ctx, v)
	case wireInt:
		return d.decodeInt(ctx, v)
	default:
		return errors.Wrapf(ErrBadKindByte, "offset %d: 0x%02X", d.r.pos-1, kindByte)
	}
}

func (d *decoder) decodeArray(ctx TypeInfo, v Visitor) error {
	if ctx.Kind != KindArray {
		return typeMismatch(d.r.pos-1, ctx.Kind, wireArray)
	}
	length, err := d.r.readVlqUnsigned()
	if err != nil {
		return err
	}
	if err := v.BeginArray(int(length)); err != nil {
		return err
	}
	for i := uint64(0); i < length; i++ {
		d.push(ctx.Elem)
		err := d.decodeValue(v)
		d.pop()
		if err != nil {
			return err
		}
	}
	return v.EndArray()
}

func (d *decoder) decodeBitArray(ctx TypeInfo, v Visitor) error {
	if ctx.Kind != KindBitArray {
		return typeMismatch(d.r.pos-1, ctx.Kind, wireBitArray)
	}
	bits, err := d.r.readVlqUnsigned()
	if err != nil {
		return err
	}
	n := int((bits + 7) / 8)
	raw, err := d.r.readBytes(n)
	if err != nil {
		return err
	}
	return v.Bytes(raw)
}

func (d *decoder) decodeBlob(ctx TypeInfo, v Visitor) error {
	if ctx.Kind != KindBlob {
		return typeMismatch(d.r.pos-1, ctx.Kind, wireBlob)
	}
	length, err := d.r.readVlqUnsigned()
	if err != nil {
		return err
	}
	raw, err := d.r.readBytes(int(length))
	if err != nil {
		return err
	}
	if utf8.Valid(raw) {
		return v.String(string(raw))
	}
	return v.Bytes(raw)
}

func (d *decoder) decodeChoice(ctx TypeInfo, v Visitor) error {
	if ctx.Kind != KindChoice {
		return typeMismatch(d.r.pos-1, ctx.Kind, wireChoice)
	}
	selector, err := d.r.readVlqUnsigned()
	if err != nil {
		return err
	}
	opt, ok := ctx.Choices[uint32(selector)]
	if !ok {
		return errors.Wrapf(ErrUnknownChoice, "offset %d: selector %d", d.r.pos, selector)
	}

	// A Null-kind arm (e.g. the "None" option of an event-data choice) has
	// no payload on the wire: the selector alone is the whole value.
	if int(opt.Type) < len(d.typeinfos) && d.typeinfos[opt.Type].Kind == KindNull {
		return v.Null()
	}

	d.push(opt.Type)
	err = d.decodeValue(v)
	d.pop()
	return err
}

func (d *decoder) decodeOptional(ctx TypeInfo, v Visitor) error {
	if ctx.Kind != KindOptional {
		return typeMismatch(d.r.pos-1, ctx.Kind, wireOptional)
	}
	present, err := d.r.readByte()
	if err != nil {
		return err
	}
	if present == 0 {
		return v.OptionalNone()
	}
	if err := v.BeginOptionalSome(); err != nil {
		return err
	}
	d.push(ctx.Elem)
	err = d.decodeValue(v)
	d.pop()
	if err != nil {
		return err
	}
	return v.EndOptionalSome()
}

func (d *decoder) decodeStruct(ctx TypeInfo, v Visitor) error {
	if ctx.Kind != KindStruct {
		return typeMismatch(d.r.pos-1, ctx.Kind, wireStruct)
	}
	fieldCount, err := d.r.readVlqUnsigned()
	if err != nil {
		return err
	}
	if err := v.BeginStruct(int(fieldCount)); err != nil {
		return err
	}
	for i := uint64(0); i < fieldCount; i++ {
		tag, err := d.r.readVlqSigned()
		if err != nil {
			return err
		}
		field, ok := findField(ctx.Struct, int32(tag))
		if !ok {
			return errors.Wrapf(ErrBadTag, "offset %d: tag %d", d.r.pos, tag)
		}
		if err := v.FieldName(field.Name); err != nil {
			return err
		}
		d.push(field.Type)
		err = d.decodeValue(v)
		d.pop()
		if err != nil {
			return err
		}
	}
	return v.EndStruct()
}

func findField(st Struct, tag int32) (StructField, bool) {
	for _, f := range st.Fields {
		if f.Tag == tag {
			return f, true
		}
	}
	return StructField{}, false
}

func (d *decoder) decodeBool(ctx TypeInfo, v Visitor) error {
	if ctx.Kind != KindBool {
		return typeMismatch(d.r.pos-1, ctx.Kind, wireBool)
	}
	b, err := d.r.readByte()
	if err != nil {
		return err
	}
	return v.Bool(b != 0)
}

func (d *decoder) decodeFourCCOrReal32(ctx TypeInfo, v Visitor) error {
	raw, err := d.r.readBytes(4)
	if err != nil {
		return err
	}
	switch ctx.Kind {
	case KindReal32:
		return v.Real32(math.Float32frombits(binary.LittleEndian.Uint32(raw)))
	case KindFourCC:
		return v.FourCC(raw)
	default:
		return typeMismatch(d.r.pos-4, ctx.Kind, wireFourCCOrReal32)
	}
}

func (d *decoder) decodeReal64(ctx TypeInfo, v Visitor) error {
	if ctx.Kind != KindReal64 {
		return typeMismatch(d.r.pos-1, ctx.Kind, wireReal64)
	}
	raw, err := d.r.readBytes(8)
	if err != nil {
		return err
	}
	return v.Real64(math.Float64frombits(binary.LittleEndian.Uint64(raw)))
}

func (d *decoder) decodeInt(ctx TypeInfo, v Visitor) error {
	if ctx.Kind != KindInt {
		return typeMismatch(d.r.pos-1, ctx.Kind, wireInt)
	}
	n, err := d.r.readVlqSigned()
	if err != nil {
		return err
	}
	return v.Int(ctx.Bounds.Min + n)
}
