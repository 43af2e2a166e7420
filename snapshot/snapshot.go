// This file is part of GopherCoCo.
//
// GopherCoCo is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherCoCo is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherCoCo.  If not, see <https://www.gnu.org/licenses/>.

// Package snapshot reads and writes the tagged binary records used for save
// states. A record is a sequence of fields, each introduced by a small
// integer tag and a kind byte, terminated by a zero tag. Values are fixed
// width and little endian. Byte fields carry an explicit length.
//
// Tags are defined by the component being serialised, not by this package.
// A reader encountering a tag it does not recognise can skip it, because the
// kind byte fixes the field's width. Tag zero is reserved for the record
// terminator.
package snapshot

import (
	"encoding/binary"

	"github.com/colourclash/gophercoco/curated"
)

// Error patterns for the snapshot package.
const (
	ErrTruncated   = "snapshot: truncated record"
	ErrKind        = "snapshot: field %d: unexpected kind %d"
	ErrUnknownKind = "snapshot: field %d: unknown kind %d"
)

// field kinds. the kind byte follows the tag byte and fixes the width of
// the value that follows.
const (
	kindEnd uint8 = iota
	kindBool
	kindUint8
	kindUint16
	kindUint32
	kindInt32
	kindBytes
)

// Writer accumulates a tagged binary record.
type Writer struct {
	data []byte
}

// NewWriter is the preferred method of initialisation for the Writer type.
func NewWriter() *Writer {
	return &Writer{data: make([]byte, 0, 256)}
}

func (w *Writer) header(tag, kind uint8) {
	w.data = append(w.data, tag, kind)
}

// Bool appends a boolean field.
func (w *Writer) Bool(tag uint8, v bool) {
	w.header(tag, kindBool)
	if v {
		w.data = append(w.data, 1)
	} else {
		w.data = append(w.data, 0)
	}
}

// Uint8 appends an 8bit field.
func (w *Writer) Uint8(tag uint8, v uint8) {
	w.header(tag, kindUint8)
	w.data = append(w.data, v)
}

// Uint16 appends a 16bit field.
func (w *Writer) Uint16(tag uint8, v uint16) {
	w.header(tag, kindUint16)
	w.data = append(w.data, 0, 0)
	binary.LittleEndian.PutUint16(w.data[len(w.data)-2:], v)
}

// Uint32 appends a 32bit field.
func (w *Writer) Uint32(tag uint8, v uint32) {
	w.header(tag, kindUint32)
	w.data = append(w.data, 0, 0, 0, 0)
	binary.LittleEndian.PutUint32(w.data[len(w.data)-4:], v)
}

// Int32 appends a signed 32bit field. Used for tick deltas, which can be
// negative when the serialised event was due before the moment of capture.
func (w *Writer) Int32(tag uint8, v int32) {
	w.header(tag, kindInt32)
	w.data = append(w.data, 0, 0, 0, 0)
	binary.LittleEndian.PutUint32(w.data[len(w.data)-4:], uint32(v))
}

// Bytes appends a variable length field.
func (w *Writer) Bytes(tag uint8, v []byte) {
	w.header(tag, kindBytes)
	w.data = append(w.data, 0, 0)
	binary.LittleEndian.PutUint16(w.data[len(w.data)-2:], uint16(len(v)))
	w.data = append(w.data, v...)
}

// End terminates the record and returns the accumulated bytes. The Writer
// should not be used again after End.
func (w *Writer) End() []byte {
	w.data = append(w.data, 0)
	return w.data
}

// Reader steps through a tagged binary record. A typical consumer loops on
// Next(), switching on the returned tag and calling the getter that matches
// the field's expected kind. Unrecognised tags can be ignored; the value has
// already been stepped over by the time Next() returns.
type Reader struct {
	data []byte
	pos  int
	err  error

	tag   uint8
	kind  uint8
	value uint32
	bytes []byte
}

// NewReader is the preferred method of initialisation for the Reader type.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Next advances to the next field in the record. Returns false at the
// record terminator or on error; check Err() to distinguish the two.
func (r *Reader) Next() (uint8, bool) {
	if r.err != nil {
		return 0, false
	}

	if r.pos >= len(r.data) {
		r.err = curated.Errorf(ErrTruncated)
		return 0, false
	}

	r.tag = r.data[r.pos]
	r.pos++
	if r.tag == 0 {
		return 0, false
	}

	if r.pos >= len(r.data) {
		r.err = curated.Errorf(ErrTruncated)
		return 0, false
	}
	r.kind = r.data[r.pos]
	r.pos++

	var n int
	switch r.kind {
	case kindBool, kindUint8:
		n = 1
	case kindUint16:
		n = 2
	case kindUint32, kindInt32:
		n = 4
	case kindBytes:
		if r.pos+2 > len(r.data) {
			r.err = curated.Errorf(ErrTruncated)
			return 0, false
		}
		n = int(binary.LittleEndian.Uint16(r.data[r.pos:]))
		r.pos += 2
	default:
		r.err = curated.Errorf(ErrUnknownKind, r.tag, r.kind)
		return 0, false
	}

	if r.pos+n > len(r.data) {
		r.err = curated.Errorf(ErrTruncated)
		return 0, false
	}

	switch r.kind {
	case kindBool, kindUint8:
		r.value = uint32(r.data[r.pos])
	case kindUint16:
		r.value = uint32(binary.LittleEndian.Uint16(r.data[r.pos:]))
	case kindUint32, kindInt32:
		r.value = binary.LittleEndian.Uint32(r.data[r.pos:])
	case kindBytes:
		r.bytes = r.data[r.pos : r.pos+n]
	}
	r.pos += n

	return r.tag, true
}

// Err returns the first error encountered while reading the record.
func (r *Reader) Err() error {
	return r.err
}

func (r *Reader) check(kind uint8) bool {
	if r.kind != kind {
		if r.err == nil {
			r.err = curated.Errorf(ErrKind, r.tag, r.kind)
		}
		return false
	}
	return true
}

// Bool returns the current field as a boolean.
func (r *Reader) Bool() bool {
	if !r.check(kindBool) {
		return false
	}
	return r.value != 0
}

// Uint8 returns the current field as an 8bit value.
func (r *Reader) Uint8() uint8 {
	if !r.check(kindUint8) {
		return 0
	}
	return uint8(r.value)
}

// Uint16 returns the current field as a 16bit value.
func (r *Reader) Uint16() uint16 {
	if !r.check(kindUint16) {
		return 0
	}
	return uint16(r.value)
}

// Uint32 returns the current field as a 32bit value.
func (r *Reader) Uint32() uint32 {
	if !r.check(kindUint32) {
		return 0
	}
	return r.value
}

// Int32 returns the current field as a signed 32bit value.
func (r *Reader) Int32() int32 {
	if !r.check(kindInt32) {
		return 0
	}
	return int32(r.value)
}

// Bytes returns the current field as a byte slice. The slice aliases the
// record; the caller must copy it if the record outlives the call.
func (r *Reader) Bytes() []byte {
	if !r.check(kindBytes) {
		return nil
	}
	return r.bytes
}
