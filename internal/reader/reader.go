// Package reader provides a positioned, bounds-checked cursor over an
// immutable byte slice, shared by the wasm decoder and the LEB128 codec.
package reader

import (
	"encoding/binary"
	"errors"
	"math"
	"unicode/utf8"
)

// ErrOutOfRange is returned whenever a read would run past the end of the
// underlying slice, and by ReadName for a length prefix longer than five
// bytes.
var ErrOutOfRange = errors.New("reader: read out of range")

// ErrInvalidUTF8 is returned by ReadName when the bytes are not valid UTF-8.
var ErrInvalidUTF8 = errors.New("reader: invalid utf-8 string")

// Reader is an immutable-slice cursor. The zero value is not usable; use New.
type Reader struct {
	b   []byte
	pos uint32
}

// New wraps b for reading starting at offset 0.
func New(b []byte) *Reader {
	return &Reader{b: b}
}

// Pos returns the current byte offset.
func (r *Reader) Pos() uint32 { return r.pos }

// Len returns the number of unread bytes.
func (r *Reader) Len() int { return len(r.b) - int(r.pos) }

// Eof reports whether every byte has been consumed.
func (r *Reader) Eof() bool { return int(r.pos) >= len(r.b) }

// ReadByte reads a single byte and advances the cursor.
func (r *Reader) ReadByte() (byte, error) {
	if r.pos >= uint32(len(r.b)) {
		return 0, ErrOutOfRange
	}
	b := r.b[r.pos]
	r.pos++
	return b, nil
}

// ReadBytes returns the next n bytes as a subslice (no copy) and advances.
func (r *Reader) ReadBytes(n uint32) ([]byte, error) {
	if uint64(r.pos)+uint64(n) > uint64(len(r.b)) {
		return nil, ErrOutOfRange
	}
	b := r.b[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// ReadU32 reads a fixed-width little-endian uint32.
func (r *Reader) ReadU32() (uint32, error) {
	b, err := r.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadU64 reads a fixed-width little-endian uint64.
func (r *Reader) ReadU64() (uint64, error) {
	b, err := r.ReadBytes(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// ReadF32 reads a fixed-width little-endian IEEE-754 binary32.
func (r *Reader) ReadF32() (float32, error) {
	bits, err := r.ReadU32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(bits), nil
}

// ReadF64 reads a fixed-width little-endian IEEE-754 binary64.
func (r *Reader) ReadF64() (float64, error) {
	bits, err := r.ReadU64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(bits), nil
}

// ReadV128 reads 16 raw bytes, the wire representation of a v128 constant.
func (r *Reader) ReadV128() ([16]byte, error) {
	var v [16]byte
	b, err := r.ReadBytes(16)
	if err != nil {
		return v, err
	}
	copy(v[:], b)
	return v, nil
}

// ReadName reads a LEB128 length-prefixed UTF-8 string.
func (r *Reader) ReadName() (string, error) {
	n, err := r.readUnsignedLen()
	if err != nil {
		return "", err
	}
	b, err := r.ReadBytes(n)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", ErrInvalidUTF8
	}
	return string(b), nil
}

// readUnsignedLen reads a plain LEB128 u32 without importing the leb128
// package (which itself depends on Reader), duplicating only the minimal
// shift/continuation loop needed for length prefixes.
func (r *Reader) readUnsignedLen() (uint32, error) {
	var result uint32
	var shift uint
	for {
		b, err := r.ReadByte()
		if err != nil {
			return 0, err
		}
		result |= uint32(b&0x7f) << shift
		if b&0x80 == 0 {
			break
		}
		shift += 7
		if shift >= 35 {
			return 0, ErrOutOfRange
		}
	}
	return result, nil
}

// Rest returns every remaining unread byte (no copy) without advancing.
func (r *Reader) Rest() []byte {
	return r.b[r.pos:]
}

// Sub returns a Reader over exactly the next n bytes and advances past them.
func (r *Reader) Sub(n uint32) (*Reader, error) {
	b, err := r.ReadBytes(n)
	if err != nil {
		return nil, err
	}
	return New(b), nil
}
