// Package leb128 implements the variable-length integer encoding used
// throughout the WebAssembly binary format
// (https://webassembly.github.io/spec/core/binary/values.html#integers).
//
// Decoding is strict: the accumulated width must not exceed the declared
// bit width, and the terminating byte may not carry payload bits beyond
// that width (non-canonical encodings are rejected, as the MVP note in
// the teacher's original Read loop only partially enforced with a
// log.Fatal - here it is a regular decode error instead).
package leb128

import (
	"errors"

	"github.com/vertexdlt/vertexvm2/internal/reader"
	"github.com/vertexdlt/vertexvm2/internal/writer"
)

// ErrOverflow is returned when an encoded integer uses more bytes than its
// declared bit width allows.
var ErrOverflow = errors.New("leb128: integer representation too long")

// ErrNonCanonical is returned when the terminating byte carries bits beyond
// the declared width, i.e. the encoding is not the unique minimal form.
var ErrNonCanonical = errors.New("leb128: non-canonical encoding")

// ReadUint reads an unsigned LEB128 integer of at most n bits (n <= 64).
func ReadUint(r *reader.Reader, n uint32) (uint64, error) {
	var result uint64
	var shift uint32
	for {
		b, err := r.ReadByte()
		if err != nil {
			return 0, err
		}
		if shift >= 64 {
			return 0, ErrOverflow
		}
		payload := uint64(b & 0x7f)
		if shift == (n/7)*7 {
			// final permissible byte: reject payload bits above n
			mask := uint64(1)<<uint(n%7) - 1
			if n%7 == 0 {
				mask = 0x7f
			}
			if payload&^mask != 0 {
				return 0, ErrNonCanonical
			}
		} else if shift >= n {
			return 0, ErrOverflow
		}
		result |= payload << shift
		shift += 7
		if b&0x80 == 0 {
			return result, nil
		}
	}
}

// ReadSint reads a signed LEB128 integer of at most n bits (n <= 64),
// sign-extending from the final payload's high bit.
func ReadSint(r *reader.Reader, n uint32) (int64, error) {
	var result int64
	var shift uint32
	var b byte
	var err error
	for {
		b, err = r.ReadByte()
		if err != nil {
			return 0, err
		}
		if shift >= 64 {
			return 0, ErrOverflow
		}
		payload := int64(b & 0x7f)
		if n == 64 && shift == 63 && payload != 0 && payload != 0x7f {
			// only bit 0 of a tenth byte fits; bits 1-6 must repeat it
			return 0, ErrNonCanonical
		}
		result |= payload << shift
		shift += 7
		if b&0x80 == 0 {
			break
		}
		if shift >= n && n < 64 {
			return 0, ErrOverflow
		}
	}
	if shift < 64 && (b&0x40) != 0 {
		result |= -1 << shift
	}
	if n < 64 {
		// verify the value fits in n bits once sign-extended
		hi := result >> (n - 1)
		if hi != 0 && hi != -1 {
			return 0, ErrOverflow
		}
	}
	return result, nil
}

// ReadUint32 reads an unsigned 32-bit LEB128 integer.
func ReadUint32(r *reader.Reader) (uint32, error) {
	v, err := ReadUint(r, 32)
	return uint32(v), err
}

// ReadUint64 reads an unsigned 64-bit LEB128 integer.
func ReadUint64(r *reader.Reader) (uint64, error) {
	return ReadUint(r, 64)
}

// ReadInt32 reads a signed 32-bit LEB128 integer.
func ReadInt32(r *reader.Reader) (int32, error) {
	v, err := ReadSint(r, 32)
	return int32(v), err
}

// ReadInt64 reads a signed 64-bit LEB128 integer.
func ReadInt64(r *reader.Reader) (int64, error) {
	return ReadSint(r, 64)
}

// WriteUint32 encodes v in the minimal unsigned LEB128 form.
func WriteUint32(w *writer.Writer, v uint32) { writeUint(w, uint64(v)) }

// WriteUint64 encodes v in the minimal unsigned LEB128 form.
func WriteUint64(w *writer.Writer, v uint64) { writeUint(w, v) }

func writeUint(w *writer.Writer, v uint64) {
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			b |= 0x80
		}
		w.WriteByte(b)
		if v == 0 {
			return
		}
	}
}

// WriteInt32 encodes v in the minimal signed LEB128 form.
func WriteInt32(w *writer.Writer, v int32) { writeSint(w, int64(v)) }

// WriteInt64 encodes v in the minimal signed LEB128 form.
func WriteInt64(w *writer.Writer, v int64) { writeSint(w, v) }

func writeSint(w *writer.Writer, v int64) {
	for {
		b := byte(v & 0x7f)
		v >>= 7
		signBitSet := b&0x40 != 0
		done := (v == 0 && !signBitSet) || (v == -1 && signBitSet)
		if !done {
			b |= 0x80
		}
		w.WriteByte(b)
		if done {
			return
		}
	}
}
