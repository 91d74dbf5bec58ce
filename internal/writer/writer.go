// Package writer provides an append-only byte buffer with the fixed-width
// and length-prefixed primitives the wasm section encoder needs, mirroring
// internal/reader's read side.
package writer

import (
	"encoding/binary"
	"math"
)

// Writer accumulates encoded bytes.
type Writer struct {
	buf []byte
}

// New returns an empty Writer.
func New() *Writer {
	return &Writer{}
}

// Bytes returns the accumulated buffer.
func (w *Writer) Bytes() []byte { return w.buf }

// Len returns the number of bytes written so far.
func (w *Writer) Len() int { return len(w.buf) }

// WriteByte appends a single byte.
func (w *Writer) WriteByte(b byte) { w.buf = append(w.buf, b) }

// WriteBytes appends a raw byte slice verbatim.
func (w *Writer) WriteBytes(b []byte) { w.buf = append(w.buf, b...) }

// WriteU32 appends a fixed-width little-endian uint32.
func (w *Writer) WriteU32(v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

// WriteU64 appends a fixed-width little-endian uint64.
func (w *Writer) WriteU64(v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

// WriteF32 appends a fixed-width little-endian IEEE-754 binary32.
func (w *Writer) WriteF32(v float32) { w.WriteU32(math.Float32bits(v)) }

// WriteF64 appends a fixed-width little-endian IEEE-754 binary64.
func (w *Writer) WriteF64(v float64) { w.WriteU64(math.Float64bits(v)) }

// WriteV128 appends 16 raw bytes.
func (w *Writer) WriteV128(v [16]byte) { w.buf = append(w.buf, v[:]...) }

// WriteName appends a LEB128 length prefix followed by the raw UTF-8 bytes.
func (w *Writer) WriteName(s string) {
	w.writeUnsignedLen(uint32(len(s)))
	w.buf = append(w.buf, s...)
}

func (w *Writer) writeUnsignedLen(v uint32) {
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			b |= 0x80
		}
		w.buf = append(w.buf, b)
		if v == 0 {
			break
		}
	}
}
