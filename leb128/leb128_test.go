package leb128

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vertexdlt/vertexvm2/internal/reader"
	"github.com/vertexdlt/vertexvm2/internal/writer"
)

func TestUint32RoundTrip(t *testing.T) {
	for _, v := range []uint32{0, 1, 127, 128, 300, 0xFFFFFFFF} {
		w := writer.New()
		WriteUint32(w, v)
		got, err := ReadUint32(reader.New(w.Bytes()))
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestInt32RoundTrip(t *testing.T) {
	for _, v := range []int32{0, -1, 63, -64, 64, -65, 1000000, -1000000} {
		w := writer.New()
		WriteInt32(w, v)
		got, err := ReadInt32(reader.New(w.Bytes()))
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestInt64RoundTrip(t *testing.T) {
	for _, v := range []int64{0, -1, 1 << 40, -(1 << 40)} {
		w := writer.New()
		WriteInt64(w, v)
		got, err := ReadInt64(reader.New(w.Bytes()))
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestReadUintOverflow(t *testing.T) {
	// six bytes (five of them continuation bytes) for a declared 32-bit
	// width: one byte more than ceil(32/7) can represent.
	data := []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x01}
	_, err := ReadUint(reader.New(data), 32)
	assert.Equal(t, ErrOverflow, err)
}

func TestReadUintNonCanonical(t *testing.T) {
	// encodes 0 in 5 bytes instead of the minimal 1, with a stray bit set
	// in the final byte beyond the 4 bits that fit in a 32-bit width.
	data := []byte{0x80, 0x80, 0x80, 0x80, 0x10}
	_, err := ReadUint(reader.New(data), 32)
	assert.Equal(t, ErrNonCanonical, err)
}

func TestReadByteExhausted(t *testing.T) {
	_, err := ReadUint32(reader.New(nil))
	assert.Error(t, err)
}
