package reader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadByteAndBytes(t *testing.T) {
	r := New([]byte{1, 2, 3, 4})

	b, err := r.ReadByte()
	require.NoError(t, err)
	assert.Equal(t, byte(1), b)

	rest, err := r.ReadBytes(3)
	require.NoError(t, err)
	assert.Equal(t, []byte{2, 3, 4}, rest)

	assert.True(t, r.Eof())
	_, err = r.ReadByte()
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestReadBytesOutOfRange(t *testing.T) {
	r := New([]byte{1, 2})
	_, err := r.ReadBytes(5)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestReadFixedWidthNumbers(t *testing.T) {
	r := New([]byte{
		0x2A, 0x00, 0x00, 0x00, // u32 = 42
		0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // u64 = 1
	})
	v32, err := r.ReadU32()
	require.NoError(t, err)
	assert.Equal(t, uint32(42), v32)

	v64, err := r.ReadU64()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), v64)
}

func TestReadFloats(t *testing.T) {
	w := []byte{0, 0, 0x80, 0x3F} // little-endian float32(1.0)
	r := New(w)
	f32, err := r.ReadF32()
	require.NoError(t, err)
	assert.Equal(t, float32(1.0), f32)
}

func TestReadV128(t *testing.T) {
	data := make([]byte, 16)
	for i := range data {
		data[i] = byte(i)
	}
	r := New(data)
	v, err := r.ReadV128()
	require.NoError(t, err)
	assert.Equal(t, byte(0), v[0])
	assert.Equal(t, byte(15), v[15])
}

func TestReadName(t *testing.T) {
	// length 5 (LEB128 single byte), then "hello"
	r := New(append([]byte{5}, "hello"...))
	s, err := r.ReadName()
	require.NoError(t, err)
	assert.Equal(t, "hello", s)
}

func TestReadNameInvalidUTF8(t *testing.T) {
	r := New(append([]byte{2}, 0xFF, 0xFE))
	_, err := r.ReadName()
	assert.ErrorIs(t, err, ErrInvalidUTF8)
}

func TestSubAndRest(t *testing.T) {
	r := New([]byte{1, 2, 3, 4, 5})
	sub, err := r.Sub(2)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2}, sub.Rest())
	assert.Equal(t, []byte{3, 4, 5}, r.Rest())
}

func TestPosAndLen(t *testing.T) {
	r := New([]byte{1, 2, 3})
	assert.Equal(t, 3, r.Len())
	_, _ = r.ReadByte()
	assert.Equal(t, uint32(1), r.Pos())
	assert.Equal(t, 2, r.Len())
}
