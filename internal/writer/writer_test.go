package writer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vertexdlt/vertexvm2/internal/reader"
)

func TestWriteByteAndBytes(t *testing.T) {
	w := New()
	w.WriteByte(1)
	w.WriteBytes([]byte{2, 3, 4})
	assert.Equal(t, []byte{1, 2, 3, 4}, w.Bytes())
	assert.Equal(t, 4, w.Len())
}

func TestWriteFixedWidthNumbers(t *testing.T) {
	w := New()
	w.WriteU32(42)
	w.WriteU64(1)

	r := reader.New(w.Bytes())
	v32, err := r.ReadU32()
	require.NoError(t, err)
	assert.Equal(t, uint32(42), v32)

	v64, err := r.ReadU64()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), v64)
}

func TestWriteFloatsRoundTrip(t *testing.T) {
	w := New()
	w.WriteF32(1.5)
	w.WriteF64(2.5)

	r := reader.New(w.Bytes())
	f32, err := r.ReadF32()
	require.NoError(t, err)
	assert.Equal(t, float32(1.5), f32)

	f64, err := r.ReadF64()
	require.NoError(t, err)
	assert.Equal(t, 2.5, f64)
}

func TestWriteV128RoundTrip(t *testing.T) {
	var v [16]byte
	for i := range v {
		v[i] = byte(i)
	}
	w := New()
	w.WriteV128(v)

	r := reader.New(w.Bytes())
	got, err := r.ReadV128()
	require.NoError(t, err)
	assert.Equal(t, v, got)
}

func TestWriteNameRoundTrip(t *testing.T) {
	w := New()
	w.WriteName("hello")

	r := reader.New(w.Bytes())
	s, err := r.ReadName()
	require.NoError(t, err)
	assert.Equal(t, "hello", s)
}

func TestWriteNameMultiByteLength(t *testing.T) {
	long := make([]byte, 200)
	for i := range long {
		long[i] = 'a'
	}
	w := New()
	w.WriteName(string(long))

	r := reader.New(w.Bytes())
	s, err := r.ReadName()
	require.NoError(t, err)
	assert.Equal(t, string(long), s)
}
