package wasm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildAddModule constructs a minimal module exporting a single function
// add(i32, i32) -> i32, used to exercise the encode/decode round trip
// without depending on an external .wat toolchain.
func buildAddModule() *Module {
	m := &Module{
		Types:   []FuncType{{Params: []ValueType{ValueTypeI32, ValueTypeI32}, Results: []ValueType{ValueTypeI32}}},
		FuncSec: []uint32{0},
		Codes: []Code{{Body: Expr{
			{Op: OpLocalGet, Idx: 0},
			{Op: OpLocalGet, Idx: 1},
			{Op: OpI32Add},
		}}},
		Exports: []Export{{Name: "add", Kind: ExternFunc, Idx: 0}},
	}
	m.Finalize()
	return m
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	m := buildAddModule()

	data, err := Encode(m)
	require.NoError(t, err)

	got, err := Decode(data)
	require.NoError(t, err)

	require.Len(t, got.Types, 1)
	assert.Equal(t, m.Types[0], got.Types[0])
	require.Len(t, got.Exports, 1)
	assert.Equal(t, "add", got.Exports[0].Name)
	require.Len(t, got.Funcs, 1)
	// Encode appends the function's terminating End and decodeExpr strips
	// it again, so the decoded body equals the hand-built one.
	assert.Equal(t, m.Codes[0].Body, got.Funcs[0].Code.Body)
}

func TestDecodeRejectsBadMagic(t *testing.T) {
	_, err := Decode([]byte{0, 1, 2, 3})
	assert.Error(t, err)
}

func TestDecodeEmptyModule(t *testing.T) {
	m := &Module{}
	m.Finalize()
	data, err := Encode(m)
	require.NoError(t, err)

	got, err := Decode(data)
	require.NoError(t, err)
	assert.Empty(t, got.Types)
	assert.Empty(t, got.Funcs)
}

func TestFuncTypeOf(t *testing.T) {
	m := buildAddModule()
	ft, ok := m.FuncTypeOf(0)
	require.True(t, ok)
	assert.Equal(t, ValueTypeI32, ft.Results[0])

	_, ok = m.FuncTypeOf(5)
	assert.False(t, ok)
}

func TestFuncTypeEqual(t *testing.T) {
	a := FuncType{Params: []ValueType{ValueTypeI32}, Results: []ValueType{ValueTypeI64}}
	b := FuncType{Params: []ValueType{ValueTypeI32}, Results: []ValueType{ValueTypeI64}}
	c := FuncType{Params: []ValueType{ValueTypeI64}, Results: []ValueType{ValueTypeI64}}
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestBlockTypeResolve(t *testing.T) {
	types := []FuncType{{Params: []ValueType{ValueTypeI32}, Results: []ValueType{ValueTypeF64}}}

	empty := BlockType{Kind: BlockTypeKindEmpty}
	assert.Equal(t, FuncType{}, empty.Resolve(types))

	val := BlockType{Kind: BlockTypeKindValue, ValueType: ValueTypeI64}
	assert.Equal(t, FuncType{Results: []ValueType{ValueTypeI64}}, val.Resolve(types))

	idx := BlockType{Kind: BlockTypeKindIndex, TypeIdx: 0}
	assert.Equal(t, types[0], idx.Resolve(types))
}
