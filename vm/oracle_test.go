package vm

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	wagon "github.com/go-interpreter/wagon/wasm"

	"github.com/vertexdlt/vertexvm2/wasm"
)

// oracleModule builds a module using only MVP-era constructs (no bulk
// memory, no SIMD, single return value) so wagon's older decoder, which
// predates WebAssembly 2.0, can parse the same bytes as our decoder.
func oracleModule() *wasm.Module {
	addType := wasm.FuncType{Params: []wasm.ValueType{wasm.ValueTypeI32, wasm.ValueTypeI32}, Results: []wasm.ValueType{wasm.ValueTypeI32}}
	negType := wasm.FuncType{Params: []wasm.ValueType{wasm.ValueTypeI64}, Results: []wasm.ValueType{wasm.ValueTypeI64}}

	m := &wasm.Module{
		Types:   []wasm.FuncType{addType, negType},
		FuncSec: []uint32{0, 1},
		Codes: []wasm.Code{
			{Body: wasm.Expr{
				{Op: wasm.OpLocalGet, Idx: 0},
				{Op: wasm.OpLocalGet, Idx: 1},
				{Op: wasm.OpI32Add},
			}},
			{Body: wasm.Expr{
				{Op: wasm.OpI64Const, I64: 0},
				{Op: wasm.OpLocalGet, Idx: 0},
				{Op: wasm.OpI64Sub},
			}},
		},
		Exports: []wasm.Export{
			{Name: "add", Kind: wasm.ExternFunc, Idx: 0},
			{Name: "neg", Kind: wasm.ExternFunc, Idx: 1},
		},
	}
	m.Finalize()
	return m
}

// TestDecodeParityAgainstWagon decodes the same binary with our decoder and
// with wagon's independent implementation and checks the two agree on
// shape: type arity, exported function indices, and code body count. This
// is a decode-parity oracle, not a correctness proof of either decoder.
func TestDecodeParityAgainstWagon(t *testing.T) {
	m := oracleModule()
	data, err := wasm.Encode(m)
	require.NoError(t, err)

	ours, err := wasm.Decode(data)
	require.NoError(t, err)

	theirs, err := wagon.ReadModule(bytes.NewReader(data), nil)
	require.NoError(t, err)

	require.NotNil(t, theirs.Types)
	require.Len(t, theirs.Types.Entries, len(ours.Types))
	for i, ft := range ours.Types {
		assert.Len(t, theirs.Types.Entries[i].ParamTypes, len(ft.Params), "type %d param count", i)
		assert.Len(t, theirs.Types.Entries[i].ReturnTypes, len(ft.Results), "type %d result count", i)
	}

	require.NotNil(t, theirs.Function)
	assert.Len(t, theirs.Function.Types, len(ours.Funcs)-ours.NumImportedFuncs)

	require.NotNil(t, theirs.Code)
	assert.Len(t, theirs.Code.Bodies, len(ours.Codes))

	require.NotNil(t, theirs.Export)
	assert.Len(t, theirs.Export.Entries, len(ours.Exports))
	for _, exp := range ours.Exports {
		entry, ok := theirs.Export.Entries[exp.Name]
		require.True(t, ok, "export %q present in wagon's decode", exp.Name)
		assert.Equal(t, exp.Idx, entry.Index, "export %q index", exp.Name)
	}
}
