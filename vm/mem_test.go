package vm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vertexdlt/vertexvm2/wasm"
)

func memModule(body wasm.Expr, minPages uint32) *wasm.Module {
	m := &wasm.Module{
		Types:    []wasm.FuncType{{Results: []wasm.ValueType{wasm.ValueTypeI32}}},
		FuncSec:  []uint32{0},
		Memories: []wasm.MemType{{Limits: wasm.Limits{Min: minPages}}},
		Codes:    []wasm.Code{{Body: body}},
		Exports:  []wasm.Export{{Name: "run", Kind: wasm.ExternFunc, Idx: 0}},
	}
	m.Finalize()
	return m
}

func TestMemoryCopy(t *testing.T) {
	body := wasm.Expr{
		{Op: wasm.OpI32Const, I32: 0},
		{Op: wasm.OpI32Const, I32: 42},
		{Op: wasm.OpI32Store, Mem: wasm.MemArg{}},
		{Op: wasm.OpI32Const, I32: 100}, // dst
		{Op: wasm.OpI32Const, I32: 0},   // src
		{Op: wasm.OpI32Const, I32: 4},   // n
		{Op: wasm.OpMemoryCopy},
		{Op: wasm.OpI32Const, I32: 100},
		{Op: wasm.OpI32Load, Mem: wasm.MemArg{}},
	}
	m := memModule(body, 1)
	inst, err := Instantiate(NewStore(), m, nil)
	require.NoError(t, err)

	results, err := inst.Invoke("run")
	require.NoError(t, err)
	assert.Equal(t, int32(42), results[0].I32())
}

func TestMemoryFill(t *testing.T) {
	body := wasm.Expr{
		{Op: wasm.OpI32Const, I32: 0},   // dst
		{Op: wasm.OpI32Const, I32: 0xAB}, // value
		{Op: wasm.OpI32Const, I32: 8},   // n
		{Op: wasm.OpMemoryFill},
		{Op: wasm.OpI32Const, I32: 4},
		{Op: wasm.OpI32Load8U, Mem: wasm.MemArg{}},
	}
	m := memModule(body, 1)
	inst, err := Instantiate(NewStore(), m, nil)
	require.NoError(t, err)

	results, err := inst.Invoke("run")
	require.NoError(t, err)
	assert.Equal(t, int32(0xAB), results[0].I32())
}

func TestMemoryGrow(t *testing.T) {
	body := wasm.Expr{
		{Op: wasm.OpI32Const, I32: 1},
		{Op: wasm.OpMemoryGrow},
	}
	m := memModule(body, 1)
	inst, err := Instantiate(NewStore(), m, nil)
	require.NoError(t, err)

	results, err := inst.Invoke("run")
	require.NoError(t, err)
	assert.Equal(t, int32(1), results[0].I32()) // old page count

	mem := inst.Module.Mem(0)
	assert.Equal(t, uint32(2), mem.pages())
}

func TestMemoryGrowBeyondMaxFails(t *testing.T) {
	body := wasm.Expr{
		{Op: wasm.OpI32Const, I32: 10},
		{Op: wasm.OpMemoryGrow},
	}
	m := &wasm.Module{
		Types:    []wasm.FuncType{{Results: []wasm.ValueType{wasm.ValueTypeI32}}},
		FuncSec:  []uint32{0},
		Memories: []wasm.MemType{{Limits: wasm.Limits{Min: 1, Max: 2, HasMax: true}}},
		Codes:    []wasm.Code{{Body: body}},
		Exports:  []wasm.Export{{Name: "run", Kind: wasm.ExternFunc, Idx: 0}},
	}
	m.Finalize()

	inst, err := Instantiate(NewStore(), m, nil)
	require.NoError(t, err)

	results, err := inst.Invoke("run")
	require.NoError(t, err)
	assert.Equal(t, int32(-1), results[0].I32())
}

func TestTableGrowAndSize(t *testing.T) {
	ft := wasm.FuncType{Results: []wasm.ValueType{wasm.ValueTypeI32}}
	body := wasm.Expr{
		{Op: wasm.OpRefNull, RefType: wasm.ValueTypeFuncref},
		{Op: wasm.OpI32Const, I32: 3},
		{Op: wasm.OpTableGrow, Idx: 0},
		{Op: wasm.OpDrop},
		{Op: wasm.OpTableSize, Idx: 0},
	}
	m := &wasm.Module{
		Types:   []wasm.FuncType{ft},
		FuncSec: []uint32{0},
		Tables:  []wasm.TableType{{ElemType: wasm.ValueTypeFuncref, Limits: wasm.Limits{Min: 1}}},
		Codes:   []wasm.Code{{Body: body}},
		Exports: []wasm.Export{{Name: "run", Kind: wasm.ExternFunc, Idx: 0}},
	}
	m.Finalize()

	inst, err := Instantiate(NewStore(), m, nil)
	require.NoError(t, err)

	results, err := inst.Invoke("run")
	require.NoError(t, err)
	assert.Equal(t, int32(4), results[0].I32())
}

func TestSimdV128AddViaExports(t *testing.T) {
	ft := wasm.FuncType{Results: []wasm.ValueType{wasm.ValueTypeI32}}
	var a, b [16]byte
	for i := 0; i < 4; i++ {
		a[4*i] = 1 // lane i = 1
		b[4*i] = 2 // lane i = 2
	}
	body := wasm.Expr{
		{Op: wasm.OpV128Const, V128: a},
		{Op: wasm.OpV128Const, V128: b},
		{Op: wasm.OpI32x4Add},
		{Op: wasm.OpI32x4ExtractLane, Lane: 0},
	}
	m := singleFuncModule(t, ft, nil, body, "run")

	inst, err := Instantiate(NewStore(), m, nil)
	require.NoError(t, err)

	results, err := inst.Invoke("run")
	require.NoError(t, err)
	assert.Equal(t, int32(3), results[0].I32())
}
