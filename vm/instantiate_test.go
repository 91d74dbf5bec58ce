package vm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vertexdlt/vertexvm2/wasm"
)

func TestImportFuncTypeMismatchIsLinkError(t *testing.T) {
	m := &wasm.Module{
		Types:   []wasm.FuncType{{Params: []wasm.ValueType{wasm.ValueTypeI32}}},
		Imports: []wasm.Import{{Module: "env", Field: "f", Kind: wasm.ExternFunc, FuncTypeIdx: 0}},
	}
	m.Finalize()

	hostFn := NewHostFunc(wasm.FuncType{}, func(args []Value) ([]Value, error) { return nil, nil })
	resolver := resolverFunc(func(module, field string) (Extern, bool) {
		return Extern{Kind: wasm.ExternFunc, Func: hostFn}, true
	})

	_, err := Instantiate(NewStore(), m, resolver)
	require.Error(t, err)
	var linkErr *LinkError
	assert.ErrorAs(t, err, &linkErr)
}

func TestImportMemoryLimitsIncompatibleIsLinkError(t *testing.T) {
	m := &wasm.Module{
		Imports: []wasm.Import{{Module: "env", Field: "mem", Kind: wasm.ExternMemory,
			Memory: wasm.MemType{Limits: wasm.Limits{Min: 4}}}},
	}
	m.Finalize()

	small := &MemoryInstance{Type: wasm.MemType{Limits: wasm.Limits{Min: 1}}, Data: make([]byte, wasm.PageSize)}
	resolver := resolverFunc(func(module, field string) (Extern, bool) {
		return Extern{Kind: wasm.ExternMemory, Memory: small}, true
	})

	_, err := Instantiate(NewStore(), m, resolver)
	require.Error(t, err)
	var linkErr *LinkError
	assert.ErrorAs(t, err, &linkErr)
}

func TestImportGlobalResolvedAndReadable(t *testing.T) {
	ft := wasm.FuncType{Results: []wasm.ValueType{wasm.ValueTypeI32}}
	body := wasm.Expr{{Op: wasm.OpGlobalGet, Idx: 0}}
	m := &wasm.Module{
		Types:   []wasm.FuncType{ft},
		FuncSec: []uint32{0},
		Imports: []wasm.Import{{Module: "env", Field: "g", Kind: wasm.ExternGlobal,
			Global: wasm.GlobalType{ValueType: wasm.ValueTypeI32}}},
		Codes:   []wasm.Code{{Body: body}},
		Exports: []wasm.Export{{Name: "run", Kind: wasm.ExternFunc, Idx: 0}},
	}
	m.Finalize()

	g := &GlobalInstance{Type: wasm.GlobalType{ValueType: wasm.ValueTypeI32}, Value: I32Val(77)}
	resolver := resolverFunc(func(module, field string) (Extern, bool) {
		return Extern{Kind: wasm.ExternGlobal, Global: g}, true
	})

	inst, err := Instantiate(NewStore(), m, resolver)
	require.NoError(t, err)

	results, err := inst.Invoke("run")
	require.NoError(t, err)
	assert.Equal(t, int32(77), results[0].I32())
}

func TestActiveElementSegmentOOBTraps(t *testing.T) {
	m := &wasm.Module{
		Types:   []wasm.FuncType{{}},
		FuncSec: []uint32{0},
		Tables:  []wasm.TableType{{ElemType: wasm.ValueTypeFuncref, Limits: wasm.Limits{Min: 1}}},
		Codes:   []wasm.Code{{Body: wasm.Expr{}}},
		Elements: []wasm.Element{{
			Mode:     wasm.ElemModeActive,
			TableIdx: 0,
			Offset:   wasm.Expr{{Op: wasm.OpI32Const, I32: 5}},
			Init:     []wasm.Expr{{{Op: wasm.OpRefFunc, Idx: 0}}},
		}},
	}
	m.Finalize()

	_, err := Instantiate(NewStore(), m, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrElementSegmentOOB)
}

func TestActiveDataSegmentOOBTraps(t *testing.T) {
	m := &wasm.Module{
		Memories: []wasm.MemType{{Limits: wasm.Limits{Min: 1}}},
		Datas: []wasm.Data{{
			Mode:   wasm.DataModeActive,
			MemIdx: 0,
			Offset: wasm.Expr{{Op: wasm.OpI32Const, I32: int32(wasm.PageSize - 2)}},
			Init:   []byte{1, 2, 3, 4},
		}},
	}
	m.Finalize()

	_, err := Instantiate(NewStore(), m, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDataSegmentOOB)
}

func TestStartFunctionRunsOnInstantiate(t *testing.T) {
	ft := wasm.FuncType{}
	body := wasm.Expr{
		{Op: wasm.OpI32Const, I32: 1},
		{Op: wasm.OpGlobalSet, Idx: 0},
	}
	m := &wasm.Module{
		Types:    []wasm.FuncType{ft},
		FuncSec:  []uint32{0},
		Globals:  []wasm.Global{{Type: wasm.GlobalType{ValueType: wasm.ValueTypeI32, Mut: wasm.MutVar}, Init: wasm.Expr{{Op: wasm.OpI32Const, I32: 0}}}},
		Codes:    []wasm.Code{{Body: body}},
		HasStart: true,
		Start:    0,
	}
	m.Finalize()

	inst, err := Instantiate(NewStore(), m, nil)
	require.NoError(t, err)
	assert.Equal(t, int32(1), inst.Module.Global(0).Value.I32())
}

func TestWithGasMetersStartFunction(t *testing.T) {
	ft := wasm.FuncType{}
	body := wasm.Expr{
		{Op: wasm.OpNop},
		{Op: wasm.OpNop},
		{Op: wasm.OpNop},
	}
	m := &wasm.Module{
		Types:    []wasm.FuncType{ft},
		FuncSec:  []uint32{0},
		Codes:    []wasm.Code{{Body: body}},
		HasStart: true,
		Start:    0,
	}
	m.Finalize()

	g := &Gas{Limit: 1}
	_, err := Instantiate(NewStore(), m, nil, WithGas(g, &SimpleGasPolicy{}))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOutOfGas)
}
