package vm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vertexdlt/vertexvm2/wasm"
)

func singleFuncModule(t *testing.T, ft wasm.FuncType, locals []wasm.LocalGroup, body wasm.Expr, exportName string) *wasm.Module {
	t.Helper()
	m := &wasm.Module{
		Types:   []wasm.FuncType{ft},
		FuncSec: []uint32{0},
		Codes:   []wasm.Code{{Locals: locals, Body: body}},
		Exports: []wasm.Export{{Name: exportName, Kind: wasm.ExternFunc, Idx: 0}},
	}
	m.Finalize()
	return m
}

func TestInvokeAdd(t *testing.T) {
	ft := wasm.FuncType{Params: []wasm.ValueType{wasm.ValueTypeI32, wasm.ValueTypeI32}, Results: []wasm.ValueType{wasm.ValueTypeI32}}
	body := wasm.Expr{
		{Op: wasm.OpLocalGet, Idx: 0},
		{Op: wasm.OpLocalGet, Idx: 1},
		{Op: wasm.OpI32Add},
	}
	m := singleFuncModule(t, ft, nil, body, "add")

	inst, err := Instantiate(NewStore(), m, nil)
	require.NoError(t, err)

	results, err := inst.Invoke("add", I32Val(2), I32Val(3))
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, int32(5), results[0].I32())
}

func TestInvokeWrongArgCount(t *testing.T) {
	ft := wasm.FuncType{Params: []wasm.ValueType{wasm.ValueTypeI32}, Results: []wasm.ValueType{wasm.ValueTypeI32}}
	body := wasm.Expr{{Op: wasm.OpLocalGet, Idx: 0}}
	m := singleFuncModule(t, ft, nil, body, "id")

	inst, err := Instantiate(NewStore(), m, nil)
	require.NoError(t, err)

	_, err = inst.Invoke("id")
	assert.ErrorIs(t, err, ErrWrongNumberOfArgs)
}

func TestInvokeUnknownExport(t *testing.T) {
	ft := wasm.FuncType{}
	m := singleFuncModule(t, ft, nil, wasm.Expr{}, "noop")

	inst, err := Instantiate(NewStore(), m, nil)
	require.NoError(t, err)

	_, err = inst.Invoke("missing")
	assert.Error(t, err)
}

// TestLoopSum exercises block/loop/br/br_if unwinding: sum(n) = n+(n-1)+...+1.
func TestLoopSum(t *testing.T) {
	ft := wasm.FuncType{Params: []wasm.ValueType{wasm.ValueTypeI32}, Results: []wasm.ValueType{wasm.ValueTypeI32}}
	locals := []wasm.LocalGroup{{Count: 1, ValueType: wasm.ValueTypeI32}} // local 1: sum
	empty := wasm.BlockType{Kind: wasm.BlockTypeKindEmpty}
	body := wasm.Expr{
		{Op: wasm.OpBlock, BlockType: empty}, // 0
		{Op: wasm.OpLoop, BlockType: empty},  // 1
		{Op: wasm.OpLocalGet, Idx: 0},        // 2: n
		{Op: wasm.OpI32Eqz},                  // 3
		{Op: wasm.OpBrIf, Idx: 1},            // 4: exit block when n == 0
		{Op: wasm.OpLocalGet, Idx: 1},        // 5: sum
		{Op: wasm.OpLocalGet, Idx: 0},        // 6: n
		{Op: wasm.OpI32Add},                  // 7
		{Op: wasm.OpLocalSet, Idx: 1},        // 8: sum += n
		{Op: wasm.OpLocalGet, Idx: 0},        // 9
		{Op: wasm.OpI32Const, I32: 1},        // 10
		{Op: wasm.OpI32Sub},                  // 11
		{Op: wasm.OpLocalSet, Idx: 0},        // 12: n -= 1
		{Op: wasm.OpBr, Idx: 0},              // 13: continue loop
		{Op: wasm.OpEnd},                     // 14: end loop
		{Op: wasm.OpEnd},                     // 15: end block
		{Op: wasm.OpLocalGet, Idx: 1},        // 16: push sum for implicit return
	}
	m := singleFuncModule(t, ft, locals, body, "sum")

	inst, err := Instantiate(NewStore(), m, nil)
	require.NoError(t, err)

	results, err := inst.Invoke("sum", I32Val(5))
	require.NoError(t, err)
	assert.Equal(t, int32(15), results[0].I32())
}

// TestCallAndCallIndirect builds a two-function module where "main" calls
// "double" directly and through a table slot.
func TestCallAndCallIndirect(t *testing.T) {
	doubleType := wasm.FuncType{Params: []wasm.ValueType{wasm.ValueTypeI32}, Results: []wasm.ValueType{wasm.ValueTypeI32}}
	mainType := wasm.FuncType{Params: []wasm.ValueType{wasm.ValueTypeI32}, Results: []wasm.ValueType{wasm.ValueTypeI32}}

	m := &wasm.Module{
		Types:   []wasm.FuncType{doubleType, mainType},
		FuncSec: []uint32{0, 1},
		Tables:  []wasm.TableType{{ElemType: wasm.ValueTypeFuncref, Limits: wasm.Limits{Min: 1, Max: 1, HasMax: true}}},
		Elements: []wasm.Element{
			{
				Mode:     wasm.ElemModeActive,
				TableIdx: 0,
				Offset:   wasm.Expr{{Op: wasm.OpI32Const, I32: 0}},
				Type:     wasm.ValueTypeFuncref,
				Init:     []wasm.Expr{{{Op: wasm.OpRefFunc, Idx: 0}}},
			},
		},
		Codes: []wasm.Code{
			{Body: wasm.Expr{ // double(x) = x + x
				{Op: wasm.OpLocalGet, Idx: 0},
				{Op: wasm.OpLocalGet, Idx: 0},
				{Op: wasm.OpI32Add},
			}},
			{Body: wasm.Expr{ // main(x) = call_indirect(0, double(x)) via table slot 0
				{Op: wasm.OpLocalGet, Idx: 0},
				{Op: wasm.OpCall, Idx: 0},
				{Op: wasm.OpI32Const, I32: 0},
				{Op: wasm.OpCallIndirect, Idx: 0, Idx2: 0},
			}},
		},
		Exports: []wasm.Export{{Name: "main", Kind: wasm.ExternFunc, Idx: 1}},
	}
	m.Finalize()

	inst, err := Instantiate(NewStore(), m, nil)
	require.NoError(t, err)

	results, err := inst.Invoke("main", I32Val(3))
	require.NoError(t, err)
	assert.Equal(t, int32(12), results[0].I32()) // double(double(3)) = double(6) = 12
}

func TestCallIndirectTypeMismatchTraps(t *testing.T) {
	fType := wasm.FuncType{Results: []wasm.ValueType{wasm.ValueTypeI32}}
	gType := wasm.FuncType{Results: []wasm.ValueType{wasm.ValueTypeI64}}
	mainType := wasm.FuncType{Results: []wasm.ValueType{wasm.ValueTypeI32}}

	m := &wasm.Module{
		Types:   []wasm.FuncType{fType, gType, mainType},
		FuncSec: []uint32{1, 2},
		Tables:  []wasm.TableType{{ElemType: wasm.ValueTypeFuncref, Limits: wasm.Limits{Min: 1}}},
		Elements: []wasm.Element{
			{Mode: wasm.ElemModeActive, TableIdx: 0, Offset: wasm.Expr{{Op: wasm.OpI32Const, I32: 0}},
				Type: wasm.ValueTypeFuncref, Init: []wasm.Expr{{{Op: wasm.OpRefFunc, Idx: 0}}}},
		},
		Codes: []wasm.Code{
			{Body: wasm.Expr{{Op: wasm.OpI64Const, I64: 1}}}, // g: returns i64
			{Body: wasm.Expr{ // main: call_indirect expecting fType (i32 result) on a g-typed slot
				{Op: wasm.OpI32Const, I32: 0},
				{Op: wasm.OpCallIndirect, Idx: 0, Idx2: 0},
			}},
		},
		Exports: []wasm.Export{{Name: "main", Kind: wasm.ExternFunc, Idx: 1}},
	}
	m.Finalize()

	inst, err := Instantiate(NewStore(), m, nil)
	require.NoError(t, err)

	_, err = inst.Invoke("main")
	var trap *Trap
	require.ErrorAs(t, err, &trap)
	assert.Equal(t, ErrIndirectCallTypeMismatch, trap)
}

func TestMemoryStoreLoad(t *testing.T) {
	ft := wasm.FuncType{Results: []wasm.ValueType{wasm.ValueTypeI32}}
	body := wasm.Expr{
		{Op: wasm.OpI32Const, I32: 8},   // addr
		{Op: wasm.OpI32Const, I32: 123}, // value
		{Op: wasm.OpI32Store, Mem: wasm.MemArg{Offset: 0}},
		{Op: wasm.OpI32Const, I32: 8},
		{Op: wasm.OpI32Load, Mem: wasm.MemArg{Offset: 0}},
	}
	m := &wasm.Module{
		Types:    []wasm.FuncType{ft},
		FuncSec:  []uint32{0},
		Memories: []wasm.MemType{{Limits: wasm.Limits{Min: 1}}},
		Codes:    []wasm.Code{{Body: body}},
		Exports:  []wasm.Export{{Name: "run", Kind: wasm.ExternFunc, Idx: 0}},
	}
	m.Finalize()

	inst, err := Instantiate(NewStore(), m, nil)
	require.NoError(t, err)

	results, err := inst.Invoke("run")
	require.NoError(t, err)
	assert.Equal(t, int32(123), results[0].I32())
}

func TestMemoryLoadOutOfBoundsTraps(t *testing.T) {
	ft := wasm.FuncType{Results: []wasm.ValueType{wasm.ValueTypeI32}}
	body := wasm.Expr{
		{Op: wasm.OpI32Const, I32: 65600}, // past the single allocated page
		{Op: wasm.OpI32Load, Mem: wasm.MemArg{Offset: 0}},
	}
	m := &wasm.Module{
		Types:    []wasm.FuncType{ft},
		FuncSec:  []uint32{0},
		Memories: []wasm.MemType{{Limits: wasm.Limits{Min: 1}}},
		Codes:    []wasm.Code{{Body: body}},
		Exports:  []wasm.Export{{Name: "run", Kind: wasm.ExternFunc, Idx: 0}},
	}
	m.Finalize()

	inst, err := Instantiate(NewStore(), m, nil)
	require.NoError(t, err)

	_, err = inst.Invoke("run")
	var trap *Trap
	require.ErrorAs(t, err, &trap)
	assert.Equal(t, ErrOutOfBoundsMemory, trap)
}

func TestGlobalGetSet(t *testing.T) {
	ft := wasm.FuncType{Results: []wasm.ValueType{wasm.ValueTypeI32}}
	body := wasm.Expr{
		{Op: wasm.OpI32Const, I32: 41},
		{Op: wasm.OpGlobalSet, Idx: 0},
		{Op: wasm.OpGlobalGet, Idx: 0},
		{Op: wasm.OpI32Const, I32: 1},
		{Op: wasm.OpI32Add},
	}
	m := &wasm.Module{
		Types:   []wasm.FuncType{ft},
		FuncSec: []uint32{0},
		Globals: []wasm.Global{{Type: wasm.GlobalType{ValueType: wasm.ValueTypeI32, Mut: wasm.MutVar}, Init: wasm.Expr{{Op: wasm.OpI32Const, I32: 0}}}},
		Codes:   []wasm.Code{{Body: body}},
		Exports: []wasm.Export{{Name: "run", Kind: wasm.ExternFunc, Idx: 0}},
	}
	m.Finalize()

	inst, err := Instantiate(NewStore(), m, nil)
	require.NoError(t, err)

	results, err := inst.Invoke("run")
	require.NoError(t, err)
	assert.Equal(t, int32(42), results[0].I32())
}

func TestDivByZeroTraps(t *testing.T) {
	ft := wasm.FuncType{Results: []wasm.ValueType{wasm.ValueTypeI32}}
	body := wasm.Expr{
		{Op: wasm.OpI32Const, I32: 1},
		{Op: wasm.OpI32Const, I32: 0},
		{Op: wasm.OpI32DivS},
	}
	m := singleFuncModule(t, ft, nil, body, "run")

	inst, err := Instantiate(NewStore(), m, nil)
	require.NoError(t, err)

	_, err = inst.Invoke("run")
	var trap *Trap
	require.ErrorAs(t, err, &trap)
	assert.Equal(t, ErrIntegerDivideByZero, trap)
}

func TestUnreachableTraps(t *testing.T) {
	ft := wasm.FuncType{}
	body := wasm.Expr{{Op: wasm.OpUnreachable}}
	m := singleFuncModule(t, ft, nil, body, "run")

	inst, err := Instantiate(NewStore(), m, nil)
	require.NoError(t, err)

	_, err = inst.Invoke("run")
	var trap *Trap
	require.ErrorAs(t, err, &trap)
	assert.Equal(t, ErrUnreachable, trap)
}

func TestGasExhaustion(t *testing.T) {
	ft := wasm.FuncType{Results: []wasm.ValueType{wasm.ValueTypeI32}}
	body := wasm.Expr{
		{Op: wasm.OpI32Const, I32: 1},
		{Op: wasm.OpI32Const, I32: 2},
		{Op: wasm.OpI32Add},
	}
	m := singleFuncModule(t, ft, nil, body, "run")

	gas := &Gas{Limit: 2}
	inst, err := Instantiate(NewStore(), m, nil, WithGas(gas, &SimpleGasPolicy{}))
	require.NoError(t, err)

	_, err = inst.Invoke("run")
	assert.ErrorIs(t, err, ErrOutOfGas)
}

func TestHostImport(t *testing.T) {
	hostType := wasm.FuncType{Params: []wasm.ValueType{wasm.ValueTypeI32, wasm.ValueTypeI32}, Results: []wasm.ValueType{wasm.ValueTypeI32}}
	mainType := wasm.FuncType{Results: []wasm.ValueType{wasm.ValueTypeI32}}

	m := &wasm.Module{
		Types: []wasm.FuncType{hostType, mainType},
		Imports: []wasm.Import{
			{Module: "env", Field: "add", Kind: wasm.ExternFunc, FuncTypeIdx: 0},
		},
		FuncSec: []uint32{1},
		Codes: []wasm.Code{
			{Body: wasm.Expr{
				{Op: wasm.OpI32Const, I32: 4},
				{Op: wasm.OpI32Const, I32: 5},
				{Op: wasm.OpCall, Idx: 0},
			}},
		},
		Exports: []wasm.Export{{Name: "main", Kind: wasm.ExternFunc, Idx: 1}},
	}
	m.Finalize()

	resolver := resolverFunc(func(module, field string) (Extern, bool) {
		if module == "env" && field == "add" {
			fn := NewHostFunc(hostType, func(args []Value) ([]Value, error) {
				return []Value{I32Val(args[0].I32() + args[1].I32())}, nil
			})
			return Extern{Kind: wasm.ExternFunc, Func: fn}, true
		}
		return Extern{}, false
	})

	inst, err := Instantiate(NewStore(), m, resolver)
	require.NoError(t, err)

	results, err := inst.Invoke("main")
	require.NoError(t, err)
	assert.Equal(t, int32(9), results[0].I32())
}

func TestUnresolvedImportIsLinkError(t *testing.T) {
	m := &wasm.Module{
		Types:   []wasm.FuncType{{}},
		Imports: []wasm.Import{{Module: "env", Field: "missing", Kind: wasm.ExternFunc, FuncTypeIdx: 0}},
	}
	m.Finalize()

	_, err := Instantiate(NewStore(), m, resolverFunc(func(string, string) (Extern, bool) { return Extern{}, false }))
	var linkErr *LinkError
	assert.ErrorAs(t, err, &linkErr)
}

type resolverFunc func(module, field string) (Extern, bool)

func (f resolverFunc) Resolve(module, field string) (Extern, bool) { return f(module, field) }
