package vm

import (
	"fmt"

	"github.com/vertexdlt/vertexvm2/simd"
	"github.com/vertexdlt/vertexvm2/wasm"
)

// LinkError reports a failure to instantiate a module: an unresolved or
// incompatible import. An out-of-bounds active element/data segment is
// reported as a Trap (ErrElementSegmentOOB/ErrDataSegmentOOB) instead.
// Grounded on the teacher's vm/error.go ExecError, split into its own type
// since link failures happen before any instruction ever executes and
// should never be confused with a runtime Trap.
type LinkError struct{ msg string }

func (e *LinkError) Error() string { return e.msg }

func linkErrorf(format string, args ...interface{}) *LinkError {
	return &LinkError{msg: fmt.Sprintf(format, args...)}
}

// ImportResolver supplies the externs a module's import section asks for.
// A host implements this to hand the instantiator function/table/memory/
// global instances by module.field name, the same two-level namespace the
// binary format itself uses.
type ImportResolver interface {
	Resolve(module, field string) (Extern, bool)
}

// NewHostFunc wraps a Go function as a FuncInstance importable by a wasm
// module, the only way host functionality enters an Instance.
func NewHostFunc(t wasm.FuncType, f func(args []Value) ([]Value, error)) *FuncInstance {
	return &FuncInstance{Type: t, HostFunc: &HostFunc{Type: t, Func: f}}
}

// Option configures optional instantiation-time behavior.
type Option func(*instOpts)

type instOpts struct {
	gas       *Gas
	gasPolicy GasPolicy
}

// WithGas meters the instance's execution against g, charged per
// gasPolicy (or SimpleGasPolicy if none is given).
func WithGas(g *Gas, policy GasPolicy) Option {
	return func(o *instOpts) {
		o.gas = g
		o.gasPolicy = policy
	}
}

// Instantiate links m against store, resolving its imports through
// resolver, allocates its local tables/memories/globals/functions,
// populates active element/data segments, installs its exports, and runs
// its start function if it has one. Grounded on the teacher's (importless)
// vm.NewVM, generalized to the spec's full import-resolution/allocation/
// initialization algorithm (§4.10).
func Instantiate(store *Store, m *wasm.Module, resolver ImportResolver, opts ...Option) (*Instance, error) {
	o := instOpts{}
	for _, opt := range opts {
		opt(&o)
	}

	mi := &ModuleInstance{
		Store:   store,
		Types:   append([]wasm.FuncType(nil), m.Types...),
		Exports: map[string]wasm.Export{},
	}

	if err := resolveImports(store, m, mi, resolver); err != nil {
		return nil, err
	}
	allocateLocals(store, m, mi)
	allocateFuncs(store, m, mi)

	if err := populateElements(store, m, mi); err != nil {
		return nil, err
	}
	if err := populateData(store, m, mi); err != nil {
		return nil, err
	}

	for _, exp := range m.Exports {
		mi.Exports[exp.Name] = exp
	}

	inst := newInstance(mi, o.gasPolicy, o.gas)

	if m.HasStart {
		if _, err := inst.call(mi.Func(m.Start), nil); err != nil {
			return nil, err
		}
	}
	return inst, nil
}

func resolveImports(store *Store, m *wasm.Module, mi *ModuleInstance, resolver ImportResolver) error {
	for _, imp := range m.Imports {
		var ext Extern
		var ok bool
		if resolver != nil {
			ext, ok = resolver.Resolve(imp.Module, imp.Field)
		}
		if !ok {
			return linkErrorf("import not resolved: %s.%s", imp.Module, imp.Field)
		}
		if ext.Kind != imp.Kind {
			return linkErrorf("import kind mismatch: %s.%s", imp.Module, imp.Field)
		}
		switch imp.Kind {
		case wasm.ExternFunc:
			want := m.Types[imp.FuncTypeIdx]
			if ext.Func == nil || !ext.Func.Type.Equal(want) {
				return linkErrorf("import type mismatch: %s.%s", imp.Module, imp.Field)
			}
			mi.FuncAddrs = append(mi.FuncAddrs, addrOfFunc(store, ext.Func))
		case wasm.ExternTable:
			if ext.Table == nil || ext.Table.Type.ElemType != imp.Table.ElemType ||
				!limitsCompatible(imp.Table.Limits, ext.Table.Type.Limits) {
				return linkErrorf("import type mismatch: %s.%s", imp.Module, imp.Field)
			}
			mi.TableAddrs = append(mi.TableAddrs, addrOfTable(store, ext.Table))
		case wasm.ExternMemory:
			if ext.Memory == nil || !limitsCompatible(imp.Memory.Limits, ext.Memory.Type.Limits) {
				return linkErrorf("import type mismatch: %s.%s", imp.Module, imp.Field)
			}
			mi.MemAddrs = append(mi.MemAddrs, addrOfMem(store, ext.Memory))
		case wasm.ExternGlobal:
			if ext.Global == nil || ext.Global.Type != imp.Global {
				return linkErrorf("import type mismatch: %s.%s", imp.Module, imp.Field)
			}
			mi.GlobalAddrs = append(mi.GlobalAddrs, addrOfGlobal(store, ext.Global))
		}
	}
	return nil
}

// limitsCompatible reports whether got satisfies the bound want demands,
// per the spec's table/memory import subtyping rule.
func limitsCompatible(want, got wasm.Limits) bool {
	if got.Min < want.Min {
		return false
	}
	if !want.HasMax {
		return true
	}
	return got.HasMax && got.Max <= want.Max
}

func addrOfFunc(store *Store, f *FuncInstance) int {
	for i, existing := range store.Funcs {
		if existing == f {
			return i
		}
	}
	store.Funcs = append(store.Funcs, f)
	return len(store.Funcs) - 1
}

func addrOfTable(store *Store, t *TableInstance) int {
	for i, existing := range store.Tables {
		if existing == t {
			return i
		}
	}
	store.Tables = append(store.Tables, t)
	return len(store.Tables) - 1
}

func addrOfMem(store *Store, m *MemoryInstance) int {
	for i, existing := range store.Mems {
		if existing == m {
			return i
		}
	}
	store.Mems = append(store.Mems, m)
	return len(store.Mems) - 1
}

func addrOfGlobal(store *Store, g *GlobalInstance) int {
	for i, existing := range store.Globals {
		if existing == g {
			return i
		}
	}
	store.Globals = append(store.Globals, g)
	return len(store.Globals) - 1
}

func allocateLocals(store *Store, m *wasm.Module, mi *ModuleInstance) {
	for _, tt := range m.Tables {
		elems := make([]Value, tt.Limits.Min)
		for i := range elems {
			elems[i] = NullRefVal()
		}
		store.Tables = append(store.Tables, &TableInstance{Type: tt, Elems: elems})
		mi.TableAddrs = append(mi.TableAddrs, len(store.Tables)-1)
	}
	for _, mt := range m.Memories {
		store.Mems = append(store.Mems, &MemoryInstance{Type: mt, Data: make([]byte, uint64(mt.Limits.Min)*wasm.PageSize)})
		mi.MemAddrs = append(mi.MemAddrs, len(store.Mems)-1)
	}
	for _, g := range m.Globals {
		store.Globals = append(store.Globals, &GlobalInstance{Type: g.Type, Value: evalConstExpr(mi, g.Init)})
		mi.GlobalAddrs = append(mi.GlobalAddrs, len(store.Globals)-1)
	}
}

func allocateFuncs(store *Store, m *wasm.Module, mi *ModuleInstance) {
	for i := m.NumImportedFuncs; i < len(m.Funcs); i++ {
		fn := m.Funcs[i]
		code := fn.Code
		store.Funcs = append(store.Funcs, &FuncInstance{
			Type:   m.Types[fn.TypeIdx],
			Module: mi,
			Code:   &code,
		})
		mi.FuncAddrs = append(mi.FuncAddrs, len(store.Funcs)-1)
	}
}

func populateElements(store *Store, m *wasm.Module, mi *ModuleInstance) error {
	for _, el := range m.Elements {
		refs := make([]Value, len(el.Init))
		for j, init := range el.Init {
			refs[j] = evalConstExpr(mi, init)
		}
		store.Elems = append(store.Elems, &ElemInstance{Type: el.Type, Refs: refs})
		mi.ElemAddrs = append(mi.ElemAddrs, len(store.Elems)-1)

		if el.Mode != wasm.ElemModeActive {
			continue
		}
		off := evalConstExpr(mi, el.Offset).U32()
		table := mi.Table(el.TableIdx)
		if uint64(off)+uint64(len(refs)) > uint64(len(table.Elems)) {
			return ErrElementSegmentOOB
		}
		copy(table.Elems[off:], refs)
	}
	return nil
}

func populateData(store *Store, m *wasm.Module, mi *ModuleInstance) error {
	for _, d := range m.Datas {
		store.Datas = append(store.Datas, &DataInstance{Bytes: d.Init})
		mi.DataAddrs = append(mi.DataAddrs, len(store.Datas)-1)

		if d.Mode != wasm.DataModeActive {
			continue
		}
		off := evalConstExpr(mi, d.Offset).U32()
		mem := mi.Mem(d.MemIdx)
		if uint64(off)+uint64(len(d.Init)) > uint64(len(mem.Data)) {
			return ErrDataSegmentOOB
		}
		copy(mem.Data[off:], d.Init)
	}
	return nil
}

// evalConstExpr evaluates a constant expression (global/element/data
// offset initializers): exactly one of const/ref.null/ref.func/global.get,
// per the spec's restriction on what a const expr may contain.
func evalConstExpr(mi *ModuleInstance, expr wasm.Expr) Value {
	instr := expr[0]
	switch instr.Op {
	case wasm.OpI32Const:
		return I32Val(instr.I32)
	case wasm.OpI64Const:
		return I64Val(instr.I64)
	case wasm.OpF32Const:
		return F32Val(instr.F32)
	case wasm.OpF64Const:
		return F64Val(instr.F64)
	case wasm.OpV128Const:
		return V128Val(simd.V128(instr.V128))
	case wasm.OpRefNull:
		return NullRefVal()
	case wasm.OpRefFunc:
		return RefVal(uint32(mi.FuncAddrs[instr.Idx]))
	case wasm.OpGlobalGet:
		return mi.Global(instr.Idx).Value
	}
	panic(NewTrap("invalid constant expression"))
}
