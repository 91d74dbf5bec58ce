package vm

import "github.com/vertexdlt/vertexvm2/wasm"

// HostFunc is a function implemented in Go and callable from wasm code,
// the only mechanism by which an Instance can import functionality.
type HostFunc struct {
	Type wasm.FuncType
	Func func(args []Value) ([]Value, error)
}

// FuncInstance is either a local function (Code/Module set, HostFunc nil)
// or an imported host function (HostFunc set). jumps mirrors Code's
// body one-to-one, filled in at instantiation time so the interpreter
// never has to rescan for a matching End/Else the way the teacher's
// vm.go skipInstructions does.
type FuncInstance struct {
	Type     wasm.FuncType
	Module   *ModuleInstance
	Code     *wasm.Code
	HostFunc *HostFunc
	jumps    []jumpTarget
}

func (f *FuncInstance) isHost() bool { return f.HostFunc != nil }

// TableInstance holds one table's live elements; Elems stores Value (a ref,
// i.e. a function's address in Store.Funcs, or NullRef) regardless of
// element type.
type TableInstance struct {
	Type  wasm.TableType
	Elems []Value
}

// MemoryInstance holds one linear memory's live bytes.
type MemoryInstance struct {
	Type wasm.MemType
	Data []byte
}

func (m *MemoryInstance) pages() uint32 { return uint32(len(m.Data)) / wasm.PageSize }

// GlobalInstance holds one global's current value.
type GlobalInstance struct {
	Type  wasm.GlobalType
	Value Value
}

// ElemInstance is a dropped/live element segment, retained post-instantiation
// so table.init can still read from a passive segment until elem.drop fires.
type ElemInstance struct {
	Type    wasm.ValueType
	Refs    []Value
	Dropped bool
}

// DataInstance is a dropped/live data segment, retained so memory.init can
// read from a passive segment until data.drop fires.
type DataInstance struct {
	Bytes   []byte
	Dropped bool
}

// ModuleInstance is the runtime representation of an instantiated module:
// resolved index spaces pointing into the owning Store's instances.
type ModuleInstance struct {
	Store       *Store
	Types       []wasm.FuncType
	FuncAddrs   []int // index into Store.Funcs
	TableAddrs  []int
	MemAddrs    []int
	GlobalAddrs []int
	ElemAddrs   []int
	DataAddrs   []int
	Exports     map[string]wasm.Export
}

// Store owns every live instance across every module instantiated against
// it, following the spec's store/address-space model rather than nesting
// instances directly inside one another (needed so imports from one
// module instance can alias another's table/memory/global).
type Store struct {
	Funcs   []*FuncInstance
	Tables  []*TableInstance
	Mems    []*MemoryInstance
	Globals []*GlobalInstance
	Elems   []*ElemInstance
	Datas   []*DataInstance
}

// NewStore creates an empty store.
func NewStore() *Store { return &Store{} }

func (mi *ModuleInstance) resolveFuncType(idx uint32) wasm.FuncType {
	return mi.Types[idx]
}

// Func returns the FuncInstance bound to the module's function index idx.
func (mi *ModuleInstance) Func(idx uint32) *FuncInstance {
	return mi.Store.Funcs[mi.FuncAddrs[idx]]
}

func (mi *ModuleInstance) Table(idx uint32) *TableInstance {
	return mi.Store.Tables[mi.TableAddrs[idx]]
}

func (mi *ModuleInstance) Mem(idx uint32) *MemoryInstance {
	return mi.Store.Mems[mi.MemAddrs[idx]]
}

func (mi *ModuleInstance) Global(idx uint32) *GlobalInstance {
	return mi.Store.Globals[mi.GlobalAddrs[idx]]
}

func (mi *ModuleInstance) Elem(idx uint32) *ElemInstance {
	return mi.Store.Elems[mi.ElemAddrs[idx]]
}

func (mi *ModuleInstance) Data(idx uint32) *DataInstance {
	return mi.Store.Datas[mi.DataAddrs[idx]]
}

// ExportedFunc looks up an exported function's module-local index by name.
func (mi *ModuleInstance) ExportedFunc(name string) (uint32, error) {
	exp, ok := mi.Exports[name]
	if !ok || exp.Kind != wasm.ExternFunc {
		return 0, ErrExportNotFound
	}
	return exp.Idx, nil
}
