// Package wasm implements the WebAssembly 2.0 binary module format: the
// value/type model, the instruction tagged union, and the section
// decoder/encoder pair. It produces and consumes a Module IR; it performs
// no validation and no execution (see package vm for those).
package wasm

// ValueType is a scalar, vector, or reference value type.
type ValueType byte

const (
	ValueTypeI32     ValueType = 0x7F
	ValueTypeI64     ValueType = 0x7E
	ValueTypeF32     ValueType = 0x7D
	ValueTypeF64     ValueType = 0x7C
	ValueTypeV128    ValueType = 0x7B
	ValueTypeFuncref ValueType = 0x70
	ValueTypeExtern  ValueType = 0x6F
)

// IsRef reports whether vt is one of the two reference types.
func (vt ValueType) IsRef() bool {
	return vt == ValueTypeFuncref || vt == ValueTypeExtern
}

// IsNumOrVec reports whether vt is a number or vector type (not a reference).
func (vt ValueType) IsNumOrVec() bool {
	return !vt.IsRef()
}

func (vt ValueType) String() string {
	switch vt {
	case ValueTypeI32:
		return "i32"
	case ValueTypeI64:
		return "i64"
	case ValueTypeF32:
		return "f32"
	case ValueTypeF64:
		return "f64"
	case ValueTypeV128:
		return "v128"
	case ValueTypeFuncref:
		return "funcref"
	case ValueTypeExtern:
		return "externref"
	default:
		return "unknown"
	}
}

// Mut is a global's mutability flag.
type Mut uint8

const (
	MutConst Mut = 0
	MutVar   Mut = 1
)

// Limits bounds a table's or memory's size, in table elements or 64KiB pages.
type Limits struct {
	Min uint32
	Max uint32
	HasMax bool
}

// FuncType is a function signature: ordered parameter types then result types.
type FuncType struct {
	Params  []ValueType
	Results []ValueType
}

// Equal reports whether ft and other describe the same signature.
func (ft FuncType) Equal(other FuncType) bool {
	if len(ft.Params) != len(other.Params) || len(ft.Results) != len(other.Results) {
		return false
	}
	for i := range ft.Params {
		if ft.Params[i] != other.Params[i] {
			return false
		}
	}
	for i := range ft.Results {
		if ft.Results[i] != other.Results[i] {
			return false
		}
	}
	return true
}

// TableType describes a table's element reference type and size limits.
type TableType struct {
	ElemType ValueType // ValueTypeFuncref or ValueTypeExtern
	Limits   Limits
}

// MemType describes a memory's size limits, in 64KiB pages.
type MemType struct {
	Limits Limits
}

// GlobalType describes a global's value type and mutability.
type GlobalType struct {
	ValueType ValueType
	Mut       Mut
}

// PageSize is the quantum of linear-memory growth, 64KiB.
const PageSize = 65536

// MaxPages is the default maximum memory size in pages when a module
// declares no explicit maximum (2^16 pages * 64KiB = 4GiB address space).
const MaxPages = 65536

// BlockTypeKind distinguishes the three binary encodings of a block type.
type BlockTypeKind byte

const (
	BlockTypeKindEmpty BlockTypeKind = iota
	BlockTypeKindValue
	BlockTypeKindIndex
)

// BlockType is the type annotation on block/loop/if.
type BlockType struct {
	Kind      BlockTypeKind
	ValueType ValueType
	TypeIdx   uint32
}

// Resolve expands bt into a concrete FuncType, consulting types for an
// indexed block type.
func (bt BlockType) Resolve(types []FuncType) FuncType {
	switch bt.Kind {
	case BlockTypeKindEmpty:
		return FuncType{}
	case BlockTypeKindValue:
		return FuncType{Results: []ValueType{bt.ValueType}}
	case BlockTypeKindIndex:
		if int(bt.TypeIdx) < len(types) {
			return types[bt.TypeIdx]
		}
		return FuncType{}
	default:
		return FuncType{}
	}
}

// MemArg is the align-hint/offset pair carried by every load/store instruction.
type MemArg struct {
	Align  uint32
	Offset uint32
}
