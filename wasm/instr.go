package wasm

// Instr is a single decoded instruction: an opcode tag plus whichever
// immediate fields that opcode uses. A tagged struct (rather than a
// type-per-opcode hierarchy) keeps decode, encode and the interpreter's
// dispatch all switching on one field, per the "avoid deep inheritance"
// design guidance: group semantics by helper functions operating on one
// variant instead of subclassing per instruction.
type Instr struct {
	Op Opcode

	// block / loop / if
	BlockType BlockType

	// br, br_if, local/global/table index, call, ref.func, elem/data index
	Idx  uint32
	Idx2 uint32 // secondary index: call_indirect/table.init table, table.copy source table

	// call_indirect: Idx is the type index, Idx2 the table index
	// br_table
	Labels  []uint32
	Default uint32

	// memory argument for load/store
	Mem MemArg

	// constants
	I32  int32
	I64  int64
	F32  float32
	F64  float64
	V128 [16]byte

	// SIMD lane immediates
	Lane   byte
	Shuffle [16]byte

	// select with explicit result types (0x1C)
	SelectTypes []ValueType

	// ref.null
	RefType ValueType
}

// Expr is an instruction sequence terminated by an implicit End (the
// trailing 0x0B byte is consumed by the decoder and not stored).
type Expr []Instr
