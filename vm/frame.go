package vm

import "github.com/vertexdlt/vertexvm2/wasm"

// jumpTarget records, for one Block/Loop/If instruction at a given index
// in a function body, where a branch targeting it should resume execution.
// Computed once per function at instantiation time (see jumps.go) rather
// than rescanned at branch time like the teacher's vm.go
// skipInstructions/blockJump.
type jumpTarget struct {
	elseIdx int // index of the matching Else, or -1 if none (If only)
	endIdx  int // index of the matching End
}

// label is a pending structured-control-flow scope: one per active
// block/loop/if. Grounded on the teacher's vm/block.go Block, generalized
// to carry the arity needed for multi-value blocks (the teacher's MVP
// blocks never returned a value).
type label struct {
	isLoop    bool
	stackBase int // operand stack depth at label entry
	arity     int // number of result values
	contIdx   int // instruction index a branch here resumes at
	openIdx   int // index of the Block/Loop/If instruction that pushed this label
}

// Frame is one call activation: its function, locals, and instruction
// pointer. Grounded on the teacher's vm/frame.go Frame.
type Frame struct {
	fn        *FuncInstance
	locals    []Value
	ip        int
	labelBase int // index into Instance.labels when this frame was pushed
	stackBase int // operand stack depth when this frame was pushed
	arity     int // number of result values the function returns
}

func localCount(code *wasm.Code, numParams int) int {
	n := numParams
	for _, g := range code.Locals {
		n += int(g.Count)
	}
	return n
}
