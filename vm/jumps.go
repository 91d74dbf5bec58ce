package vm

import "github.com/vertexdlt/vertexvm2/wasm"

// computeJumps scans a function body once, at instantiation time, and
// records for every Block/Loop/If instruction the index of its matching
// Else (If only) and End. This replaces the teacher's vm.go
// skipInstructions, which rescanned the instruction stream byte-by-byte
// every time a disabled (not-taken) branch needed to be skipped at run
// time; here the scan happens once per function instead of once per
// branch taken.
func computeJumps(body wasm.Expr) []jumpTarget {
	jumps := make([]jumpTarget, len(body))
	for i := range jumps {
		jumps[i].elseIdx = -1
	}
	var open []int
	for i, instr := range body {
		switch instr.Op {
		case wasm.OpBlock, wasm.OpLoop, wasm.OpIf:
			open = append(open, i)
		case wasm.OpElse:
			top := open[len(open)-1]
			jumps[top].elseIdx = i
		case wasm.OpEnd:
			top := open[len(open)-1]
			open = open[:len(open)-1]
			jumps[top].endIdx = i
		}
	}
	return jumps
}
