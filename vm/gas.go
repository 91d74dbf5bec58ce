package vm

import "github.com/vertexdlt/vertexvm2/wasm"

// Gas tracks consumption against a limit for one Instance's execution.
// Grounded on the teacher's vm/gas.go Gas struct.
type Gas struct {
	Used  uint64
	Limit uint64
}

// charge adds cost to g.Used, returning ErrOutOfGas instead of panicking so
// the interpreter can unwind cleanly through a normal error return. A nil
// Gas means unmetered execution.
func (g *Gas) charge(cost uint64) error {
	if g == nil {
		return nil
	}
	g.Used += cost
	if g.Limit != 0 && g.Used > g.Limit {
		return ErrOutOfGas
	}
	return nil
}

// GasPolicy prices every instruction and every page of memory growth.
// Grounded on the teacher's vm/gas.go GasPolicy interface, retargeted from
// the teacher's own opcode.Opcode decoder package to wasm.Opcode.
type GasPolicy interface {
	GetCostForOp(op wasm.Opcode) uint64
	GetCostForMalloc(pages uint32) uint64
}

// FreeGasPolicy charges nothing; the default when a caller passes no policy.
type FreeGasPolicy struct{}

func (p *FreeGasPolicy) GetCostForOp(op wasm.Opcode) uint64    { return 0 }
func (p *FreeGasPolicy) GetCostForMalloc(pages uint32) uint64 { return 0 }

// SimpleGasPolicy charges a flat 1 gas per instruction and 1024 gas per
// page allocated, matching the teacher's vm/gas.go SimpleGasPolicy.
type SimpleGasPolicy struct{}

func (p *SimpleGasPolicy) GetCostForOp(op wasm.Opcode) uint64 { return 1 }
func (p *SimpleGasPolicy) GetCostForMalloc(pages uint32) uint64 {
	return uint64(pages) * 1024
}
