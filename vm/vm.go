// Package vm implements the WebAssembly 2.0 execution engine: the typed
// operand stack, activation and label frames, the store and instance
// layer, and the control-flow/numeric/SIMD/memory instruction semantics.
// Grounded on the teacher's vm/vm.go single-package stack machine,
// generalized from an int64-only MVP interpreter into the full
// WebAssembly 2.0 instruction set operating on the six-type Value model.
package vm

import (
	"github.com/vertexdlt/vertexvm2/wasm"
)

// StackSize is the operand stack depth, grounded on the teacher's vm.go
// StackSize constant.
const StackSize = 1 << 16

// MaxFrames bounds call recursion; exceeding it traps with
// ErrCallStackExhausted, the spec's "implementation-defined limit" for
// stack overflow (§4.8 Traps, §5 resource model).
const MaxFrames = 1 << 12

// MaxLabels bounds nested block/loop/if depth across the whole call stack.
const MaxLabels = 1 << 16

// Instance is one instantiated, runnable module: its resolved index
// spaces (via ModuleInstance) plus the mutable execution state (operand
// stack, frames, labels, gas) used to run its exported functions.
// Grounded on the teacher's VM struct, split from a single monolithic
// type into ModuleInstance (static, store-relative) + Instance (mutable
// run state) because one Store can now back several module instances.
type Instance struct {
	Module *ModuleInstance

	stack []Value
	sp    int

	frames   []*Frame
	frameIdx int

	labels   []label
	labelIdx int

	gas       *Gas
	gasPolicy GasPolicy
}

func newInstance(mi *ModuleInstance, gasPolicy GasPolicy, gas *Gas) *Instance {
	if gasPolicy == nil {
		gasPolicy = &FreeGasPolicy{}
	}
	return &Instance{
		Module:    mi,
		stack:     make([]Value, StackSize),
		frames:    make([]*Frame, MaxFrames),
		labels:    make([]label, MaxLabels),
		gasPolicy: gasPolicy,
		gas:       gas,
	}
}

// Export resolves a module-level export by name.
func (in *Instance) Export(name string) (Extern, bool) {
	exp, ok := in.Module.Exports[name]
	if !ok {
		return Extern{}, false
	}
	switch exp.Kind {
	case wasm.ExternFunc:
		return Extern{Kind: exp.Kind, Func: in.Module.Func(exp.Idx)}, true
	case wasm.ExternTable:
		return Extern{Kind: exp.Kind, Table: in.Module.Table(exp.Idx)}, true
	case wasm.ExternMemory:
		return Extern{Kind: exp.Kind, Memory: in.Module.Mem(exp.Idx)}, true
	case wasm.ExternGlobal:
		return Extern{Kind: exp.Kind, Global: in.Module.Global(exp.Idx)}, true
	}
	return Extern{}, false
}

// Extern is the common currency at module boundaries: exactly one field
// is populated, selected by Kind (§6 host interface).
type Extern struct {
	Kind   wasm.ExternKind
	Func   *FuncInstance
	Table  *TableInstance
	Memory *MemoryInstance
	Global *GlobalInstance
}

// Invoke calls an exported function by name with the given arguments and
// returns its results, or a Trap/error. This is the engine's single
// invocation boundary (§7): traps recovered here never re-enter execution.
func (in *Instance) Invoke(name string, args ...Value) (results []Value, err error) {
	idx, err := in.Module.ExportedFunc(name)
	if err != nil {
		return nil, err
	}
	fn := in.Module.Func(idx)
	if len(args) != len(fn.Type.Params) {
		return nil, ErrWrongNumberOfArgs
	}
	return in.call(fn, args)
}

// call is the trap-recovering wrapper around execFunc; every entry point
// into interpreted code (Invoke, and the instantiation-time start call)
// goes through it so a Trap panic never escapes the package; any other
// panic (an interpreter bug) is re-raised.
func (in *Instance) call(fn *FuncInstance, args []Value) (results []Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			if t, ok := r.(*Trap); ok {
				err = t
				results = nil
				return
			}
			panic(r)
		}
	}()
	return in.execFunc(fn, args)
}

// execFunc runs fn to completion (trapping via panic, caught by call) and
// returns its result values. Host functions are invoked directly; wasm
// functions get a fresh Frame and run through the instruction loop.
func (in *Instance) execFunc(fn *FuncInstance, args []Value) ([]Value, error) {
	if fn.isHost() {
		return fn.HostFunc.Func(args)
	}
	if in.frameIdx >= MaxFrames {
		panic(ErrCallStackExhausted)
	}
	if fn.jumps == nil {
		fn.jumps = computeJumps(fn.Code.Body)
	}

	locals := make([]Value, localCount(fn.Code, len(fn.Type.Params)))
	copy(locals, args)

	frame := &Frame{
		fn:        fn,
		locals:    locals,
		ip:        0,
		labelBase: in.labelIdx,
		stackBase: in.sp,
		arity:     len(fn.Type.Results),
	}
	in.pushFrame(frame)
	defer in.popFrame()

	if err := in.run(frame); err != nil {
		return nil, err
	}

	results := make([]Value, frame.arity)
	copy(results, in.stack[in.sp-frame.arity:in.sp])
	in.sp = frame.stackBase
	in.labelIdx = frame.labelBase
	return results, nil
}

// run executes frame's instruction stream until it falls off the end
// (normal return) or an OpReturn unwinds it early. Control instructions
// manipulate frame.ip and the label stack directly; everything else
// delegates to the numeric/SIMD/memory dispatch helpers in sibling files.
// Grounded on the teacher's vm.go interpret loop, generalized from a
// single int64 stack to the typed Value stack and full opcode set.
func (in *Instance) run(frame *Frame) error {
	body := frame.fn.Code.Body
	for frame.ip < len(body) {
		instr := body[frame.ip]
		if in.gas != nil {
			if err := in.gas.charge(in.gasPolicy.GetCostForOp(instr.Op)); err != nil {
				return err
			}
		}
		nextIp := frame.ip + 1

		switch instr.Op {
		case wasm.OpUnreachable:
			panic(ErrUnreachable)
		case wasm.OpNop:

		case wasm.OpBlock:
			bt := instr.BlockType.Resolve(frame.fn.Module.Types)
			jt := frame.fn.jumps[frame.ip]
			in.pushLabel(label{stackBase: in.sp, arity: len(bt.Results), contIdx: jt.endIdx + 1, openIdx: frame.ip})

		case wasm.OpLoop:
			bt := instr.BlockType.Resolve(frame.fn.Module.Types)
			in.pushLabel(label{isLoop: true, stackBase: in.sp, arity: len(bt.Params), contIdx: frame.ip + 1, openIdx: frame.ip})

		case wasm.OpIf:
			cond := in.pop()
			bt := instr.BlockType.Resolve(frame.fn.Module.Types)
			jt := frame.fn.jumps[frame.ip]
			in.pushLabel(label{stackBase: in.sp, arity: len(bt.Results), contIdx: jt.endIdx + 1, openIdx: frame.ip})
			if cond.I32() == 0 {
				if jt.elseIdx >= 0 {
					nextIp = jt.elseIdx + 1
				} else {
					nextIp = jt.endIdx
				}
			}

		case wasm.OpElse:
			// Reached only by falling through the taken then-branch: skip
			// the else-branch by jumping straight to the shared End.
			openIdx := in.labels[in.labelIdx-1].openIdx
			nextIp = frame.fn.jumps[openIdx].endIdx

		case wasm.OpEnd:
			in.popLabel()

		case wasm.OpBr:
			nextIp = in.branch(instr.Idx)

		case wasm.OpBrIf:
			cond := in.pop()
			if cond.I32() != 0 {
				nextIp = in.branch(instr.Idx)
			}

		case wasm.OpBrTable:
			idx := in.pop().U32()
			l := instr.Default
			if int(idx) < len(instr.Labels) {
				l = instr.Labels[idx]
			}
			nextIp = in.branch(l)

		case wasm.OpReturn:
			return in.doReturn(frame)

		case wasm.OpCall:
			if err := in.execCall(frame, instr.Idx); err != nil {
				return err
			}

		case wasm.OpCallIndirect:
			if err := in.execCallIndirect(frame, instr); err != nil {
				return err
			}

		case wasm.OpDrop:
			in.pop()

		case wasm.OpSelect, wasm.OpSelectT:
			cond := in.pop()
			b := in.pop()
			a := in.pop()
			if cond.I32() != 0 {
				in.push(a)
			} else {
				in.push(b)
			}

		case wasm.OpLocalGet:
			in.push(frame.locals[instr.Idx])
		case wasm.OpLocalSet:
			frame.locals[instr.Idx] = in.pop()
		case wasm.OpLocalTee:
			frame.locals[instr.Idx] = in.peek()

		case wasm.OpGlobalGet:
			in.push(frame.fn.Module.Global(instr.Idx).Value)
		case wasm.OpGlobalSet:
			frame.fn.Module.Global(instr.Idx).Value = in.pop()

		case wasm.OpTableGet:
			if err := in.execTableGet(frame, instr.Idx); err != nil {
				return err
			}
		case wasm.OpTableSet:
			if err := in.execTableSet(frame, instr.Idx); err != nil {
				return err
			}

		case wasm.OpRefNull:
			in.push(NullRefVal())
		case wasm.OpRefIsNull:
			in.push(boolVal(in.pop().IsNullRef()))
		case wasm.OpRefFunc:
			in.push(RefVal(uint32(frame.fn.Module.FuncAddrs[instr.Idx])))

		default:
			if err := in.execOther(frame, instr); err != nil {
				return err
			}
		}

		frame.ip = nextIp
	}
	return nil
}

// execOther routes every instruction not handled inline in run's switch
// (memory/table ops, scalar numeric ops, SIMD) to its dedicated dispatch
// helper, keyed off the opcode ranges in wasm/opcode.go.
func (in *Instance) execOther(frame *Frame, instr wasm.Instr) error {
	op := instr.Op
	switch {
	case op >= wasm.OpI32Load && op <= wasm.OpMemoryGrow:
		return in.execMemOp(frame, instr)
	case op == wasm.OpI32Const:
		in.push(I32Val(instr.I32))
	case op == wasm.OpI64Const:
		in.push(I64Val(instr.I64))
	case op == wasm.OpF32Const:
		in.push(F32Val(instr.F32))
	case op == wasm.OpF64Const:
		in.push(F64Val(instr.F64))
	case op >= wasm.OpI32Eqz && op <= wasm.OpI64Extend32S:
		return in.execNumeric(op)
	case op >= wasm.OpI32TruncSatF32S && op <= wasm.OpTableFill:
		return in.execMiscOp(frame, instr)
	case op >= wasm.OpV128Load:
		return in.execSimdOp(frame, instr)
	default:
		panic(NewTrap("unhandled opcode"))
	}
	return nil
}

// doReturn unwinds frame as if by branching to its outermost label:
// preserve the top `arity` values, discard everything else, and stop the
// run loop so execFunc can harvest them.
func (in *Instance) doReturn(frame *Frame) error {
	n := frame.arity
	vals := append([]Value(nil), in.stack[in.sp-n:in.sp]...)
	in.sp = frame.stackBase
	for _, v := range vals {
		in.push(v)
	}
	in.labelIdx = frame.labelBase
	return nil
}

// branch implements br's unwinding rule (§4.8): pop down to the l-th
// enclosing label, preserve its arity worth of values, and resume at its
// continuation. A loop's own label survives the unwind since branching to
// a loop re-enters it rather than exiting it.
func (in *Instance) branch(l uint32) int {
	idx := in.labelIdx - 1 - int(l)
	target := in.labels[idx]
	n := target.arity
	vals := append([]Value(nil), in.stack[in.sp-n:in.sp]...)
	in.sp = target.stackBase
	for _, v := range vals {
		in.push(v)
	}
	if target.isLoop {
		in.labelIdx = idx + 1
	} else {
		in.labelIdx = idx
	}
	return target.contIdx
}

func (in *Instance) execCall(frame *Frame, idx uint32) error {
	callee := frame.fn.Module.Func(idx)
	arity := len(callee.Type.Params)
	args := append([]Value(nil), in.stack[in.sp-arity:in.sp]...)
	in.sp -= arity
	results, err := in.execFunc(callee, args)
	if err != nil {
		return err
	}
	for _, v := range results {
		in.push(v)
	}
	return nil
}

func (in *Instance) execCallIndirect(frame *Frame, instr wasm.Instr) error {
	table := frame.fn.Module.Table(instr.Idx2)
	elemIdx := in.pop().U32()
	if int(elemIdx) >= len(table.Elems) {
		panic(ErrOutOfBoundsTable)
	}
	ref := table.Elems[elemIdx]
	if ref.IsNullRef() {
		panic(ErrNullReference)
	}
	callee := in.Module.Store.Funcs[ref.U32()]
	want := frame.fn.Module.Types[instr.Idx]
	if !callee.Type.Equal(want) {
		panic(ErrIndirectCallTypeMismatch)
	}
	arity := len(callee.Type.Params)
	args := append([]Value(nil), in.stack[in.sp-arity:in.sp]...)
	in.sp -= arity
	results, err := in.execFunc(callee, args)
	if err != nil {
		return err
	}
	for _, v := range results {
		in.push(v)
	}
	return nil
}

func (in *Instance) execTableGet(frame *Frame, idx uint32) error {
	table := frame.fn.Module.Table(idx)
	i := in.pop().U32()
	if int(i) >= len(table.Elems) {
		panic(ErrOutOfBoundsTable)
	}
	in.push(table.Elems[i])
	return nil
}

func (in *Instance) execTableSet(frame *Frame, idx uint32) error {
	table := frame.fn.Module.Table(idx)
	v := in.pop()
	i := in.pop().U32()
	if int(i) >= len(table.Elems) {
		panic(ErrOutOfBoundsTable)
	}
	table.Elems[i] = v
	return nil
}

// --- operand stack / frame / label primitives ---

func (in *Instance) push(v Value) {
	if in.sp >= len(in.stack) {
		panic(ErrStackOverflow)
	}
	in.stack[in.sp] = v
	in.sp++
}

func (in *Instance) pop() Value {
	if in.sp == 0 {
		panic(ErrStackUnderflow)
	}
	in.sp--
	return in.stack[in.sp]
}

func (in *Instance) peek() Value {
	if in.sp == 0 {
		panic(ErrStackUnderflow)
	}
	return in.stack[in.sp-1]
}

func (in *Instance) pushFrame(f *Frame) {
	if in.frameIdx >= len(in.frames) {
		panic(ErrFrameOverflow)
	}
	in.frames[in.frameIdx] = f
	in.frameIdx++
}

func (in *Instance) popFrame() {
	in.frameIdx--
}

func (in *Instance) pushLabel(l label) {
	if in.labelIdx >= len(in.labels) {
		panic(NewTrap("label stack overflow"))
	}
	in.labels[in.labelIdx] = l
	in.labelIdx++
}

func (in *Instance) popLabel() {
	if in.labelIdx == 0 {
		panic(ErrLabelUnderflow)
	}
	in.labelIdx--
}
