package vm

import (
	"github.com/vertexdlt/vertexvm2/number"
	"github.com/vertexdlt/vertexvm2/simd"
	"github.com/vertexdlt/vertexvm2/wasm"
)

// execMemOp dispatches the scalar load/store family (i32.load .. i64.store32)
// plus memory.size/memory.grow. Grounded on the teacher's vm/vm.go memory
// opcode switch, which only ever addressed a single flat byte slice; here
// bounds checking is centralized in loadBytes/storeBytes since WebAssembly
// 2.0 still allows exactly one memory per module but every access must trap
// cleanly rather than panic the host process.
func (in *Instance) execMemOp(frame *Frame, instr wasm.Instr) error {
	mem := frame.fn.Module.Mem(0)
	switch instr.Op {
	case wasm.OpI32Load:
		b, err := loadBytes(mem, ea(instr, in.pop()), 4)
		if err != nil {
			return err
		}
		in.push(U32Val(le32(b)))
	case wasm.OpI64Load:
		b, err := loadBytes(mem, ea(instr, in.pop()), 8)
		if err != nil {
			return err
		}
		in.push(U64Val(le64(b)))
	case wasm.OpF32Load:
		b, err := loadBytes(mem, ea(instr, in.pop()), 4)
		if err != nil {
			return err
		}
		in.push(Value{Lo: uint64(le32(b))})
	case wasm.OpF64Load:
		b, err := loadBytes(mem, ea(instr, in.pop()), 8)
		if err != nil {
			return err
		}
		in.push(Value{Lo: le64(b)})
	case wasm.OpI32Load8S:
		b, err := loadBytes(mem, ea(instr, in.pop()), 1)
		if err != nil {
			return err
		}
		in.push(I32Val(int32(int8(b[0]))))
	case wasm.OpI32Load8U:
		b, err := loadBytes(mem, ea(instr, in.pop()), 1)
		if err != nil {
			return err
		}
		in.push(U32Val(uint32(b[0])))
	case wasm.OpI32Load16S:
		b, err := loadBytes(mem, ea(instr, in.pop()), 2)
		if err != nil {
			return err
		}
		in.push(I32Val(int32(int16(le16(b)))))
	case wasm.OpI32Load16U:
		b, err := loadBytes(mem, ea(instr, in.pop()), 2)
		if err != nil {
			return err
		}
		in.push(U32Val(uint32(le16(b))))
	case wasm.OpI64Load8S:
		b, err := loadBytes(mem, ea(instr, in.pop()), 1)
		if err != nil {
			return err
		}
		in.push(I64Val(int64(int8(b[0]))))
	case wasm.OpI64Load8U:
		b, err := loadBytes(mem, ea(instr, in.pop()), 1)
		if err != nil {
			return err
		}
		in.push(U64Val(uint64(b[0])))
	case wasm.OpI64Load16S:
		b, err := loadBytes(mem, ea(instr, in.pop()), 2)
		if err != nil {
			return err
		}
		in.push(I64Val(int64(int16(le16(b)))))
	case wasm.OpI64Load16U:
		b, err := loadBytes(mem, ea(instr, in.pop()), 2)
		if err != nil {
			return err
		}
		in.push(U64Val(uint64(le16(b))))
	case wasm.OpI64Load32S:
		b, err := loadBytes(mem, ea(instr, in.pop()), 4)
		if err != nil {
			return err
		}
		in.push(I64Val(int64(int32(le32(b)))))
	case wasm.OpI64Load32U:
		b, err := loadBytes(mem, ea(instr, in.pop()), 4)
		if err != nil {
			return err
		}
		in.push(U64Val(uint64(le32(b))))

	case wasm.OpI32Store:
		v := in.pop()
		addr := ea(instr, in.pop())
		return storeBytes(mem, addr, put32(v.U32()))
	case wasm.OpI64Store:
		v := in.pop()
		addr := ea(instr, in.pop())
		return storeBytes(mem, addr, put64(v.U64()))
	case wasm.OpF32Store:
		v := in.pop()
		addr := ea(instr, in.pop())
		return storeBytes(mem, addr, put32(v.U32()))
	case wasm.OpF64Store:
		v := in.pop()
		addr := ea(instr, in.pop())
		return storeBytes(mem, addr, put64(v.U64()))
	case wasm.OpI32Store8:
		v := in.pop()
		addr := ea(instr, in.pop())
		return storeBytes(mem, addr, []byte{byte(v.U32())})
	case wasm.OpI32Store16:
		v := in.pop()
		addr := ea(instr, in.pop())
		return storeBytes(mem, addr, put16(uint16(v.U32())))
	case wasm.OpI64Store8:
		v := in.pop()
		addr := ea(instr, in.pop())
		return storeBytes(mem, addr, []byte{byte(v.U64())})
	case wasm.OpI64Store16:
		v := in.pop()
		addr := ea(instr, in.pop())
		return storeBytes(mem, addr, put16(uint16(v.U64())))
	case wasm.OpI64Store32:
		v := in.pop()
		addr := ea(instr, in.pop())
		return storeBytes(mem, addr, put32(uint32(v.U64())))

	case wasm.OpMemorySize:
		in.push(U32Val(mem.pages()))
	case wasm.OpMemoryGrow:
		delta := in.pop().U32()
		result := growMemory(mem, delta)
		if result >= 0 && in.gas != nil {
			if err := in.gas.charge(in.gasPolicy.GetCostForMalloc(delta)); err != nil {
				return err
			}
		}
		in.push(I32Val(result))

	default:
		panic(NewTrap("unhandled memory opcode"))
	}
	return nil
}

// execMiscOp dispatches the 0xFC-prefixed family: saturating truncation,
// and bulk memory/table instructions.
func (in *Instance) execMiscOp(frame *Frame, instr wasm.Instr) error {
	switch instr.Op {
	case wasm.OpI32TruncSatF32S:
		in.push(U32Val(uint32(number.TruncSatF32(in.pop().F32(), number.TruncI32S))))
	case wasm.OpI32TruncSatF32U:
		in.push(U32Val(uint32(number.TruncSatF32(in.pop().F32(), number.TruncI32U))))
	case wasm.OpI32TruncSatF64S:
		in.push(U32Val(uint32(number.TruncSatF64(in.pop().F64(), number.TruncI32S))))
	case wasm.OpI32TruncSatF64U:
		in.push(U32Val(uint32(number.TruncSatF64(in.pop().F64(), number.TruncI32U))))
	case wasm.OpI64TruncSatF32S:
		in.push(U64Val(number.TruncSatF32(in.pop().F32(), number.TruncI64S)))
	case wasm.OpI64TruncSatF32U:
		in.push(U64Val(number.TruncSatF32(in.pop().F32(), number.TruncI64U)))
	case wasm.OpI64TruncSatF64S:
		in.push(U64Val(number.TruncSatF64(in.pop().F64(), number.TruncI64S)))
	case wasm.OpI64TruncSatF64U:
		in.push(U64Val(number.TruncSatF64(in.pop().F64(), number.TruncI64U)))

	case wasm.OpMemoryInit:
		return in.execMemoryInit(frame, instr.Idx)
	case wasm.OpDataDrop:
		frame.fn.Module.Data(instr.Idx).Dropped = true
	case wasm.OpMemoryCopy:
		return in.execMemoryCopy(frame)
	case wasm.OpMemoryFill:
		return in.execMemoryFill(frame)

	case wasm.OpTableInit:
		return in.execTableInit(frame, instr.Idx, instr.Idx2)
	case wasm.OpElemDrop:
		frame.fn.Module.Elem(instr.Idx).Dropped = true
	case wasm.OpTableCopy:
		return in.execTableCopy(frame, instr.Idx, instr.Idx2)
	case wasm.OpTableGrow:
		return in.execTableGrow(frame, instr.Idx)
	case wasm.OpTableSize:
		in.push(U32Val(uint32(len(frame.fn.Module.Table(instr.Idx).Elems))))
	case wasm.OpTableFill:
		return in.execTableFill(frame, instr.Idx)

	default:
		panic(NewTrap("unhandled misc opcode"))
	}
	return nil
}

func ea(instr wasm.Instr, base Value) uint64 {
	return uint64(instr.Mem.Offset) + uint64(base.U32())
}

func loadBytes(mem *MemoryInstance, addr uint64, size uint64) ([]byte, error) {
	if addr+size > uint64(len(mem.Data)) {
		return nil, ErrOutOfBoundsMemory
	}
	return mem.Data[addr : addr+size], nil
}

func storeBytes(mem *MemoryInstance, addr uint64, data []byte) error {
	if addr+uint64(len(data)) > uint64(len(mem.Data)) {
		return ErrOutOfBoundsMemory
	}
	copy(mem.Data[addr:], data)
	return nil
}

func le16(b []byte) uint16 { return uint16(b[0]) | uint16(b[1])<<8 }
func le32(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}
func le64(b []byte) uint64 {
	var r uint64
	for i := 0; i < 8; i++ {
		r |= uint64(b[i]) << (8 * i)
	}
	return r
}
func put16(v uint16) []byte { return []byte{byte(v), byte(v >> 8)} }
func put32(v uint32) []byte {
	return []byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}
}
func put64(v uint64) []byte {
	b := make([]byte, 8)
	for i := range b {
		b[i] = byte(v >> (8 * i))
	}
	return b
}

// growMemory grows mem by delta pages, enforcing the module's declared
// maximum (or the implementation default), and returns the previous page
// count, or -1 on failure per the spec's memory.grow semantics.
func growMemory(mem *MemoryInstance, delta uint32) int32 {
	old := mem.pages()
	max := wasm.MaxPages
	if mem.Type.Limits.HasMax {
		max = int(mem.Type.Limits.Max)
	}
	if int(old)+int(delta) > max {
		return -1
	}
	mem.Data = append(mem.Data, make([]byte, uint64(delta)*wasm.PageSize)...)
	return int32(old)
}

func (in *Instance) execMemoryInit(frame *Frame, dataIdx uint32) error {
	n := in.pop().U32()
	src := in.pop().U32()
	dst := in.pop().U32()
	data := frame.fn.Module.Data(dataIdx)
	if data.Dropped {
		if n == 0 {
			return nil
		}
		panic(ErrOutOfBoundsMemory)
	}
	if uint64(src)+uint64(n) > uint64(len(data.Bytes)) {
		panic(ErrOutOfBoundsMemory)
	}
	mem := frame.fn.Module.Mem(0)
	if uint64(dst)+uint64(n) > uint64(len(mem.Data)) {
		panic(ErrOutOfBoundsMemory)
	}
	copy(mem.Data[dst:uint64(dst)+uint64(n)], data.Bytes[src:uint64(src)+uint64(n)])
	return nil
}

func (in *Instance) execMemoryCopy(frame *Frame) error {
	n := in.pop().U32()
	src := in.pop().U32()
	dst := in.pop().U32()
	mem := frame.fn.Module.Mem(0)
	if uint64(src)+uint64(n) > uint64(len(mem.Data)) || uint64(dst)+uint64(n) > uint64(len(mem.Data)) {
		panic(ErrOutOfBoundsMemory)
	}
	copy(mem.Data[dst:uint64(dst)+uint64(n)], mem.Data[src:uint64(src)+uint64(n)])
	return nil
}

func (in *Instance) execMemoryFill(frame *Frame) error {
	n := in.pop().U32()
	val := byte(in.pop().U32())
	dst := in.pop().U32()
	mem := frame.fn.Module.Mem(0)
	if uint64(dst)+uint64(n) > uint64(len(mem.Data)) {
		panic(ErrOutOfBoundsMemory)
	}
	for i := uint64(0); i < uint64(n); i++ {
		mem.Data[uint64(dst)+i] = val
	}
	return nil
}

func (in *Instance) execTableInit(frame *Frame, elemIdx, tableIdx uint32) error {
	n := in.pop().U32()
	src := in.pop().U32()
	dst := in.pop().U32()
	elem := frame.fn.Module.Elem(elemIdx)
	if elem.Dropped {
		if n == 0 {
			return nil
		}
		panic(ErrOutOfBoundsTable)
	}
	if uint64(src)+uint64(n) > uint64(len(elem.Refs)) {
		panic(ErrOutOfBoundsTable)
	}
	table := frame.fn.Module.Table(tableIdx)
	if uint64(dst)+uint64(n) > uint64(len(table.Elems)) {
		panic(ErrOutOfBoundsTable)
	}
	copy(table.Elems[dst:uint64(dst)+uint64(n)], elem.Refs[src:uint64(src)+uint64(n)])
	return nil
}

func (in *Instance) execTableCopy(frame *Frame, dstIdx, srcIdx uint32) error {
	n := in.pop().U32()
	src := in.pop().U32()
	dst := in.pop().U32()
	srcTable := frame.fn.Module.Table(srcIdx)
	dstTable := frame.fn.Module.Table(dstIdx)
	if uint64(src)+uint64(n) > uint64(len(srcTable.Elems)) || uint64(dst)+uint64(n) > uint64(len(dstTable.Elems)) {
		panic(ErrOutOfBoundsTable)
	}
	tmp := make([]Value, n)
	copy(tmp, srcTable.Elems[src:uint64(src)+uint64(n)])
	copy(dstTable.Elems[dst:uint64(dst)+uint64(n)], tmp)
	return nil
}

func (in *Instance) execTableGrow(frame *Frame, idx uint32) error {
	n := in.pop().U32()
	fill := in.pop()
	table := frame.fn.Module.Table(idx)
	old := uint32(len(table.Elems))
	max := ^uint32(0)
	if table.Type.Limits.HasMax {
		max = table.Type.Limits.Max
	}
	if uint64(old)+uint64(n) > uint64(max) {
		in.push(I32Val(-1))
		return nil
	}
	grown := make([]Value, n)
	for i := range grown {
		grown[i] = fill
	}
	table.Elems = append(table.Elems, grown...)
	in.push(I32Val(int32(old)))
	return nil
}

func (in *Instance) execTableFill(frame *Frame, idx uint32) error {
	n := in.pop().U32()
	val := in.pop()
	dst := in.pop().U32()
	table := frame.fn.Module.Table(idx)
	if uint64(dst)+uint64(n) > uint64(len(table.Elems)) {
		panic(ErrOutOfBoundsTable)
	}
	for i := uint64(0); i < uint64(n); i++ {
		table.Elems[uint64(dst)+i] = val
	}
	return nil
}

// execSimdMemOp dispatches the v128 load/store and load/store-lane family,
// called from execSimdOp in simd_dispatch.go.
func (in *Instance) execSimdMemOp(frame *Frame, instr wasm.Instr) error {
	mem := frame.fn.Module.Mem(0)
	switch instr.Op {
	case wasm.OpV128Load:
		b, err := loadBytes(mem, ea(instr, in.pop()), 16)
		if err != nil {
			return err
		}
		var v simd.V128
		copy(v[:], b)
		in.push(V128Val(v))
	case wasm.OpV128Load8x8S:
		b, err := loadBytes(mem, ea(instr, in.pop()), 8)
		if err != nil {
			return err
		}
		in.push(V128Val(simd.Load8x8S(b)))
	case wasm.OpV128Load8x8U:
		b, err := loadBytes(mem, ea(instr, in.pop()), 8)
		if err != nil {
			return err
		}
		in.push(V128Val(simd.Load8x8U(b)))
	case wasm.OpV128Load16x4S:
		b, err := loadBytes(mem, ea(instr, in.pop()), 8)
		if err != nil {
			return err
		}
		in.push(V128Val(simd.Load16x4S(b)))
	case wasm.OpV128Load16x4U:
		b, err := loadBytes(mem, ea(instr, in.pop()), 8)
		if err != nil {
			return err
		}
		in.push(V128Val(simd.Load16x4U(b)))
	case wasm.OpV128Load32x2S:
		b, err := loadBytes(mem, ea(instr, in.pop()), 8)
		if err != nil {
			return err
		}
		in.push(V128Val(simd.Load32x2S(b)))
	case wasm.OpV128Load32x2U:
		b, err := loadBytes(mem, ea(instr, in.pop()), 8)
		if err != nil {
			return err
		}
		in.push(V128Val(simd.Load32x2U(b)))
	case wasm.OpV128Load8Splat:
		b, err := loadBytes(mem, ea(instr, in.pop()), 1)
		if err != nil {
			return err
		}
		in.push(V128Val(simd.Load8Splat(b[0])))
	case wasm.OpV128Load16Splat:
		b, err := loadBytes(mem, ea(instr, in.pop()), 2)
		if err != nil {
			return err
		}
		in.push(V128Val(simd.Load16Splat(b[0], b[1])))
	case wasm.OpV128Load32Splat:
		b, err := loadBytes(mem, ea(instr, in.pop()), 4)
		if err != nil {
			return err
		}
		in.push(V128Val(simd.Load32Splat(b)))
	case wasm.OpV128Load64Splat:
		b, err := loadBytes(mem, ea(instr, in.pop()), 8)
		if err != nil {
			return err
		}
		in.push(V128Val(simd.Load64Splat(b)))
	case wasm.OpV128Load32Zero:
		b, err := loadBytes(mem, ea(instr, in.pop()), 4)
		if err != nil {
			return err
		}
		in.push(V128Val(simd.Load32Zero(b)))
	case wasm.OpV128Load64Zero:
		b, err := loadBytes(mem, ea(instr, in.pop()), 8)
		if err != nil {
			return err
		}
		in.push(V128Val(simd.Load64Zero(b)))
	case wasm.OpV128Store:
		v := in.pop().V128()
		addr := ea(instr, in.pop())
		return storeBytes(mem, addr, v[:])

	case wasm.OpV128Load8Lane:
		v := in.pop().V128()
		addr := ea(instr, in.pop())
		b, err := loadBytes(mem, addr, 1)
		if err != nil {
			return err
		}
		in.push(V128Val(simd.PutLaneBytes8(v, instr.Lane, b[0])))
	case wasm.OpV128Load16Lane:
		v := in.pop().V128()
		addr := ea(instr, in.pop())
		b, err := loadBytes(mem, addr, 2)
		if err != nil {
			return err
		}
		in.push(V128Val(simd.PutLaneBytes16(v, instr.Lane, [2]byte{b[0], b[1]})))
	case wasm.OpV128Load32Lane:
		v := in.pop().V128()
		addr := ea(instr, in.pop())
		b, err := loadBytes(mem, addr, 4)
		if err != nil {
			return err
		}
		var a [4]byte
		copy(a[:], b)
		in.push(V128Val(simd.PutLaneBytes32(v, instr.Lane, a)))
	case wasm.OpV128Load64Lane:
		v := in.pop().V128()
		addr := ea(instr, in.pop())
		b, err := loadBytes(mem, addr, 8)
		if err != nil {
			return err
		}
		var a [8]byte
		copy(a[:], b)
		in.push(V128Val(simd.PutLaneBytes64(v, instr.Lane, a)))

	case wasm.OpV128Store8Lane:
		v := in.pop().V128()
		addr := ea(instr, in.pop())
		return storeBytes(mem, addr, []byte{simd.LaneBytes8(v, instr.Lane)})
	case wasm.OpV128Store16Lane:
		v := in.pop().V128()
		addr := ea(instr, in.pop())
		b := simd.LaneBytes16(v, instr.Lane)
		return storeBytes(mem, addr, b[:])
	case wasm.OpV128Store32Lane:
		v := in.pop().V128()
		addr := ea(instr, in.pop())
		b := simd.LaneBytes32(v, instr.Lane)
		return storeBytes(mem, addr, b[:])
	case wasm.OpV128Store64Lane:
		v := in.pop().V128()
		addr := ea(instr, in.pop())
		b := simd.LaneBytes64(v, instr.Lane)
		return storeBytes(mem, addr, b[:])

	default:
		panic(NewTrap("unhandled simd memory opcode"))
	}
	return nil
}
