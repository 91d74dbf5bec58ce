package vm

import (
	"github.com/vertexdlt/vertexvm2/simd"
	"github.com/vertexdlt/vertexvm2/wasm"
)

// execSimdOp dispatches every 0xFD-prefixed instruction. Memory-touching
// variants (load/store/const/lane-load/lane-store) delegate to
// execSimdMemOp/OpV128Const; everything else is a pure lane operation
// routed straight into package simd, following the same one-opcode-range
// dispatch idiom the teacher's vm.go used for its (much smaller) MVP
// instruction set.
func (in *Instance) execSimdOp(frame *Frame, instr wasm.Instr) error {
	switch instr.Op {
	case wasm.OpV128Load, wasm.OpV128Load8x8S, wasm.OpV128Load8x8U, wasm.OpV128Load16x4S,
		wasm.OpV128Load16x4U, wasm.OpV128Load32x2S, wasm.OpV128Load32x2U,
		wasm.OpV128Load8Splat, wasm.OpV128Load16Splat, wasm.OpV128Load32Splat,
		wasm.OpV128Load64Splat, wasm.OpV128Store, wasm.OpV128Load32Zero, wasm.OpV128Load64Zero,
		wasm.OpV128Load8Lane, wasm.OpV128Load16Lane, wasm.OpV128Load32Lane, wasm.OpV128Load64Lane,
		wasm.OpV128Store8Lane, wasm.OpV128Store16Lane, wasm.OpV128Store32Lane, wasm.OpV128Store64Lane:
		return in.execSimdMemOp(frame, instr)

	case wasm.OpV128Const:
		in.push(V128Val(simd.V128(instr.V128)))

	case wasm.OpI8x16Shuffle:
		b := in.pop().V128()
		a := in.pop().V128()
		in.push(V128Val(simd.I8x16Shuffle(a, b, instr.Shuffle)))
	case wasm.OpI8x16Swizzle:
		s := in.pop().V128()
		a := in.pop().V128()
		in.push(V128Val(simd.I8x16Swizzle(a, s)))

	case wasm.OpI8x16Splat:
		in.push(V128Val(simd.I8x16Splat(int8(in.pop().U32()))))
	case wasm.OpI16x8Splat:
		in.push(V128Val(simd.I16x8Splat(int16(in.pop().U32()))))
	case wasm.OpI32x4Splat:
		in.push(V128Val(simd.I32x4Splat(in.pop().I32())))
	case wasm.OpI64x2Splat:
		in.push(V128Val(simd.I64x2Splat(in.pop().I64())))
	case wasm.OpF32x4Splat:
		in.push(V128Val(simd.F32x4Splat(in.pop().F32())))
	case wasm.OpF64x2Splat:
		in.push(V128Val(simd.F64x2Splat(in.pop().F64())))

	case wasm.OpI8x16ExtractLaneS:
		in.push(I32Val(simd.I8x16ExtractLaneS(in.pop().V128(), instr.Lane)))
	case wasm.OpI8x16ExtractLaneU:
		in.push(I32Val(simd.I8x16ExtractLaneU(in.pop().V128(), instr.Lane)))
	case wasm.OpI16x8ExtractLaneS:
		in.push(I32Val(simd.I16x8ExtractLaneS(in.pop().V128(), instr.Lane)))
	case wasm.OpI16x8ExtractLaneU:
		in.push(I32Val(simd.I16x8ExtractLaneU(in.pop().V128(), instr.Lane)))
	case wasm.OpI32x4ExtractLane:
		in.push(I32Val(simd.I32x4ExtractLane(in.pop().V128(), instr.Lane)))
	case wasm.OpI64x2ExtractLane:
		in.push(I64Val(simd.I64x2ExtractLane(in.pop().V128(), instr.Lane)))
	case wasm.OpF32x4ExtractLane:
		in.push(F32Val(simd.F32x4ExtractLane(in.pop().V128(), instr.Lane)))
	case wasm.OpF64x2ExtractLane:
		in.push(F64Val(simd.F64x2ExtractLane(in.pop().V128(), instr.Lane)))

	case wasm.OpI8x16ReplaceLane:
		x := in.pop().I32()
		v := in.pop().V128()
		in.push(V128Val(simd.I8x16ReplaceLane(v, instr.Lane, x)))
	case wasm.OpI16x8ReplaceLane:
		x := in.pop().I32()
		v := in.pop().V128()
		in.push(V128Val(simd.I16x8ReplaceLane(v, instr.Lane, x)))
	case wasm.OpI32x4ReplaceLane:
		x := in.pop().I32()
		v := in.pop().V128()
		in.push(V128Val(simd.I32x4ReplaceLane(v, instr.Lane, x)))
	case wasm.OpI64x2ReplaceLane:
		x := in.pop().I64()
		v := in.pop().V128()
		in.push(V128Val(simd.I64x2ReplaceLane(v, instr.Lane, x)))
	case wasm.OpF32x4ReplaceLane:
		x := in.pop().F32()
		v := in.pop().V128()
		in.push(V128Val(simd.F32x4ReplaceLane(v, instr.Lane, x)))
	case wasm.OpF64x2ReplaceLane:
		x := in.pop().F64()
		v := in.pop().V128()
		in.push(V128Val(simd.F64x2ReplaceLane(v, instr.Lane, x)))

	case wasm.OpI8x16Eq:
		in.binV(simd.I8x16Eq)
	case wasm.OpI8x16Ne:
		in.binV(simd.I8x16Ne)
	case wasm.OpI8x16LtS:
		in.binV(simd.I8x16LtS)
	case wasm.OpI8x16LtU:
		in.binV(simd.I8x16LtU)
	case wasm.OpI8x16GtS:
		in.binV(simd.I8x16GtS)
	case wasm.OpI8x16GtU:
		in.binV(simd.I8x16GtU)
	case wasm.OpI8x16LeS:
		in.binV(simd.I8x16LeS)
	case wasm.OpI8x16LeU:
		in.binV(simd.I8x16LeU)
	case wasm.OpI8x16GeS:
		in.binV(simd.I8x16GeS)
	case wasm.OpI8x16GeU:
		in.binV(simd.I8x16GeU)

	case wasm.OpI16x8Eq:
		in.binV(simd.I16x8Eq)
	case wasm.OpI16x8Ne:
		in.binV(simd.I16x8Ne)
	case wasm.OpI16x8LtS:
		in.binV(simd.I16x8LtS)
	case wasm.OpI16x8LtU:
		in.binV(simd.I16x8LtU)
	case wasm.OpI16x8GtS:
		in.binV(simd.I16x8GtS)
	case wasm.OpI16x8GtU:
		in.binV(simd.I16x8GtU)
	case wasm.OpI16x8LeS:
		in.binV(simd.I16x8LeS)
	case wasm.OpI16x8LeU:
		in.binV(simd.I16x8LeU)
	case wasm.OpI16x8GeS:
		in.binV(simd.I16x8GeS)
	case wasm.OpI16x8GeU:
		in.binV(simd.I16x8GeU)

	case wasm.OpI32x4Eq:
		in.binV(simd.I32x4Eq)
	case wasm.OpI32x4Ne:
		in.binV(simd.I32x4Ne)
	case wasm.OpI32x4LtS:
		in.binV(simd.I32x4LtS)
	case wasm.OpI32x4LtU:
		in.binV(simd.I32x4LtU)
	case wasm.OpI32x4GtS:
		in.binV(simd.I32x4GtS)
	case wasm.OpI32x4GtU:
		in.binV(simd.I32x4GtU)
	case wasm.OpI32x4LeS:
		in.binV(simd.I32x4LeS)
	case wasm.OpI32x4LeU:
		in.binV(simd.I32x4LeU)
	case wasm.OpI32x4GeS:
		in.binV(simd.I32x4GeS)
	case wasm.OpI32x4GeU:
		in.binV(simd.I32x4GeU)

	case wasm.OpF32x4Eq:
		in.binV(simd.F32x4Eq)
	case wasm.OpF32x4Ne:
		in.binV(simd.F32x4Ne)
	case wasm.OpF32x4Lt:
		in.binV(simd.F32x4Lt)
	case wasm.OpF32x4Gt:
		in.binV(simd.F32x4Gt)
	case wasm.OpF32x4Le:
		in.binV(simd.F32x4Le)
	case wasm.OpF32x4Ge:
		in.binV(simd.F32x4Ge)

	case wasm.OpF64x2Eq:
		in.binV(simd.F64x2Eq)
	case wasm.OpF64x2Ne:
		in.binV(simd.F64x2Ne)
	case wasm.OpF64x2Lt:
		in.binV(simd.F64x2Lt)
	case wasm.OpF64x2Gt:
		in.binV(simd.F64x2Gt)
	case wasm.OpF64x2Le:
		in.binV(simd.F64x2Le)
	case wasm.OpF64x2Ge:
		in.binV(simd.F64x2Ge)

	case wasm.OpI64x2Eq:
		in.binV(simd.I64x2Eq)
	case wasm.OpI64x2Ne:
		in.binV(simd.I64x2Ne)
	case wasm.OpI64x2LtS:
		in.binV(simd.I64x2LtS)
	case wasm.OpI64x2GtS:
		in.binV(simd.I64x2GtS)
	case wasm.OpI64x2LeS:
		in.binV(simd.I64x2LeS)
	case wasm.OpI64x2GeS:
		in.binV(simd.I64x2GeS)

	case wasm.OpV128Not:
		in.push(V128Val(simd.V128Not(in.pop().V128())))
	case wasm.OpV128And:
		in.binV(simd.V128And)
	case wasm.OpV128Andnot:
		in.binV(simd.V128Andnot)
	case wasm.OpV128Or:
		in.binV(simd.V128Or)
	case wasm.OpV128Xor:
		in.binV(simd.V128Xor)
	case wasm.OpV128Bitselect:
		mask := in.pop().V128()
		b := in.pop().V128()
		a := in.pop().V128()
		in.push(V128Val(simd.V128Bitselect(a, b, mask)))
	case wasm.OpV128AnyTrue:
		in.push(I32Val(simd.V128AnyTrue(in.pop().V128())))

	case wasm.OpI8x16Abs:
		in.push(V128Val(simd.I8x16Abs(in.pop().V128())))
	case wasm.OpI8x16Neg:
		in.push(V128Val(simd.I8x16Neg(in.pop().V128())))
	case wasm.OpI8x16Popcnt:
		in.push(V128Val(simd.I8x16Popcnt(in.pop().V128())))
	case wasm.OpI8x16AllTrue:
		in.push(I32Val(simd.I8x16AllTrue(in.pop().V128())))
	case wasm.OpI8x16Bitmask:
		in.push(I32Val(simd.I8x16Bitmask(in.pop().V128())))
	case wasm.OpI8x16NarrowI16x8S:
		in.binV(simd.I8x16NarrowI16x8S)
	case wasm.OpI8x16NarrowI16x8U:
		in.binV(simd.I8x16NarrowI16x8U)
	case wasm.OpI8x16Shl:
		in.shiftV(simd.I8x16Shl)
	case wasm.OpI8x16ShrS:
		in.shiftV(simd.I8x16ShrS)
	case wasm.OpI8x16ShrU:
		in.shiftV(simd.I8x16ShrU)
	case wasm.OpI8x16Add:
		in.binV(simd.I8x16Add)
	case wasm.OpI8x16AddSatS:
		in.binV(simd.I8x16AddSatS)
	case wasm.OpI8x16AddSatU:
		in.binV(simd.I8x16AddSatU)
	case wasm.OpI8x16Sub:
		in.binV(simd.I8x16Sub)
	case wasm.OpI8x16SubSatS:
		in.binV(simd.I8x16SubSatS)
	case wasm.OpI8x16SubSatU:
		in.binV(simd.I8x16SubSatU)
	case wasm.OpI8x16MinS:
		in.binV(simd.I8x16MinS)
	case wasm.OpI8x16MinU:
		in.binV(simd.I8x16MinU)
	case wasm.OpI8x16MaxS:
		in.binV(simd.I8x16MaxS)
	case wasm.OpI8x16MaxU:
		in.binV(simd.I8x16MaxU)
	case wasm.OpI8x16AvgrU:
		in.binV(simd.I8x16AvgrU)

	case wasm.OpI16x8ExtaddPairwiseI8x16S:
		in.push(V128Val(simd.I16x8ExtaddPairwiseI8x16S(in.pop().V128())))
	case wasm.OpI16x8ExtaddPairwiseI8x16U:
		in.push(V128Val(simd.I16x8ExtaddPairwiseI8x16U(in.pop().V128())))
	case wasm.OpI32x4ExtaddPairwiseI16x8S:
		in.push(V128Val(simd.I32x4ExtaddPairwiseI16x8S(in.pop().V128())))
	case wasm.OpI32x4ExtaddPairwiseI16x8U:
		in.push(V128Val(simd.I32x4ExtaddPairwiseI16x8U(in.pop().V128())))

	case wasm.OpI16x8Abs:
		in.push(V128Val(simd.I16x8Abs(in.pop().V128())))
	case wasm.OpI16x8Neg:
		in.push(V128Val(simd.I16x8Neg(in.pop().V128())))
	case wasm.OpI16x8Q15mulrSatS:
		in.binV(simd.I16x8Q15mulrSatS)
	case wasm.OpI16x8AllTrue:
		in.push(I32Val(simd.I16x8AllTrue(in.pop().V128())))
	case wasm.OpI16x8Bitmask:
		in.push(I32Val(simd.I16x8Bitmask(in.pop().V128())))
	case wasm.OpI16x8NarrowI32x4S:
		in.binV(simd.I16x8NarrowI32x4S)
	case wasm.OpI16x8NarrowI32x4U:
		in.binV(simd.I16x8NarrowI32x4U)
	case wasm.OpI16x8ExtendLowI8x16S:
		in.push(V128Val(simd.I16x8ExtendLowI8x16S(in.pop().V128())))
	case wasm.OpI16x8ExtendHighI8x16S:
		in.push(V128Val(simd.I16x8ExtendHighI8x16S(in.pop().V128())))
	case wasm.OpI16x8ExtendLowI8x16U:
		in.push(V128Val(simd.I16x8ExtendLowI8x16U(in.pop().V128())))
	case wasm.OpI16x8ExtendHighI8x16U:
		in.push(V128Val(simd.I16x8ExtendHighI8x16U(in.pop().V128())))
	case wasm.OpI16x8Shl:
		in.shiftV(simd.I16x8Shl)
	case wasm.OpI16x8ShrS:
		in.shiftV(simd.I16x8ShrS)
	case wasm.OpI16x8ShrU:
		in.shiftV(simd.I16x8ShrU)
	case wasm.OpI16x8Add:
		in.binV(simd.I16x8Add)
	case wasm.OpI16x8AddSatS:
		in.binV(simd.I16x8AddSatS)
	case wasm.OpI16x8AddSatU:
		in.binV(simd.I16x8AddSatU)
	case wasm.OpI16x8Sub:
		in.binV(simd.I16x8Sub)
	case wasm.OpI16x8SubSatS:
		in.binV(simd.I16x8SubSatS)
	case wasm.OpI16x8SubSatU:
		in.binV(simd.I16x8SubSatU)
	case wasm.OpI16x8Mul:
		in.binV(simd.I16x8Mul)
	case wasm.OpI16x8MinS:
		in.binV(simd.I16x8MinS)
	case wasm.OpI16x8MinU:
		in.binV(simd.I16x8MinU)
	case wasm.OpI16x8MaxS:
		in.binV(simd.I16x8MaxS)
	case wasm.OpI16x8MaxU:
		in.binV(simd.I16x8MaxU)
	case wasm.OpI16x8AvgrU:
		in.binV(simd.I16x8AvgrU)
	case wasm.OpI16x8ExtmulLowI8x16S:
		in.binV(simd.I16x8ExtmulLowI8x16S)
	case wasm.OpI16x8ExtmulHighI8x16S:
		in.binV(simd.I16x8ExtmulHighI8x16S)
	case wasm.OpI16x8ExtmulLowI8x16U:
		in.binV(simd.I16x8ExtmulLowI8x16U)
	case wasm.OpI16x8ExtmulHighI8x16U:
		in.binV(simd.I16x8ExtmulHighI8x16U)

	case wasm.OpI32x4Abs:
		in.push(V128Val(simd.I32x4Abs(in.pop().V128())))
	case wasm.OpI32x4Neg:
		in.push(V128Val(simd.I32x4Neg(in.pop().V128())))
	case wasm.OpI32x4AllTrue:
		in.push(I32Val(simd.I32x4AllTrue(in.pop().V128())))
	case wasm.OpI32x4Bitmask:
		in.push(I32Val(simd.I32x4Bitmask(in.pop().V128())))
	case wasm.OpI32x4ExtendLowI16x8S:
		in.push(V128Val(simd.I32x4ExtendLowI16x8S(in.pop().V128())))
	case wasm.OpI32x4ExtendHighI16x8S:
		in.push(V128Val(simd.I32x4ExtendHighI16x8S(in.pop().V128())))
	case wasm.OpI32x4ExtendLowI16x8U:
		in.push(V128Val(simd.I32x4ExtendLowI16x8U(in.pop().V128())))
	case wasm.OpI32x4ExtendHighI16x8U:
		in.push(V128Val(simd.I32x4ExtendHighI16x8U(in.pop().V128())))
	case wasm.OpI32x4Shl:
		in.shiftV(simd.I32x4Shl)
	case wasm.OpI32x4ShrS:
		in.shiftV(simd.I32x4ShrS)
	case wasm.OpI32x4ShrU:
		in.shiftV(simd.I32x4ShrU)
	case wasm.OpI32x4Add:
		in.binV(simd.I32x4Add)
	case wasm.OpI32x4Sub:
		in.binV(simd.I32x4Sub)
	case wasm.OpI32x4Mul:
		in.binV(simd.I32x4Mul)
	case wasm.OpI32x4MinS:
		in.binV(simd.I32x4MinS)
	case wasm.OpI32x4MinU:
		in.binV(simd.I32x4MinU)
	case wasm.OpI32x4MaxS:
		in.binV(simd.I32x4MaxS)
	case wasm.OpI32x4MaxU:
		in.binV(simd.I32x4MaxU)
	case wasm.OpI32x4DotI16x8S:
		in.binV(simd.I32x4DotI16x8S)
	case wasm.OpI32x4ExtmulLowI16x8S:
		in.binV(simd.I32x4ExtmulLowI16x8S)
	case wasm.OpI32x4ExtmulHighI16x8S:
		in.binV(simd.I32x4ExtmulHighI16x8S)
	case wasm.OpI32x4ExtmulLowI16x8U:
		in.binV(simd.I32x4ExtmulLowI16x8U)
	case wasm.OpI32x4ExtmulHighI16x8U:
		in.binV(simd.I32x4ExtmulHighI16x8U)

	case wasm.OpI64x2Abs:
		in.push(V128Val(simd.I64x2Abs(in.pop().V128())))
	case wasm.OpI64x2Neg:
		in.push(V128Val(simd.I64x2Neg(in.pop().V128())))
	case wasm.OpI64x2AllTrue:
		in.push(I32Val(simd.I64x2AllTrue(in.pop().V128())))
	case wasm.OpI64x2Bitmask:
		in.push(I32Val(simd.I64x2Bitmask(in.pop().V128())))
	case wasm.OpI64x2ExtendLowI32x4S:
		in.push(V128Val(simd.I64x2ExtendLowI32x4S(in.pop().V128())))
	case wasm.OpI64x2ExtendHighI32x4S:
		in.push(V128Val(simd.I64x2ExtendHighI32x4S(in.pop().V128())))
	case wasm.OpI64x2ExtendLowI32x4U:
		in.push(V128Val(simd.I64x2ExtendLowI32x4U(in.pop().V128())))
	case wasm.OpI64x2ExtendHighI32x4U:
		in.push(V128Val(simd.I64x2ExtendHighI32x4U(in.pop().V128())))
	case wasm.OpI64x2Shl:
		in.shiftV(simd.I64x2Shl)
	case wasm.OpI64x2ShrS:
		in.shiftV(simd.I64x2ShrS)
	case wasm.OpI64x2ShrU:
		in.shiftV(simd.I64x2ShrU)
	case wasm.OpI64x2Add:
		in.binV(simd.I64x2Add)
	case wasm.OpI64x2Sub:
		in.binV(simd.I64x2Sub)
	case wasm.OpI64x2Mul:
		in.binV(simd.I64x2Mul)
	case wasm.OpI64x2ExtmulLowI32x4S:
		in.binV(simd.I64x2ExtmulLowI32x4S)
	case wasm.OpI64x2ExtmulHighI32x4S:
		in.binV(simd.I64x2ExtmulHighI32x4S)
	case wasm.OpI64x2ExtmulLowI32x4U:
		in.binV(simd.I64x2ExtmulLowI32x4U)
	case wasm.OpI64x2ExtmulHighI32x4U:
		in.binV(simd.I64x2ExtmulHighI32x4U)

	case wasm.OpF32x4Ceil:
		in.push(V128Val(simd.F32x4Ceil(in.pop().V128())))
	case wasm.OpF32x4Floor:
		in.push(V128Val(simd.F32x4Floor(in.pop().V128())))
	case wasm.OpF32x4Trunc:
		in.push(V128Val(simd.F32x4Trunc(in.pop().V128())))
	case wasm.OpF32x4Nearest:
		in.push(V128Val(simd.F32x4Nearest(in.pop().V128())))
	case wasm.OpF32x4Abs:
		in.push(V128Val(simd.F32x4Abs(in.pop().V128())))
	case wasm.OpF32x4Neg:
		in.push(V128Val(simd.F32x4Neg(in.pop().V128())))
	case wasm.OpF32x4Sqrt:
		in.push(V128Val(simd.F32x4Sqrt(in.pop().V128())))
	case wasm.OpF32x4Add:
		in.binV(simd.F32x4Add)
	case wasm.OpF32x4Sub:
		in.binV(simd.F32x4Sub)
	case wasm.OpF32x4Mul:
		in.binV(simd.F32x4Mul)
	case wasm.OpF32x4Div:
		in.binV(simd.F32x4Div)
	case wasm.OpF32x4Min:
		in.binV(simd.F32x4Min)
	case wasm.OpF32x4Max:
		in.binV(simd.F32x4Max)
	case wasm.OpF32x4Pmin:
		in.binV(simd.F32x4Pmin)
	case wasm.OpF32x4Pmax:
		in.binV(simd.F32x4Pmax)

	case wasm.OpF64x2Ceil:
		in.push(V128Val(simd.F64x2Ceil(in.pop().V128())))
	case wasm.OpF64x2Floor:
		in.push(V128Val(simd.F64x2Floor(in.pop().V128())))
	case wasm.OpF64x2Trunc:
		in.push(V128Val(simd.F64x2Trunc(in.pop().V128())))
	case wasm.OpF64x2Nearest:
		in.push(V128Val(simd.F64x2Nearest(in.pop().V128())))
	case wasm.OpF64x2Abs:
		in.push(V128Val(simd.F64x2Abs(in.pop().V128())))
	case wasm.OpF64x2Neg:
		in.push(V128Val(simd.F64x2Neg(in.pop().V128())))
	case wasm.OpF64x2Sqrt:
		in.push(V128Val(simd.F64x2Sqrt(in.pop().V128())))
	case wasm.OpF64x2Add:
		in.binV(simd.F64x2Add)
	case wasm.OpF64x2Sub:
		in.binV(simd.F64x2Sub)
	case wasm.OpF64x2Mul:
		in.binV(simd.F64x2Mul)
	case wasm.OpF64x2Div:
		in.binV(simd.F64x2Div)
	case wasm.OpF64x2Min:
		in.binV(simd.F64x2Min)
	case wasm.OpF64x2Max:
		in.binV(simd.F64x2Max)
	case wasm.OpF64x2Pmin:
		in.binV(simd.F64x2Pmin)
	case wasm.OpF64x2Pmax:
		in.binV(simd.F64x2Pmax)

	case wasm.OpF32x4DemoteF64x2Zero:
		in.push(V128Val(simd.F32x4DemoteF64x2Zero(in.pop().V128())))
	case wasm.OpF64x2PromoteLowF32x4:
		in.push(V128Val(simd.F64x2PromoteLowF32x4(in.pop().V128())))

	case wasm.OpI32x4TruncSatF32x4S:
		in.push(V128Val(simd.I32x4TruncSatF32x4S(in.pop().V128())))
	case wasm.OpI32x4TruncSatF32x4U:
		in.push(V128Val(simd.I32x4TruncSatF32x4U(in.pop().V128())))
	case wasm.OpF32x4ConvertI32x4S:
		in.push(V128Val(simd.F32x4ConvertI32x4S(in.pop().V128())))
	case wasm.OpF32x4ConvertI32x4U:
		in.push(V128Val(simd.F32x4ConvertI32x4U(in.pop().V128())))
	case wasm.OpI32x4TruncSatF64x2SZero:
		in.push(V128Val(simd.I32x4TruncSatF64x2SZero(in.pop().V128())))
	case wasm.OpI32x4TruncSatF64x2UZero:
		in.push(V128Val(simd.I32x4TruncSatF64x2UZero(in.pop().V128())))
	case wasm.OpF64x2ConvertLowI32x4S:
		in.push(V128Val(simd.F64x2ConvertLowI32x4S(in.pop().V128())))
	case wasm.OpF64x2ConvertLowI32x4U:
		in.push(V128Val(simd.F64x2ConvertLowI32x4U(in.pop().V128())))

	default:
		panic(NewTrap("unhandled simd opcode"))
	}
	return nil
}

// binV pops two v128 operands (b on top, a below) and pushes f(a, b),
// matching the stack order of every SIMD binary instruction.
func (in *Instance) binV(f func(a, b simd.V128) simd.V128) {
	b := in.pop().V128()
	a := in.pop().V128()
	in.push(V128Val(f(a, b)))
}

// shiftV pops a shift count (i32, top of stack) and a v128 operand, and
// pushes f(v, n).
func (in *Instance) shiftV(f func(v simd.V128, n uint32) simd.V128) {
	n := in.pop().U32()
	v := in.pop().V128()
	in.push(V128Val(f(v, n)))
}
