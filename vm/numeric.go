package vm

import (
	"github.com/vertexdlt/vertexvm2/number"
	"github.com/vertexdlt/vertexvm2/wasm"
)

// execNumeric dispatches every scalar numeric instruction from i32.eqz
// through i64.extend32_s. It pops its operands, calls into package number
// for the actual arithmetic (so vm never duplicates wrapping/NaN/trapping
// rules), and pushes the result. Grounded on the teacher's vm.go numeric
// opcode switch, generalized from a single int64 stack to typed values and
// widened to the full WebAssembly 2.0 numeric set.
func (in *Instance) execNumeric(op wasm.Opcode) error {
	switch op {
	case wasm.OpI32Eqz:
		in.push(boolVal(in.pop().I32() == 0))
	case wasm.OpI32Eq:
		b, a := in.pop().I32(), in.pop().I32()
		in.push(boolVal(a == b))
	case wasm.OpI32Ne:
		b, a := in.pop().I32(), in.pop().I32()
		in.push(boolVal(a != b))
	case wasm.OpI32LtS:
		b, a := in.pop().I32(), in.pop().I32()
		in.push(boolVal(a < b))
	case wasm.OpI32LtU:
		b, a := in.pop().U32(), in.pop().U32()
		in.push(boolVal(a < b))
	case wasm.OpI32GtS:
		b, a := in.pop().I32(), in.pop().I32()
		in.push(boolVal(a > b))
	case wasm.OpI32GtU:
		b, a := in.pop().U32(), in.pop().U32()
		in.push(boolVal(a > b))
	case wasm.OpI32LeS:
		b, a := in.pop().I32(), in.pop().I32()
		in.push(boolVal(a <= b))
	case wasm.OpI32LeU:
		b, a := in.pop().U32(), in.pop().U32()
		in.push(boolVal(a <= b))
	case wasm.OpI32GeS:
		b, a := in.pop().I32(), in.pop().I32()
		in.push(boolVal(a >= b))
	case wasm.OpI32GeU:
		b, a := in.pop().U32(), in.pop().U32()
		in.push(boolVal(a >= b))

	case wasm.OpI64Eqz:
		in.push(boolVal(in.pop().I64() == 0))
	case wasm.OpI64Eq:
		b, a := in.pop().I64(), in.pop().I64()
		in.push(boolVal(a == b))
	case wasm.OpI64Ne:
		b, a := in.pop().I64(), in.pop().I64()
		in.push(boolVal(a != b))
	case wasm.OpI64LtS:
		b, a := in.pop().I64(), in.pop().I64()
		in.push(boolVal(a < b))
	case wasm.OpI64LtU:
		b, a := in.pop().U64(), in.pop().U64()
		in.push(boolVal(a < b))
	case wasm.OpI64GtS:
		b, a := in.pop().I64(), in.pop().I64()
		in.push(boolVal(a > b))
	case wasm.OpI64GtU:
		b, a := in.pop().U64(), in.pop().U64()
		in.push(boolVal(a > b))
	case wasm.OpI64LeS:
		b, a := in.pop().I64(), in.pop().I64()
		in.push(boolVal(a <= b))
	case wasm.OpI64LeU:
		b, a := in.pop().U64(), in.pop().U64()
		in.push(boolVal(a <= b))
	case wasm.OpI64GeS:
		b, a := in.pop().I64(), in.pop().I64()
		in.push(boolVal(a >= b))
	case wasm.OpI64GeU:
		b, a := in.pop().U64(), in.pop().U64()
		in.push(boolVal(a >= b))

	case wasm.OpF32Eq:
		b, a := in.pop().F32(), in.pop().F32()
		in.push(boolVal(a == b))
	case wasm.OpF32Ne:
		b, a := in.pop().F32(), in.pop().F32()
		in.push(boolVal(a != b))
	case wasm.OpF32Lt:
		b, a := in.pop().F32(), in.pop().F32()
		in.push(boolVal(a < b))
	case wasm.OpF32Gt:
		b, a := in.pop().F32(), in.pop().F32()
		in.push(boolVal(a > b))
	case wasm.OpF32Le:
		b, a := in.pop().F32(), in.pop().F32()
		in.push(boolVal(a <= b))
	case wasm.OpF32Ge:
		b, a := in.pop().F32(), in.pop().F32()
		in.push(boolVal(a >= b))

	case wasm.OpF64Eq:
		b, a := in.pop().F64(), in.pop().F64()
		in.push(boolVal(a == b))
	case wasm.OpF64Ne:
		b, a := in.pop().F64(), in.pop().F64()
		in.push(boolVal(a != b))
	case wasm.OpF64Lt:
		b, a := in.pop().F64(), in.pop().F64()
		in.push(boolVal(a < b))
	case wasm.OpF64Gt:
		b, a := in.pop().F64(), in.pop().F64()
		in.push(boolVal(a > b))
	case wasm.OpF64Le:
		b, a := in.pop().F64(), in.pop().F64()
		in.push(boolVal(a <= b))
	case wasm.OpF64Ge:
		b, a := in.pop().F64(), in.pop().F64()
		in.push(boolVal(a >= b))

	case wasm.OpI32Clz:
		in.push(U32Val(number.Clz32(in.pop().U32())))
	case wasm.OpI32Ctz:
		in.push(U32Val(number.Ctz32(in.pop().U32())))
	case wasm.OpI32Popcnt:
		in.push(U32Val(number.Popcnt32(in.pop().U32())))
	case wasm.OpI32Add:
		b, a := in.pop().U32(), in.pop().U32()
		in.push(U32Val(a + b))
	case wasm.OpI32Sub:
		b, a := in.pop().U32(), in.pop().U32()
		in.push(U32Val(a - b))
	case wasm.OpI32Mul:
		b, a := in.pop().U32(), in.pop().U32()
		in.push(U32Val(a * b))
	case wasm.OpI32DivS:
		b, a := in.pop().I32(), in.pop().I32()
		r, trap := number.I32DivS(a, b)
		if err := trapErr(trap); err != nil {
			return err
		}
		in.push(I32Val(r))
	case wasm.OpI32DivU:
		b, a := in.pop().U32(), in.pop().U32()
		r, trap := number.I32DivU(a, b)
		if err := trapErr(trap); err != nil {
			return err
		}
		in.push(U32Val(r))
	case wasm.OpI32RemS:
		b, a := in.pop().I32(), in.pop().I32()
		r, trap := number.I32RemS(a, b)
		if err := trapErr(trap); err != nil {
			return err
		}
		in.push(I32Val(r))
	case wasm.OpI32RemU:
		b, a := in.pop().U32(), in.pop().U32()
		r, trap := number.I32RemU(a, b)
		if err := trapErr(trap); err != nil {
			return err
		}
		in.push(U32Val(r))
	case wasm.OpI32And:
		b, a := in.pop().U32(), in.pop().U32()
		in.push(U32Val(a & b))
	case wasm.OpI32Or:
		b, a := in.pop().U32(), in.pop().U32()
		in.push(U32Val(a | b))
	case wasm.OpI32Xor:
		b, a := in.pop().U32(), in.pop().U32()
		in.push(U32Val(a ^ b))
	case wasm.OpI32Shl:
		b, a := in.pop().U32(), in.pop().U32()
		in.push(U32Val(a << (b % 32)))
	case wasm.OpI32ShrS:
		b, a := in.pop().U32(), in.pop().I32()
		in.push(I32Val(a >> (b % 32)))
	case wasm.OpI32ShrU:
		b, a := in.pop().U32(), in.pop().U32()
		in.push(U32Val(a >> (b % 32)))
	case wasm.OpI32Rotl:
		b, a := in.pop().U32(), in.pop().U32()
		in.push(U32Val(number.Rotl32(a, b)))
	case wasm.OpI32Rotr:
		b, a := in.pop().U32(), in.pop().U32()
		in.push(U32Val(number.Rotr32(a, b)))

	case wasm.OpI64Clz:
		in.push(U64Val(number.Clz64(in.pop().U64())))
	case wasm.OpI64Ctz:
		in.push(U64Val(number.Ctz64(in.pop().U64())))
	case wasm.OpI64Popcnt:
		in.push(U64Val(number.Popcnt64(in.pop().U64())))
	case wasm.OpI64Add:
		b, a := in.pop().U64(), in.pop().U64()
		in.push(U64Val(a + b))
	case wasm.OpI64Sub:
		b, a := in.pop().U64(), in.pop().U64()
		in.push(U64Val(a - b))
	case wasm.OpI64Mul:
		b, a := in.pop().U64(), in.pop().U64()
		in.push(U64Val(a * b))
	case wasm.OpI64DivS:
		b, a := in.pop().I64(), in.pop().I64()
		r, trap := number.I64DivS(a, b)
		if err := trapErr(trap); err != nil {
			return err
		}
		in.push(I64Val(r))
	case wasm.OpI64DivU:
		b, a := in.pop().U64(), in.pop().U64()
		r, trap := number.I64DivU(a, b)
		if err := trapErr(trap); err != nil {
			return err
		}
		in.push(U64Val(r))
	case wasm.OpI64RemS:
		b, a := in.pop().I64(), in.pop().I64()
		r, trap := number.I64RemS(a, b)
		if err := trapErr(trap); err != nil {
			return err
		}
		in.push(I64Val(r))
	case wasm.OpI64RemU:
		b, a := in.pop().U64(), in.pop().U64()
		r, trap := number.I64RemU(a, b)
		if err := trapErr(trap); err != nil {
			return err
		}
		in.push(U64Val(r))
	case wasm.OpI64And:
		b, a := in.pop().U64(), in.pop().U64()
		in.push(U64Val(a & b))
	case wasm.OpI64Or:
		b, a := in.pop().U64(), in.pop().U64()
		in.push(U64Val(a | b))
	case wasm.OpI64Xor:
		b, a := in.pop().U64(), in.pop().U64()
		in.push(U64Val(a ^ b))
	case wasm.OpI64Shl:
		b, a := in.pop().U64(), in.pop().U64()
		in.push(U64Val(a << (b % 64)))
	case wasm.OpI64ShrS:
		b, a := in.pop().U64(), in.pop().I64()
		in.push(I64Val(a >> (b % 64)))
	case wasm.OpI64ShrU:
		b, a := in.pop().U64(), in.pop().U64()
		in.push(U64Val(a >> (b % 64)))
	case wasm.OpI64Rotl:
		b, a := in.pop().U64(), in.pop().U64()
		in.push(U64Val(number.Rotl64(a, b)))
	case wasm.OpI64Rotr:
		b, a := in.pop().U64(), in.pop().U64()
		in.push(U64Val(number.Rotr64(a, b)))

	case wasm.OpF32Abs:
		in.push(F32Val(number.F32Abs(in.pop().F32())))
	case wasm.OpF32Neg:
		in.push(F32Val(number.F32Neg(in.pop().F32())))
	case wasm.OpF32Ceil:
		in.push(F32Val(number.F32Ceil(in.pop().F32())))
	case wasm.OpF32Floor:
		in.push(F32Val(number.F32Floor(in.pop().F32())))
	case wasm.OpF32Trunc:
		in.push(F32Val(number.F32Trunc(in.pop().F32())))
	case wasm.OpF32Nearest:
		in.push(F32Val(number.F32Nearest(in.pop().F32())))
	case wasm.OpF32Sqrt:
		in.push(F32Val(number.F32Sqrt(in.pop().F32())))
	case wasm.OpF32Add:
		b, a := in.pop().F32(), in.pop().F32()
		in.push(F32Val(number.F32Add(a, b)))
	case wasm.OpF32Sub:
		b, a := in.pop().F32(), in.pop().F32()
		in.push(F32Val(number.F32Sub(a, b)))
	case wasm.OpF32Mul:
		b, a := in.pop().F32(), in.pop().F32()
		in.push(F32Val(number.F32Mul(a, b)))
	case wasm.OpF32Div:
		b, a := in.pop().F32(), in.pop().F32()
		in.push(F32Val(number.F32Div(a, b)))
	case wasm.OpF32Min:
		b, a := in.pop().F32(), in.pop().F32()
		in.push(F32Val(number.F32Min(a, b)))
	case wasm.OpF32Max:
		b, a := in.pop().F32(), in.pop().F32()
		in.push(F32Val(number.F32Max(a, b)))
	case wasm.OpF32Copysign:
		b, a := in.pop().F32(), in.pop().F32()
		in.push(F32Val(number.F32Copysign(a, b)))

	case wasm.OpF64Abs:
		in.push(F64Val(number.F64Abs(in.pop().F64())))
	case wasm.OpF64Neg:
		in.push(F64Val(number.F64Neg(in.pop().F64())))
	case wasm.OpF64Ceil:
		in.push(F64Val(number.F64Ceil(in.pop().F64())))
	case wasm.OpF64Floor:
		in.push(F64Val(number.F64Floor(in.pop().F64())))
	case wasm.OpF64Trunc:
		in.push(F64Val(number.F64Trunc(in.pop().F64())))
	case wasm.OpF64Nearest:
		in.push(F64Val(number.F64Nearest(in.pop().F64())))
	case wasm.OpF64Sqrt:
		in.push(F64Val(number.F64Sqrt(in.pop().F64())))
	case wasm.OpF64Add:
		b, a := in.pop().F64(), in.pop().F64()
		in.push(F64Val(number.F64Add(a, b)))
	case wasm.OpF64Sub:
		b, a := in.pop().F64(), in.pop().F64()
		in.push(F64Val(number.F64Sub(a, b)))
	case wasm.OpF64Mul:
		b, a := in.pop().F64(), in.pop().F64()
		in.push(F64Val(number.F64Mul(a, b)))
	case wasm.OpF64Div:
		b, a := in.pop().F64(), in.pop().F64()
		in.push(F64Val(number.F64Div(a, b)))
	case wasm.OpF64Min:
		b, a := in.pop().F64(), in.pop().F64()
		in.push(F64Val(number.F64Min(a, b)))
	case wasm.OpF64Max:
		b, a := in.pop().F64(), in.pop().F64()
		in.push(F64Val(number.F64Max(a, b)))
	case wasm.OpF64Copysign:
		b, a := in.pop().F64(), in.pop().F64()
		in.push(F64Val(number.F64Copysign(a, b)))

	case wasm.OpI32WrapI64:
		in.push(U32Val(uint32(in.pop().U64())))
	case wasm.OpI32TruncF32S:
		return in.pushTrunc(float64(in.pop().F32()), number.TruncI32S)
	case wasm.OpI32TruncF32U:
		return in.pushTrunc(float64(in.pop().F32()), number.TruncI32U)
	case wasm.OpI32TruncF64S:
		return in.pushTrunc(in.pop().F64(), number.TruncI32S)
	case wasm.OpI32TruncF64U:
		return in.pushTrunc(in.pop().F64(), number.TruncI32U)
	case wasm.OpI64ExtendI32S:
		in.push(I64Val(int64(in.pop().I32())))
	case wasm.OpI64ExtendI32U:
		in.push(U64Val(uint64(in.pop().U32())))
	case wasm.OpI64TruncF32S:
		return in.pushTrunc(float64(in.pop().F32()), number.TruncI64S)
	case wasm.OpI64TruncF32U:
		return in.pushTrunc(float64(in.pop().F32()), number.TruncI64U)
	case wasm.OpI64TruncF64S:
		return in.pushTrunc(in.pop().F64(), number.TruncI64S)
	case wasm.OpI64TruncF64U:
		return in.pushTrunc(in.pop().F64(), number.TruncI64U)
	case wasm.OpF32ConvertI32S:
		in.push(F32Val(number.ConvertI32SToF32(in.pop().I32())))
	case wasm.OpF32ConvertI32U:
		in.push(F32Val(number.ConvertI32UToF32(in.pop().U32())))
	case wasm.OpF32ConvertI64S:
		in.push(F32Val(number.ConvertI64SToF32(in.pop().I64())))
	case wasm.OpF32ConvertI64U:
		in.push(F32Val(number.ConvertI64UToF32(in.pop().U64())))
	case wasm.OpF32DemoteF64:
		in.push(F32Val(number.DemoteF64ToF32(in.pop().F64())))
	case wasm.OpF64ConvertI32S:
		in.push(F64Val(number.ConvertI32SToF64(in.pop().I32())))
	case wasm.OpF64ConvertI32U:
		in.push(F64Val(number.ConvertI32UToF64(in.pop().U32())))
	case wasm.OpF64ConvertI64S:
		in.push(F64Val(number.ConvertI64SToF64(in.pop().I64())))
	case wasm.OpF64ConvertI64U:
		in.push(F64Val(number.ConvertI64UToF64(in.pop().U64())))
	case wasm.OpF64PromoteF32:
		in.push(F64Val(number.PromoteF32ToF64(in.pop().F32())))
	case wasm.OpI32ReinterpretF32:
		in.push(U32Val(in.pop().U32()))
	case wasm.OpI64ReinterpretF64:
		in.push(U64Val(in.pop().U64()))
	case wasm.OpF32ReinterpretI32:
		in.push(U32Val(in.pop().U32()))
	case wasm.OpF64ReinterpretI64:
		in.push(U64Val(in.pop().U64()))

	case wasm.OpI32Extend8S:
		in.push(I32Val(int32(int8(in.pop().U32()))))
	case wasm.OpI32Extend16S:
		in.push(I32Val(int32(int16(in.pop().U32()))))
	case wasm.OpI64Extend8S:
		in.push(I64Val(int64(int8(in.pop().U64()))))
	case wasm.OpI64Extend16S:
		in.push(I64Val(int64(int16(in.pop().U64()))))
	case wasm.OpI64Extend32S:
		in.push(I64Val(int64(int32(in.pop().U64()))))

	default:
		panic(NewTrap("unhandled numeric opcode"))
	}
	return nil
}

func (in *Instance) pushTrunc(f float64, kind number.TruncKind) error {
	r, trap := number.TruncF64(f, kind)
	if err := trapErr(trap); err != nil {
		return err
	}
	in.push(U64Val(r))
	return nil
}

func trapErr(t number.TrapCode) error {
	switch t {
	case number.DivideByZero:
		return ErrIntegerDivideByZero
	case number.IntegerOverflow:
		return ErrIntegerOverflow
	case number.InvalidConversion:
		return ErrInvalidConversion
	}
	return nil
}
