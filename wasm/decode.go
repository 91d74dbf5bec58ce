package wasm

import (
	"errors"
	"fmt"

	"github.com/vertexdlt/vertexvm2/internal/reader"
	"github.com/vertexdlt/vertexvm2/leb128"
)

// DecodeErrorKind distinguishes the two binary-decode failure modes the
// spec calls out: a structurally invalid byte stream (Malformed) versus a
// stream that simply ran out of bytes mid-field (Truncated).
type DecodeErrorKind int

const (
	Malformed DecodeErrorKind = iota
	Truncated
)

// DecodeError is returned for every binary-decoding failure, carrying the
// byte offset at which decoding stopped so tooling can report precisely.
type DecodeError struct {
	Kind   DecodeErrorKind
	Offset uint32
	Msg    string
}

func (e *DecodeError) Error() string {
	kind := "malformed"
	if e.Kind == Truncated {
		kind = "truncated"
	}
	return fmt.Sprintf("wasm: %s module at offset %d: %s", kind, e.Offset, e.Msg)
}

func malformed(r *reader.Reader, format string, args ...interface{}) error {
	return &DecodeError{Kind: Malformed, Offset: r.Pos(), Msg: fmt.Sprintf(format, args...)}
}

// truncated wraps a read failure: running out of bytes
// (reader.ErrOutOfRange) is Truncated, any other read failure (an
// over-long or non-canonical LEB128, a name that is not valid UTF-8) is
// Malformed.
func truncated(r *reader.Reader, err error) error {
	kind := Truncated
	if !errors.Is(err, reader.ErrOutOfRange) {
		kind = Malformed
	}
	return &DecodeError{Kind: kind, Offset: r.Pos(), Msg: err.Error()}
}

// Decode parses a complete binary module from b.
func Decode(b []byte) (*Module, error) {
	r := reader.New(b)
	m := &Module{}

	magic, err := r.ReadU32()
	if err != nil {
		return nil, truncated(r, err)
	}
	if magic != Magic {
		return nil, malformed(r, "bad magic number")
	}

	version, err := r.ReadU32()
	if err != nil {
		return nil, truncated(r, err)
	}
	if version != Version {
		return nil, malformed(r, "unsupported version %d", version)
	}
	m.Version = version

	var lastNonCustom byte
	var codeSectionSeen bool
	for !r.Eof() {
		id, err := r.ReadByte()
		if err != nil {
			return nil, truncated(r, err)
		}
		size, err := leb128.ReadUint32(r)
		if err != nil {
			return nil, truncated(r, err)
		}
		sub, err := r.Sub(size)
		if err != nil {
			return nil, truncated(r, err)
		}

		if id != SecCustom {
			if id <= lastNonCustom {
				return nil, malformed(r, "sections out of order or duplicated (id %d)", id)
			}
			lastNonCustom = id
		}

		switch id {
		case SecCustom:
			name, err := sub.ReadName()
			if err != nil {
				return nil, truncated(sub, err)
			}
			m.Customs = append(m.Customs, CustomSection{Name: name, Data: append([]byte{}, sub.Rest()...)})
		case SecType:
			if err := decodeTypeSec(sub, m); err != nil {
				return nil, err
			}
		case SecImport:
			if err := decodeImportSec(sub, m); err != nil {
				return nil, err
			}
		case SecFunction:
			if err := decodeFunctionSec(sub, m); err != nil {
				return nil, err
			}
		case SecTable:
			if err := decodeTableSec(sub, m); err != nil {
				return nil, err
			}
		case SecMemory:
			if err := decodeMemorySec(sub, m); err != nil {
				return nil, err
			}
		case SecGlobal:
			if err := decodeGlobalSec(sub, m); err != nil {
				return nil, err
			}
		case SecExport:
			if err := decodeExportSec(sub, m); err != nil {
				return nil, err
			}
		case SecStart:
			idx, err := leb128.ReadUint32(sub)
			if err != nil {
				return nil, truncated(sub, err)
			}
			m.HasStart = true
			m.Start = idx
		case SecElement:
			if err := decodeElementSec(sub, m); err != nil {
				return nil, err
			}
		case SecCode:
			codeSectionSeen = true
			if err := decodeCodeSec(sub, m); err != nil {
				return nil, err
			}
		case SecData:
			if err := decodeDataSec(sub, m); err != nil {
				return nil, err
			}
		case SecDataCount:
			cnt, err := leb128.ReadUint32(sub)
			if err != nil {
				return nil, truncated(sub, err)
			}
			m.HasDataCount = true
			m.DataCount = cnt
		default:
			return nil, malformed(r, "unknown section id %d", id)
		}

		if !sub.Eof() {
			return nil, malformed(sub, "section %d declared length does not match contents", id)
		}
	}
	_ = codeSectionSeen

	if len(m.FuncSec) != len(m.Codes) {
		return nil, malformed(r, "function and code section entry counts differ")
	}
	if m.HasDataCount && uint32(len(m.Datas)) != m.DataCount {
		return nil, malformed(r, "data count section does not match data section")
	}

	m.finalize()
	return m, nil
}

func readValueType(r *reader.Reader) (ValueType, error) {
	b, err := r.ReadByte()
	if err != nil {
		return 0, truncated(r, err)
	}
	switch ValueType(b) {
	case ValueTypeI32, ValueTypeI64, ValueTypeF32, ValueTypeF64, ValueTypeV128, ValueTypeFuncref, ValueTypeExtern:
		return ValueType(b), nil
	default:
		return 0, malformed(r, "invalid value type 0x%x", b)
	}
}

func readRefType(r *reader.Reader) (ValueType, error) {
	vt, err := readValueType(r)
	if err != nil {
		return 0, err
	}
	if !vt.IsRef() {
		return 0, malformed(r, "expected reference type, got %s", vt)
	}
	return vt, nil
}

func readLimits(r *reader.Reader) (Limits, error) {
	var lim Limits
	flag, err := r.ReadByte()
	if err != nil {
		return lim, truncated(r, err)
	}
	min, err := leb128.ReadUint32(r)
	if err != nil {
		return lim, truncated(r, err)
	}
	lim.Min = min
	switch flag {
	case 0x00:
	case 0x01:
		max, err := leb128.ReadUint32(r)
		if err != nil {
			return lim, truncated(r, err)
		}
		lim.Max = max
		lim.HasMax = true
	default:
		return lim, malformed(r, "invalid limits flag 0x%x", flag)
	}
	return lim, nil
}

func readTableType(r *reader.Reader) (TableType, error) {
	var tt TableType
	et, err := readRefType(r)
	if err != nil {
		return tt, err
	}
	lim, err := readLimits(r)
	if err != nil {
		return tt, err
	}
	tt.ElemType = et
	tt.Limits = lim
	return tt, nil
}

func readGlobalType(r *reader.Reader) (GlobalType, error) {
	var gt GlobalType
	vt, err := readValueType(r)
	if err != nil {
		return gt, err
	}
	mb, err := r.ReadByte()
	if err != nil {
		return gt, truncated(r, err)
	}
	if mb != 0x00 && mb != 0x01 {
		return gt, malformed(r, "invalid mutability flag 0x%x", mb)
	}
	gt.ValueType = vt
	gt.Mut = Mut(mb)
	return gt, nil
}

func decodeTypeSec(r *reader.Reader, m *Module) error {
	n, err := leb128.ReadUint32(r)
	if err != nil {
		return truncated(r, err)
	}
	m.Types = make([]FuncType, n)
	for i := uint32(0); i < n; i++ {
		form, err := r.ReadByte()
		if err != nil {
			return truncated(r, err)
		}
		if form != 0x60 {
			return malformed(r, "invalid functype form byte 0x%x", form)
		}
		pCount, err := leb128.ReadUint32(r)
		if err != nil {
			return truncated(r, err)
		}
		params := make([]ValueType, pCount)
		for j := range params {
			if params[j], err = readValueType(r); err != nil {
				return err
			}
		}
		rCount, err := leb128.ReadUint32(r)
		if err != nil {
			return truncated(r, err)
		}
		results := make([]ValueType, rCount)
		for j := range results {
			if results[j], err = readValueType(r); err != nil {
				return err
			}
		}
		m.Types[i] = FuncType{Params: params, Results: results}
	}
	return nil
}

func decodeImportSec(r *reader.Reader, m *Module) error {
	n, err := leb128.ReadUint32(r)
	if err != nil {
		return truncated(r, err)
	}
	m.Imports = make([]Import, n)
	for i := uint32(0); i < n; i++ {
		imp := &m.Imports[i]
		if imp.Module, err = r.ReadName(); err != nil {
			return truncated(r, err)
		}
		if imp.Field, err = r.ReadName(); err != nil {
			return truncated(r, err)
		}
		kind, err := r.ReadByte()
		if err != nil {
			return truncated(r, err)
		}
		imp.Kind = ExternKind(kind)
		switch imp.Kind {
		case ExternFunc:
			if imp.FuncTypeIdx, err = leb128.ReadUint32(r); err != nil {
				return truncated(r, err)
			}
		case ExternTable:
			if imp.Table, err = readTableType(r); err != nil {
				return err
			}
		case ExternMemory:
			if imp.Memory.Limits, err = readLimits(r); err != nil {
				return err
			}
		case ExternGlobal:
			if imp.Global, err = readGlobalType(r); err != nil {
				return err
			}
		default:
			return malformed(r, "invalid import kind 0x%x", kind)
		}
	}
	return nil
}

func decodeFunctionSec(r *reader.Reader, m *Module) error {
	n, err := leb128.ReadUint32(r)
	if err != nil {
		return truncated(r, err)
	}
	m.FuncSec = make([]uint32, n)
	for i := range m.FuncSec {
		if m.FuncSec[i], err = leb128.ReadUint32(r); err != nil {
			return truncated(r, err)
		}
	}
	return nil
}

func decodeTableSec(r *reader.Reader, m *Module) error {
	n, err := leb128.ReadUint32(r)
	if err != nil {
		return truncated(r, err)
	}
	m.Tables = make([]TableType, n)
	for i := range m.Tables {
		if m.Tables[i], err = readTableType(r); err != nil {
			return err
		}
	}
	return nil
}

func decodeMemorySec(r *reader.Reader, m *Module) error {
	n, err := leb128.ReadUint32(r)
	if err != nil {
		return truncated(r, err)
	}
	m.Memories = make([]MemType, n)
	for i := range m.Memories {
		if m.Memories[i].Limits, err = readLimits(r); err != nil {
			return err
		}
	}
	return nil
}

func decodeGlobalSec(r *reader.Reader, m *Module) error {
	n, err := leb128.ReadUint32(r)
	if err != nil {
		return truncated(r, err)
	}
	m.Globals = make([]Global, n)
	for i := range m.Globals {
		gt, err := readGlobalType(r)
		if err != nil {
			return err
		}
		expr, err := decodeExpr(r)
		if err != nil {
			return err
		}
		m.Globals[i] = Global{Type: gt, Init: expr}
	}
	return nil
}

func decodeExportSec(r *reader.Reader, m *Module) error {
	n, err := leb128.ReadUint32(r)
	if err != nil {
		return truncated(r, err)
	}
	m.Exports = make([]Export, n)
	for i := range m.Exports {
		name, err := r.ReadName()
		if err != nil {
			return truncated(r, err)
		}
		kind, err := r.ReadByte()
		if err != nil {
			return truncated(r, err)
		}
		if kind > byte(ExternGlobal) {
			return malformed(r, "invalid export kind 0x%x", kind)
		}
		idx, err := leb128.ReadUint32(r)
		if err != nil {
			return truncated(r, err)
		}
		m.Exports[i] = Export{Name: name, Kind: ExternKind(kind), Idx: idx}
	}
	return nil
}

func decodeElementSec(r *reader.Reader, m *Module) error {
	n, err := leb128.ReadUint32(r)
	if err != nil {
		return truncated(r, err)
	}
	m.Elements = make([]Element, n)
	for i := range m.Elements {
		flags, err := leb128.ReadUint32(r)
		if err != nil {
			return truncated(r, err)
		}
		el := &m.Elements[i]
		el.Type = ValueTypeFuncref
		switch flags {
		case 0:
			el.Mode = ElemModeActive
			if el.Offset, err = decodeExpr(r); err != nil {
				return err
			}
			if el.Init, err = readFuncIdxInits(r); err != nil {
				return err
			}
		case 1:
			el.Mode = ElemModePassive
			if _, err = r.ReadByte(); err != nil { // elemkind, must be 0x00 (funcref)
				return truncated(r, err)
			}
			if el.Init, err = readFuncIdxInits(r); err != nil {
				return err
			}
		case 2:
			el.Mode = ElemModeActive
			if el.TableIdx, err = leb128.ReadUint32(r); err != nil {
				return truncated(r, err)
			}
			if el.Offset, err = decodeExpr(r); err != nil {
				return err
			}
			if _, err = r.ReadByte(); err != nil {
				return truncated(r, err)
			}
			if el.Init, err = readFuncIdxInits(r); err != nil {
				return err
			}
		case 3:
			el.Mode = ElemModeDeclarative
			if _, err = r.ReadByte(); err != nil {
				return truncated(r, err)
			}
			if el.Init, err = readFuncIdxInits(r); err != nil {
				return err
			}
		case 4:
			el.Mode = ElemModeActive
			if el.Offset, err = decodeExpr(r); err != nil {
				return err
			}
			if el.Init, err = readExprInits(r); err != nil {
				return err
			}
		case 5:
			el.Mode = ElemModePassive
			if el.Type, err = readRefType(r); err != nil {
				return err
			}
			if el.Init, err = readExprInits(r); err != nil {
				return err
			}
		case 6:
			el.Mode = ElemModeActive
			if el.TableIdx, err = leb128.ReadUint32(r); err != nil {
				return truncated(r, err)
			}
			if el.Offset, err = decodeExpr(r); err != nil {
				return err
			}
			if el.Type, err = readRefType(r); err != nil {
				return err
			}
			if el.Init, err = readExprInits(r); err != nil {
				return err
			}
		case 7:
			el.Mode = ElemModeDeclarative
			if el.Type, err = readRefType(r); err != nil {
				return err
			}
			if el.Init, err = readExprInits(r); err != nil {
				return err
			}
		default:
			return malformed(r, "invalid element segment flags %d", flags)
		}
	}
	return nil
}

func readFuncIdxInits(r *reader.Reader) ([]Expr, error) {
	n, err := leb128.ReadUint32(r)
	if err != nil {
		return nil, truncated(r, err)
	}
	out := make([]Expr, n)
	for i := range out {
		idx, err := leb128.ReadUint32(r)
		if err != nil {
			return nil, truncated(r, err)
		}
		out[i] = Expr{{Op: OpRefFunc, Idx: idx}}
	}
	return out, nil
}

func readExprInits(r *reader.Reader) ([]Expr, error) {
	n, err := leb128.ReadUint32(r)
	if err != nil {
		return nil, truncated(r, err)
	}
	out := make([]Expr, n)
	for i := range out {
		expr, err := decodeExpr(r)
		if err != nil {
			return nil, err
		}
		out[i] = expr
	}
	return out, nil
}

func decodeCodeSec(r *reader.Reader, m *Module) error {
	n, err := leb128.ReadUint32(r)
	if err != nil {
		return truncated(r, err)
	}
	m.Codes = make([]Code, n)
	for i := range m.Codes {
		size, err := leb128.ReadUint32(r)
		if err != nil {
			return truncated(r, err)
		}
		body, err := r.Sub(size)
		if err != nil {
			return truncated(r, err)
		}
		groupCount, err := leb128.ReadUint32(body)
		if err != nil {
			return truncated(body, err)
		}
		locals := make([]LocalGroup, groupCount)
		for j := range locals {
			cnt, err := leb128.ReadUint32(body)
			if err != nil {
				return truncated(body, err)
			}
			vt, err := readValueType(body)
			if err != nil {
				return err
			}
			locals[j] = LocalGroup{Count: cnt, ValueType: vt}
		}
		expr, err := decodeExpr(body)
		if err != nil {
			return err
		}
		if !body.Eof() {
			return malformed(body, "code entry %d has trailing bytes", i)
		}
		m.Codes[i] = Code{Locals: locals, Body: expr}
	}
	return nil
}

func decodeDataSec(r *reader.Reader, m *Module) error {
	n, err := leb128.ReadUint32(r)
	if err != nil {
		return truncated(r, err)
	}
	m.Datas = make([]Data, n)
	for i := range m.Datas {
		flag, err := leb128.ReadUint32(r)
		if err != nil {
			return truncated(r, err)
		}
		d := &m.Datas[i]
		switch flag {
		case 0:
			d.Mode = DataModeActive
			if d.Offset, err = decodeExpr(r); err != nil {
				return err
			}
		case 1:
			d.Mode = DataModePassive
		case 2:
			d.Mode = DataModeActive
			if d.MemIdx, err = leb128.ReadUint32(r); err != nil {
				return truncated(r, err)
			}
			if d.Offset, err = decodeExpr(r); err != nil {
				return err
			}
		default:
			return malformed(r, "invalid data segment flag %d", flag)
		}
		byteLen, err := leb128.ReadUint32(r)
		if err != nil {
			return truncated(r, err)
		}
		bytes, err := r.ReadBytes(byteLen)
		if err != nil {
			return truncated(r, err)
		}
		d.Init = append([]byte{}, bytes...)
	}
	return nil
}

// decodeExpr reads an instruction sequence up to and including its
// terminating 0x0B (End) opcode, which is consumed but not appended.
func decodeExpr(r *reader.Reader) (Expr, error) {
	var expr Expr
	depth := 0
	for {
		instr, err := decodeInstr(r)
		if err != nil {
			return nil, err
		}
		switch instr.Op {
		case OpBlock, OpLoop, OpIf:
			depth++
		case OpEnd:
			if depth == 0 {
				return expr, nil
			}
			depth--
		}
		expr = append(expr, instr)
	}
}

func decodeBlockType(r *reader.Reader) (BlockType, error) {
	b, err := r.ReadByte()
	if err != nil {
		return BlockType{}, truncated(r, err)
	}
	if b == 0x40 {
		return BlockType{Kind: BlockTypeKindEmpty}, nil
	}
	switch ValueType(b) {
	case ValueTypeI32, ValueTypeI64, ValueTypeF32, ValueTypeF64, ValueTypeV128, ValueTypeFuncref, ValueTypeExtern:
		return BlockType{Kind: BlockTypeKindValue, ValueType: ValueType(b)}, nil
	}
	// Otherwise it's a signed LEB128 type index; un-read the byte we took
	// and re-decode as s33 per the binary format.
	idxR := reader.New(append([]byte{b}, r.Rest()...))
	idx, err := leb128.ReadSint(idxR, 33)
	if err != nil {
		return BlockType{}, truncated(r, err)
	}
	// advance the real reader by however many bytes idxR consumed
	if _, err := r.ReadBytes(idxR.Pos() - 1); err != nil {
		return BlockType{}, truncated(r, err)
	}
	if idx < 0 {
		return BlockType{}, malformed(r, "invalid block type index")
	}
	return BlockType{Kind: BlockTypeKindIndex, TypeIdx: uint32(idx)}, nil
}

func readMemArg(r *reader.Reader) (MemArg, error) {
	align, err := leb128.ReadUint32(r)
	if err != nil {
		return MemArg{}, truncated(r, err)
	}
	offset, err := leb128.ReadUint32(r)
	if err != nil {
		return MemArg{}, truncated(r, err)
	}
	return MemArg{Align: align, Offset: offset}, nil
}

func decodeInstr(r *reader.Reader) (Instr, error) {
	b, err := r.ReadByte()
	if err != nil {
		return Instr{}, truncated(r, err)
	}

	switch b {
	case 0xFC:
		sub, err := leb128.ReadUint32(r)
		if err != nil {
			return Instr{}, truncated(r, err)
		}
		return decodeMiscInstr(r, fcBase+Opcode(sub))
	case 0xFD:
		sub, err := leb128.ReadUint32(r)
		if err != nil {
			return Instr{}, truncated(r, err)
		}
		return decodeSimdInstr(r, fdBase+Opcode(sub))
	case 0xFE:
		return Instr{}, malformed(r, "reserved opcode prefix 0xFE")
	}

	op := Opcode(b)
	switch op {
	case OpBlock, OpLoop, OpIf:
		bt, err := decodeBlockType(r)
		if err != nil {
			return Instr{}, err
		}
		return Instr{Op: op, BlockType: bt}, nil

	case OpUnreachable, OpNop, OpElse, OpEnd, OpReturn, OpDrop, OpSelect:
		return Instr{Op: op}, nil

	case OpBr, OpBrIf:
		idx, err := leb128.ReadUint32(r)
		if err != nil {
			return Instr{}, truncated(r, err)
		}
		return Instr{Op: op, Idx: idx}, nil

	case OpBrTable:
		n, err := leb128.ReadUint32(r)
		if err != nil {
			return Instr{}, truncated(r, err)
		}
		labels := make([]uint32, n)
		for i := range labels {
			if labels[i], err = leb128.ReadUint32(r); err != nil {
				return Instr{}, truncated(r, err)
			}
		}
		def, err := leb128.ReadUint32(r)
		if err != nil {
			return Instr{}, truncated(r, err)
		}
		return Instr{Op: op, Labels: labels, Default: def}, nil

	case OpCall, OpLocalGet, OpLocalSet, OpLocalTee, OpGlobalGet, OpGlobalSet,
		OpTableGet, OpTableSet, OpRefFunc:
		idx, err := leb128.ReadUint32(r)
		if err != nil {
			return Instr{}, truncated(r, err)
		}
		return Instr{Op: op, Idx: idx}, nil

	case OpCallIndirect:
		typeIdx, err := leb128.ReadUint32(r)
		if err != nil {
			return Instr{}, truncated(r, err)
		}
		tableIdx, err := leb128.ReadUint32(r)
		if err != nil {
			return Instr{}, truncated(r, err)
		}
		return Instr{Op: op, Idx: typeIdx, Idx2: tableIdx}, nil

	case OpSelectT:
		n, err := leb128.ReadUint32(r)
		if err != nil {
			return Instr{}, truncated(r, err)
		}
		types := make([]ValueType, n)
		for i := range types {
			if types[i], err = readValueType(r); err != nil {
				return Instr{}, err
			}
		}
		return Instr{Op: op, SelectTypes: types}, nil

	case OpRefNull:
		rt, err := readRefType(r)
		if err != nil {
			return Instr{}, err
		}
		return Instr{Op: op, RefType: rt}, nil

	case OpRefIsNull:
		return Instr{Op: op}, nil

	case OpMemorySize, OpMemoryGrow:
		if _, err := r.ReadByte(); err != nil { // reserved 0x00
			return Instr{}, truncated(r, err)
		}
		return Instr{Op: op}, nil

	case OpI32Const:
		v, err := leb128.ReadInt32(r)
		if err != nil {
			return Instr{}, truncated(r, err)
		}
		return Instr{Op: op, I32: v}, nil

	case OpI64Const:
		v, err := leb128.ReadInt64(r)
		if err != nil {
			return Instr{}, truncated(r, err)
		}
		return Instr{Op: op, I64: v}, nil

	case OpF32Const:
		v, err := r.ReadF32()
		if err != nil {
			return Instr{}, truncated(r, err)
		}
		return Instr{Op: op, F32: v}, nil

	case OpF64Const:
		v, err := r.ReadF64()
		if err != nil {
			return Instr{}, truncated(r, err)
		}
		return Instr{Op: op, F64: v}, nil
	}

	if op >= OpI32Load && op <= OpI64Store32 {
		mem, err := readMemArg(r)
		if err != nil {
			return Instr{}, err
		}
		return Instr{Op: op, Mem: mem}, nil
	}

	if isPlainNumericOp(op) {
		return Instr{Op: op}, nil
	}

	return Instr{}, malformed(r, "unknown opcode 0x%x", b)
}

func isPlainNumericOp(op Opcode) bool {
	return op >= OpI32Eqz && op <= OpI64Extend32S
}

func decodeMiscInstr(r *reader.Reader, op Opcode) (Instr, error) {
	switch op {
	case OpI32TruncSatF32S, OpI32TruncSatF32U, OpI32TruncSatF64S, OpI32TruncSatF64U,
		OpI64TruncSatF32S, OpI64TruncSatF32U, OpI64TruncSatF64S, OpI64TruncSatF64U:
		return Instr{Op: op}, nil

	case OpMemoryInit:
		dataIdx, err := leb128.ReadUint32(r)
		if err != nil {
			return Instr{}, truncated(r, err)
		}
		if _, err := r.ReadByte(); err != nil { // reserved memidx
			return Instr{}, truncated(r, err)
		}
		return Instr{Op: op, Idx: dataIdx}, nil

	case OpDataDrop:
		idx, err := leb128.ReadUint32(r)
		if err != nil {
			return Instr{}, truncated(r, err)
		}
		return Instr{Op: op, Idx: idx}, nil

	case OpMemoryCopy:
		if _, err := r.ReadByte(); err != nil {
			return Instr{}, truncated(r, err)
		}
		if _, err := r.ReadByte(); err != nil {
			return Instr{}, truncated(r, err)
		}
		return Instr{Op: op}, nil

	case OpMemoryFill:
		if _, err := r.ReadByte(); err != nil {
			return Instr{}, truncated(r, err)
		}
		return Instr{Op: op}, nil

	case OpTableInit:
		elemIdx, err := leb128.ReadUint32(r)
		if err != nil {
			return Instr{}, truncated(r, err)
		}
		tableIdx, err := leb128.ReadUint32(r)
		if err != nil {
			return Instr{}, truncated(r, err)
		}
		return Instr{Op: op, Idx: elemIdx, Idx2: tableIdx}, nil

	case OpElemDrop:
		idx, err := leb128.ReadUint32(r)
		if err != nil {
			return Instr{}, truncated(r, err)
		}
		return Instr{Op: op, Idx: idx}, nil

	case OpTableCopy:
		dst, err := leb128.ReadUint32(r)
		if err != nil {
			return Instr{}, truncated(r, err)
		}
		src, err := leb128.ReadUint32(r)
		if err != nil {
			return Instr{}, truncated(r, err)
		}
		return Instr{Op: op, Idx: dst, Idx2: src}, nil

	case OpTableGrow, OpTableSize, OpTableFill:
		idx, err := leb128.ReadUint32(r)
		if err != nil {
			return Instr{}, truncated(r, err)
		}
		return Instr{Op: op, Idx: idx}, nil
	}
	return Instr{}, malformed(r, "unknown 0xFC opcode %d", op-fcBase)
}

func decodeSimdInstr(r *reader.Reader, op Opcode) (Instr, error) {
	switch op {
	case OpV128Load, OpV128Load8x8S, OpV128Load8x8U, OpV128Load16x4S, OpV128Load16x4U,
		OpV128Load32x2S, OpV128Load32x2U, OpV128Load8Splat, OpV128Load16Splat,
		OpV128Load32Splat, OpV128Load64Splat, OpV128Store, OpV128Load32Zero, OpV128Load64Zero:
		mem, err := readMemArg(r)
		if err != nil {
			return Instr{}, err
		}
		return Instr{Op: op, Mem: mem}, nil

	case OpV128Load8Lane, OpV128Load16Lane, OpV128Load32Lane, OpV128Load64Lane,
		OpV128Store8Lane, OpV128Store16Lane, OpV128Store32Lane, OpV128Store64Lane:
		mem, err := readMemArg(r)
		if err != nil {
			return Instr{}, err
		}
		lane, err := r.ReadByte()
		if err != nil {
			return Instr{}, truncated(r, err)
		}
		return Instr{Op: op, Mem: mem, Lane: lane}, nil

	case OpV128Const:
		v, err := r.ReadV128()
		if err != nil {
			return Instr{}, truncated(r, err)
		}
		return Instr{Op: op, V128: v}, nil

	case OpI8x16Shuffle:
		mask, err := r.ReadV128()
		if err != nil {
			return Instr{}, truncated(r, err)
		}
		return Instr{Op: op, Shuffle: mask}, nil

	case OpI8x16ExtractLaneS, OpI8x16ExtractLaneU, OpI8x16ReplaceLane,
		OpI16x8ExtractLaneS, OpI16x8ExtractLaneU, OpI16x8ReplaceLane,
		OpI32x4ExtractLane, OpI32x4ReplaceLane,
		OpI64x2ExtractLane, OpI64x2ReplaceLane,
		OpF32x4ExtractLane, OpF32x4ReplaceLane,
		OpF64x2ExtractLane, OpF64x2ReplaceLane:
		lane, err := r.ReadByte()
		if err != nil {
			return Instr{}, truncated(r, err)
		}
		return Instr{Op: op, Lane: lane}, nil
	}

	// Every remaining SIMD opcode (swizzle, splat, arithmetic, compare,
	// bitwise, shift, conversion, lane-reduction) takes no immediate: all
	// operands come off the stack.
	if op >= OpI8x16Swizzle && op <= OpF64x2ConvertLowI32x4U {
		return Instr{Op: op}, nil
	}
	return Instr{}, malformed(r, "unknown 0xFD opcode %d", op-fdBase)
}

var errNotImplemented = errors.New("wasm: not implemented")
