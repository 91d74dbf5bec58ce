package wasm

import (
	"github.com/vertexdlt/vertexvm2/internal/writer"
	"github.com/vertexdlt/vertexvm2/leb128"
)

// Encode serializes m back into the WebAssembly binary format. It is the
// inverse of Decode: for any module produced by Decode, Decode(Encode(m))
// reproduces m structurally. Standard sections are written in ascending id
// order and every custom section is written after them, so the output
// equals the decoded bytes only when the input placed its custom sections
// last and used the same segment flag encodings Encode picks.
func Encode(m *Module) ([]byte, error) {
	w := writer.New()
	w.WriteU32(Magic)
	w.WriteU32(Version)

	if len(m.Types) > 0 {
		encodeSection(w, SecType, encodeTypeSec(m))
	}
	if len(m.Imports) > 0 {
		encodeSection(w, SecImport, encodeImportSec(m))
	}
	if len(m.FuncSec) > 0 {
		encodeSection(w, SecFunction, encodeFunctionSec(m))
	}
	if len(m.Tables) > 0 {
		encodeSection(w, SecTable, encodeTableSec(m))
	}
	if len(m.Memories) > 0 {
		encodeSection(w, SecMemory, encodeMemorySec(m))
	}
	if len(m.Globals) > 0 {
		encodeSection(w, SecGlobal, encodeGlobalSec(m))
	}
	if len(m.Exports) > 0 {
		encodeSection(w, SecExport, encodeExportSec(m))
	}
	if m.HasStart {
		sub := writer.New()
		leb128.WriteUint32(sub, m.Start)
		encodeSection(w, SecStart, sub.Bytes())
	}
	if len(m.Elements) > 0 {
		encodeSection(w, SecElement, encodeElementSec(m))
	}
	if len(m.Codes) > 0 {
		encodeSection(w, SecCode, encodeCodeSec(m))
	}
	if len(m.Datas) > 0 {
		encodeSection(w, SecData, encodeDataSec(m))
	}
	if m.HasDataCount {
		sub := writer.New()
		leb128.WriteUint32(sub, m.DataCount)
		encodeSection(w, SecDataCount, sub.Bytes())
	}
	for _, c := range m.Customs {
		sub := writer.New()
		sub.WriteName(c.Name)
		sub.WriteBytes(c.Data)
		encodeSection(w, SecCustom, sub.Bytes())
	}

	return w.Bytes(), nil
}

func encodeSection(w *writer.Writer, id byte, body []byte) {
	w.WriteByte(id)
	leb128.WriteUint32(w, uint32(len(body)))
	w.WriteBytes(body)
}

func writeValueType(w *writer.Writer, vt ValueType) { w.WriteByte(byte(vt)) }

func writeLimits(w *writer.Writer, lim Limits) {
	if lim.HasMax {
		w.WriteByte(0x01)
		leb128.WriteUint32(w, lim.Min)
		leb128.WriteUint32(w, lim.Max)
	} else {
		w.WriteByte(0x00)
		leb128.WriteUint32(w, lim.Min)
	}
}

func writeTableType(w *writer.Writer, tt TableType) {
	writeValueType(w, tt.ElemType)
	writeLimits(w, tt.Limits)
}

func writeGlobalType(w *writer.Writer, gt GlobalType) {
	writeValueType(w, gt.ValueType)
	w.WriteByte(byte(gt.Mut))
}

func encodeTypeSec(m *Module) []byte {
	w := writer.New()
	leb128.WriteUint32(w, uint32(len(m.Types)))
	for _, ft := range m.Types {
		w.WriteByte(0x60)
		leb128.WriteUint32(w, uint32(len(ft.Params)))
		for _, p := range ft.Params {
			writeValueType(w, p)
		}
		leb128.WriteUint32(w, uint32(len(ft.Results)))
		for _, res := range ft.Results {
			writeValueType(w, res)
		}
	}
	return w.Bytes()
}

func encodeImportSec(m *Module) []byte {
	w := writer.New()
	leb128.WriteUint32(w, uint32(len(m.Imports)))
	for _, imp := range m.Imports {
		w.WriteName(imp.Module)
		w.WriteName(imp.Field)
		w.WriteByte(byte(imp.Kind))
		switch imp.Kind {
		case ExternFunc:
			leb128.WriteUint32(w, imp.FuncTypeIdx)
		case ExternTable:
			writeTableType(w, imp.Table)
		case ExternMemory:
			writeLimits(w, imp.Memory.Limits)
		case ExternGlobal:
			writeGlobalType(w, imp.Global)
		}
	}
	return w.Bytes()
}

func encodeFunctionSec(m *Module) []byte {
	w := writer.New()
	leb128.WriteUint32(w, uint32(len(m.FuncSec)))
	for _, t := range m.FuncSec {
		leb128.WriteUint32(w, t)
	}
	return w.Bytes()
}

func encodeTableSec(m *Module) []byte {
	w := writer.New()
	leb128.WriteUint32(w, uint32(len(m.Tables)))
	for _, t := range m.Tables {
		writeTableType(w, t)
	}
	return w.Bytes()
}

func encodeMemorySec(m *Module) []byte {
	w := writer.New()
	leb128.WriteUint32(w, uint32(len(m.Memories)))
	for _, mem := range m.Memories {
		writeLimits(w, mem.Limits)
	}
	return w.Bytes()
}

func encodeGlobalSec(m *Module) []byte {
	w := writer.New()
	leb128.WriteUint32(w, uint32(len(m.Globals)))
	for _, g := range m.Globals {
		writeGlobalType(w, g.Type)
		encodeExpr(w, g.Init)
	}
	return w.Bytes()
}

func encodeExportSec(m *Module) []byte {
	w := writer.New()
	leb128.WriteUint32(w, uint32(len(m.Exports)))
	for _, e := range m.Exports {
		w.WriteName(e.Name)
		w.WriteByte(byte(e.Kind))
		leb128.WriteUint32(w, e.Idx)
	}
	return w.Bytes()
}

func encodeElementSec(m *Module) []byte {
	w := writer.New()
	leb128.WriteUint32(w, uint32(len(m.Elements)))
	for _, el := range m.Elements {
		allFuncRef := el.Type == ValueTypeFuncref
		allRefFunc := true
		for _, init := range el.Init {
			if len(init) != 1 || init[0].Op != OpRefFunc {
				allRefFunc = false
				break
			}
		}
		switch {
		case el.Mode == ElemModeActive && el.TableIdx == 0 && allFuncRef && allRefFunc:
			leb128.WriteUint32(w, 0)
			encodeExpr(w, el.Offset)
			leb128.WriteUint32(w, uint32(len(el.Init)))
			for _, init := range el.Init {
				leb128.WriteUint32(w, init[0].Idx)
			}
		case el.Mode == ElemModePassive && allFuncRef && allRefFunc:
			leb128.WriteUint32(w, 1)
			w.WriteByte(0x00)
			leb128.WriteUint32(w, uint32(len(el.Init)))
			for _, init := range el.Init {
				leb128.WriteUint32(w, init[0].Idx)
			}
		case el.Mode == ElemModeActive && allFuncRef && allRefFunc:
			leb128.WriteUint32(w, 2)
			leb128.WriteUint32(w, el.TableIdx)
			encodeExpr(w, el.Offset)
			w.WriteByte(0x00)
			leb128.WriteUint32(w, uint32(len(el.Init)))
			for _, init := range el.Init {
				leb128.WriteUint32(w, init[0].Idx)
			}
		case el.Mode == ElemModeDeclarative && allFuncRef && allRefFunc:
			leb128.WriteUint32(w, 3)
			w.WriteByte(0x00)
			leb128.WriteUint32(w, uint32(len(el.Init)))
			for _, init := range el.Init {
				leb128.WriteUint32(w, init[0].Idx)
			}
		case el.Mode == ElemModeActive && el.TableIdx == 0:
			leb128.WriteUint32(w, 4)
			encodeExpr(w, el.Offset)
			leb128.WriteUint32(w, uint32(len(el.Init)))
			for _, init := range el.Init {
				encodeExpr(w, init)
			}
		case el.Mode == ElemModePassive:
			leb128.WriteUint32(w, 5)
			writeValueType(w, el.Type)
			leb128.WriteUint32(w, uint32(len(el.Init)))
			for _, init := range el.Init {
				encodeExpr(w, init)
			}
		case el.Mode == ElemModeActive:
			leb128.WriteUint32(w, 6)
			leb128.WriteUint32(w, el.TableIdx)
			encodeExpr(w, el.Offset)
			writeValueType(w, el.Type)
			leb128.WriteUint32(w, uint32(len(el.Init)))
			for _, init := range el.Init {
				encodeExpr(w, init)
			}
		default:
			leb128.WriteUint32(w, 7)
			writeValueType(w, el.Type)
			leb128.WriteUint32(w, uint32(len(el.Init)))
			for _, init := range el.Init {
				encodeExpr(w, init)
			}
		}
	}
	return w.Bytes()
}

func encodeCodeSec(m *Module) []byte {
	w := writer.New()
	leb128.WriteUint32(w, uint32(len(m.Codes)))
	for _, c := range m.Codes {
		body := writer.New()
		leb128.WriteUint32(body, uint32(len(c.Locals)))
		for _, lg := range c.Locals {
			leb128.WriteUint32(body, lg.Count)
			writeValueType(body, lg.ValueType)
		}
		encodeExpr(body, c.Body)
		leb128.WriteUint32(w, uint32(body.Len()))
		w.WriteBytes(body.Bytes())
	}
	return w.Bytes()
}

func encodeDataSec(m *Module) []byte {
	w := writer.New()
	leb128.WriteUint32(w, uint32(len(m.Datas)))
	for _, d := range m.Datas {
		switch {
		case d.Mode == DataModeActive && d.MemIdx == 0:
			leb128.WriteUint32(w, 0)
			encodeExpr(w, d.Offset)
		case d.Mode == DataModePassive:
			leb128.WriteUint32(w, 1)
		default:
			leb128.WriteUint32(w, 2)
			leb128.WriteUint32(w, d.MemIdx)
			encodeExpr(w, d.Offset)
		}
		leb128.WriteUint32(w, uint32(len(d.Init)))
		w.WriteBytes(d.Init)
	}
	return w.Bytes()
}

func encodeBlockType(w *writer.Writer, bt BlockType) {
	switch bt.Kind {
	case BlockTypeKindEmpty:
		w.WriteByte(0x40)
	case BlockTypeKindValue:
		writeValueType(w, bt.ValueType)
	case BlockTypeKindIndex:
		leb128.WriteInt64(w, int64(bt.TypeIdx))
	}
}

func encodeMemArg(w *writer.Writer, mem MemArg) {
	leb128.WriteUint32(w, mem.Align)
	leb128.WriteUint32(w, mem.Offset)
}

func encodeExpr(w *writer.Writer, expr Expr) {
	for _, in := range expr {
		encodeInstr(w, in)
	}
	w.WriteByte(byte(OpEnd))
}

func encodeInstr(w *writer.Writer, in Instr) {
	op := in.Op
	switch {
	case op < fcBase:
		w.WriteByte(byte(op))
	case op < fdBase:
		w.WriteByte(0xFC)
		leb128.WriteUint32(w, uint32(op-fcBase))
	default:
		w.WriteByte(0xFD)
		leb128.WriteUint32(w, uint32(op-fdBase))
	}

	switch op {
	case OpBlock, OpLoop, OpIf:
		encodeBlockType(w, in.BlockType)
	case OpBr, OpBrIf:
		leb128.WriteUint32(w, in.Idx)
	case OpBrTable:
		leb128.WriteUint32(w, uint32(len(in.Labels)))
		for _, l := range in.Labels {
			leb128.WriteUint32(w, l)
		}
		leb128.WriteUint32(w, in.Default)
	case OpCall, OpLocalGet, OpLocalSet, OpLocalTee, OpGlobalGet, OpGlobalSet,
		OpTableGet, OpTableSet, OpRefFunc:
		leb128.WriteUint32(w, in.Idx)
	case OpCallIndirect:
		leb128.WriteUint32(w, in.Idx)
		leb128.WriteUint32(w, in.Idx2)
	case OpSelectT:
		leb128.WriteUint32(w, uint32(len(in.SelectTypes)))
		for _, t := range in.SelectTypes {
			writeValueType(w, t)
		}
	case OpRefNull:
		writeValueType(w, in.RefType)
	case OpMemorySize, OpMemoryGrow:
		w.WriteByte(0x00)
	case OpI32Const:
		leb128.WriteInt32(w, in.I32)
	case OpI64Const:
		leb128.WriteInt64(w, in.I64)
	case OpF32Const:
		w.WriteF32(in.F32)
	case OpF64Const:
		w.WriteF64(in.F64)
	case OpMemoryInit:
		leb128.WriteUint32(w, in.Idx)
		w.WriteByte(0x00)
	case OpDataDrop, OpElemDrop:
		leb128.WriteUint32(w, in.Idx)
	case OpMemoryCopy:
		w.WriteByte(0x00)
		w.WriteByte(0x00)
	case OpMemoryFill:
		w.WriteByte(0x00)
	case OpTableInit, OpTableCopy:
		leb128.WriteUint32(w, in.Idx)
		leb128.WriteUint32(w, in.Idx2)
	case OpTableGrow, OpTableSize, OpTableFill:
		leb128.WriteUint32(w, in.Idx)
	case OpV128Const:
		w.WriteV128(in.V128)
	case OpI8x16Shuffle:
		w.WriteV128(in.Shuffle)
	case OpI8x16ExtractLaneS, OpI8x16ExtractLaneU, OpI8x16ReplaceLane,
		OpI16x8ExtractLaneS, OpI16x8ExtractLaneU, OpI16x8ReplaceLane,
		OpI32x4ExtractLane, OpI32x4ReplaceLane,
		OpI64x2ExtractLane, OpI64x2ReplaceLane,
		OpF32x4ExtractLane, OpF32x4ReplaceLane,
		OpF64x2ExtractLane, OpF64x2ReplaceLane:
		w.WriteByte(in.Lane)
	default:
		if op >= OpI32Load && op <= OpI64Store32 {
			encodeMemArg(w, in.Mem)
		} else if op >= OpV128Load && op <= OpV128Store && op != OpV128Const {
			encodeMemArg(w, in.Mem)
		} else if op == OpV128Load32Zero || op == OpV128Load64Zero {
			encodeMemArg(w, in.Mem)
		} else if op >= OpV128Load8Lane && op <= OpV128Store64Lane {
			encodeMemArg(w, in.Mem)
			w.WriteByte(in.Lane)
		}
	}
}
