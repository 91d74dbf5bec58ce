package wasm

// Opcode identifies a decoded instruction. Plain one-byte opcodes keep
// their wire value. The 0xFC (saturating-truncation / bulk memory/table)
// and 0xFD (SIMD) prefixes are immediately followed by a LEB128 secondary
// opcode on the wire; here they are folded into a single flat namespace so
// the control-flow engine can dispatch on one value, avoiding a second
// switch keyed by prefix. This mirrors the teacher's (vm/vm.go) habit of
// dispatching on a single opcode value with range checks for instruction
// families.
type Opcode uint32

const (
	fcBase Opcode = 0x1_0000 // 0xFC-prefixed opcodes start here
	fdBase Opcode = 0x2_0000 // 0xFD-prefixed (SIMD) opcodes start here
)

// Control & parametric instructions.
const (
	OpUnreachable Opcode = 0x00
	OpNop         Opcode = 0x01
	OpBlock       Opcode = 0x02
	OpLoop        Opcode = 0x03
	OpIf          Opcode = 0x04
	OpElse        Opcode = 0x05
	OpEnd         Opcode = 0x0B
	OpBr          Opcode = 0x0C
	OpBrIf        Opcode = 0x0D
	OpBrTable     Opcode = 0x0E
	OpReturn      Opcode = 0x0F
	OpCall        Opcode = 0x10
	OpCallIndirect Opcode = 0x11

	OpDrop   Opcode = 0x1A
	OpSelect Opcode = 0x1B
	// OpSelectT is select with an explicit result-type vector (post-MVP,
	// carried in WebAssembly 2.0); encoded the same opcode 0x1C.
	OpSelectT Opcode = 0x1C

	OpLocalGet  Opcode = 0x20
	OpLocalSet  Opcode = 0x21
	OpLocalTee  Opcode = 0x22
	OpGlobalGet Opcode = 0x23
	OpGlobalSet Opcode = 0x24

	OpTableGet Opcode = 0x25
	OpTableSet Opcode = 0x26

	OpRefNull   Opcode = 0xD0
	OpRefIsNull Opcode = 0xD1
	OpRefFunc   Opcode = 0xD2
)

// Memory instructions (loads, stores, size/grow).
const (
	OpI32Load    Opcode = 0x28
	OpI64Load    Opcode = 0x29
	OpF32Load    Opcode = 0x2A
	OpF64Load    Opcode = 0x2B
	OpI32Load8S  Opcode = 0x2C
	OpI32Load8U  Opcode = 0x2D
	OpI32Load16S Opcode = 0x2E
	OpI32Load16U Opcode = 0x2F
	OpI64Load8S  Opcode = 0x30
	OpI64Load8U  Opcode = 0x31
	OpI64Load16S Opcode = 0x32
	OpI64Load16U Opcode = 0x33
	OpI64Load32S Opcode = 0x34
	OpI64Load32U Opcode = 0x35
	OpI32Store   Opcode = 0x36
	OpI64Store   Opcode = 0x37
	OpF32Store   Opcode = 0x38
	OpF64Store   Opcode = 0x39
	OpI32Store8  Opcode = 0x3A
	OpI32Store16 Opcode = 0x3B
	OpI64Store8  Opcode = 0x3C
	OpI64Store16 Opcode = 0x3D
	OpI64Store32 Opcode = 0x3E
	OpMemorySize Opcode = 0x3F
	OpMemoryGrow Opcode = 0x40
)

// Numeric constants and scalar operators.
const (
	OpI32Const Opcode = 0x41
	OpI64Const Opcode = 0x42
	OpF32Const Opcode = 0x43
	OpF64Const Opcode = 0x44

	OpI32Eqz Opcode = 0x45
	OpI32Eq  Opcode = 0x46
	OpI32Ne  Opcode = 0x47
	OpI32LtS Opcode = 0x48
	OpI32LtU Opcode = 0x49
	OpI32GtS Opcode = 0x4A
	OpI32GtU Opcode = 0x4B
	OpI32LeS Opcode = 0x4C
	OpI32LeU Opcode = 0x4D
	OpI32GeS Opcode = 0x4E
	OpI32GeU Opcode = 0x4F

	OpI64Eqz Opcode = 0x50
	OpI64Eq  Opcode = 0x51
	OpI64Ne  Opcode = 0x52
	OpI64LtS Opcode = 0x53
	OpI64LtU Opcode = 0x54
	OpI64GtS Opcode = 0x55
	OpI64GtU Opcode = 0x56
	OpI64LeS Opcode = 0x57
	OpI64LeU Opcode = 0x58
	OpI64GeS Opcode = 0x59
	OpI64GeU Opcode = 0x5A

	OpF32Eq Opcode = 0x5B
	OpF32Ne Opcode = 0x5C
	OpF32Lt Opcode = 0x5D
	OpF32Gt Opcode = 0x5E
	OpF32Le Opcode = 0x5F
	OpF32Ge Opcode = 0x60

	OpF64Eq Opcode = 0x61
	OpF64Ne Opcode = 0x62
	OpF64Lt Opcode = 0x63
	OpF64Gt Opcode = 0x64
	OpF64Le Opcode = 0x65
	OpF64Ge Opcode = 0x66

	OpI32Clz    Opcode = 0x67
	OpI32Ctz    Opcode = 0x68
	OpI32Popcnt Opcode = 0x69
	OpI32Add    Opcode = 0x6A
	OpI32Sub    Opcode = 0x6B
	OpI32Mul    Opcode = 0x6C
	OpI32DivS   Opcode = 0x6D
	OpI32DivU   Opcode = 0x6E
	OpI32RemS   Opcode = 0x6F
	OpI32RemU   Opcode = 0x70
	OpI32And    Opcode = 0x71
	OpI32Or     Opcode = 0x72
	OpI32Xor    Opcode = 0x73
	OpI32Shl    Opcode = 0x74
	OpI32ShrS   Opcode = 0x75
	OpI32ShrU   Opcode = 0x76
	OpI32Rotl   Opcode = 0x77
	OpI32Rotr   Opcode = 0x78

	OpI64Clz    Opcode = 0x79
	OpI64Ctz    Opcode = 0x7A
	OpI64Popcnt Opcode = 0x7B
	OpI64Add    Opcode = 0x7C
	OpI64Sub    Opcode = 0x7D
	OpI64Mul    Opcode = 0x7E
	OpI64DivS   Opcode = 0x7F
	OpI64DivU   Opcode = 0x80
	OpI64RemS   Opcode = 0x81
	OpI64RemU   Opcode = 0x82
	OpI64And    Opcode = 0x83
	OpI64Or     Opcode = 0x84
	OpI64Xor    Opcode = 0x85
	OpI64Shl    Opcode = 0x86
	OpI64ShrS   Opcode = 0x87
	OpI64ShrU   Opcode = 0x88
	OpI64Rotl   Opcode = 0x89
	OpI64Rotr   Opcode = 0x8A

	OpF32Abs      Opcode = 0x8B
	OpF32Neg      Opcode = 0x8C
	OpF32Ceil     Opcode = 0x8D
	OpF32Floor    Opcode = 0x8E
	OpF32Trunc    Opcode = 0x8F
	OpF32Nearest  Opcode = 0x90
	OpF32Sqrt     Opcode = 0x91
	OpF32Add      Opcode = 0x92
	OpF32Sub      Opcode = 0x93
	OpF32Mul      Opcode = 0x94
	OpF32Div      Opcode = 0x95
	OpF32Min      Opcode = 0x96
	OpF32Max      Opcode = 0x97
	OpF32Copysign Opcode = 0x98

	OpF64Abs      Opcode = 0x99
	OpF64Neg      Opcode = 0x9A
	OpF64Ceil     Opcode = 0x9B
	OpF64Floor    Opcode = 0x9C
	OpF64Trunc    Opcode = 0x9D
	OpF64Nearest  Opcode = 0x9E
	OpF64Sqrt     Opcode = 0x9F
	OpF64Add      Opcode = 0xA0
	OpF64Sub      Opcode = 0xA1
	OpF64Mul      Opcode = 0xA2
	OpF64Div      Opcode = 0xA3
	OpF64Min      Opcode = 0xA4
	OpF64Max      Opcode = 0xA5
	OpF64Copysign Opcode = 0xA6

	OpI32WrapI64        Opcode = 0xA7
	OpI32TruncF32S      Opcode = 0xA8
	OpI32TruncF32U      Opcode = 0xA9
	OpI32TruncF64S      Opcode = 0xAA
	OpI32TruncF64U      Opcode = 0xAB
	OpI64ExtendI32S     Opcode = 0xAC
	OpI64ExtendI32U     Opcode = 0xAD
	OpI64TruncF32S      Opcode = 0xAE
	OpI64TruncF32U      Opcode = 0xAF
	OpI64TruncF64S      Opcode = 0xB0
	OpI64TruncF64U      Opcode = 0xB1
	OpF32ConvertI32S    Opcode = 0xB2
	OpF32ConvertI32U    Opcode = 0xB3
	OpF32ConvertI64S    Opcode = 0xB4
	OpF32ConvertI64U    Opcode = 0xB5
	OpF32DemoteF64      Opcode = 0xB6
	OpF64ConvertI32S    Opcode = 0xB7
	OpF64ConvertI32U    Opcode = 0xB8
	OpF64ConvertI64S    Opcode = 0xB9
	OpF64ConvertI64U    Opcode = 0xBA
	OpF64PromoteF32     Opcode = 0xBB
	OpI32ReinterpretF32 Opcode = 0xBC
	OpI64ReinterpretF64 Opcode = 0xBD
	OpF32ReinterpretI32 Opcode = 0xBE
	OpF64ReinterpretI64 Opcode = 0xBF

	OpI32Extend8S  Opcode = 0xC0
	OpI32Extend16S Opcode = 0xC1
	OpI64Extend8S  Opcode = 0xC2
	OpI64Extend16S Opcode = 0xC3
	OpI64Extend32S Opcode = 0xC4
)

// 0xFC-prefixed secondary opcodes: saturating truncation and bulk memory/table.
const (
	OpI32TruncSatF32S Opcode = fcBase + 0
	OpI32TruncSatF32U Opcode = fcBase + 1
	OpI32TruncSatF64S Opcode = fcBase + 2
	OpI32TruncSatF64U Opcode = fcBase + 3
	OpI64TruncSatF32S Opcode = fcBase + 4
	OpI64TruncSatF32U Opcode = fcBase + 5
	OpI64TruncSatF64S Opcode = fcBase + 6
	OpI64TruncSatF64U Opcode = fcBase + 7

	OpMemoryInit Opcode = fcBase + 8
	OpDataDrop   Opcode = fcBase + 9
	OpMemoryCopy Opcode = fcBase + 10
	OpMemoryFill Opcode = fcBase + 11
	OpTableInit  Opcode = fcBase + 12
	OpElemDrop   Opcode = fcBase + 13
	OpTableCopy  Opcode = fcBase + 14
	OpTableGrow  Opcode = fcBase + 15
	OpTableSize  Opcode = fcBase + 16
	OpTableFill  Opcode = fcBase + 17
)

// 0xFD-prefixed secondary opcodes: the v128 SIMD family. Numbering matches
// the WebAssembly SIMD proposal's canonical secondary-opcode assignment.
const (
	OpV128Load        Opcode = fdBase + 0
	OpV128Load8x8S    Opcode = fdBase + 1
	OpV128Load8x8U    Opcode = fdBase + 2
	OpV128Load16x4S   Opcode = fdBase + 3
	OpV128Load16x4U   Opcode = fdBase + 4
	OpV128Load32x2S   Opcode = fdBase + 5
	OpV128Load32x2U   Opcode = fdBase + 6
	OpV128Load8Splat  Opcode = fdBase + 7
	OpV128Load16Splat Opcode = fdBase + 8
	OpV128Load32Splat Opcode = fdBase + 9
	OpV128Load64Splat Opcode = fdBase + 10
	OpV128Store       Opcode = fdBase + 11
	OpV128Const       Opcode = fdBase + 12
	OpI8x16Shuffle    Opcode = fdBase + 13
	OpI8x16Swizzle    Opcode = fdBase + 14
	OpI8x16Splat      Opcode = fdBase + 15
	OpI16x8Splat      Opcode = fdBase + 16
	OpI32x4Splat      Opcode = fdBase + 17
	OpI64x2Splat      Opcode = fdBase + 18
	OpF32x4Splat      Opcode = fdBase + 19
	OpF64x2Splat      Opcode = fdBase + 20

	OpI8x16ExtractLaneS Opcode = fdBase + 21
	OpI8x16ExtractLaneU Opcode = fdBase + 22
	OpI8x16ReplaceLane  Opcode = fdBase + 23
	OpI16x8ExtractLaneS Opcode = fdBase + 24
	OpI16x8ExtractLaneU Opcode = fdBase + 25
	OpI16x8ReplaceLane  Opcode = fdBase + 26
	OpI32x4ExtractLane  Opcode = fdBase + 27
	OpI32x4ReplaceLane  Opcode = fdBase + 28
	OpI64x2ExtractLane  Opcode = fdBase + 29
	OpI64x2ReplaceLane  Opcode = fdBase + 30
	OpF32x4ExtractLane  Opcode = fdBase + 31
	OpF32x4ReplaceLane  Opcode = fdBase + 32
	OpF64x2ExtractLane  Opcode = fdBase + 33
	OpF64x2ReplaceLane  Opcode = fdBase + 34

	OpI8x16Eq  Opcode = fdBase + 35
	OpI8x16Ne  Opcode = fdBase + 36
	OpI8x16LtS Opcode = fdBase + 37
	OpI8x16LtU Opcode = fdBase + 38
	OpI8x16GtS Opcode = fdBase + 39
	OpI8x16GtU Opcode = fdBase + 40
	OpI8x16LeS Opcode = fdBase + 41
	OpI8x16LeU Opcode = fdBase + 42
	OpI8x16GeS Opcode = fdBase + 43
	OpI8x16GeU Opcode = fdBase + 44

	OpI16x8Eq  Opcode = fdBase + 45
	OpI16x8Ne  Opcode = fdBase + 46
	OpI16x8LtS Opcode = fdBase + 47
	OpI16x8LtU Opcode = fdBase + 48
	OpI16x8GtS Opcode = fdBase + 49
	OpI16x8GtU Opcode = fdBase + 50
	OpI16x8LeS Opcode = fdBase + 51
	OpI16x8LeU Opcode = fdBase + 52
	OpI16x8GeS Opcode = fdBase + 53
	OpI16x8GeU Opcode = fdBase + 54

	OpI32x4Eq  Opcode = fdBase + 55
	OpI32x4Ne  Opcode = fdBase + 56
	OpI32x4LtS Opcode = fdBase + 57
	OpI32x4LtU Opcode = fdBase + 58
	OpI32x4GtS Opcode = fdBase + 59
	OpI32x4GtU Opcode = fdBase + 60
	OpI32x4LeS Opcode = fdBase + 61
	OpI32x4LeU Opcode = fdBase + 62
	OpI32x4GeS Opcode = fdBase + 63
	OpI32x4GeU Opcode = fdBase + 64

	OpF32x4Eq Opcode = fdBase + 65
	OpF32x4Ne Opcode = fdBase + 66
	OpF32x4Lt Opcode = fdBase + 67
	OpF32x4Gt Opcode = fdBase + 68
	OpF32x4Le Opcode = fdBase + 69
	OpF32x4Ge Opcode = fdBase + 70

	OpF64x2Eq Opcode = fdBase + 71
	OpF64x2Ne Opcode = fdBase + 72
	OpF64x2Lt Opcode = fdBase + 73
	OpF64x2Gt Opcode = fdBase + 74
	OpF64x2Le Opcode = fdBase + 75
	OpF64x2Ge Opcode = fdBase + 76

	OpV128Not       Opcode = fdBase + 77
	OpV128And       Opcode = fdBase + 78
	OpV128Andnot    Opcode = fdBase + 79
	OpV128Or        Opcode = fdBase + 80
	OpV128Xor       Opcode = fdBase + 81
	OpV128Bitselect Opcode = fdBase + 82
	OpV128AnyTrue   Opcode = fdBase + 83

	OpV128Load8Lane  Opcode = fdBase + 84
	OpV128Load16Lane Opcode = fdBase + 85
	OpV128Load32Lane Opcode = fdBase + 86
	OpV128Load64Lane Opcode = fdBase + 87
	OpV128Store8Lane  Opcode = fdBase + 88
	OpV128Store16Lane Opcode = fdBase + 89
	OpV128Store32Lane Opcode = fdBase + 90
	OpV128Store64Lane Opcode = fdBase + 91
	OpV128Load32Zero Opcode = fdBase + 92
	OpV128Load64Zero Opcode = fdBase + 93

	OpF32x4DemoteF64x2Zero  Opcode = fdBase + 94
	OpF64x2PromoteLowF32x4  Opcode = fdBase + 95

	OpI8x16Abs          Opcode = fdBase + 96
	OpI8x16Neg          Opcode = fdBase + 97
	OpI8x16Popcnt       Opcode = fdBase + 98
	OpI8x16AllTrue      Opcode = fdBase + 99
	OpI8x16Bitmask      Opcode = fdBase + 100
	OpI8x16NarrowI16x8S Opcode = fdBase + 101
	OpI8x16NarrowI16x8U Opcode = fdBase + 102
	OpI8x16Shl          Opcode = fdBase + 103
	OpI8x16ShrS         Opcode = fdBase + 104
	OpI8x16ShrU         Opcode = fdBase + 105
	OpI8x16Add          Opcode = fdBase + 106
	OpI8x16AddSatS      Opcode = fdBase + 107
	OpI8x16AddSatU      Opcode = fdBase + 108
	OpI8x16Sub          Opcode = fdBase + 109
	OpI8x16SubSatS      Opcode = fdBase + 110
	OpI8x16SubSatU      Opcode = fdBase + 111
	OpI8x16MinS         Opcode = fdBase + 112
	OpI8x16MinU         Opcode = fdBase + 113
	OpI8x16MaxS         Opcode = fdBase + 114
	OpI8x16MaxU         Opcode = fdBase + 115
	OpI8x16AvgrU        Opcode = fdBase + 116

	OpI16x8ExtaddPairwiseI8x16S Opcode = fdBase + 117
	OpI16x8ExtaddPairwiseI8x16U Opcode = fdBase + 118
	OpI32x4ExtaddPairwiseI16x8S Opcode = fdBase + 119
	OpI32x4ExtaddPairwiseI16x8U Opcode = fdBase + 120

	OpI16x8Abs          Opcode = fdBase + 121
	OpI16x8Neg          Opcode = fdBase + 122
	OpI16x8Q15mulrSatS  Opcode = fdBase + 123
	OpI16x8AllTrue      Opcode = fdBase + 124
	OpI16x8Bitmask      Opcode = fdBase + 125
	OpI16x8NarrowI32x4S Opcode = fdBase + 126
	OpI16x8NarrowI32x4U Opcode = fdBase + 127
	OpI16x8ExtendLowI8x16S  Opcode = fdBase + 128
	OpI16x8ExtendHighI8x16S Opcode = fdBase + 129
	OpI16x8ExtendLowI8x16U  Opcode = fdBase + 130
	OpI16x8ExtendHighI8x16U Opcode = fdBase + 131
	OpI16x8Shl          Opcode = fdBase + 132
	OpI16x8ShrS         Opcode = fdBase + 133
	OpI16x8ShrU         Opcode = fdBase + 134
	OpI16x8Add          Opcode = fdBase + 135
	OpI16x8AddSatS      Opcode = fdBase + 136
	OpI16x8AddSatU      Opcode = fdBase + 137
	OpI16x8Sub          Opcode = fdBase + 138
	OpI16x8SubSatS      Opcode = fdBase + 139
	OpI16x8SubSatU      Opcode = fdBase + 140
	OpI16x8Mul          Opcode = fdBase + 141
	OpI16x8MinS         Opcode = fdBase + 142
	OpI16x8MinU         Opcode = fdBase + 143
	OpI16x8MaxS         Opcode = fdBase + 144
	OpI16x8MaxU         Opcode = fdBase + 145
	OpI16x8AvgrU        Opcode = fdBase + 146
	OpI16x8ExtmulLowI8x16S  Opcode = fdBase + 147
	OpI16x8ExtmulHighI8x16S Opcode = fdBase + 148
	OpI16x8ExtmulLowI8x16U  Opcode = fdBase + 149
	OpI16x8ExtmulHighI8x16U Opcode = fdBase + 150

	OpI32x4Abs     Opcode = fdBase + 151
	OpI32x4Neg     Opcode = fdBase + 152
	OpI32x4AllTrue Opcode = fdBase + 153
	OpI32x4Bitmask Opcode = fdBase + 154
	OpI32x4ExtendLowI16x8S  Opcode = fdBase + 155
	OpI32x4ExtendHighI16x8S Opcode = fdBase + 156
	OpI32x4ExtendLowI16x8U  Opcode = fdBase + 157
	OpI32x4ExtendHighI16x8U Opcode = fdBase + 158
	OpI32x4Shl     Opcode = fdBase + 159
	OpI32x4ShrS    Opcode = fdBase + 160
	OpI32x4ShrU    Opcode = fdBase + 161
	OpI32x4Add     Opcode = fdBase + 162
	OpI32x4Sub     Opcode = fdBase + 163
	OpI32x4Mul     Opcode = fdBase + 164
	OpI32x4MinS    Opcode = fdBase + 165
	OpI32x4MinU    Opcode = fdBase + 166
	OpI32x4MaxS    Opcode = fdBase + 167
	OpI32x4MaxU    Opcode = fdBase + 168
	OpI32x4DotI16x8S Opcode = fdBase + 169
	OpI32x4ExtmulLowI16x8S  Opcode = fdBase + 170
	OpI32x4ExtmulHighI16x8S Opcode = fdBase + 171
	OpI32x4ExtmulLowI16x8U  Opcode = fdBase + 172
	OpI32x4ExtmulHighI16x8U Opcode = fdBase + 173

	OpI64x2Abs     Opcode = fdBase + 174
	OpI64x2Neg     Opcode = fdBase + 175
	OpI64x2AllTrue Opcode = fdBase + 176
	OpI64x2Bitmask Opcode = fdBase + 177
	OpI64x2ExtendLowI32x4S  Opcode = fdBase + 178
	OpI64x2ExtendHighI32x4S Opcode = fdBase + 179
	OpI64x2ExtendLowI32x4U  Opcode = fdBase + 180
	OpI64x2ExtendHighI32x4U Opcode = fdBase + 181
	OpI64x2Shl     Opcode = fdBase + 182
	OpI64x2ShrS    Opcode = fdBase + 183
	OpI64x2ShrU    Opcode = fdBase + 184
	OpI64x2Add     Opcode = fdBase + 185
	OpI64x2Sub     Opcode = fdBase + 186
	OpI64x2Mul     Opcode = fdBase + 187
	OpI64x2Eq      Opcode = fdBase + 188
	OpI64x2Ne      Opcode = fdBase + 189
	OpI64x2LtS     Opcode = fdBase + 190
	OpI64x2GtS     Opcode = fdBase + 191
	OpI64x2LeS     Opcode = fdBase + 192
	OpI64x2GeS     Opcode = fdBase + 193
	OpI64x2ExtmulLowI32x4S  Opcode = fdBase + 194
	OpI64x2ExtmulHighI32x4S Opcode = fdBase + 195
	OpI64x2ExtmulLowI32x4U  Opcode = fdBase + 196
	OpI64x2ExtmulHighI32x4U Opcode = fdBase + 197

	OpF32x4Ceil    Opcode = fdBase + 198
	OpF32x4Floor   Opcode = fdBase + 199
	OpF32x4Trunc   Opcode = fdBase + 200
	OpF32x4Nearest Opcode = fdBase + 201
	OpF32x4Abs     Opcode = fdBase + 202
	OpF32x4Neg     Opcode = fdBase + 203
	OpF32x4Sqrt    Opcode = fdBase + 204
	OpF32x4Add     Opcode = fdBase + 205
	OpF32x4Sub     Opcode = fdBase + 206
	OpF32x4Mul     Opcode = fdBase + 207
	OpF32x4Div     Opcode = fdBase + 208
	OpF32x4Min     Opcode = fdBase + 209
	OpF32x4Max     Opcode = fdBase + 210
	OpF32x4Pmin    Opcode = fdBase + 211
	OpF32x4Pmax    Opcode = fdBase + 212

	OpF64x2Ceil    Opcode = fdBase + 213
	OpF64x2Floor   Opcode = fdBase + 214
	OpF64x2Trunc   Opcode = fdBase + 215
	OpF64x2Nearest Opcode = fdBase + 216
	OpF64x2Abs     Opcode = fdBase + 217
	OpF64x2Neg     Opcode = fdBase + 218
	OpF64x2Sqrt    Opcode = fdBase + 219
	OpF64x2Add     Opcode = fdBase + 220
	OpF64x2Sub     Opcode = fdBase + 221
	OpF64x2Mul     Opcode = fdBase + 222
	OpF64x2Div     Opcode = fdBase + 223
	OpF64x2Min     Opcode = fdBase + 224
	OpF64x2Max     Opcode = fdBase + 225
	OpF64x2Pmin    Opcode = fdBase + 226
	OpF64x2Pmax    Opcode = fdBase + 227

	OpI32x4TruncSatF32x4S  Opcode = fdBase + 228
	OpI32x4TruncSatF32x4U  Opcode = fdBase + 229
	OpF32x4ConvertI32x4S   Opcode = fdBase + 230
	OpF32x4ConvertI32x4U   Opcode = fdBase + 231
	OpI32x4TruncSatF64x2SZero Opcode = fdBase + 232
	OpI32x4TruncSatF64x2UZero Opcode = fdBase + 233
	OpF64x2ConvertLowI32x4S   Opcode = fdBase + 234
	OpF64x2ConvertLowI32x4U   Opcode = fdBase + 235
)
