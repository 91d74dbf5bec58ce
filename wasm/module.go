package wasm

// Magic is the 4-byte '\0asm' header.
const Magic uint32 = 0x6D736100

// Version is the WebAssembly binary format version this decoder accepts.
const Version uint32 = 0x1

// Section ids, in the order WebAssembly 2.0 requires non-custom sections
// to appear.
const (
	SecCustom    byte = 0
	SecType      byte = 1
	SecImport    byte = 2
	SecFunction  byte = 3
	SecTable     byte = 4
	SecMemory    byte = 5
	SecGlobal    byte = 6
	SecExport    byte = 7
	SecStart     byte = 8
	SecElement   byte = 9
	SecCode      byte = 10
	SecData      byte = 11
	SecDataCount byte = 12
)

// ExternKind tags what an Import or Export refers to.
type ExternKind byte

const (
	ExternFunc   ExternKind = 0x00
	ExternTable  ExternKind = 0x01
	ExternMemory ExternKind = 0x02
	ExternGlobal ExternKind = 0x03
)

// Import is one entry of the import section.
type Import struct {
	Module string
	Field  string
	Kind   ExternKind

	// exactly one of the following is populated, selected by Kind
	FuncTypeIdx uint32
	Table       TableType
	Memory      MemType
	Global      GlobalType
}

// Export is one entry of the export section.
type Export struct {
	Name string
	Kind ExternKind
	Idx  uint32
}

// ElemMode distinguishes the three element segment modes introduced by the
// bulk-memory/reference-types proposals and carried into WebAssembly 2.0.
type ElemMode byte

const (
	ElemModeActive ElemMode = iota
	ElemModePassive
	ElemModeDeclarative
)

// Element is one entry of the element section.
type Element struct {
	Mode     ElemMode
	TableIdx uint32   // only meaningful when Mode == ElemModeActive
	Offset   Expr     // only meaningful when Mode == ElemModeActive
	Type     ValueType
	Init     []Expr // one init expr per element (func indices are const exprs)
}

// DataMode distinguishes active and passive data segments.
type DataMode byte

const (
	DataModeActive DataMode = iota
	DataModePassive
)

// Data is one entry of the data section.
type Data struct {
	Mode   DataMode
	MemIdx uint32 // only meaningful when Mode == DataModeActive
	Offset Expr   // only meaningful when Mode == DataModeActive
	Init   []byte
}

// Global is one entry of the global section.
type Global struct {
	Type GlobalType
	Init Expr
}

// LocalGroup is a run-length encoded group of same-typed locals.
type LocalGroup struct {
	Count     uint32
	ValueType ValueType
}

// Code is a function body: its compressed local declarations and its
// instruction stream.
type Code struct {
	Locals []LocalGroup
	Body   Expr
}

// Func combines a function's signature (via TypeIdx into Module.Types) with
// its locals and body, forming one entry of the function index space.
type Func struct {
	TypeIdx uint32
	Code    Code
}

// CustomSection is an opaque, order-preserved custom section.
type CustomSection struct {
	Name string
	Data []byte
}

// Module is the decoded module IR: the twelve standard sections plus the
// custom sections preserved in declaration order, and (populated last) a
// DataCount that Decode checks against the number of data segments.
type Module struct {
	Version uint32

	Types    []FuncType
	Imports  []Import
	FuncSec  []uint32 // TypeIdx per locally defined function
	Tables   []TableType
	Memories []MemType
	Globals  []Global
	Exports  []Export
	HasStart bool
	Start    uint32
	Elements []Element
	Codes    []Code
	Datas    []Data

	HasDataCount bool
	DataCount    uint32

	Customs []CustomSection

	// Funcs is the full function index space: imported functions (as
	// placeholders carrying only a type index) followed by locally
	// defined functions with their code attached. Populated by finalize().
	Funcs []Func

	// NumImportedFuncs/.../NumImportedGlobals let callers map an index
	// space position back to "imported" vs "local".
	NumImportedFuncs   int
	NumImportedTables  int
	NumImportedMems    int
	NumImportedGlobals int
}

// FuncTypeOf returns the signature of function index i in the combined
// (imported + local) function index space.
func (m *Module) FuncTypeOf(i uint32) (FuncType, bool) {
	if int(i) >= len(m.Funcs) {
		return FuncType{}, false
	}
	idx := m.Funcs[i].TypeIdx
	if int(idx) >= len(m.Types) {
		return FuncType{}, false
	}
	return m.Types[idx], true
}

// Finalize populates the derived Funcs index space and import counters.
// Decode calls this automatically; callers building a Module by hand
// (tests, programmatic assembly) must call it themselves before the
// module is instantiated.
func (m *Module) Finalize() {
	m.finalize()
}

// finalize populates the derived Funcs index space and import counters
// once every section has been decoded.
func (m *Module) finalize() {
	m.Funcs = nil
	for _, imp := range m.Imports {
		switch imp.Kind {
		case ExternFunc:
			m.Funcs = append(m.Funcs, Func{TypeIdx: imp.FuncTypeIdx})
			m.NumImportedFuncs++
		case ExternTable:
			m.NumImportedTables++
		case ExternMemory:
			m.NumImportedMems++
		case ExternGlobal:
			m.NumImportedGlobals++
		}
	}
	for i, typeIdx := range m.FuncSec {
		code := Code{}
		if i < len(m.Codes) {
			code = m.Codes[i]
		}
		m.Funcs = append(m.Funcs, Func{TypeIdx: typeIdx, Code: code})
	}
}
