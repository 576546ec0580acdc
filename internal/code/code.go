// Package code defines the Action Replay code data model.
package code

// Op is a single code entry, a pair of 32-bit words. The first word doubles
// as the command word, see Addr for the bit field layout.
type Op struct {
	Addr  uint32
	Value uint32
}

// TerminatorValue is the value word of the "endif" line that ends a
// skip-until-terminator range.
const TerminatorValue = 0x40000000

// RegionSelectBits are cleared from a memory copy destination value.
const RegionSelectBits = 0x06000000

// IsTerminator reports whether the op is the "00000000 40000000" endif line.
func (o Op) IsTerminator() bool {
	return o.Addr == 0 && o.Value == TerminatorValue
}

// Code is a named list of ops parsed from a code file. Active and UserDefined
// are set at parse or construction time and never mutated by the engine.
// A stored code has at least one op.
type Code struct {
	Name        string
	Active      bool
	UserDefined bool
	Ops         []Op
}

// DataSize selects the width of a memory operation.
type DataSize uint32

const (
	Size8Bit DataSize = iota
	Size16Bit
	Size32Bit
	Size32BitFloat
)

func (s DataSize) String() string {
	switch s {
	case Size8Bit:
		return "u8"
	case Size16Bit:
		return "u16"
	case Size32Bit:
		return "u32"
	case Size32BitFloat:
		return "f32"
	default:
		return "invalid"
	}
}

// ZeroCode is the opcode of an op with address 0, encoded in the top 3 bits
// of the value word.
type ZeroCode uint32

const (
	ZeroEnd        ZeroCode = 0x00 // end of code
	ZeroNorm       ZeroCode = 0x02 // normal execution, register side effect not modeled
	ZeroRow        ZeroCode = 0x03 // execute all codes in the same row, unsupported
	ZeroFillOrCopy ZeroCode = 0x04 // fill & slide or memory copy continuation
)

// ZeroCodeOf extracts the zero opcode from a value word.
func ZeroCodeOf(value uint32) ZeroCode {
	return ZeroCode(value >> 29)
}

// Comparator of a conditional code, stored in the type field of the
// command word. Type 0 marks a normal (unconditional) code.
type Comparator uint32

const (
	CompareEqual Comparator = iota + 1
	CompareNotEqual
	CompareLessSigned
	CompareGreaterSigned
	CompareLessUnsigned
	CompareGreaterUnsigned
	CompareAnd // bitwise AND, true if any bit matches
)

func (c Comparator) String() string {
	switch c {
	case CompareEqual:
		return "=="
	case CompareNotEqual:
		return "!="
	case CompareLessSigned:
		return "<s"
	case CompareGreaterSigned:
		return ">s"
	case CompareLessUnsigned:
		return "<u"
	case CompareGreaterUnsigned:
		return ">u"
	case CompareAnd:
		return "&"
	default:
		return "??"
	}
}

// Conditional code subtypes, selecting how many lines a failed comparison
// skips.
const (
	CondSkipOne   = 0x00 // skip the next line
	CondSkipTwo   = 0x01 // skip the next two lines
	CondSkipUntil = 0x02 // skip until the terminator line
	CondSkipAll   = 0x03 // skip the rest of the code
)

// Normal code subtypes.
const (
	SubRAMWrite     = 0x00
	SubWritePointer = 0x01
	SubAddCode      = 0x02
	SubMasterCode   = 0x03 // master code & write to CCXXXXXX, unsupported
)
