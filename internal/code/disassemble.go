package code

import "fmt"

// Disassemble returns a one line description of the op for listing output.
// The description follows the decoding the engine applies at run time, except
// that continuation parameters can not be resolved for a single line.
func (o Op) Disassemble() string {
	if o.Addr == 0 {
		return disassembleZeroCode(o.Value)
	}

	addr := Addr(o.Addr)
	if addr.Type() != 0 {
		return disassembleConditional(addr, o.Value)
	}
	return disassembleNormal(addr, o.Value)
}

func disassembleZeroCode(value uint32) string {
	switch ZeroCodeOf(value) {
	case ZeroEnd:
		return "end of code"
	case ZeroNorm:
		if value == TerminatorValue {
			return "endif"
		}
		return "normal execution"
	case ZeroRow:
		return "row execution (unsupported)"
	case ZeroFillOrCopy:
		if value>>25&0x03 == 0x03 {
			return fmt.Sprintf("memory copy to %08x, next line holds source and count",
				value&^RegionSelectBits)
		}
		last := Addr(value)
		return fmt.Sprintf("fill and slide %s at %08x, next line holds value and strides",
			last.Size(), last.GCAddress())
	default:
		return fmt.Sprintf("unknown zero code %02x", value>>29)
	}
}

func disassembleConditional(addr Addr, value uint32) string {
	comparand := value
	switch addr.Size() {
	case Size8Bit:
		comparand &= 0xff
	case Size16Bit:
		comparand &= 0xffff
	}

	var skip string
	switch addr.Subtype() {
	case CondSkipOne:
		skip = "skip 1 line"
	case CondSkipTwo:
		skip = "skip 2 lines"
	case CondSkipUntil:
		skip = "skip until endif"
	case CondSkipAll:
		skip = "skip rest of code"
	}
	return fmt.Sprintf("if %s[%08x] %s %x fails: %s",
		addr.Size(), addr.GCAddress(), addr.Comparator(), comparand, skip)
}

func disassembleNormal(addr Addr, value uint32) string {
	target := addr.GCAddress()

	switch addr.Subtype() {
	case SubRAMWrite:
		switch addr.Size() {
		case Size8Bit:
			return fmt.Sprintf("write u8 %02x to %08x (repeat %d)", value&0xff, target, value>>8)
		case Size16Bit:
			return fmt.Sprintf("write u16 %04x to %08x (repeat %d)", value&0xffff, target, value>>16)
		default:
			return fmt.Sprintf("write u32 %08x to %08x", value, target)
		}

	case SubWritePointer:
		switch addr.Size() {
		case Size8Bit:
			return fmt.Sprintf("write u8 %02x via pointer at %08x offset %x", value&0xff, target, value>>8)
		case Size16Bit:
			return fmt.Sprintf("write u16 %04x via pointer at %08x offset %x", value&0xffff, target, value>>16<<1)
		default:
			return fmt.Sprintf("write u32 %08x via pointer at %08x", value, target)
		}

	case SubAddCode:
		return fmt.Sprintf("add %x to %s[%08x]", value, addr.Size(), target)

	default:
		return fmt.Sprintf("master code %08x (unsupported)", value)
	}
}
