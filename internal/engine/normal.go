package engine

import (
	"fmt"
	"math"

	"github.com/retroenv/archeat/internal/code"
)

// normalCode dispatches a type 0 code on its subtype.
func (e *Engine) normalCode(addr code.Addr, data uint32) error {
	switch addr.Subtype() {
	case code.SubRAMWrite:
		return e.ramWriteAndFill(addr, data)
	case code.SubWritePointer:
		return e.writeToPointer(addr, data)
	case code.SubAddCode:
		return e.addCode(addr, data)
	case code.SubMasterCode:
		// would patch the cheat device's own control structures
		return fmt.Errorf("%w: master code", ErrUnsupported)
	default:
		return fmt.Errorf("%w: normal code subtype %02x", ErrInvalidSubtype, addr.Subtype())
	}
}

// ramWriteAndFill writes the value at the target address. For 8 and 16 bit
// widths the high bits of the value carry a repeat count and consecutive
// elements are filled.
func (e *Engine) ramWriteAndFill(addr code.Addr, data uint32) error {
	target := addr.GCAddress()
	e.logf("ram write and fill: address %08x size %s", target, addr.Size())

	switch addr.Size() {
	case code.Size8Bit:
		repeat := data >> 8
		for i := uint32(0); i <= repeat; i++ {
			e.mem.WriteU8(target+i, uint8(data))
			e.logf("wrote %02x to %08x", uint8(data), target+i)
		}

	case code.Size16Bit:
		repeat := data >> 16
		for i := uint32(0); i <= repeat; i++ {
			e.mem.WriteU16(target+i*2, uint16(data))
			e.logf("wrote %04x to %08x", uint16(data), target+i*2)
		}

	case code.Size32Bit, code.Size32BitFloat:
		e.mem.WriteU32(target, data)
		e.logf("wrote %08x to %08x", data, target)

	default:
		return fmt.Errorf("%w: %d in ram write and fill", ErrInvalidSize, addr.Size())
	}
	return nil
}

// writeToPointer reads a pointer from the target address and writes the
// value behind it. For 8 and 16 bit widths the high bits of the value carry
// a byte offset from the pointer, the 16 bit offset counts halfwords.
func (e *Engine) writeToPointer(addr code.Addr, data uint32) error {
	target := addr.GCAddress()
	ptr := e.mem.ReadU32(target)
	e.logf("write to pointer: address %08x pointer %08x size %s", target, ptr, addr.Size())

	switch addr.Size() {
	case code.Size8Bit:
		offset := data >> 8
		e.mem.WriteU8(ptr+offset, uint8(data))
		e.logf("wrote %02x to %08x", uint8(data), ptr+offset)

	case code.Size16Bit:
		offset := data >> 16 << 1
		e.mem.WriteU16(ptr+offset, uint16(data))
		e.logf("wrote %04x to %08x", uint16(data), ptr+offset)

	case code.Size32Bit, code.Size32BitFloat:
		e.mem.WriteU32(ptr, data)
		e.logf("wrote %08x to %08x", data, ptr)

	default:
		return fmt.Errorf("%w: %d in write to pointer", ErrInvalidSize, addr.Size())
	}
	return nil
}

// addCode increments the value at the target address. The float width
// reinterprets the stored word as an IEEE 754 single and adds the value as a
// float magnitude.
func (e *Engine) addCode(addr code.Addr, data uint32) error {
	target := addr.GCAddress()
	e.logf("add code: address %08x size %s", target, addr.Size())

	switch addr.Size() {
	case code.Size8Bit:
		e.mem.WriteU8(target, e.mem.ReadU8(target)+uint8(data))
		e.logf("wrote %02x to %08x", e.mem.ReadU8(target), target)

	case code.Size16Bit:
		e.mem.WriteU16(target, e.mem.ReadU16(target)+uint16(data))
		e.logf("wrote %04x to %08x", e.mem.ReadU16(target), target)

	case code.Size32Bit:
		e.mem.WriteU32(target, e.mem.ReadU32(target)+data)
		e.logf("wrote %08x to %08x", e.mem.ReadU32(target), target)

	case code.Size32BitFloat:
		old := e.mem.ReadU32(target)
		sum := math.Float32frombits(old) + float32(data)
		newValue := math.Float32bits(sum)
		e.mem.WriteU32(target, newValue)
		e.logf("float add: old %08x increment %08x new %08x", old, data, newValue)

	default:
		return fmt.Errorf("%w: %d in add code", ErrInvalidSize, addr.Size())
	}
	return nil
}
