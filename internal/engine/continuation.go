package engine

import (
	"fmt"

	"github.com/retroenv/archeat/internal/code"
)

// fillAndSlide writes a run of elements, advancing the address by a signed
// stride and the value by a signed increment each iteration. The triggering
// zero op's value selects width and start address, the parameter op supplies
// the start value (its raw address word, taken as a plain integer) and the
// strides.
func (e *Engine) fillAndSlide(contParam uint32, addr code.Addr, data uint32) error {
	last := code.Addr(contParam)
	target := last.GCAddress()
	size := last.Size()

	addrIncr := int32(int16(data))     // signed 16 bit address stride, scaled by width
	valIncr := int32(int8(data >> 24)) // signed 8 bit value increment
	writeNum := data >> 16 & 0xff

	val := uint32(addr)
	cur := target

	e.logf("fill and slide: address %08x size %s count %d addr incr %d val incr %d",
		target, size, writeNum, addrIncr, valIncr)

	switch size {
	case code.Size8Bit:
		for i := uint32(0); i < writeNum; i++ {
			e.mem.WriteU8(cur, uint8(val))
			e.logf("wrote %02x to %08x", uint8(val), cur)
			cur = uint32(int32(cur) + addrIncr)
			val = uint32(int32(val) + valIncr)
		}

	case code.Size16Bit:
		for i := uint32(0); i < writeNum; i++ {
			e.mem.WriteU16(cur, uint16(val))
			e.logf("wrote %04x to %08x", uint16(val), cur)
			cur = uint32(int32(cur) + addrIncr*2)
			val = uint32(int32(val) + valIncr)
		}

	case code.Size32Bit:
		for i := uint32(0); i < writeNum; i++ {
			e.mem.WriteU32(cur, val)
			e.logf("wrote %08x to %08x", val, cur)
			cur = uint32(int32(cur) + addrIncr*4)
			val = uint32(int32(val) + valIncr)
		}

	default:
		return fmt.Errorf("%w: %d in fill and slide", ErrInvalidSize, size)
	}
	return nil
}

// memoryCopy copies bytes between two addresses. The destination comes from
// the triggering zero op's value with the region select bits cleared, the
// source from the parameter op's target address. A nonzero high byte of the
// parameter value resolves both addresses as pointers first.
func (e *Engine) memoryCopy(contParam uint32, addr code.Addr, data uint32) error {
	dest := contParam &^ uint32(code.RegionSelectBits)
	src := addr.GCAddress()
	count := data & 0x7fff

	if data>>16&0xff != 0 {
		return fmt.Errorf("%w: memory copy value %08x", ErrInvalidContinuation, data)
	}

	e.logf("memory copy: dest %08x src %08x count %d", dest, src, count)

	if data>>24 != 0 {
		dest = e.mem.ReadU32(dest)
		src = e.mem.ReadU32(src)
		e.logf("resolved pointers: dest %08x src %08x", dest, src)
	}

	for i := uint32(0); i < count; i++ {
		b := e.mem.ReadU8(src + i)
		e.mem.WriteU8(dest+i, b)
		e.logf("wrote %02x to %08x", b, dest+i)
	}
	return nil
}
