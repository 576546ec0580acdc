package memory

import "encoding/binary"

// RAM is a flat big-endian memory block starting at a base address. It backs
// the image applier and tests, it is not an emulation of the real memory map.
// Accesses outside the block are dropped, reads return zero.
type RAM struct {
	base uint32
	data []byte
}

// NewRAM creates a zero filled memory block of the given size.
func NewRAM(base uint32, size int) *RAM {
	return &RAM{
		base: base,
		data: make([]byte, size),
	}
}

// NewRAMWithData creates a memory block backed by the passed buffer,
// taking ownership of it.
func NewRAMWithData(base uint32, data []byte) *RAM {
	return &RAM{
		base: base,
		data: data,
	}
}

// Base returns the base address of the block.
func (r *RAM) Base() uint32 {
	return r.base
}

// Data returns the backing buffer.
func (r *RAM) Data() []byte {
	return r.data
}

// offset translates an address to a buffer offset, reporting whether the
// whole access lies inside the block.
func (r *RAM) offset(addr uint32, size int) (int, bool) {
	if addr < r.base {
		return 0, false
	}
	off := int(addr - r.base)
	if off+size > len(r.data) {
		return 0, false
	}
	return off, true
}

func (r *RAM) ReadU8(addr uint32) uint8 {
	off, ok := r.offset(addr, 1)
	if !ok {
		return 0
	}
	return r.data[off]
}

func (r *RAM) ReadU16(addr uint32) uint16 {
	off, ok := r.offset(addr, 2)
	if !ok {
		return 0
	}
	return binary.BigEndian.Uint16(r.data[off:])
}

func (r *RAM) ReadU32(addr uint32) uint32 {
	off, ok := r.offset(addr, 4)
	if !ok {
		return 0
	}
	return binary.BigEndian.Uint32(r.data[off:])
}

func (r *RAM) WriteU8(addr uint32, value uint8) {
	off, ok := r.offset(addr, 1)
	if !ok {
		return
	}
	r.data[off] = value
}

func (r *RAM) WriteU16(addr uint32, value uint16) {
	off, ok := r.offset(addr, 2)
	if !ok {
		return
	}
	binary.BigEndian.PutUint16(r.data[off:], value)
}

func (r *RAM) WriteU32(addr uint32, value uint32) {
	off, ok := r.offset(addr, 4)
	if !ok {
		return
	}
	binary.BigEndian.PutUint32(r.data[off:], value)
}
