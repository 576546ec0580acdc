package code

// Addr is an immutable view of an op's command word. The word packs, from the
// low bits up: the target address (25 bits), the data size (2 bits), the code
// type (3 bits) and the subtype (2 bits). All accessors are computed with
// masks and shifts.
type Addr uint32

const (
	addressMask    = 0x01ffffff
	addressHighBit = 0x80000000
)

// GCAddress returns the real target address, the low 25 bits with the fixed
// high bit set.
func (a Addr) GCAddress() uint32 {
	return uint32(a)&addressMask | addressHighBit
}

// Size returns the width of the memory operation.
func (a Addr) Size() DataSize {
	return DataSize(uint32(a) >> 25 & 0x03)
}

// Type returns the code type. 0 is a normal code, 1-7 select the comparator
// of a conditional code.
func (a Addr) Type() uint32 {
	return uint32(a) >> 27 & 0x07
}

// Subtype returns the subtype. Its meaning depends on the code type: the
// operation of a normal code or the skip width of a conditional code.
func (a Addr) Subtype() uint32 {
	return uint32(a) >> 30 & 0x03
}

// Comparator returns the comparator of a conditional code.
func (a Addr) Comparator() Comparator {
	return Comparator(a.Type())
}
