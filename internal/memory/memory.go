// Package memory defines the target address space the engine writes to.
package memory

// Accessor reads and writes the target memory. Addresses are absolute target
// addresses, the engine resolves code addresses before calling. Accessor
// implementations must not call back into the engine, the engine holds its
// store lock while accessing memory.
type Accessor interface {
	ReadU8(addr uint32) uint8
	ReadU16(addr uint32) uint16
	ReadU32(addr uint32) uint32
	WriteU8(addr uint32, value uint8)
	WriteU16(addr uint32, value uint16)
	WriteU32(addr uint32, value uint32)
}
