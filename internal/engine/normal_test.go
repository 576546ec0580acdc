package engine

import (
	"math"
	"testing"

	"github.com/retroenv/archeat/internal/code"
	"github.com/retroenv/retrogolib/assert"
)

func TestRAMWrite8BitRepeat(t *testing.T) {
	e, ram := newTestEngine(t)

	// repeat count 2 fills three consecutive bytes
	err := runOps(e, code.Op{Addr: 0x00001000, Value: 0x00000241})
	assert.NoError(t, err)
	assert.Equal(t, uint8(0x41), ram.ReadU8(0x80001000))
	assert.Equal(t, uint8(0x41), ram.ReadU8(0x80001001))
	assert.Equal(t, uint8(0x41), ram.ReadU8(0x80001002))
	assert.Equal(t, uint8(0), ram.ReadU8(0x80001003))
}

func TestRAMWrite16BitRepeat(t *testing.T) {
	e, ram := newTestEngine(t)

	err := runOps(e, code.Op{Addr: 0x02001000, Value: 0x0001abcd})
	assert.NoError(t, err)
	assert.Equal(t, uint16(0xabcd), ram.ReadU16(0x80001000))
	assert.Equal(t, uint16(0xabcd), ram.ReadU16(0x80001002))
	assert.Equal(t, uint16(0), ram.ReadU16(0x80001004))
}

func TestRAMWrite32Bit(t *testing.T) {
	e, ram := newTestEngine(t)

	err := runOps(e, code.Op{Addr: 0x04001000, Value: 0xdeadbeef})
	assert.NoError(t, err)
	assert.Equal(t, uint32(0xdeadbeef), ram.ReadU32(0x80001000))
}

func TestWritePointer8Bit(t *testing.T) {
	e, ram := newTestEngine(t)
	ram.WriteU32(0x80001000, 0x80001100)

	// offset 8 from the pointer target
	err := runOps(e, code.Op{Addr: 0x40001000, Value: 0x00000841})
	assert.NoError(t, err)
	assert.Equal(t, uint8(0x41), ram.ReadU8(0x80001108))
}

func TestWritePointer16Bit(t *testing.T) {
	e, ram := newTestEngine(t)
	ram.WriteU32(0x80001000, 0x80001100)

	// the 16 bit offset counts halfwords
	err := runOps(e, code.Op{Addr: 0x42001000, Value: 0x0002abcd})
	assert.NoError(t, err)
	assert.Equal(t, uint16(0xabcd), ram.ReadU16(0x80001104))
}

func TestWritePointer32Bit(t *testing.T) {
	e, ram := newTestEngine(t)
	ram.WriteU32(0x80001000, 0x80001100)

	err := runOps(e, code.Op{Addr: 0x44001000, Value: 0xdeadbeef})
	assert.NoError(t, err)
	assert.Equal(t, uint32(0xdeadbeef), ram.ReadU32(0x80001100))
}

func TestAddCodeOp(t *testing.T) {
	e, ram := newTestEngine(t)

	ram.WriteU8(0x80001000, 0x40)
	err := runOps(e, code.Op{Addr: 0x80001000, Value: 0x00000001})
	assert.NoError(t, err)
	assert.Equal(t, uint8(0x41), ram.ReadU8(0x80001000))

	ram.WriteU16(0x80001100, 0x00ff)
	err = runOps(e, code.Op{Addr: 0x82001100, Value: 0x00000002})
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x0101), ram.ReadU16(0x80001100))

	ram.WriteU32(0x80001200, 0xfffffffe)
	err = runOps(e, code.Op{Addr: 0x84001200, Value: 0x00000003})
	assert.NoError(t, err)
	assert.Equal(t, uint32(0x00000001), ram.ReadU32(0x80001200))
}

func TestAddCodeFloat(t *testing.T) {
	e, ram := newTestEngine(t)

	// 1.5 plus an integer increment of 2 gives 3.5
	ram.WriteU32(0x80001000, math.Float32bits(1.5))
	err := runOps(e, code.Op{Addr: 0x86001000, Value: 0x00000002})
	assert.NoError(t, err)
	assert.Equal(t, math.Float32bits(3.5), ram.ReadU32(0x80001000))
}
