package engine

import (
	"errors"
	"testing"

	"github.com/retroenv/archeat/internal/code"
	"github.com/retroenv/retrogolib/assert"
)

func TestFillAndSlide8Bit(t *testing.T) {
	e, ram := newTestEngine(t)

	// start value 0x41, three writes, address stride 1, value increment 1
	err := runOps(e,
		code.Op{Addr: 0x00000000, Value: 0x80001000},
		code.Op{Addr: 0x00000041, Value: 0x01030001},
	)
	assert.NoError(t, err)
	assert.Equal(t, uint8(0x41), ram.ReadU8(0x80001000))
	assert.Equal(t, uint8(0x42), ram.ReadU8(0x80001001))
	assert.Equal(t, uint8(0x43), ram.ReadU8(0x80001002))
	assert.Equal(t, uint8(0), ram.ReadU8(0x80001003))
}

func TestFillAndSlide8BitNegativeStride(t *testing.T) {
	e, ram := newTestEngine(t)

	// address stride -1 walks downwards
	err := runOps(e,
		code.Op{Addr: 0x00000000, Value: 0x80001002},
		code.Op{Addr: 0x00000041, Value: 0x0003ffff},
	)
	assert.NoError(t, err)
	assert.Equal(t, uint8(0x41), ram.ReadU8(0x80001002))
	assert.Equal(t, uint8(0x41), ram.ReadU8(0x80001001))
	assert.Equal(t, uint8(0x41), ram.ReadU8(0x80001000))
}

func TestFillAndSlide16Bit(t *testing.T) {
	e, ram := newTestEngine(t)

	// the address stride is scaled by the element width
	err := runOps(e,
		code.Op{Addr: 0x00000000, Value: 0x82001000},
		code.Op{Addr: 0x00001234, Value: 0x00020001},
	)
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x1234), ram.ReadU16(0x80001000))
	assert.Equal(t, uint16(0x1234), ram.ReadU16(0x80001002))
	assert.Equal(t, uint16(0), ram.ReadU16(0x80001004))
}

func TestFillAndSlide32Bit(t *testing.T) {
	e, ram := newTestEngine(t)

	err := runOps(e,
		code.Op{Addr: 0x00000000, Value: 0x84001000},
		code.Op{Addr: 0x00bc6140, Value: 0x00020001},
	)
	assert.NoError(t, err)
	assert.Equal(t, uint32(0x00bc6140), ram.ReadU32(0x80001000))
	assert.Equal(t, uint32(0x00bc6140), ram.ReadU32(0x80001004))
}

func TestFillAndSlideFloatInvalid(t *testing.T) {
	e, _ := newTestEngine(t)

	// the float width cannot be selected from a trigger value, the selector
	// bits overlap the memory copy encoding
	err := e.fillAndSlide(0x86001000, code.Addr(0x41), 0x00010001)
	assert.True(t, errors.Is(err, ErrInvalidSize))
}

func TestFillAndSlideWithoutParameterLine(t *testing.T) {
	e, ram := newTestEngine(t)

	// a trigger at the end of the code queues nothing executable
	err := runOps(e, code.Op{Addr: 0x00000000, Value: 0x80001000})
	assert.NoError(t, err)
	assert.Equal(t, uint8(0), ram.ReadU8(0x80001000))
}

func TestMemoryCopy(t *testing.T) {
	e, ram := newTestEngine(t)

	for i := uint32(0); i < 16; i++ {
		ram.WriteU8(0x80001000+i, uint8(i+1))
	}

	err := runOps(e,
		code.Op{Addr: 0x00000000, Value: 0x86001100},
		code.Op{Addr: 0x00001000, Value: 0x00000010},
	)
	assert.NoError(t, err)
	for i := uint32(0); i < 16; i++ {
		assert.Equal(t, uint8(i+1), ram.ReadU8(0x80001100+i))
	}
	assert.Equal(t, uint8(0), ram.ReadU8(0x80001110))
}

func TestMemoryCopyThroughPointers(t *testing.T) {
	e, ram := newTestEngine(t)

	ram.WriteU32(0x80001000, 0x80001020) // source pointer
	ram.WriteU32(0x80001100, 0x80001200) // destination pointer
	ram.WriteU32(0x80001020, 0xdeadbeef)

	err := runOps(e,
		code.Op{Addr: 0x00000000, Value: 0x86001100},
		code.Op{Addr: 0x00001000, Value: 0x01000004},
	)
	assert.NoError(t, err)
	assert.Equal(t, uint32(0xdeadbeef), ram.ReadU32(0x80001200))
}

func TestMemoryCopyInvalidValue(t *testing.T) {
	e, _ := newTestEngine(t)

	// a nonzero byte between the count and the pointer flag is rejected
	err := runOps(e,
		code.Op{Addr: 0x00000000, Value: 0x86001100},
		code.Op{Addr: 0x00001000, Value: 0x00010000},
	)
	assert.True(t, errors.Is(err, ErrInvalidContinuation))
}
