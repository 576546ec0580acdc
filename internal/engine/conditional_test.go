package engine

import (
	"errors"
	"testing"

	"github.com/retroenv/archeat/internal/code"
	"github.com/retroenv/retrogolib/assert"
)

// condPasses runs a conditional op followed by a write and reports whether
// the write executed.
func condPasses(t *testing.T, cond code.Op) bool {
	t.Helper()
	e, ram := newTestEngine(t)
	ram.WriteU8(0x80001000, 5)

	err := runOps(e,
		cond,
		code.Op{Addr: 0x00001800, Value: 0x00000041},
	)
	assert.NoError(t, err)
	return ram.ReadU8(0x80001800) == 0x41
}

func TestComparators(t *testing.T) {
	// memory holds the 8 bit value 5 at 80001000
	tests := []struct {
		name string
		op   code.Op
		want bool
	}{
		{"equal true", code.Op{Addr: 0x08001000, Value: 0x00000005}, true},
		{"equal false", code.Op{Addr: 0x08001000, Value: 0x00000006}, false},
		{"not equal", code.Op{Addr: 0x10001000, Value: 0x00000006}, true},
		{"less signed", code.Op{Addr: 0x18001000, Value: 0x00000007}, true},
		{"less signed false", code.Op{Addr: 0x18001000, Value: 0x00000003}, false},
		{"greater signed", code.Op{Addr: 0x20001000, Value: 0x00000003}, true},
		{"less unsigned", code.Op{Addr: 0x28001000, Value: 0x00000007}, true},
		{"greater unsigned", code.Op{Addr: 0x30001000, Value: 0x00000003}, true},
		{"and true", code.Op{Addr: 0x38001000, Value: 0x00000004}, true},
		{"and false", code.Op{Addr: 0x38001000, Value: 0x00000002}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, condPasses(t, tt.op))
		})
	}
}

func TestSignedVersusUnsigned(t *testing.T) {
	e, ram := newTestEngine(t)
	ram.WriteU32(0x80001000, 0xffffffff)

	// as a signed word the value is -1 and below zero
	err := runOps(e,
		code.Op{Addr: 0x1c001000, Value: 0x00000000},
		code.Op{Addr: 0x00001800, Value: 0x00000041},
	)
	assert.NoError(t, err)
	assert.Equal(t, uint8(0x41), ram.ReadU8(0x80001800))

	// as an unsigned word it is the maximum and never below zero
	err = runOps(e,
		code.Op{Addr: 0x2c001000, Value: 0x00000000},
		code.Op{Addr: 0x00001804, Value: 0x00000041},
	)
	assert.NoError(t, err)
	assert.Equal(t, uint8(0), ram.ReadU8(0x80001804))
}

func TestComparandMasking(t *testing.T) {
	e, ram := newTestEngine(t)
	ram.WriteU16(0x80001000, 0x1234)

	// the high half of the value is ignored for the 16 bit width
	err := runOps(e,
		code.Op{Addr: 0x0a001000, Value: 0xffff1234},
		code.Op{Addr: 0x00001800, Value: 0x00000041},
	)
	assert.NoError(t, err)
	assert.Equal(t, uint8(0x41), ram.ReadU8(0x80001800))
}

func TestCompareInvalidComparator(t *testing.T) {
	_, err := compare(1, 2, code.Comparator(0))
	assert.True(t, errors.Is(err, ErrInvalidComparator))
}
