package engine

import (
	"fmt"

	"github.com/retroenv/archeat/internal/code"
)

// conditionalCode compares the current memory value at the target address
// against the op value. A failed comparison returns the skip state selected
// by the subtype, a successful one leaves skipping off.
func (e *Engine) conditionalCode(addr code.Addr, data uint32) (skipState, int, error) {
	target := addr.GCAddress()

	var current, comparand uint32
	switch addr.Size() {
	case code.Size8Bit:
		current = uint32(e.mem.ReadU8(target))
		comparand = data & 0xff
	case code.Size16Bit:
		current = uint32(e.mem.ReadU16(target))
		comparand = data & 0xffff
	case code.Size32Bit, code.Size32BitFloat:
		// the float width compares raw bits
		current = e.mem.ReadU32(target)
		comparand = data
	default:
		return skipNone, 0, fmt.Errorf("%w: %d in conditional code", ErrInvalidSize, addr.Size())
	}

	result, err := compare(current, comparand, addr.Comparator())
	if err != nil {
		return skipNone, 0, err
	}
	e.logf("compared %s[%08x]=%08x %s %08x: %t",
		addr.Size(), target, current, addr.Comparator(), comparand, result)
	if result {
		return skipNone, 0, nil
	}

	switch addr.Subtype() {
	case code.CondSkipOne, code.CondSkipTwo:
		return skipLines, int(addr.Subtype()) + 1, nil
	case code.CondSkipUntil:
		return skipUntilTerminator, 0, nil
	case code.CondSkipAll:
		return skipToEnd, 0, nil
	default:
		return skipNone, 0, fmt.Errorf("%w: conditional subtype %02x", ErrInvalidSubtype, addr.Subtype())
	}
}

func compare(current, comparand uint32, cmp code.Comparator) (bool, error) {
	switch cmp {
	case code.CompareEqual:
		return current == comparand, nil
	case code.CompareNotEqual:
		return current != comparand, nil
	case code.CompareLessSigned:
		return int32(current) < int32(comparand), nil
	case code.CompareGreaterSigned:
		return int32(current) > int32(comparand), nil
	case code.CompareLessUnsigned:
		return current < comparand, nil
	case code.CompareGreaterUnsigned:
		return current > comparand, nil
	case code.CompareAnd:
		return current&comparand != 0, nil
	default:
		return false, fmt.Errorf("%w: %02x", ErrInvalidComparator, uint32(cmp))
	}
}
