package engine

import (
	"fmt"

	"github.com/retroenv/archeat/internal/code"
)

// skipState tracks conditional line skipping across ops of one run.
type skipState int

const (
	skipNone skipState = iota
	skipLines
	skipToEnd
	skipUntilTerminator
)

// continuation marks a queued macro operation whose parameters are taken
// from the next op.
type continuation int

const (
	contNone continuation = iota
	contFillAndSlide
	contMemoryCopy
)

// Codes targeting this raw address window would patch the cheat device's own
// control words, which the engine does not simulate.
const (
	selfModWindowStart = 0x00002000
	selfModWindowEnd   = 0x00003000
)

// runCodeLocked executes one code against memory. A nil return means the
// run succeeded, an error is fatal to this code only. Must be called with
// the store lock held.
func (e *Engine) runCodeLocked(c *code.Code) error {
	e.current = c
	defer func() { e.current = nil }()

	skip := skipNone
	skipCount := 0
	pending := contNone
	var contParam uint32

	e.logf("code name: %s", c.Name)
	e.logf("number of ops: %d", len(c.Ops))

	for _, op := range c.Ops {
		addr := code.Addr(op.Addr)
		data := op.Value

		// after a failed conditional, skip lines as requested
		switch skip {
		case skipLines:
			e.logf("line skipped")
			skipCount--
			if skipCount == 0 {
				skip = skipNone
			}
			continue
		case skipToEnd:
			e.logf("all lines skipped")
			return nil
		case skipUntilTerminator:
			e.logf("line skipped")
			if op.IsTerminator() {
				skip = skipNone
			}
			continue
		}

		e.logf("running op %08x %08x", op.Addr, op.Value)

		// a queued continuation consumes this op as its parameters
		switch pending {
		case contFillAndSlide:
			pending = contNone
			e.logf("doing fill and slide")
			if err := e.fillAndSlide(contParam, addr, data); err != nil {
				return err
			}
			continue
		case contMemoryCopy:
			pending = contNone
			e.logf("doing memory copy")
			if err := e.memoryCopy(contParam, addr, data); err != nil {
				return err
			}
			continue
		}

		if op.Addr >= selfModWindowStart && op.Addr < selfModWindowEnd {
			return ErrSelfModifying
		}

		if op.Addr == 0 {
			done, err := e.zeroCode(data, &pending, &contParam)
			if err != nil {
				return err
			}
			if done {
				return nil
			}
			continue
		}

		if addr.Type() == 0 {
			e.logf("doing normal code, subtype %02x", addr.Subtype())
			if err := e.normalCode(addr, data); err != nil {
				return err
			}
			continue
		}

		e.logf("doing conditional code, comparator %02x", addr.Type())
		s, n, err := e.conditionalCode(addr, data)
		if err != nil {
			return err
		}
		if s != skipNone {
			skip = s
			skipCount = n
		}
	}

	return nil
}

// zeroCode handles an op with address 0. The opcode lives in the top 3 bits
// of the value. Reports done when the code run ends successfully.
func (e *Engine) zeroCode(data uint32, pending *continuation, contParam *uint32) (bool, error) {
	zcode := code.ZeroCodeOf(data)
	e.logf("doing zero code %02x", zcode)

	switch zcode {
	case code.ZeroEnd:
		e.logf("zero code: end of code")
		return true, nil

	case code.ZeroNorm:
		// the register side effect of the real device is not modeled
		e.logf("zero code: normal execution (not modeled)")
		return false, nil

	case code.ZeroRow:
		return false, fmt.Errorf("%w: row execution zero code", ErrUnsupported)

	case code.ZeroFillOrCopy:
		if data>>25&0x03 == 0x03 {
			e.logf("zero code: memory copy")
			*pending = contMemoryCopy
		} else {
			e.logf("zero code: fill and slide")
			*pending = contFillAndSlide
		}
		*contParam = data
		return false, nil

	default:
		return false, fmt.Errorf("%w: %02x", ErrUnknownZeroCode, zcode)
	}
}
