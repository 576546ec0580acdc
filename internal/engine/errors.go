package engine

import "errors"

// Errors fatal to a single code run. The driver reports the failure with the
// code's name, evicts the code from the active set and leaves sibling codes
// untouched.
var (
	ErrInvalidSize         = errors.New("invalid data size")
	ErrInvalidSubtype      = errors.New("invalid subtype")
	ErrInvalidComparator   = errors.New("invalid comparator")
	ErrUnknownZeroCode     = errors.New("unknown zero code")
	ErrUnsupported         = errors.New("unsupported code feature")
	ErrSelfModifying       = errors.New("codes that modify the code engine itself are not supported")
	ErrInvalidContinuation = errors.New("invalid continuation format")
)
