package loader

import (
	"errors"

	"github.com/retroenv/archeat/internal/code"
)

// DecryptFunc decodes an ordered batch of concatenated encrypted code blocks
// into ops. The decryption algorithm is provided by the caller, the loader
// only accumulates blocks and flushes them at code boundaries.
type DecryptFunc func(blocks []string) ([]code.Op, error)

// ErrEncryptedUnsupported is returned by NoDecrypt for encrypted code blocks.
var ErrEncryptedUnsupported = errors.New("encrypted codes are not supported")

// NoDecrypt rejects encrypted code blocks.
func NoDecrypt([]string) ([]code.Op, error) {
	return nil, ErrEncryptedUnsupported
}
