// Package loader decodes and serializes textual Action Replay code lists.
package loader

import (
	"strconv"
	"strings"

	"github.com/retroenv/archeat/internal/code"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
)

// Loader decodes code lists from text lines.
type Loader struct {
	logger  *log.Logger
	decrypt DecryptFunc
}

// New creates a new code loader.
func New(logger *log.Logger, decrypt DecryptFunc) *Loader {
	return &Loader{
		logger:  logger,
		decrypt: decrypt,
	}
}

// Parse decodes the global and local code line sets into codes. Codes from
// both sources are kept, they are not deduplicated by name. The enabled lines
// mark active codes by "$name" entries. Codes from the local source are
// flagged as user defined. Malformed op lines are reported and dropped,
// they do not abort the parse.
func (l *Loader) Parse(globalLines, localLines, enabledLines []string) []code.Code {
	enabled := set.New[string]()
	for _, line := range enabledLines {
		line = strings.TrimSpace(line)
		if line != "" && line[0] == '$' {
			enabled.Add(line[1:])
		}
	}

	codes := l.parseSource(globalLines, false, enabled)
	codes = append(codes, l.parseSource(localLines, true, enabled)...)
	return codes
}

// parseSource decodes the lines of one source. Each source builds its codes
// independently, a code in progress at the end of the source is flushed.
func (l *Loader) parseSource(lines []string, userDefined bool, enabled set.Set[string]) []code.Code {
	var codes []code.Code
	var encrypted []string
	var current code.Code

	// flush finalizes the code in progress. Plain ops and a pending encrypted
	// block produce separate codes sharing the current name. Codes without
	// ops are never emitted.
	flush := func() {
		if len(current.Ops) > 0 {
			codes = append(codes, current)
			current.Ops = nil
		}
		if len(encrypted) == 0 {
			return
		}
		ops, err := l.decrypt(encrypted)
		encrypted = nil
		if err != nil {
			l.logger.Error("Decrypting code block failed",
				log.String("code", current.Name), log.Err(err))
			return
		}
		if len(ops) > 0 {
			current.Ops = ops
			codes = append(codes, current)
			current.Ops = nil
		}
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if line[0] == '$' {
			flush()
			current.Name = line[1:]
			current.Active = enabled.Contains(current.Name)
			current.UserDefined = userDefined
			continue
		}

		op, isPlain, err := parsePlainOp(line)
		if err != nil {
			l.logger.Error("Invalid code line",
				log.String("code", current.Name),
				log.String("line", line),
				log.Err(err))
			continue
		}
		if isPlain {
			current.Ops = append(current.Ops, op)
			continue
		}

		if block, ok := parseEncryptedLine(line); ok {
			// decryption works on whole blocks, consecutive encrypted lines
			// accumulate until a code boundary flushes them
			encrypted = append(encrypted, block)
		}
		// lines matching no grammar rule are ignored
	}

	flush()
	return codes
}

// parsePlainOp parses a decrypted op line of two 8 digit hex words. Lines of
// a different shape are not plain op lines, lines of the right shape with
// invalid hex digits are an error.
func parsePlainOp(line string) (code.Op, bool, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 || len(fields[0]) != 8 || len(fields[1]) != 8 {
		return code.Op{}, false, nil
	}

	addr, err := strconv.ParseUint(fields[0], 16, 32)
	if err != nil {
		return code.Op{}, false, err
	}
	value, err := strconv.ParseUint(fields[1], 16, 32)
	if err != nil {
		return code.Op{}, false, err
	}

	return code.Op{Addr: uint32(addr), Value: uint32(value)}, true, nil
}

// parseEncryptedLine matches an encrypted op line of three dash separated hex
// groups of 4, 4 and 5 digits and returns the concatenated block.
func parseEncryptedLine(line string) (string, bool) {
	pieces := strings.Split(line, "-")
	if len(pieces) != 3 || len(pieces[0]) != 4 || len(pieces[1]) != 4 || len(pieces[2]) != 5 {
		return "", false
	}
	return pieces[0] + pieces[1] + pieces[2], true
}
