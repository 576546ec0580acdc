package loader

import (
	"fmt"

	"github.com/retroenv/archeat/internal/code"
)

// Save serializes codes for writing back to the local code file. The enabled
// lines mark every active code by name. Op bodies are written only for user
// defined codes, codes from the global source are represented by their
// enabled marker alone.
func Save(codes []code.Code) (codeLines, enabledLines []string) {
	for _, c := range codes {
		if c.Active {
			enabledLines = append(enabledLines, "$"+c.Name)
		}

		if !c.UserDefined {
			continue
		}
		codeLines = append(codeLines, "$"+c.Name)
		for _, op := range c.Ops {
			codeLines = append(codeLines, fmt.Sprintf("%08X %08X", op.Addr, op.Value))
		}
	}
	return codeLines, enabledLines
}
