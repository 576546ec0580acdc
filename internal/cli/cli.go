// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/retroenv/archeat/internal/options"
)

// ParseFlags parses command line flags and returns the program options
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts options.Program
	base := readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.Global == "") {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}
	if len(args) > 0 {
		opts.Local = args[0]
	}

	if err := normalizeOptions(&opts, *base); err != nil {
		return opts, err
	}

	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: archeat [options] <local code file>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after the code file, please pass the code file as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program, base string) error {
	value, err := strconv.ParseUint(strings.TrimPrefix(strings.ToLower(base), "0x"), 16, 32)
	if err != nil {
		return fmt.Errorf("invalid base address %s: %w", base, err)
	}
	opts.Base = uint32(value)

	if opts.Passes < 1 {
		return fmt.Errorf("pass count must be at least 1, got %d", opts.Passes)
	}

	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) *string {
	flags.StringVar(&opts.Global, "g", "", "name of the global code file")
	flags.StringVar(&opts.Output, "o", "", "name of the output file, printed on console if no name given")
	flags.StringVar(&opts.Apply, "apply", "", "name of a raw memory image to apply the active codes to")
	flags.IntVar(&opts.Passes, "passes", 1, "number of engine passes to run over the memory image")
	flags.StringVar(&opts.Enable, "enable", "", "comma separated code names to activate, overriding the enabled section")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
	return flags.String("base", "80000000", "base address of the memory image in hex")
}
