// Package options contains the program options.
package options

// Program options of the cheat code tool.
type Program struct {
	Global string // global code file
	Local  string // local code file holding user defined codes
	Output string // output file name, printed on console if empty

	Apply  string // raw memory image to apply the active codes to
	Base   uint32 // base address of the memory image
	Passes int    // number of engine passes to run over the image

	Enable string // comma separated code names, overrides the enabled section

	Debug bool
	Quiet bool
}
