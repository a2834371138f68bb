// Package options contains the program options.
package options

// Commands supported by the program.
const (
	Info     = "info"
	Header   = "header"
	Checksum = "checksum"
	Hexdump  = "hexdump"
	Compare  = "compare"
	Offsets  = "offsets"
)

// Commands lists all commands in the order they are shown in the usage.
var Commands = []string{Info, Header, Checksum, Hexdump, Compare, Offsets}

// DefaultCompareLimit is the maximum number of differences printed by compare.
const DefaultCompareLimit = 100

// Parameters contains positional file arguments.
type Parameters struct {
	Input   string // ROM file to inspect
	Compare string // second ROM file for the compare command
}

// Flags contains behavior options.
type Flags struct {
	Debug bool
	Quiet bool
}

// Dump contains the range options of the hexdump command.
type Dump struct {
	Offset int
	Length int
}

// Program options of the ROM tool.
type Program struct {
	Parameters
	Flags
	Dump

	Command string
	Limit   int // maximum number of compare entries to print
}

// New returns a new options instance with default options.
func New() Program {
	return Program{
		Dump: Dump{
			Length: 256,
		},
		Limit: DefaultCompareLimit,
	}
}
