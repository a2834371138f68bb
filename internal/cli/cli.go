// Package cli handles command line interface logic
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/retroenv/ctromutil/internal/options"
)

// ParseFlags parses the command line arguments of the process.
func ParseFlags() (options.Program, error) {
	return Parse(os.Args[1:])
}

// Parse parses global flags, the command name and the command arguments.
func Parse(args []string) (options.Program, error) {
	opts := options.New()

	flags := newFlagSet("ctromutil")
	readGlobalFlags(flags, &opts)
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return opts, &UsageError{flags: flags}
		}
		return opts, &UsageError{flags: flags, msg: err.Error()}
	}

	args = flags.Args()
	if len(args) == 0 {
		return opts, &UsageError{flags: flags}
	}
	opts.Command = strings.ToLower(args[0])

	if err := parseCommand(&opts, args[1:]); err != nil {
		var usageErr *UsageError
		if errors.As(err, &usageErr) && usageErr.flags == nil {
			usageErr.flags = flags
		}
		return opts, err
	}
	return opts, nil
}

// UsageError represents an error that should show usage information.
// An empty message means that usage was requested without an error.
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

// ShowUsage writes the usage text to the given writer.
func (e *UsageError) ShowUsage(w io.Writer) {
	fmt.Fprintf(w, "usage: ctromutil [options] <command> [arguments]\n\n")
	fmt.Fprintf(w, "commands:\n")
	fmt.Fprintf(w, "  info <rom>                                display ROM information\n")
	fmt.Fprintf(w, "  header <rom>                              display the internal ROM header\n")
	fmt.Fprintf(w, "  checksum <rom>                            verify the header checksum\n")
	fmt.Fprintf(w, "  hexdump <rom> [-offset O] [-length L]     hex dump a ROM section\n")
	fmt.Fprintf(w, "  compare <rom> <rom2> [-limit N]           compare two ROMs\n")
	fmt.Fprintf(w, "  offsets                                   print known data offsets\n\n")
	if e.flags != nil {
		fmt.Fprintf(w, "options:\n")
		e.flags.SetOutput(w)
		e.flags.PrintDefaults()
		e.flags.SetOutput(io.Discard)
	}
	fmt.Fprintln(w)
}

// ParseNumber parses a 0x prefixed hexadecimal or a decimal number.
func ParseNumber(s string) (int, error) {
	digits := strings.TrimSpace(s)
	base := 10
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		digits = digits[2:]
		base = 16
	}

	n, err := strconv.ParseInt(digits, base, 0)
	if err != nil {
		return 0, fmt.Errorf("invalid number '%s': %w", s, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("negative number %d not allowed", n)
	}
	return int(n), nil
}

func parseCommand(opts *options.Program, args []string) error {
	flags := newFlagSet(opts.Command)

	var offset, length string
	switch opts.Command {
	case options.Hexdump:
		flags.StringVar(&offset, "offset", "0x0", "start offset (hex or decimal)")
		flags.StringVar(&length, "length", "256", "number of bytes")
	case options.Compare:
		flags.IntVar(&opts.Limit, "limit", options.DefaultCompareLimit, "maximum number of differences to print")
	case options.Info, options.Header, options.Checksum, options.Offsets:
	default:
		return &UsageError{msg: fmt.Sprintf("unknown command '%s'", opts.Command)}
	}

	positional, err := parseInterleaved(flags, args)
	if err != nil {
		return &UsageError{flags: flags, msg: err.Error()}
	}

	if err := assignPositional(opts, positional); err != nil {
		return err
	}

	if opts.Command == options.Hexdump {
		if opts.Offset, err = ParseNumber(offset); err != nil {
			return fmt.Errorf("parsing offset: %w", err)
		}
		if opts.Length, err = ParseNumber(length); err != nil {
			return fmt.Errorf("parsing length: %w", err)
		}
	}
	if opts.Limit < 0 {
		return fmt.Errorf("invalid compare limit %d", opts.Limit)
	}
	return nil
}

// parseInterleaved parses flags that can appear before, between or after
// positional arguments.
func parseInterleaved(flags *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := flags.Parse(args); err != nil {
			return nil, err
		}
		if flags.NArg() == 0 {
			return positional, nil
		}
		positional = append(positional, flags.Arg(0))
		args = flags.Args()[1:]
	}
}

func assignPositional(opts *options.Program, positional []string) error {
	want := 1
	switch opts.Command {
	case options.Offsets:
		want = 0
	case options.Compare:
		want = 2
	}

	if len(positional) != want {
		return &UsageError{
			msg: fmt.Sprintf("command '%s' expects %d file argument(s) but got %d", opts.Command, want, len(positional)),
		}
	}

	if want > 0 {
		opts.Input = positional[0]
	}
	if want > 1 {
		opts.Compare = positional[1]
	}
	return nil
}

func newFlagSet(name string) *flag.FlagSet {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	return flags
}

func readGlobalFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
