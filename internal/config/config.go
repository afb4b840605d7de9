// Package config defines the CLI's option set and flag registration, in the
// stdlib flag.FlagSet style the pack uses throughout (no third-party CLI
// framework appears anywhere in the examples).
package config

import (
	"errors"
	"flag"
	"io"
)

// Defaults for flags not otherwise given on the command line.
const (
	DefaultFill    = 'x'
	DefaultVerbose = false
)

// Options is the parsed, validated set of CLI options (§6).
type Options struct {
	FindAll     bool
	AllowRepeat bool
	ImagePath   string
	TileFile    string
	Fill        byte
	Verbose     bool
}

// ErrConflictingMode is returned when both -A and -O are given.
var ErrConflictingMode = errors.New("-A/-all and -O/-one are mutually exclusive")

// Parse registers and parses args (typically os.Args[1:]) against a fresh
// FlagSet, returning a validated Options or an error -- it never calls
// os.Exit itself, leaving that to the caller via internal/fail, the same
// error-to-exit split internal/tileset and internal/image use.
func Parse(args []string, errOutput io.Writer) (*Options, error) {
	fs := flag.NewFlagSet("polyomino", flag.ContinueOnError)
	fs.SetOutput(errOutput)

	var all, one bool
	opts := &Options{Fill: DefaultFill, Verbose: DefaultVerbose}

	fs.BoolVar(&all, "A", false, "print all solutions")
	fs.BoolVar(&all, "all", false, "print all solutions")
	fs.BoolVar(&one, "O", false, "stop at the first solution (default)")
	fs.BoolVar(&one, "one", false, "stop at the first solution (default)")
	fs.BoolVar(&opts.AllowRepeat, "r", false, "allow repeated tile kinds")
	fs.BoolVar(&opts.AllowRepeat, "allow-repeat", false, "allow repeated tile kinds")
	fs.StringVar(&opts.ImagePath, "i", "", "input image file (default stdin)")
	fs.StringVar(&opts.TileFile, "b", "", "tile file (default the built-in pentomino set)")
	fs.BoolVar(&opts.Verbose, "v", DefaultVerbose, "enable structured diagnostics on stderr")
	fs.BoolVar(&opts.Verbose, "verbose", DefaultVerbose, "enable structured diagnostics on stderr")

	var fill string
	fs.StringVar(&fill, "w", string(DefaultFill), "fill character marking an image cell")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if all && one {
		return nil, ErrConflictingMode
	}
	opts.FindAll = all

	if len(fill) > 0 {
		opts.Fill = fill[0]
	}

	return opts, nil
}
