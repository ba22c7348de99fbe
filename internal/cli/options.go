package cli

import (
	"flag"
	"fmt"
	"strings"

	"fastaparser/internal/cliutil"
	"fastaparser/internal/version"
	"fastaparser/internal/writers"
)

// Options holds all fastaparse CLI flags and arguments.
type Options struct {
	// Input
	Inputs     []string // FASTA paths; "-" = stdin
	ConfigPath string

	// Output
	Output string // text | json | jsonl | fasta
	Wrap   int    // fasta output wrap width; 0 = default, <0 = off
	Header bool   // true unless --no-header

	// Filtering
	Unique bool
	Count  bool

	// Misc
	Quiet   bool
	Version bool
}

// sliceValue appends each occurrence to a *[]string (for --input/-i).
type sliceValue struct{ dst *[]string }

func (s *sliceValue) String() string {
	if s.dst == nil {
		return ""
	}
	return fmt.Sprint(*s.dst)
}

func (s *sliceValue) Set(v string) error {
	*s.dst = append(*s.dst, v)
	return nil
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: streaming FASTA parser

Reads FASTA records from files or stdin and re-emits them as TSV, JSON,
JSONL or re-wrapped FASTA.

Version: %s

Usage: %s [flags] [file.fasta ... | -]
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returning an Options struct.
// Positionals (input paths, globs, or "-") may appear anywhere.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options

	inputs := &sliceValue{dst: &opt.Inputs}
	fs.Var(inputs, "input", "FASTA file (repeatable) or '-' for stdin")
	fs.Var(inputs, "i", "alias of --input")
	fs.StringVar(&opt.ConfigPath, "config", "", "JSON config file supplying flag defaults")

	fs.StringVar(&opt.Output, "output", "text", "output: "+strings.Join(writers.Formats, " | ")+" [text]")
	fs.StringVar(&opt.Output, "o", "text", "alias of --output")
	fs.IntVar(&opt.Wrap, "wrap", 0, "fasta output wrap width (0 = 70, negative = no wrap) [0]")
	noHeader := fs.Bool("no-header", false, "suppress the TSV header line [false]")

	fs.BoolVar(&opt.Unique, "unique", false, "drop records whose sequence was already seen [false]")
	fs.BoolVar(&opt.Count, "count", false, "print only the number of records parsed [false]")

	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress non-essential warnings [false]")
	fs.BoolVar(&opt.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&opt.Version, "v", false, "alias of --version")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	opt.Header = !*noHeader

	exp, err := cliutil.ExpandPositionals(posArgs)
	if err != nil {
		return opt, err
	}
	opt.Inputs = append(opt.Inputs, exp...)

	if err := Validate(&opt); err != nil {
		return opt, err
	}
	return opt, nil
}

// Validate applies defaults and rejects inconsistent options.
func Validate(o *Options) error {
	if len(o.Inputs) == 0 {
		o.Inputs = []string{"-"}
	}
	if !writers.ValidFormat(o.Output) {
		return fmt.Errorf("unknown output %q (want one of: %s)", o.Output, strings.Join(writers.Formats, ", "))
	}
	return nil
}
