// Package statapp implements the fastastat command: per-record stats
// (length, GC content, inferred alphabet, checksum) plus an aggregate
// summary, as a styled table, TSV or JSON.
package statapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"fastaparser/fasta"
	"fastaparser/internal/cliutil"
	"fastaparser/internal/jsonutil"
	"fastaparser/internal/stats"
	"fastaparser/internal/version"
	"fastaparser/internal/writers"
	"fastaparser/pkg/api"
)

// Options holds the fastastat flags.
type Options struct {
	Inputs      []string
	Output      string // table | tsv | json
	SummaryOnly bool
	Verbose     bool
	Version     bool
}

func newFlagSet(opt *Options) *flag.FlagSet {
	fs := flag.NewFlagSet("fastastat", flag.ContinueOnError)
	fs.StringVar(&opt.Output, "output", "table", "output: table | tsv | json [table]")
	fs.StringVar(&opt.Output, "o", "table", "alias of --output")
	fs.BoolVar(&opt.SummaryOnly, "summary", false, "print only the aggregate summary [false]")
	fs.BoolVar(&opt.Verbose, "verbose", false, "enable debug logging [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`fastastat: FASTA sequence statistics

Version: %s

Usage: fastastat [flags] [file.fasta ... | -]
`, version.Version)
		fs.PrintDefaults()
	}
	return fs
}

// RunContext drives one fastastat invocation. Exit codes mirror
// fastaparse: 0 ok, 1 no records, 2 usage/parse error, 3 write error.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	var opt Options
	fs := newFlagSet(&opt)
	fs.SetOutput(stderr)

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if opt.Version {
		_, _ = fmt.Fprintf(stdout, "fastastat version %s\n", version.Version)
		return 0
	}

	logger := log.NewWithOptions(stderr, log.Options{ReportTimestamp: false, Prefix: "fastastat"})
	if opt.Verbose {
		logger.SetLevel(log.DebugLevel)
	}

	exp, err := cliutil.ExpandPositionals(posArgs)
	if err != nil {
		logger.Error(err)
		return 2
	}
	opt.Inputs = append(opt.Inputs, exp...)
	if len(opt.Inputs) == 0 {
		opt.Inputs = []string{"-"}
	}
	switch opt.Output {
	case "table", "tsv", "json":
	default:
		logger.Errorf("unknown output %q (want table, tsv or json)", opt.Output)
		return 2
	}

	var (
		rows []api.RecordStatsV1
		sum  stats.Summary
	)
	for _, path := range opt.Inputs {
		logger.Debug("parsing", "path", path)
		err := fasta.StreamPathCtx(ctx, path, func(rec fasta.Record) error {
			rs := stats.Collect(rec)
			sum.Add(rs)
			if !opt.SummaryOnly {
				rows = append(rows, rs)
			}
			return nil
		})
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return 0
			}
			logger.Error(err, "path", path)
			return 2
		}
	}

	outw := bufio.NewWriter(stdout)
	if err := render(outw, opt, rows, &sum); err != nil && !writers.IsBrokenPipe(err) {
		logger.Error(err)
		return 3
	}
	if err := outw.Flush(); err != nil && !writers.IsBrokenPipe(err) {
		logger.Error(err)
		return 3
	}
	if sum.Records == 0 {
		logger.Warn("no records parsed")
		return 1
	}
	return 0
}

// Run is the background-context form used by tests.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func render(w io.Writer, opt Options, rows []api.RecordStatsV1, sum *stats.Summary) error {
	switch opt.Output {
	case "json":
		if opt.SummaryOnly {
			return jsonutil.EncodePretty(w, sum.ToAPI())
		}
		return jsonutil.EncodePretty(w, struct {
			Records []api.RecordStatsV1 `json:"records"`
			Summary api.SummaryV1       `json:"summary"`
		}{Records: rows, Summary: sum.ToAPI()})
	case "tsv":
		if !opt.SummaryOnly {
			if _, err := fmt.Fprintln(w, "id\tlength\tgc\ttype\tchecksum"); err != nil {
				return err
			}
			for _, r := range rows {
				if _, err := fmt.Fprintf(w, "%s\t%d\t%.4f\t%s\t%s\n", r.ID, r.Length, r.GCContent, r.Type, r.Checksum); err != nil {
					return err
				}
			}
		}
		_, err := fmt.Fprintf(w, "# records=%d residues=%d min=%d max=%d mean=%.1f\n",
			sum.Records, sum.Residues, sum.MinLen, sum.MaxLen, sum.MeanLen())
		return err
	default:
		return renderTable(w, opt, rows, sum)
	}
}

func renderTable(w io.Writer, opt Options, rows []api.RecordStatsV1, sum *stats.Summary) error {
	if !opt.SummaryOnly {
		var b strings.Builder
		b.WriteString(headerStyle.Render(fmt.Sprintf("%-24s %9s %7s %-11s %-16s", "id", "length", "gc%", "type", "checksum")))
		b.WriteByte('\n')
		for _, r := range rows {
			id := r.ID
			if id == "" {
				id = mutedStyle.Render("(empty)")
			}
			b.WriteString(fmt.Sprintf("%-24s %9d %7.2f %-11s %-16s\n",
				id, r.Length, r.GCContent*100, typeStyle(r.Type).Render(r.Type), r.Checksum))
		}
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
	}
	line := fmt.Sprintf("records %d · residues %d · length min %d / mean %.1f / max %d",
		sum.Records, sum.Residues, sum.MinLen, sum.MeanLen(), sum.MaxLen)
	_, err := fmt.Fprintln(w, summaryStyle.Render(line))
	return err
}
