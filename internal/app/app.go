package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"fastaparser/fasta"
	"fastaparser/internal/cli"
	"fastaparser/internal/config"
	"fastaparser/internal/version"
	"fastaparser/internal/writers"
	"fastaparser/seq"
)

// RunContext parses argv, streams every input file through the FASTA
// reader and hands records to the selected writer.
//
// Exit codes: 0 ok, 1 no records parsed, 2 usage/parse error, 3 write
// error. Cancellation returns 0 and lets the shell map it to 130.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("fastaparse")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return flushCode(outw, stderr)
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "fastaparse version %s\n", version.Version)
		return flushCode(outw, stderr)
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	applyConfig(fs, &opts, cfg)
	if err := cli.Validate(&opts); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	if opts.Count {
		return runCount(ctx, outw, stderr, opts)
	}

	recCh, errCh := writers.StartRecordWriter(outw, opts.Output, opts.Wrap, opts.Header, 64)

	var seen map[uint64]bool
	if opts.Unique {
		seen = make(map[uint64]bool)
	}

	parsed := 0
	var parseErr error
	for _, path := range opts.Inputs {
		err := fasta.StreamPathCtx(ctx, path, func(rec fasta.Record) error {
			parsed++
			if seen != nil {
				h := seq.Checksum(rec.Seq)
				if seen[h] {
					return nil
				}
				seen[h] = true
			}
			select {
			case recCh <- rec:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
		if err != nil {
			parseErr = fmt.Errorf("%s: %w", path, err)
			break
		}
	}
	close(recCh)
	if werr := <-errCh; werr != nil && !writers.IsBrokenPipe(werr) {
		_, _ = fmt.Fprintln(stderr, werr)
		return 3
	}

	if parseErr != nil {
		if errors.Is(parseErr, context.Canceled) || errors.Is(parseErr, context.DeadlineExceeded) {
			return 0
		}
		_, _ = fmt.Fprintln(stderr, parseErr)
		return 2
	}
	if code := flushCode(outw, stderr); code != 0 {
		return code
	}
	if parsed == 0 {
		if !opts.Quiet {
			_, _ = fmt.Fprintln(stderr, "warning: no records parsed")
		}
		return 1
	}
	return 0
}

// Run is the background-context form used by tests and simple callers.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func runCount(ctx context.Context, outw *bufio.Writer, stderr io.Writer, opts cli.Options) int {
	var seen map[uint64]bool
	if opts.Unique {
		seen = make(map[uint64]bool)
	}
	n := 0
	for _, path := range opts.Inputs {
		err := fasta.StreamPathCtx(ctx, path, func(rec fasta.Record) error {
			if seen != nil {
				h := seq.Checksum(rec.Seq)
				if seen[h] {
					return nil
				}
				seen[h] = true
			}
			n++
			return nil
		})
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return 0
			}
			_, _ = fmt.Fprintf(stderr, "%s: %v\n", path, err)
			return 2
		}
	}
	_, _ = fmt.Fprintln(outw, n)
	if code := flushCode(outw, stderr); code != 0 {
		return code
	}
	if n == 0 {
		return 1
	}
	return 0
}

// applyConfig fills options the user left unset from the config file.
func applyConfig(fs *flag.FlagSet, opts *cli.Options, cfg *config.Config) {
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if cfg.Output != "" && !set["output"] && !set["o"] {
		opts.Output = cfg.Output
	}
	if cfg.Wrap != 0 && !set["wrap"] {
		opts.Wrap = cfg.Wrap
	}
	if cfg.Unique && !set["unique"] {
		opts.Unique = true
	}
	if cfg.Quiet && !set["quiet"] && !set["q"] {
		opts.Quiet = true
	}
}

// flushCode flushes buffered output, tolerating broken pipes.
func flushCode(outw *bufio.Writer, stderr io.Writer) int {
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return 0
}
