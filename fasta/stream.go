package fasta

import (
	"context"
	"errors"
	"io"
)

// StreamCtx parses FASTA from r and calls emit for each record, in input
// order. It is cancelable: ctx is checked between records, and a non-nil
// error from emit stops the scan early.
func StreamCtx(ctx context.Context, r io.Reader, emit func(Record) error) error {
	rd := NewReader(r)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		rec, err := rd.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := emit(rec); err != nil {
			return err
		}
	}
}

// StreamPathCtx opens path ("-" for stdin), streams its records through
// emit and closes the file before returning.
func StreamPathCtx(ctx context.Context, path string, emit func(Record) error) error {
	rc, err := openReader(path)
	if err != nil {
		return err
	}
	defer rc.Close()
	return StreamCtx(ctx, rc, emit)
}

// Stream is the channel form of StreamPathCtx. The record channel is
// closed when parsing finishes; the error channel then carries the final
// error, if any.
func Stream(ctx context.Context, path string) (<-chan Record, <-chan error) {
	out := make(chan Record, 8)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		errc <- StreamPathCtx(ctx, path, func(rec Record) error {
			select {
			case out <- rec:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}()
	return out, errc
}
