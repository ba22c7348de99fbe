package fasta

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrNoHeader reports sequence data before the first '>' line. The input
// is considered corrupt from that point on; the Reader yields no further
// records.
var ErrNoHeader = errors.New("fasta: sequence data before first header")

const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)

// Reader is a pull-based FASTA cursor. Each call to Next consumes input
// lines until one record is complete. Nothing is read past that point
// except the header line that terminated the record, which is held as
// pending state for the following call.
//
// A Reader makes a single forward pass and is not restartable. It does
// not close its input; the caller owns the underlying resource.
type Reader struct {
	sc      *bufio.Scanner
	pending string // header text (after '>') awaiting its body
	primed  bool   // pending holds a real header
	err     error  // sticky
}

// NewReader returns a Reader consuming r line by line.
func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLine)
	return &Reader{sc: sc}
}

// Next returns the next record, or io.EOF after the last one.
//
// Every line is stripped of its terminator (LF and CRLF identically) and
// surrounding whitespace; blank lines are skipped everywhere and never
// contribute to content or record boundaries. Consecutive headers yield
// a record with an empty Seq. A body line before any header returns
// ErrNoHeader.
func (r *Reader) Next() (Record, error) {
	if r.err != nil {
		return Record{}, r.err
	}
	var body strings.Builder
	for r.sc.Scan() {
		line := strings.TrimSpace(r.sc.Text())
		if line == "" {
			continue
		}
		if line[0] == '>' {
			if r.primed {
				rec := r.finalize(body.String())
				r.pending = line[1:]
				return rec, nil
			}
			r.pending = line[1:]
			r.primed = true
			continue
		}
		if !r.primed {
			r.err = ErrNoHeader
			return Record{}, r.err
		}
		body.WriteString(line)
	}
	if err := r.sc.Err(); err != nil {
		r.err = fmt.Errorf("fasta scan: %w", err)
		return Record{}, r.err
	}
	r.err = io.EOF
	if r.primed {
		r.primed = false
		return r.finalize(body.String()), nil
	}
	return Record{}, r.err
}

func (r *Reader) finalize(seq string) Record {
	id, desc := parseHeader(r.pending)
	return Record{ID: id, Description: desc, Seq: seq}
}

// ReadAll drains r and returns every record in input order.
func ReadAll(r io.Reader) ([]Record, error) {
	rd := NewReader(r)
	var recs []Record
	for {
		rec, err := rd.Next()
		if errors.Is(err, io.EOF) {
			return recs, nil
		}
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
}
