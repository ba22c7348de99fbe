package writers

import (
	"encoding/json"
	"fmt"
	"io"

	"fastaparser/fasta"
	"fastaparser/internal/jsonlutil"
	"fastaparser/internal/output"
)

// Formats lists the record output formats, in help order.
var Formats = []string{"text", "json", "jsonl", "fasta"}

// ValidFormat reports whether format names a registered record writer.
func ValidFormat(format string) bool {
	for _, f := range Formats {
		if f == format {
			return true
		}
	}
	return false
}

// StartRecordWriter spins up a writer goroutine for parsed records.
// Close the returned channel to finish; the error channel then carries
// the terminal write error, if any. JSON buffers the whole run (it emits
// one array); the other formats stream.
func StartRecordWriter(out io.Writer, format string, wrap int, header bool, bufSize int) (chan<- fasta.Record, <-chan error) {
	if format == "jsonl" {
		return jsonlutil.Start[fasta.Record](out, bufSize,
			func(enc *json.Encoder, r fasta.Record) error {
				return enc.Encode(output.ToAPIRecord(r))
			},
			IsBrokenPipe,
		)
	}

	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan fasta.Record, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var err error
		switch format {
		case "json":
			var buf []fasta.Record
			for r := range in {
				buf = append(buf, r)
			}
			err = output.WriteJSON(out, buf)
		case "fasta":
			err = output.StreamFASTA(out, in, wrap)
		case "text":
			err = output.StreamTSV(out, in, header)
		default:
			err = fmt.Errorf("unsupported output %q", format)
		}
		// drain so producers never block on an early failure
		for range in {
		}
		errCh <- err
	}()

	return in, errCh
}
