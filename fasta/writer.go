package fasta

import (
	"bufio"
	"io"
)

// DefaultWidth is the sequence wrap width used when Writer.Width is 0.
// The format conventionally stays at or below 80 columns.
const DefaultWidth = 70

// Writer emits records in FASTA text form, wrapping sequence lines at
// Width characters (DefaultWidth when 0, no wrapping when negative).
type Writer struct {
	w     *bufio.Writer
	Width int
}

// NewWriter returns a Writer buffering output to w. Call Flush (or
// WriteAll) before discarding it.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Write emits one record. A record with an empty Seq still produces its
// header line (degenerate but legal FASTA).
func (w *Writer) Write(rec Record) error {
	if err := w.w.WriteByte('>'); err != nil {
		return err
	}
	if _, err := w.w.WriteString(rec.Header()); err != nil {
		return err
	}
	if err := w.w.WriteByte('\n'); err != nil {
		return err
	}
	width := w.Width
	if width == 0 {
		width = DefaultWidth
	}
	seq := rec.Seq
	for len(seq) > 0 {
		n := len(seq)
		if width > 0 && width < n {
			n = width
		}
		if _, err := w.w.WriteString(seq[:n]); err != nil {
			return err
		}
		if err := w.w.WriteByte('\n'); err != nil {
			return err
		}
		seq = seq[n:]
	}
	return nil
}

// WriteAll emits the records in order and flushes.
func (w *Writer) WriteAll(recs []Record) error {
	for _, r := range recs {
		if err := w.Write(r); err != nil {
			return err
		}
	}
	return w.Flush()
}

// Flush writes any buffered output to the underlying writer.
func (w *Writer) Flush() error { return w.w.Flush() }
