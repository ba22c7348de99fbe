package output

import (
	"fmt"
	"io"

	"fastaparser/fasta"
)

// TSVHeader is the column header for text output of records.
const TSVHeader = "id\tdescription\tlength"

// WriteTSV writes records as a tab-delimited table.
func WriteTSV(w io.Writer, list []fasta.Record, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for _, r := range list {
		if err := writeTSVRow(w, r); err != nil {
			return err
		}
	}
	return nil
}

// StreamTSV streams records from a channel as tab-delimited rows.
func StreamTSV(w io.Writer, in <-chan fasta.Record, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for r := range in {
		if err := writeTSVRow(w, r); err != nil {
			return err
		}
	}
	return nil
}

func writeTSVRow(w io.Writer, r fasta.Record) error {
	_, err := fmt.Fprintf(w, "%s\t%s\t%d\n", r.ID, r.Description, len(r.Seq))
	return err
}
