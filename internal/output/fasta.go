package output

import (
	"io"

	"fastaparser/fasta"
)

// StreamFASTA re-emits records from a channel in FASTA text form,
// wrapped at the given width (0 = fasta.DefaultWidth, <0 = no wrap).
func StreamFASTA(w io.Writer, in <-chan fasta.Record, width int) error {
	fw := fasta.NewWriter(w)
	fw.Width = width
	for r := range in {
		if err := fw.Write(r); err != nil {
			return err
		}
	}
	return fw.Flush()
}

// WriteFASTA re-emits a slice of records in FASTA text form.
func WriteFASTA(w io.Writer, list []fasta.Record, width int) error {
	fw := fasta.NewWriter(w)
	fw.Width = width
	return fw.WriteAll(list)
}
