package output

import (
	"io"

	"fastaparser/fasta"
	"fastaparser/internal/jsonutil"
	"fastaparser/pkg/api"
)

// ToAPIRecord converts a parsed record to the stable wire schema (v1).
func ToAPIRecord(r fasta.Record) api.RecordV1 {
	return api.RecordV1{
		ID:          r.ID,
		Description: r.Description,
		Sequence:    r.Seq,
		Length:      len(r.Seq),
	}
}

func toAPIRecords(list []fasta.Record) []api.RecordV1 {
	out := make([]api.RecordV1, 0, len(list))
	for _, r := range list {
		out = append(out, ToAPIRecord(r))
	}
	return out
}

// WriteJSON writes a single JSON array of v1 records (pretty-indented).
func WriteJSON(w io.Writer, list []fasta.Record) error {
	return jsonutil.EncodePretty(w, toAPIRecords(list))
}
