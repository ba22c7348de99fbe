// Package stats derives per-record and aggregate statistics from parsed
// FASTA records. Purely descriptive: nothing here validates content.
package stats

import (
	"fmt"

	"fastaparser/fasta"
	"fastaparser/pkg/api"
	"fastaparser/seq"
)

// Collect computes the per-record stats row for one record.
func Collect(r fasta.Record) api.RecordStatsV1 {
	return api.RecordStatsV1{
		ID:        r.ID,
		Length:    len(r.Seq),
		GCContent: seq.GCContent(r.Seq),
		Type:      seq.Infer(r.Seq).String(),
		Checksum:  fmt.Sprintf("%016x", seq.Checksum(r.Seq)),
	}
}

// Summary aggregates record stats across a whole run.
type Summary struct {
	Records  int
	Residues int
	MinLen   int
	MaxLen   int
}

// Add folds one record's stats into the summary.
func (s *Summary) Add(rs api.RecordStatsV1) {
	if s.Records == 0 || rs.Length < s.MinLen {
		s.MinLen = rs.Length
	}
	if rs.Length > s.MaxLen {
		s.MaxLen = rs.Length
	}
	s.Records++
	s.Residues += rs.Length
}

// MeanLen is the mean sequence length, 0 for an empty run.
func (s *Summary) MeanLen() float64 {
	if s.Records == 0 {
		return 0
	}
	return float64(s.Residues) / float64(s.Records)
}

// ToAPI converts the summary to its stable wire shape.
func (s *Summary) ToAPI() api.SummaryV1 {
	return api.SummaryV1{
		Records:  s.Records,
		Residues: s.Residues,
		MinLen:   s.MinLen,
		MaxLen:   s.MaxLen,
		MeanLen:  s.MeanLen(),
	}
}
