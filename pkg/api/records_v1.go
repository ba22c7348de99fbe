// Package api holds the stable wire schemas for JSON and JSONL output.
// Internal types may change freely; these may not.
package api

// RecordV1 is the v1 JSON shape of a parsed FASTA record.
type RecordV1 struct {
	ID          string `json:"id"`
	Description string `json:"description,omitempty"`
	Sequence    string `json:"sequence"`
	Length      int    `json:"length"`
}

// RecordStatsV1 is the v1 JSON shape of per-record statistics.
type RecordStatsV1 struct {
	ID        string  `json:"id"`
	Length    int     `json:"length"`
	GCContent float64 `json:"gc_content"`
	Type      string  `json:"type"`
	Checksum  string  `json:"checksum"`
}

// SummaryV1 is the v1 JSON shape of the aggregate stats summary.
type SummaryV1 struct {
	Records  int     `json:"records"`
	Residues int     `json:"residues"`
	MinLen   int     `json:"min_length"`
	MaxLen   int     `json:"max_length"`
	MeanLen  float64 `json:"mean_length"`
}
