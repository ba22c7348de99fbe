// Package fasta parses and writes FASTA formatted sequence data.
//
// Parsing is streaming and line oriented: a Reader makes one forward
// pass over its input and yields one Record per header line, without
// holding more than the in-progress record in memory.
package fasta

import "strings"

// Record is one FASTA entry: identifier, optional description and the
// concatenated sequence letters. Records are plain values; once yielded
// by a Reader they share no state with it or with each other.
type Record struct {
	ID          string
	Description string
	Seq         string
}

// Header reconstructs the definition line without the leading '>'.
func (r Record) Header() string {
	if r.Description == "" {
		return r.ID
	}
	return r.ID + " " + r.Description
}

// parseHeader splits the text after '>' into id and description.
// The id runs up to the first whitespace; the description is the rest
// with leading whitespace removed. Both may be empty (a bare '>' line
// yields an empty id, which is accepted, not an error).
func parseHeader(line string) (id, desc string) {
	line = strings.TrimSpace(line)
	if i := strings.IndexAny(line, " \t"); i >= 0 {
		return line[:i], strings.TrimLeft(line[i:], " \t")
	}
	return line, ""
}
