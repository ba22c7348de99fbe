// Package seq provides alphabet-level utilities for FASTA sequence
// content: type inference, nucleotide complement, composition stats and
// content checksums. Nothing here rejects sequence letters; unknown
// characters are classified or reported, never filtered.
package seq

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Type classifies a sequence alphabet.
type Type int

const (
	Unknown Type = iota
	Nucleotide
	Aminoacid
)

func (t Type) String() string {
	switch t {
	case Nucleotide:
		return "nucleotide"
	case Aminoacid:
		return "aminoacid"
	default:
		return "unknown"
	}
}

// Infer guesses the alphabet of s from its letters. Only aminoacid
// sequences are provable (via a letter outside the nucleotide alphabet);
// anything else stays Unknown, since every nucleotide code is also a
// legal aminoacid code.
func Infer(s string) Type {
	for i := 0; i < len(s); i++ {
		if aminoOnly[upper(s[i])] {
			return Aminoacid
		}
	}
	return Unknown
}

// Complement returns the IUPAC complement of a nucleotide sequence,
// preserving letter case. It fails on the first letter with no defined
// complement.
func Complement(s string) (string, error) {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		m, ok := complements[upper(c)]
		if !ok {
			return "", fmt.Errorf("seq: no complement for letter code %q", c)
		}
		if isLower(c) && m >= 'A' && m <= 'Z' {
			m += 'a' - 'A'
		}
		b.WriteByte(m)
	}
	return b.String(), nil
}

// GCContent returns the fraction of letters that are G, C or S (strong).
// An empty sequence has content 0.
func GCContent(s string) float64 {
	if len(s) == 0 {
		return 0
	}
	gc := 0
	for i := 0; i < len(s); i++ {
		switch upper(s[i]) {
		case 'G', 'C', 'S':
			gc++
		}
	}
	return float64(gc) / float64(len(s))
}

// ATGCRatio returns the AT/GC ratio, counting W with AT and S with GC
// and ignoring other degenerate codes. Returns 0 when there is no GC.
func ATGCRatio(s string) float64 {
	at, gc := 0, 0
	for i := 0; i < len(s); i++ {
		switch upper(s[i]) {
		case 'A', 'T', 'W':
			at++
		case 'G', 'C', 'S':
			gc++
		}
	}
	if gc == 0 {
		return 0
	}
	return float64(at) / float64(gc)
}

// Checksum returns the xxHash64 digest of the raw sequence letters,
// suitable as a cheap content identity for dedup.
func Checksum(s string) uint64 {
	return xxhash.Sum64String(s)
}
