package seq

// Letter codes follow the NCBI FASTA conventions. The nucleotide
// alphabet includes the IUPAC degenerate codes; '-' is a gap of
// indeterminate length in both alphabets.

// complements maps a nucleotide letter code to its complement.
var complements = map[byte]byte{
	'A': 'T',
	'C': 'G',
	'G': 'C',
	'T': 'A',
	'N': 'N',
	'U': 'A',
	'K': 'M',
	'S': 'S',
	'Y': 'R',
	'M': 'K',
	'W': 'W',
	'R': 'Y',
	'B': 'V',
	'D': 'H',
	'H': 'D',
	'V': 'B',
	'-': '-',
}

// aminoOnly holds letter codes that are valid only in the aminoacid
// alphabet. Seeing one proves a sequence cannot be nucleotide, which is
// the only alphabet judgement that can be made from content alone.
var aminoOnly = map[byte]bool{
	'E': true,
	'F': true,
	'I': true,
	'L': true,
	'P': true,
	'Q': true,
	'X': true,
	'Z': true,
	'*': true,
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}

func isLower(b byte) bool { return b >= 'a' && b <= 'z' }
