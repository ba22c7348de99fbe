package fasta

import (
	"io"
	"os"
)

// openReader maps "-" to stdin (never closed) and anything else to an
// opened file. Callers with pre-opened or wrapped inputs should use
// NewReader / StreamCtx directly.
func openReader(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}
