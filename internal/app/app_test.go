package app

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"fastaparser/pkg/api"
)

const sampleFASTA = ">seq1 first record\nACGT\nACGT\n>seq2\nGGGG\n>seq3 dup of seq2\nGGGG\n"

func writeFasta(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "in.fa")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func run(t *testing.T, argv ...string) (int, string, string) {
	t.Helper()
	var out, errBuf bytes.Buffer
	code := Run(argv, &out, &errBuf)
	return code, out.String(), errBuf.String()
}

func TestRunText(t *testing.T) {
	path := writeFasta(t, sampleFASTA)
	code, out, _ := run(t, path)
	require.Equal(t, 0, code)
	require.Equal(t,
		"id\tdescription\tlength\nseq1\tfirst record\t8\nseq2\t\t4\nseq3\tdup of seq2\t4\n",
		out)
}

func TestRunNoHeaderFlag(t *testing.T) {
	path := writeFasta(t, sampleFASTA)
	code, out, _ := run(t, "--no-header", path)
	require.Equal(t, 0, code)
	require.False(t, strings.HasPrefix(out, "id\t"))
}

func TestRunJSON(t *testing.T) {
	path := writeFasta(t, sampleFASTA)
	code, out, _ := run(t, "-o", "json", path)
	require.Equal(t, 0, code)

	var recs []api.RecordV1
	require.NoError(t, json.Unmarshal([]byte(out), &recs))
	require.Len(t, recs, 3)
	require.Equal(t, "seq1", recs[0].ID)
	require.Equal(t, "ACGTACGT", recs[0].Sequence)
}

func TestRunFASTARoundTrip(t *testing.T) {
	path := writeFasta(t, sampleFASTA)
	code, out, _ := run(t, "-o", "fasta", path)
	require.Equal(t, 0, code)
	require.Equal(t, ">seq1 first record\nACGTACGT\n>seq2\nGGGG\n>seq3 dup of seq2\nGGGG\n", out)
}

func TestRunUnique(t *testing.T) {
	path := writeFasta(t, sampleFASTA)
	code, out, _ := run(t, "--unique", "--no-header", path)
	require.Equal(t, 0, code)
	// seq3 repeats seq2's letters and is dropped
	require.Equal(t, "seq1\tfirst record\t8\nseq2\t\t4\n", out)
}

func TestRunCount(t *testing.T) {
	path := writeFasta(t, sampleFASTA)
	code, out, _ := run(t, "--count", path)
	require.Equal(t, 0, code)
	require.Equal(t, "3\n", out)
}

func TestRunCountUnique(t *testing.T) {
	// seq3 repeats seq2's letters, so unique counting drops it
	path := writeFasta(t, sampleFASTA)
	code, out, _ := run(t, "--count", "--unique", path)
	require.Equal(t, 0, code)
	require.Equal(t, "2\n", out)
}

func TestRunMultipleInputs(t *testing.T) {
	a := writeFasta(t, ">a\nAC\n")
	b := writeFasta(t, ">b\nGT\n")
	code, out, _ := run(t, "--count", a, b)
	require.Equal(t, 0, code)
	require.Equal(t, "2\n", out)
}

func TestRunMalformedInput(t *testing.T) {
	path := writeFasta(t, "ACGT\n>late\nGG\n")
	code, out, errOut := run(t, path)
	require.Equal(t, 2, code)
	require.Contains(t, errOut, "sequence data before first header")
	require.NotContains(t, out, "late")
}

func TestRunEmptyInput(t *testing.T) {
	path := writeFasta(t, "\n\n")
	code, _, errOut := run(t, path)
	require.Equal(t, 1, code)
	require.Contains(t, errOut, "no records parsed")
}

func TestRunEmptyInputQuiet(t *testing.T) {
	path := writeFasta(t, "")
	code, _, errOut := run(t, "--quiet", path)
	require.Equal(t, 1, code)
	require.Empty(t, errOut)
}

func TestRunMissingFile(t *testing.T) {
	code, _, errOut := run(t, filepath.Join(t.TempDir(), "absent.fa"))
	require.Equal(t, 2, code)
	require.NotEmpty(t, errOut)
}

func TestRunVersion(t *testing.T) {
	code, out, _ := run(t, "--version")
	require.Equal(t, 0, code)
	require.Contains(t, out, "fastaparse version")
}

func TestRunHelp(t *testing.T) {
	code, out, _ := run(t, "-h")
	require.Equal(t, 0, code)
	require.Contains(t, out, "Usage")
}

func TestRunBadFlagValue(t *testing.T) {
	path := writeFasta(t, sampleFASTA)
	code, _, errOut := run(t, "-o", "yaml", path)
	require.Equal(t, 2, code)
	require.Contains(t, errOut, "unknown output")
}

func TestRunConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "cfg.json")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`{"output":"jsonl"}`), 0o644))
	fastaPath := filepath.Join(dir, "in.fa")
	require.NoError(t, os.WriteFile(fastaPath, []byte(">a\nAC\n"), 0o644))

	code, out, _ := run(t, "--config", cfgPath, fastaPath)
	require.Equal(t, 0, code)

	var rec api.RecordV1
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(out)), &rec))
	require.Equal(t, "a", rec.ID)
}

func TestRunConfigFlagWins(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "cfg.json")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`{"output":"jsonl"}`), 0o644))
	fastaPath := filepath.Join(dir, "in.fa")
	require.NoError(t, os.WriteFile(fastaPath, []byte(">a\nAC\n"), 0o644))

	code, out, _ := run(t, "--config", cfgPath, "-o", "text", "--no-header", fastaPath)
	require.Equal(t, 0, code)
	require.Equal(t, "a\t\t2\n", out)
}
