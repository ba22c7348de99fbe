package fasta

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriterDefaultWrap(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	rec := Record{ID: "long", Seq: strings.Repeat("A", 150)}
	require.NoError(t, w.Write(rec))
	require.NoError(t, w.Flush())

	want := ">long\n" +
		strings.Repeat("A", 70) + "\n" +
		strings.Repeat("A", 70) + "\n" +
		strings.Repeat("A", 10) + "\n"
	require.Equal(t, want, buf.String())
}

func TestWriterCustomWidth(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	w.Width = 4
	require.NoError(t, w.Write(Record{ID: "x", Seq: "ACGTACGTAC"}))
	require.NoError(t, w.Flush())
	require.Equal(t, ">x\nACGT\nACGT\nAC\n", buf.String())
}

func TestWriterNoWrap(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	w.Width = -1
	seq := strings.Repeat("G", 200)
	require.NoError(t, w.Write(Record{ID: "x", Seq: seq}))
	require.NoError(t, w.Flush())
	require.Equal(t, ">x\n"+seq+"\n", buf.String())
}

func TestWriterEmptySeq(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.Write(Record{ID: "empty", Description: "no body"}))
	require.NoError(t, w.Flush())
	require.Equal(t, ">empty no body\n", buf.String())
}

func TestWriterRoundTrip(t *testing.T) {
	recs := []Record{
		{ID: "a", Description: "first record", Seq: strings.Repeat("ACGT", 40)},
		{ID: "b", Seq: "TTTT"},
		{ID: "c", Description: "empty body"},
	}
	var buf bytes.Buffer
	require.NoError(t, NewWriter(&buf).WriteAll(recs))

	got, err := ReadAll(&buf)
	require.NoError(t, err)
	require.Equal(t, recs, got)
}
