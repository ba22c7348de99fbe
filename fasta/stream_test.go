package fasta

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const twoRecords = ">seq1 first\nACGT\nNNNN\n>seq2\nGGCC\n"

func writeTemp(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.fa")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestStreamCtxOrder(t *testing.T) {
	var ids []string
	err := StreamCtx(context.Background(), strings.NewReader(twoRecords), func(r Record) error {
		ids = append(ids, r.ID)
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, []string{"seq1", "seq2"}, ids)
}

func TestStreamCtxEmitError(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	err := StreamCtx(context.Background(), strings.NewReader(twoRecords), func(Record) error {
		calls++
		return boom
	})
	require.ErrorIs(t, err, boom)
	require.Equal(t, 1, calls)
}

func TestStreamCtxCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := StreamCtx(ctx, strings.NewReader(twoRecords), func(Record) error { return nil })
	require.ErrorIs(t, err, context.Canceled)
}

func TestStreamPathCtx(t *testing.T) {
	path := writeTemp(t, twoRecords)
	var got []Record
	err := StreamPathCtx(context.Background(), path, func(r Record) error {
		got = append(got, r)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "ACGTNNNN", got[0].Seq)
}

func TestStreamPathCtxMissingFile(t *testing.T) {
	err := StreamPathCtx(context.Background(), filepath.Join(t.TempDir(), "absent.fa"), func(Record) error { return nil })
	require.Error(t, err)
}

func TestStreamChannel(t *testing.T) {
	path := writeTemp(t, twoRecords)
	out, errc := Stream(context.Background(), path)

	var ids []string
	for r := range out {
		ids = append(ids, r.ID)
	}
	require.NoError(t, <-errc)
	require.Equal(t, []string{"seq1", "seq2"}, ids)
}

func TestStreamChannelMalformed(t *testing.T) {
	path := writeTemp(t, "ACGT\n>late\nGG\n")
	out, errc := Stream(context.Background(), path)

	var n int
	for range out {
		n++
	}
	require.Zero(t, n)
	require.ErrorIs(t, <-errc, ErrNoHeader)
}
