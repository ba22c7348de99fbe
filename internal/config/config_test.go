package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)
	require.Equal(t, &Config{}, c)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"output":"jsonl","wrap":-1,"unique":true}`), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "jsonl", c.Output)
	require.Equal(t, -1, c.Wrap)
	require.True(t, c.Unique)
	require.False(t, c.Quiet)
}

func TestLoadBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}
