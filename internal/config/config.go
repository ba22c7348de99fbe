package config

import (
	"encoding/json"
	"os"
)

// Config supplies defaults for fastaparse flags the user did not set on
// the command line. All fields are optional.
type Config struct {
	Output string `json:"output,omitempty"`
	Wrap   int    `json:"wrap,omitempty"`
	Unique bool   `json:"unique,omitempty"`
	Quiet  bool   `json:"quiet,omitempty"`
}

// DefaultPath is consulted when no --config flag is given.
const DefaultPath = "fastaparse.json"

// Load reads a JSON config from path (DefaultPath when empty). A missing
// file is not an error: it returns zero-value defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}
	f, err := os.Open(path)
	if err != nil {
		return &Config{}, nil
	}
	defer f.Close()
	var c Config
	if err := json.NewDecoder(f).Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}
