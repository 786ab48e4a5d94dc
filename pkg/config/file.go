package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/acrodrig/hub/pkg/hub"
)

// File is the TOML rules-file shape:
//
//	default_level = "warn"
//	enabled = true
//	log_gated = false
//
//	[rules]
//	debug = "net*, db"
//	off = "db.pool"
type File struct {
	DefaultLevel string            `toml:"default_level"`
	Enabled      *bool             `toml:"enabled"`
	LogGated     bool              `toml:"log_gated"`
	Rules        map[string]string `toml:"rules"`
}

// ruleLevels is the set of level keys a rules file may configure, applied in
// a fixed order so repeated loads behave identically.
var ruleLevels = [6]string{"debug", "info", "warn", "error", "log", "off"}

// LoadFile parses a TOML rules file.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rules file: %w", err)
	}
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing rules file %s: %w", path, err)
	}
	return &f, nil
}

// Apply configures a hub from the file. Levels absent from [rules] get their
// sets cleared, so the file fully describes the rule state.
func (f *File) Apply(h *hub.Hub) {
	if f.DefaultLevel != "" {
		h.SetDefaultLevel(f.DefaultLevel)
	}
	for _, level := range ruleLevels {
		h.Configure(level, f.Rules[level])
	}
	h.SetLogGating(f.LogGated)
	if f.Enabled != nil {
		h.SetEnabled(*f.Enabled)
	}
}

// ApplyFile is LoadFile plus Apply.
func ApplyFile(path string, h *hub.Hub) error {
	f, err := LoadFile(path)
	if err != nil {
		return err
	}
	f.Apply(h)
	return nil
}
