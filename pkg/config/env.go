// Package config bootstraps a hub from the process environment or from a
// TOML rules file, and can watch the file for live reconfiguration.
package config

import (
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/acrodrig/hub/pkg/hub"
)

// Env carries the environment-driven configuration. Each level variable
// holds a comma or space delimited pattern list, e.g.
//
//	HUB_DEBUG="net*,db" HUB_OFF="db.pool" HUB_DEFAULT_LEVEL=warn
type Env struct {
	Debug string `env:"HUB_DEBUG"`
	Info  string `env:"HUB_INFO"`
	Warn  string `env:"HUB_WARN"`
	Error string `env:"HUB_ERROR"`
	Log   string `env:"HUB_LOG"`
	Off   string `env:"HUB_OFF"`

	DefaultLevel string `env:"HUB_DEFAULT_LEVEL" envDefault:"info"`
	Enabled      bool   `env:"HUB_ENABLED" envDefault:"true"`
	LogGated     bool   `env:"HUB_LOG_GATED" envDefault:"false"`
}

var dotenvOnce sync.Once

// FromEnv loads a .env file if present (once per process) and parses the
// HUB_* variables.
func FromEnv() (*Env, error) {
	dotenvOnce.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})
	var e Env
	if err := env.Parse(&e); err != nil {
		return nil, fmt.Errorf("parsing hub environment: %w", err)
	}
	return &e, nil
}

// Apply configures a hub from the parsed environment. Every level's rule set
// is replaced, including empty ones, so applying twice is deterministic.
func (e *Env) Apply(h *hub.Hub) {
	h.SetDefaultLevel(e.DefaultLevel)
	h.Configure("debug", e.Debug)
	h.Configure("info", e.Info)
	h.Configure("warn", e.Warn)
	h.Configure("error", e.Error)
	h.Configure("log", e.Log)
	h.Configure("off", e.Off)
	h.SetLogGating(e.LogGated)
	h.SetEnabled(e.Enabled)
}

// Bootstrap is FromEnv plus Apply on the default hub.
func Bootstrap() error {
	e, err := FromEnv()
	if err != nil {
		return err
	}
	e.Apply(hub.Default())
	return nil
}
