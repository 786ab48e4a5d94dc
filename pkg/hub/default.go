package hub

import (
	"sync"

	"github.com/acrodrig/hub/pkg/format"
)

// The package-level default hub. Namespaces must be addressable by name from
// anywhere in a program without threading a handle through every call, so one
// process-wide hub is load-bearing; Reset exists so tests can clear it
// between cases.
var (
	defaultMu  sync.RWMutex
	defaultHub = New()
)

// Default returns the process-wide hub.
func Default() *Hub {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultHub
}

// SetDefault replaces the process-wide hub and returns the previous one.
func SetDefault(h *Hub) *Hub {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	prev := defaultHub
	if h != nil {
		defaultHub = h
	}
	return prev
}

// Get returns the default hub's logger for a namespace.
func Get(namespace string, opts ...format.Options) *Logger {
	return Default().Get(namespace, opts...)
}

// GetNew force-recreates a namespace's logger on the default hub.
func GetNew(namespace string, opts ...format.Options) *Logger {
	return Default().GetNew(namespace, opts...)
}

// Root returns the default hub's "*" façade.
func Root() *Logger {
	return Default().Root()
}

// Configure replaces the rule set for one level on the default hub.
func Configure(level, patterns string) {
	Default().Configure(level, patterns)
}

// SetEnabled flips the default hub's global switch, returning the previous
// state.
func SetEnabled(on bool) bool {
	return Default().SetEnabled(on)
}

// SetSink swaps the default hub's sink, returning the previous one.
func SetSink(s Sink) Sink {
	return Default().SetSink(s)
}

// Reset restores the default hub to a pristine state for tests.
func Reset() {
	Default().Reset()
}
