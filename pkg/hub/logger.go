package hub

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/acrodrig/hub/pkg/callsite"
	"github.com/acrodrig/hub/pkg/format"
	"github.com/acrodrig/hub/pkg/levels"
)

// callDepth is how many frames sit between the resolver invocation and the
// user's call site: dispatch, then the public gated method.
const callDepth = 2

// Logger is the decorated handle for one namespace. Instances are owned by
// the hub's registry; callers hold references and mutate level and options
// through accessors, never replace the instance. A Logger implements Sink,
// so it can stand in for the object it decorates.
type Logger struct {
	hub       *Hub
	namespace string

	mu     sync.Mutex
	level  levels.Level
	pinned bool
	opts   format.Options
	mark   time.Time
}

func newLogger(h *Hub, namespace string, opts format.Options, level levels.Level) *Logger {
	return &Logger{
		hub:       h,
		namespace: namespace,
		level:     level,
		opts:      opts,
		mark:      time.Now(),
	}
}

// Namespace returns the namespace this logger is registered under.
func (l *Logger) Namespace() string {
	return l.namespace
}

// Level returns the current effective level ordinal.
func (l *Logger) Level() levels.Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

// LevelName returns the current level as its lowercase name.
func (l *Logger) LevelName() string {
	return l.Level().String()
}

// SetLevel sets the level by name and pins it: later rule reconfiguration
// will not override an explicit set (force-recreate the logger to unpin).
// Unknown names do not error; they resolve to the fail-open ordinal, which
// makes this namespace emit at every level.
func (l *Logger) SetLevel(name string) {
	level, _ := levels.Parse(name)
	l.setLevel(level, true)
}

// SetLevelValue is SetLevel for a concrete Level value.
func (l *Logger) SetLevelValue(level levels.Level) {
	l.setLevel(level, true)
}

func (l *Logger) setLevel(level levels.Level, pin bool) {
	l.mu.Lock()
	l.level = level
	if pin {
		l.pinned = true
	}
	l.mu.Unlock()
}

// refresh re-derives the level from the hub's rules unless it was pinned by
// an explicit set.
func (l *Logger) refresh() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.pinned {
		return
	}
	l.level = l.hub.effectiveFor(l.namespace, l.opts)
}

// Options returns a copy of the logger's option bag.
func (l *Logger) Options() format.Options {
	return l.options()
}

// SetOptions replaces the option bag. RootPath is normalized like at
// registration.
func (l *Logger) SetOptions(o format.Options) {
	o.RootPath = normalizeRoot(o.RootPath)
	l.mu.Lock()
	l.opts = o
	l.mu.Unlock()
}

func (l *Logger) options() format.Options {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.opts
}

// Debug emits at debug verbosity.
func (l *Logger) Debug(args ...any) { l.dispatch(levels.Debug, args) }

// Info emits at info verbosity.
func (l *Logger) Info(args ...any) { l.dispatch(levels.Info, args) }

// Warn emits at warn verbosity.
func (l *Logger) Warn(args ...any) { l.dispatch(levels.Warn, args) }

// Error emits at error verbosity.
func (l *Logger) Error(args ...any) { l.dispatch(levels.Error, args) }

// Log mirrors the unconditional print call: it bypasses level comparison and
// is stopped only by the global switch, unless log gating was enabled (per
// logger via Options.GateLog or hub-wide), in which case it gates at its own
// ordinal so only "off" suppresses it.
func (l *Logger) Log(args ...any) { l.dispatch(levels.Log, args) }

// Trace is not gated or decorated; it forwards straight to the held sink so
// the logger stays substitutable for it.
func (l *Logger) Trace(args ...any) {
	l.hub.currentSink().Trace(args...)
}

func (l *Logger) dispatch(level levels.Level, args []any) {
	h := l.hub
	if !h.enabled.Load() {
		return
	}

	target := l
	var site *callsite.Site

	// Root façade: attribute the anonymous call to whichever registered
	// namespace owns the caller's file tree, if any.
	if l.namespace == format.RootNamespace {
		if s, ok := h.resolve(callDepth); ok {
			site = &s
			if t := h.discover(s.File); t != nil {
				target = t
			}
		}
	}

	opts := target.options()
	if level == levels.Log {
		if (opts.GateLog || h.gateLog.Load()) && !target.passes(level) {
			return
		}
	} else if !target.passes(level) {
		return
	}

	if opts.FileLine && site == nil {
		if s, ok := h.resolve(callDepth); ok {
			site = &s
		}
	}

	out := target.build(level, opts, site, args)

	sink := h.currentSink()
	switch level {
	case levels.Debug:
		sink.Debug(out...)
	case levels.Info:
		sink.Info(out...)
	case levels.Warn:
		sink.Warn(out...)
	case levels.Error:
		sink.Error(out...)
	case levels.Log:
		sink.Log(out...)
	}
}

// passes reports whether a call at the given level clears this logger's
// threshold. The fail-open Unknown ordinal sits below Debug, so it lets
// everything through; Off sits above everything and blocks it all.
func (l *Logger) passes(level levels.Level) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return level >= l.level
}

// build serializes formatting per namespace: the elapsed-time mark is
// read-then-written, so concurrent calls to one logger take turns.
func (l *Logger) build(level levels.Level, opts format.Options, site *callsite.Site, args []any) []any {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.hub.fmtr.Build(l.namespace, level, opts, &l.mark, site, args)
}

func normalizeRoot(root string) string {
	if root == "" {
		return ""
	}
	if abs, err := filepath.Abs(root); err == nil {
		return abs
	}
	return root
}
