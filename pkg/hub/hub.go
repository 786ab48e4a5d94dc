package hub

import (
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/acrodrig/hub/pkg/callsite"
	"github.com/acrodrig/hub/pkg/colorhash"
	"github.com/acrodrig/hub/pkg/format"
	"github.com/acrodrig/hub/pkg/levels"
)

// Hub is the explicit context holding all process-wide logging state: the
// rule engine, the namespace registry, the global on/off switch, the sink and
// the capture buffer. Programs normally use the package-level default hub;
// tests construct their own and throw it away, or call Reset.
type Hub struct {
	mu        sync.RWMutex
	instances map[string]*Logger
	order     []string // registration order, for auto-discovery ties
	sink      Sink

	rules   *levels.Rules
	enabled atomic.Bool
	gateLog atomic.Bool

	palette *colorhash.Palette
	fmtr    *format.Formatter
	buffer  *format.Buffer
	resolve callsite.Resolver
}

// Option configures a Hub at construction.
type Option func(*Hub)

// WithSink sets the initial sink. Default is a WriterSink on os.Stderr.
func WithSink(s Sink) Option {
	return func(h *Hub) {
		if s != nil {
			h.sink = s
		}
	}
}

// WithPalette sets the color palette, e.g. one forced to a fixed profile.
func WithPalette(p *colorhash.Palette) Option {
	return func(h *Hub) {
		if p != nil {
			h.palette = p
		}
	}
}

// WithResolver sets the call-site resolver. Tests inject a fixed one.
func WithResolver(r callsite.Resolver) Option {
	return func(h *Hub) {
		if r != nil {
			h.resolve = r
		}
	}
}

// WithDefaultLevel sets the level unmatched namespaces fall back to
// (normally Info).
func WithDefaultLevel(l levels.Level) Option {
	return func(h *Hub) { h.rules.SetDefault(l) }
}

// WithLogGating makes Log calls participate in level gating hub-wide.
func WithLogGating(on bool) Option {
	return func(h *Hub) { h.gateLog.Store(on) }
}

// New constructs a Hub. It starts enabled, with no rules (every namespace at
// the Info default), a stderr sink and the terminal-detected palette.
func New(opts ...Option) *Hub {
	h := &Hub{
		instances: make(map[string]*Logger),
		rules:     levels.NewRules(),
		palette:   colorhash.New(),
		buffer:    &format.Buffer{},
		resolve:   callsite.Runtime(),
	}
	h.sink = NewWriterSink(os.Stderr)
	h.enabled.Store(true)
	for _, opt := range opts {
		opt(h)
	}
	h.fmtr = format.New(h.palette, h.buffer)
	h.rules.OnChange(h.recompute)
	return h
}

// Get returns the cached logger for a namespace, creating it on first use.
// Two calls with the same namespace return the same instance, so level and
// option mutations are visible to every holder. An explicit options bag is
// only honored at creation time and replaces the defaults wholesale. The
// empty namespace aliases the root.
func (h *Hub) Get(namespace string, opts ...format.Options) *Logger {
	return h.get(namespace, false, opts)
}

// GetNew force-recreates the namespace's logger, discarding any cached
// instance together with its pinned level and options.
func (h *Hub) GetNew(namespace string, opts ...format.Options) *Logger {
	return h.get(namespace, true, opts)
}

// Root returns the "*" façade logger.
func (h *Hub) Root() *Logger {
	return h.Get(format.RootNamespace)
}

func (h *Hub) get(namespace string, force bool, opts []format.Options) *Logger {
	if namespace == "" {
		namespace = format.RootNamespace
	}
	if !force {
		h.mu.RLock()
		l, ok := h.instances[namespace]
		h.mu.RUnlock()
		if ok {
			return l
		}
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if l, ok := h.instances[namespace]; ok && !force {
		return l
	}

	o := format.Defaults()
	if len(opts) > 0 {
		o = opts[0]
	}
	o.RootPath = normalizeRoot(o.RootPath)

	l := newLogger(h, namespace, o, h.effectiveFor(namespace, o))
	if _, seen := h.instances[namespace]; !seen {
		h.order = append(h.order, namespace)
	}
	h.instances[namespace] = l
	return l
}

// effectiveFor derives a namespace's level from the rules, honoring the
// per-logger DefaultLevel override when no rule matched.
func (h *Hub) effectiveFor(namespace string, o format.Options) levels.Level {
	level, matched := h.rules.Lookup(namespace)
	if !matched && o.DefaultLevel != levels.Unknown {
		return o.DefaultLevel
	}
	return level
}

// Configure replaces the rule set for one level from a comma/space delimited
// pattern list and immediately recomputes every cached instance's level.
// Unknown level names are ignored rather than raised: a mis-set rule must
// never crash the host.
func (h *Hub) Configure(level string, patterns string) {
	l, ok := levels.Parse(level)
	if !ok {
		return
	}
	h.rules.Configure(l, patterns)
}

// SetDefaultLevel changes the fallback level for unmatched namespaces.
// Unknown names are ignored.
func (h *Hub) SetDefaultLevel(level string) {
	l, ok := levels.Parse(level)
	if !ok {
		return
	}
	h.rules.SetDefault(l)
}

// recompute re-derives the effective level of every cached, unpinned
// instance. Runs after every rule change so no instance ever holds a stale
// level.
func (h *Hub) recompute() {
	h.mu.RLock()
	snapshot := make([]*Logger, 0, len(h.instances))
	for _, l := range h.instances {
		snapshot = append(snapshot, l)
	}
	h.mu.RUnlock()
	for _, l := range snapshot {
		l.refresh()
	}
}

// SetEnabled flips the process-wide switch and returns the previous state.
// While disabled, every gated method (Log included) is a no-op and the sink
// is never invoked.
func (h *Hub) SetEnabled(on bool) bool {
	return h.enabled.Swap(on)
}

// Enabled reports the process-wide switch.
func (h *Hub) Enabled() bool {
	return h.enabled.Load()
}

// SetLogGating makes Log calls participate in level gating (true) or bypass
// it (false, the default). Returns the previous state.
func (h *Hub) SetLogGating(on bool) bool {
	return h.gateLog.Swap(on)
}

// SetSink swaps the sink every logger of this hub forwards to, returning the
// previous one so callers can restore it. Swapping in a Root() logger of
// another hub re-decorates an entire program's output.
func (h *Hub) SetSink(s Sink) Sink {
	h.mu.Lock()
	defer h.mu.Unlock()
	prev := h.sink
	if s != nil {
		h.sink = s
	}
	return prev
}

func (h *Hub) currentSink() Sink {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.sink
}

// Buffer returns the capture buffer emissions are mirrored into for loggers
// created with the Buffer option.
func (h *Hub) Buffer() *format.Buffer {
	return h.buffer
}

// Reset returns the hub to a pristine state for the next test case: all
// cached instances dropped, rules cleared back to the Info default, buffer
// emptied, switch on. The sink, palette and resolver are kept.
func (h *Hub) Reset() {
	h.mu.Lock()
	h.instances = make(map[string]*Logger)
	h.order = nil
	h.rules = levels.NewRules()
	h.rules.OnChange(h.recompute)
	h.mu.Unlock()
	h.buffer.Reset()
	h.enabled.Store(true)
	h.gateLog.Store(false)
}

// discover finds the registered logger whose RootPath contains file; the
// longest path wins, ties going to the earliest registration. Nil when no
// root path matches.
func (h *Hub) discover(file string) *Logger {
	h.mu.RLock()
	defer h.mu.RUnlock()
	var best *Logger
	bestLen := -1
	for _, ns := range h.order {
		l := h.instances[ns]
		if l == nil || ns == format.RootNamespace {
			continue
		}
		root := l.options().RootPath
		if root == "" || len(root) <= bestLen {
			continue
		}
		if file == root || strings.HasPrefix(file, root+string(os.PathSeparator)) {
			best = l
			bestLen = len(root)
		}
	}
	return best
}
