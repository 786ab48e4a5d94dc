package levels

import (
	"strings"
	"sync"
	"unicode"
)

// pattern is one compiled rule pattern: either an exact namespace or a
// prefix with a trailing wildcard ("net*" matches "net", "nethttp", ...).
// A bare "*" compiles to an empty prefix, matching every namespace.
type pattern struct {
	text   string
	prefix bool
}

func compile(raw string) pattern {
	if strings.HasSuffix(raw, "*") {
		return pattern{text: strings.TrimSuffix(raw, "*"), prefix: true}
	}
	return pattern{text: raw}
}

func (p pattern) match(namespace string) bool {
	if p.prefix {
		return strings.HasPrefix(namespace, p.text)
	}
	return p.text == namespace
}

// resolution order: most restrictive first, so an "off" rule for a namespace
// always wins over a simultaneously-matching "debug" rule.
var resolutionOrder = [6]Level{Off, Log, Error, Warn, Info, Debug}

// Rules holds the per-level pattern sets and derives the effective level of a
// namespace. All methods are safe for concurrent use. Change callbacks fire
// after every Configure so caches can recompute eagerly.
type Rules struct {
	mu       sync.RWMutex
	sets     map[Level][]pattern
	def      Level
	onChange []func()
}

// NewRules returns an empty rule set whose unmatched namespaces resolve to
// Info.
func NewRules() *Rules {
	return &Rules{
		sets: make(map[Level][]pattern),
		def:  Info,
	}
}

// SetDefault changes the level unmatched namespaces resolve to, then fires
// change callbacks.
func (r *Rules) SetDefault(l Level) {
	r.mu.Lock()
	r.def = l
	r.mu.Unlock()
	r.notify()
}

// Default returns the fallback level for unmatched namespaces.
func (r *Rules) Default() Level {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.def
}

// Configure replaces the pattern set for one level. Patterns are a comma or
// whitespace delimited list of exact names and suffix globs; an empty source
// clears the level's set. Change callbacks fire afterwards.
func (r *Rules) Configure(level Level, patternSource string) {
	fields := strings.FieldsFunc(patternSource, func(c rune) bool {
		return c == ',' || unicode.IsSpace(c)
	})
	compiled := make([]pattern, 0, len(fields))
	for _, f := range fields {
		compiled = append(compiled, compile(f))
	}

	r.mu.Lock()
	if len(compiled) == 0 {
		delete(r.sets, level)
	} else {
		r.sets[level] = compiled
	}
	r.mu.Unlock()
	r.notify()
}

// Effective computes the level that applies to a namespace. Levels are walked
// from Off down to Debug and the first whose set matches wins; with no match
// the configured default applies.
func (r *Rules) Effective(namespace string) Level {
	level, _ := r.Lookup(namespace)
	return level
}

// Lookup is Effective plus whether any rule actually matched, so callers can
// distinguish a rule-assigned level from the fallback.
func (r *Rules) Lookup(namespace string) (Level, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, level := range resolutionOrder {
		for _, p := range r.sets[level] {
			if p.match(namespace) {
				return level, true
			}
		}
	}
	return r.def, false
}

// OnChange registers a callback invoked after every Configure or SetDefault.
// Callbacks run outside the rules lock and may call back into Rules.
func (r *Rules) OnChange(fn func()) {
	r.mu.Lock()
	r.onChange = append(r.onChange, fn)
	r.mu.Unlock()
}

func (r *Rules) notify() {
	r.mu.RLock()
	callbacks := make([]func(), len(r.onChange))
	copy(callbacks, r.onChange)
	r.mu.RUnlock()
	for _, fn := range callbacks {
		fn()
	}
}
