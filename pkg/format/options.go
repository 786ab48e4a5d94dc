package format

import "github.com/acrodrig/hub/pkg/levels"

// Options are the per-logger visibility toggles. The zero value disables
// everything; use Defaults() for the stock behavior (icons, compact
// inspection and time diffs on, file tags and buffering off).
type Options struct {
	// FileLine prepends an underlined "basename:line" tag resolved from the
	// call site.
	FileLine bool
	// Icons prepends a level icon before the rest of the prefix.
	Icons bool
	// IconSet overrides individual level icons. Only consulted when Icons is
	// set.
	IconSet map[levels.Level]string
	// Compact renders structured (non-primitive) arguments as single-line,
	// length-limited text instead of passing them through raw.
	Compact bool
	// TimeDiff appends "+X.XXms" since the namespace's previous emission.
	TimeDiff bool
	// Buffer mirrors every emission into the hub's capture buffer. Test
	// instrumentation only: the buffer is hard-capped and overflow panics.
	Buffer bool
	// RootPath marks the source tree this namespace owns, for root-façade
	// auto-discovery. Normalized to an absolute path at registration.
	RootPath string
	// DefaultLevel, when not Unknown (the zero value), overrides the rule
	// engine's fallback for this namespace at creation time.
	DefaultLevel levels.Level
	// GateLog makes Log participate in level gating with its own ordinal
	// instead of bypassing comparison entirely.
	GateLog bool
}

// Defaults returns the stock option set.
func Defaults() Options {
	return Options{
		Icons:    true,
		Compact:  true,
		TimeDiff: true,
	}
}

// defaultIcons are the stock per-level icons.
var defaultIcons = map[levels.Level]string{
	levels.Debug: "◌",
	levels.Info:  "ℹ",
	levels.Warn:  "⚠",
	levels.Error: "✖",
	levels.Log:   "▸",
}

// Icon returns the icon for a level, honoring IconSet overrides. Empty when
// icons are disabled or the level has none.
func (o Options) Icon(level levels.Level) string {
	if !o.Icons {
		return ""
	}
	if icon, ok := o.IconSet[level]; ok {
		return icon
	}
	return defaultIcons[level]
}
