package levels

import "strings"

// Level is a verbosity tier. Higher tiers suppress lower-verbosity calls:
// a call at level L emits only when L >= the namespace's effective level.
type Level int8

const (
	// Unknown is the zero value and the fail-open ordinal: it sorts below
	// Debug, so a namespace whose level was set to an unrecognized name
	// emits at every level. Bad level input must never crash or silence a
	// program.
	Unknown Level = iota
	Debug
	Info
	Warn
	Error
	// Log mirrors the unconditional print call. It only participates in
	// level comparison when log-gating is explicitly enabled.
	Log
	// Off sorts above everything; nothing gated passes.
	Off
)

var levelNames = map[Level]string{
	Unknown: "unknown",
	Debug:   "debug",
	Info:    "info",
	Warn:    "warn",
	Error:   "error",
	Log:     "log",
	Off:     "off",
}

// String returns the lowercase name of the level.
func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "unknown"
}

// Parse maps a level name to its Level, case-insensitively. Unrecognized
// names return (Unknown, false); callers that must not fail use the Unknown
// ordinal as-is and fail open.
func Parse(name string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return Debug, true
	case "info":
		return Info, true
	case "warn", "warning":
		return Warn, true
	case "error":
		return Error, true
	case "log":
		return Log, true
	case "off":
		return Off, true
	}
	return Unknown, false
}

// Gated lists the four level-gated methods, in verbosity order.
var Gated = [4]Level{Debug, Info, Warn, Error}
