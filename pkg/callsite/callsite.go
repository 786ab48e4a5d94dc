// Package callsite abstracts call-site introspection behind an injectable
// resolver so the logging core stays host-independent and testable with a
// fake. The real resolver walks runtime stack frames; when frame information
// is unavailable the caller degrades by omitting the file:line tag.
package callsite

import (
	"path/filepath"
	"runtime"
	"strconv"
)

// Site is a resolved source location.
type Site struct {
	File string
	Line int
}

// Tag formats the site as "basename:line", the form emitted in log prefixes.
func (s Site) Tag() string {
	return filepath.Base(s.File) + ":" + strconv.Itoa(s.Line)
}

// Resolver reports the source location skip frames above its own caller:
// skip 0 is the function that invoked the resolver, 1 is that function's
// caller, and so on. ok is false when no frame information is available.
type Resolver func(skip int) (site Site, ok bool)

// Runtime returns the production resolver, backed by runtime.Caller.
func Runtime() Resolver {
	return func(skip int) (Site, bool) {
		_, file, line, ok := runtime.Caller(skip + 1)
		if !ok {
			return Site{}, false
		}
		return Site{File: file, Line: line}, true
	}
}

// Fixed returns a resolver that always reports the given location, ignoring
// skip. Tests use it to pin auto-discovery and file tags to known paths.
func Fixed(file string, line int) Resolver {
	return func(int) (Site, bool) {
		return Site{File: file, Line: line}, true
	}
}

// None returns a resolver that never resolves, simulating a host without
// stack information.
func None() Resolver {
	return func(int) (Site, bool) {
		return Site{}, false
	}
}
