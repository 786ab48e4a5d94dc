// Package format assembles the final argument list handed to the sink for
// one emission: colorized namespace prefix, optional file:line tag, optional
// level icon, compact inspection of structured arguments and the elapsed-time
// suffix. All assembly is total over its inputs; the only intentional failure
// is the capture-buffer overflow guard.
package format

import (
	"fmt"
	"time"

	"github.com/acrodrig/hub/pkg/callsite"
	"github.com/acrodrig/hub/pkg/colorhash"
	"github.com/acrodrig/hub/pkg/levels"
)

// RootNamespace is the catch-all namespace. It renders with an empty prefix
// so anonymous output looks like plain console output.
const RootNamespace = "*"

// Formatter builds sink argument lists. One formatter is shared by every
// logger of a hub; per-namespace state (the elapsed-time mark) stays with the
// logger and is passed in.
type Formatter struct {
	palette *colorhash.Palette
	buffer  *Buffer
	now     func() time.Time
}

// New returns a formatter rendering through palette and capturing into
// buffer. A nil buffer disables capture regardless of options.
func New(palette *colorhash.Palette, buffer *Buffer) *Formatter {
	return &Formatter{palette: palette, buffer: buffer, now: time.Now}
}

// SetClock overrides the time source used for elapsed-time computation.
// Tests use this for deterministic diffs.
func (f *Formatter) SetClock(now func() time.Time) {
	f.now = now
}

// Build produces the final ordered argument list for one emission. site is
// the pre-resolved call site (nil when unavailable or not wanted: the tag is
// omitted). mark is the namespace's last-emission timestamp; it is advanced
// only when TimeDiff is enabled. The caller must serialize access to mark.
func (f *Formatter) Build(namespace string, level levels.Level, opts Options, mark *time.Time, site *callsite.Site, args []any) []any {
	head := ""
	if namespace != RootNamespace {
		head = f.palette.Namespace(namespace, true)
	}
	if opts.FileLine && site != nil {
		head = join(f.palette.FileTag(site.Tag()), head)
	}
	if icon := opts.Icon(level); icon != "" {
		head = join(icon, head)
	}

	rest := args
	if opts.Compact {
		rest = make([]any, len(args))
		for i, a := range args {
			if isPrimitive(a) {
				rest[i] = a
			} else {
				rest[i] = inspect(a)
			}
		}
	}

	out := make([]any, 0, len(rest)+2)
	switch {
	case len(rest) == 0:
		if head != "" {
			out = append(out, head)
		}
	default:
		if s, ok := rest[0].(string); ok {
			out = append(out, join(head, s))
			out = append(out, rest[1:]...)
		} else {
			if head != "" {
				out = append(out, head)
			}
			out = append(out, rest...)
		}
	}

	if opts.TimeDiff {
		now := f.now()
		token := fmt.Sprintf("+%.2fms", float64(now.Sub(*mark).Nanoseconds())/1e6)
		out = append(out, f.palette.Colorize(namespace, token))
		*mark = now
	}

	if opts.Buffer && f.buffer != nil {
		if err := f.buffer.Append(level.String(), out); err != nil {
			panic(err)
		}
	}
	return out
}

// join concatenates two prefix segments with a single space, eliding the
// separator when either side is empty. This is what keeps the root
// namespace's message flush-left: its prefix is empty, so nothing is spliced
// in front of it.
func join(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	}
	return a + " " + b
}
