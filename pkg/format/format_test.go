package format

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/muesli/termenv"

	"github.com/acrodrig/hub/pkg/callsite"
	"github.com/acrodrig/hub/pkg/colorhash"
	"github.com/acrodrig/hub/pkg/levels"
)

// plainFormatter builds a formatter whose palette renders no escape codes,
// so assertions can compare plain text.
func plainFormatter() (*Formatter, *Buffer) {
	buf := &Buffer{}
	return New(colorhash.NewWithProfile(termenv.Ascii), buf), buf
}

func bare() Options {
	return Options{} // everything off
}

func TestPrefixSplicedIntoFirstString(t *testing.T) {
	f, _ := plainFormatter()
	mark := time.Now()
	out := f.Build("test", levels.Info, bare(), &mark, nil, []any{"hello", 42})
	if len(out) != 2 {
		t.Fatalf("expected 2 args, got %v", out)
	}
	if out[0] != "test hello" {
		t.Fatalf("expected prefix spliced into first string, got %q", out[0])
	}
	if out[1] != 42 {
		t.Fatalf("expected second arg passed through, got %v", out[1])
	}
}

func TestRootPrefixEmpty(t *testing.T) {
	f, _ := plainFormatter()
	mark := time.Now()
	out := f.Build(RootNamespace, levels.Info, bare(), &mark, nil, []any{"hello"})
	if len(out) != 1 || out[0] != "hello" {
		t.Fatalf("root namespace must add no prefix and no space, got %v", out)
	}
}

func TestNonStringFirstArg(t *testing.T) {
	f, _ := plainFormatter()
	mark := time.Now()
	out := f.Build("test", levels.Info, bare(), &mark, nil, []any{42, "x"})
	if len(out) != 3 || out[0] != "test" || out[1] != 42 {
		t.Fatalf("expected prefix as its own leading arg, got %v", out)
	}
}

func TestNoArgs(t *testing.T) {
	f, _ := plainFormatter()
	mark := time.Now()
	out := f.Build("test", levels.Info, bare(), &mark, nil, nil)
	if len(out) != 1 || out[0] != "test" {
		t.Fatalf("expected bare prefix, got %v", out)
	}
}

func TestIconPrepended(t *testing.T) {
	f, _ := plainFormatter()
	mark := time.Now()
	opts := bare()
	opts.Icons = true
	out := f.Build("test", levels.Warn, opts, &mark, nil, []any{"careful"})
	first, ok := out[0].(string)
	if !ok || !strings.HasPrefix(first, "⚠ ") {
		t.Fatalf("expected warn icon before prefix, got %q", out[0])
	}
	if !strings.Contains(first, "test careful") {
		t.Fatalf("expected namespace and message after icon, got %q", first)
	}
}

func TestIconOverride(t *testing.T) {
	f, _ := plainFormatter()
	mark := time.Now()
	opts := bare()
	opts.Icons = true
	opts.IconSet = map[levels.Level]string{levels.Warn: ">>"}
	out := f.Build("test", levels.Warn, opts, &mark, nil, []any{"careful"})
	if !strings.HasPrefix(out[0].(string), ">> ") {
		t.Fatalf("expected overridden icon, got %q", out[0])
	}
}

func TestFileTagBeforeNamespace(t *testing.T) {
	f, _ := plainFormatter()
	mark := time.Now()
	opts := bare()
	opts.FileLine = true
	site := &callsite.Site{File: "/a/b/server.go", Line: 7}
	out := f.Build("test", levels.Info, opts, &mark, site, []any{"up"})
	if out[0] != "server.go:7 test up" {
		t.Fatalf("expected file tag before namespace prefix, got %q", out[0])
	}
}

func TestFileTagOmittedWithoutSite(t *testing.T) {
	f, _ := plainFormatter()
	mark := time.Now()
	opts := bare()
	opts.FileLine = true
	out := f.Build("test", levels.Info, opts, &mark, nil, []any{"up"})
	if out[0] != "test up" {
		t.Fatalf("missing call-site info must degrade to no tag, got %q", out[0])
	}
}

func TestCompactInspectsStructured(t *testing.T) {
	f, _ := plainFormatter()
	mark := time.Now()
	opts := bare()
	opts.Compact = true
	out := f.Build("test", levels.Info, opts, &mark, nil, []any{"state", map[string]int{"a": 1}})
	s, ok := out[1].(string)
	if !ok {
		t.Fatalf("expected structured arg rendered to string, got %T", out[1])
	}
	if !strings.Contains(s, "a:1") {
		t.Fatalf("expected map contents in compact form, got %q", s)
	}
	if strings.Contains(s, "\n") {
		t.Fatalf("compact form must be single-line, got %q", s)
	}
}

func TestCompactPassesPrimitives(t *testing.T) {
	f, _ := plainFormatter()
	mark := time.Now()
	opts := bare()
	opts.Compact = true
	out := f.Build("test", levels.Info, opts, &mark, nil, []any{"n", 42, 3.5, true})
	if out[1] != 42 || out[2] != 3.5 || out[3] != true {
		t.Fatalf("primitives must pass through untouched, got %v", out)
	}
}

func TestCompactCapsCollections(t *testing.T) {
	f, _ := plainFormatter()
	mark := time.Now()
	opts := bare()
	opts.Compact = true
	long := make([]int, 30)
	out := f.Build("test", levels.Info, opts, &mark, nil, []any{long})
	s := out[1].(string)
	if !strings.Contains(s, "…(+5 more)") {
		t.Fatalf("expected 5 elided elements noted, got %q", s)
	}
}

func TestTimeDiffAppendedAndMarkAdvanced(t *testing.T) {
	f, _ := plainFormatter()
	t0 := time.Unix(1000, 0)
	times := []time.Time{t0, t0.Add(10 * time.Millisecond)}
	f.SetClock(func() time.Time {
		now := times[0]
		if len(times) > 1 {
			times = times[1:]
		}
		return now
	})

	opts := bare()
	opts.TimeDiff = true
	mark := t0
	out := f.Build("test", levels.Info, opts, &mark, nil, []any{"x"})
	if out[len(out)-1] != "+0.00ms" {
		t.Fatalf("expected first diff against initial mark, got %v", out[len(out)-1])
	}
	out = f.Build("test", levels.Info, opts, &mark, nil, []any{"y"})
	if out[len(out)-1] != "+10.00ms" {
		t.Fatalf("expected measured diff, got %v", out[len(out)-1])
	}
	if !mark.Equal(t0.Add(10 * time.Millisecond)) {
		t.Fatalf("expected mark advanced to last emission, got %v", mark)
	}
}

func TestTimeDiffDisabledLeavesMark(t *testing.T) {
	f, _ := plainFormatter()
	mark := time.Unix(1000, 0)
	before := mark
	f.Build("test", levels.Info, bare(), &mark, nil, []any{"x"})
	if !mark.Equal(before) {
		t.Fatal("mark must not advance when time diffs are disabled")
	}
}

func TestTimeDiffWallClock(t *testing.T) {
	f, _ := plainFormatter()
	opts := bare()
	opts.TimeDiff = true
	mark := time.Now()
	f.Build("test", levels.Info, opts, &mark, nil, []any{"first"})
	time.Sleep(12 * time.Millisecond)
	out := f.Build("test", levels.Info, opts, &mark, nil, []any{"second"})
	token := out[len(out)-1].(string)
	ms, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimPrefix(token, "+"), "ms"), 64)
	if err != nil {
		t.Fatalf("unparseable time token %q: %v", token, err)
	}
	if ms < 10 {
		t.Fatalf("expected at least ~10ms elapsed, got %v", ms)
	}
}

func TestBufferCapture(t *testing.T) {
	f, buf := plainFormatter()
	mark := time.Now()
	opts := bare()
	opts.Buffer = true
	f.Build("test", levels.Warn, opts, &mark, nil, []any{"z"})
	entries := buf.Entries()
	if len(entries) != 1 {
		t.Fatalf("expected 1 captured entry, got %d", len(entries))
	}
	if entries[0].Level != "warn" || entries[0].Args[0] != "test z" {
		t.Fatalf("unexpected entry %+v", entries[0])
	}
}

func TestBufferOverflowPanics(t *testing.T) {
	f, buf := plainFormatter()
	for i := 0; i < MaxBufferEntries; i++ {
		if err := buf.Append("info", []any{"fill"}); err != nil {
			t.Fatalf("unexpected error while filling: %v", err)
		}
	}
	defer func() {
		if r := recover(); r != ErrBufferOverflow {
			t.Fatalf("expected ErrBufferOverflow panic, got %v", r)
		}
	}()
	mark := time.Now()
	opts := bare()
	opts.Buffer = true
	f.Build("test", levels.Info, opts, &mark, nil, []any{"one too many"})
}
