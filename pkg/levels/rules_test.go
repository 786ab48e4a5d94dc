package levels

import "testing"

func TestDefaultFallback(t *testing.T) {
	r := NewRules()
	if got := r.Effective("anything"); got != Info {
		t.Fatalf("expected unmatched namespace at Info, got %v", got)
	}
	r.SetDefault(Warn)
	if got := r.Effective("anything"); got != Warn {
		t.Fatalf("expected unmatched namespace at Warn after SetDefault, got %v", got)
	}
}

func TestExactMatch(t *testing.T) {
	r := NewRules()
	r.Configure(Debug, "foo")
	if got := r.Effective("foo"); got != Debug {
		t.Fatalf("expected foo at Debug, got %v", got)
	}
	if got := r.Effective("foobar"); got != Info {
		t.Fatalf("exact pattern must not match foobar, got %v", got)
	}
}

func TestGlobMatch(t *testing.T) {
	r := NewRules()
	r.Configure(Debug, "f*")
	for _, ns := range []string{"foo", "far", "f"} {
		if got := r.Effective(ns); got != Debug {
			t.Fatalf("expected %q to match f*, got %v", ns, got)
		}
	}
	if got := r.Effective("bar"); got != Info {
		t.Fatalf("expected bar to miss f*, got %v", got)
	}
}

func TestBareWildcard(t *testing.T) {
	r := NewRules()
	r.Configure(Error, "*")
	if got := r.Effective("anything.at.all"); got != Error {
		t.Fatalf("expected bare * to match everything, got %v", got)
	}
}

func TestMostRestrictiveWins(t *testing.T) {
	r := NewRules()
	r.Configure(Off, "*")
	r.Configure(Debug, "foo")
	if got := r.Effective("foo"); got != Off {
		t.Fatalf("off rule must beat debug rule, got %v", got)
	}
}

func TestDelimiters(t *testing.T) {
	r := NewRules()
	r.Configure(Debug, "a, b  c,d")
	for _, ns := range []string{"a", "b", "c", "d"} {
		if got := r.Effective(ns); got != Debug {
			t.Fatalf("expected %q from mixed-delimiter list, got %v", ns, got)
		}
	}
}

func TestReconfigureReplaces(t *testing.T) {
	r := NewRules()
	r.Configure(Debug, "foo")
	r.Configure(Debug, "bar")
	if got := r.Effective("foo"); got != Info {
		t.Fatalf("configure must replace the level's set, foo still at %v", got)
	}
	if got := r.Effective("bar"); got != Debug {
		t.Fatalf("expected bar at Debug, got %v", got)
	}
	r.Configure(Debug, "")
	if got := r.Effective("bar"); got != Info {
		t.Fatalf("empty source must clear the set, bar still at %v", got)
	}
}

func TestLookupMatched(t *testing.T) {
	r := NewRules()
	if _, matched := r.Lookup("x"); matched {
		t.Fatal("no rule should match an empty rule set")
	}
	r.Configure(Warn, "x")
	if level, matched := r.Lookup("x"); !matched || level != Warn {
		t.Fatalf("expected (Warn, true), got (%v, %v)", level, matched)
	}
}

func TestOnChange(t *testing.T) {
	r := NewRules()
	fired := 0
	r.OnChange(func() { fired++ })
	r.Configure(Debug, "foo")
	r.SetDefault(Error)
	if fired != 2 {
		t.Fatalf("expected change callback after Configure and SetDefault, fired %d times", fired)
	}
}
