package callsite

import (
	"strings"
	"testing"
)

func TestRuntimeResolvesCaller(t *testing.T) {
	resolve := Runtime()
	site, ok := resolve(0)
	if !ok {
		t.Fatal("expected runtime resolver to find a frame")
	}
	if !strings.HasSuffix(site.File, "callsite_test.go") {
		t.Fatalf("expected this test file as the immediate caller, got %q", site.File)
	}
	if site.Line <= 0 {
		t.Fatalf("expected a positive line number, got %d", site.Line)
	}
}

func TestRuntimeSkipsFrames(t *testing.T) {
	resolve := Runtime()
	var site Site
	var ok bool
	helper := func() {
		site, ok = resolve(1) // skip the helper itself
	}
	helper()
	if !ok {
		t.Fatal("expected a frame")
	}
	if !strings.HasSuffix(site.File, "callsite_test.go") {
		t.Fatalf("expected the helper's caller, got %q", site.File)
	}
}

func TestTag(t *testing.T) {
	s := Site{File: "/a/b/server.go", Line: 42}
	if got := s.Tag(); got != "server.go:42" {
		t.Fatalf("expected server.go:42, got %q", got)
	}
}

func TestFixed(t *testing.T) {
	resolve := Fixed("/src/pkg/x.go", 7)
	site, ok := resolve(99)
	if !ok || site.File != "/src/pkg/x.go" || site.Line != 7 {
		t.Fatalf("fixed resolver returned (%+v, %v)", site, ok)
	}
}

func TestNone(t *testing.T) {
	resolve := None()
	if _, ok := resolve(0); ok {
		t.Fatal("none resolver must never resolve")
	}
}

func TestRuntimeExhausted(t *testing.T) {
	resolve := Runtime()
	if _, ok := resolve(10000); ok {
		t.Fatal("expected no frame that far up the stack")
	}
}
