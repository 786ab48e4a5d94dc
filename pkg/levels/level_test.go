package levels

import "testing"

func TestOrdering(t *testing.T) {
	if !(Unknown < Debug && Debug < Info && Info < Warn && Warn < Error && Error < Log && Log < Off) {
		t.Fatal("level ordering broken")
	}
}

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want Level
		ok   bool
	}{
		{"debug", Debug, true},
		{"Info", Info, true},
		{"WARN", Warn, true},
		{"warning", Warn, true},
		{" error ", Error, true},
		{"log", Log, true},
		{"off", Off, true},
		{"", Unknown, false},
		{"verbose", Unknown, false},
	}
	for _, c := range cases {
		got, ok := Parse(c.in)
		if got != c.want || ok != c.ok {
			t.Fatalf("Parse(%q) = (%v, %v), want (%v, %v)", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestString(t *testing.T) {
	if Debug.String() != "debug" || Off.String() != "off" {
		t.Fatal("level names wrong")
	}
	if Level(42).String() != "unknown" {
		t.Fatal("out-of-range levels should stringify as unknown")
	}
}
