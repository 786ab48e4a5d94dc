package hub

// Package hub decorates a console-like sink with per-namespace verbosity
// levels, colorized prefixes, optional file:line tagging, inter-call timing
// and compact structured-argument rendering. Debug statements can stay in
// code permanently; their visibility is toggled by environment-driven rules.
//
// Key features
//
//   - One cached logger per namespace via Get(name); repeated lookups return
//     the same instance, so level changes are visible everywhere
//   - Effective level derived from per-level pattern rules (exact names,
//     suffix globs like "net*", or a bare "*"), most restrictive first
//   - A global on/off switch checked before any level comparison
//   - A "*" root façade that attributes anonymous calls to whichever
//     registered namespace owns the caller's file tree
//   - Sink replacement: any object with console-shaped Debug/Info/Warn/
//     Error/Log/Trace methods can be swapped in, and a Logger is itself a
//     Sink, so decorated output can be layered
//
// Basic usage
//
//	net := hub.Get("net")
//	net.Info("listening", addr)
//	net.Debug("handshake state", state) // hidden until a rule allows debug
//
//	hub.Configure("debug", "net*")      // now it emits
//	hub.Configure("off", "net.noisy")   // off always wins over debug
//
// Levels
//
// debug < info < warn < error; "off" silences all four. A call emits when
// its level is at or above the namespace's effective level. Log mirrors the
// unconditional print call and bypasses comparison unless log gating is
// explicitly enabled. Setting an unknown level name never fails: the
// namespace fails open and emits everything.
//
// Root façade
//
//	pkgLog := hub.Get("pkg", format.Options{RootPath: "/src/pkg"})
//	hub.Root().Info("hello") // called from /src/pkg/... routes through "pkg"
//
// Testing
//
// Construct a private Hub with a fixed resolver and an Ascii palette, enable
// the Buffer option and assert on Buffer().Entries(); or Reset() the default
// hub between cases. The buffer is capped at 1000 entries and panics past
// that, so capture cannot be left on in a long-running process.
