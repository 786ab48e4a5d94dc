package format

import (
	"errors"
	"sync"
)

// MaxBufferEntries is the hard cap on capture-buffer growth. The buffer
// exists to make emissions observable in tests; exceeding the cap means the
// instrumentation was left on in a long-running process.
const MaxBufferEntries = 1000

// ErrBufferOverflow is the panic value raised when the capture buffer would
// exceed MaxBufferEntries.
var ErrBufferOverflow = errors.New("hub: capture buffer exceeded " +
	"1000 entries; buffering is test instrumentation and must not stay " +
	"enabled in normal operation")

// Entry is one captured emission: the level name and the final argument list
// handed to the sink.
type Entry struct {
	Level string
	Args  []any
}

// Buffer is a bounded, ordered capture of emissions. Safe for concurrent use.
type Buffer struct {
	mu      sync.Mutex
	entries []Entry
}

// Append records one emission. It returns ErrBufferOverflow when the cap
// would be exceeded; the entry is not recorded in that case.
func (b *Buffer) Append(level string, args []any) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.entries) >= MaxBufferEntries {
		return ErrBufferOverflow
	}
	b.entries = append(b.entries, Entry{Level: level, Args: args})
	return nil
}

// Entries returns a copy of the captured emissions in order.
func (b *Buffer) Entries() []Entry {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Entry, len(b.entries))
	copy(out, b.entries)
	return out
}

// Len reports the number of captured emissions.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}

// Reset discards all captured emissions.
func (b *Buffer) Reset() {
	b.mu.Lock()
	b.entries = nil
	b.mu.Unlock()
}
