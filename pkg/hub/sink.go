package hub

import (
	"fmt"
	"io"
	"sync"
)

// Sink is the console-like object that ultimately receives formatted
// arguments. The decorated Logger implements Sink itself, so a logger can be
// substituted anywhere the original sink was used; methods it does not gate
// (Trace) are forwarded to the held sink directly.
type Sink interface {
	Debug(args ...any)
	Info(args ...any)
	Warn(args ...any)
	Error(args ...any)
	Log(args ...any)
	Trace(args ...any)
}

// WriterSink is the stock sink: each call becomes one fmt.Fprintln line on
// the wrapped writer. Writes are serialized so interleaved goroutines do not
// shear lines.
type WriterSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterSink wraps w as a Sink.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

func (s *WriterSink) write(args []any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintln(s.w, args...)
}

func (s *WriterSink) Debug(args ...any) { s.write(args) }
func (s *WriterSink) Info(args ...any)  { s.write(args) }
func (s *WriterSink) Warn(args ...any)  { s.write(args) }
func (s *WriterSink) Error(args ...any) { s.write(args) }
func (s *WriterSink) Log(args ...any)   { s.write(args) }
func (s *WriterSink) Trace(args ...any) { s.write(args) }
