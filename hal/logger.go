package hal

import (
	"fmt"
	"io"
	"sync"
)

type writerLogger struct {
	mu sync.Mutex
	w  io.Writer
}

// NewLogger returns a Logger writing one line per call to w.
func NewLogger(w io.Writer) Logger {
	if w == nil {
		w = io.Discard
	}
	return &writerLogger{w: w}
}

func (l *writerLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *writerLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
