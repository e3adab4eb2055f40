package logio

import (
	"sync"

	"github.com/jcorbin/tapevm/internal/byteio"
)

// Writer logs program output through a formatted logging function, one
// record per output line, rendered printable by byteio.Escape.
// It implements Flush, so may be used wherever a flushio.WriteFlusher is
// wanted; flushing logs any partial line.
type Writer struct {
	Logf func(string, ...interface{})

	mu   sync.Mutex
	line []byte
}

// Write collects p into the current line, logging each line as it is
// completed by a newline.
func (lw *Writer) Write(p []byte) (n int, err error) {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	for _, b := range p {
		lw.writeByte(b)
	}
	return len(p), nil
}

// WriteByte collects a single byte, as with Write.
func (lw *Writer) WriteByte(b byte) error {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	lw.writeByte(b)
	return nil
}

// Flush logs any partial line.
func (lw *Writer) Flush() error {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	if len(lw.line) > 0 {
		lw.logLine()
	}
	return nil
}

// Close calls Flush.
func (lw *Writer) Close() error {
	return lw.Flush()
}

func (lw *Writer) writeByte(b byte) {
	if b == '\n' {
		lw.logLine()
	} else {
		lw.line = append(lw.line, b)
	}
}

func (lw *Writer) logLine() {
	lw.Logf("output: %s", byteio.Escape(lw.line))
	lw.line = lw.line[:0]
}
