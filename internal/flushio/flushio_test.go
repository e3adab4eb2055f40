package flushio_test

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/jcorbin/tapevm/internal/flushio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	bytes.Buffer
	flushed int
}

func (rw *recordingWriter) Flush() error {
	rw.flushed++
	return nil
}

type failWriter struct{ err error }

func (fw failWriter) Write(p []byte) (int, error) { return 0, fw.err }

func Test_NewWriteFlusher(t *testing.T) {
	assert.Nil(t, flushio.NewWriteFlusher(nil), "expected nil to stay nil")
	assert.Equal(t, flushio.Discard, flushio.NewWriteFlusher(io.Discard), "expected shared discard")

	var rw recordingWriter
	assert.Equal(t, &rw, flushio.NewWriteFlusher(&rw), "expected a WriteFlusher to pass through")

	var sb strings.Builder
	wf := flushio.NewWriteFlusher(&sb)
	_, err := io.WriteString(wf, "hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", sb.String(), "expected buffer writes to not need flushing")

	var fw failWriter
	_, isBuffered := flushio.NewWriteFlusher(fw).(*bufio.Writer)
	assert.True(t, isBuffered, "expected a bufio.Writer for other writers")
}

func Test_WriteFlushers(t *testing.T) {
	assert.Nil(t, flushio.WriteFlushers(nil, nil), "expected no writers")

	var a, b recordingWriter
	assert.Equal(t, &a, flushio.WriteFlushers(nil, &a), "expected single writer to pass through")

	wf := flushio.WriteFlushers(flushio.WriteFlushers(&a), flushio.WriteFlushers(&b, nil))
	require.NoError(t, flushio.WriteByte(wf, 'x'))
	_, err := io.WriteString(wf, "yz")
	require.NoError(t, err)
	require.NoError(t, wf.Flush())

	assert.Equal(t, "xyz", a.String())
	assert.Equal(t, "xyz", b.String())
	assert.Equal(t, 1, a.flushed)
	assert.Equal(t, 1, b.flushed)

	bang := errors.New("bang")
	wf = flushio.WriteFlushers(&a, bufio.NewWriterSize(failWriter{bang}, 16))
	require.NoError(t, flushio.WriteByte(wf, '!'), "expected buffered write to succeed")
	assert.Equal(t, bang, wf.Flush(), "expected flush error")
}
