package logio

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"
)

// Options configures a Logger.
type Options struct {
	// Output receives human readable text records; os.Stderr if nil.
	Output io.Writer

	// Level filters records written to Output.
	Level slog.Leveler

	// TraceFile, if non-empty, names a file that receives every record,
	// including debug level trace, as JSON lines.
	TraceFile string
}

// Logger is a structured logger fanned out over one or more handlers.
type Logger struct {
	*slog.Logger
	closers []io.Closer
}

// New builds a Logger from options; the caller should Close it to release
// any trace file.
func New(opts Options) (*Logger, error) {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	var log Logger
	handlers := []slog.Handler{
		slog.NewTextHandler(out, &slog.HandlerOptions{Level: opts.Level}),
	}
	if opts.TraceFile != "" {
		f, err := os.Create(opts.TraceFile)
		if err != nil {
			return nil, fmt.Errorf("unable to create trace file: %w", err)
		}
		log.closers = append(log.closers, f)
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	log.Logger = slog.New(slogmulti.Fanout(handlers...))
	return &log, nil
}

// Close releases any trace file.
func (log *Logger) Close() (err error) {
	for i := len(log.closers) - 1; i >= 0; i-- {
		if cerr := log.closers[i].Close(); err == nil {
			err = cerr
		}
	}
	log.closers = nil
	return err
}

// Leveledf returns a typical printf-style formatting function that logs
// messages with the given level.
func (log *Logger) Leveledf(level slog.Level) func(mess string, args ...interface{}) {
	return func(mess string, args ...interface{}) {
		if len(args) > 0 {
			mess = fmt.Sprintf(mess, args...)
		}
		log.Log(context.Background(), level, mess)
	}
}

// ErrorIf logs any non-nil error at error level.
func (log *Logger) ErrorIf(err error) {
	if err != nil {
		log.Error(fmt.Sprintf("%+v", err))
	}
}
