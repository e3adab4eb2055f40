package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jcorbin/tapevm/internal/fileinput"
	"github.com/jcorbin/tapevm/internal/logio"
	"github.com/jcorbin/tapevm/internal/tape"
)

func main() {
	os.Exit(runMain(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func runMain(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var s settings
	var configPath string
	var noFold bool

	flags := flag.NewFlagSet("tapevm", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.DurationVar(&s.timeout, "timeout", 0, "specify a time limit")
	flags.BoolVar(&s.trace, "trace", false, "enable trace logging")
	flags.StringVar(&s.traceFile, "trace-file", "", "write JSON trace records into a file")
	flags.IntVar(&s.tapeSize, "tape-size", tape.DefaultSize, "number of tape cells")
	flags.BoolVar(&noFold, "no-fold", false, "do not lower-case input letters")
	flags.BoolVar(&s.encode, "encode", false, "print the compacted program rather than running it")
	flags.StringVar(&configPath, "config", "", "load settings from a TOML file (default "+defaultConfigFile+" if present)")
	flags.Usage = func() {
		fmt.Fprintf(stderr, "Usage: tapevm [options] <program-file | program-text | ->\n")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	s.fold = !noFold

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(stderr, "ERROR: %v\n", err)
		return 1
	}
	cfg.applyTo(&s, flags)

	if flags.NArg() != 1 {
		flags.Usage()
		return 2
	}

	level := slog.LevelWarn
	if s.trace {
		level = slog.LevelDebug
	}
	log, err := logio.New(logio.Options{
		Output:    stderr,
		Level:     level,
		TraceFile: s.traceFile,
	})
	if err != nil {
		fmt.Fprintf(stderr, "ERROR: %v\n", err)
		return 1
	}
	defer log.Close()

	src, err := fileinput.Resolve(flags.Arg(0), stdin)
	if err != nil {
		log.ErrorIf(err)
		return 1
	}

	if s.encode {
		fmt.Fprintln(stdout, Compact(src.Text))
		return 0
	}

	opts := []VMOption{
		WithInput(stdin),
		WithTee(stdout),
		WithTapeSize(s.tapeSize),
		WithFoldInput(s.fold),
	}
	if s.trace || s.traceFile != "" {
		opts = append(opts,
			WithLogf(log.Leveledf(slog.LevelDebug)),
			WithTee(&logio.Writer{Logf: log.Leveledf(slog.LevelInfo)}),
		)
	}
	vm, err := New(src.Text, opts...)
	if err != nil {
		log.ErrorIf(fmt.Errorf("%v: %w", src.Name, err))
		return 1
	}
	log.Debug("loaded program", "source", src.String(), "encoded", len(vm.Encoded()))

	if s.timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	if _, err := vm.Run(ctx); err != nil {
		attrs := []any{"source", src.Name, "error", err}
		if at, ok := errorCursor(err); ok {
			attrs = append(attrs, "cursor", at)
		}
		log.Error("run failed", attrs...)
		if s.trace {
			vmDumper{vm: vm, out: stderr}.dump()
		}
		return 1
	}
	return 0
}
