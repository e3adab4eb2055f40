package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"time"

	"github.com/BurntSushi/toml"
)

// defaultConfigFile is loaded from the working directory, if it exists, when
// no -config flag is given.
const defaultConfigFile = "tapevm.toml"

// config mirrors the command line flags, which take precedence over it.
type config struct {
	Timeout   duration `toml:"timeout"`
	Trace     bool     `toml:"trace"`
	TraceFile string   `toml:"trace-file"`
	TapeSize  int      `toml:"tape-size"`
	FoldInput *bool    `toml:"fold-input"`
}

type duration struct{ time.Duration }

func (d *duration) UnmarshalText(text []byte) (err error) {
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

type settings struct {
	timeout   time.Duration
	trace     bool
	traceFile string
	tapeSize  int
	fold      bool
	encode    bool
}

// loadConfig decodes the TOML file at path; an empty path loads
// defaultConfigFile if present.
func loadConfig(path string) (cfg config, err error) {
	required := path != ""
	if !required {
		path = defaultConfigFile
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return config{}, nil
		}
		return config{}, fmt.Errorf("cannot load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return config{}, fmt.Errorf("unknown keys in config %s: %v", path, undecoded)
	}
	return cfg, nil
}

// applyTo copies every configured value into s whose flag was not given
// explicitly.
func (cfg config) applyTo(s *settings, flags *flag.FlagSet) {
	given := make(map[string]bool)
	flags.Visit(func(f *flag.Flag) { given[f.Name] = true })

	if !given["timeout"] && cfg.Timeout.Duration != 0 {
		s.timeout = cfg.Timeout.Duration
	}
	if !given["trace"] && cfg.Trace {
		s.trace = true
	}
	if !given["trace-file"] && cfg.TraceFile != "" {
		s.traceFile = cfg.TraceFile
	}
	if !given["tape-size"] && cfg.TapeSize != 0 {
		s.tapeSize = cfg.TapeSize
	}
	if !given["no-fold"] && cfg.FoldInput != nil {
		s.fold = *cfg.FoldInput
	}
}
