package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mainTestCase struct {
	name  string
	args  []string
	stdin string

	code   int
	stdout string
	stderr []string
}

func (mt mainTestCase) run(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := runMain(context.Background(), mt.args, strings.NewReader(mt.stdin), &stdout, &stderr)
	assert.Equal(t, mt.code, code, "expected exit code")
	assert.Equal(t, mt.stdout, stdout.String(), "expected stdout")
	for _, part := range mt.stderr {
		assert.Contains(t, stderr.String(), part, "expected stderr")
	}
	if t.Failed() {
		t.Logf("stderr:\n%s", stderr.String())
	}
}

func Test_main(t *testing.T) {
	dir := testDir(t)
	helloPath := writeTestFile(t, dir, "hello.b", helloWorld+"\n")
	catPath := writeTestFile(t, dir, "cat.b", ",[.,]")
	configPath := writeTestFile(t, dir, "small.toml", "tape-size = 4\n")
	tracePath := filepath.Join(dir, "trace.jsonl")

	for _, mt := range []mainTestCase{
		{
			name:   "file",
			args:   []string{helloPath},
			stdout: "Hello World!\n",
		},
		{
			name:   "literal",
			args:   []string{"++++++++[>++++++++<-]>+."},
			stdout: "A",
		},
		{
			name:   "stdin program",
			args:   []string{"-"},
			stdin:  "+++++++++++++++++++++++++++++++++.",
			stdout: "!",
		},
		{
			name:   "encode",
			args:   []string{"-encode", helloPath},
			stdout: "10+[>7+>10+>3+>+4<-]>++.>+.7+..3+.>++.<<15+.>.3+.6-.8-.>+.>.\n\n",
		},
		{
			name:   "input folded until exhausted",
			args:   []string{catPath},
			stdin:  "Hi!",
			code:   1,
			stdout: "hi!",
			stderr: []string{"level=ERROR", "input exhausted"},
		},
		{
			name:   "input unfolded",
			args:   []string{"-no-fold", catPath},
			stdin:  "Hi!",
			code:   1,
			stdout: "Hi!",
		},
		{
			name:   "unbalanced",
			args:   []string{"+["},
			code:   1,
			stderr: []string{"<literal>: malformed program: unbalanced brackets"},
		},
		{
			name:   "config tape size",
			args:   []string{"-config", configPath, ">>>>"},
			code:   1,
			stderr: []string{"out of bounds", "tape size 4"},
		},
		{
			name:   "flag beats config",
			args:   []string{"-config", configPath, "-tape-size", "8", ">>>>+."},
			stdout: "\x01",
		},
		{
			name: "trace dump",
			args: []string{"-trace", "-tape-size", "16", "+<"},
			code: 1,
			stderr: []string{
				"level=DEBUG",
				"# VM Dump",
				"  @ 0 >01",
			},
		},
		{
			name:   "trace file",
			args:   []string{"-trace-file", tracePath, "+++."},
			stdout: "\x03",
		},
		{
			name:   "no program",
			args:   nil,
			code:   2,
			stderr: []string{"Usage: tapevm"},
		},
		{
			name: "bad flag",
			args: []string{"-bogus"},
			code: 2,
		},
	} {
		t.Run(mt.name, mt.run)
	}

	trace, err := ioutil.ReadFile(tracePath)
	require.NoError(t, err, "must have written a trace file")
	var msgs, sources []string
	for _, line := range strings.Split(strings.TrimSpace(string(trace)), "\n") {
		var rec struct{ Msg, Source string }
		require.NoError(t, json.Unmarshal([]byte(line), &rec), "must parse trace line %q", line)
		msgs = append(msgs, rec.Msg)
		if rec.Source != "" {
			sources = append(sources, rec.Source)
		}
	}
	assert.Contains(t, msgs, "loaded program")
	assert.Equal(t, []string{"<literal> (4 bytes)"}, sources, "expected loaded source to be described")
	assert.Contains(t, msgs, "\t> @0 3inc -- ptr:0 cell:0")
	assert.Contains(t, msgs, "output: ^C", "expected output to be logged")
}

func Test_main_defaultConfig(t *testing.T) {
	dir := testDir(t)
	writeTestFile(t, dir, defaultConfigFile, "tape-size = 2\n")

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(wd)

	mainTestCase{
		args:   []string{">>"},
		code:   1,
		stderr: []string{"tape size 2"},
	}.run(t)
}
