package fileinput

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
)

// StdinArg names standard input as a program source.
const StdinArg = "-"

// Source is a named program text.
type Source struct {
	Name string
	Text string
}

func (src Source) String() string { return fmt.Sprintf("%v (%v bytes)", src.Name, len(src.Text)) }

// Resolve turns a command line argument into a program Source:
//   - StdinArg reads the whole of stdin
//   - an argument naming an existing regular file reads that file
//   - any other argument is itself the program text
func Resolve(arg string, stdin io.Reader) (Source, error) {
	if arg == StdinArg {
		return readSource(stdin)
	}
	if info, err := os.Stat(arg); err == nil && info.Mode().IsRegular() {
		f, err := os.Open(arg)
		if err != nil {
			return Source{}, err
		}
		defer f.Close()
		return readSource(f)
	}
	return Source{Name: "<literal>", Text: arg}, nil
}

func readSource(r io.Reader) (Source, error) {
	b, err := ioutil.ReadAll(r)
	if err != nil {
		return Source{}, fmt.Errorf("failed to read %v: %w", nameOf(r), err)
	}
	return Source{Name: nameOf(r), Text: string(b)}, nil
}

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}
