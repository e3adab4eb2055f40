package byteio

import (
	"bufio"
	"io"
)

// Reader is an io.Reader that also supports reading single bytes.
type Reader interface {
	io.Reader
	io.ByteReader
}

// NewReader returns a Reader from r; if r already implements, it is simply returned.
// Otherwise bufio.Reader is used to provide byte reading around the given reader.
// If r implements Name() string, so will the returned Reader.
func NewReader(r io.Reader) Reader {
	if impl, ok := r.(Reader); ok {
		return impl
	}
	br := bufio.NewReader(r)
	if impl, ok := r.(interface{ Name() string }); ok {
		return namedReader{br, impl.Name()}
	}
	return br
}

type namedReader struct {
	Reader
	name string
}

func (nr namedReader) Name() string { return nr.name }

// FoldReader lower-cases any ASCII letter read through it; all other bytes
// pass unchanged.
type FoldReader struct{ Reader }

// ReadByte reads one byte, folding A-Z to a-z.
func (fr FoldReader) ReadByte() (byte, error) {
	b, err := fr.Reader.ReadByte()
	return Fold(b), err
}

// Read reads into p, folding A-Z to a-z.
func (fr FoldReader) Read(p []byte) (int, error) {
	n, err := fr.Reader.Read(p)
	for i, b := range p[:n] {
		p[i] = Fold(b)
	}
	return n, err
}

// Fold returns the lower case form of an ASCII letter, or b itself.
func Fold(b byte) byte {
	if 'A' <= b && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}
