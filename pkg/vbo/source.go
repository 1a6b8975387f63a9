package vbo

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/Faultbox/vbogen/pkg/encoding"
)

// maxLineSize bounds a single source line.
const maxLineSize = 1 << 20

// Source supplies the geometry text. Open is called once per pass, so
// every call must return a reader positioned at the start of the text.
type Source interface {
	Open() (io.ReadCloser, error)
}

// FileSource reads the text from a file on disk.
type FileSource string

// Open opens the file.
func (s FileSource) Open() (io.ReadCloser, error) {
	return os.Open(string(s))
}

// BytesSource serves the text from memory.
type BytesSource []byte

// Open returns a reader over the bytes.
func (s BytesSource) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(s)), nil
}

// DecodedSource transcodes another source from Charset to UTF-8.
type DecodedSource struct {
	Source  Source
	Charset string
}

// Open opens the underlying source and wraps it in a decoder.
func (s DecodedSource) Open() (io.ReadCloser, error) {
	rc, err := s.Source.Open()
	if err != nil {
		return nil, err
	}
	r, err := encoding.NewReader(rc, s.Charset)
	if err != nil {
		rc.Close()
		return nil, err
	}
	return struct {
		io.Reader
		io.Closer
	}{r, rc}, nil
}

// scanLines runs fn over every line of src with its 1-based line number.
// Line terminators (\n or \r\n) are stripped.
func scanLines(src Source, fn func(n int, line string) error) error {
	rc, err := src.Open()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSourceAccess, err)
	}
	defer rc.Close()

	scanner := bufio.NewScanner(rc)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	n := 0
	for scanner.Scan() {
		n++
		if err := fn(n, scanner.Text()); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("%w: line %d: %w", ErrSourceAccess, n+1, err)
	}
	return nil
}
