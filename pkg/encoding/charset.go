// Package encoding provides text encoding utilities for geometry source files.
// Exporters on legacy systems often write OBJ comments and object names in a
// local code page; the numeric content is ASCII either way, so decoding only
// has to keep the line structure intact.
package encoding

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"
)

// ErrUnknownEncoding is returned for a charset name that cannot be resolved.
var ErrUnknownEncoding = errors.New("unknown text encoding")

// Lookup resolves a charset name such as "euc-kr", "latin1" or
// "windows-1252". UTF-8 (and the empty name) resolve to nil, meaning
// the bytes are used as-is.
func Lookup(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return nil, nil
	case "euc-kr", "euckr", "cp949":
		return korean.EUCKR, nil
	}

	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
	return enc, nil
}

// NewReader wraps r so that it yields UTF-8 text decoded from the named charset.
func NewReader(r io.Reader, name string) (io.Reader, error) {
	enc, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	if enc == nil {
		return r, nil
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}

// ToUTF8 converts data in the named charset to a UTF-8 string.
func ToUTF8(data []byte, name string) (string, error) {
	enc, err := Lookup(name)
	if err != nil {
		return "", err
	}
	if enc == nil {
		return string(data), nil
	}
	result, _, err := transform.Bytes(enc.NewDecoder(), data)
	if err != nil {
		return "", fmt.Errorf("decoding %s: %w", name, err)
	}
	return string(result), nil
}
