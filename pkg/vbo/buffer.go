package vbo

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Buffer I/O errors.
var (
	ErrTruncatedBuffer  = errors.New("buffer length is not a multiple of 4 bytes")
	ErrUnknownByteOrder = errors.New("unknown byte order")
)

// ParseByteOrder maps "little", "big" or "native" to a binary.ByteOrder.
func ParseByteOrder(name string) (binary.ByteOrder, error) {
	switch strings.ToLower(name) {
	case "", "little", "le":
		return binary.LittleEndian, nil
	case "big", "be":
		return binary.BigEndian, nil
	case "native":
		return binary.NativeEndian, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownByteOrder, name)
	}
}

// WriteBuffer writes data as raw float32 values with no header.
func WriteBuffer(w io.Writer, data []float32, order binary.ByteOrder) error {
	if len(data) == 0 {
		return nil
	}
	return binary.Write(w, order, data)
}

// ReadBuffer reads a raw float32 blob written by WriteBuffer.
func ReadBuffer(r io.Reader, order binary.ByteOrder) ([]float32, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(raw)%4 != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrTruncatedBuffer, len(raw))
	}
	data := make([]float32, len(raw)/4)
	if _, err := binary.Decode(raw, order, data); err != nil {
		return nil, err
	}
	return data, nil
}
