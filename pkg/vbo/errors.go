package vbo

import (
	"errors"
	"fmt"
)

// Conversion errors. Every one of them aborts the run.
var (
	ErrMalformedNumber = errors.New("malformed number")
	ErrMissingValues   = errors.New("too few values")
	ErrMissingIndex    = errors.New("missing index")
	ErrInvalidIndex    = errors.New("index must be 1 or greater")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrNotTriangle     = errors.New("face is not a triangle")
	ErrSourceAccess    = errors.New("cannot read source")
)

// LineError locates a conversion failure in the source text.
type LineError struct {
	Line  int    // 1-based line number
	Kind  Kind   // attribute kind involved, KindNone if not specific
	Token string // offending token, if any
	Err   error  // one of the Err* sentinels
}

func (e *LineError) Error() string {
	msg := fmt.Sprintf("line %d", e.Line)
	if e.Kind != KindNone {
		msg += ": " + e.Kind.String()
	}
	msg += ": " + e.Err.Error()
	if e.Token != "" {
		msg += fmt.Sprintf(" %q", e.Token)
	}
	return msg
}

func (e *LineError) Unwrap() error {
	return e.Err
}

func lineErr(line int, kind Kind, token string, err error) error {
	return &LineError{Line: line, Kind: kind, Token: token, Err: err}
}
