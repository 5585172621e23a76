package symbols

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedCRC is returned when a CRC token is not 0x followed by 1-8 hex digits.
	ErrMalformedCRC = errors.New("malformed crc")
	// ErrMalformedDocument is returned when the whitelist is not parseable XML.
	ErrMalformedDocument = errors.New("malformed whitelist document")
	// ErrMissingAttribute is returned when a whitelist symbol lacks a name or crc.
	ErrMissingAttribute = errors.New("missing symbol attribute")
	// ErrMalformedLine is returned when a symvers line lacks the crc or name field.
	ErrMalformedLine = errors.New("malformed symvers line")
	// ErrInputNotFound is returned when a source does not reference a readable input.
	ErrInputNotFound = errors.New("input not found")
)

// ParseError locates a parse failure inside a source.
type ParseError struct {
	// Source is the name of the input (path or object reference).
	Source string
	// Line is the 1-based line of the offending record, 0 when unknown.
	Line int
	// Record is the offending token or line.
	Record string
	// Err is one of the package sentinel errors, possibly wrapped.
	Err error
}

func (e *ParseError) Error() string {
	loc := e.Source
	if loc == "" {
		loc = "<input>"
	}
	if e.Line > 0 {
		loc = fmt.Sprintf("%s:%d", loc, e.Line)
	}
	if e.Record != "" {
		return fmt.Sprintf("%s: %v: %q", loc, e.Err, e.Record)
	}
	return fmt.Sprintf("%s: %v", loc, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsMalformed reports whether err is one of the malformed-input errors.
func IsMalformed(err error) bool {
	return errors.Is(err, ErrMalformedCRC) ||
		errors.Is(err, ErrMalformedDocument) ||
		errors.Is(err, ErrMissingAttribute) ||
		errors.Is(err, ErrMalformedLine)
}
