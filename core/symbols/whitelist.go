package symbols

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	// CategoryFunctions is the whitelist section listing exported functions.
	CategoryFunctions = "elf-function-symbols"
	// CategoryVariables is the whitelist section listing exported variables.
	CategoryVariables = "elf-variable-symbols"

	symbolElement = "elf-symbol"
)

// DefaultCategories are the sections scanned when none are configured.
var DefaultCategories = []string{CategoryFunctions, CategoryVariables}

// WhitelistOptions controls ParseWhitelist.
type WhitelistOptions struct {
	// Source names the input in error messages.
	Source string
	// Categories lists the section elements whose elf-symbol children are read.
	// Empty means DefaultCategories.
	Categories []string
	// Strict rejects a symbol listed twice instead of keeping the last entry.
	Strict bool
}

// ParseWhitelist reads an ABI description document and returns the CRC of every
// symbol listed under one of the configured categories.
func ParseWhitelist(r io.Reader, opts WhitelistOptions) (Table, error) {
	categories := opts.Categories
	if len(categories) == 0 {
		categories = DefaultCategories
	}
	wanted := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		wanted[strings.TrimSpace(c)] = struct{}{}
	}

	dec := xml.NewDecoder(r)
	table := make(Table)
	var stack []string
	sawRoot := false

	fail := func(err error, record string) error {
		line, _ := dec.InputPos()
		return &ParseError{Source: opts.Source, Line: line, Record: record, Err: err}
	}

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fail(fmt.Errorf("%w: %v", ErrMalformedDocument, err), "")
		}

		switch el := tok.(type) {
		case xml.StartElement:
			sawRoot = true
			if el.Name.Local == symbolElement && len(stack) > 0 {
				if _, ok := wanted[stack[len(stack)-1]]; ok {
					name, crc, err := extractSymbol(el)
					if err != nil {
						return nil, fail(err, name)
					}
					if opts.Strict && table.Has(name) {
						return nil, fail(fmt.Errorf("%w: duplicate symbol", ErrMalformedDocument), name)
					}
					table[name] = crc
				}
			}
			stack = append(stack, el.Name.Local)
		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}

	if !sawRoot {
		return nil, &ParseError{Source: opts.Source, Err: fmt.Errorf("%w: no root element", ErrMalformedDocument)}
	}
	return table, nil
}

// extractSymbol validates the required attributes of an elf-symbol element.
func extractSymbol(el xml.StartElement) (string, CRC, error) {
	var name, rawCRC string
	var hasName, hasCRC bool
	for _, a := range el.Attr {
		switch a.Name.Local {
		case "name":
			name, hasName = strings.TrimSpace(a.Value), true
		case "crc":
			rawCRC, hasCRC = a.Value, true
		}
	}
	if !hasName || name == "" {
		return "", 0, fmt.Errorf("%w: name", ErrMissingAttribute)
	}
	if !hasCRC || strings.TrimSpace(rawCRC) == "" {
		return name, 0, fmt.Errorf("%w: crc", ErrMissingAttribute)
	}
	crc, err := ParseCRC(rawCRC)
	if err != nil {
		return name, 0, err
	}
	return name, crc, nil
}
