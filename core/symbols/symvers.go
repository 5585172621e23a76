package symbols

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// SymversOptions controls ParseSymvers.
type SymversOptions struct {
	// Source names the input in error messages.
	Source string
	// Strict rejects a symbol listed twice instead of keeping the last entry.
	Strict bool
}

// ParseSymvers reads a Module.symvers table. Field 0 of each line is the CRC,
// field 1 the symbol name; further fields are ignored.
func ParseSymvers(r io.Reader, opts SymversOptions) (Table, error) {
	table := make(Table)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, &ParseError{Source: opts.Source, Line: lineNo, Record: line, Err: ErrMalformedLine}
		}
		crc, err := ParseCRC(fields[0])
		if err != nil {
			return nil, &ParseError{Source: opts.Source, Line: lineNo, Record: fields[0], Err: err}
		}
		name := fields[1]
		if opts.Strict && table.Has(name) {
			return nil, &ParseError{Source: opts.Source, Line: lineNo, Record: name, Err: fmt.Errorf("%w: duplicate symbol", ErrMalformedLine)}
		}
		table[name] = crc
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", opts.Source, err)
	}
	return table, nil
}
