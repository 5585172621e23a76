package cmd

import (
	"errors"
	"fmt"
	"testing"

	"kmi-checker/core/symbols"

	"github.com/stretchr/testify/assert"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"Nil", nil, ExitOK},
		{"Mismatch", &exitError{code: ExitMismatch, silent: true}, ExitMismatch},
		{"Usage", usageError("bad args"), ExitUsage},
		{"Malformed CRC", fmt.Errorf("check: %w", &symbols.ParseError{Source: "Module.symvers", Line: 3, Err: symbols.ErrMalformedCRC}), ExitMalformed},
		{"Malformed Document", symbols.ErrMalformedDocument, ExitMalformed},
		{"Missing Attribute", symbols.ErrMissingAttribute, ExitMalformed},
		{"Malformed Line", symbols.ErrMalformedLine, ExitMalformed},
		{"Not Found", fmt.Errorf("open: %w", symbols.ErrInputNotFound), ExitNotFound},
		{"Cobra Flag", errors.New("unknown flag: --bogus"), ExitUsage},
		{"Cobra Args", errors.New("accepts at most 1 arg(s), received 2"), ExitUsage},
		{"Other", errors.New("connection refused"), ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}

func TestExitError(t *testing.T) {
	err := &exitError{code: ExitNotFound, err: symbols.ErrInputNotFound}
	assert.ErrorIs(t, err, symbols.ErrInputNotFound)
	assert.Equal(t, symbols.ErrInputNotFound.Error(), err.Error())

	assert.Equal(t, "exit status 1", (&exitError{code: 1}).Error())
}
