package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"kmi-checker/core/logger"
	"kmi-checker/core/symbols"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Process exit codes.
const (
	ExitOK        = 0
	ExitMismatch  = 1
	ExitUsage     = 2
	ExitMalformed = 3
	ExitNotFound  = 4
	ExitFailure   = 5
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "kmi-checker",
	Short: "Kernel Module Interface checker",
	Long: `kmi-checker verifies that a kernel build keeps the symbol CRCs promised
by a KMI whitelist. It compares an ABI description (abi_gki_*.xml) with the
Module.symvers of the build, from local files or object storage.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// exitError carries the process exit code of a failed command.
// Silent errors have already been reported to the user.
type exitError struct {
	code   int
	err    error
	silent bool
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

// usageError marks an error as a command line misuse.
func usageError(format string, args ...any) error {
	return &exitError{code: ExitUsage, err: fmt.Errorf(format, args...)}
}

// exitCode classifies err into a process exit code.
func exitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	switch {
	case symbols.IsMalformed(err):
		return ExitMalformed
	case errors.Is(err, symbols.ErrInputNotFound):
		return ExitNotFound
	case isCobraUsage(err):
		return ExitUsage
	default:
		return ExitFailure
	}
}

// isCobraUsage detects the argument and flag errors cobra returns as plain errors.
func isCobraUsage(err error) bool {
	msg := err.Error()
	for _, prefix := range []string{"unknown command", "unknown flag", "unknown shorthand flag", "flag needs an argument", "invalid argument", "accepts "} {
		if strings.HasPrefix(msg, prefix) {
			return true
		}
	}
	return false
}

// Run executes the command line args and returns the process exit code.
// Command output goes to stdout; failures are logged to stderr.
func Run(args []string, stdout, stderr io.Writer) int {
	RootCmd.SetArgs(args)
	RootCmd.SetOut(stdout)
	RootCmd.SetErr(stderr)

	err := RootCmd.Execute()
	code := exitCode(err)
	if err == nil {
		return code
	}

	var ee *exitError
	if errors.As(err, &ee) && ee.silent {
		return code
	}

	// Console encoding with ISO8601 timestamps; a failed CLI run is read by a person
	l, logErr := logger.New(&logger.Config{Level: "debug", Format: "console"})
	if logErr == nil {
		l.Error("command failed", zap.Error(err), zap.Int("exit_code", code))
		_ = l.Sync()
	} else {
		fmt.Fprintln(stderr, err)
	}
	return code
}

func Execute() {
	os.Exit(Run(os.Args[1:], os.Stdout, os.Stderr))
}
