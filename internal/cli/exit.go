package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	apperr "github.com/matzehuels/cmplogview/pkg/errors"
)

// Exit codes.
const (
	ExitOK          = 0
	ExitError       = 1
	ExitInterrupted = 130 // Standard shell convention for SIGINT
)

// ExitCode reports err the way the command line does and returns the
// process exit status. Usage errors print the usage line on stdout; any
// other error prints one line on stderr.
func ExitCode(err error, stdout, stderr io.Writer) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, context.Canceled):
		return ExitInterrupted
	case apperr.Is(err, apperr.ErrCodeUsage):
		fmt.Fprintln(stdout, apperr.UserMessage(err))
		return ExitError
	}
	fmt.Fprintln(stderr, err)
	return ExitError
}
