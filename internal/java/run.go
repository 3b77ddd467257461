package java

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
)

// Result classifies how a server run ended.
type Result int

const (
	// ResultClean is a zero exit code.
	ResultClean Result = iota
	// ResultBenign is the exit code the server is known to use when it
	// stops on purpose, e.g. halting because the EULA is unaccepted.
	ResultBenign
	// ResultNotFound means the launcher itself could not be started.
	ResultNotFound
	// ResultUnexpected is any other non-zero exit code.
	ResultUnexpected
)

// String returns a short human-readable label for logging.
func (r Result) String() string {
	switch r {
	case ResultClean:
		return "clean exit"
	case ResultBenign:
		return "expected first-run stop"
	case ResultNotFound:
		return "launcher not found"
	case ResultUnexpected:
		return "unexpected exit code"
	default:
		return fmt.Sprintf("unknown result %d", int(r))
	}
}

// Outcome describes a finished server run.
type Outcome struct {
	// Result is the classification of the exit.
	Result Result
	// ExitCode is the raw subprocess exit code, or -1 when the launcher never started.
	ExitCode int
}

// benignExitCode is what first runs commonly exit with; varies by server version.
const benignExitCode = 1

// Run invokes the launcher inside dir with the provided arguments, wiring the
// server console to this process's standard streams. The run has no timeout
// beyond context cancellation: the operator stops the server by hand.
func Run(ctx context.Context, javaPath, dir string, args []string) (Outcome, error) {
	cmd := exec.CommandContext(ctx, javaPath, args...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err == nil {
		return Outcome{Result: ResultClean, ExitCode: 0}, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if code == benignExitCode {
			return Outcome{Result: ResultBenign, ExitCode: code}, nil
		}

		return Outcome{Result: ResultUnexpected, ExitCode: code}, nil
	}

	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
		return Outcome{Result: ResultNotFound, ExitCode: -1}, nil
	}

	return Outcome{}, fmt.Errorf("run %s: %w", javaPath, err)
}
