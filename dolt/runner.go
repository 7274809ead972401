// Package dolt wraps the dolt command line tool, translating typed operations
// into argument vectors and projecting the tool's output into typed results.
package dolt

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"

	dolterrors "doltcli.dev/doltcli/errors"
)

// DefaultDoltPath is the executable name used when no explicit path is configured.
const DefaultDoltPath = "dolt"

// doltPath is the process-wide default executable path. It is intended to be
// set once at startup, before any runners are constructed; runners copy the
// value at construction time, so mutating it does not affect in-flight calls.
var doltPath = DefaultDoltPath

// SetDoltPath sets the process-wide default dolt executable path.
// Call this once at startup, before constructing runners.
func SetDoltPath(path string) {
	doltPath = path
}

// DoltPath returns the process-wide default dolt executable path.
func DoltPath() string {
	return doltPath
}

// Executor runs a dolt command and returns its raw standard output. When
// outFile is non-empty, standard output is written to that path instead and
// the returned string is empty. Implementations spawn exactly one process
// per call and block until it exits; there are no retries.
type Executor interface {
	Execute(ctx context.Context, args []string, outFile string) (string, error)
}

// CommandRunner handles execution of dolt commands in a working directory.
// It is the standard Executor implementation.
type CommandRunner struct {
	workingDir string
	doltPath   string
}

// NewCommandRunner creates a CommandRunner bound to a working directory.
// An empty workingDir runs commands in the current directory, which is what
// global operations (init, version, global config) want.
func NewCommandRunner(workingDir string) *CommandRunner {
	return &CommandRunner{workingDir: workingDir, doltPath: DoltPath()}
}

// Execute runs a dolt command and captures its output. Non-zero exit and
// spawn failures (binary not found, permission denied) both surface as a
// *dolterrors.CommandError carrying the argument vector and captured output
// verbatim; spawn failures carry exit code -1.
func (r *CommandRunner) Execute(ctx context.Context, args []string, outFile string) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	path := r.doltPath
	if path == "" {
		path = DoltPath()
	}

	cmd := exec.CommandContext(ctx, path, args...)
	if r.workingDir != "" {
		cmd.Dir = r.workingDir
	}

	var stdout, stderr bytes.Buffer
	cmd.Stderr = &stderr

	if outFile != "" {
		f, err := os.Create(outFile)
		if err != nil {
			return "", dolterrors.NewCommandError(args, "", "", -1, err)
		}
		defer f.Close()
		cmd.Stdout = f
	} else {
		cmd.Stdout = &stdout
	}

	err := cmd.Run()
	if err != nil {
		// a failed command must not leave a partial redirect file behind
		if outFile != "" {
			_ = os.Remove(outFile)
		}
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return "", dolterrors.NewCommandError(args, stdout.String(), stderr.String(), exitCode, err)
	}

	return stdout.String(), nil
}

// splitLines splits raw command output into lines, dropping a single
// trailing newline the way line-oriented parsers expect.
func splitLines(output string) []string {
	trimmed := strings.TrimSuffix(output, "\n")
	if trimmed == "" {
		return []string{}
	}
	return strings.Split(trimmed, "\n")
}
