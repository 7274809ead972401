// Package errors provides sentinel errors and custom error types for the doltcli library.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions
var (
	// ErrCommandFailed indicates that a dolt command exited non-zero or could not be spawned
	ErrCommandFailed = errors.New("dolt command failed")

	// ErrNotARepository indicates that a directory does not contain a dolt repository
	ErrNotARepository = errors.New("not a dolt repository")

	// ErrActiveBranch indicates that the active branch could not be determined
	ErrActiveBranch = errors.New("active branch not found")

	// ErrMergeOutcome indicates that merge output did not match any known shape
	ErrMergeOutcome = errors.New("unrecognized merge outcome")

	// ErrTooManyParents indicates a commit row set with more than two parents for one ref
	ErrTooManyParents = errors.New("commit has more than two parents")
)

// CommandError represents a failed dolt command execution. It carries the
// argument vector and the captured output verbatim so callers can inspect
// or display the failure without re-running anything.
type CommandError struct {
	Args     []string
	Stdout   string
	Stderr   string
	ExitCode int
	Err      error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("dolt command failed: dolt %s (exit %d)", strings.Join(e.Args, " "), e.ExitCode)
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// Is returns true if the target error is ErrCommandFailed
func (e *CommandError) Is(target error) bool {
	return target == ErrCommandFailed
}

// NewCommandError creates a new CommandError
func NewCommandError(args []string, stdout, stderr string, exitCode int, err error) *CommandError {
	return &CommandError{
		Args:     args,
		Stdout:   stdout,
		Stderr:   stderr,
		ExitCode: exitCode,
		Err:      err,
	}
}

// ActiveBranchError represents a failure to resolve exactly one active branch record
type ActiveBranchError struct {
	Count int
}

func (e *ActiveBranchError) Error() string {
	return fmt.Sprintf("expected exactly one active branch record, found %d", e.Count)
}

// Is returns true if the target error is ErrActiveBranch
func (e *ActiveBranchError) Is(target error) bool {
	return target == ErrActiveBranch
}

// NewActiveBranchError creates a new ActiveBranchError
func NewActiveBranchError(count int) *ActiveBranchError {
	return &ActiveBranchError{Count: count}
}

// MergeOutcomeError represents merge output whose shape matched neither the
// fast-forward, conflict, nor manual-completion form. The raw output is kept
// so the caller can decide what actually happened.
type MergeOutcomeError struct {
	Branch string
	Output string
}

func (e *MergeOutcomeError) Error() string {
	return fmt.Sprintf("unrecognized merge outcome for branch %s:\n%s", e.Branch, e.Output)
}

// Is returns true if the target error is ErrMergeOutcome
func (e *MergeOutcomeError) Is(target error) bool {
	return target == ErrMergeOutcome
}

// NewMergeOutcomeError creates a new MergeOutcomeError
func NewMergeOutcomeError(branch, output string) *MergeOutcomeError {
	return &MergeOutcomeError{Branch: branch, Output: output}
}
