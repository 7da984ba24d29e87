// Package errors provides sentinel errors and custom error types for gca.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"os/exec"
)

// Sentinel errors for common conditions
var (
	// ErrNotARepository indicates that the working directory is not inside a git work tree
	ErrNotARepository = errors.New("not a git repository")

	// ErrNothingToCommit indicates that the work tree has no changes
	ErrNothingToCommit = errors.New("nothing to commit, working tree clean")

	// ErrEmptyMessage indicates that the operator entered an empty commit message
	ErrEmptyMessage = errors.New("aborting due to empty commit message")

	// ErrCanceled indicates that the operator canceled a prompt
	ErrCanceled = errors.New("canceled")
)

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error

	// Streamed is set when git's output was already shown to the operator
	Streamed bool
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
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

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// ExitCode returns the exit status git reported, or 1 when git did not run to completion.
func (e *GitCommandError) ExitCode() int {
	var exitErr *exec.ExitError
	if errors.As(e.Err, &exitErr) && exitErr.ExitCode() > 0 {
		return exitErr.ExitCode()
	}
	return 1
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}

// ExitCode maps an error returned by a command to the process exit status.
// A nil error and an operator cancel both map to 0, a failed git command
// propagates git's own status and anything else maps to 1.
func ExitCode(err error) int {
	if err == nil || errors.Is(err, ErrCanceled) {
		return 0
	}
	var gitErr *GitCommandError
	if errors.As(err, &gitErr) {
		return gitErr.ExitCode()
	}
	return 1
}
