// Package git provides a wrapper around git commands and go-git for repository operations.
package git

import (
	"bytes"
	"context"
	"io"
	"os/exec"
	"strings"
	"time"

	gcaerrors "gca.dev/gca/internal/errors"
)

// DefaultCommandTimeout is the default timeout for git commands
const DefaultCommandTimeout = 5 * time.Minute

// killGracePeriod bounds how long a killed git may hold its output pipes open,
// e.g. through a hook that spawned its own children
const killGracePeriod = 2 * time.Second

// CommandRunner handles execution of git commands
type CommandRunner struct {
	workingDir string
	stdout     io.Writer
	stderr     io.Writer
}

// NewCommandRunner creates a new CommandRunner. Streaming commands copy git's
// output to stdout and stderr; either may be nil to discard it.
func NewCommandRunner(workingDir string, stdout, stderr io.Writer) *CommandRunner {
	return &CommandRunner{
		workingDir: workingDir,
		stdout:     stdout,
		stderr:     stderr,
	}
}

// WorkingDir returns the directory git commands run in. Empty means the process working directory.
func (r *CommandRunner) WorkingDir() string {
	return r.workingDir
}

// Run executes a git command with the given context and returns the trimmed output
func (r *CommandRunner) Run(ctx context.Context, args ...string) (string, error) {
	return r.runInternal(ctx, true, nil, nil, args...)
}

// RunRaw executes a git command and returns the raw output (no trimming)
func (r *CommandRunner) RunRaw(ctx context.Context, args ...string) (string, error) {
	return r.runInternal(ctx, false, nil, nil, args...)
}

// RunStreaming executes a git command while copying its output to the runner's writers.
// Output is still captured so a failure carries git's own error text.
func (r *CommandRunner) RunStreaming(ctx context.Context, args ...string) error {
	_, err := r.runInternal(ctx, true, r.stdout, r.stderr, args...)
	return err
}

// runInternal is the internal implementation that handles directory, timeout and output teeing
func (r *CommandRunner) runInternal(ctx context.Context, trim bool, stdoutTee, stderrTee io.Writer, args ...string) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	ctx, cancel := withDefaultTimeout(ctx)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.WaitDelay = killGracePeriod
	if r.workingDir != "" {
		cmd.Dir = r.workingDir
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = teeWriter(&stdout, stdoutTee)
	cmd.Stderr = teeWriter(&stderr, stderrTee)

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = ctxErr
		}
		gitErr := gcaerrors.NewGitCommandError("git", args, stdout.String(), stderr.String(), err)
		gitErr.Streamed = stderrTee != nil
		return "", gitErr
	}
	if trim {
		return strings.TrimSpace(stdout.String()), nil
	}
	return stdout.String(), nil
}

// withDefaultTimeout adds DefaultCommandTimeout when ctx carries no deadline
func withDefaultTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, DefaultCommandTimeout)
}

func teeWriter(buf *bytes.Buffer, tee io.Writer) io.Writer {
	if tee == nil {
		return buf
	}
	return io.MultiWriter(buf, tee)
}

// Runner defines the git operations used by the commit flow.
// This allows the flow to be used with both real git and fake implementations.
type Runner interface {
	// Repository
	RepoRoot() (string, error)
	PushTarget() (PushTarget, error)

	// Work tree state
	ChangedFiles(ctx context.Context) ([]FileStatus, error)
	HasStagedChanges(ctx context.Context) (bool, error)

	// Git Operations
	StageAll(ctx context.Context) error
	Commit(ctx context.Context, message string) error
	Push(ctx context.Context) error
}

// NewRealRunner returns the Runner that executes git in workingDir,
// streaming the output of commit and push to stdout and stderr.
func NewRealRunner(workingDir string, stdout, stderr io.Writer) Runner {
	return &realRunner{cmd: NewCommandRunner(workingDir, stdout, stderr)}
}

// realRunner implements Runner by calling the actual git package functions
type realRunner struct {
	cmd *CommandRunner
}

func (r *realRunner) RepoRoot() (string, error) {
	return GetRepoRoot(r.cmd.WorkingDir())
}

func (r *realRunner) PushTarget() (PushTarget, error) {
	return GetPushTarget(r.cmd.WorkingDir())
}

func (r *realRunner) ChangedFiles(ctx context.Context) ([]FileStatus, error) {
	return ChangedFiles(ctx, r.cmd)
}

func (r *realRunner) HasStagedChanges(ctx context.Context) (bool, error) {
	return HasStagedChanges(ctx, r.cmd)
}

func (r *realRunner) StageAll(ctx context.Context) error {
	return StageAll(ctx, r.cmd)
}

func (r *realRunner) Commit(ctx context.Context, message string) error {
	return Commit(ctx, r.cmd, message)
}

func (r *realRunner) Push(ctx context.Context) error {
	return Push(ctx, r.cmd)
}
