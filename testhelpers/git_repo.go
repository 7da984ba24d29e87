package testhelpers

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

const textFileName = "test.txt"

// GitRepo represents a Git repository for testing purposes.
type GitRepo struct {
	Dir string
}

// NewGitRepo initializes a new Git repository in the specified directory using 'git init'.
func NewGitRepo(dir string) (*GitRepo, error) {
	repo := &GitRepo{Dir: dir}

	// Initialize new repository with optimized config
	// Use git -c flags to avoid reading global config and set local configs
	cmd := exec.Command("git", "-c", "init.defaultBranch=main", "-c", "core.autocrlf=false", "-c", "core.fileMode=false", "init", dir, "-b", "main")
	cmd.Env = GitEnv()
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("failed to init repo: %w", err)
	}

	// Configure Git user (required for commits)
	if err := repo.runGitCommand("config", "user.name", "Test User"); err != nil {
		return nil, err
	}
	if err := repo.runGitCommand("config", "user.email", "test@example.com"); err != nil {
		return nil, err
	}

	return repo, nil
}

// GitEnv returns the process environment with global git config disabled,
// so tests never pick up the developer's hooks, signing or push settings.
func GitEnv() []string {
	return append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null", "GIT_CONFIG_NOSYSTEM=1")
}

// runGitCommand executes a git command in the repository directory.
func (r *GitRepo) runGitCommand(args ...string) error {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	cmd.Env = GitEnv()
	if os.Getenv("DEBUG") != "" {
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	}
	return cmd.Run()
}

// RunGitCommand executes a git command and returns an error if it fails.
func (r *GitRepo) RunGitCommand(args ...string) error {
	return r.runGitCommand(args...)
}

// RunGitCommandAndGetOutput executes a git command and returns its trimmed output.
func (r *GitRepo) RunGitCommandAndGetOutput(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	cmd.Env = GitEnv()
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git command failed: %w", err)
	}
	return strings.TrimSpace(string(output)), nil
}

// CreateChange creates a file change in the repository.
func (r *GitRepo) CreateChange(textValue string, prefix string, unstaged bool) error {
	fileName := textFileName
	if prefix != "" {
		fileName = prefix + "_" + fileName
	}
	filePath := filepath.Join(r.Dir, fileName)

	// Ensure the directory exists
	if err := os.MkdirAll(filepath.Dir(filePath), 0750); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(filePath, []byte(textValue), 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	if !unstaged {
		return r.runGitCommand("add", filePath)
	}

	return nil
}

// CreateChangeAndCommit creates a file change and commits it.
func (r *GitRepo) CreateChangeAndCommit(textValue string, prefix string) error {
	if err := r.CreateChange(textValue, prefix, false); err != nil {
		return err
	}
	if err := r.runGitCommand("add", "."); err != nil {
		return err
	}
	return r.runGitCommand("commit", "-m", textValue)
}

// CreatePrecommitHook creates a pre-commit hook.
func (r *GitRepo) CreatePrecommitHook(contents string) error {
	hookDir := filepath.Join(r.Dir, ".git", "hooks")
	if err := os.MkdirAll(hookDir, 0700); err != nil {
		return fmt.Errorf("failed to create hooks directory: %w", err)
	}

	hookPath := filepath.Join(hookDir, "pre-commit")
	if err := os.WriteFile(hookPath, []byte(contents), 0600); err != nil {
		return fmt.Errorf("failed to write hook: %w", err)
	}
	// nolint:gosec // Hook must be executable
	if err := os.Chmod(hookPath, 0700); err != nil {
		return fmt.Errorf("failed to make hook executable: %w", err)
	}

	return nil
}

// CheckoutDetached checks out a revision in detached HEAD state.
func (r *GitRepo) CheckoutDetached(rev string) error {
	return r.runGitCommand("checkout", "--detach", rev)
}

// CurrentBranchName returns the name of the current branch.
func (r *GitRepo) CurrentBranchName() (string, error) {
	return r.RunGitCommandAndGetOutput("branch", "--show-current")
}

// ListCurrentBranchCommitMessages returns the commit subjects on the current branch, newest first.
func (r *GitRepo) ListCurrentBranchCommitMessages() ([]string, error) {
	output, err := r.RunGitCommandAndGetOutput("log", "--format=%s")
	if err != nil {
		return nil, err
	}
	return splitLines(output), nil
}

// splitLines splits a string by newlines and returns non-empty lines.
func splitLines(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return []string{}
	}
	return strings.Split(s, "\n")
}

// CreateBareRemote creates a bare git repository to act as a remote.
// Returns the path to the bare repository.
func (r *GitRepo) CreateBareRemote(name string) (string, error) {
	// Create bare repo as a sibling directory with a unique name based on the repo dir
	// This ensures each test gets its own unique remote
	bareDir := r.Dir + "-" + name + ".git"

	cmd := exec.Command("git", "init", "--bare", bareDir)
	cmd.Env = GitEnv()
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("failed to create bare repo: %w", err)
	}

	// Add as remote
	if err := r.runGitCommand("remote", "add", name, bareDir); err != nil {
		return "", fmt.Errorf("failed to add remote: %w", err)
	}

	return bareDir, nil
}

// PushBranch pushes a branch to a remote and sets it as upstream.
func (r *GitRepo) PushBranch(remote, branch string) error {
	cmd := exec.Command("git", "push", "-u", remote, branch)
	cmd.Dir = r.Dir
	cmd.Env = GitEnv()
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("push failed: %w, output: %s", err, string(output))
	}
	return nil
}

// GetRevision returns the SHA of a revision (branch, tag, or commit reference).
func (r *GitRepo) GetRevision(rev string) (string, error) {
	return r.RunGitCommandAndGetOutput("rev-parse", rev)
}

// GetCommitCount returns the number of commits reachable from rev.
func (r *GitRepo) GetCommitCount(rev string) (int, error) {
	output, err := r.RunGitCommandAndGetOutput("rev-list", "--count", rev)
	if err != nil {
		return 0, err
	}
	var count int
	if _, err := fmt.Sscanf(output, "%d", &count); err != nil {
		return 0, fmt.Errorf("failed to parse commit count: %w", err)
	}
	return count, nil
}

// GetRemoteRevision returns the SHA a branch has in a bare remote repository.
func GetRemoteRevision(bareDir, branch string) (string, error) {
	cmd := exec.Command("git", "--git-dir", bareDir, "rev-parse", "refs/heads/"+branch)
	cmd.Env = GitEnv()
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git command failed: %w", err)
	}
	return strings.TrimSpace(string(output)), nil
}

// StatusPorcelain returns `git status --porcelain` for the repository.
func (r *GitRepo) StatusPorcelain() (string, error) {
	return r.RunGitCommandAndGetOutput("status", "--porcelain")
}
