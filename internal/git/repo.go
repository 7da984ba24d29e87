package git

import (
	"errors"
	"fmt"
	"os"
	"sort"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	gcaerrors "gca.dev/gca/internal/errors"
)

// ErrDetachedHead indicates that HEAD does not point at a branch
var ErrDetachedHead = errors.New("HEAD is detached")

// ErrNoRemote indicates that the repository has no remote to push to
var ErrNoRemote = errors.New("no remote configured")

// PushTarget describes where a plain `git push` from the current branch goes
type PushTarget struct {
	Branch string
	Remote string
	URL    string
}

// openRepository opens the repository containing dir (or the working directory when dir is empty)
func openRepository(dir string) (*gogit.Repository, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		dir = wd
	}

	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", gcaerrors.ErrNotARepository, dir)
	}
	return repo, nil
}

// GetRepoRoot returns the root directory of the Git work tree containing dir.
// Bare repositories have no work tree and are rejected like any non-repository.
func GetRepoRoot(dir string) (string, error) {
	repo, err := openRepository(dir)
	if err != nil {
		return "", err
	}

	// Get the worktree to find the root
	worktree, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("%w: %v", gcaerrors.ErrNotARepository, err)
	}

	return worktree.Filesystem.Root(), nil
}

// GetPushTarget resolves the current branch and the remote it pushes to.
// The branch's configured remote wins, then "origin", then the first remote by name.
func GetPushTarget(dir string) (PushTarget, error) {
	repo, err := openRepository(dir)
	if err != nil {
		return PushTarget{}, err
	}

	// Read HEAD unresolved so an unborn branch still reports its name
	head, err := repo.Reference(plumbing.HEAD, false)
	if err != nil {
		return PushTarget{}, fmt.Errorf("failed to read HEAD: %w", err)
	}
	if head.Type() != plumbing.SymbolicReference || !head.Target().IsBranch() {
		return PushTarget{}, ErrDetachedHead
	}
	target := PushTarget{Branch: head.Target().Short()}

	cfg, err := repo.Config()
	if err != nil {
		return PushTarget{}, fmt.Errorf("failed to read repository config: %w", err)
	}

	if branch, ok := cfg.Branches[target.Branch]; ok && branch.Remote != "" {
		target.Remote = branch.Remote
	}
	if target.Remote == "" {
		if _, ok := cfg.Remotes["origin"]; ok {
			target.Remote = "origin"
		} else {
			names := make([]string, 0, len(cfg.Remotes))
			for name := range cfg.Remotes {
				names = append(names, name)
			}
			sort.Strings(names)
			if len(names) > 0 {
				target.Remote = names[0]
			}
		}
	}
	if target.Remote == "" {
		return target, ErrNoRemote
	}

	if remote, ok := cfg.Remotes[target.Remote]; ok && len(remote.URLs) > 0 {
		target.URL = remote.URLs[0]
	}
	return target, nil
}
