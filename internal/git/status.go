package git

import (
	"context"
	"fmt"
	"strings"
)

// FileStatus is one entry of `git status --porcelain`
type FileStatus struct {
	Index    byte   // status in the index (X)
	Worktree byte   // status in the work tree (Y)
	Path     string // path relative to the repository root
	OrigPath string // source path of a rename or copy
}

// IsUntracked reports whether the file is not yet known to git
func (f FileStatus) IsUntracked() bool {
	return f.Index == '?' && f.Worktree == '?'
}

// IsStaged reports whether the file has changes in the index
func (f FileStatus) IsStaged() bool {
	return f.Index != ' ' && f.Index != '?'
}

// Code returns the two-letter porcelain status code
func (f FileStatus) Code() string {
	return string([]byte{f.Index, f.Worktree})
}

// ChangedFiles lists staged, unstaged and untracked changes in the work tree
func ChangedFiles(ctx context.Context, r *CommandRunner) ([]FileStatus, error) {
	// Raw output: trimming would eat the leading space of an unstaged entry
	output, err := r.RunRaw(ctx, "status", "--porcelain", "-z", "--untracked-files=all")
	if err != nil {
		return nil, fmt.Errorf("failed to read work tree status: %w", err)
	}
	return ParsePorcelainZ(output)
}

// ParsePorcelainZ parses the NUL-separated output of `git status --porcelain -z`
func ParsePorcelainZ(output string) ([]FileStatus, error) {
	files := []FileStatus{}
	entries := strings.Split(output, "\x00")
	for i := 0; i < len(entries); i++ {
		entry := entries[i]
		if entry == "" {
			continue
		}
		if len(entry) < 4 || entry[2] != ' ' {
			return nil, fmt.Errorf("malformed status entry %q", entry)
		}

		status := FileStatus{
			Index:    entry[0],
			Worktree: entry[1],
			Path:     entry[3:],
		}
		// Renames and copies carry the source path as the next entry
		if status.Index == 'R' || status.Index == 'C' || status.Worktree == 'R' || status.Worktree == 'C' {
			if i+1 >= len(entries) {
				return nil, fmt.Errorf("rename entry %q is missing its source path", entry)
			}
			i++
			status.OrigPath = entries[i]
		}
		files = append(files, status)
	}
	return files, nil
}
