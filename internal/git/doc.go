// Package git provides low-level Git operations.
//
// It wraps git command execution and provides a Go-friendly interface for:
//   - Repository discovery and push target lookup (go-git)
//   - Work tree state queries (status, staged changes)
//   - Commit operations (stage, commit)
//   - Remote operations (push)
//
// This package should be the only place where direct git commands are executed.
package git
