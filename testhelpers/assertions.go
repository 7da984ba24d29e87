// Package testhelpers provides testing utilities for gca,
// including a scene system, Git repository helpers, and custom assertions.
package testhelpers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Must is a generic helper function that panics if err is not nil,
// otherwise returns the value. This is useful for test setup code
// where errors are not expected and should halt execution immediately.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// ExpectCommits asserts that the newest commit subjects on the current branch
// match expected, newest first.
func ExpectCommits(t *testing.T, repo *GitRepo, expected []string) {
	t.Helper()

	messages, err := repo.ListCurrentBranchCommitMessages()
	require.NoError(t, err, "Failed to list commits")

	// Compare only the first N commits where N is the length of expected
	if len(messages) < len(expected) {
		require.Fail(t, "Not enough commits", "Expected %d commits, got %d", len(expected), len(messages))
		return
	}

	require.Equal(t, expected, messages[:len(expected)], "Commits do not match")
}

// ExpectCommitCount asserts the number of commits reachable from HEAD.
func ExpectCommitCount(t *testing.T, repo *GitRepo, expected int) {
	t.Helper()

	count, err := repo.GetCommitCount("HEAD")
	require.NoError(t, err, "Failed to count commits")
	require.Equal(t, expected, count, "Unexpected number of commits")
}

// ExpectCleanWorkTree asserts that git reports no pending changes.
func ExpectCleanWorkTree(t *testing.T, repo *GitRepo) {
	t.Helper()

	status, err := repo.StatusPorcelain()
	require.NoError(t, err, "Failed to read status")
	require.Empty(t, status, "Work tree is not clean")
}

// ExpectRemoteInSync asserts that the bare remote's branch points at the local HEAD.
func ExpectRemoteInSync(t *testing.T, repo *GitRepo, bareDir, branch string) {
	t.Helper()

	local, err := repo.GetRevision("HEAD")
	require.NoError(t, err)
	remote, err := GetRemoteRevision(bareDir, branch)
	require.NoError(t, err)
	require.Equal(t, local, remote, "Remote branch %s is not at HEAD", branch)
}
