package cli_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"gca.dev/gca/testhelpers"
)

func TestPreconditions(t *testing.T) {
	t.Run("outside a repository aborts without staging", func(t *testing.T) {
		dir := t.TempDir()

		res := runGca(t, dir, "2\nadd file\ny\ny\n")
		require.Equal(t, 1, res.exitCode, res.output)
		require.Contains(t, res.output, "not a git repository")
		require.NotContains(t, res.output, "How do you want")
	})

	t.Run("clean work tree aborts before the message prompt", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		res := runGca(t, scene.Dir, "2\nadd file\ny\ny\n")
		require.Equal(t, 1, res.exitCode, res.output)
		require.Contains(t, res.output, "nothing to commit")
		require.NotContains(t, res.output, "How do you want")
		testhelpers.ExpectCommitCount(t, scene.Repo, 1)
	})

	t.Run("rejects positional arguments", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		res := runGca(t, scene.Dir, "", "extra")
		require.Equal(t, 1, res.exitCode, res.output)
		require.Contains(t, res.output, "unknown command")
	})
}

func TestCommitFlow(t *testing.T) {
	t.Run("declining the commit leaves the repository untouched", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		require.NoError(t, scene.Repo.CreateChange("new", "a", true))

		res := runGca(t, scene.Dir, "2\nfix crash on start\nn\n")
		require.Equal(t, 0, res.exitCode, res.output)
		require.Contains(t, res.output, "Commit canceled")

		testhelpers.ExpectCommitCount(t, scene.Repo, 1)
		status, err := scene.Repo.StatusPorcelain()
		require.NoError(t, err)
		require.Contains(t, status, "?? a_test.txt")
	})

	t.Run("custom message with fix gets the fix prefix", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		require.NoError(t, scene.Repo.CreateChange("new", "a", true))

		res := runGca(t, scene.Dir, "2\nfix crash on start\ny\nn\n")
		require.Equal(t, 0, res.exitCode, res.output)
		require.Contains(t, res.output, "Commit successful!")

		testhelpers.ExpectCommits(t, scene.Repo, []string{"fix: fix crash on start", "1"})
		testhelpers.ExpectCleanWorkTree(t, scene.Repo)
	})

	t.Run("guided commit uses the picked template", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		require.NoError(t, scene.Repo.CreateChange("new", "a", true))

		// method 1 = guided, type 3 = docs, template 1 = "update documentation"
		res := runGca(t, scene.Dir, "1\n3\n1\ny\nn\n")
		require.Equal(t, 0, res.exitCode, res.output)

		testhelpers.ExpectCommits(t, scene.Repo, []string{"docs: update documentation"})
	})

	t.Run("invalid menu choices are asked again", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		require.NoError(t, scene.Repo.CreateChange("new", "a", true))

		res := runGca(t, scene.Dir, "9\nx\n2\nadd search box\ny\nn\n")
		require.Equal(t, 0, res.exitCode, res.output)
		require.Contains(t, res.output, "Invalid choice")

		testhelpers.ExpectCommits(t, scene.Repo, []string{"feat: add search box"})
	})

	t.Run("accepting both prompts commits once and pushes once", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.RemoteSceneSetup)
		require.NoError(t, scene.Repo.CreateChange("new", "a", true))

		res := runGca(t, scene.Dir, "2\nadd retry option\ny\ny\n")
		require.Equal(t, 0, res.exitCode, res.output)
		require.Contains(t, res.output, "Push main to origin?")
		require.Contains(t, res.output, "Successfully pushed to remote!")

		testhelpers.ExpectCommitCount(t, scene.Repo, 2)
		testhelpers.ExpectCommits(t, scene.Repo, []string{"feat: add retry option", "1"})
		testhelpers.ExpectRemoteInSync(t, scene.Repo, scene.OriginDir(), "main")
	})

	t.Run("appends a timestamp by default", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		require.NoError(t, scene.Repo.CreateChange("new", "a", true))
		t.Setenv("GCA_CONFIG", t.TempDir()+"/missing.yaml")

		res := runGca(t, scene.Dir, "2\nfix crash\ny\nn\n")
		require.Equal(t, 0, res.exitCode, res.output)

		messages, err := scene.Repo.ListCurrentBranchCommitMessages()
		require.NoError(t, err)
		require.Regexp(t, regexp.MustCompile(`^fix: fix crash \(\d{4}-\d{2}-\d{2} \d{2}:\d{2}\)$`), messages[0])
	})

	t.Run("running out of input cancels cleanly", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		require.NoError(t, scene.Repo.CreateChange("new", "a", true))

		res := runGca(t, scene.Dir, "")
		require.Equal(t, 0, res.exitCode, res.output)
		require.Contains(t, res.output, "Canceled")
		testhelpers.ExpectCommitCount(t, scene.Repo, 1)
	})

	t.Run("empty custom message aborts", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		require.NoError(t, scene.Repo.CreateChange("new", "a", true))

		res := runGca(t, scene.Dir, "2\n\n")
		require.Equal(t, 1, res.exitCode, res.output)
		require.Contains(t, res.output, "aborting due to empty commit message")
		testhelpers.ExpectCommitCount(t, scene.Repo, 1)
	})
}

func TestGitFailures(t *testing.T) {
	t.Run("push without a remote propagates git's exit code", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		require.NoError(t, scene.Repo.CreateChange("new", "a", true))

		res := runGca(t, scene.Dir, "2\nadd file\ny\ny\n")
		require.Equal(t, 128, res.exitCode, res.output)
		require.Contains(t, res.output, "❌ failed to push\n")
		require.NotContains(t, res.output, "git command failed")
		require.Equal(t, 1, strings.Count(res.output, "❌"))
		testhelpers.ExpectCommitCount(t, scene.Repo, 2)
	})

	t.Run("failing pre-commit hook stops before the push prompt", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.RemoteSceneSetup)
		require.NoError(t, scene.Repo.CreatePrecommitHook("#!/bin/sh\necho 'hook says no' >&2\nexit 1\n"))
		require.NoError(t, scene.Repo.CreateChange("new", "a", true))

		res := runGca(t, scene.Dir, "2\nadd file\ny\ny\n")
		require.Equal(t, 1, res.exitCode, res.output)
		require.Equal(t, 1, strings.Count(res.output, "hook says no"), res.output)
		require.Contains(t, res.output, "❌ failed to commit\n")
		require.NotContains(t, res.output, "exit status")
		require.NotContains(t, res.output, "Push main to origin?")
		testhelpers.ExpectCommitCount(t, scene.Repo, 1)
	})
}

func TestVersion(t *testing.T) {
	res := runGca(t, t.TempDir(), "", "--version")
	require.Equal(t, 0, res.exitCode, res.output)
	require.Contains(t, res.output, "gca version")
}
