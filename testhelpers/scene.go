package testhelpers

import (
	"os"
	"testing"
)

// Scene represents a test scene with a temporary directory and Git repository.
// Scenes never change the process working directory, so they are safe in parallel tests.
type Scene struct {
	Dir  string
	Repo *GitRepo
}

// SceneSetup is a function type for setting up a scene.
type SceneSetup func(*Scene) error

// NewScene creates a new test scene with a temporary directory and Git repository.
// It automatically handles cleanup using t.Cleanup().
func NewScene(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()

	// Create temporary directory
	tmpDir, err := os.MkdirTemp("", "gca-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}

	// Register cleanup, including the sibling bare remotes
	t.Cleanup(func() {
		if os.Getenv("DEBUG") == "" {
			_ = os.RemoveAll(tmpDir)
			_ = os.RemoveAll(tmpDir + "-origin.git")
		}
	})

	// Initialize Git repository
	repo, err := NewGitRepo(tmpDir)
	if err != nil {
		t.Fatalf("Failed to create Git repo: %v", err)
	}

	scene := &Scene{
		Dir:  tmpDir,
		Repo: repo,
	}

	// Run custom setup if provided
	if setup != nil {
		if err := setup(scene); err != nil {
			t.Fatalf("Setup failed: %v", err)
		}
	}

	return scene
}

// BasicSceneSetup is a setup function that creates a basic scene with a single commit.
func BasicSceneSetup(scene *Scene) error {
	return scene.Repo.CreateChangeAndCommit("1", "1")
}

// RemoteSceneSetup creates a single commit and pushes main to a bare "origin" with upstream tracking.
func RemoteSceneSetup(scene *Scene) error {
	if err := BasicSceneSetup(scene); err != nil {
		return err
	}
	if _, err := scene.Repo.CreateBareRemote("origin"); err != nil {
		return err
	}
	return scene.Repo.PushBranch("origin", "main")
}

// OriginDir returns the path of the bare "origin" remote created by RemoteSceneSetup.
func (s *Scene) OriginDir() string {
	return s.Dir + "-origin.git"
}
