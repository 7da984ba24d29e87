package testhelpers

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
)

var (
	sharedBinaryPath string
	binaryOnce       sync.Once
	binaryErr        error
)

// SetSharedBinaryPath sets the shared binary path for tests.
func SetSharedBinaryPath(path string) {
	sharedBinaryPath = path
}

// GetSharedBinaryPath returns the shared binary path, building it on first use
// when TestMain did not already provide one.
func GetSharedBinaryPath() string {
	binaryOnce.Do(func() {
		if sharedBinaryPath == "" {
			sharedBinaryPath, _, binaryErr = buildBinary()
		}
	})
	return sharedBinaryPath
}

// GetBinaryError returns any error that occurred during binary building.
func GetBinaryError() error {
	return binaryErr
}

// TestMain builds the gca binary once, runs the package's tests and removes it again.
// Packages use it by calling testhelpers.TestMain(m, nil) from their own TestMain.
func TestMain(m *testing.M, cleanup func()) {
	binaryPath, binaryCleanup, err := buildBinary()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build gca binary: %v\n", err)
		os.Exit(1)
	}
	SetSharedBinaryPath(binaryPath)

	code := m.Run()

	binaryCleanup()
	if cleanup != nil {
		cleanup()
	}
	os.Exit(code)
}

// buildBinary compiles ./cmd/gca into a fresh temp directory.
func buildBinary() (string, func(), error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	moduleRoot := findModuleRoot(wd)
	if moduleRoot == "" {
		return "", nil, fmt.Errorf("could not find module root (go.mod) starting from %s", wd)
	}

	tmpDir, err := os.MkdirTemp("", "gca-test-binary-*")
	if err != nil {
		return "", nil, fmt.Errorf("failed to create temp directory: %w", err)
	}
	cleanup := func() {
		_ = os.RemoveAll(tmpDir) // Ignore cleanup errors
	}

	binaryPath := filepath.Join(tmpDir, "gca")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/gca")
	cmd.Dir = moduleRoot
	if output, err := cmd.CombinedOutput(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("failed to build: %s: %w", string(output), err)
	}

	return binaryPath, cleanup, nil
}

// findModuleRoot walks up from startDir to the directory containing go.mod.
func findModuleRoot(startDir string) string {
	dir := startDir
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
