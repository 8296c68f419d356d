package testhelpers

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// Binaries built by TestMain, keyed by command name
var binaries = []string{"wc-branch", "wc-commit"}

var sharedBinaryDir string

// BinaryPath returns the path of a helper binary built by TestMain
func BinaryPath(t *testing.T, name string) string {
	t.Helper()
	if sharedBinaryDir == "" {
		t.Fatal("helper binaries not built; call testhelpers.TestMain from TestMain")
	}
	return filepath.Join(sharedBinaryDir, name)
}

// TestMain builds the helper binaries once, runs the tests and removes the binaries.
// Packages use it by calling testhelpers.TestMain(m, nil) in their own TestMain.
func TestMain(m *testing.M, cleanup func()) {
	dir, err := buildBinaries()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build helper binaries: %v\n", err)
		os.Exit(1)
	}
	sharedBinaryDir = dir

	code := m.Run()

	_ = os.RemoveAll(dir) // Ignore cleanup errors
	if cleanup != nil {
		cleanup()
	}
	os.Exit(code)
}

func buildBinaries() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}

	moduleRoot := findModuleRoot(wd)
	if moduleRoot == "" {
		return "", fmt.Errorf("could not find module root (go.mod) starting from %s", wd)
	}

	tmpDir, err := os.MkdirTemp("", "webchan-test-binary-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp directory: %w", err)
	}

	for _, name := range binaries {
		cmd := exec.Command("go", "build", "-o", filepath.Join(tmpDir, name), "./cmd/"+name)
		cmd.Dir = moduleRoot
		if output, err := cmd.CombinedOutput(); err != nil {
			_ = os.RemoveAll(tmpDir) // Ignore cleanup errors
			return "", fmt.Errorf("failed to build %s: %s: %w", name, string(output), err)
		}
	}

	return tmpDir, nil
}

// findModuleRoot walks up from startDir to the directory holding go.mod
func findModuleRoot(startDir string) string {
	dir := startDir
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}
