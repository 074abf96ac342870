// Package testutil provides test utilities and helpers for courgette tests.
package testutil

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
	"time"
)

var (
	// courgetteBinaryPath caches the built courgette binary path.
	courgetteBinaryPath string
	courgetteBuildOnce  sync.Once
	courgetteBuildErr   error
)

// E2EEnv provides an isolated environment for E2E testing. Commands run in a
// fresh working directory with COURGETTE_* and CUCUMBER_* variables removed, so
// only the overrides a test sets explicitly reach the binary.
type E2EEnv struct {
	t       *testing.T
	workDir string
	tempDir string
	extra   []string
}

// CommandResult captures the result of running a courgette command.
type CommandResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
	Duration time.Duration
}

// NewE2EEnv creates a new E2E test environment and builds the binary on first use.
func NewE2EEnv(t *testing.T) *E2EEnv {
	t.Helper()

	courgetteBuildOnce.Do(func() {
		courgetteBinaryPath, courgetteBuildErr = buildCourgette()
	})
	if courgetteBuildErr != nil {
		t.Fatalf("building courgette: %v", courgetteBuildErr)
	}

	root := t.TempDir()
	env := &E2EEnv{
		t:       t,
		workDir: filepath.Join(root, "project"),
		tempDir: filepath.Join(root, "tmp"),
	}
	for _, dir := range []string{env.workDir, env.tempDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("creating %s: %v", dir, err)
		}
	}
	return env
}

func buildCourgette() (string, error) {
	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		return "", errors.New("determining current file location")
	}
	repoRoot := filepath.Join(filepath.Dir(currentFile), "..", "..")

	tmpDir, err := os.MkdirTemp("", "courgette-build-*")
	if err != nil {
		return "", fmt.Errorf("creating temp dir for build: %w", err)
	}

	binaryPath := filepath.Join(tmpDir, "courgette")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/courgette")
	cmd.Dir = repoRoot
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("building courgette: %w\nOutput: %s", err, output)
	}
	return binaryPath, nil
}

// Setenv adds a variable to the environment of every later Run.
func (e *E2EEnv) Setenv(key, value string) {
	e.extra = append(e.extra, key+"="+value)
}

// WriteFile writes content to name, relative to the working directory, and
// returns the absolute path.
func (e *E2EEnv) WriteFile(name, content string) string {
	e.t.Helper()

	path := filepath.Join(e.workDir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		e.t.Fatalf("creating directory for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		e.t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

// FileExists reports whether name exists relative to the working directory.
func (e *E2EEnv) FileExists(name string) bool {
	_, err := os.Stat(filepath.Join(e.workDir, name))
	return err == nil
}

// Run executes a courgette command in the isolated environment.
func (e *E2EEnv) Run(args ...string) CommandResult {
	e.t.Helper()

	start := time.Now()

	cmd := exec.Command(courgetteBinaryPath, args...)
	cmd.Dir = e.workDir
	cmd.Env = e.buildIsolatedEnv()

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	result := CommandResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(start),
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
		} else {
			result.ExitCode = 1
		}
	}
	return result
}

// WorkDir returns the directory commands run in.
func (e *E2EEnv) WorkDir() string {
	return e.workDir
}

// TempDir returns the directory used as TMPDIR, where worker files are placed.
func (e *E2EEnv) TempDir() string {
	return e.tempDir
}

func (e *E2EEnv) buildIsolatedEnv() []string {
	env := []string{
		"PATH=" + os.Getenv("PATH"),
		"HOME=" + e.workDir,
		"TMPDIR=" + e.tempDir,
	}
	for _, key := range []string{"TERM", "LANG", "LC_ALL"} {
		if val, ok := os.LookupEnv(key); ok {
			env = append(env, key+"="+val)
		}
	}
	return append(env, e.extra...)
}
