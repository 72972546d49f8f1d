package main

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var donegenBinary string

func TestMain(m *testing.M) {
	// Build the binary once for all tests
	tmpDir, err := os.MkdirTemp("", "donegen-e2e-*")
	if err != nil {
		panic("failed to create temp dir: " + err.Error())
	}

	donegenBinary = filepath.Join(tmpDir, "donegen")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	cmd := exec.CommandContext(ctx, "go", "build", "-o", donegenBinary, ".")
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		cancel()
		os.RemoveAll(tmpDir)
		panic("failed to build donegen binary: " + err.Error())
	}
	cancel()

	code := m.Run()
	os.RemoveAll(tmpDir)
	os.Exit(code)
}

// runDonegen runs the binary in workDir with an isolated HOME and returns its
// output and exit code.
func runDonegen(t *testing.T, workDir string, args ...string) (stdout, stderr string, code int) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, donegenBinary, args...)
	cmd.Dir = workDir
	cmd.Env = append(os.Environ(), "HOME="+t.TempDir(), "DONEGEN_CONFIG=", "DONEGEN_PACKAGES=")

	stdoutBytes, err := cmd.Output()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return string(stdoutBytes), string(exitErr.Stderr), exitErr.ExitCode()
	}
	require.NoError(t, err)
	return string(stdoutBytes), "", 0
}

func TestE2E_Generator(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "donejs-thing")
	require.NoError(t, os.MkdirAll(dir, 0o755))

	_, stderr, code := runDonegen(t, dir, "generator", "--yes", "--skip-install")
	require.Equal(t, 0, code, "stderr: %s", stderr)

	assert.FileExists(t, filepath.Join(dir, "package.json"))
	assert.FileExists(t, filepath.Join(dir, "default", "index.js"))
	assert.FileExists(t, filepath.Join(dir, ".gitignore"))
	assert.FileExists(t, filepath.Join(dir, "LICENSE"))
}

func TestE2E_ComponentAndModel(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "pmo")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"),
		[]byte(`{"name": "pmo", "steal": {"directories": {"lib": "src"}}}`), 0o644))

	_, stderr, code := runDonegen(t, dir, "component", "restaurant/list", "pmo-restaurant-list")
	require.Equal(t, 0, code, "stderr: %s", stderr)
	assert.FileExists(t, filepath.Join(dir, "src", "restaurant", "list", "list.js"))

	_, stderr, code = runDonegen(t, dir, "supermodel", "restaurant", "--yes")
	require.Equal(t, 0, code, "stderr: %s", stderr)
	assert.FileExists(t, filepath.Join(dir, "src", "models", "restaurant.js"))
}

func TestE2E_ExitCodes(t *testing.T) {
	t.Run("component outside a project", func(t *testing.T) {
		_, _, code := runDonegen(t, t.TempDir(), "component", "home/page", "home-page")
		assert.Equal(t, 5, code)
	})

	t.Run("invalid project name", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "http")
		require.NoError(t, os.MkdirAll(dir, 0o755))

		_, stderr, code := runDonegen(t, dir, "generator", "--yes", "--skip-install")
		assert.Equal(t, 2, code)
		assert.Contains(t, stderr, "http")
	})

	t.Run("unknown command", func(t *testing.T) {
		_, _, code := runDonegen(t, t.TempDir(), "aplication")
		assert.Equal(t, 1, code)
	})
}
