// Package testutil provides test helpers for generator tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// ProjectDir creates an empty project directory named name inside a
// temporary directory. The base name matters: it is the default project name.
func ProjectDir(t *testing.T, name string) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("failed to create project dir %s: %v", dir, err)
	}
	return dir
}

// WriteFile creates a file with the given content, creating parent directories.
func WriteFile(t *testing.T, path, content string) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}

// WriteManifest writes package.json into the project directory dir.
func WriteManifest(t *testing.T, dir, content string) string {
	t.Helper()
	return WriteFile(t, filepath.Join(dir, "package.json"), content)
}

// ReadFile returns the content of path.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read file %s: %v", path, err)
	}
	return string(data)
}

// AssertNoEntries fails when dir contains an entry whose name starts with prefix.
// An empty prefix asserts the directory is empty.
func AssertNoEntries(t *testing.T, dir, prefix string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return
	}
	if err != nil {
		t.Fatalf("failed to read dir %s: %v", dir, err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), prefix) {
			t.Errorf("unexpected entry in %s: %s", dir, e.Name())
		}
	}
}
