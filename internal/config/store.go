package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/donejs/donegen/internal/output"
)

// Store remembers answers across runs so they can be offered as defaults.
type Store struct {
	path    string
	answers map[string]string
}

type storeFile struct {
	Answers map[string]string `yaml:"answers"`
}

// OpenStore opens the shared store at sharedPath. When the shared store
// cannot be written because of permissions, the store at localPath is
// selected instead and the decision is logged. Other failures are returned.
func OpenStore(sharedPath, localPath string) (*Store, error) {
	s, err := openStore(sharedPath)
	if err == nil {
		return s, nil
	}
	if !errors.Is(err, fs.ErrPermission) {
		return nil, err
	}

	output.Warn("shared answer store is not writable, using project store",
		"shared", sharedPath,
		"local", localPath)

	return openStore(localPath)
}

func openStore(path string) (*Store, error) {
	if err := checkWritable(path); err != nil {
		return nil, err
	}

	s := &Store{path: path, answers: map[string]string{}}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading answer store %s: %w", path, err)
	}

	var f storeFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		output.Warn("ignoring malformed answer store", "path", path, "error", err)
		return s, nil
	}
	if f.Answers != nil {
		s.answers = f.Answers
	}
	return s, nil
}

// checkWritable probes that path's directory and file can be written.
func checkWritable(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating answer store directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening answer store %s: %w", path, err)
	}
	return f.Close()
}

// Path returns the file backing the store.
func (s *Store) Path() string {
	return s.path
}

// Get returns a remembered answer.
func (s *Store) Get(key string) (string, bool) {
	v, ok := s.answers[key]
	return v, ok
}

// Set remembers an answer. Call Save to persist it.
func (s *Store) Set(key, value string) {
	s.answers[key] = value
}

// Keys returns the remembered keys, sorted.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.answers))
	for k := range s.answers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Save writes the store to disk.
func (s *Store) Save() error {
	data, err := yaml.Marshal(storeFile{Answers: s.answers})
	if err != nil {
		return fmt.Errorf("encoding answer store: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing answer store %s: %w", s.path, err)
	}
	return nil
}
