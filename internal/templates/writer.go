package templates

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"

	oerrors "github.com/donejs/donegen/internal/errors"
	"github.com/donejs/donegen/internal/output"
)

// StagingPrefix names the temporary directory files are rendered into before commit.
const StagingPrefix = ".donegen-staging-"

// Writer commits rendered files under a project root. All files are first
// written to a staging directory and only moved into place once every one of
// them has been written. Files replaced during the move are kept in the
// staging directory until the commit finishes; if a move fails, destinations
// already moved are removed and the replaced files restored.
type Writer struct {
	// Root is the project directory destinations are relative to.
	Root string

	// Force allows replacing existing files.
	Force bool

	// Mergeable lists destinations whose content was already merged with the
	// existing file (e.g., package.json) and may be replaced without Force.
	Mergeable map[string]bool
}

// NewWriter creates a writer for root.
func NewWriter(root string, force bool, mergeable ...string) *Writer {
	m := make(map[string]bool, len(mergeable))
	for _, dest := range mergeable {
		m[filepath.Clean(dest)] = true
	}
	return &Writer{Root: root, Force: force, Mergeable: m}
}

// Conflicts returns the destinations that already exist and may not be replaced.
func (w *Writer) Conflicts(files []File) []string {
	if w.Force {
		return nil
	}

	var conflicts []string
	for _, f := range files {
		dest := filepath.Clean(f.Destination)
		if w.Mergeable[dest] {
			continue
		}
		if _, err := os.Stat(filepath.Join(w.Root, dest)); err == nil {
			conflicts = append(conflicts, dest)
		}
	}
	sort.Strings(conflicts)
	return conflicts
}

// Commit writes files and returns each destination's status.
func (w *Writer) Commit(files []File) (map[string]string, error) {
	if err := w.check(files); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(w.Root, 0o755); err != nil {
		return nil, wrapFSError(err, "creating project directory", w.Root)
	}

	staging := filepath.Join(w.Root, StagingPrefix+uuid.NewString())
	defer func() {
		if err := os.RemoveAll(staging); err != nil {
			output.Warn("could not remove staging directory", "path", staging, "error", err)
		}
	}()

	staged := filepath.Join(staging, "files")
	backup := filepath.Join(staging, "backup")

	for _, f := range files {
		target := filepath.Join(staged, f.Destination)
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return nil, wrapFSError(err, "creating staging directory", filepath.Dir(target))
		}
		if err := os.WriteFile(target, f.Content, 0o644); err != nil {
			return nil, wrapFSError(err, "staging file", f.Destination)
		}
	}
	output.Debug("staged files", "count", len(files), "dir", staging)

	statuses := make(map[string]string, len(files))
	var moved []move
	for _, f := range files {
		dest := filepath.Clean(f.Destination)
		target := filepath.Join(w.Root, dest)

		m := move{target: target}
		status := output.StatusCreated
		if _, err := os.Stat(target); err == nil {
			status = output.StatusOverwritten
			if w.Mergeable[dest] {
				status = output.StatusMerged
			}
			m.backup = filepath.Join(backup, dest)
		}

		if err := w.place(filepath.Join(staged, dest), m); err != nil {
			rollback(moved)
			return nil, wrapFSError(err, "moving file into place", dest)
		}
		moved = append(moved, m)

		output.Debug("wrote file", "path", dest, "status", status)
		statuses[filepath.ToSlash(dest)] = status
	}

	return statuses, nil
}

// move records one committed destination and, when it replaced a file,
// where the previous content was set aside.
type move struct {
	target string
	backup string
}

// place moves src onto m.target, first setting an existing target aside.
func (w *Writer) place(src string, m move) error {
	if m.backup != "" {
		if err := os.MkdirAll(filepath.Dir(m.backup), 0o755); err != nil {
			return err
		}
		if err := os.Rename(m.target, m.backup); err != nil {
			return err
		}
	}
	if err := os.MkdirAll(filepath.Dir(m.target), 0o755); err != nil {
		restore(m)
		return err
	}
	if err := os.Rename(src, m.target); err != nil {
		restore(m)
		return err
	}
	return nil
}

// rollback undoes moves in reverse order.
func rollback(moved []move) {
	for i := len(moved) - 1; i >= 0; i-- {
		m := moved[i]
		if err := os.RemoveAll(m.target); err != nil {
			output.Warn("could not remove partially written file", "path", m.target, "error", err)
			continue
		}
		restore(m)
	}
}

func restore(m move) {
	if m.backup == "" {
		return
	}
	if err := os.Rename(m.backup, m.target); err != nil {
		output.Warn("could not restore replaced file", "path", m.target, "error", err)
	}
}

func (w *Writer) check(files []File) error {
	seen := make(map[string]bool, len(files))
	for _, f := range files {
		dest := filepath.Clean(f.Destination)
		if filepath.IsAbs(dest) || dest == ".." || strings.HasPrefix(dest, ".."+string(filepath.Separator)) {
			return oerrors.NewExternalPathError(f.Destination)
		}
		if seen[dest] {
			return fmt.Errorf("destination %s planned twice", dest)
		}
		seen[dest] = true
	}

	if conflicts := w.Conflicts(files); len(conflicts) > 0 {
		return oerrors.NewValidationError(
			fmt.Sprintf("refusing to overwrite existing files: %s", strings.Join(conflicts, ", ")),
			"",
			"use --force to overwrite existing files",
		)
	}
	return nil
}

func wrapFSError(err error, action, location string) error {
	if errors.Is(err, fs.ErrPermission) {
		return oerrors.NewPermissionError(action+": permission denied", location)
	}
	return fmt.Errorf("%s %s: %w", action, location, err)
}
