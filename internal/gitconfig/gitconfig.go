// Package gitconfig reads the user identity from git configuration.
package gitconfig

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/donejs/donegen/internal/output"
)

// User is the identity configured in git.
type User struct {
	Name  string
	Email string
}

// Reader looks up git configuration values.
type Reader interface {
	Read(ctx context.Context) (User, error)
}

// ExecReader shells out to "git config --get".
type ExecReader struct {
	// Dir is the working directory so repository-level config is honored.
	Dir string
}

// NewReader creates a reader for dir.
func NewReader(dir string) *ExecReader {
	return &ExecReader{Dir: dir}
}

// Read implements Reader. Unset keys are returned empty. A missing git
// binary is not an error; the identity is simply unknown.
func (r *ExecReader) Read(ctx context.Context) (User, error) {
	var u User
	var err error

	if u.Name, err = r.get(ctx, "user.name"); err != nil {
		return User{}, err
	}
	if u.Email, err = r.get(ctx, "user.email"); err != nil {
		return User{}, err
	}
	return u, nil
}

func (r *ExecReader) get(ctx context.Context, key string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", "config", "--get", key)
	cmd.Dir = r.Dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return strings.TrimSpace(stdout.String()), nil
	}

	if errors.Is(err, exec.ErrNotFound) {
		output.Debug("git not found, skipping git config defaults")
		return "", nil
	}

	// git config exits 1 when the key is unset.
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
		return "", nil
	}

	return "", fmt.Errorf("git config --get %s failed: %s", key, strings.TrimSpace(stderr.String()))
}

// Static returns a fixed identity.
type Static User

// Read implements Reader.
func (s Static) Read(context.Context) (User, error) {
	return User(s), nil
}
