package npm

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	oerrors "github.com/donejs/donegen/internal/errors"
	"github.com/donejs/donegen/internal/output"
)

// Runner executes npm with the given arguments in dir and returns stdout.
type Runner interface {
	Run(ctx context.Context, dir string, args ...string) (string, error)
}

// ExecRunner runs the npm binary found on PATH.
type ExecRunner struct {
	// Binary overrides the executable name. Defaults to "npm".
	Binary string
}

// Run implements Runner.
func (r ExecRunner) Run(ctx context.Context, dir string, args ...string) (string, error) {
	binary := r.Binary
	if binary == "" {
		binary = "npm"
	}

	cmd := exec.CommandContext(ctx, binary, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	output.Debug("running npm", "args", strings.Join(args, " "), "dir", dir)
	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", oerrors.NewNotFoundError(
				binary+" executable not found",
				"PATH",
				"Install Node.js and npm from https://nodejs.org",
			)
		}
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return stdout.String(), fmt.Errorf("npm %s: %s", strings.Join(args, " "), msg)
	}
	return stdout.String(), nil
}
