package npm

import (
	"context"
	"fmt"

	"github.com/donejs/donegen/internal/output"
)

// SaveMode selects how installed packages are recorded in package.json.
type SaveMode int

const (
	// SaveNone installs what package.json already lists.
	SaveNone SaveMode = iota
	// SaveProd records packages under dependencies.
	SaveProd
	// SaveDev records packages under devDependencies.
	SaveDev
)

// Installer runs npm install in a project directory.
type Installer interface {
	Install(ctx context.Context, dir string, mode SaveMode, packages ...string) error
}

// ExecInstaller installs with the npm binary, showing a spinner on terminals.
type ExecInstaller struct {
	Runner Runner
}

// NewInstaller creates an installer running the npm on PATH.
func NewInstaller() *ExecInstaller {
	return &ExecInstaller{Runner: ExecRunner{}}
}

// InstallArgs returns the npm arguments for an install.
func InstallArgs(mode SaveMode, packages ...string) []string {
	args := []string{"--loglevel", "error", "install"}
	switch mode {
	case SaveProd:
		args = append(args, "--save")
	case SaveDev:
		args = append(args, "--save-dev")
	}
	return append(args, packages...)
}

// Install implements Installer.
func (i *ExecInstaller) Install(ctx context.Context, dir string, mode SaveMode, packages ...string) error {
	args := InstallArgs(mode, packages...)

	title := "Installing dependencies"
	if len(packages) > 0 {
		title = fmt.Sprintf("Installing %d packages", len(packages))
	}

	return output.RunWithSpinner(ctx, func(ctx context.Context) error {
		_, err := i.Runner.Run(ctx, dir, args...)
		return err
	}, output.WithTitle(title))
}
