// Package cmdutil provides shared command utilities for the generator commands.
// It centralizes flag group management, dependency wiring and output helpers.
package cmdutil

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

// GenerateFlags holds flags common to every generator command.
type GenerateFlags struct {
	Dir         string
	Yes         bool
	Force       bool
	DryRun      bool
	SkipInstall bool
	Answers     string
	Packages    string
}

// AddTo registers the generate flags on the given cobra command.
func (f *GenerateFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Dir, "dir", "C", ".",
		"Project directory to generate into")
	cmd.Flags().BoolVarP(&f.Yes, "yes", "y", false,
		"Answer every question with its default")
	cmd.Flags().BoolVarP(&f.Force, "force", "f", false,
		"Overwrite existing files")
	cmd.Flags().BoolVar(&f.DryRun, "dry-run", false,
		"Show what would be generated without writing")
	cmd.Flags().StringVar(&f.Answers, "answers", "",
		"YAML or JSON file with answers to questions")
}

// AddInstallTo registers the flags of commands that create a project.
func (f *GenerateFlags) AddInstallTo(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.SkipInstall, "skip-install", false,
		"Do not run npm install after generating (env: DONEGEN_SKIP_INSTALL)")
	cmd.Flags().StringVar(&f.Packages, "packages", "",
		"JSON file replacing the built-in package table (env: DONEGEN_PACKAGES)")
}

// ResolveProjectRoot returns the absolute project directory for dir,
// defaulting to the current directory.
func ResolveProjectRoot(dir string) (string, error) {
	if dir == "" {
		dir = "."
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving project directory %s: %w", dir, err)
	}
	return abs, nil
}
