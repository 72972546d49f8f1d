// Package pipeline runs one generation: collect answers, derive fields,
// plan, render and commit files, then optionally install dependencies.
package pipeline

import (
	"time"

	"github.com/donejs/donegen/internal/config"
	"github.com/donejs/donegen/internal/gitconfig"
	"github.com/donejs/donegen/internal/npm"
	"github.com/donejs/donegen/internal/packages"
	"github.com/donejs/donegen/internal/prompt"
)

// ManifestFile is the project manifest, relative to the project root.
const ManifestFile = "package.json"

// OverrideDir holds project-specific component templates, relative to the project root.
const OverrideDir = ".donejs/templates"

// FallbackLicenseEmail is the license contact used in non-interactive mode without an author email.
const FallbackLicenseEmail = "contact@bitovi.com"

// Options describes one invocation.
type Options struct {
	// Archetype is the archetype name (e.g., "app").
	Archetype string

	// ProjectRoot is the absolute project directory.
	ProjectRoot string

	// Args are positional arguments: component name and tag, or supermodel name and url.
	Args []string

	// Yes answers every question with its default.
	Yes bool

	// Force replaces existing files.
	Force bool

	// DryRun plans and renders without writing.
	DryRun bool

	// SkipInstall disables the npm install step.
	SkipInstall bool

	// Preset answers questions without asking (from --answers).
	Preset prompt.Answers

	// Color enables colored diff output.
	Color bool
}

// Deps are the collaborators a run uses.
type Deps struct {
	Prompter  prompt.Prompter
	Prober    npm.Prober
	Installer npm.Installer
	Git       gitconfig.Reader

	// Packages is the dependency table for generated manifests.
	Packages *packages.Table

	// Store remembers answers across runs. Optional.
	Store *config.Store

	// Config supplies defaults for author and github questions. Optional.
	Config *config.Config

	// Now stamps license years. Defaults to time.Now.
	Now func() time.Time
}

// Result reports what a run did.
type Result struct {
	// Archetype is the archetype that ran.
	Archetype string

	// Root is the project directory.
	Root string

	// Name is the normalized package, component or model name.
	Name string

	// Files maps written paths (slash separated, relative to Root) to their status.
	Files map[string]string

	// Planned lists destinations in plan order. Set for every run.
	Planned []string

	// ManifestDiff is the dry-run report of package.json changes.
	ManifestDiff string

	// Installed is true when the npm install step ran successfully.
	Installed bool

	// NextSteps are follow-up commands for the user.
	NextSteps []string
}
