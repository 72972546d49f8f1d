package cmdutil

import (
	"os"

	"github.com/donejs/donegen/internal/cmdtypes"
	"github.com/donejs/donegen/internal/config"
	"github.com/donejs/donegen/internal/gitconfig"
	"github.com/donejs/donegen/internal/npm"
	"github.com/donejs/donegen/internal/output"
	"github.com/donejs/donegen/internal/packages"
	"github.com/donejs/donegen/internal/pipeline"
	"github.com/donejs/donegen/internal/prompt"
)

// NewPrompter returns the interactive prompter for the current terminal:
// a full-screen TUI when stdin and stdout are terminals, line prompts otherwise.
func NewPrompter() prompt.Prompter {
	if output.IsInputTTY() && output.IsTTY() {
		return prompt.NewTUIPrompter(os.Stdin, os.Stdout)
	}
	return prompt.NewLinePrompter(os.Stdin, os.Stdout)
}

// LoadPackages resolves the package table: --packages flag, then
// DONEGEN_PACKAGES, then the config file, then the built-in table.
func LoadPackages(flagValue string, cfg *config.Config) (*packages.Table, error) {
	configValue := ""
	if cfg != nil {
		configValue = cfg.Packages
	}
	resolved := config.ResolveString(config.ResolveStringOptions{
		Key:         "packages",
		FlagValue:   flagValue,
		EnvVar:      "DONEGEN_PACKAGES",
		ConfigValue: configValue,
	})
	config.LogResolvedValues(resolved)

	if resolved.Value == "" {
		return packages.Default()
	}
	path, err := config.ExpandPath(resolved.Value)
	if err != nil {
		return nil, err
	}
	return packages.Load(path)
}

// OpenStore opens the answer store, falling back to the project-local one.
// A store that cannot be opened is skipped with a warning.
func OpenStore(root string) *config.Store {
	paths, err := config.DefaultPaths()
	if err != nil {
		output.Warn("answers will not be remembered", "error", err)
		return nil
	}
	store, err := config.OpenStore(paths.StoreFile, config.LocalStoreFile(root))
	if err != nil {
		output.Warn("answers will not be remembered", "error", err)
		return nil
	}
	output.Debug("using answer store", "path", store.Path())
	return store
}

// NewDeps wires the production collaborators of a pipeline run.
func NewDeps(gcfg *cmdtypes.GlobalConfig, flags *GenerateFlags, root string) (pipeline.Deps, error) {
	var cfg *config.Config
	if gcfg != nil {
		cfg = gcfg.Config
	}

	table, err := LoadPackages(flags.Packages, cfg)
	if err != nil {
		return pipeline.Deps{}, err
	}

	deps := pipeline.Deps{
		Prober:    npm.NewProber(),
		Installer: npm.NewInstaller(),
		Git:       gitconfig.NewReader(root),
		Packages:  table,
		Config:    cfg,
	}
	if flags.Yes {
		deps.Prompter = prompt.DefaultPrompter{}
	} else {
		deps.Prompter = NewPrompter()
	}
	if !flags.DryRun {
		deps.Store = OpenStore(root)
	}
	return deps, nil
}

// NewOptions builds pipeline options for archetype from flags and arguments.
func NewOptions(archetype string, gcfg *cmdtypes.GlobalConfig, flags *GenerateFlags, args []string) (pipeline.Options, error) {
	root, err := ResolveProjectRoot(flags.Dir)
	if err != nil {
		return pipeline.Options{}, err
	}

	skipInstall := flags.SkipInstall
	if gcfg != nil && gcfg.Config != nil && gcfg.Config.SkipInstall {
		skipInstall = true
	}

	opts := pipeline.Options{
		Archetype:   archetype,
		ProjectRoot: root,
		Args:        args,
		Yes:         flags.Yes,
		Force:       flags.Force,
		DryRun:      flags.DryRun,
		SkipInstall: skipInstall,
		Color:       output.IsTTY(),
	}

	if flags.Answers != "" {
		path, err := config.ExpandPath(flags.Answers)
		if err != nil {
			return pipeline.Options{}, err
		}
		preset, err := prompt.LoadAnswers(path)
		if err != nil {
			return pipeline.Options{}, err
		}
		opts.Preset = preset
	}
	return opts, nil
}
