package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/donejs/donegen/internal/archetype"
	"github.com/donejs/donegen/internal/cmdtypes"
	"github.com/donejs/donegen/internal/cmdutil"
	"github.com/donejs/donegen/internal/output"
	"github.com/donejs/donegen/internal/pipeline"
)

// runFunc executes a pipeline run. Tests replace it to avoid npm and prompts.
type runFunc func(cmd *cobra.Command, opts pipeline.Options, deps pipeline.Deps) (*pipeline.Result, error)

func defaultRun(cmd *cobra.Command, opts pipeline.Options, deps pipeline.Deps) (*pipeline.Result, error) {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return pipeline.Run(ctx, opts, deps)
}

// archetypeCmd describes one generator command.
type archetypeCmd struct {
	name    string
	use     string
	long    string
	args    cobra.PositionalArgs
	project bool
}

func newArchetypeCmd(spec archetypeCmd, gcfg *cmdtypes.GlobalConfig, run runFunc) *cobra.Command {
	var flags cmdutil.GenerateFlags

	arch, err := archetype.Get(spec.name)
	if err != nil {
		panic(fmt.Sprintf("archetype %q is not registered", spec.name))
	}

	c := &cobra.Command{
		Use:   spec.use,
		Short: arch.Description,
		Long:  spec.long,
		Args:  spec.args,
		RunE: func(c *cobra.Command, args []string) error {
			return runArchetype(c, spec.name, gcfg, &flags, args, run)
		},
	}

	flags.AddTo(c)
	if spec.project {
		flags.AddInstallTo(c)
	}
	return c
}

func runArchetype(c *cobra.Command, name string, gcfg *cmdtypes.GlobalConfig, flags *cmdutil.GenerateFlags, args []string, run runFunc) error {
	opts, err := cmdutil.NewOptions(name, gcfg, flags, args)
	if err != nil {
		cmdutil.PrintError(c.ErrOrStderr(), "invalid options", err)
		return cmdutil.ExitError(err)
	}

	deps, err := cmdutil.NewDeps(gcfg, flags, opts.ProjectRoot)
	if err != nil {
		cmdutil.PrintError(c.ErrOrStderr(), "loading package table", err)
		return cmdutil.ExitError(err)
	}

	output.Debug("generating", "archetype", name, "root", opts.ProjectRoot, "dryRun", opts.DryRun)

	result, err := run(c, opts, deps)
	cmdutil.PrintResult(c.OutOrStdout(), result, opts.DryRun)
	if err != nil {
		cmdutil.PrintError(c.ErrOrStderr(), fmt.Sprintf("generating %s failed", name), err)
		return cmdutil.ExitError(err)
	}
	return nil
}

// NewAppCmd creates the app command.
func NewAppCmd(gcfg *cmdtypes.GlobalConfig) *cobra.Command {
	return newArchetypeCmd(archetypeCmd{
		name: "app",
		use:  "app",
		long: `Generate a new DoneJS application in the project directory.

Creates the application shell, test pages, build script, LICENSE and
package.json, then runs npm install. An existing package.json is merged:
values you already set are kept.

Examples:
  # Generate an app in the current directory
  donegen app

  # Accept every default and skip npm install
  donegen app --yes --skip-install`,
		args:    cobra.NoArgs,
		project: true,
	}, gcfg, defaultRun)
}

// NewPluginCmd creates the plugin command.
func NewPluginCmd(gcfg *cmdtypes.GlobalConfig) *cobra.Command {
	return newArchetypeCmd(archetypeCmd{
		name: "plugin",
		use:  "plugin",
		long: `Generate a new DoneJS plugin in the project directory.

Examples:
  donegen plugin
  donegen plugin -C ./my-plugin --answers answers.yaml`,
		args:    cobra.NoArgs,
		project: true,
	}, gcfg, defaultRun)
}

// NewGeneratorCmd creates the generator command.
func NewGeneratorCmd(gcfg *cmdtypes.GlobalConfig) *cobra.Command {
	return newArchetypeCmd(archetypeCmd{
		name: "generator",
		use:  "generator",
		long: `Generate a new generator project usable with "donejs add".

The generator's own dependencies are installed with npm --save and
--save-dev instead of being written to package.json up front.`,
		args:    cobra.NoArgs,
		project: true,
	}, gcfg, defaultRun)
}

// NewComponentCmd creates the component command.
func NewComponentCmd(gcfg *cmdtypes.GlobalConfig) *cobra.Command {
	return newArchetypeCmd(archetypeCmd{
		name: "component",
		use:  "component [module-name] [tag]",
		long: `Generate a component inside an existing DoneJS project.

A module name ending in ".component" creates a single-file component;
any other name creates a modlet directory with tests and docs. The
modlet test is added to the project's test.js.

Templates in .donejs/templates/component replace the built-in ones.

Examples:
  donegen component restaurant/list pmo-restaurant-list
  donegen component home.component`,
		args: cobra.MaximumNArgs(2),
	}, gcfg, defaultRun)
}

// NewSupermodelCmd creates the supermodel command.
func NewSupermodelCmd(gcfg *cmdtypes.GlobalConfig) *cobra.Command {
	return newArchetypeCmd(archetypeCmd{
		name: "supermodel",
		use:  "supermodel [name] [url]",
		long: `Generate a connected model and its fixture inside an existing DoneJS project.

Examples:
  donegen supermodel restaurant /api/restaurants`,
		args: cobra.MaximumNArgs(2),
	}, gcfg, defaultRun)
}
