package cmd

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donejs/donegen/internal/cmdtypes"
	oerrors "github.com/donejs/donegen/internal/errors"
	"github.com/donejs/donegen/internal/npm"
	"github.com/donejs/donegen/internal/output"
	"github.com/donejs/donegen/internal/pipeline"
	"github.com/donejs/donegen/internal/prompt"
)

func TestNewRootCmd(t *testing.T) {
	root := NewRootCmd()

	assert.Equal(t, "donegen", root.Use)
	assert.True(t, root.SilenceUsage)
	assert.True(t, root.SilenceErrors)

	for _, name := range []string{"config", "verbose", "timestamps"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(name), name)
	}

	names := []string{}
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"app", "plugin", "generator", "component", "supermodel", "config", "version"}, names)
}

func TestArchetypeCommandFlags(t *testing.T) {
	gcfg := &cmdtypes.GlobalConfig{}

	app := NewAppCmd(gcfg)
	assert.NotNil(t, app.Flags().Lookup("skip-install"))
	assert.NotNil(t, app.Flags().Lookup("packages"))
	assert.NotEmpty(t, app.Short)

	component := NewComponentCmd(gcfg)
	assert.Nil(t, component.Flags().Lookup("skip-install"))
	assert.NotNil(t, component.Flags().Lookup("dry-run"))
	assert.Error(t, component.Args(component, []string{"a", "b", "c"}))
	assert.NoError(t, component.Args(component, []string{"a"}))
}

// recordingRun captures the options a command builds.
type recordingRun struct {
	opts   pipeline.Options
	deps   pipeline.Deps
	result *pipeline.Result
	err    error
}

func (r *recordingRun) run(_ *cobra.Command, opts pipeline.Options, deps pipeline.Deps) (*pipeline.Result, error) {
	r.opts = opts
	r.deps = deps
	return r.result, r.err
}

func executeArchetype(t *testing.T, spec archetypeCmd, rec *recordingRun, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("DONEGEN_PACKAGES", "")

	c := newArchetypeCmd(spec, &cmdtypes.GlobalConfig{}, rec.run)
	var out, errOut bytes.Buffer
	c.SetOut(&out)
	c.SetErr(&errOut)
	c.SetArgs(args)
	err := c.Execute()
	return out.String(), errOut.String(), err
}

func TestArchetypeCmd_PassesOptions(t *testing.T) {
	dir := t.TempDir()
	rec := &recordingRun{result: &pipeline.Result{
		Archetype: "component",
		Root:      dir,
		Name:      "list",
		Files:     map[string]string{"src/list/list.js": output.StatusCreated},
	}}

	out, _, err := executeArchetype(t, archetypeCmd{name: "component", use: "component", args: cobra.MaximumNArgs(2)}, rec,
		"restaurant/list", "pmo-list", "-C", dir, "--yes", "--force")
	require.NoError(t, err)

	assert.Equal(t, "component", rec.opts.Archetype)
	assert.Equal(t, dir, rec.opts.ProjectRoot)
	assert.Equal(t, []string{"restaurant/list", "pmo-list"}, rec.opts.Args)
	assert.True(t, rec.opts.Yes)
	assert.True(t, rec.opts.Force)
	assert.False(t, rec.opts.DryRun)
	assert.IsType(t, prompt.DefaultPrompter{}, rec.deps.Prompter)
	assert.NotNil(t, rec.deps.Packages)
	assert.Contains(t, out, `Generated component "list"`)
}

func TestArchetypeCmd_DryRunSkipsStore(t *testing.T) {
	rec := &recordingRun{result: &pipeline.Result{Archetype: "app", Name: "shop", Planned: []string{"package.json"}}}

	out, _, err := executeArchetype(t, archetypeCmd{name: "app", use: "app", args: cobra.NoArgs, project: true}, rec,
		"-C", t.TempDir(), "--dry-run", "--skip-install", "--yes")
	require.NoError(t, err)

	assert.True(t, rec.opts.DryRun)
	assert.True(t, rec.opts.SkipInstall)
	assert.Nil(t, rec.deps.Store)
	assert.Contains(t, out, "Would generate")
}

func TestArchetypeCmd_ErrorExitCode(t *testing.T) {
	rec := &recordingRun{err: oerrors.NewExternalPathError("../x")}

	_, errOut, err := executeArchetype(t, archetypeCmd{name: "app", use: "app", args: cobra.NoArgs, project: true}, rec,
		"-C", t.TempDir(), "--yes")
	require.Error(t, err)

	var exitErr *cmdtypes.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, cmdtypes.ExitValidationError, exitErr.Code)
	assert.True(t, exitErr.Printed)
	assert.Contains(t, errOut, "invalid folder")
}

func TestArchetypeCmd_BadPackagesFile(t *testing.T) {
	rec := &recordingRun{}

	_, _, err := executeArchetype(t, archetypeCmd{name: "app", use: "app", args: cobra.NoArgs, project: true}, rec,
		"-C", t.TempDir(), "--packages", "/does/not/exist.json")
	require.Error(t, err)
	assert.Equal(t, cmdtypes.ExitGeneralError, oerrors.ExitCodeFromError(err))
	assert.Empty(t, rec.opts.Archetype)
}

type errProber struct{}

func (errProber) Probe(context.Context) (npm.Version, error) {
	return npm.Version{}, errors.New("npm not found")
}

func TestNpmTool(t *testing.T) {
	tool := npmTool(context.Background(), npm.StaticProber{Major: 6, Minor: 14, Patch: 4})
	assert.True(t, tool.Found)
	assert.Equal(t, "6.14.4", tool.Version)

	tool = npmTool(context.Background(), errProber{})
	assert.False(t, tool.Found)
	assert.Equal(t, "npm not found", tool.Message)
}

func TestNewVersionCmd(t *testing.T) {
	c := NewVersionCmd(nil)

	assert.Equal(t, "version", c.Use)
	assert.NotEmpty(t, c.Short)
	assert.NotEmpty(t, c.Long)
}
