package archetype

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/donejs/donegen/internal/errors"
	"github.com/donejs/donegen/internal/templates"
)

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"app", "component", "generator", "plugin", "supermodel"}, Names())
}

func TestGet_Unknown(t *testing.T) {
	_, err := Get("plugn")
	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrNotFound)
	assert.Contains(t, err.Error(), `Did you mean "plugin"?`)
}

func TestSuggest(t *testing.T) {
	assert.Equal(t, "component", Suggest("comp"))
	assert.Equal(t, "supermodel", Suggest("SuperModel"))
	assert.Empty(t, Suggest(""))
	assert.Empty(t, Suggest("xyzzy"))
}

func TestTemplatesExist(t *testing.T) {
	for _, name := range Names() {
		a, err := Get(name)
		require.NoError(t, err)

		for _, id := range append(append([]string{}, a.Templates...), a.SingleFile...) {
			assert.True(t, templates.Exists(id), "%s: missing template %s", name, id)
		}
	}
	assert.True(t, templates.Exists(LicenseTemplate("MIT")))
	assert.True(t, templates.Exists(LicenseTemplate("ISC")))
}

func destinations(a Archetype, ids []string, target Target) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, filepath.ToSlash(a.Destination(id, target)))
	}
	return out
}

func TestDestinations_App(t *testing.T) {
	a, err := Get("app")
	require.NoError(t, err)

	got := destinations(a, a.Templates, Target{Folder: "src", Name: "my-app"})
	assert.Contains(t, got, "README.md")
	assert.Contains(t, got, "_gitignore", "remapping happens in the plan")
	assert.Contains(t, got, "src/app.js")
	assert.Contains(t, got, "src/models/fixtures/fixtures.js")
}

func TestDestinations_Plugin(t *testing.T) {
	a, err := Get("plugin")
	require.NoError(t, err)

	got := destinations(a, a.Templates, Target{Folder: "src", Name: "my-plugin"})
	assert.Contains(t, got, "src/my-plugin.js")
	assert.Contains(t, got, "src/my-plugin-test.js")
	assert.Contains(t, got, "src/my-plugin.md")
	assert.Contains(t, got, "src/test.js")
	assert.Contains(t, got, "build.js")
}

func TestDestinations_Component(t *testing.T) {
	a, err := Get("component")
	require.NoError(t, err)

	target := Target{Folder: "src/restaurant/list", Name: "list"}
	got := destinations(a, a.Templates, target)
	assert.Equal(t, []string{
		"src/restaurant/list/list.html",
		"src/restaurant/list/list.js",
		"src/restaurant/list/list.md",
		"src/restaurant/list/list.less",
		"src/restaurant/list/list.stache",
		"src/restaurant/list/list-test.js",
		"src/restaurant/list/test.html",
	}, got)

	single := destinations(a, a.SingleFile, Target{Folder: "src/restaurant", Name: "list"})
	assert.Equal(t, []string{"src/restaurant/list.component"}, single)
}

func TestDestinations_Supermodel(t *testing.T) {
	a, err := Get("supermodel")
	require.NoError(t, err)

	got := destinations(a, a.Templates, Target{Folder: "src", Name: "restaurant"})
	assert.Equal(t, []string{"src/models/restaurant.js", "src/models/fixtures/restaurant.js"}, got)
}

func TestGenerator_InstallsOwnDependencies(t *testing.T) {
	a, err := Get("generator")
	require.NoError(t, err)

	assert.Equal(t, "^4.13.1", a.Dependencies["lodash"])
	assert.Equal(t, "^2.5.1", a.DevDependencies["mocha"])
}
