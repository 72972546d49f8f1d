package layout

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/donejs/donegen/internal/errors"
)

func TestResolveProjectFolder(t *testing.T) {
	root := t.TempDir()

	t.Run("relative internal path is unchanged", func(t *testing.T) {
		for _, folder := range []string{"src", "lib/app", ".", "a/b/c"} {
			got, err := ResolveProjectFolder(folder, root)
			require.NoError(t, err)
			assert.Equal(t, folder, got)

			again, err := ResolveProjectFolder(got, root)
			require.NoError(t, err)
			assert.Equal(t, got, again, "resolution is idempotent")
		}
	})

	t.Run("absolute path inside root becomes relative", func(t *testing.T) {
		got, err := ResolveProjectFolder(filepath.Join(root, "src", "app"), root)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join("src", "app"), got)
	})

	t.Run("parent traversal fails for any root", func(t *testing.T) {
		for _, r := range []string{root, "/", "/tmp/project"} {
			_, err := ResolveProjectFolder("../x", r)
			require.Error(t, err)
			assert.True(t, errors.Is(err, oerrors.ErrExternalPath))
		}
	})

	t.Run("absolute path outside root fails", func(t *testing.T) {
		_, err := ResolveProjectFolder(filepath.Dir(root), root)
		require.Error(t, err)
		assert.True(t, errors.Is(err, oerrors.ErrExternalPath))
		assert.Contains(t, err.Error(), "is external to the project folder")
	})

	t.Run("embedded traversal fails", func(t *testing.T) {
		_, err := ResolveProjectFolder("src/../../x", root)
		assert.True(t, errors.Is(err, oerrors.ErrExternalPath))
	})
}

func TestResolveComponentPath(t *testing.T) {
	tests := []struct {
		name       string
		module     string
		lib        string
		pkg        string
		wantDir    string
		wantName   string
		wantRoot   string
		wantModule string
		wantIsRoot bool
		wantSingle bool
	}{
		{
			name: "drops redundant package segment", module: "myapp/foo", lib: "src", pkg: "myapp",
			wantDir: "src/foo", wantName: "foo", wantRoot: "../../", wantModule: "~/foo",
		},
		{
			name: "exact package name is a root component", module: "myapp", lib: "src", pkg: "myapp",
			wantDir: "src/myapp", wantName: "myapp", wantRoot: "../../", wantModule: "~/myapp", wantIsRoot: true,
		},
		{
			name: "package name repeated is not a root component", module: "basics/basics", lib: "src", pkg: "basics",
			wantDir: "src/basics", wantName: "basics", wantRoot: "../../", wantModule: "~/basics",
		},
		{
			name: "nested modlet", module: "pages/restaurant/list", lib: "src", pkg: "basics",
			wantDir: "src/pages/restaurant/list", wantName: "list", wantRoot: "../../../../", wantModule: "~/pages/restaurant/list",
		},
		{
			name: "trailing slash and spaces are ignored", module: "basics/foo/ bar/", lib: "src", pkg: "basics",
			wantDir: "src/foo/bar", wantName: "bar", wantRoot: "../../../", wantModule: "~/foo/bar",
		},
		{
			name: "package name inside a folder", module: "components/basics", lib: "src", pkg: "basics",
			wantDir: "src/components/basics", wantName: "basics", wantRoot: "../../../", wantModule: "~/components/basics",
		},
		{
			name: "no lib directory", module: "foo/bar", lib: ".", pkg: "basics",
			wantDir: "foo/bar", wantName: "bar", wantRoot: "../../", wantModule: "~/foo/bar",
		},
		{
			name: "single file variant skips its own directory", module: "home.component", lib: "src", pkg: "basics",
			wantDir: "src", wantName: "home", wantRoot: "../", wantModule: "~/home", wantSingle: true,
		},
		{
			name: "nested single file variant", module: "cart/app-cart.component", lib: "src", pkg: "basics",
			wantDir: "src/cart", wantName: "app-cart", wantRoot: "../../", wantModule: "~/cart/app-cart", wantSingle: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveComponentPath(tt.module, tt.lib, tt.pkg)
			assert.Equal(t, filepath.FromSlash(tt.wantDir), got.Dir)
			assert.Equal(t, tt.wantName, got.Name)
			assert.Equal(t, tt.wantRoot, got.Root)
			assert.Equal(t, tt.wantModule, got.Module)
			assert.Equal(t, tt.wantIsRoot, got.IsRoot)
			assert.Equal(t, tt.wantSingle, got.SingleFile)
		})
	}
}

func TestResolveComponentPath_TestImport(t *testing.T) {
	got := ResolveComponentPath("foo/bar", "src", "basics")
	assert.Equal(t, "~/foo/bar/bar-test", got.TestImport)

	single := ResolveComponentPath("home.component", "src", "basics")
	assert.Empty(t, single.TestImport)
}

func TestRootPrefix(t *testing.T) {
	assert.Equal(t, "../../../", RootPrefix("src/a/b"))
	assert.Equal(t, "../", RootPrefix("src/"))
	assert.Equal(t, "", RootPrefix("."))
	assert.Equal(t, "", RootPrefix(""))
}
