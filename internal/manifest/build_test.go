package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/donejs/donegen/internal/errors"
	"github.com/donejs/donegen/internal/npm"
	"github.com/donejs/donegen/internal/packages"
)

func testTable() *packages.Table {
	return &packages.Table{
		Dependencies: map[string]string{
			"can-component": "^4.4.0",
			"can-define":    "^2.7.0",
			"steal-stache":  "^4.1.0",
		},
		DevDependencies: map[string]string{
			"steal-tools": "^2.0.0",
			"testee":      "^0.9.0",
		},
	}
}

func appInput() BuildInput {
	return BuildInput{
		Kind:   KindApp,
		Name:   "my-app",
		Folder: "src",
		Answers: map[string]string{
			"description": "An awesome DoneJS app",
			"authorName":  "Jane",
		},
		NPM:      npm.Version{Major: 10},
		Packages: testTable(),
		License:  "MIT",
	}
}

func TestBuild_MissingPackageList(t *testing.T) {
	in := appInput()
	in.Packages = nil

	_, err := Build(in)
	assert.ErrorIs(t, err, oerrors.ErrMissingPackageList)
}

func TestBuild_UnknownKind(t *testing.T) {
	in := appInput()
	in.Kind = "library"

	_, err := Build(in)
	assert.Error(t, err)
}

func TestBuild_LegacyFlag(t *testing.T) {
	for _, kind := range []Kind{KindApp, KindPlugin} {
		t.Run(string(kind), func(t *testing.T) {
			in := appInput()
			in.Kind = kind

			in.NPM = npm.Version{Major: 3}
			obj, err := Build(in)
			require.NoError(t, err)
			_, ok := obj.Lookup("steal", "npmAlgorithm")
			assert.False(t, ok, "npm >= 3 omits the field")

			in.NPM = npm.Version{Major: 2, Minor: 15}
			obj, err = Build(in)
			require.NoError(t, err)
			v, ok := obj.Lookup("steal", "npmAlgorithm")
			assert.True(t, ok)
			assert.Equal(t, LegacyNPMAlgorithm, v)
		})
	}
}

func TestBuild_App(t *testing.T) {
	obj, err := Build(appInput())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"name", "version", "description", "homepage", "repository", "author", "private",
		"scripts", "main", "files", "keywords", "steal", "license", "dependencies", "devDependencies",
	}, obj.Keys())

	assert.Equal(t, "my-app/index.stache!done-autorender", obj.String("main"))

	url, _ := obj.Lookup("repository", "url")
	assert.Equal(t, "git+https://github.com/donejs-user/my-app.git", url)

	lib, _ := obj.Lookup("steal", "directories", "lib")
	assert.Equal(t, "src", lib)

	deps, _ := obj.Get("dependencies")
	assert.Equal(t, []string{"can-component", "can-define", "steal-stache"}, deps.(Object).Keys(), "app copies the whole table")
	devDeps, _ := obj.Get("devDependencies")
	assert.Equal(t, []string{"steal-tools", "testee"}, devDeps.(Object).Keys())
}

func TestBuild_Plugin(t *testing.T) {
	in := appInput()
	in.Kind = KindPlugin
	in.Name = "my-plugin"
	in.Answers["githubAccount"] = "bitovi"

	obj, err := Build(in)
	require.NoError(t, err)

	url, _ := obj.Lookup("repository", "url")
	assert.Equal(t, "git://github.com/bitovi/my-plugin.git", url)
	assert.Equal(t, "dist/cjs/my-plugin", obj.String("main"))

	jshint, _ := obj.Lookup("scripts", "jshint")
	assert.Equal(t, "jshint ./*.js ./src/ --config", jshint)

	deps, _ := obj.Get("dependencies")
	assert.Equal(t, Object{
		{"can-component", "^4.4.0"},
		{"can-define", "^2.7.0"},
		{"cssify", "^0.6.0"},
		{"steal-stache", "^4.1.0"},
	}, deps, "names missing from the table are omitted")

	devDeps, _ := obj.Get("devDependencies")
	assert.Equal(t, Object{
		{"jshint", "^2.9.1"},
		{"steal-tools", "^2.0.0"},
		{"testee", "^0.9.0"},
	}, devDeps)
}

func TestBuild_PluginRootFolder(t *testing.T) {
	in := appInput()
	in.Kind = KindPlugin
	in.Folder = "."

	obj, err := Build(in)
	require.NoError(t, err)

	jshint, _ := obj.Lookup("scripts", "jshint")
	assert.Equal(t, "jshint ./*.js --config", jshint)

	_, ok := obj.Lookup("steal", "directories")
	assert.False(t, ok)
}

func TestBuild_Generator(t *testing.T) {
	in := appInput()
	in.Kind = KindGenerator
	in.Name = "donejs-thing"

	obj, err := Build(in)
	require.NoError(t, err)

	assert.False(t, obj.Has("repository"), "generators get no synthesized repository")
	assert.False(t, obj.Has("dependencies"))
	assert.Equal(t, "lib/", obj.String("main"))

	keywords, _ := obj.Get("keywords")
	assert.Equal(t, []any{"donejs", "donejs-generator"}, keywords)
}

func TestRepository(t *testing.T) {
	explicit := Object{{"type", "git"}, {"url", "https://example.com/repo.git"}}

	tests := []struct {
		name string
		in   BuildInput
		want any
	}{
		{
			name: "explicit descriptor wins",
			in:   BuildInput{Kind: KindApp, Name: "x", Repository: explicit, Answers: map[string]string{"githubAccount": "me"}},
			want: explicit,
		},
		{
			name: "repository answer",
			in:   BuildInput{Kind: KindApp, Name: "x", Answers: map[string]string{"repository": "git@host:x.git"}},
			want: Object{{"type", "git"}, {"url", "git@host:x.git"}},
		},
		{
			name: "account answer",
			in:   BuildInput{Kind: KindApp, Name: "x", Answers: map[string]string{"githubAccount": "me"}},
			want: Object{{"type", "git"}, {"url", "git+https://github.com/me/x.git"}},
		},
		{
			name: "placeholder account",
			in:   BuildInput{Kind: KindPlugin, Name: "x", Answers: map[string]string{"githubAccount": "  "}},
			want: Object{{"type", "git"}, {"url", "git://github.com/donejs-user/x.git"}},
		},
		{
			name: "no format",
			in:   BuildInput{Kind: KindGenerator, Name: "x", Answers: map[string]string{}},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Repository(tt.in))
		})
	}
}

func TestKeywords(t *testing.T) {
	assert.Equal(t, []string{"donejs", "donejs-app"}, Keywords(KindApp, ""))
	assert.Equal(t,
		[]string{"donejs", "donejs-plugin", "canjs", "widgets"},
		Keywords(KindPlugin, " canjs, widgets ,canjs,,donejs"))
}
