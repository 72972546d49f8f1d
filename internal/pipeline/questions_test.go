package pipeline

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donejs/donegen/internal/config"
	"github.com/donejs/donegen/internal/gitconfig"
	"github.com/donejs/donegen/internal/manifest"
	"github.com/donejs/donegen/internal/npm"
	"github.com/donejs/donegen/internal/prompt"
)

func questionKeys(qs []prompt.Question) []string {
	keys := make([]string, 0, len(qs))
	for _, q := range qs {
		keys = append(keys, q.Key)
	}
	return keys
}

func TestProjectQuestions_Kinds(t *testing.T) {
	app := projectQuestions(projectFacts{kind: manifest.KindApp, root: "/tmp/x", npm: npm.Version{Major: 6}})
	assert.Equal(t, []string{
		"name", "folder", "description", "homepage", "githubAccount",
		"authorName", "authorEmail", "authorUrl", "keywords", "npmVersion",
	}, questionKeys(app))

	gen := projectQuestions(projectFacts{kind: manifest.KindGenerator, root: "/tmp/x"})
	assert.NotContains(t, questionKeys(gen), "folder")
	assert.NotContains(t, questionKeys(gen), "npmVersion")
}

func TestProjectQuestions_Defaults(t *testing.T) {
	facts := projectFacts{
		kind: manifest.KindApp,
		root: "/work/shop",
		git:  gitconfig.User{Name: "Git Name", Email: "git@example.com"},
		cfg:  &config.Config{Author: config.AuthorConfig{Email: "cfg@example.com"}, GithubAccount: "acme"},
		npm:  npm.Version{Major: 8},
	}

	answers := prompt.Defaults(projectQuestions(facts), nil)
	assert.Equal(t, "shop", answers["name"])
	assert.Equal(t, "src", answers["folder"])
	assert.Equal(t, "An awesome DoneJS app", answers["description"])
	assert.Equal(t, "acme", answers["githubAccount"])
	assert.Equal(t, "Git Name", answers["authorName"])
	assert.Equal(t, "cfg@example.com", answers["authorEmail"])
	assert.Equal(t, config.DefaultAuthorURL, answers["authorUrl"])
	assert.Equal(t, "8", answers["npmVersion"])

	plugin := facts
	plugin.kind = manifest.KindPlugin
	answers = prompt.Defaults(projectQuestions(plugin), nil)
	assert.Equal(t, "", answers["description"])
	assert.Equal(t, "", answers["authorUrl"])
}

func TestProjectQuestions_StoredAnswersWin(t *testing.T) {
	dir := t.TempDir()
	store, err := config.OpenStore(filepath.Join(dir, "shared.yaml"), filepath.Join(dir, "local.yaml"))
	require.NoError(t, err)
	store.Set("authorName", "Stored Name")

	facts := projectFacts{
		kind:  manifest.KindPlugin,
		root:  "/work/widget",
		git:   gitconfig.User{Name: "Git Name"},
		store: store,
	}
	qs := projectQuestions(facts)
	answers := prompt.Defaults(qs, nil)
	assert.Equal(t, "Stored Name", answers["authorName"])

	answers["authorEmail"] = "new@example.com"
	storeAnswers(store, qs, answers)
	v, ok := store.Get("authorEmail")
	require.True(t, ok)
	assert.Equal(t, "new@example.com", v)
	_, ok = store.Get("folder")
	assert.False(t, ok)
}

func TestComponentQuestions(t *testing.T) {
	args := []string{"pmo/restaurant/list.component/"}
	answers := prompt.Defaults(componentQuestions(args), seedArgs(args, "name", "tag"))
	assert.Equal(t, "pmo/restaurant/list.component/", answers["name"])
	assert.Equal(t, "pmo-restaurant-list", answers["tag"])

	// Without arguments the name is asked, so a non-interactive run has none.
	answers = prompt.Defaults(componentQuestions(nil), prompt.Answers{"name": "pmo/home"})
	assert.Equal(t, "", answers["name"])
	assert.Error(t, componentQuestions(nil)[0].Check(answers["name"]))

	qs := componentQuestions([]string{"a", "b"})
	for _, q := range qs {
		assert.False(t, q.Applicable(prompt.Answers{}), q.Key)
	}
}

func TestModelQuestions(t *testing.T) {
	answers := prompt.Defaults(modelQuestions([]string{"todo"}), prompt.Answers{"name": "todo"})
	assert.Equal(t, "/api/todos", answers["url"])
	assert.Equal(t, "id", answers["idProp"])
}
