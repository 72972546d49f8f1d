package pipeline

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/donejs/donegen/internal/config"
	"github.com/donejs/donegen/internal/gitconfig"
	"github.com/donejs/donegen/internal/manifest"
	"github.com/donejs/donegen/internal/naming"
	"github.com/donejs/donegen/internal/npm"
	"github.com/donejs/donegen/internal/prompt"
)

// projectFacts are the inputs project questions derive defaults and visibility from.
type projectFacts struct {
	kind     manifest.Kind
	root     string
	existing manifest.Object
	git      gitconfig.User
	cfg      *config.Config
	store    *config.Store
	npm      npm.Version
}

// missing returns a predicate true while the existing manifest lacks key.
func (f projectFacts) missing(key string) func(prompt.Answers) bool {
	return func(prompt.Answers) bool { return !f.existing.Has(key) }
}

// remembered prefers a stored answer over fallbacks, then the first non-empty fallback.
func (f projectFacts) remembered(key string, fallbacks ...string) func(prompt.Answers) string {
	return func(prompt.Answers) string {
		if f.store != nil {
			if v, ok := f.store.Get(key); ok && v != "" {
				return v
			}
		}
		for _, v := range fallbacks {
			if v != "" {
				return v
			}
		}
		return ""
	}
}

// projectQuestions returns the questions for the app, plugin and generator archetypes.
func projectQuestions(f projectFacts) []prompt.Question {
	cfg := f.cfg
	if cfg == nil {
		cfg = &config.Config{}
	}

	description := ""
	if f.kind == manifest.KindApp {
		description = "An awesome DoneJS app"
	}

	authorURL := cfg.Author.URL
	if f.kind == manifest.KindApp && authorURL == "" {
		authorURL = config.DefaultAuthorURL
	}

	questions := []prompt.Question{
		{
			Key:     "name",
			Message: "Project name",
			When:    f.missing("name"),
			Default: prompt.Static(filepath.Base(f.root)),
		},
	}

	if f.kind != manifest.KindGenerator {
		questions = append(questions, prompt.Question{
			Key:     "folder",
			Message: "Project main folder",
			Default: prompt.Static("src"),
		})
	}

	questions = append(questions,
		prompt.Question{Key: "description", Message: "Description", When: f.missing("description"), Default: prompt.Static(description)},
		prompt.Question{Key: "homepage", Message: "Project homepage url", When: f.missing("homepage")},
		prompt.Question{Key: "githubAccount", Message: "GitHub username or organization", When: f.missing("repository"), Default: prompt.Static(cfg.GithubAccount)},
		prompt.Question{Key: "authorName", Message: "Author's Name", When: f.missing("author"), Default: f.remembered("authorName", cfg.Author.Name, f.git.Name), Store: true},
		prompt.Question{Key: "authorEmail", Message: "Author's Email", When: f.missing("author"), Default: f.remembered("authorEmail", cfg.Author.Email, f.git.Email), Store: true},
		prompt.Question{Key: "authorUrl", Message: "Author's Homepage", When: f.missing("author"), Default: f.remembered("authorUrl", authorURL), Store: true},
		prompt.Question{Key: "keywords", Message: "Application keywords", When: f.missing("keywords")},
	)

	if f.kind != manifest.KindGenerator {
		questions = append(questions, prompt.Question{
			Key:      "npmVersion",
			Message:  "NPM version used",
			Default:  prompt.Static(strconv.Itoa(f.npm.Major)),
			Validate: validateMajor,
		})
	}

	return questions
}

func validateMajor(s string) error {
	if _, err := strconv.Atoi(strings.TrimSpace(s)); err != nil {
		return errInvalidMajor(s)
	}
	return nil
}

// componentQuestions asks for the module name and tag unless given as arguments.
func componentQuestions(args []string) []prompt.Question {
	return []prompt.Question{
		{
			Key:      "name",
			Message:  "What is the module name of your component (e.g. pmo/home or pmo/home.component)?",
			When:     func(prompt.Answers) bool { return len(args) < 1 },
			Validate: naming.ValidateRequired,
		},
		{
			Key:      "tag",
			Message:  "The tag name of the component",
			When:     func(prompt.Answers) bool { return len(args) < 2 },
			Default:  func(a prompt.Answers) string { return naming.KebabCase(componentModuleName(a["name"])) },
			Validate: naming.ValidateTagName,
		},
	}
}

// modelQuestions asks for the model name, url and id property.
func modelQuestions(args []string) []prompt.Question {
	return []prompt.Question{
		{
			Key:      "name",
			Message:  "What is the name of the model?",
			When:     func(prompt.Answers) bool { return len(args) < 1 },
			Validate: naming.ValidateRequired,
		},
		{
			Key:      "url",
			Message:  "What is the URL endpoint?",
			When:     func(prompt.Answers) bool { return len(args) < 2 },
			Default:  func(a prompt.Answers) string { return "/api/" + a["name"] + "s" },
			Validate: naming.ValidateRequired,
		},
		{
			Key:     "idProp",
			Message: "What is the property name of the id?",
			Default: prompt.Static("id"),
		},
	}
}

// storeAnswers remembers answers of Store questions.
func storeAnswers(store *config.Store, questions []prompt.Question, answers prompt.Answers) {
	if store == nil {
		return
	}
	for _, q := range questions {
		if !q.Store {
			continue
		}
		if v, ok := answers[q.Key]; ok && v != "" {
			store.Set(q.Key, v)
		}
	}
}
