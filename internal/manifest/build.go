package manifest

import (
	"fmt"
	"sort"
	"strings"

	oerrors "github.com/donejs/donegen/internal/errors"
	"github.com/donejs/donegen/internal/npm"
	"github.com/donejs/donegen/internal/packages"
)

// Kind selects the field table used to build a manifest.
type Kind string

const (
	KindApp       Kind = "app"
	KindPlugin    Kind = "plugin"
	KindGenerator Kind = "generator"
)

// DefaultGithubAccount is used in synthesized repository URLs when no account was given.
const DefaultGithubAccount = "donejs-user"

// LegacyNPMAlgorithm is written to steal.npmAlgorithm for npm releases before 3.
const LegacyNPMAlgorithm = "nested"

// repositoryFormats holds the URL pattern per kind, filled with account and name.
// Kinds without an entry get no synthesized repository.
var repositoryFormats = map[Kind]string{
	KindApp:    "git+https://github.com/%s/%s.git",
	KindPlugin: "git://github.com/%s/%s.git",
}

// BuildInput is everything Build needs to compute a manifest.
type BuildInput struct {
	Kind Kind

	// Name is the normalized package name.
	Name string

	// Folder is the project main folder.
	Folder string

	// Answers holds the collected prompt answers (description, homepage,
	// githubAccount, authorName, authorEmail, authorUrl, keywords, repository).
	Answers map[string]string

	// Repository is an explicit repository descriptor, usually the existing
	// manifest's. It wins over the repository answer and the synthesized URL.
	Repository any

	// NPM is the installed npm version.
	NPM npm.Version

	// Packages is the dependency table. Required.
	Packages *packages.Table

	// License is the SPDX identifier, omitted when empty.
	License string
}

// Build computes the manifest fields for a freshly generated project.
func Build(in BuildInput) (Object, error) {
	if in.Packages == nil {
		return nil, fmt.Errorf("building %s manifest: No DoneJS dependency package list provided: %w",
			in.Kind, oerrors.ErrMissingPackageList)
	}

	switch in.Kind {
	case KindApp:
		return buildApp(in), nil
	case KindPlugin:
		return buildPlugin(in), nil
	case KindGenerator:
		return buildGenerator(in), nil
	default:
		return nil, fmt.Errorf("building manifest: unknown kind %q", in.Kind)
	}
}

func buildApp(in BuildInput) Object {
	main := in.Name + "/index.stache!done-autorender"

	steal := Object{
		{"main", main},
		{"directories", Object{{"lib", in.Folder}}},
		{"configDependencies", []any{
			"live-reload",
			"node_modules/can-zone/register",
			"node_modules/steal-conditional/conditional",
		}},
		{"plugins", []any{"done-css", "done-component", "steal-less", "steal-stache"}},
		{"envs", Object{
			{"server-production", Object{{"renderingBaseURL", "/dist"}}},
		}},
		{"serviceBaseURL", ""},
	}
	if in.NPM.Legacy() {
		steal.Set("npmAlgorithm", LegacyNPMAlgorithm)
	}

	obj := header(in)
	obj.Set("private", true)
	obj.Set("scripts", Object{
		{"test", "testee test.html --browsers firefox --reporter Spec"},
		{"start", "done-serve --port 8080"},
		{"develop", "done-serve --develop --port 8080"},
		{"build", "node build"},
	})
	obj.Set("main", main)
	obj.Set("files", []any{in.Folder})
	obj.Set("keywords", toAny(Keywords(in.Kind, in.Answers["keywords"])))
	obj.Set("steal", steal)
	setLicense(&obj, in.License)
	obj.Set("dependencies", sortedDeps(in.Packages.Dependencies))
	obj.Set("devDependencies", sortedDeps(in.Packages.DevDependencies))
	return obj
}

func buildPlugin(in BuildInput) Object {
	hasFolder := in.Folder != "" && in.Folder != "."

	jshintFolder := ""
	if hasFolder {
		jshintFolder = " ./" + in.Folder + "/"
	}

	steal := Object{
		{"main", in.Name},
		{"configDependencies", []any{"live-reload"}},
		{"npmIgnore", []any{"testee", "generator-donejs", "donejs-cli", "steal-tools"}},
		{"plugins", []any{"steal-less", "steal-stache"}},
	}
	if hasFolder {
		steal.Set("directories", Object{{"lib", in.Folder}})
	}
	if in.NPM.Legacy() {
		steal.Set("npmAlgorithm", LegacyNPMAlgorithm)
	}

	obj := header(in)
	obj.Set("scripts", Object{
		{"preversion", "npm test && npm run build"},
		{"version", `git commit -am "Update version number" && git checkout -b release && git add -f dist/`},
		{"postpublish", "git push --tags && git checkout master && git branch -D release && git push"},
		{"testee", "testee test.html --browsers firefox"},
		{"test", "npm run jshint && npm run testee"},
		{"jshint", "jshint ./*.js" + jshintFolder + " --config"},
		{"release:patch", "npm version patch && npm publish"},
		{"release:minor", "npm version minor && npm publish"},
		{"release:major", "npm version major && npm publish"},
		{"build", "node build.js"},
		{"develop", "done-serve --static --develop --port 8080"},
	})
	obj.Set("main", "dist/cjs/"+in.Name)
	obj.Set("browser", Object{{"transform", []any{"cssify"}}})
	obj.Set("browserify", Object{{"transform", []any{"cssify"}}})
	obj.Set("keywords", toAny(Keywords(in.Kind, in.Answers["keywords"])))
	obj.Set("steal", steal)
	setLicense(&obj, in.License)

	deps := in.Packages.Pick("can-component", "can-define", "can-stache", "can-view-autorender", "steal-less", "steal-stache")
	deps["cssify"] = "^0.6.0"
	devDeps := in.Packages.Pick("steal", "steal-qunit", "steal-tools", "testee", "generator-donejs", "donejs-cli", "done-serve")
	devDeps["jshint"] = "^2.9.1"

	obj.Set("dependencies", sortedDeps(deps))
	obj.Set("devDependencies", sortedDeps(devDeps))
	return obj
}

func buildGenerator(in BuildInput) Object {
	obj := header(in)
	obj.Set("main", "lib/")
	obj.Set("scripts", Object{
		{"test", "npm run jshint && npm run mocha"},
		{"jshint", "jshint test/. default/index.js --config"},
		{"mocha", "mocha test/ --timeout 120000"},
		{"publish", "git push origin --tags && git push origin"},
		{"release:patch", "npm version patch && npm publish"},
		{"release:minor", "npm version minor && npm publish"},
		{"release:major", "npm version major && npm publish"},
	})
	obj.Set("keywords", toAny(Keywords(in.Kind, in.Answers["keywords"])))
	setLicense(&obj, in.License)
	return obj
}

// header returns the identity fields shared by every kind.
func header(in BuildInput) Object {
	obj := Object{
		{"name", in.Name},
		{"version", "0.0.0"},
		{"description", in.Answers["description"]},
		{"homepage", in.Answers["homepage"]},
	}
	if repo := Repository(in); repo != nil {
		obj.Set("repository", repo)
	}
	obj.Set("author", Object{
		{"name", in.Answers["authorName"]},
		{"email", in.Answers["authorEmail"]},
		{"url", in.Answers["authorUrl"]},
	})
	return obj
}

// Repository returns the repository descriptor for in: the explicit
// descriptor, then the repository answer, then a URL synthesized from the
// github account. It returns nil when the kind has no URL format.
func Repository(in BuildInput) any {
	if in.Repository != nil {
		return in.Repository
	}
	if url := strings.TrimSpace(in.Answers["repository"]); url != "" {
		return Object{{"type", "git"}, {"url", url}}
	}

	format, ok := repositoryFormats[in.Kind]
	if !ok {
		return nil
	}
	account := strings.TrimSpace(in.Answers["githubAccount"])
	if account == "" {
		account = DefaultGithubAccount
	}
	return Object{{"type", "git"}, {"url", fmt.Sprintf(format, account, in.Name)}}
}

// Keywords returns ["donejs", "donejs-<kind>"] followed by the comma
// separated extra keywords, trimmed and without duplicates.
func Keywords(kind Kind, extra string) []string {
	keywords := []string{"donejs", "donejs-" + string(kind)}
	seen := map[string]bool{keywords[0]: true, keywords[1]: true}

	for _, k := range strings.Split(extra, ",") {
		k = strings.TrimSpace(k)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		keywords = append(keywords, k)
	}
	return keywords
}

func setLicense(obj *Object, license string) {
	if license != "" {
		obj.Set("license", license)
	}
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}

// sortedDeps converts a dependency map to an Object sorted by package name, as npm writes them.
func sortedDeps(deps map[string]string) Object {
	names := make([]string, 0, len(deps))
	for name := range deps {
		names = append(names, name)
	}
	sort.Strings(names)

	obj := make(Object, 0, len(names))
	for _, name := range names {
		obj = append(obj, Member{Key: name, Value: deps[name]})
	}
	return obj
}
