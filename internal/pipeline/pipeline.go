package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/donejs/donegen/internal/archetype"
	oerrors "github.com/donejs/donegen/internal/errors"
	"github.com/donejs/donegen/internal/layout"
	"github.com/donejs/donegen/internal/manifest"
	"github.com/donejs/donegen/internal/naming"
	"github.com/donejs/donegen/internal/npm"
	"github.com/donejs/donegen/internal/output"
	"github.com/donejs/donegen/internal/packages"
	"github.com/donejs/donegen/internal/prompt"
	"github.com/donejs/donegen/internal/templates"
)

// Run executes one generation for opts.Archetype.
//
// Validation failures abort before anything is written. An install failure is
// returned as an *InstallError together with the result; generated files stay.
func Run(ctx context.Context, opts Options, deps Deps) (*Result, error) {
	arch, err := archetype.Get(opts.Archetype)
	if err != nil {
		return nil, err
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Prompter == nil {
		deps.Prompter = prompt.DefaultPrompter{}
	}

	output.Debug("running archetype", "archetype", arch.Name, "root", opts.ProjectRoot)

	switch {
	case arch.Kind != "":
		return runProject(ctx, arch, opts, deps)
	case arch.Name == "component":
		return runComponent(ctx, arch, opts, deps)
	case arch.Name == "supermodel":
		return runModel(ctx, arch, opts, deps)
	default:
		return nil, fmt.Errorf("archetype %q has no generation flow", arch.Name)
	}
}

// ask collects answers for questions, either from defaults or interactively.
func ask(ctx context.Context, opts Options, deps Deps, questions []prompt.Question, seed prompt.Answers) (prompt.Answers, error) {
	if seed == nil {
		seed = prompt.Answers{}
	}
	p := deps.Prompter
	if opts.Yes {
		p = prompt.DefaultPrompter{}
	}
	return prompt.WithPreset(p, opts.Preset).Ask(ctx, questions, seed)
}

func runProject(ctx context.Context, arch archetype.Archetype, opts Options, deps Deps) (*Result, error) {
	root := opts.ProjectRoot
	existing := manifest.Read(filepath.Join(root, ManifestFile))

	facts := projectFacts{
		kind:     arch.Kind,
		root:     root,
		existing: existing,
		cfg:      deps.Config,
		store:    deps.Store,
	}

	if deps.Git != nil {
		user, err := deps.Git.Read(ctx)
		if err != nil {
			output.Warn("could not read git user", "error", err)
		}
		facts.git = user
	}

	if arch.Kind != manifest.KindGenerator {
		if deps.Prober == nil {
			return nil, fmt.Errorf("no npm prober configured")
		}
		v, err := deps.Prober.Probe(ctx)
		if err != nil {
			return nil, fmt.Errorf("detecting npm version: %w", err)
		}
		facts.npm = v
		output.Debug("detected npm", "version", v.String())
	}

	questions := projectQuestions(facts)
	answers, err := ask(ctx, opts, deps, questions, nil)
	if err != nil {
		return nil, err
	}

	storeAnswers(deps.Store, questions, answers)
	if deps.Store != nil {
		if err := deps.Store.Save(); err != nil {
			output.Warn("could not save answers", "path", deps.Store.Path(), "error", err)
		}
	}

	rawName := answers["name"]
	if rawName == "" {
		rawName = existing.String("name")
	}
	name, err := naming.Normalize(rawName)
	if err != nil {
		return nil, err
	}

	folder := answers["folder"]
	if arch.Kind != manifest.KindGenerator {
		folder, err = layout.ResolveProjectFolder(folder, root)
		if err != nil {
			return nil, err
		}
	}

	npmVersion, err := chosenNPM(facts.npm, answers["npmVersion"])
	if err != nil {
		return nil, err
	}

	license, authorEmail := chooseLicense(opts.Yes, answers["authorEmail"])

	repo, _ := existing.Get("repository")
	fresh, err := manifest.Build(manifest.BuildInput{
		Kind:       arch.Kind,
		Name:       name,
		Folder:     folder,
		Answers:    answers,
		Repository: repo,
		NPM:        npmVersion,
		Packages:   deps.Packages,
		License:    license,
	})
	if err != nil {
		return nil, err
	}
	merged := manifest.Merge(fresh, existing)

	data := templates.ProjectData{
		Name:        name,
		Folder:      folder,
		Description: firstNonEmpty(answers["description"], existing.String("description")),
		Homepage:    firstNonEmpty(answers["homepage"], existing.String("homepage")),
		AuthorName:  answers["authorName"],
		AuthorEmail: authorEmail,
		AuthorURL:   answers["authorUrl"],
		AddName:     strings.TrimPrefix(name, "donejs-"),
		License:     license,
		Year:        deps.Now().Year(),
	}

	target := archetype.Target{Folder: folder, Name: name}
	ids := append([]string(nil), arch.Templates...)
	if arch.License {
		ids = append(ids, archetype.LicenseTemplate(license))
	}

	entries := templates.Plan(ids, data, func(id string) string {
		if strings.HasPrefix(id, "license/") {
			return "LICENSE"
		}
		return arch.Destination(id, target)
	})

	files, err := templates.NewRenderer().RenderAll(entries)
	if err != nil {
		return nil, err
	}

	content, err := manifest.Encode(merged)
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", ManifestFile, err)
	}
	files = append(files, templates.File{Destination: ManifestFile, Content: content})

	result := &Result{
		Archetype: arch.Name,
		Root:      root,
		Name:      name,
		Planned:   destinations(files),
		NextSteps: projectNextSteps(arch.Kind, opts.SkipInstall),
	}

	if opts.DryRun {
		diff, err := manifest.Diff(existing, merged, opts.Color)
		if err != nil {
			return nil, err
		}
		result.ManifestDiff = diff
		return result, nil
	}

	written, err := templates.NewWriter(root, opts.Force, ManifestFile).Commit(files)
	if err != nil {
		return nil, err
	}
	result.Files = written

	if opts.SkipInstall {
		return result, nil
	}
	if err := install(ctx, arch, root, deps.Installer); err != nil {
		return result, &InstallError{Err: err}
	}
	result.Installed = true
	return result, nil
}

// install runs npm for a freshly written project.
func install(ctx context.Context, arch archetype.Archetype, root string, installer npm.Installer) error {
	if installer == nil {
		return fmt.Errorf("no npm installer configured")
	}
	if len(arch.Dependencies) == 0 && len(arch.DevDependencies) == 0 {
		return installer.Install(ctx, root, npm.SaveNone)
	}
	if len(arch.Dependencies) > 0 {
		if err := installer.Install(ctx, root, npm.SaveProd, packages.InstallStrings(arch.Dependencies)...); err != nil {
			return err
		}
	}
	if len(arch.DevDependencies) > 0 {
		if err := installer.Install(ctx, root, npm.SaveDev, packages.InstallStrings(arch.DevDependencies)...); err != nil {
			return err
		}
	}
	return nil
}

// chosenNPM applies the npmVersion answer to the probed version.
func chosenNPM(probed npm.Version, answer string) (npm.Version, error) {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return probed, nil
	}
	major, err := strconv.Atoi(answer)
	if err != nil {
		return npm.Version{}, errInvalidMajor(answer)
	}
	if major == probed.Major {
		return probed, nil
	}
	return npm.Version{Major: major}, nil
}

func errInvalidMajor(s string) error {
	return oerrors.NewValidationError(fmt.Sprintf("%q is not an npm major version", s), "npmVersion", "answer with a number such as 6")
}

// chooseLicense picks the license and the contact email it names.
func chooseLicense(yes bool, authorEmail string) (license, email string) {
	if !yes {
		return "MIT", authorEmail
	}
	if authorEmail == "" {
		authorEmail = FallbackLicenseEmail
	}
	return "ISC", authorEmail
}

func projectNextSteps(kind manifest.Kind, skipInstall bool) []string {
	var steps []string
	if skipInstall {
		steps = append(steps, "npm install")
	}
	switch kind {
	case manifest.KindApp:
		steps = append(steps, "donejs develop")
	default:
		steps = append(steps, "npm test")
	}
	return steps
}

func destinations(files []templates.File) []string {
	out := make([]string, 0, len(files))
	for _, f := range files {
		out = append(out, filepath.ToSlash(f.Destination))
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
