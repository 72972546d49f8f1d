package pipeline

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/donejs/donegen/internal/archetype"
	oerrors "github.com/donejs/donegen/internal/errors"
	"github.com/donejs/donegen/internal/layout"
	"github.com/donejs/donegen/internal/manifest"
	"github.com/donejs/donegen/internal/naming"
	"github.com/donejs/donegen/internal/output"
	"github.com/donejs/donegen/internal/prompt"
	"github.com/donejs/donegen/internal/templates"
)

// projectManifest reads the manifest of an existing project. Components and
// models can only be generated inside one.
func projectManifest(root string) (manifest.Object, error) {
	path := filepath.Join(root, ManifestFile)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, oerrors.NewComponentResolutionError(root)
		}
		return nil, oerrors.Wrap(err, "reading "+path)
	}
	return manifest.Read(path), nil
}

// libFolder returns steal.directories.lib, or the project root.
func libFolder(m manifest.Object) string {
	if v, ok := m.Lookup("steal", "directories", "lib"); ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	return layout.DefaultLibFolder
}

// componentModuleName strips the trailing slash and single-file marker from a module name.
func componentModuleName(name string) string {
	name = strings.TrimSuffix(name, "/")
	return strings.Replace(name, layout.SingleFileSuffix, "", 1)
}

func seedArgs(args []string, keys ...string) prompt.Answers {
	seed := prompt.Answers{}
	for i, k := range keys {
		if i < len(args) {
			seed[k] = args[i]
		}
	}
	return seed
}

func runComponent(ctx context.Context, arch archetype.Archetype, opts Options, deps Deps) (*Result, error) {
	root := opts.ProjectRoot
	pkg, err := projectManifest(root)
	if err != nil {
		return nil, err
	}

	answers, err := ask(ctx, opts, deps, componentQuestions(opts.Args), seedArgs(opts.Args, "name", "tag"))
	if err != nil {
		return nil, err
	}
	if err := naming.ValidateRequired(answers["name"]); err != nil {
		return nil, oerrors.NewValidationError("component name is required", "name", "pass it as the first argument")
	}
	if err := naming.ValidateTagName(answers["tag"]); err != nil {
		return nil, oerrors.NewValidationError(err.Error(), "tag", "custom element names are lowercase and contain a dash")
	}

	appName := pkg.String("name")
	lib := libFolder(pkg)
	cp := layout.ResolveComponentPath(answers["name"], lib, appName)
	output.Debug("resolved component", "module", cp.Module, "dir", cp.Dir, "singleFile", cp.SingleFile)

	camel := naming.CamelCase(answers["tag"])
	data := templates.ComponentData{
		Root:      cp.Root,
		Path:      filepath.ToSlash(cp.Dir),
		Tag:       answers["tag"],
		CamelCase: camel,
		TagCase:   naming.UpperFirst(camel),
		Name:      cp.Name,
		App:       appName,
		Module:    cp.Module,
	}

	ids := arch.Templates
	if cp.SingleFile {
		ids = arch.SingleFile
	}
	target := archetype.Target{Folder: cp.Dir, Name: cp.Name}
	entries := templates.Plan(ids, data, func(id string) string { return arch.Destination(id, target) })

	var rendererOpts []templates.RendererOption
	overrides := filepath.Join(root, OverrideDir, "component")
	if info, err := os.Stat(overrides); err == nil && info.IsDir() {
		output.Debug("using component template overrides", "dir", overrides)
		rendererOpts = append(rendererOpts, templates.WithOverride("component", os.DirFS(overrides)))
	}

	files, err := templates.NewRenderer(rendererOpts...).RenderAll(entries)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Archetype: arch.Name,
		Root:      root,
		Name:      cp.Name,
		Planned:   destinations(files),
		NextSteps: []string{"donejs develop"},
	}
	if opts.DryRun {
		return result, nil
	}

	written, err := templates.NewWriter(root, opts.Force).Commit(files)
	if err != nil {
		return nil, err
	}
	result.Files = written

	if !cp.SingleFile {
		testFile := filepath.Join(lib, "test.js")
		changed, err := templates.AppendImport(filepath.Join(root, testFile), cp.TestImport)
		if err != nil {
			return result, err
		}
		if changed {
			result.Files[filepath.ToSlash(testFile)] = output.StatusUpdated
		}
	}

	return result, nil
}

func runModel(ctx context.Context, arch archetype.Archetype, opts Options, deps Deps) (*Result, error) {
	root := opts.ProjectRoot
	pkg, err := projectManifest(root)
	if err != nil {
		return nil, err
	}

	answers, err := ask(ctx, opts, deps, modelQuestions(opts.Args), seedArgs(opts.Args, "name", "url"))
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(answers["name"])
	if err := naming.ValidateRequired(name); err != nil {
		return nil, oerrors.NewValidationError("model name is required", "name", "pass it as the first argument")
	}

	data := templates.ModelData{
		Name:      name,
		ClassName: naming.UpperFirst(naming.CamelCase(name)),
		URL:       answers["url"],
		IDProp:    firstNonEmpty(answers["idProp"], "id"),
	}

	target := archetype.Target{Folder: libFolder(pkg), Name: name}
	entries := templates.Plan(arch.Templates, data, func(id string) string { return arch.Destination(id, target) })

	files, err := templates.NewRenderer().RenderAll(entries)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Archetype: arch.Name,
		Root:      root,
		Name:      name,
		Planned:   destinations(files),
	}
	if opts.DryRun {
		return result, nil
	}

	written, err := templates.NewWriter(root, opts.Force).Commit(files)
	if err != nil {
		return nil, err
	}
	result.Files = written
	return result, nil
}
