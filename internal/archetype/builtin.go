package archetype

import (
	"path/filepath"
	"strings"

	"github.com/donejs/donegen/internal/manifest"
	"github.com/donejs/donegen/internal/packages"
	"github.com/donejs/donegen/internal/templates"
)

// SingleFileTemplate is the template used for ".component" variants.
const SingleFileTemplate = "component/component.component"

func init() {
	register(Archetype{
		Name:        "app",
		Description: "Generate a new DoneJS application",
		Kind:        manifest.KindApp,
		Templates: []string{
			"app/README.md",
			"app/_gitignore",
			"app/build.js",
			"app/production.html",
			"app/development.html",
			"app/test.html",
			"app/src/app.js",
			"app/src/index.stache",
			"app/src/index.md",
			"app/src/styles.less",
			"app/src/test.js",
			"app/src/is-dev.js",
			"app/src/models/fixtures/fixtures.js",
			"app/src/models/test.js",
		},
		License:     true,
		Destination: rootOrFolder("app", "app/src", nil),
	})

	register(Archetype{
		Name:        "plugin",
		Description: "Generate a new DoneJS plugin",
		Kind:        manifest.KindPlugin,
		Templates: []string{
			"plugin/CONTRIBUTING.md",
			"plugin/README.md",
			"plugin/_gitignore",
			"plugin/test.html",
			"plugin/index.html",
			"plugin/build.js",
			"plugin/src/plugin-test.js",
			"plugin/src/plugin.js",
			"plugin/src/plugin.md",
			"plugin/src/test.js",
		},
		License:     true,
		Destination: rootOrFolder("plugin", "plugin/src", replaceFirst("plugin")),
	})

	register(Archetype{
		Name:        "generator",
		Description: "Generate a new generator project for \"donejs add\"",
		Kind:        manifest.KindGenerator,
		Templates: []string{
			"generator/_gitignore",
			"generator/CONTRIBUTING.md",
			"generator/README.md",
			"generator/default/templates/file.js",
			"generator/default/index.js",
			"generator/test/index.js",
		},
		License:         true,
		Dependencies:    packages.GeneratorDependencies,
		DevDependencies: packages.GeneratorDevDependencies,
		Destination: func(id string, _ Target) string {
			return filepath.FromSlash(templates.Rel("generator", id))
		},
	})

	register(Archetype{
		Name:        "component",
		Description: "Generate a component modlet or single-file component",
		Templates: []string{
			"component/modlet/component.html",
			"component/modlet/component.js",
			"component/modlet/component.md",
			"component/modlet/component.less",
			"component/modlet/component.stache",
			"component/modlet/component-test.js",
			"component/modlet/test.html",
		},
		SingleFile: []string{SingleFileTemplate},
		Destination: func(id string, t Target) string {
			base := filepath.Base(id)
			if id == SingleFileTemplate {
				return filepath.Join(t.Folder, t.Name+".component")
			}
			return filepath.Join(t.Folder, strings.Replace(base, "component", t.Name, 1))
		},
	})

	register(Archetype{
		Name:        "supermodel",
		Description: "Generate a connected model and its fixture",
		Templates: []string{
			"supermodel/model.js",
			"supermodel/fixtures/model.js",
		},
		Destination: func(id string, t Target) string {
			rel := templates.Rel("supermodel", id)
			dir := filepath.Dir(filepath.FromSlash(rel))
			return filepath.Join(t.Folder, "models", dir, t.Name+".js")
		},
	})
}

// LicenseTemplate returns the template ID for an SPDX license identifier.
func LicenseTemplate(license string) string {
	return "license/" + license
}
