// Package archetype describes the kinds of things donegen generates.
package archetype

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"

	oerrors "github.com/donejs/donegen/internal/errors"
	"github.com/donejs/donegen/internal/manifest"
	"github.com/donejs/donegen/internal/templates"
)

// Target is where an archetype's files go.
type Target struct {
	// Folder is the directory source files are placed in, relative to the project root.
	Folder string

	// Name is the generated thing's short name.
	Name string
}

// Archetype is a fixed template list plus the rules for placing it.
type Archetype struct {
	// Name is the command name (e.g., "app").
	Name string

	// Description is shown in help output.
	Description string

	// Kind selects the manifest field table. Empty when no manifest is written.
	Kind manifest.Kind

	// Templates are the template IDs emitted, in order.
	Templates []string

	// SingleFile replaces Templates for single-file variants (component only).
	SingleFile []string

	// License emits a LICENSE file and manifest license field.
	License bool

	// Dependencies and DevDependencies are installed with npm after
	// generation instead of being written to the manifest.
	Dependencies    map[string]string
	DevDependencies map[string]string

	// Destination maps a template ID to its path relative to the project root.
	Destination func(id string, t Target) string
}

// rootOrFolder places templates under srcPrefix into the target folder and the
// rest at the project root.
func rootOrFolder(prefix, srcPrefix string, rename func(base string, t Target) string) func(string, Target) string {
	return func(id string, t Target) string {
		if strings.HasPrefix(id, srcPrefix+"/") {
			rel := templates.Rel(srcPrefix, id)
			if rename != nil {
				rel = filepath.Join(filepath.Dir(rel), rename(filepath.Base(rel), t))
			}
			return filepath.Join(t.Folder, rel)
		}
		return filepath.FromSlash(templates.Rel(prefix, id))
	}
}

// replaceFirst swaps the first occurrence of placeholder in a file name for the target name.
func replaceFirst(placeholder string) func(string, Target) string {
	return func(base string, t Target) string {
		return strings.Replace(base, placeholder, t.Name, 1)
	}
}

var registry = map[string]Archetype{}

func register(a Archetype) {
	registry[a.Name] = a
}

// Get returns the archetype called name. Unknown names fail with a
// suggestion of the closest known archetype.
func Get(name string) (Archetype, error) {
	if a, ok := registry[name]; ok {
		return a, nil
	}

	hint := "Available archetypes: " + strings.Join(Names(), ", ")
	if s := Suggest(name); s != "" {
		hint = fmt.Sprintf("Did you mean %q? %s", s, hint)
	}
	return Archetype{}, oerrors.NewNotFoundError(fmt.Sprintf("unknown archetype %q", name), "", hint)
}

// Names returns the registered archetype names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Suggest returns the registered name that best matches input, or "".
func Suggest(input string) string {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return ""
	}

	matches := fuzzy.Find(input, Names())
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Str
}
