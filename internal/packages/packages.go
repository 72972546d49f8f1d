// Package packages provides the dependency table generated manifests pick
// their dependency ranges from.
package packages

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

//go:embed donejs.json
var defaultTable []byte

// Table is the list of packages available to generated projects.
type Table struct {
	// Dependencies maps package name to version range.
	Dependencies map[string]string `json:"dependencies"`

	// DevDependencies maps package name to version range.
	DevDependencies map[string]string `json:"devDependencies"`
}

// Default returns the built-in DoneJS package table.
func Default() (*Table, error) {
	return Parse(defaultTable)
}

// Load reads a package table from a JSON file. A file with a top-level
// "donejs" key (a donejs-cli package.json) is accepted as well.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading package table %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a package table.
func Parse(data []byte) (*Table, error) {
	var wrapped struct {
		DoneJS *Table `json:"donejs"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return nil, fmt.Errorf("parsing package table: %w", err)
	}
	if wrapped.DoneJS != nil {
		return wrapped.DoneJS.normalized(), nil
	}

	var t Table
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing package table: %w", err)
	}
	return t.normalized(), nil
}

func (t *Table) normalized() *Table {
	if t.Dependencies == nil {
		t.Dependencies = map[string]string{}
	}
	if t.DevDependencies == nil {
		t.DevDependencies = map[string]string{}
	}
	return t
}

// Lookup returns the version range for name from either dependency set.
func (t *Table) Lookup(name string) (string, bool) {
	if v, ok := t.Dependencies[name]; ok {
		return v, true
	}
	v, ok := t.DevDependencies[name]
	return v, ok
}

// Pick returns the ranges for names that the table knows. Unknown names are skipped.
func (t *Table) Pick(names ...string) map[string]string {
	picked := make(map[string]string, len(names))
	for _, name := range names {
		if v, ok := t.Lookup(name); ok {
			picked[name] = v
		}
	}
	return picked
}

// InstallStrings converts a dependency map into sorted "name@range" arguments.
func InstallStrings(deps map[string]string) []string {
	out := make([]string, 0, len(deps))
	for name, version := range deps {
		out = append(out, name+"@"+version)
	}
	sort.Strings(out)
	return out
}

// GeneratorDependencies are installed into projects made by the generator archetype.
var GeneratorDependencies = map[string]string{
	"lodash":           "^4.13.1",
	"yeoman-generator": "^1.1.0",
}

// GeneratorDevDependencies are installed as dev dependencies by the generator archetype.
var GeneratorDevDependencies = map[string]string{
	"jshint":        "^2.9.2",
	"mocha":         "^2.5.1",
	"yeoman-assert": "^2.2.1",
	"yeoman-test":   "^1.6.0",
}
