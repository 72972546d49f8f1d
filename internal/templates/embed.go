package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

// The all: prefix keeps _gitignore, which embed would otherwise skip.
//
//go:embed all:files
var embedded embed.FS

// Suffix is the extension every embedded template carries.
const Suffix = ".tmpl"

// FS returns the embedded template tree rooted at the archetype directories.
func FS() fs.FS {
	sub, err := fs.Sub(embedded, "files")
	if err != nil {
		panic(fmt.Sprintf("templates: embedded tree missing: %v", err))
	}
	return sub
}

// Exists reports whether the embedded tree contains a template with this ID.
func Exists(id string) bool {
	_, err := fs.Stat(FS(), id+Suffix)
	return err == nil
}

// List returns the template IDs under dir (e.g., "component/modlet"), sorted.
func List(dir string) ([]string, error) {
	var ids []string

	err := fs.WalkDir(FS(), dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(p, Suffix) {
			return nil
		}
		ids = append(ids, strings.TrimSuffix(p, Suffix))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing templates in %s: %w", dir, err)
	}

	sort.Strings(ids)
	return ids, nil
}

// Rel returns id with its leading directory removed (e.g., "app/src/app.js" with
// prefix "app/src" becomes "app.js").
func Rel(prefix, id string) string {
	return strings.TrimPrefix(strings.TrimPrefix(id, prefix), "/")
}
