package templates

import (
	"path"
	"path/filepath"
)

// ignoreFileMarker is how ignore files are stored so npm does not rename them on publish.
const ignoreFileMarker = "_gitignore"

// Plan maps template IDs to emission entries in order. dest returns the
// destination path for an ID; an ignore-file marker basename is rewritten to
// .gitignore. Plan performs no I/O.
func Plan(ids []string, ctx any, dest func(id string) string) []Entry {
	entries := make([]Entry, 0, len(ids))
	for _, id := range ids {
		entries = append(entries, Entry{
			TemplateID:  id,
			Destination: remapIgnoreFile(dest(id)),
			Context:     ctx,
		})
	}
	return entries
}

func remapIgnoreFile(p string) string {
	if path.Base(filepath.ToSlash(p)) != ignoreFileMarker {
		return p
	}
	return filepath.Join(filepath.Dir(p), ".gitignore")
}
