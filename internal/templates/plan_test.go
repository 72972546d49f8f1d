package templates

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlan(t *testing.T) {
	ctx := ProjectData{Name: "my-app"}
	ids := []string{"app/README.md", "app/_gitignore", "app/src/app.js"}

	entries := Plan(ids, ctx, func(id string) string {
		return filepath.Join("out", Rel("app", id))
	})

	assert.Equal(t, []Entry{
		{TemplateID: "app/README.md", Destination: filepath.Join("out", "README.md"), Context: ctx},
		{TemplateID: "app/_gitignore", Destination: filepath.Join("out", ".gitignore"), Context: ctx},
		{TemplateID: "app/src/app.js", Destination: filepath.Join("out", "src", "app.js"), Context: ctx},
	}, entries)
}

func TestPlan_IgnoreFileAtRoot(t *testing.T) {
	entries := Plan([]string{"plugin/_gitignore"}, nil, func(id string) string {
		return Rel("plugin", id)
	})

	assert.Equal(t, ".gitignore", entries[0].Destination)
}

func TestPlan_OnlyBasenameIsRemapped(t *testing.T) {
	entries := Plan([]string{"x"}, nil, func(string) string {
		return filepath.Join("_gitignore", "file.js")
	})

	assert.Equal(t, filepath.Join("_gitignore", "file.js"), entries[0].Destination)
}

func TestPlan_Empty(t *testing.T) {
	assert.Empty(t, Plan(nil, nil, func(id string) string { return id }))
}
