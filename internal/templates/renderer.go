package templates

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/donejs/donegen/internal/naming"
	"github.com/donejs/donegen/internal/output"
)

// Delimiters used by every template. Generated .stache files contain {{ }}.
const (
	LeftDelim  = "[["
	RightDelim = "]]"
)

// override replaces the templates under prefix with files from fsys.
type override struct {
	prefix string
	fsys   fs.FS
}

// Renderer executes templates from the embedded tree, honoring overrides.
type Renderer struct {
	base      fs.FS
	overrides []override
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithOverride looks up templates whose ID starts with prefix in fsys first.
// Files in fsys are addressed without the prefix, with or without the .tmpl
// suffix (e.g., "modlet/component.js" overrides "component/modlet/component.js").
func WithOverride(prefix string, fsys fs.FS) RendererOption {
	return func(r *Renderer) {
		if fsys != nil {
			r.overrides = append(r.overrides, override{prefix: strings.TrimSuffix(prefix, "/"), fsys: fsys})
		}
	}
}

// WithBase replaces the embedded template tree.
func WithBase(fsys fs.FS) RendererOption {
	return func(r *Renderer) {
		r.base = fsys
	}
}

// NewRenderer creates a renderer over the embedded templates.
func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{base: FS()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render executes a single entry.
func (r *Renderer) Render(e Entry) ([]byte, error) {
	content, source, err := r.load(e.TemplateID)
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New(e.TemplateID).
		Delims(LeftDelim, RightDelim).
		Funcs(FuncMap()).
		Option("missingkey=error").
		Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", source, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, e.Context); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", source, err)
	}
	return buf.Bytes(), nil
}

// RenderAll renders every entry. It stops at the first failure so nothing is
// written for a plan that cannot be rendered completely.
func (r *Renderer) RenderAll(entries []Entry) ([]File, error) {
	files := make([]File, 0, len(entries))
	for _, e := range entries {
		content, err := r.Render(e)
		if err != nil {
			return nil, err
		}
		files = append(files, File{Destination: e.Destination, Content: content})
	}
	return files, nil
}

func (r *Renderer) load(id string) ([]byte, string, error) {
	for _, o := range r.overrides {
		if !strings.HasPrefix(id, o.prefix+"/") {
			continue
		}
		rel := Rel(o.prefix, id)
		for _, name := range []string{rel + Suffix, rel} {
			content, err := fs.ReadFile(o.fsys, name)
			if err == nil {
				output.Debug("using template override", "template", id, "file", name)
				return content, "override " + name, nil
			}
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, "", fmt.Errorf("reading template override %s: %w", name, err)
			}
		}
	}

	content, err := fs.ReadFile(r.base, id+Suffix)
	if err != nil {
		return nil, "", fmt.Errorf("reading template %s: %w", id, err)
	}
	return content, id, nil
}

// FuncMap returns the helpers available to templates.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"kebab":      naming.KebabCase,
		"camel":      naming.CamelCase,
		"upperFirst": naming.UpperFirst,
		"json": func(v any) (string, error) {
			b, err := json.Marshal(v)
			if err != nil {
				return "", err
			}
			return string(b), nil
		},
	}
}
