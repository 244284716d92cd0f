package adapter

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"text/template"
)

// Names of the templates the orchestrator renders.
const (
	TemplateElement = "element.html"
	TemplateDocs    = "index.html"
	TemplateDemo    = "demo.html"
	TemplateTDD     = "test/tdd.html"
	TemplateBDD     = "test/bdd.html"
)

// Template delimiters. Polymer already uses {{ }} and [[ ]] for bindings.
const (
	leftDelim  = "<%"
	rightDelim = "%>"
)

//go:embed templates
var embeddedTemplates embed.FS

// TemplateRenderer instantiates a named template with the given data.
type TemplateRenderer interface {
	Render(ctx context.Context, name string, data any) ([]byte, error)
}

// FSTemplateRenderer looks templates up in a stack of file systems, first
// match wins. The embedded default set is always the last layer.
type FSTemplateRenderer struct {
	layers []fs.FS
}

// NewTemplateRenderer returns a renderer over the embedded templates, with
// overrideDir (if not empty) searched first.
func NewTemplateRenderer(overrideDir string) (*FSTemplateRenderer, error) {
	embedded, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return nil, fmt.Errorf("loading embedded templates: %w", err)
	}

	layers := make([]fs.FS, 0, 2)

	if dir := strings.TrimSpace(overrideDir); dir != "" {
		info, err := os.Stat(dir)
		if err != nil {
			return nil, fmt.Errorf("template directory: %w", err)
		}

		if !info.IsDir() {
			return nil, fmt.Errorf("template directory %s is not a directory", dir)
		}

		layers = append(layers, os.DirFS(dir))
	}

	layers = append(layers, embedded)

	return NewFSTemplateRenderer(layers...), nil
}

// NewFSTemplateRenderer builds a renderer over explicit layers.
func NewFSTemplateRenderer(layers ...fs.FS) *FSTemplateRenderer {
	return &FSTemplateRenderer{layers: layers}
}

// Render parses the named template and executes it with data.
func (r *FSTemplateRenderer) Render(ctx context.Context, name string, data any) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	content, err := r.lookup(name)
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New(name).
		Delims(leftDelim, rightDelim).
		Option("missingkey=error").
		Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}

	return buf.Bytes(), nil
}

func (r *FSTemplateRenderer) lookup(name string) ([]byte, error) {
	for _, layer := range r.layers {
		content, err := fs.ReadFile(layer, name)
		if err == nil {
			return content, nil
		}

		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading template %s: %w", name, err)
		}
	}

	return nil, fmt.Errorf("template %s not found: %w", name, fs.ErrNotExist)
}
