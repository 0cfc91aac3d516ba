package generator

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"sync"
	"text/template"
)

// Shared partials available to every framework's template set
// (provider/deployment-type notes referenced from the README templates).
//
//go:embed templates/*.tmpl
var sharedTemplates embed.FS

// TemplateSource lazily parses a generator's embedded templates together
// with the shared partials. Rendering is strict: any variable missing from
// the context fails the render instead of emitting "<no value>", which keeps
// output deterministic and catches context mistakes loudly.
type TemplateSource struct {
	fsys    fs.FS
	pattern string

	once sync.Once
	tmpl *template.Template
	err  error
}

// NewTemplateSource creates a template source over an embedded filesystem.
func NewTemplateSource(fsys fs.FS, pattern string) *TemplateSource {
	return &TemplateSource{fsys: fsys, pattern: pattern}
}

// TemplateSet parses and returns the template set.
func (s *TemplateSource) TemplateSet() (*template.Template, error) {
	s.once.Do(func() {
		funcMap := template.FuncMap{
			"upper": strings.ToUpper,
			"lower": strings.ToLower,
		}

		tmpl, err := template.New("templates").
			Option("missingkey=error").
			Funcs(funcMap).
			ParseFS(sharedTemplates, "templates/*.tmpl")
		if err != nil {
			s.err = fmt.Errorf("parsing shared templates: %w", err)
			return
		}

		tmpl, err = tmpl.ParseFS(s.fsys, s.pattern)
		if err != nil {
			s.err = fmt.Errorf("parsing templates: %w", err)
			return
		}
		s.tmpl = tmpl
	})
	return s.tmpl, s.err
}

// render executes one named template against the merged context.
func render(tmpl *template.Template, name string, ctx map[string]any) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, ctx); err != nil {
		return nil, &RenderError{Template: name, Err: err}
	}
	return buf.Bytes(), nil
}
