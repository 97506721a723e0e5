package blueprint

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-readme/pkg/render/template"
	"github.com/goliatone/go-readme/pkg/render/template/gotemplate"
	"github.com/goliatone/go-readme/pkg/templates"
)

const (
	rawOpen  = "{% autoescape off %}"
	rawClose = "{% endautoescape %}"
)

// Option configures a Renderer.
type Option func(*Renderer)

// WithLibrary sets the template library used by every section.
func WithLibrary(lib *templates.Library) Option {
	return func(r *Renderer) {
		if lib != nil {
			r.library = lib
		}
	}
}

// WithRegistry replaces the built-in section registry.
func WithRegistry(registry *Registry) Option {
	return func(r *Renderer) {
		if registry != nil {
			r.registry = registry
		}
	}
}

// WithEngine replaces the embedded pongo2 engine.
func WithEngine(engine template.TemplateRenderer) Option {
	return func(r *Renderer) {
		if engine != nil {
			r.engine = engine
		}
	}
}

// WithLogger sets the logger used for section diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Renderer) {
		r.logger = logger
	}
}

// Renderer turns a Blueprint into a README document.
type Renderer struct {
	library  *templates.Library
	registry *Registry
	engine   template.TemplateRenderer
	logger   zerolog.Logger
}

// New builds a Renderer. Without options it uses templates.Default(), the
// built-in sections and an engine over TemplatesFS.
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		logger: zerolog.Nop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}

	if r.library == nil {
		r.library = templates.Default()
	}
	if r.registry == nil {
		r.registry = DefaultRegistry()
	}
	if r.engine == nil {
		engine, err := gotemplate.New(gotemplate.WithFS(TemplatesFS()))
		if err != nil {
			return nil, fmt.Errorf("blueprint: engine: %w", err)
		}
		r.engine = engine
	}
	return r, nil
}

// Sections renders every registered section, keyed by name. Rendering stops
// at the first failing section or when ctx is done.
func (r *Renderer) Sections(ctx context.Context, bp Blueprint) (map[string]string, error) {
	names := r.registry.List()
	out := make(map[string]string, len(names))

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		section, err := r.registry.Get(name)
		if err != nil {
			return nil, err
		}
		rendered, err := section.Render(r.library, bp)
		if err != nil {
			r.logger.Debug().Str("section", name).Err(err).Msg("section render failed")
			return nil, fmt.Errorf("blueprint: section %q: %w", name, err)
		}
		r.logger.Debug().Str("section", name).Int("bytes", len(rendered)).Msg("section rendered")
		out[name] = rendered
	}
	return out, nil
}

// Render composes the README. content is pongo2 template text with access to
// "sections" and "blueprint" (see Blueprint.TemplateContext); blank content selects DefaultTemplate. Output is
// never HTML-escaped since fragments already carry their markup. The result is
// also written to every writer in out.
func (r *Renderer) Render(ctx context.Context, bp Blueprint, content string, out ...io.Writer) (string, error) {
	sections, err := r.Sections(ctx, bp)
	if err != nil {
		return "", err
	}

	data := template.Data{Sections: sections, Document: bp}

	var rendered string
	if strings.TrimSpace(content) == "" {
		rendered, err = r.engine.RenderTemplate(DefaultTemplate, data, out...)
	} else {
		rendered, err = r.engine.RenderString(rawOpen+content+rawClose, data, out...)
	}
	if err != nil {
		return "", fmt.Errorf("blueprint: render: %w", err)
	}

	r.logger.Debug().Int("sections", len(sections)).Int("bytes", len(rendered)).Msg("blueprint rendered")
	return rendered, nil
}
