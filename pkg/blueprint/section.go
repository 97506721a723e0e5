package blueprint

import (
	"github.com/goliatone/go-readme/pkg/templates"
)

// Built-in section names registered by DefaultRegistry.
const (
	SectionLogo         = "logo"
	SectionTitle        = "title"
	SectionLine         = "line"
	SectionBadges       = "badges"
	SectionDescription  = "description"
	SectionBullets      = "bullets"
	SectionTOC          = "toc"
	SectionLicense      = "license"
	SectionContributors = "contributors"
)

// Section renders one README fragment from a blueprint.
type Section interface {
	Name() string
	Render(lib *templates.Library, bp Blueprint) (string, error)
}

// RenderFunc adapts a function into a Section body.
type RenderFunc func(lib *templates.Library, bp Blueprint) (string, error)

type funcSection struct {
	name string
	fn   RenderFunc
}

// NewSection wraps fn as a Section called name.
func NewSection(name string, fn RenderFunc) Section {
	return funcSection{name: name, fn: fn}
}

func (s funcSection) Name() string { return s.name }

func (s funcSection) Render(lib *templates.Library, bp Blueprint) (string, error) {
	if s.fn == nil {
		return "", nil
	}
	return s.fn(lib, bp)
}

func builtinSections() []Section {
	return []Section{
		NewSection(SectionLogo, func(lib *templates.Library, bp Blueprint) (string, error) {
			if bp.Logo == nil {
				return "", nil
			}
			return lib.Logo(*bp.Logo)
		}),
		NewSection(SectionTitle, func(lib *templates.Library, bp Blueprint) (string, error) {
			if bp.Name == "" {
				return "", nil
			}
			return lib.MainTitle(templates.MainTitle{Name: bp.Name})
		}),
		NewSection(SectionLine, func(lib *templates.Library, _ Blueprint) (string, error) {
			return lib.Line(), nil
		}),
		NewSection(SectionBadges, func(lib *templates.Library, bp Blueprint) (string, error) {
			return lib.Badges(templates.Badges{Badges: bp.Badges})
		}),
		NewSection(SectionDescription, func(lib *templates.Library, bp Blueprint) (string, error) {
			if bp.Description == "" {
				return "", nil
			}
			return lib.Description(templates.Description{
				Description: bp.Description,
				Text:        bp.Text,
				Demo:        bp.Demo,
			})
		}),
		NewSection(SectionBullets, func(lib *templates.Library, bp Blueprint) (string, error) {
			return lib.Bullets(templates.Bullets{Bullets: bp.Bullets}), nil
		}),
		NewSection(SectionTOC, func(lib *templates.Library, bp Blueprint) (string, error) {
			if len(bp.Headings) == 0 {
				return "", nil
			}
			return lib.TableOfContents(templates.TableOfContents{Titles: bp.Headings})
		}),
		NewSection(SectionLicense, func(lib *templates.Library, bp Blueprint) (string, error) {
			if bp.License == "" {
				return "", nil
			}
			return lib.License(templates.License{License: bp.License})
		}),
		NewSection(SectionContributors, func(lib *templates.Library, bp Blueprint) (string, error) {
			if len(bp.Contributors) == 0 {
				return "", nil
			}
			return lib.Contributors(templates.Contributors{Contributors: bp.Contributors})
		}),
	}
}
