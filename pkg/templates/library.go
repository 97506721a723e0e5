package templates

import (
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-readme/pkg/config"
	"github.com/goliatone/go-readme/pkg/heading"
	"github.com/goliatone/go-readme/pkg/license"
)

const (
	badgeHeight        = "20"
	licenseHeading     = "## License"
	tocHeading         = "## Table of Contents"
	contributorHeading = "## Contributors"

	minLevel = 1
	maxLevel = 6
)

var (
	defaultOnce    sync.Once
	defaultLibrary *Library
)

// Library renders README fragments. It holds no mutable state once built, so
// a single Library can serve concurrent callers.
type Library struct {
	cfg      config.Config
	logger   zerolog.Logger
	lineURL  string
	resolver LicenseResolver
}

// New builds a Library from the default configuration and the supplied
// options. It fails when the configuration is invalid or the selected line
// style does not exist.
func New(options ...Option) (*Library, error) {
	s := &settings{
		cfg:      config.Default(),
		logger:   zerolog.Nop(),
		resolver: license.URL,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}

	if err := s.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("templates: %w", err)
	}
	if s.lineErr != nil {
		return nil, s.lineErr
	}
	lineURL, err := resolveLineURL(s.lineSelector, s.lineTheme, s.lineVariant)
	if err != nil {
		return nil, err
	}

	return &Library{
		cfg:      s.cfg,
		logger:   s.logger,
		lineURL:  lineURL,
		resolver: s.resolver,
	}, nil
}

// MustNew panics when New fails. Useful for init-time wiring.
func MustNew(options ...Option) *Library {
	lib, err := New(options...)
	if err != nil {
		panic(err)
	}
	return lib
}

// Default returns a shared Library built with the default configuration.
func Default() *Library {
	defaultOnce.Do(func() {
		defaultLibrary = MustNew()
	})
	return defaultLibrary
}

// Config returns a copy of the configuration the Library renders with.
func (l *Library) Config() config.Config {
	return l.cfg.Clone()
}

// Logo renders a centered image block.
func (l *Library) Logo(logo Logo) (string, error) {
	if blank(logo.URL) {
		return "", l.fail(missing("logo", "url"))
	}
	logo = logo.withDefaults()

	img := `  <img src="` + logo.URL + `" alt="` + logo.Alt + `" width="` + logo.Width + `" height="` + logo.Height + `" />`
	return l.join(`<p align="center">`, img, `</p>`), nil
}

// MainTitle renders the centered document heading.
func (l *Library) MainTitle(title MainTitle) (string, error) {
	if blank(title.Name) {
		return "", l.fail(missing("main title", "name"))
	}
	return `<h1 align="center">` + title.Name + `</h1>`, nil
}

// Line renders the decorative separator, or "" when the line is disabled.
func (l *Library) Line() string {
	if l.lineURL == "" {
		return ""
	}
	return "![line](" + l.lineURL + ")"
}

// Title renders a section heading. Levels 1 and 2 are preceded by the
// separator line and a blank line.
func (l *Library) Title(title Title) (string, error) {
	if title.Level < minLevel || title.Level > maxLevel {
		return "", l.fail(fmt.Errorf("%w: got %d", ErrInvalidLevel, title.Level))
	}
	text := heading.Title(title.Title, title.Level, l.cfg)
	if blank(heading.Clean(title.Title)) {
		return "", l.fail(missing("title", "title"))
	}

	var b strings.Builder
	if title.Level <= 2 {
		if line := l.Line(); line != "" {
			b.WriteString(line)
			b.WriteString(l.cfg.LineBreak)
			b.WriteString(l.cfg.LineBreak)
		}
	}
	b.WriteString(strings.Repeat("#", title.Level))
	b.WriteByte(' ')
	b.WriteString(text)
	return b.String(), nil
}

// Badges renders a centered row of badge links. An empty row renders "".
func (l *Library) Badges(badges Badges) (string, error) {
	if len(badges.Badges) == 0 {
		return "", nil
	}

	links := make([]string, 0, len(badges.Badges))
	for idx, badge := range badges.Badges {
		if blank(badge.URL) {
			return "", l.fail(missing("badges", fmt.Sprintf("badges[%d].url", idx)))
		}
		if blank(badge.Text) {
			return "", l.fail(missing("badges", fmt.Sprintf("badges[%d].text", idx)))
		}
		if blank(badge.Img) {
			return "", l.fail(missing("badges", fmt.Sprintf("badges[%d].img", idx)))
		}
		links = append(links, `<a href="`+badge.URL+`"><img alt="`+badge.Text+`" src="`+badge.Img+`" height="`+badgeHeight+`"/></a>`)
	}

	return l.join(`<p align="center">`, strings.Join(links, l.cfg.LineBreak), `</p>`), nil
}

// License renders the license section. Identifiers the resolver does not
// recognise fail; the link is never emitted empty.
func (l *Library) License(lic License) (string, error) {
	if blank(lic.License) {
		return "", l.fail(missing("license", "license"))
	}
	url, err := l.resolver(lic.License)
	if err != nil {
		return "", l.fail(fmt.Errorf("templates: license: %w", err))
	}
	if blank(url) {
		return "", l.fail(fmt.Errorf("templates: license: empty URL for %q", lic.License))
	}

	return l.join(licenseHeading, "", "Licensed under ["+lic.License+"]("+url+")."), nil
}

// Demo renders the demo link sentence.
func (l *Library) Demo(demo Demo) (string, error) {
	if blank(demo.URL) {
		return "", l.fail(missing("demo", "url"))
	}
	return `Go here to see a demo <a href="` + demo.URL + `">` + demo.URL + `</a>.`, nil
}

// Description renders the bold centered summary followed by a subscript line
// holding Text and the demo sentence, when present.
func (l *Library) Description(desc Description) (string, error) {
	if blank(desc.Description) {
		return "", l.fail(missing("description", "description"))
	}

	var parts []string
	if !blank(desc.Text) {
		parts = append(parts, desc.Text)
	}
	if !blank(desc.Demo) {
		sentence, err := l.Demo(Demo{URL: desc.Demo})
		if err != nil {
			return "", err
		}
		parts = append(parts, sentence)
	}

	return l.join(
		`<p align="center">`,
		`  <b>`+desc.Description+`</b><br />`,
		`  <sub>`+strings.Join(parts, " ")+`</sub>`,
		`</p>`,
		"",
		`<br />`,
	), nil
}

// Bullets renders each entry as a "* " list item.
func (l *Library) Bullets(bullets Bullets) string {
	items := make([]string, 0, len(bullets.Bullets))
	for _, bullet := range bullets.Bullets {
		items = append(items, "* "+bullet)
	}
	return strings.Join(items, l.cfg.LineBreak)
}

// TableOfContents renders an indented list of anchor links, one per heading
// marker. Indentation is one tab per '#' beyond the first.
func (l *Library) TableOfContents(toc TableOfContents) (string, error) {
	if len(toc.Titles) == 0 {
		return tocHeading, nil
	}

	items := make([]string, 0, len(toc.Titles))
	for idx, raw := range toc.Titles {
		text := heading.Strip(raw)
		if blank(text) {
			return "", l.fail(missing("table of contents", fmt.Sprintf("titles[%d]", idx)))
		}
		tabs := strings.Repeat(l.cfg.Tab, heading.Depth(raw))
		items = append(items, tabs+"* ["+text+"]("+heading.Link(raw, l.cfg)+")")
	}

	return l.join(tocHeading, "", strings.Join(items, l.cfg.LineBreak)), nil
}

// Contributors renders the contributors section. Name and URL are required;
// an email adds a mailto link.
func (l *Library) Contributors(contributors Contributors) (string, error) {
	if len(contributors.Contributors) == 0 {
		return contributorHeading, nil
	}

	items := make([]string, 0, len(contributors.Contributors))
	for idx, c := range contributors.Contributors {
		if blank(c.Name) {
			return "", l.fail(missing("contributors", fmt.Sprintf("contributors[%d].name", idx)))
		}
		if blank(c.URL) {
			return "", l.fail(missing("contributors", fmt.Sprintf("contributors[%d].url", idx)))
		}

		item := `* <a href="` + c.URL + `">` + c.Name + `</a>`
		if !blank(c.Email) {
			item += ` (<a href="mailto:` + c.Email + `">` + c.Email + `</a>)`
		}
		items = append(items, item)
	}

	return l.join(contributorHeading, "", strings.Join(items, l.cfg.LineBreak)), nil
}

func (l *Library) join(lines ...string) string {
	return strings.Join(lines, l.cfg.LineBreak)
}

func (l *Library) fail(err error) error {
	l.logger.Debug().Err(err).Msg("template render failed")
	return err
}

func blank(value string) bool {
	return strings.TrimSpace(value) == ""
}
