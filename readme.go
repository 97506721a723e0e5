// Package readme renders README building blocks (logo, titles, badges,
// description, table of contents, license and contributors) as Markdown/HTML
// fragments, and composes them into full documents from blueprints.
//
// The fragment templates live in pkg/templates; this package re-exports the
// common entry points.
package readme

import (
	"context"
	"io"

	"github.com/goliatone/go-readme/pkg/blueprint"
	"github.com/goliatone/go-readme/pkg/config"
	"github.com/goliatone/go-readme/pkg/templates"
)

// Config aliases config.Config.
type Config = config.Config

// Library aliases templates.Library.
type Library = templates.Library

// Input records accepted by the Library.
type (
	Logo            = templates.Logo
	MainTitle       = templates.MainTitle
	Title           = templates.Title
	Badge           = templates.Badge
	Badges          = templates.Badges
	License         = templates.License
	Demo            = templates.Demo
	Description     = templates.Description
	Bullets         = templates.Bullets
	TableOfContents = templates.TableOfContents
	Contributor     = templates.Contributor
	Contributors    = templates.Contributors
)

// Blueprint aliases blueprint.Blueprint.
type Blueprint = blueprint.Blueprint

// New builds a template Library; see templates.New for options.
func New(options ...templates.Option) (*Library, error) {
	return templates.New(options...)
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return config.Default()
}

// ParseBlueprint decodes a YAML or JSON blueprint document.
func ParseBlueprint(data []byte) (Blueprint, error) {
	return blueprint.Parse(data)
}

// RenderBlueprint parses data as a blueprint and renders it with content (or
// the embedded default layout when content is blank). The document is also
// written to every writer in out.
func RenderBlueprint(ctx context.Context, data []byte, content string, options []blueprint.Option, out ...io.Writer) (string, error) {
	bp, err := blueprint.Parse(data)
	if err != nil {
		return "", err
	}
	renderer, err := blueprint.New(options...)
	if err != nil {
		return "", err
	}
	return renderer.Render(ctx, bp, content, out...)
}
