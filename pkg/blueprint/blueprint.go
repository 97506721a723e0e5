package blueprint

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-readme/pkg/templates"
)

// ErrEmptyDocument is returned by Parse when the input holds no document.
var ErrEmptyDocument = errors.New("blueprint: empty document")

// Blueprint describes a project README. All fields are optional; sections
// whose input is missing render as empty strings.
type Blueprint struct {
	Name         string                  `json:"name,omitempty" yaml:"name,omitempty"`
	Logo         *templates.Logo         `json:"logo,omitempty" yaml:"logo,omitempty"`
	Badges       []templates.Badge       `json:"badges,omitempty" yaml:"badges,omitempty"`
	Description  string                  `json:"description,omitempty" yaml:"description,omitempty"`
	Text         string                  `json:"text,omitempty" yaml:"text,omitempty"`
	Demo         string                  `json:"demo,omitempty" yaml:"demo,omitempty"`
	Bullets      []string                `json:"bullets,omitempty" yaml:"bullets,omitempty"`
	Headings     []string                `json:"headings,omitempty" yaml:"headings,omitempty"`
	License      string                  `json:"license,omitempty" yaml:"license,omitempty"`
	Contributors []templates.Contributor `json:"contributors,omitempty" yaml:"contributors,omitempty"`
	// Extra carries free-form values for custom template content.
	Extra map[string]any `json:"extra,omitempty" yaml:"extra,omitempty"`
}

// Parse decodes a YAML or JSON blueprint. Unknown keys are rejected so typos
// surface instead of silently dropping a section.
func Parse(data []byte) (Blueprint, error) {
	var bp Blueprint

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&bp); err != nil {
		if errors.Is(err, io.EOF) {
			return Blueprint{}, ErrEmptyDocument
		}
		return Blueprint{}, fmt.Errorf("blueprint: decode: %w", err)
	}
	return bp, nil
}

// TemplateContext is the view layouts see under "blueprint". Keys follow the
// document's yaml names; absent optional values are left out.
func (bp Blueprint) TemplateContext() map[string]any {
	ctx := map[string]any{
		"name":        bp.Name,
		"description": bp.Description,
		"text":        bp.Text,
		"demo":        bp.Demo,
		"license":     bp.License,
		"bullets":     bp.Bullets,
		"headings":    bp.Headings,
	}
	if bp.Logo != nil {
		ctx["logo"] = map[string]any{
			"url":    bp.Logo.URL,
			"width":  bp.Logo.Width,
			"height": bp.Logo.Height,
			"alt":    bp.Logo.Alt,
		}
	}
	if len(bp.Badges) > 0 {
		badges := make([]any, 0, len(bp.Badges))
		for _, b := range bp.Badges {
			badges = append(badges, map[string]any{"url": b.URL, "text": b.Text, "img": b.Img})
		}
		ctx["badges"] = badges
	}
	if len(bp.Contributors) > 0 {
		contributors := make([]any, 0, len(bp.Contributors))
		for _, c := range bp.Contributors {
			contributors = append(contributors, map[string]any{"name": c.Name, "email": c.Email, "url": c.URL})
		}
		ctx["contributors"] = contributors
	}
	if len(bp.Extra) > 0 {
		ctx["extra"] = bp.Extra
	}
	return ctx
}
