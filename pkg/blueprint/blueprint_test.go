package blueprint_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-readme/pkg/blueprint"
	"github.com/goliatone/go-readme/pkg/templates"
)

func loadFixture(t *testing.T) blueprint.Blueprint {
	t.Helper()

	data, err := os.ReadFile(filepath.Join("testdata", "blueprint.yaml"))
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	bp, err := blueprint.Parse(data)
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return bp
}

func TestParse_YAML(t *testing.T) {
	bp := loadFixture(t)

	want := blueprint.Blueprint{
		Name: "go-readme",
		Logo: &templates.Logo{URL: "https://example.com/logo.svg"},
		Badges: []templates.Badge{{
			URL:  "https://pkg.go.dev/github.com/goliatone/go-readme",
			Text: "Go Reference",
			Img:  "https://pkg.go.dev/badge/github.com/goliatone/go-readme.svg?style=flat&v=1",
		}},
		Description: "README fragments for Go projects",
		Text:        "Render logos, badges and more.",
		Demo:        "https://example.com/demo",
		Bullets:     []string{"Pure functions", "No I/O"},
		Headings:    []string{"## Installation", "## Usage", "### Blueprints"},
		License:     "MIT",
		Contributors: []templates.Contributor{{
			Name:  "Ann",
			Email: "ann@example.com",
			URL:   "https://github.com/ann",
		}},
		Extra: map[string]any{"install": "go get github.com/goliatone/go-readme"},
	}
	if diff := cmp.Diff(want, bp); diff != "" {
		t.Fatalf("blueprint mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_JSON(t *testing.T) {
	bp, err := blueprint.Parse([]byte(`{"name": "x", "bullets": ["a"], "license": "ISC"}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := blueprint.Blueprint{Name: "x", Bullets: []string{"a"}, License: "ISC"}
	if diff := cmp.Diff(want, bp); diff != "" {
		t.Fatalf("blueprint mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_RejectsUnknownKeys(t *testing.T) {
	if _, err := blueprint.Parse([]byte("name: x\nbadgez: []\n")); err == nil {
		t.Fatalf("expected unknown key error")
	}
}

func TestParse_Empty(t *testing.T) {
	if _, err := blueprint.Parse(nil); !errors.Is(err, blueprint.ErrEmptyDocument) {
		t.Fatalf("expected ErrEmptyDocument, got %v", err)
	}
}

func TestTemplateContext(t *testing.T) {
	got := loadFixture(t).TemplateContext()

	want := map[string]any{
		"name":        "go-readme",
		"description": "README fragments for Go projects",
		"text":        "Render logos, badges and more.",
		"demo":        "https://example.com/demo",
		"license":     "MIT",
		"bullets":     []string{"Pure functions", "No I/O"},
		"headings":    []string{"## Installation", "## Usage", "### Blueprints"},
		"logo": map[string]any{
			"url":    "https://example.com/logo.svg",
			"width":  "",
			"height": "",
			"alt":    "",
		},
		"badges": []any{map[string]any{
			"url":  "https://pkg.go.dev/github.com/goliatone/go-readme",
			"text": "Go Reference",
			"img":  "https://pkg.go.dev/badge/github.com/goliatone/go-readme.svg?style=flat&v=1",
		}},
		"contributors": []any{map[string]any{
			"name":  "Ann",
			"email": "ann@example.com",
			"url":   "https://github.com/ann",
		}},
		"extra": map[string]any{"install": "go get github.com/goliatone/go-readme"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("template context mismatch (-want +got):\n%s", diff)
	}

	empty := blueprint.Blueprint{Name: "x"}.TemplateContext()
	for _, key := range []string{"logo", "badges", "contributors", "extra"} {
		if _, ok := empty[key]; ok {
			t.Fatalf("expected %q to be absent for an empty blueprint", key)
		}
	}
}
