package templates_test

import (
	"errors"
	"strings"
	"testing"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-readme/pkg/templates"
)

func TestLine_Default(t *testing.T) {
	got := templates.Default().Line()
	want := "![line](https://github.com/andreasbm/readme/blob/master/assets/line.png)"
	if got != want {
		t.Fatalf("line mismatch\nwant: %q\n got: %q", want, got)
	}
}

func TestLine_BuiltinStyles(t *testing.T) {
	for _, style := range templates.LineStyles() {
		t.Run(style, func(t *testing.T) {
			lib, err := templates.New(templates.WithLineStyle(style))
			if err != nil {
				t.Fatalf("new: %v", err)
			}
			got := lib.Line()
			if style == templates.LineStyleNone {
				if got != "" {
					t.Fatalf("expected disabled line, got %q", got)
				}
				return
			}
			if !strings.HasSuffix(got, "/"+style+".png)") {
				t.Fatalf("unexpected line for %s: %q", style, got)
			}
		})
	}
}

func TestLine_NoneDropsTitleSeparator(t *testing.T) {
	lib := templates.MustNew(templates.WithLineStyle(templates.LineStyleNone))
	got, err := lib.Title(templates.Title{Title: "Usage", Level: 2})
	if err != nil {
		t.Fatalf("title: %v", err)
	}
	if got != "## ➤ Usage" {
		t.Fatalf("unexpected title %q", got)
	}
}

func TestLineTheme_IsValidManifest(t *testing.T) {
	manifest := templates.LineTheme()
	if err := manifest.Validate(); err != nil {
		t.Fatalf("built-in line theme failed validation: %v", err)
	}
	if got := manifest.TokensForVariant(templates.LineStyleNone)[templates.LineToken]; got != templates.LineDisabled {
		t.Fatalf("expected %q token for none variant, got %q", templates.LineDisabled, got)
	}
}

func TestLine_UnknownStyle(t *testing.T) {
	_, err := templates.New(templates.WithLineStyle("plaid"))
	if !errors.Is(err, templates.ErrUnknownLineStyle) {
		t.Fatalf("expected ErrUnknownLineStyle, got %v", err)
	}
}

func TestLine_CustomManifest(t *testing.T) {
	manifest := &theme.Manifest{
		Name:    "acme",
		Version: "1.0.0",
		Tokens: map[string]string{
			templates.LineToken: "https://cdn.example/line.png",
		},
		Variants: map[string]theme.Variant{
			"dark": {
				Tokens: map[string]string{templates.LineToken: "https://cdn.example/dark.png"},
			},
			"plain": {},
		},
	}

	tests := map[string]string{
		"":      "![line](https://cdn.example/line.png)",
		"dark":  "![line](https://cdn.example/dark.png)",
		"plain": "![line](https://cdn.example/line.png)",
	}
	for variant, want := range tests {
		lib, err := templates.New(templates.WithLineTheme(manifest, variant))
		if err != nil {
			t.Fatalf("variant %q: %v", variant, err)
		}
		if got := lib.Line(); got != want {
			t.Fatalf("variant %q: want %q, got %q", variant, want, got)
		}
	}
}

func TestLine_CustomManifestDisabledToken(t *testing.T) {
	manifest := &theme.Manifest{
		Name:    "quiet",
		Version: "0.1.0",
		Variants: map[string]theme.Variant{
			"off": {Tokens: map[string]string{templates.LineToken: templates.LineDisabled}},
		},
	}

	lib, err := templates.New(templates.WithLineTheme(manifest, "off"))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if got := lib.Line(); got != "" {
		t.Fatalf("expected disabled line, got %q", got)
	}

	fallback := templates.MustNew(templates.WithLineTheme(manifest, ""))
	if got := fallback.Line(); got != "![line]("+templates.DefaultLineURL+")" {
		t.Fatalf("expected default line for manifest without token, got %q", got)
	}
}

func TestLine_CustomManifestIsValidated(t *testing.T) {
	tests := map[string]*theme.Manifest{
		"missing version": {
			Name:   "acme",
			Tokens: map[string]string{templates.LineToken: "https://cdn.example/line.png"},
		},
		"empty variant token": {
			Name:    "acme",
			Version: "1.0.0",
			Variants: map[string]theme.Variant{
				"none": {Tokens: map[string]string{templates.LineToken: ""}},
			},
		},
	}

	for name, manifest := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := templates.New(templates.WithLineTheme(manifest, ""))
			if !errors.Is(err, templates.ErrInvalidLineTheme) {
				t.Fatalf("expected ErrInvalidLineTheme, got %v", err)
			}
			var validation theme.ValidationError
			if !errors.As(err, &validation) || len(validation.Issues) == 0 {
				t.Fatalf("expected go-theme validation issues, got %v", err)
			}
		})
	}
}

func TestLine_LaterManifestChangesIgnored(t *testing.T) {
	manifest := &theme.Manifest{
		Name:    "acme",
		Version: "1.0.0",
		Tokens:  map[string]string{templates.LineToken: "https://cdn.example/line.png"},
	}
	lib := templates.MustNew(templates.WithLineTheme(manifest, ""))
	manifest.Tokens[templates.LineToken] = "https://cdn.example/changed.png"

	if got := lib.Line(); got != "![line](https://cdn.example/line.png)" {
		t.Fatalf("expected line from registered copy, got %q", got)
	}
}

func TestLine_SelectorFromRegistry(t *testing.T) {
	registry := theme.NewRegistry()
	for _, manifest := range []*theme.Manifest{
		templates.LineTheme(),
		{
			Name:    "acme",
			Version: "2.0.0",
			Tokens:  map[string]string{templates.LineToken: "https://cdn.example/acme.png"},
			Variants: map[string]theme.Variant{
				"dark": {Tokens: map[string]string{templates.LineToken: "https://cdn.example/acme-dark.png"}},
			},
		},
	} {
		if err := registry.Register(manifest); err != nil {
			t.Fatalf("register %s: %v", manifest.Name, err)
		}
	}
	selector := theme.Selector{Registry: registry, DefaultTheme: templates.LineThemeName, DefaultVariant: "fire"}

	tests := []struct {
		name      string
		themeName string
		variant   string
		want      string
	}{
		{name: "default theme and variant", want: "![line](https://raw.githubusercontent.com/andreasbm/readme/master/assets/lines/fire.png)"},
		{name: "named theme", themeName: "acme", variant: "dark", want: "![line](https://cdn.example/acme-dark.png)"},
		{name: "unknown theme falls back", themeName: "missing", variant: "water", want: "![line](https://raw.githubusercontent.com/andreasbm/readme/master/assets/lines/water.png)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lib, err := templates.New(templates.WithLineSelector(selector, tt.themeName, tt.variant))
			if err != nil {
				t.Fatalf("new: %v", err)
			}
			if got := lib.Line(); got != tt.want {
				t.Fatalf("want %q, got %q", tt.want, got)
			}
		})
	}

	_, err := templates.New(templates.WithLineSelector(selector, "acme", "fire"))
	if !errors.Is(err, templates.ErrUnknownLineStyle) {
		t.Fatalf("expected ErrUnknownLineStyle for variant outside acme, got %v", err)
	}

	_, err = templates.New(templates.WithLineSelector(theme.Selector{Registry: theme.NewRegistry()}, "nothing", ""))
	if !errors.Is(err, templates.ErrInvalidLineTheme) || !errors.Is(err, theme.ErrThemeNotFound) {
		t.Fatalf("expected ErrInvalidLineTheme wrapping ErrThemeNotFound, got %v", err)
	}
}
