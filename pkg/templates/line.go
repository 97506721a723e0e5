package templates

import (
	"fmt"
	"strings"
	"sync"

	theme "github.com/goliatone/go-theme"
)

// DefaultLineURL is the separator image used when no line style is selected.
const DefaultLineURL = "https://github.com/andreasbm/readme/blob/master/assets/line.png"

// LineThemeName names the built-in separator manifest.
const LineThemeName = "readme-lines"

// LineToken is the theme token holding the separator image URL.
const LineToken = "line"

// LineDisabled is the LineToken value that turns the separator line off.
// go-theme rejects empty token values, so the off state needs a marker.
const LineDisabled = "disabled"

// LineStyleNone disables the separator line.
const LineStyleNone = "none"

const lineStyleBaseURL = "https://raw.githubusercontent.com/andreasbm/readme/master/assets/lines/"

var lineStyles = []string{
	"aqua", "cloudy", "colored", "crystal", "dark", "fire",
	"grass", "rainbow", "solar", "vintage", "water",
}

var (
	builtinLinesOnce     sync.Once
	builtinLinesRegistry *theme.MemoryRegistry
	builtinLinesErr      error
)

// LineStyles returns the built-in line style names, including LineStyleNone.
func LineStyles() []string {
	out := make([]string, 0, len(lineStyles)+1)
	out = append(out, lineStyles...)
	return append(out, LineStyleNone)
}

// LineTheme returns a fresh go-theme manifest describing the built-in
// separator styles. Each variant overrides LineToken; the manifest-level token
// is DefaultLineURL.
func LineTheme() *theme.Manifest {
	variants := make(map[string]theme.Variant, len(lineStyles)+1)
	for _, style := range lineStyles {
		variants[style] = theme.Variant{
			Tokens: map[string]string{LineToken: lineStyleBaseURL + style + ".png"},
		}
	}
	variants[LineStyleNone] = theme.Variant{
		Tokens: map[string]string{LineToken: LineDisabled},
	}

	return &theme.Manifest{
		Name:     LineThemeName,
		Version:  "1.0.0",
		Tokens:   map[string]string{LineToken: DefaultLineURL},
		Variants: variants,
	}
}

// LineRegistry returns the shared registry holding the built-in line theme.
func LineRegistry() (theme.ThemeProvider, error) {
	builtinLinesOnce.Do(func() {
		registry := theme.NewRegistry()
		if err := registry.Register(LineTheme()); err != nil {
			builtinLinesErr = fmt.Errorf("%w: %w", ErrInvalidLineTheme, err)
			return
		}
		builtinLinesRegistry = registry
	})
	if builtinLinesErr != nil {
		return nil, builtinLinesErr
	}
	return builtinLinesRegistry, nil
}

// resolveLineURL selects themeName/variant through selector and reads
// LineToken from the merged variant tokens. A theme without a line token falls
// back to DefaultLineURL; LineDisabled yields "".
func resolveLineURL(selector theme.ThemeSelector, themeName, variant string) (string, error) {
	if selector == nil {
		return DefaultLineURL, nil
	}

	selection, err := selector.Select(themeName, strings.TrimSpace(variant))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidLineTheme, err)
	}
	if selection == nil || selection.Manifest == nil {
		return "", fmt.Errorf("%w: no manifest selected for %q", ErrInvalidLineTheme, themeName)
	}

	if selection.Variant != "" {
		if _, ok := selection.Manifest.Variants[selection.Variant]; !ok {
			return "", fmt.Errorf("%w %q in theme %q", ErrUnknownLineStyle, selection.Variant, selection.Manifest.Name)
		}
	}

	url, ok := selection.Manifest.TokensForVariant(selection.Variant)[LineToken]
	switch {
	case !ok:
		return DefaultLineURL, nil
	case url == LineDisabled:
		return "", nil
	}
	return url, nil
}
