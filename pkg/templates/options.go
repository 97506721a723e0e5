package templates

import (
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"
	"github.com/rs/zerolog"

	"github.com/goliatone/go-readme/pkg/config"
)

// LicenseResolver maps a license identifier to a URL.
type LicenseResolver func(id string) (string, error)

// Option configures a Library before construction.
type Option func(*settings)

type settings struct {
	cfg          config.Config
	logger       zerolog.Logger
	lineSelector theme.ThemeSelector
	lineTheme    string
	lineVariant  string
	lineErr      error
	resolver     LicenseResolver
}

// WithConfig replaces the default configuration.
func WithConfig(cfg config.Config) Option {
	return func(s *settings) {
		s.cfg = cfg.Clone()
	}
}

// WithLogger sets the logger used to report render failures. The default
// logger discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithLineStyle selects one of the built-in separator styles (see
// LineStyles). An empty name keeps the default line.
func WithLineStyle(name string) Option {
	return func(s *settings) {
		registry, err := LineRegistry()
		s.lineErr = err
		s.lineSelector = theme.Selector{Registry: registry, DefaultTheme: LineThemeName}
		s.lineTheme = LineThemeName
		s.lineVariant = strings.TrimSpace(name)
	}
}

// WithLineTheme resolves the separator line from a caller supplied go-theme
// manifest and variant. New validates the manifest and copies it into a
// private registry; changes made after New have no effect.
func WithLineTheme(manifest *theme.Manifest, variant string) Option {
	return func(s *settings) {
		if manifest == nil {
			return
		}
		registry := theme.NewRegistry()
		if err := registry.Register(manifest); err != nil {
			s.lineErr = fmt.Errorf("%w: %w", ErrInvalidLineTheme, err)
			return
		}
		s.lineErr = nil
		s.lineSelector = theme.Selector{Registry: registry, DefaultTheme: manifest.Name}
		s.lineTheme = manifest.Name
		s.lineVariant = strings.TrimSpace(variant)
	}
}

// WithLineSelector resolves the separator line through an existing theme
// selector, for callers that already keep a go-theme registry.
func WithLineSelector(selector theme.ThemeSelector, themeName, variant string) Option {
	return func(s *settings) {
		if selector == nil {
			return
		}
		s.lineErr = nil
		s.lineSelector = selector
		s.lineTheme = strings.TrimSpace(themeName)
		s.lineVariant = strings.TrimSpace(variant)
	}
}

// WithLicenseResolver overrides the license URL lookup. Resolvers must return
// an error rather than an empty URL for identifiers they do not recognise.
func WithLicenseResolver(resolver LicenseResolver) Option {
	return func(s *settings) {
		if resolver != nil {
			s.resolver = resolver
		}
	}
}
