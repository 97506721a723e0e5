package config

import (
	"errors"
	"fmt"
)

// Default values applied by Default and New.
const (
	DefaultLineBreak = "\n"
	DefaultTab       = "\t"
	DefaultPrefix    = "➤ "
)

// ErrEmptyLineBreak is returned by Validate when the line-break sequence is
// blank.
var ErrEmptyLineBreak = errors.New("config: line break is required")

// Config is the set of process-wide constants consumed by the templates.
type Config struct {
	// LineBreak joins the lines of every multi-line block.
	LineBreak string
	// Tab is repeated once per nesting level in the table of contents.
	Tab string
	// HeadingPrefixes maps a heading level to the text emitted before the
	// title. Levels without an entry get no prefix.
	HeadingPrefixes map[int]string
}

// Option mutates a Config while it is being built.
type Option func(*Config)

// WithLineBreak overrides the line-break sequence. Empty values are ignored.
func WithLineBreak(lineBreak string) Option {
	return func(cfg *Config) {
		if lineBreak != "" {
			cfg.LineBreak = lineBreak
		}
	}
}

// WithTab overrides the indentation unit.
func WithTab(tab string) Option {
	return func(cfg *Config) {
		cfg.Tab = tab
	}
}

// WithHeadingPrefix sets the prefix for a single heading level. An empty
// prefix removes the level's entry.
func WithHeadingPrefix(level int, prefix string) Option {
	return func(cfg *Config) {
		if level < 1 {
			return
		}
		if prefix == "" {
			delete(cfg.HeadingPrefixes, level)
			return
		}
		cfg.HeadingPrefixes[level] = prefix
	}
}

// WithoutHeadingPrefixes drops every heading prefix, including the defaults.
func WithoutHeadingPrefixes() Option {
	return func(cfg *Config) {
		cfg.HeadingPrefixes = map[int]string{}
	}
}

// Default returns the stock configuration: "\n" line breaks, "\t" tabs and a
// "➤ " prefix on level 1 and 2 headings.
func Default() Config {
	return Config{
		LineBreak: DefaultLineBreak,
		Tab:       DefaultTab,
		HeadingPrefixes: map[int]string{
			1: DefaultPrefix,
			2: DefaultPrefix,
		},
	}
}

// New builds a Config starting from Default and applying options in order.
func New(options ...Option) Config {
	cfg := Default()
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}

// HeadingPrefix returns the prefix configured for level, or "".
func (c Config) HeadingPrefix(level int) string {
	if c.HeadingPrefixes == nil {
		return ""
	}
	return c.HeadingPrefixes[level]
}

// Validate reports configuration that would produce ambiguous output.
func (c Config) Validate() error {
	if c.LineBreak == "" {
		return ErrEmptyLineBreak
	}
	for level := range c.HeadingPrefixes {
		if level < 1 {
			return fmt.Errorf("config: heading prefix level %d must be >= 1", level)
		}
	}
	return nil
}

// Clone returns a copy whose prefix map is not shared with c.
func (c Config) Clone() Config {
	out := c
	if c.HeadingPrefixes != nil {
		out.HeadingPrefixes = make(map[int]string, len(c.HeadingPrefixes))
		for level, prefix := range c.HeadingPrefixes {
			out.HeadingPrefixes[level] = prefix
		}
	}
	return out
}
