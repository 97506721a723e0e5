package config_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-readme/pkg/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()

	want := config.Config{
		LineBreak:       "\n",
		Tab:             "\t",
		HeadingPrefixes: map[int]string{1: "➤ ", 2: "➤ "},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("default config mismatch (-want +got):\n%s", diff)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestNew_AppliesOptionsInOrder(t *testing.T) {
	cfg := config.New(
		config.WithLineBreak("\r\n"),
		config.WithTab("  "),
		config.WithHeadingPrefix(2, ""),
		config.WithHeadingPrefix(3, "- "),
		nil,
	)

	want := config.Config{
		LineBreak:       "\r\n",
		Tab:             "  ",
		HeadingPrefixes: map[int]string{1: "➤ ", 3: "- "},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestNew_IgnoresEmptyLineBreak(t *testing.T) {
	cfg := config.New(config.WithLineBreak(""))
	if cfg.LineBreak != config.DefaultLineBreak {
		t.Fatalf("expected default line break, got %q", cfg.LineBreak)
	}
}

func TestWithoutHeadingPrefixes(t *testing.T) {
	cfg := config.New(config.WithoutHeadingPrefixes())
	for level := 1; level <= 6; level++ {
		if got := cfg.HeadingPrefix(level); got != "" {
			t.Fatalf("level %d: expected no prefix, got %q", level, got)
		}
	}
}

func TestValidate(t *testing.T) {
	if err := (config.Config{}).Validate(); !errors.Is(err, config.ErrEmptyLineBreak) {
		t.Fatalf("expected ErrEmptyLineBreak, got %v", err)
	}

	cfg := config.Default()
	cfg.HeadingPrefixes[0] = "x"
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for level 0 prefix")
	}
}

func TestClone_DoesNotSharePrefixes(t *testing.T) {
	original := config.Default()
	clone := original.Clone()
	clone.HeadingPrefixes[1] = "changed"

	if original.HeadingPrefix(1) != config.DefaultPrefix {
		t.Fatalf("clone mutated original prefixes")
	}
}
