package heading

import (
	"html"
	"strings"
	"sync"
	"unicode"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-readme/pkg/config"
)

const markerChars = "# "

var (
	markupPolicyOnce sync.Once
	markupPolicy     *bluemonday.Policy
)

// Level returns the number of leading '#' characters in raw, ignoring leading
// spaces.
func Level(raw string) int {
	trimmed := strings.TrimLeft(raw, " ")
	count := 0
	for count < len(trimmed) && trimmed[count] == '#' {
		count++
	}
	return count
}

// Depth returns the nesting depth used for table of contents indentation:
// Level minus one, never negative.
func Depth(raw string) int {
	return max(Level(raw)-1, 0)
}

// Strip removes every leading '#' and space from raw.
func Strip(raw string) string {
	return strings.TrimLeft(raw, markerChars)
}

// Clean strips heading markers and any HTML markup from raw, returning the
// semantic text with whitespace collapsed.
func Clean(raw string) string {
	stripped := strings.TrimSpace(Strip(raw))
	if stripped == "" {
		return ""
	}
	if strings.ContainsAny(stripped, "<>&") {
		stripped = html.UnescapeString(sanitizer().Sanitize(stripped))
	}
	return strings.Join(strings.Fields(stripped), " ")
}

// Title returns the display text for a section heading of the given level:
// the configured prefix followed by the cleaned title.
func Title(raw string, level int, cfg config.Config) string {
	return cfg.HeadingPrefix(level) + Clean(raw)
}

// Slug converts heading text into a GitHub-style anchor fragment. Letters,
// digits, '-' and '_' are kept (letters lower-cased), spaces become '-', and
// everything else is dropped. Consecutive dashes are preserved so the slug
// matches the anchor generated for the rendered heading.
func Slug(text string) string {
	var out strings.Builder
	out.Grow(len(text))

	for _, r := range strings.TrimSpace(text) {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), unicode.IsMark(r):
			out.WriteRune(unicode.ToLower(r))
		case r == '-', r == '_':
			out.WriteRune(r)
		case r == ' ':
			out.WriteByte('-')
		}
	}
	return out.String()
}

// Link derives the anchor link ("#slug") for a raw heading-marker string. The
// slug is computed from the same text Title renders so links resolve against
// headings emitted by the templates.
func Link(raw string, cfg config.Config) string {
	level := max(Level(raw), 1)
	return "#" + Slug(Title(raw, level, cfg))
}

func sanitizer() *bluemonday.Policy {
	markupPolicyOnce.Do(func() {
		markupPolicy = bluemonday.StrictPolicy()
	})
	return markupPolicy
}
