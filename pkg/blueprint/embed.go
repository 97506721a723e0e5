package blueprint

import (
	"embed"
	"io/fs"
)

// DefaultTemplate is the embedded layout used when Render receives no content.
const DefaultTemplate = "readme"

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded blueprint layouts so callers can copy or
// extend them.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return embeddedTemplates
	}
	return sub
}
