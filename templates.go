package readme

import (
	"io/fs"

	"github.com/goliatone/go-readme/pkg/blueprint"
)

// EmbeddedTemplates exposes the built-in blueprint layouts so callers can
// reuse or extend them without importing the blueprint package directly.
func EmbeddedTemplates() fs.FS {
	return blueprint.TemplatesFS()
}
