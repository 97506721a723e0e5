// Package blueprint composes template library fragments into a complete
// README. A Blueprint document (YAML or JSON) describes the project; every
// Section in a Registry renders one fragment from it, and the fragments are
// handed to a pongo2 template as the "sections" map alongside the raw
// "blueprint" data. Callers can supply their own template content or fall back
// to the embedded readme.tpl layout.
package blueprint
