package template

import (
	"io"
)

// Keys under which Data exposes its parts to a layout.
const (
	SectionsKey = "sections"
	DocumentKey = "blueprint"
)

// FilterFunc transforms a value inside a template expression. param is nil
// when the filter is used without an argument.
type FilterFunc func(input any, param any) (any, error)

// ContextProvider is implemented by values that build their own template
// view. Engines use it instead of converting the value field by field.
type ContextProvider interface {
	TemplateContext() map[string]any
}

// Data is what a README layout executes against: rendered sections keyed by
// section name, and the document they were rendered from.
type Data struct {
	Sections map[string]string
	Document ContextProvider
}

// TemplateContext implements ContextProvider.
func (d Data) TemplateContext() map[string]any {
	sections := make(map[string]any, len(d.Sections))
	for name, rendered := range d.Sections {
		sections[name] = rendered
	}

	ctx := map[string]any{SectionsKey: sections}
	if d.Document != nil {
		ctx[DocumentKey] = d.Document.TemplateContext()
	}
	return ctx
}

// TemplateRenderer executes README layouts, either stored templates looked up
// by name or caller supplied template text. Output is returned and also
// written to every supplied writer.
type TemplateRenderer interface {
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(content string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn FilterFunc) error
	GlobalContext(data any) error
}
