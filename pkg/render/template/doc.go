// Package template defines how README layouts are executed: the
// TemplateRenderer contract and the Data value a layout sees. The gotemplate
// subpackage provides the pongo2-backed implementation.
package template
