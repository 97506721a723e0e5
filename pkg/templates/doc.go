// Package templates renders README building blocks (logo, titles, badges,
// description, bullets, table of contents, license and contributors) into
// Markdown/HTML fragments. Every Library method is a pure function of its input
// record and the Library's immutable configuration: the same input always
// yields the same fragment, and each fragment is independently embeddable.
// Composition of fragments into a document is left to the caller (see package
// blueprint for a ready-made composer).
package templates
