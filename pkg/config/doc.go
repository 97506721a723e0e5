// Package config holds the immutable rendering configuration shared by the
// template library and its helpers: the line-break sequence used to join
// multi-line blocks, the tab unit used for nested list indentation, and the
// per-level heading prefixes applied to section titles. Build a Config once at
// process start and pass it by value; nothing in this module mutates it.
package config
