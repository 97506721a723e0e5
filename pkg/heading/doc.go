// Package heading derives display text and intra-document anchor links from
// raw heading-marker strings such as "## Installation".
package heading
