// Package license resolves SPDX license identifiers to canonical URLs.
package license

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

const baseURL = "https://opensource.org/licenses/"

// ErrUnknown is returned when an identifier is not in the license table.
var ErrUnknown = errors.New("license: unknown identifier")

// Info describes a recognised license.
type Info struct {
	ID   string
	Name string
	URL  string
}

var table = buildTable([]Info{
	{ID: "0BSD", Name: "BSD Zero Clause License"},
	{ID: "AFL-3.0", Name: "Academic Free License 3.0"},
	{ID: "AGPL-3.0", Name: "GNU Affero General Public License v3.0"},
	{ID: "Apache-2.0", Name: "Apache License 2.0"},
	{ID: "Artistic-2.0", Name: "Artistic License 2.0"},
	{ID: "BSD-2-Clause", Name: "BSD 2-Clause \"Simplified\" License"},
	{ID: "BSD-3-Clause", Name: "BSD 3-Clause \"New\" or \"Revised\" License"},
	{ID: "BSL-1.0", Name: "Boost Software License 1.0"},
	{ID: "CDDL-1.0", Name: "Common Development and Distribution License 1.0"},
	{ID: "EPL-1.0", Name: "Eclipse Public License 1.0"},
	{ID: "EPL-2.0", Name: "Eclipse Public License 2.0"},
	{ID: "EUPL-1.2", Name: "European Union Public License 1.2"},
	{ID: "GPL-2.0", Name: "GNU General Public License v2.0"},
	{ID: "GPL-3.0", Name: "GNU General Public License v3.0"},
	{ID: "ISC", Name: "ISC License"},
	{ID: "LGPL-2.1", Name: "GNU Lesser General Public License v2.1"},
	{ID: "LGPL-3.0", Name: "GNU Lesser General Public License v3.0"},
	{ID: "MIT", Name: "MIT License"},
	{ID: "MPL-2.0", Name: "Mozilla Public License 2.0"},
	{ID: "MS-PL", Name: "Microsoft Public License"},
	{ID: "MS-RL", Name: "Microsoft Reciprocal License"},
	{ID: "NCSA", Name: "University of Illinois/NCSA Open Source License"},
	{ID: "OFL-1.1", Name: "SIL Open Font License 1.1"},
	{ID: "OSL-3.0", Name: "Open Software License 3.0"},
	{ID: "PostgreSQL", Name: "PostgreSQL License"},
	{ID: "UPL-1.0", Name: "Universal Permissive License v1.0"},
	{ID: "Unlicense", Name: "The Unlicense"},
	{ID: "Zlib", Name: "zlib License"},
})

func buildTable(entries []Info) map[string]Info {
	out := make(map[string]Info, len(entries))
	for _, entry := range entries {
		entry.URL = baseURL + entry.ID
		out[normalize(entry.ID)] = entry
	}
	return out
}

func normalize(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

// Lookup finds a license by identifier, ignoring case and surrounding
// whitespace.
func Lookup(id string) (Info, bool) {
	info, ok := table[normalize(id)]
	return info, ok
}

// URL returns the canonical URL for id. Unknown identifiers return an error
// wrapping ErrUnknown; the URL is never empty on success.
func URL(id string) (string, error) {
	if strings.TrimSpace(id) == "" {
		return "", fmt.Errorf("%w: empty identifier", ErrUnknown)
	}
	info, ok := Lookup(id)
	if !ok {
		return "", fmt.Errorf("%w %q", ErrUnknown, id)
	}
	return info.URL, nil
}

// Known returns the canonical identifiers of every recognised license, sorted.
func Known() []string {
	ids := make([]string, 0, len(table))
	for _, info := range table {
		ids = append(ids, info.ID)
	}
	sort.Strings(ids)
	return ids
}
