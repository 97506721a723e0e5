package templates

import "strings"

// Logo defaults applied when the corresponding field is empty or blank.
const (
	DefaultLogoWidth  = "auto"
	DefaultLogoHeight = "auto"
	DefaultLogoAlt    = "Logo"
)

// Logo describes a centered image block.
type Logo struct {
	URL    string `json:"url" yaml:"url"`
	Width  string `json:"width,omitempty" yaml:"width,omitempty"`
	Height string `json:"height,omitempty" yaml:"height,omitempty"`
	Alt    string `json:"alt,omitempty" yaml:"alt,omitempty"`
}

func (l Logo) withDefaults() Logo {
	if strings.TrimSpace(l.Width) == "" {
		l.Width = DefaultLogoWidth
	}
	if strings.TrimSpace(l.Height) == "" {
		l.Height = DefaultLogoHeight
	}
	if strings.TrimSpace(l.Alt) == "" {
		l.Alt = DefaultLogoAlt
	}
	return l
}

// MainTitle is the centered level-1 document heading.
type MainTitle struct {
	Name string `json:"name" yaml:"name"`
}

// Title is a section heading. Level controls the number of '#' characters and
// whether the separator line precedes the heading (levels 1 and 2).
type Title struct {
	Title string `json:"title" yaml:"title"`
	Level int    `json:"level" yaml:"level"`
}

// Badge is a clickable status image.
type Badge struct {
	URL  string `json:"url" yaml:"url"`
	Text string `json:"text" yaml:"text"`
	Img  string `json:"img" yaml:"img"`
}

// Badges is an ordered badge row.
type Badges struct {
	Badges []Badge `json:"badges" yaml:"badges"`
}

// License names the license identifier to link.
type License struct {
	License string `json:"license" yaml:"license"`
}

// Demo is a link to a live demo.
type Demo struct {
	URL string `json:"url" yaml:"url"`
}

// Description is the centered project summary. Text and Demo are optional.
type Description struct {
	Description string `json:"description" yaml:"description"`
	Text        string `json:"text,omitempty" yaml:"text,omitempty"`
	Demo        string `json:"demo,omitempty" yaml:"demo,omitempty"`
}

// Bullets is an ordered bullet list.
type Bullets struct {
	Bullets []string `json:"bullets" yaml:"bullets"`
}

// TableOfContents lists heading-marker strings ("## Install") in document
// order.
type TableOfContents struct {
	Titles []string `json:"titles" yaml:"titles"`
}

// Contributor is a single credited person. Email is optional.
type Contributor struct {
	Name  string `json:"name" yaml:"name"`
	Email string `json:"email,omitempty" yaml:"email,omitempty"`
	URL   string `json:"url" yaml:"url"`
}

// Contributors is an ordered list of contributors.
type Contributors struct {
	Contributors []Contributor `json:"contributors" yaml:"contributors"`
}
