package templates_test

import (
	"path/filepath"
	"testing"

	"github.com/goliatone/go-readme/pkg/templates"
	"github.com/goliatone/go-readme/pkg/testsupport"
)

type projectFixture struct {
	Name         string                  `yaml:"name"`
	Logo         templates.Logo          `yaml:"logo"`
	Badges       []templates.Badge       `yaml:"badges"`
	Description  templates.Description   `yaml:"description"`
	Bullets      []string                `yaml:"bullets"`
	Titles       []string                `yaml:"titles"`
	License      string                  `yaml:"license"`
	Contributors []templates.Contributor `yaml:"contributors"`
}

func TestLibrary_Goldens(t *testing.T) {
	var project projectFixture
	testsupport.MustLoadYAML(t, filepath.Join("testdata", "project.yaml"), &project)

	lib := templates.MustNew()

	cases := []struct {
		golden string
		render func() (string, error)
	}{
		{"logo.golden", func() (string, error) { return lib.Logo(project.Logo) }},
		{"main_title.golden", func() (string, error) { return lib.MainTitle(templates.MainTitle{Name: project.Name}) }},
		{"title.golden", func() (string, error) {
			return lib.Title(templates.Title{Title: "Installation", Level: 2})
		}},
		{"badges.golden", func() (string, error) { return lib.Badges(templates.Badges{Badges: project.Badges}) }},
		{"description.golden", func() (string, error) { return lib.Description(project.Description) }},
		{"bullets.golden", func() (string, error) {
			return lib.Bullets(templates.Bullets{Bullets: project.Bullets}), nil
		}},
		{"toc.golden", func() (string, error) {
			return lib.TableOfContents(templates.TableOfContents{Titles: project.Titles})
		}},
		{"license.golden", func() (string, error) { return lib.License(templates.License{License: project.License}) }},
		{"contributors.golden", func() (string, error) {
			return lib.Contributors(templates.Contributors{Contributors: project.Contributors})
		}},
	}

	for _, tc := range cases {
		t.Run(tc.golden, func(t *testing.T) {
			got, err := tc.render()
			if err != nil {
				t.Fatalf("render: %v", err)
			}
			testsupport.AssertGolden(t, filepath.Join("testdata", tc.golden), got)
		})
	}
}
