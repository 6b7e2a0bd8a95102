package config

import (
	"sort"

	"github.com/walteh/pagechrome/pkg/templates"
	"gitlab.com/tozd/go/errors"
)

// Profile names
const (
	ProfileChrome = "chrome" // header and footer, bounded by their tags
	ProfileHeader = "header" // header only, anchored at its marker comment

	DefaultProfile = ProfileChrome
)

// HeaderMarker precedes the header block in pages handled by ProfileHeader.
const HeaderMarker = "<!-- Header -->"

var profiles = map[string]func() *Config{
	ProfileChrome: func() *Config {
		return &Config{
			Profile: ProfileChrome,
			RootFiles: []string{
				"index.html",
				"dough-for-baking.html",
				"tisto-dlya-pelmeniv.html",
				"ready-to-cook.html",
				"pasta.html",
				"frozen.html",
				"ravioli.html",
				"faq.html",
				"recipes.html",
			},
			Subdirs:        []string{"recipe_details", "product_pages"},
			TemplateSource: "contact.html",
			Blocks: []Block{
				{Tag: "header", Template: templates.Header},
				{Tag: "footer", Template: templates.Footer},
			},
		}
	},
	ProfileHeader: func() *Config {
		reportNotFound := true
		return &Config{
			Profile:        ProfileHeader,
			RootGlob:       "*.html",
			Subdirs:        []string{"product_pages", "recipe_details"},
			TemplateSource: "contact.html",
			ReportNotFound: &reportNotFound,
			Blocks: []Block{
				{Tag: "header", Marker: HeaderMarker, Template: templates.MarkedHeader},
			},
		}
	},
}

// Profile returns a fresh copy of the named profile.
func Profile(name string) (*Config, error) {
	build, ok := profiles[name]
	if !ok {
		return nil, errors.Errorf("unknown profile %q (available: %v)", name, Profiles())
	}
	return build(), nil
}

// Profiles lists the profile names in sorted order.
func Profiles() []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// mergeOnto overlays every field set in override onto base.
func mergeOnto(base, override *Config) *Config {
	merged := *base
	merged.location = override.location
	if override.BaseDir != "" {
		merged.BaseDir = override.BaseDir
	}
	if len(override.RootFiles) > 0 {
		merged.RootFiles = override.RootFiles
	}
	if override.RootGlob != "" {
		merged.RootGlob = override.RootGlob
	}
	if len(override.Subdirs) > 0 {
		merged.Subdirs = override.Subdirs
	}
	if len(override.Exclude) > 0 {
		merged.Exclude = override.Exclude
	}
	if override.TemplateSource != "" {
		merged.TemplateSource = override.TemplateSource
	}
	if override.ReportNotFound != nil {
		merged.ReportNotFound = override.ReportNotFound
	}
	if len(override.Blocks) > 0 {
		merged.Blocks = override.Blocks
	}
	return &merged
}
