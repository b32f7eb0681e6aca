package config

import "github.com/HalfToothed/gostman-site/utils"

const (
	gostmanSite = "https://halftoothed.github.io"
	gostmanBase = "/gostman"

	analyticsLoader = "https://cdn.jsdelivr.net/npm/@minimal-analytics/ga4/dist/index.js"
	analyticsID     = "G-WFLBCRZ7MC"
)

// Gostman returns the input for the Gostman documentation site.
func Gostman() RawConfigInput {
	ogImage := utils.JoinURL(gostmanSite, gostmanBase, "og.jpg?v=1")

	return RawConfigInput{
		SiteURL:    gostmanSite,
		BasePath:   gostmanBase,
		OutputDir:  "./dist",
		ThemeTitle: "Gostman",
		HeadDirectives: []RawHeadDirective{
			{Tag: "meta", Attrs: map[string]interface{}{"property": "og:image", "content": ogImage}},
			{Tag: "meta", Attrs: map[string]interface{}{"property": "twitter:image", "content": ogImage}},
			{Tag: "link", Attrs: map[string]interface{}{"rel": "preconnect", "href": "https://fonts.googleapis.com"}},
			{Tag: "link", Attrs: map[string]interface{}{"rel": "preconnect", "href": "https://fonts.gstatic.com", "crossorigin": true}},
			{Tag: "link", Attrs: map[string]interface{}{
				"rel":  "stylesheet",
				"href": "https://fonts.googleapis.com/css2?family=IBM+Plex+Mono:wght@500;600&display=swap",
			}},
			{Tag: "script", Attrs: map[string]interface{}{"src": analyticsLoader, "async": true}},
			// settings read by the loader above
			{Tag: "script", Content: "window.minimalAnalytics = {\n  trackingId: '" + analyticsID + "',\n  autoTrack: true,\n};"},
		},
		SocialLinks: map[string]string{
			"github": "https://github.com/HalfToothed/gostman",
		},
		CustomStylesheets: []string{"./src/styles/custom.css"},
	}
}
