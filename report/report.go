// Package report renders plain-text summaries of composed site configs and
// of validation failures for terminal output.
package report

import (
	"fmt"
	"html/template"
	"sort"
	"strings"

	"github.com/HalfToothed/gostman-site/config"
	"github.com/gobuffalo/plush"
	"github.com/pkg/errors"
)

const summaryTemplate = `<%= title %> (<%= public %>)
  site:   <%= site %>
  base:   <%= base %>
  output: <%= out %>
head:
<%= for (i, h) in head { %>  <%= h.N %>. <%= h.Line %>
<% } %>social:
<%= for (i, s) in social { %>  <%= s.Line %>
<% } %>stylesheets:
<%= for (i, s) in stylesheets { %>  <%= s.N %>. <%= s.Line %>
<% } %>`

const violationsTemplate = `<%= count %> problem(s) in site config:
<%= for (i, v) in violations { %>  - [<%= v.Kind %>] <%= v.Field %>: <%= v.Message %>
<% } %>`

type line struct {
	N    int
	Line template.HTML
}

type violationLine struct {
	Kind    template.HTML
	Field   template.HTML
	Message template.HTML
}

// Summary describes cfg one setting per line.
func Summary(cfg config.SiteConfig) (string, error) {
	ctx := plush.NewContext()
	ctx.Set("title", raw(cfg.ThemeTitle()))
	ctx.Set("public", raw(cfg.PublicURL()))
	ctx.Set("site", raw(cfg.SiteURL()))
	ctx.Set("base", raw(cfg.BasePath()))
	ctx.Set("out", raw(cfg.OutputDir()))

	head := []line{}
	for i, d := range cfg.HeadTags() {
		head = append(head, line{N: i + 1, Line: raw(DescribeDirective(d))})
	}
	ctx.Set("head", head)

	links := cfg.SocialLinks()
	names := make([]string, 0, len(links))
	for name := range links {
		names = append(names, name)
	}
	sort.Strings(names)
	social := []line{}
	for _, name := range names {
		social = append(social, line{Line: raw(name + ": " + links[name])})
	}
	ctx.Set("social", social)

	sheets := []line{}
	for i, s := range cfg.CustomStylesheets() {
		sheets = append(sheets, line{N: i + 1, Line: raw(s)})
	}
	ctx.Set("stylesheets", sheets)

	return exec(summaryTemplate, ctx)
}

// Violations lists every violation in verr.
func Violations(verr *config.ValidationError) (string, error) {
	ctx := plush.NewContext()

	lines := []violationLine{}
	for _, v := range verr.Violations() {
		lines = append(lines, violationLine{
			Kind:    raw(string(v.Kind)),
			Field:   raw(v.Field),
			Message: raw(v.Message),
		})
	}
	ctx.Set("count", len(lines))
	ctx.Set("violations", lines)

	return exec(violationsTemplate, ctx)
}

// DescribeDirective formats a head directive as a single line, e.g.
// "link crossorigin href=https://fonts.gstatic.com rel=preconnect".
func DescribeDirective(d config.HeadDirective) string {
	parts := []string{d.Tag()}
	for _, a := range d.Attributes().Rendered() {
		if a.Boolean {
			parts = append(parts, a.Name)
			continue
		}
		parts = append(parts, a.Name+"="+a.Value)
	}

	if s, ok := d.(*config.ScriptDirective); ok && s.Content() != "" {
		parts = append(parts, fmt.Sprintf("(inline, %d bytes)", len(s.Content())))
	}

	return strings.Join(parts, " ")
}

func exec(source string, ctx *plush.Context) (string, error) {
	tmpl, err := plush.Parse(source)
	if err != nil {
		return "", errors.WithStack(err)
	}

	out, err := tmpl.Exec(ctx)
	if err != nil {
		return "", errors.WithStack(err)
	}
	return out, nil
}

// raw keeps plush from HTML-escaping terminal output.
func raw(s string) template.HTML {
	return template.HTML(s)
}
