package config

import (
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"unicode"
)

// RawConfigInput is the unvalidated input to Compose.
type RawConfigInput struct {
	SiteURL           string
	BasePath          string
	OutputDir         string
	ThemeTitle        string
	HeadDirectives    []RawHeadDirective
	SocialLinks       map[string]string
	CustomStylesheets []string
}

// RawHeadDirective describes one head element before validation. A Tag of
// "script" yields a ScriptDirective; anything else an ElementDirective.
// Attribute values must be strings or bools.
type RawHeadDirective struct {
	Tag     string
	Attrs   map[string]interface{}
	Content string
}

var (
	tagNamePattern   = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9-]*$`)
	socialKeyPattern = regexp.MustCompile(`^[a-z][a-z0-9_-]*$`)
	drivePattern     = regexp.MustCompile(`^[A-Za-z]:([\\/]|$)`)
)

// Compose validates in and builds the immutable SiteConfig.
//
// Validation runs class by class (site URL, base path, output dir, title,
// head directives, social links, stylesheets). Every violation of a class is
// reported, and composition stops after the first class that has any. On
// failure the returned SiteConfig is the zero value and the error is a
// *ValidationError.
func Compose(in RawConfigInput) (SiteConfig, error) {
	var cfg SiteConfig

	steps := []func(RawConfigInput, *SiteConfig) error{
		checkSiteURL,
		checkBasePath,
		checkOutputDir,
		checkTitle,
		checkHeadDirectives,
		checkSocialLinks,
		checkStylesheets,
	}
	for _, step := range steps {
		if err := step(in, &cfg); err != nil {
			return SiteConfig{}, err
		}
	}

	return cfg, nil
}

func checkSiteURL(in RawConfigInput, cfg *SiteConfig) error {
	c := &collector{kind: InvalidSiteURL}
	raw := strings.TrimSpace(in.SiteURL)

	switch u, err := url.Parse(raw); {
	case raw == "":
		c.add("site", "URL cannot be empty", in.SiteURL)
	case err != nil:
		c.add("site", fmt.Sprintf("invalid URL: %v", err), in.SiteURL)
	case !u.IsAbs():
		c.add("site", "URL must be absolute", in.SiteURL)
	case u.Scheme != "https":
		c.add("site", fmt.Sprintf("unsupported URL scheme %q (must be https)", u.Scheme), in.SiteURL)
	case u.Host == "":
		c.add("site", "URL must have a host", in.SiteURL)
	}

	cfg.siteURL = raw
	return c.err()
}

func checkBasePath(in RawConfigInput, cfg *SiteConfig) error {
	c := &collector{kind: InvalidBasePath}
	base := in.BasePath

	if !strings.HasPrefix(base, "/") {
		c.add("base", "path must start with /", in.BasePath)
		return c.err()
	}
	if base != "/" {
		base = strings.TrimSuffix(base, "/")
		if base == "" {
			base = "/"
		}
	}
	if base != "/" && strings.HasSuffix(base, "/") {
		c.add("base", "path must not end with more than one /", in.BasePath)
	}
	if strings.ContainsAny(base, "?#") {
		c.add("base", "path must not contain a query or fragment", in.BasePath)
	}
	if strings.IndexFunc(base, unicode.IsSpace) >= 0 || hasControl(base) {
		c.add("base", "path must not contain whitespace or control characters", in.BasePath)
	}

	cfg.basePath = base
	return c.err()
}

func checkOutputDir(in RawConfigInput, cfg *SiteConfig) error {
	c := &collector{kind: InvalidOutputDir}
	dir := in.OutputDir

	if strings.TrimSpace(dir) == "" {
		c.add("out_dir", "directory cannot be empty", dir)
		return c.err()
	}
	if isAbsolute(dir) {
		c.add("out_dir", "directory must be relative", dir)
	}
	if hasControl(dir) {
		c.add("out_dir", "directory must not contain control characters", dir)
	}
	if hasParentSegment(dir) {
		c.add("out_dir", "directory must not contain .. segments", dir)
	}

	cfg.outputDir = dir
	return c.err()
}

func checkTitle(in RawConfigInput, cfg *SiteConfig) error {
	c := &collector{kind: InvalidTitle}
	title := strings.TrimSpace(in.ThemeTitle)
	if title == "" {
		c.add("title", "title cannot be empty", in.ThemeTitle)
	}

	cfg.themeTitle = title
	return c.err()
}

func checkHeadDirectives(in RawConfigInput, cfg *SiteConfig) error {
	c := &collector{kind: InvalidHeadDirective}
	var tags []HeadDirective

	for i, raw := range in.HeadDirectives {
		field := fmt.Sprintf("head[%d]", i)
		before := len(c.violations)

		if raw.Tag == "" {
			c.add(field+".tag", "tag cannot be empty", raw.Tag)
		} else if !tagNamePattern.MatchString(raw.Tag) {
			c.add(field+".tag", "tag is not a valid element name", raw.Tag)
		}

		attrs := make(Attributes, len(raw.Attrs))
		for name, value := range raw.Attrs {
			if strings.TrimSpace(name) == "" {
				c.add(field+".attrs", "attribute name cannot be empty", name)
				continue
			}
			switch v := value.(type) {
			case string:
				attrs[name] = String(v)
			case bool:
				attrs[name] = Bool(v)
			default:
				c.add(field+".attrs."+name, fmt.Sprintf("attribute value must be a string or bool, got %T", value), value)
			}
		}

		if strings.EqualFold(raw.Tag, "script") {
			src, hasSrc := raw.Attrs["src"]
			if hasSrc {
				if s, ok := src.(string); !ok || strings.TrimSpace(s) == "" {
					c.add(field+".attrs.src", "script src must be a non-empty string", src)
				}
			}
			if !hasSrc && raw.Content == "" {
				c.add(field, "script needs a src attribute or inline content", nil)
			}
		} else if raw.Content != "" {
			c.add(field+".content", fmt.Sprintf("%s elements cannot carry content", raw.Tag), raw.Content)
		}

		if len(c.violations) > before {
			continue
		}
		if strings.EqualFold(raw.Tag, "script") {
			tags = append(tags, &ScriptDirective{attrs: attrs, content: raw.Content})
		} else {
			tags = append(tags, &ElementDirective{tag: raw.Tag, attrs: attrs})
		}
	}

	// Attribute names come out of a map; sort per directive so the
	// violation list does not depend on iteration order.
	sortViolationsWithinDirective(c.violations)

	cfg.headTags = tags
	return c.err()
}

func checkSocialLinks(in RawConfigInput, cfg *SiteConfig) error {
	c := &collector{kind: InvalidSocialLink}

	keys := make([]string, 0, len(in.SocialLinks))
	for k := range in.SocialLinks {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	links := make(map[string]string, len(keys))
	seen := make(map[string]string, len(keys))
	for _, key := range keys {
		field := "social." + key
		value := in.SocialLinks[key]

		if key == "" {
			c.add("social", "platform identifier cannot be empty", key)
		} else if !socialKeyPattern.MatchString(key) {
			c.add(field, "platform identifier must be a lowercase identifier", key)
		}

		folded := strings.ToLower(key)
		if prev, ok := seen[folded]; ok {
			c.add(field, fmt.Sprintf("duplicate platform identifier (collides with %q)", prev), key)
		} else {
			seen[folded] = key
		}

		u, err := url.Parse(value)
		switch {
		case strings.TrimSpace(value) == "":
			c.add(field, "profile URL cannot be empty", value)
		case err != nil:
			c.add(field, fmt.Sprintf("invalid URL: %v", err), value)
		case !u.IsAbs():
			c.add(field, "profile URL must be absolute", value)
		case (u.Scheme == "http" || u.Scheme == "https") && u.Host == "":
			c.add(field, "profile URL must have a host", value)
		}

		links[key] = value
	}

	cfg.socialLinks = links
	return c.err()
}

func checkStylesheets(in RawConfigInput, cfg *SiteConfig) error {
	c := &collector{kind: InvalidStylesheetPath}
	var sheets []string

	for i, p := range in.CustomStylesheets {
		field := fmt.Sprintf("custom_css[%d]", i)
		switch {
		case strings.TrimSpace(p) == "":
			c.add(field, "path cannot be empty", p)
		case isAbsolute(p):
			c.add(field, "path must be relative", p)
		default:
			sheets = append(sheets, p)
		}
	}

	cfg.customStylesheets = sheets
	return c.err()
}

func isAbsolute(p string) bool {
	return path.IsAbs(p) || filepath.IsAbs(p) || strings.HasPrefix(p, `\`) || drivePattern.MatchString(p)
}

func hasControl(s string) bool {
	return strings.IndexFunc(s, unicode.IsControl) >= 0
}

func hasParentSegment(p string) bool {
	segments := strings.FieldsFunc(p, func(r rune) bool { return r == '/' || r == '\\' })
	for _, s := range segments {
		if s == ".." {
			return true
		}
	}
	return false
}

// sortViolationsWithinDirective orders violations by field while keeping
// directives in input order.
func sortViolationsWithinDirective(vs []Violation) {
	index := func(field string) int {
		var i int
		_, _ = fmt.Sscanf(field, "head[%d]", &i)
		return i
	}
	sort.SliceStable(vs, func(a, b int) bool {
		ia, ib := index(vs[a].Field), index(vs[b].Field)
		if ia != ib {
			return ia < ib
		}
		return vs[a].Field < vs[b].Field
	})
}
