package config

import (
	"net/url"
	"sort"
	"strings"

	"github.com/HalfToothed/gostman-site/utils"
)

// AttrValue is a head element attribute value: either a string or a boolean.
type AttrValue struct {
	str    string
	flag   bool
	isBool bool
}

// String returns a string attribute value.
func String(s string) AttrValue { return AttrValue{str: s} }

// Bool returns a boolean attribute value. True renders as a bare attribute,
// false omits the attribute.
func Bool(b bool) AttrValue { return AttrValue{flag: b, isBool: true} }

func (v AttrValue) IsBool() bool { return v.isBool }

// Flag returns the boolean value. It is false for string values.
func (v AttrValue) Flag() bool { return v.isBool && v.flag }

// String returns the string value. It is empty for boolean values.
func (v AttrValue) String() string {
	if v.isBool {
		return ""
	}
	return v.str
}

// Interface returns the value as a plain string or bool.
func (v AttrValue) Interface() interface{} {
	if v.isBool {
		return v.flag
	}
	return v.str
}

// Attributes maps attribute names to values.
type Attributes map[string]AttrValue

func (a Attributes) clone() Attributes {
	if a == nil {
		return nil
	}
	out := make(Attributes, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Attr is one attribute as it should appear on the element.
type Attr struct {
	Name    string
	Value   string
	Boolean bool // present without a value
}

// Rendered lists the attributes in name order with false booleans dropped.
func (a Attributes) Rendered() []Attr {
	names := make([]string, 0, len(a))
	for name := range a {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]Attr, 0, len(names))
	for _, name := range names {
		v := a[name]
		if v.IsBool() {
			if v.Flag() {
				out = append(out, Attr{Name: name, Boolean: true})
			}
			continue
		}
		out = append(out, Attr{Name: name, Value: v.String()})
	}
	return out
}

// HeadDirective inserts one element into every generated page head.
// Implementations are *ElementDirective and *ScriptDirective.
type HeadDirective interface {
	Tag() string
	Attributes() Attributes
	isHeadDirective()
}

// ElementDirective is an empty element such as meta or link.
type ElementDirective struct {
	tag   string
	attrs Attributes
}

func (d *ElementDirective) Tag() string            { return d.tag }
func (d *ElementDirective) Attributes() Attributes { return d.attrs.clone() }
func (*ElementDirective) isHeadDirective()         {}

// ScriptDirective is a script element with an optional src and inline body.
type ScriptDirective struct {
	attrs   Attributes
	content string
}

func (d *ScriptDirective) Tag() string            { return "script" }
func (d *ScriptDirective) Attributes() Attributes { return d.attrs.clone() }
func (d *ScriptDirective) Content() string        { return d.content }
func (*ScriptDirective) isHeadDirective()         {}

// Src returns the external script URL, if any.
func (d *ScriptDirective) Src() (string, bool) {
	v, ok := d.attrs["src"]
	if !ok || v.IsBool() {
		return "", false
	}
	return v.String(), true
}

// SiteConfig is the validated site configuration handed to the site builder.
// It is never mutated after Compose returns it; accessors return copies.
type SiteConfig struct {
	siteURL           string
	basePath          string
	outputDir         string
	themeTitle        string
	headTags          []HeadDirective
	socialLinks       map[string]string
	customStylesheets []string
}

func (c SiteConfig) SiteURL() string    { return c.siteURL }
func (c SiteConfig) BasePath() string   { return c.basePath }
func (c SiteConfig) OutputDir() string  { return c.outputDir }
func (c SiteConfig) ThemeTitle() string { return c.themeTitle }

// HeadTags returns the head directives in emission order.
func (c SiteConfig) HeadTags() []HeadDirective {
	if c.headTags == nil {
		return nil
	}
	out := make([]HeadDirective, len(c.headTags))
	copy(out, c.headTags)
	return out
}

func (c SiteConfig) SocialLinks() map[string]string {
	out := make(map[string]string, len(c.socialLinks))
	for k, v := range c.socialLinks {
		out[k] = v
	}
	return out
}

// CustomStylesheets returns stylesheet paths in application order.
func (c SiteConfig) CustomStylesheets() []string {
	if c.customStylesheets == nil {
		return nil
	}
	out := make([]string, len(c.customStylesheets))
	copy(out, c.customStylesheets)
	return out
}

// IsZero reports whether c is the zero value, as returned alongside an error.
func (c SiteConfig) IsZero() bool {
	return c.siteURL == "" && c.basePath == "" && c.outputDir == "" && c.themeTitle == "" &&
		len(c.headTags) == 0 && len(c.socialLinks) == 0 && len(c.customStylesheets) == 0
}

// PublicURL is the site URL with the base path applied. A site URL whose
// path already ends in the base path is used as is.
func (c SiteConfig) PublicURL() string {
	if c.basePath != "/" {
		if u, err := url.Parse(c.siteURL); err == nil {
			sitePath := strings.TrimRight(u.Path, "/")
			if strings.HasSuffix(sitePath, c.basePath) {
				return utils.JoinURL(c.siteURL)
			}
		}
	}
	return utils.JoinURL(c.siteURL, c.basePath)
}

// CanonicalURL returns the absolute URL of a page path under the base path.
func (c SiteConfig) CanonicalURL(page string) string {
	return utils.JoinURL(c.PublicURL(), page)
}

// Equal reports whether two configs hold the same values.
func (c SiteConfig) Equal(o SiteConfig) bool {
	if c.siteURL != o.siteURL || c.basePath != o.basePath || c.outputDir != o.outputDir || c.themeTitle != o.themeTitle {
		return false
	}
	if len(c.headTags) != len(o.headTags) || len(c.socialLinks) != len(o.socialLinks) || len(c.customStylesheets) != len(o.customStylesheets) {
		return false
	}
	for i := range c.headTags {
		if !directiveEqual(c.headTags[i], o.headTags[i]) {
			return false
		}
	}
	for k, v := range c.socialLinks {
		if ov, ok := o.socialLinks[k]; !ok || ov != v {
			return false
		}
	}
	for i := range c.customStylesheets {
		if c.customStylesheets[i] != o.customStylesheets[i] {
			return false
		}
	}
	return true
}

func directiveEqual(a, b HeadDirective) bool {
	if a.Tag() != b.Tag() {
		return false
	}
	switch da := a.(type) {
	case *ScriptDirective:
		db, ok := b.(*ScriptDirective)
		if !ok || da.content != db.content {
			return false
		}
		return attrsEqual(da.attrs, db.attrs)
	case *ElementDirective:
		db, ok := b.(*ElementDirective)
		if !ok {
			return false
		}
		return attrsEqual(da.attrs, db.attrs)
	}
	return false
}

func attrsEqual(a, b Attributes) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if ov, ok := b[k]; !ok || ov != v {
			return false
		}
	}
	return true
}
