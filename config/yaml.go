package config

// config/yaml.go

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

type HeadEntry struct {
	Tag     string                 `yaml:"tag" json:"tag"`
	Attrs   map[string]interface{} `yaml:"attrs,omitempty" json:"attrs,omitempty"`
	Content string                 `yaml:"content,omitempty" json:"content,omitempty"`
}

// Manifest is the on-disk form of a site configuration.
type Manifest struct {
	Site      string            `yaml:"site" json:"site"`
	Base      string            `yaml:"base" json:"base"`
	OutDir    string            `yaml:"out_dir" json:"out_dir"`
	Title     string            `yaml:"title" json:"title"`
	Head      []HeadEntry       `yaml:"head,omitempty" json:"head,omitempty"`
	Social    map[string]string `yaml:"social,omitempty" json:"social,omitempty"`
	CustomCSS []string          `yaml:"custom_css,omitempty" json:"custom_css,omitempty"`
}

// ParseManifest decodes a YAML manifest. Unknown keys are an error.
func ParseManifest(data []byte) (Manifest, error) {
	var manifest Manifest
	err := yaml.UnmarshalStrict(data, &manifest)
	if err != nil {
		return Manifest{}, errors.Wrap(err, "error parsing manifest")
	}

	return manifest, nil
}

func LoadManifest(filename string) (Manifest, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Manifest{}, errors.WithStack(err)
	}

	manifest, err := ParseManifest(data)
	if err != nil {
		return Manifest{}, errors.Wrapf(err, "loading %s", filename)
	}

	return manifest, nil
}

// Load reads the manifest at filename and composes it. Decode failures are
// wrapped errors; validation failures are a *ValidationError.
func Load(filename string) (SiteConfig, error) {
	manifest, err := LoadManifest(filename)
	if err != nil {
		return SiteConfig{}, err
	}
	return Compose(manifest.Input())
}

// Input converts the manifest into composer input.
func (m Manifest) Input() RawConfigInput {
	in := RawConfigInput{
		SiteURL:           m.Site,
		BasePath:          m.Base,
		OutputDir:         m.OutDir,
		ThemeTitle:        m.Title,
		SocialLinks:       m.Social,
		CustomStylesheets: m.CustomCSS,
	}
	for _, h := range m.Head {
		in.HeadDirectives = append(in.HeadDirectives, RawHeadDirective{
			Tag:     h.Tag,
			Attrs:   h.Attrs,
			Content: h.Content,
		})
	}
	return in
}

// ManifestFromInput is the inverse of Manifest.Input.
func ManifestFromInput(in RawConfigInput) Manifest {
	m := Manifest{
		Site:      in.SiteURL,
		Base:      in.BasePath,
		OutDir:    in.OutputDir,
		Title:     in.ThemeTitle,
		Social:    in.SocialLinks,
		CustomCSS: in.CustomStylesheets,
	}
	for _, d := range in.HeadDirectives {
		m.Head = append(m.Head, HeadEntry{Tag: d.Tag, Attrs: d.Attrs, Content: d.Content})
	}
	return m
}

// ManifestFor renders a composed config back into manifest form.
func ManifestFor(cfg SiteConfig) Manifest {
	m := Manifest{
		Site:      cfg.SiteURL(),
		Base:      cfg.BasePath(),
		OutDir:    cfg.OutputDir(),
		Title:     cfg.ThemeTitle(),
		CustomCSS: cfg.CustomStylesheets(),
	}
	if links := cfg.SocialLinks(); len(links) > 0 {
		m.Social = links
	}

	for _, d := range cfg.HeadTags() {
		entry := HeadEntry{Tag: d.Tag()}
		if attrs := d.Attributes(); len(attrs) > 0 {
			entry.Attrs = make(map[string]interface{}, len(attrs))
			for name, v := range attrs {
				entry.Attrs[name] = v.Interface()
			}
		}
		if s, ok := d.(*ScriptDirective); ok {
			entry.Content = s.Content()
		}
		m.Head = append(m.Head, entry)
	}

	return m
}

// Encode marshals the manifest to YAML.
func (m Manifest) Encode() ([]byte, error) {
	out, err := yaml.Marshal(m)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return out, nil
}

// EncodeManifest writes cfg as YAML for the site builder.
func EncodeManifest(cfg SiteConfig) ([]byte, error) {
	return ManifestFor(cfg).Encode()
}
