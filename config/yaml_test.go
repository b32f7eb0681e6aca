package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const gostmanManifest = `
site: https://halftoothed.github.io
base: /gostman/
out_dir: ./dist
title: Gostman
head:
  - tag: meta
    attrs:
      property: og:image
      content: https://halftoothed.github.io/gostman/og.jpg?v=1
  - tag: link
    attrs:
      rel: preconnect
      href: https://fonts.gstatic.com
      crossorigin: true
  - tag: script
    attrs:
      src: https://cdn.jsdelivr.net/npm/@minimal-analytics/ga4/dist/index.js
      async: true
  - tag: script
    content: |
      window.minimalAnalytics = { trackingId: 'G-WFLBCRZ7MC', autoTrack: true };
social:
  github: https://github.com/HalfToothed/gostman
custom_css:
  - ./src/styles/custom.css
`

func TestLoad_ValidManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte(gostmanManifest), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/gostman", cfg.BasePath())
	assert.Equal(t, "Gostman", cfg.ThemeTitle())

	head := cfg.HeadTags()
	require.Len(t, head, 4)
	assert.Equal(t, Bool(true), head[1].Attributes()["crossorigin"])

	loader, ok := head[2].(*ScriptDirective)
	require.True(t, ok)
	src, ok := loader.Src()
	assert.True(t, ok)
	assert.Equal(t, "https://cdn.jsdelivr.net/npm/@minimal-analytics/ga4/dist/index.js", src)

	inline, ok := head[3].(*ScriptDirective)
	require.True(t, ok)
	_, ok = inline.Src()
	assert.False(t, ok)
	assert.Contains(t, inline.Content(), "G-WFLBCRZ7MC")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(errors.Cause(err)))
}

func TestParseManifest_UnknownKey(t *testing.T) {
	_, err := ParseManifest([]byte("site: https://example.com\ntheme: starlight\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error parsing manifest")
}

func TestLoad_ValidationErrorIsNotWrapped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte("site: ftp://example.com\nbase: /\nout_dir: dist\ntitle: x\n"), 0600))

	_, err := Load(path)
	verr, ok := err.(*ValidationError)
	require.True(t, ok, "expected *ValidationError, got %T", err)
	assert.Equal(t, []Kind{InvalidSiteURL}, verr.Kinds())
}

func TestParseManifest_NonScalarAttribute(t *testing.T) {
	m, err := ParseManifest([]byte(`
site: https://example.com
base: /
out_dir: dist
title: Docs
head:
  - tag: meta
    attrs:
      content: [a, b]
`))
	require.NoError(t, err)

	_, err = Compose(m.Input())
	assert.True(t, requireViolations(t, err).Has(InvalidHeadDirective))
}

func TestEncodeManifest_RoundTrip(t *testing.T) {
	cfg, err := Compose(Gostman())
	require.NoError(t, err)

	data, err := EncodeManifest(cfg)
	require.NoError(t, err)

	m, err := ParseManifest(data)
	require.NoError(t, err)
	again, err := Compose(m.Input())
	require.NoError(t, err)

	assert.True(t, cfg.Equal(again), "round trip changed the config:\n%s", data)
}

func TestManifestFromInput(t *testing.T) {
	in := Gostman()
	m := ManifestFromInput(in)
	assert.Equal(t, in, m.Input())
}
