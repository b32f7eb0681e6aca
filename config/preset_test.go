package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGostman(t *testing.T) {
	cfg, err := Compose(Gostman())
	require.NoError(t, err)

	assert.Equal(t, "https://halftoothed.github.io/gostman", cfg.PublicURL())
	assert.Len(t, cfg.SocialLinks(), 1)

	var tags []string
	for _, d := range cfg.HeadTags() {
		tags = append(tags, d.Tag())
	}
	assert.Equal(t, []string{"meta", "meta", "link", "link", "link", "script", "script"}, tags)

	og := cfg.HeadTags()[0].Attributes()
	assert.Equal(t, cfg.PublicURL()+"/og.jpg?v=1", og["content"].String())

	// the analytics loader and its settings stay two separate scripts
	loader := cfg.HeadTags()[5].(*ScriptDirective)
	settings := cfg.HeadTags()[6].(*ScriptDirective)
	_, hasSrc := loader.Src()
	assert.True(t, hasSrc)
	assert.Empty(t, loader.Content())
	_, hasSrc = settings.Src()
	assert.False(t, hasSrc)
	assert.Contains(t, settings.Content(), "autoTrack: true")
}
