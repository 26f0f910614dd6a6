package scoreboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveThemePreset(t *testing.T) {
	theme := ResolveTheme("midnight", nil)
	assert.Equal(t, "midnight", theme.ID)
	assert.True(t, theme.Preset)
}

func TestResolveThemeCustom(t *testing.T) {
	custom := []Theme{
		{ID: "my-theme", Name: "My Theme", HeaderFont: "Lato", NumberFont: "Lato"},
	}
	theme := ResolveTheme("my-theme", custom)
	assert.Equal(t, "my-theme", theme.ID)
	assert.False(t, theme.Preset)
}

func TestResolveThemePresetShadowsCustom(t *testing.T) {
	custom := []Theme{{ID: "classic", Name: "Impostor"}}
	theme := ResolveTheme("classic", custom)
	assert.Equal(t, "Classic", theme.Name)
	assert.True(t, theme.Preset)
}

func TestResolveThemeFallsBackToDefault(t *testing.T) {
	for _, id := range []string{"", "nope", "CLASSIC"} {
		theme := ResolveTheme(id, nil)
		assert.Equal(t, DefaultThemeID, theme.ID, "id %q", id)
	}
}

func TestPresetThemesReturnsCopy(t *testing.T) {
	themes := PresetThemes()
	themes[0].Name = "mutated"
	assert.Equal(t, "Classic", ResolveTheme(DefaultThemeID, nil).Name)
}
