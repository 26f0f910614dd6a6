package scoreboard

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeFillsScoreboardConfigDefaults(t *testing.T) {
	// A settings document written before the scoreboard config fields existed.
	var s AppSettings
	require.NoError(t, json.Unmarshal([]byte(`{"currentThemeId":"retro"}`), &s))

	s.Normalize()

	require.NotNil(t, s.Scoreboard.ShowQuarter)
	assert.True(t, *s.Scoreboard.ShowQuarter)
	require.NotNil(t, s.Scoreboard.ShowClock)
	assert.True(t, *s.Scoreboard.ShowClock)
	require.NotNil(t, s.Scoreboard.ShowRecords)
	assert.False(t, *s.Scoreboard.ShowRecords)
	require.NotNil(t, s.Scoreboard.ScoreTextScale)
	assert.Equal(t, 1.0, *s.Scoreboard.ScoreTextScale)
	assert.Equal(t, "retro", s.CurrentThemeID)
	assert.NotEmpty(t, s.KeyboardBindings)
}

func TestNormalizeKeepsExplicitValues(t *testing.T) {
	s := DefaultSettings()
	*s.Scoreboard.ShowClock = false
	*s.Scoreboard.ScoreTextScale = 1.4

	s.Normalize()

	assert.False(t, *s.Scoreboard.ShowClock)
	assert.Equal(t, 1.4, *s.Scoreboard.ScoreTextScale)
}

func TestNormalizeBackfillsCustomThemeFonts(t *testing.T) {
	s := DefaultSettings()
	s.CustomThemes = []Theme{
		{ID: "a", HeaderFont: "Bebas Neue"},
		{ID: "b"},
		{ID: "c", NumberFont: "Monoton", Layout: "compact", BaseTextScale: 1.2},
	}

	s.Normalize()

	assert.Equal(t, "Bebas Neue", s.CustomThemes[0].NumberFont)
	assert.Equal(t, DefaultLayout, s.CustomThemes[0].Layout)
	assert.Equal(t, DefaultTextScale, s.CustomThemes[0].BaseTextScale)

	assert.Equal(t, DefaultNumberFont, s.CustomThemes[1].NumberFont)

	assert.Equal(t, "Monoton", s.CustomThemes[2].NumberFont)
	assert.Equal(t, "compact", s.CustomThemes[2].Layout)
	assert.Equal(t, 1.2, s.CustomThemes[2].BaseTextScale)
}

func TestNormalizeFillsEmptyThemeID(t *testing.T) {
	var s AppSettings
	s.Normalize()
	assert.Equal(t, DefaultThemeID, s.CurrentThemeID)
}
