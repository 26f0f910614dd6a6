package scoreboard

// StatsConfig controls which stat columns the tracker shows.
type StatsConfig struct {
	ShowPoints        bool `json:"showPoints"`
	ShowRebounds      bool `json:"showRebounds"`
	ShowAssists       bool `json:"showAssists"`
	ShowSteals        bool `json:"showSteals"`
	ShowBlocks        bool `json:"showBlocks"`
	ShowFouls         bool `json:"showFouls"`
	ShowTurnovers     bool `json:"showTurnovers"`
	ShowThreePointers bool `json:"showThreePointers"`
}

// ScoreboardConfig holds display toggles and per-field text-size multipliers.
// Fields are pointers so that documents persisted before a field existed can
// be told apart from explicit choices; a normalization pass fills nils with
// defaults at load time.
type ScoreboardConfig struct {
	ShowQuarter     *bool `json:"showQuarter,omitempty"`
	ShowClock       *bool `json:"showClock,omitempty"`
	ShowRecords     *bool `json:"showRecords,omitempty"`
	ShowTargetScore *bool `json:"showTargetScore,omitempty"`

	ScoreTextScale *float64 `json:"scoreTextScale,omitempty"`
	ClockTextScale *float64 `json:"clockTextScale,omitempty"`
	NameTextScale  *float64 `json:"nameTextScale,omitempty"`
}

type AppSettings struct {
	CurrentThemeID           string            `json:"currentThemeId"`
	Stats                    StatsConfig       `json:"statsConfig"`
	Scoreboard               ScoreboardConfig  `json:"scoreboardConfig"`
	CustomThemes             []Theme           `json:"customThemes"`
	DefaultTargetScore       *int              `json:"defaultTargetScore,omitempty"`
	KeyboardBindings         map[string]string `json:"keyboardBindings"`
	KeyboardShortcutsEnabled bool              `json:"keyboardShortcutsEnabled"`
}

func boolPtr(b bool) *bool { return &b }

func floatPtr(f float64) *float64 { return &f }

// DefaultScoreboardConfig returns the built-in scoreboard display defaults.
func DefaultScoreboardConfig() ScoreboardConfig {
	return ScoreboardConfig{
		ShowQuarter:     boolPtr(true),
		ShowClock:       boolPtr(true),
		ShowRecords:     boolPtr(false),
		ShowTargetScore: boolPtr(false),
		ScoreTextScale:  floatPtr(1.0),
		ClockTextScale:  floatPtr(1.0),
		NameTextScale:   floatPtr(1.0),
	}
}

// DefaultKeyboardBindings maps tracker actions to keys.
func DefaultKeyboardBindings() map[string]string {
	return map[string]string{
		"homePointsPlus":  "q",
		"homePointsMinus": "a",
		"awayPointsPlus":  "p",
		"awayPointsMinus": "l",
		"nextQuarter":     "n",
		"toggleClock":     " ",
	}
}

func DefaultSettings() AppSettings {
	return AppSettings{
		CurrentThemeID: DefaultThemeID,
		Stats: StatsConfig{
			ShowPoints:        true,
			ShowRebounds:      true,
			ShowAssists:       true,
			ShowSteals:        true,
			ShowBlocks:        true,
			ShowFouls:         true,
			ShowTurnovers:     true,
			ShowThreePointers: true,
		},
		Scoreboard:               DefaultScoreboardConfig(),
		CustomThemes:             nil,
		DefaultTargetScore:       nil,
		KeyboardBindings:         DefaultKeyboardBindings(),
		KeyboardShortcutsEnabled: true,
	}
}

// Normalize upgrades settings persisted by older versions in place: every
// optional field gets its default and custom themes get their font, layout
// and scale backfilled. Settings documents are not versioned, so this runs
// unconditionally on every load.
func (s *AppSettings) Normalize() {
	if s.CurrentThemeID == "" {
		s.CurrentThemeID = DefaultThemeID
	}

	def := DefaultScoreboardConfig()
	if s.Scoreboard.ShowQuarter == nil {
		s.Scoreboard.ShowQuarter = def.ShowQuarter
	}
	if s.Scoreboard.ShowClock == nil {
		s.Scoreboard.ShowClock = def.ShowClock
	}
	if s.Scoreboard.ShowRecords == nil {
		s.Scoreboard.ShowRecords = def.ShowRecords
	}
	if s.Scoreboard.ShowTargetScore == nil {
		s.Scoreboard.ShowTargetScore = def.ShowTargetScore
	}
	if s.Scoreboard.ScoreTextScale == nil {
		s.Scoreboard.ScoreTextScale = def.ScoreTextScale
	}
	if s.Scoreboard.ClockTextScale == nil {
		s.Scoreboard.ClockTextScale = def.ClockTextScale
	}
	if s.Scoreboard.NameTextScale == nil {
		s.Scoreboard.NameTextScale = def.NameTextScale
	}

	for i := range s.CustomThemes {
		t := &s.CustomThemes[i]
		if t.NumberFont == "" {
			if t.HeaderFont != "" {
				t.NumberFont = t.HeaderFont
			} else {
				t.NumberFont = DefaultNumberFont
			}
		}
		if t.Layout == "" {
			t.Layout = DefaultLayout
		}
		if t.BaseTextScale == 0 {
			t.BaseTextScale = DefaultTextScale
		}
	}

	if s.KeyboardBindings == nil {
		s.KeyboardBindings = DefaultKeyboardBindings()
	}
}
