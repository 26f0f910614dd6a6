package scoreboard

type Theme struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Preset bool   `json:"preset"`

	Background string `json:"background"`
	Surface    string `json:"surface"`
	TextColor  string `json:"textColor"`
	Accent     string `json:"accent"`
	Highlight  string `json:"highlight"`

	HeaderFont string `json:"headerFont"`
	BodyFont   string `json:"bodyFont"`
	NumberFont string `json:"numberFont"`

	BorderRadius    string  `json:"borderRadius"`
	ScoreboardStyle string  `json:"scoreboardStyle"`
	Layout          string  `json:"layout"`
	BaseTextScale   float64 `json:"baseTextScale"`
}

const (
	DefaultThemeID    = "classic"
	DefaultLayout     = "standard"
	DefaultNumberFont = "Oswald"
	DefaultTextScale  = 1.0
)

// presetThemes are built in and immutable. Order matters: resolution scans
// presets before custom themes.
var presetThemes = []Theme{
	{
		ID:              "classic",
		Name:            "Classic",
		Preset:          true,
		Background:      "#101418",
		Surface:         "#1c2228",
		TextColor:       "#f5f7fa",
		Accent:          "#e8b339",
		Highlight:       "#2f6fed",
		HeaderFont:      "Oswald",
		BodyFont:        "Inter",
		NumberFont:      "Oswald",
		BorderRadius:    "8px",
		ScoreboardStyle: "bar",
		Layout:          "standard",
		BaseTextScale:   1.0,
	},
	{
		ID:              "midnight",
		Name:            "Midnight",
		Preset:          true,
		Background:      "#05060a",
		Surface:         "#11131d",
		TextColor:       "#e8e9f0",
		Accent:          "#7c5cff",
		Highlight:       "#36c3ff",
		HeaderFont:      "Rajdhani",
		BodyFont:        "Inter",
		NumberFont:      "Rajdhani",
		BorderRadius:    "12px",
		ScoreboardStyle: "panel",
		Layout:          "standard",
		BaseTextScale:   1.0,
	},
	{
		ID:              "broadcast",
		Name:            "Broadcast",
		Preset:          true,
		Background:      "#0a1f12",
		Surface:         "#123322",
		TextColor:       "#ffffff",
		Accent:          "#ffd100",
		Highlight:       "#ff4d4d",
		HeaderFont:      "Archivo",
		BodyFont:        "Archivo",
		NumberFont:      "Archivo Black",
		BorderRadius:    "0px",
		ScoreboardStyle: "bar",
		Layout:          "compact",
		BaseTextScale:   1.1,
	},
	{
		ID:              "retro",
		Name:            "Retro",
		Preset:          true,
		Background:      "#241a0e",
		Surface:         "#3a2c18",
		TextColor:       "#f3e3c3",
		Accent:          "#d97b29",
		Highlight:       "#9bc53d",
		HeaderFont:      "Press Start 2P",
		BodyFont:        "VT323",
		NumberFont:      "Press Start 2P",
		BorderRadius:    "4px",
		ScoreboardStyle: "panel",
		Layout:          "standard",
		BaseTextScale:   0.9,
	},
}

// PresetThemes returns a copy of the built-in theme list.
func PresetThemes() []Theme {
	out := make([]Theme, len(presetThemes))
	copy(out, presetThemes)
	return out
}

// ResolveTheme looks up id among presets first, then custom themes, and falls
// back to the default preset. Total: it never fails, even for empty ids.
func ResolveTheme(id string, custom []Theme) Theme {
	for _, t := range presetThemes {
		if t.ID == id {
			return t
		}
	}
	for _, t := range custom {
		if t.ID == id {
			return t
		}
	}
	return presetThemes[0]
}
