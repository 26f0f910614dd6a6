package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/AdamBeresnev/scorebug-studio/internal/scoreboard"
	"github.com/AdamBeresnev/scorebug-studio/internal/store"
	"github.com/AdamBeresnev/scorebug-studio/internal/utils"
	"github.com/google/uuid"
)

// ScoreboardService is the single source of truth for teams, game history,
// the current game and settings. Every mutation updates the in-memory state
// under the lock and mirrors it to the persistence adapter before returning.
// Persistence is best-effort: a failed write is logged and the in-memory
// state stays authoritative for the session.
type ScoreboardService struct {
	mu    sync.Mutex
	store *store.AppStateStore

	teams    []scoreboard.Team
	games    []scoreboard.Game
	current  *scoreboard.Game
	settings scoreboard.AppSettings
}

// NewScoreboardService loads persisted state. An empty team list means first
// run: seed data is generated and persisted. Settings get a normalization
// pass so documents written by older versions pick up new field defaults.
func NewScoreboardService(ctx context.Context, st *store.AppStateStore) (*ScoreboardService, error) {
	s := &ScoreboardService{store: st}

	teams, err := store.Load(ctx, st, store.KeyTeams, []scoreboard.Team(nil))
	if err != nil {
		return nil, err
	}

	if len(teams) == 0 {
		s.teams, s.games, s.current = generateSeedData(time.Now().UTC())
		s.persistTeams(ctx)
		s.persistGames(ctx)
		s.persistCurrent(ctx)
	} else {
		s.teams = teams
		if s.games, err = store.Load(ctx, st, store.KeyGames, []scoreboard.Game(nil)); err != nil {
			return nil, err
		}
		if s.current, err = store.Load(ctx, st, store.KeyCurrentGame, (*scoreboard.Game)(nil)); err != nil {
			return nil, err
		}
	}

	settings, err := store.Load(ctx, st, store.KeySettings, scoreboard.DefaultSettings())
	if err != nil {
		return nil, err
	}
	settings.Normalize()
	s.settings = settings

	return s, nil
}

type PlayerInput struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Number string    `json:"number"`
}

type TeamInput struct {
	Name           string        `json:"name"`
	PrimaryColor   string        `json:"primaryColor"`
	SecondaryColor string        `json:"secondaryColor"`
	Players        []PlayerInput `json:"players"`
}

// TeamPatch merges into an existing team; nil fields are left untouched.
// A non-nil Players list replaces the roster wholesale.
type TeamPatch struct {
	Name           *string       `json:"name"`
	PrimaryColor   *string       `json:"primaryColor"`
	SecondaryColor *string       `json:"secondaryColor"`
	Players        []PlayerInput `json:"players"`
}

type GamePatch struct {
	Title           *string `json:"title"`
	Quarter         *int    `json:"quarter"`
	TimeRemaining   *string `json:"timeRemaining"`
	TargetScore     *int    `json:"targetScore"`
	HomeDisplayName *string `json:"homeDisplayName"`
	AwayDisplayName *string `json:"awayDisplayName"`
	HomeRecord      *string `json:"homeRecord"`
	AwayRecord      *string `json:"awayRecord"`
}

type StatsConfigPatch struct {
	ShowPoints        *bool `json:"showPoints"`
	ShowRebounds      *bool `json:"showRebounds"`
	ShowAssists       *bool `json:"showAssists"`
	ShowSteals        *bool `json:"showSteals"`
	ShowBlocks        *bool `json:"showBlocks"`
	ShowFouls         *bool `json:"showFouls"`
	ShowTurnovers     *bool `json:"showTurnovers"`
	ShowThreePointers *bool `json:"showThreePointers"`
}

func (s *ScoreboardService) Teams() []scoreboard.Team {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]scoreboard.Team(nil), s.teams...)
}

func (s *ScoreboardService) Games() []scoreboard.Game {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]scoreboard.Game(nil), s.games...)
}

// CurrentGame returns a copy of the in-progress game, or nil if none exists.
func (s *ScoreboardService) CurrentGame() *scoreboard.Game {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneGame(s.current)
}

// Settings returns a snapshot detached from the live state: the bindings
// map, custom theme list and pointer fields are all cloned so callers can
// read them while mutations proceed.
func (s *ScoreboardService) Settings() scoreboard.AppSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneSettings(s.settings)
}

// ResolvedTheme resolves the active theme id against presets and custom
// themes, falling back to the default preset.
func (s *ScoreboardService) ResolvedTheme() scoreboard.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return scoreboard.ResolveTheme(s.settings.CurrentThemeID, s.settings.CustomThemes)
}

func (s *ScoreboardService) AddTeam(ctx context.Context, input TeamInput) scoreboard.Team {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	team := scoreboard.Team{
		ID:             uuid.New(),
		Name:           input.Name,
		PrimaryColor:   input.PrimaryColor,
		SecondaryColor: input.SecondaryColor,
		Players:        buildRoster(input.Players),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	s.teams = append(s.teams, team)
	s.persistTeams(ctx)
	return team
}

func (s *ScoreboardService) UpdateTeam(ctx context.Context, id uuid.UUID, patch TeamPatch) (scoreboard.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.teams {
		if s.teams[i].ID != id {
			continue
		}
		t := &s.teams[i]
		if patch.Name != nil {
			t.Name = *patch.Name
		}
		if patch.PrimaryColor != nil {
			t.PrimaryColor = *patch.PrimaryColor
		}
		if patch.SecondaryColor != nil {
			t.SecondaryColor = *patch.SecondaryColor
		}
		if patch.Players != nil {
			t.Players = buildRoster(patch.Players)
		}
		t.UpdatedAt = time.Now().UTC()
		s.persistTeams(ctx)
		return *t, nil
	}
	return scoreboard.Team{}, ErrTeamNotFound
}

// DeleteTeam removes the team only. Games keep the snapshot taken when they
// started, so history never dangles.
func (s *ScoreboardService) DeleteTeam(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.teams {
		if s.teams[i].ID == id {
			s.teams = append(s.teams[:i], s.teams[i+1:]...)
			s.persistTeams(ctx)
			return nil
		}
	}
	return ErrTeamNotFound
}

// StartGame snapshots both teams into a fresh live game and makes it the
// current game, replacing any game already in progress.
func (s *ScoreboardService) StartGame(ctx context.Context, homeID, awayID uuid.UUID) (scoreboard.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if homeID == awayID {
		return scoreboard.Game{}, ErrInvalidSelection
	}
	home := s.findTeam(homeID)
	away := s.findTeam(awayID)
	if home == nil || away == nil {
		return scoreboard.Game{}, ErrInvalidSelection
	}

	var target *int
	if s.settings.DefaultTargetScore != nil {
		target = utils.Ptr(*s.settings.DefaultTargetScore)
	}

	now := time.Now().UTC()
	game := scoreboard.Game{
		ID:            uuid.New(),
		Home:          snapshotTeam(*home),
		Away:          snapshotTeam(*away),
		Quarter:       1,
		TimeRemaining: "12:00",
		TargetScore:   target,
		Status:        scoreboard.GameLive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	s.current = &game
	s.persistCurrent(ctx)
	return *cloneGame(s.current), nil
}

func (s *ScoreboardService) UpdateCurrentGame(ctx context.Context, patch GamePatch) (scoreboard.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return scoreboard.Game{}, ErrNoCurrentGame
	}

	g := s.current
	if patch.Title != nil {
		g.Title = utils.StringOrNil(*patch.Title)
	}
	if patch.Quarter != nil {
		g.Quarter = *patch.Quarter
	}
	if patch.TimeRemaining != nil {
		g.TimeRemaining = *patch.TimeRemaining
	}
	if patch.TargetScore != nil {
		g.TargetScore = utils.Ptr(*patch.TargetScore)
	}
	if patch.HomeDisplayName != nil {
		g.Home.DisplayName = utils.StringOrNil(*patch.HomeDisplayName)
	}
	if patch.AwayDisplayName != nil {
		g.Away.DisplayName = utils.StringOrNil(*patch.AwayDisplayName)
	}
	if patch.HomeRecord != nil {
		g.Home.Record = *patch.HomeRecord
	}
	if patch.AwayRecord != nil {
		g.Away.Record = *patch.AwayRecord
	}
	g.UpdatedAt = time.Now().UTC()
	s.persistCurrent(ctx)
	return *cloneGame(g), nil
}

// UpdatePlayerStat applies delta to one counter of one player in the current
// game. Counters clamp at zero. Returns the counter's new value.
func (s *ScoreboardService) UpdatePlayerStat(ctx context.Context, side scoreboard.Side, playerID uuid.UUID, stat scoreboard.StatType, delta int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return 0, ErrNoCurrentGame
	}

	team := s.current.Team(side)
	if team == nil {
		return 0, ErrUnknownSide
	}
	for i := range team.Players {
		if team.Players[i].PlayerID != playerID {
			continue
		}
		value, ok := team.Players[i].AddStat(stat, delta)
		if !ok {
			return 0, ErrUnknownStat
		}
		s.current.UpdatedAt = time.Now().UTC()
		s.persistCurrent(ctx)
		return value, nil
	}
	return 0, ErrPlayerNotFound
}

// EndGame marks the current game finished and appends it to history. History
// entries are never mutated afterwards.
func (s *ScoreboardService) EndGame(ctx context.Context) (scoreboard.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return scoreboard.Game{}, ErrNoCurrentGame
	}

	s.current.Status = scoreboard.GameFinished
	s.current.UpdatedAt = time.Now().UTC()
	finished := *cloneGame(s.current)
	s.games = append(s.games, finished)
	s.current = nil
	s.persistGames(ctx)
	s.persistCurrent(ctx)
	return finished, nil
}

// ClearCurrentGame discards the in-progress game without saving it to
// history. Clearing when nothing is in progress is a no-op.
func (s *ScoreboardService) ClearCurrentGame(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return
	}
	s.current = nil
	s.persistCurrent(ctx)
}

func (s *ScoreboardService) DeleteGame(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.games {
		if s.games[i].ID == id {
			s.games = append(s.games[:i], s.games[i+1:]...)
			s.persistGames(ctx)
			return nil
		}
	}
	return ErrGameNotFound
}

func (s *ScoreboardService) UpdateStatsConfig(ctx context.Context, patch StatsConfigPatch) scoreboard.StatsConfig {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := &s.settings.Stats
	if patch.ShowPoints != nil {
		c.ShowPoints = *patch.ShowPoints
	}
	if patch.ShowRebounds != nil {
		c.ShowRebounds = *patch.ShowRebounds
	}
	if patch.ShowAssists != nil {
		c.ShowAssists = *patch.ShowAssists
	}
	if patch.ShowSteals != nil {
		c.ShowSteals = *patch.ShowSteals
	}
	if patch.ShowBlocks != nil {
		c.ShowBlocks = *patch.ShowBlocks
	}
	if patch.ShowFouls != nil {
		c.ShowFouls = *patch.ShowFouls
	}
	if patch.ShowTurnovers != nil {
		c.ShowTurnovers = *patch.ShowTurnovers
	}
	if patch.ShowThreePointers != nil {
		c.ShowThreePointers = *patch.ShowThreePointers
	}
	s.persistSettings(ctx)
	return *c
}

func (s *ScoreboardService) UpdateScoreboardConfig(ctx context.Context, patch scoreboard.ScoreboardConfig) scoreboard.ScoreboardConfig {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := &s.settings.Scoreboard
	if patch.ShowQuarter != nil {
		c.ShowQuarter = patch.ShowQuarter
	}
	if patch.ShowClock != nil {
		c.ShowClock = patch.ShowClock
	}
	if patch.ShowRecords != nil {
		c.ShowRecords = patch.ShowRecords
	}
	if patch.ShowTargetScore != nil {
		c.ShowTargetScore = patch.ShowTargetScore
	}
	if patch.ScoreTextScale != nil {
		c.ScoreTextScale = patch.ScoreTextScale
	}
	if patch.ClockTextScale != nil {
		c.ClockTextScale = patch.ClockTextScale
	}
	if patch.NameTextScale != nil {
		c.NameTextScale = patch.NameTextScale
	}
	s.persistSettings(ctx)
	return cloneScoreboardConfig(*c)
}

func (s *ScoreboardService) UpdateKeyboardBindings(ctx context.Context, bindings map[string]string) map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.settings.KeyboardBindings == nil {
		s.settings.KeyboardBindings = map[string]string{}
	}
	for action, key := range bindings {
		s.settings.KeyboardBindings[action] = key
	}
	s.persistSettings(ctx)
	return cloneBindings(s.settings.KeyboardBindings)
}

func (s *ScoreboardService) SetKeyboardShortcutsEnabled(ctx context.Context, enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings.KeyboardShortcutsEnabled = enabled
	s.persistSettings(ctx)
}

// SetDefaultTargetScore sets the target score newly started games inherit.
// Nil disables the win condition for future games.
func (s *ScoreboardService) SetDefaultTargetScore(ctx context.Context, target *int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if target == nil {
		s.settings.DefaultTargetScore = nil
	} else {
		s.settings.DefaultTargetScore = utils.Ptr(*target)
	}
	s.persistSettings(ctx)
}

// SetCurrentTheme does not validate the id: resolution falls back to the
// default theme, so a dangling id is harmless.
func (s *ScoreboardService) SetCurrentTheme(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings.CurrentThemeID = id
	s.persistSettings(ctx)
}

func (s *ScoreboardService) AddCustomTheme(ctx context.Context, theme scoreboard.Theme) scoreboard.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()

	if theme.ID == "" {
		theme.ID = uuid.NewString()
	}
	theme.Preset = false
	normalizeTheme(&theme)
	s.settings.CustomThemes = append(s.settings.CustomThemes, theme)
	s.persistSettings(ctx)
	return theme
}

// UpdateCustomTheme replaces the custom theme with the given id. Presets are
// immutable and never match a custom id.
func (s *ScoreboardService) UpdateCustomTheme(ctx context.Context, id string, theme scoreboard.Theme) (scoreboard.Theme, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.settings.CustomThemes {
		if s.settings.CustomThemes[i].ID != id {
			continue
		}
		theme.ID = id
		theme.Preset = false
		normalizeTheme(&theme)
		s.settings.CustomThemes[i] = theme
		s.persistSettings(ctx)
		return theme, nil
	}
	return scoreboard.Theme{}, ErrThemeNotFound
}

// DeleteCustomTheme removes a custom theme. Deleting the active theme resets
// the current theme to the default preset.
func (s *ScoreboardService) DeleteCustomTheme(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.settings.CustomThemes {
		if s.settings.CustomThemes[i].ID != id {
			continue
		}
		s.settings.CustomThemes = append(s.settings.CustomThemes[:i], s.settings.CustomThemes[i+1:]...)
		if s.settings.CurrentThemeID == id {
			s.settings.CurrentThemeID = scoreboard.DefaultThemeID
		}
		s.persistSettings(ctx)
		return nil
	}
	return ErrThemeNotFound
}

// ResetAllData regenerates seed data and restores default settings,
// overwriting all four persisted documents. Irreversible.
func (s *ScoreboardService) ResetAllData(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.teams, s.games, s.current = generateSeedData(time.Now().UTC())
	s.settings = scoreboard.DefaultSettings()
	s.persistTeams(ctx)
	s.persistGames(ctx)
	s.persistCurrent(ctx)
	s.persistSettings(ctx)
}

func (s *ScoreboardService) findTeam(id uuid.UUID) *scoreboard.Team {
	for i := range s.teams {
		if s.teams[i].ID == id {
			return &s.teams[i]
		}
	}
	return nil
}

func buildRoster(inputs []PlayerInput) []scoreboard.Player {
	players := make([]scoreboard.Player, 0, len(inputs))
	for _, in := range inputs {
		id := in.ID
		if id == uuid.Nil {
			id = uuid.New()
		}
		players = append(players, scoreboard.Player{ID: id, Name: in.Name, Number: in.Number})
	}
	return players
}

func snapshotTeam(t scoreboard.Team) scoreboard.TeamGameStats {
	players := make([]scoreboard.PlayerGameStats, 0, len(t.Players))
	for _, p := range t.Players {
		players = append(players, scoreboard.PlayerGameStats{
			PlayerID: p.ID,
			Name:     p.Name,
			Number:   p.Number,
		})
	}
	return scoreboard.TeamGameStats{
		TeamID:         t.ID,
		Name:           t.Name,
		PrimaryColor:   t.PrimaryColor,
		SecondaryColor: t.SecondaryColor,
		Players:        players,
	}
}

func normalizeTheme(t *scoreboard.Theme) {
	if t.NumberFont == "" {
		if t.HeaderFont != "" {
			t.NumberFont = t.HeaderFont
		} else {
			t.NumberFont = scoreboard.DefaultNumberFont
		}
	}
	if t.Layout == "" {
		t.Layout = scoreboard.DefaultLayout
	}
	if t.BaseTextScale == 0 {
		t.BaseTextScale = scoreboard.DefaultTextScale
	}
}

func cloneBindings(bindings map[string]string) map[string]string {
	if bindings == nil {
		return nil
	}
	out := make(map[string]string, len(bindings))
	for action, key := range bindings {
		out[action] = key
	}
	return out
}

func cloneScoreboardConfig(c scoreboard.ScoreboardConfig) scoreboard.ScoreboardConfig {
	out := c
	if c.ShowQuarter != nil {
		out.ShowQuarter = utils.Ptr(*c.ShowQuarter)
	}
	if c.ShowClock != nil {
		out.ShowClock = utils.Ptr(*c.ShowClock)
	}
	if c.ShowRecords != nil {
		out.ShowRecords = utils.Ptr(*c.ShowRecords)
	}
	if c.ShowTargetScore != nil {
		out.ShowTargetScore = utils.Ptr(*c.ShowTargetScore)
	}
	if c.ScoreTextScale != nil {
		out.ScoreTextScale = utils.Ptr(*c.ScoreTextScale)
	}
	if c.ClockTextScale != nil {
		out.ClockTextScale = utils.Ptr(*c.ClockTextScale)
	}
	if c.NameTextScale != nil {
		out.NameTextScale = utils.Ptr(*c.NameTextScale)
	}
	return out
}

func cloneSettings(s scoreboard.AppSettings) scoreboard.AppSettings {
	out := s
	out.Scoreboard = cloneScoreboardConfig(s.Scoreboard)
	out.CustomThemes = append([]scoreboard.Theme(nil), s.CustomThemes...)
	if s.DefaultTargetScore != nil {
		out.DefaultTargetScore = utils.Ptr(*s.DefaultTargetScore)
	}
	out.KeyboardBindings = cloneBindings(s.KeyboardBindings)
	return out
}

func cloneGame(g *scoreboard.Game) *scoreboard.Game {
	if g == nil {
		return nil
	}
	out := *g
	out.Home.Players = append([]scoreboard.PlayerGameStats(nil), g.Home.Players...)
	out.Away.Players = append([]scoreboard.PlayerGameStats(nil), g.Away.Players...)
	return &out
}

func (s *ScoreboardService) persistTeams(ctx context.Context) {
	if err := s.store.Save(ctx, store.KeyTeams, s.teams); err != nil {
		slog.Warn("failed to persist teams", "error", err)
	}
}

func (s *ScoreboardService) persistGames(ctx context.Context) {
	if err := s.store.Save(ctx, store.KeyGames, s.games); err != nil {
		slog.Warn("failed to persist games", "error", err)
	}
}

func (s *ScoreboardService) persistCurrent(ctx context.Context) {
	var err error
	if s.current == nil {
		err = s.store.Delete(ctx, store.KeyCurrentGame)
	} else {
		err = s.store.Save(ctx, store.KeyCurrentGame, s.current)
	}
	if err != nil {
		slog.Warn("failed to persist current game", "error", err)
	}
}

func (s *ScoreboardService) persistSettings(ctx context.Context) {
	if err := s.store.Save(ctx, store.KeySettings, s.settings); err != nil {
		slog.Warn("failed to persist settings", "error", err)
	}
}
