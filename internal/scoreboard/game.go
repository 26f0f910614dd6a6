package scoreboard

import (
	"time"

	"github.com/google/uuid"
)

type GameStatus string

const (
	GameSetup    GameStatus = "setup"
	GameLive     GameStatus = "live"
	GameFinished GameStatus = "finished"
)

type Side string

const (
	HomeSide Side = "home"
	AwaySide Side = "away"
)

type StatType string

const (
	StatPoints        StatType = "points"
	StatRebounds      StatType = "rebounds"
	StatAssists       StatType = "assists"
	StatSteals        StatType = "steals"
	StatBlocks        StatType = "blocks"
	StatFouls         StatType = "fouls"
	StatTurnovers     StatType = "turnovers"
	StatThreePointers StatType = "threePointers"
)

// PlayerGameStats snapshots a player's identity at game start and tracks
// per-game counters. Counters never go below zero.
type PlayerGameStats struct {
	PlayerID      uuid.UUID `json:"playerId"`
	Name          string    `json:"name"`
	Number        string    `json:"number"`
	Points        int       `json:"points"`
	Rebounds      int       `json:"rebounds"`
	Assists       int       `json:"assists"`
	Steals        int       `json:"steals"`
	Blocks        int       `json:"blocks"`
	Fouls         int       `json:"fouls"`
	Turnovers     int       `json:"turnovers"`
	ThreePointers int       `json:"threePointers"`
}

func (p *PlayerGameStats) Stat(stat StatType) (int, bool) {
	switch stat {
	case StatPoints:
		return p.Points, true
	case StatRebounds:
		return p.Rebounds, true
	case StatAssists:
		return p.Assists, true
	case StatSteals:
		return p.Steals, true
	case StatBlocks:
		return p.Blocks, true
	case StatFouls:
		return p.Fouls, true
	case StatTurnovers:
		return p.Turnovers, true
	case StatThreePointers:
		return p.ThreePointers, true
	}
	return 0, false
}

// AddStat applies delta to the named counter, clamping the result at zero.
// Returns the new value and whether the stat type was recognized.
func (p *PlayerGameStats) AddStat(stat StatType, delta int) (int, bool) {
	old, ok := p.Stat(stat)
	if !ok {
		return 0, false
	}
	next := old + delta
	if next < 0 {
		next = 0
	}
	switch stat {
	case StatPoints:
		p.Points = next
	case StatRebounds:
		p.Rebounds = next
	case StatAssists:
		p.Assists = next
	case StatSteals:
		p.Steals = next
	case StatBlocks:
		p.Blocks = next
	case StatFouls:
		p.Fouls = next
	case StatTurnovers:
		p.Turnovers = next
	case StatThreePointers:
		p.ThreePointers = next
	}
	return next, true
}

// TeamGameStats is a per-game snapshot of a team. The player list is fixed
// once the game starts; only counters mutate.
type TeamGameStats struct {
	TeamID         uuid.UUID         `json:"teamId"`
	Name           string            `json:"name"`
	PrimaryColor   string            `json:"primaryColor"`
	SecondaryColor string            `json:"secondaryColor"`
	DisplayName    *string           `json:"displayName,omitempty"`
	Record         string            `json:"record"`
	Players        []PlayerGameStats `json:"players"`
}

// Score is the sum of player points on this side.
func (t *TeamGameStats) Score() int {
	total := 0
	for i := range t.Players {
		total += t.Players[i].Points
	}
	return total
}

type Game struct {
	ID      uuid.UUID     `json:"id"`
	Title   *string       `json:"title,omitempty"`
	Home    TeamGameStats `json:"home"`
	Away    TeamGameStats `json:"away"`
	Quarter int           `json:"quarter"`
	// TimeRemaining is the clock as displayed, not a structured duration.
	TimeRemaining string     `json:"timeRemaining"`
	TargetScore   *int       `json:"targetScore,omitempty"`
	Status        GameStatus `json:"status"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// Team returns the stats for one side, or nil for an unrecognized side.
func (g *Game) Team(side Side) *TeamGameStats {
	switch side {
	case HomeSide:
		return &g.Home
	case AwaySide:
		return &g.Away
	}
	return nil
}
