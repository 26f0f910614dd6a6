package service

import (
	"testing"
	"time"

	"github.com/AdamBeresnev/scorebug-studio/internal/scoreboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSeedDataShape(t *testing.T) {
	now := time.Now().UTC()
	teams, games, current := generateSeedData(now)

	require.Len(t, teams, 4)
	for _, team := range teams {
		assert.Len(t, team.Players, 5, "team %s", team.Name)
		assert.NotEmpty(t, team.PrimaryColor)
		assert.Equal(t, now, team.CreatedAt)
	}

	require.Len(t, games, 2)
	for _, g := range games {
		assert.Equal(t, scoreboard.GameFinished, g.Status)
		assert.Equal(t, 4, g.Quarter)
		assert.Equal(t, "0:00", g.TimeRemaining)
		assert.True(t, g.CreatedAt.Before(now))
	}

	require.NotNil(t, current)
	assert.Equal(t, scoreboard.GameLive, current.Status)
	assert.Equal(t, 3, current.Quarter)
	assert.Equal(t, "4:20", current.TimeRemaining)
}

func TestSeedStatsBoundedAndDerived(t *testing.T) {
	_, games, current := generateSeedData(time.Now().UTC())

	all := append(games, *current)
	for _, g := range all {
		for _, side := range []scoreboard.TeamGameStats{g.Home, g.Away} {
			require.Len(t, side.Players, 5)
			for _, p := range side.Players {
				assert.GreaterOrEqual(t, p.Points, 0)
				assert.Less(t, p.Points, 30)
				assert.Less(t, p.Rebounds, 10)
				assert.Less(t, p.Fouls, 5)
				assert.Equal(t, p.Points/3, p.ThreePointers, "player %s", p.Name)
			}
		}
	}
}

func TestSeedStatsDeterministic(t *testing.T) {
	now := time.Now().UTC()
	_, gamesA, liveA := generateSeedData(now)
	_, gamesB, liveB := generateSeedData(now)

	counters := func(games []scoreboard.Game, live *scoreboard.Game) []int {
		var out []int
		for _, g := range append(games, *live) {
			for _, p := range append(g.Home.Players, g.Away.Players...) {
				out = append(out, p.Points, p.Rebounds, p.Assists, p.Steals,
					p.Blocks, p.Fouls, p.Turnovers, p.ThreePointers)
			}
		}
		return out
	}

	assert.Equal(t, counters(gamesA, liveA), counters(gamesB, liveB))
}
