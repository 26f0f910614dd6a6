package scoreboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddStatClampsAtZero(t *testing.T) {
	p := PlayerGameStats{Points: 2}

	value, ok := p.AddStat(StatPoints, -5)
	assert.True(t, ok)
	assert.Equal(t, 0, value)
	assert.Equal(t, 0, p.Points)

	value, ok = p.AddStat(StatPoints, 7)
	assert.True(t, ok)
	assert.Equal(t, 7, value)
}

func TestAddStatUnknownType(t *testing.T) {
	p := PlayerGameStats{}
	_, ok := p.AddStat(StatType("dunks"), 1)
	assert.False(t, ok)
}

func TestAddStatCoversEveryCounter(t *testing.T) {
	stats := []StatType{
		StatPoints, StatRebounds, StatAssists, StatSteals,
		StatBlocks, StatFouls, StatTurnovers, StatThreePointers,
	}

	var p PlayerGameStats
	for _, st := range stats {
		value, ok := p.AddStat(st, 2)
		assert.True(t, ok, "stat %s", st)
		assert.Equal(t, 2, value, "stat %s", st)

		got, ok := p.Stat(st)
		assert.True(t, ok)
		assert.Equal(t, 2, got, "stat %s", st)
	}
}

func TestTeamScoreSumsPlayerPoints(t *testing.T) {
	team := TeamGameStats{
		Players: []PlayerGameStats{{Points: 10}, {Points: 7}, {Points: 0}},
	}
	assert.Equal(t, 17, team.Score())
}

func TestGameTeamSelectsSide(t *testing.T) {
	g := Game{
		Home: TeamGameStats{Name: "Home"},
		Away: TeamGameStats{Name: "Away"},
	}
	assert.Equal(t, "Home", g.Team(HomeSide).Name)
	assert.Equal(t, "Away", g.Team(AwaySide).Name)
	assert.Nil(t, g.Team(Side("garbage")))
	assert.Nil(t, g.Team(Side("")))
}
