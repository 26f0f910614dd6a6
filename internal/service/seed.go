package service

import (
	"math/rand"
	"time"

	"github.com/AdamBeresnev/scorebug-studio/internal/scoreboard"
	"github.com/google/uuid"
)

// Stat values come from a fixed source so every first run shows the same
// demo numbers. Ids and timestamps are still freshly generated.
const seedStatSource = 7391

type seedRoster struct {
	name           string
	primaryColor   string
	secondaryColor string
	// scoringBase bounds per-player points so team totals stay plausible.
	scoringBase int
	players     [5][2]string
}

var seedRosters = []seedRoster{
	{
		name:           "Harbor Hawks",
		primaryColor:   "#1f4e79",
		secondaryColor: "#f0a500",
		scoringBase:    24,
		players: [5][2]string{
			{"Darius Cole", "4"}, {"Marcus Webb", "11"}, {"Theo Grant", "23"},
			{"Jalen Price", "0"}, {"Sam Whitfield", "34"},
		},
	},
	{
		name:           "Ridgeline Rockets",
		primaryColor:   "#b22222",
		secondaryColor: "#e8e8e8",
		scoringBase:    21,
		players: [5][2]string{
			{"Andre Fisk", "7"}, {"Caleb Mora", "12"}, {"Ray Donovan", "3"},
			{"Isaiah Brook", "21"}, {"Felix Nash", "44"},
		},
	},
	{
		name:           "Dockside Dragons",
		primaryColor:   "#14692e",
		secondaryColor: "#ffd700",
		scoringBase:    19,
		players: [5][2]string{
			{"Omar Velez", "8"}, {"Nate Quinn", "15"}, {"Desmond Hale", "2"},
			{"Kofi Mensah", "32"}, {"Luka Brandt", "00"},
		},
	},
	{
		name:           "Summit Stags",
		primaryColor:   "#4b2e83",
		secondaryColor: "#c0c0c0",
		scoringBase:    22,
		players: [5][2]string{
			{"Eli Thornton", "5"}, {"Bryce Kato", "10"}, {"Jonas Reed", "24"},
			{"Miles Okonkwo", "13"}, {"Trent Vasquez", "50"},
		},
	},
}

// generateSeedData builds the demo content for an empty store: four teams of
// five players, two finished games and one live game mid-third-quarter.
func generateSeedData(now time.Time) ([]scoreboard.Team, []scoreboard.Game, *scoreboard.Game) {
	rng := rand.New(rand.NewSource(seedStatSource))

	teams := make([]scoreboard.Team, 0, len(seedRosters))
	for _, r := range seedRosters {
		players := make([]scoreboard.Player, 0, len(r.players))
		for _, p := range r.players {
			players = append(players, scoreboard.Player{ID: uuid.New(), Name: p[0], Number: p[1]})
		}
		teams = append(teams, scoreboard.Team{
			ID:             uuid.New(),
			Name:           r.name,
			PrimaryColor:   r.primaryColor,
			SecondaryColor: r.secondaryColor,
			Players:        players,
			CreatedAt:      now,
			UpdatedAt:      now,
		})
	}

	first := seedGame(rng, teams[0], teams[1], seedRosters[0].scoringBase, seedRosters[1].scoringBase)
	firstTitle := "Season Opener"
	first.Title = &firstTitle
	first.Status = scoreboard.GameFinished
	first.Quarter = 4
	first.TimeRemaining = "0:00"
	first.CreatedAt = now.Add(-48 * time.Hour)
	first.UpdatedAt = now.Add(-48 * time.Hour)

	second := seedGame(rng, teams[2], teams[3], seedRosters[2].scoringBase, seedRosters[3].scoringBase)
	second.Status = scoreboard.GameFinished
	second.Quarter = 4
	second.TimeRemaining = "0:00"
	second.CreatedAt = now.Add(-24 * time.Hour)
	second.UpdatedAt = now.Add(-24 * time.Hour)

	live := seedGame(rng, teams[0], teams[2], seedRosters[0].scoringBase/2, seedRosters[2].scoringBase/2)
	live.Status = scoreboard.GameLive
	live.Quarter = 3
	live.TimeRemaining = "4:20"
	live.CreatedAt = now
	live.UpdatedAt = now

	return teams, []scoreboard.Game{first, second}, &live
}

func seedGame(rng *rand.Rand, home, away scoreboard.Team, homeBase, awayBase int) scoreboard.Game {
	g := scoreboard.Game{
		ID:   uuid.New(),
		Home: snapshotTeam(home),
		Away: snapshotTeam(away),
	}
	fillSeedStats(rng, &g.Home, homeBase)
	fillSeedStats(rng, &g.Away, awayBase)
	return g
}

func fillSeedStats(rng *rand.Rand, team *scoreboard.TeamGameStats, base int) {
	if base < 1 {
		base = 1
	}
	for i := range team.Players {
		p := &team.Players[i]
		p.Points = rng.Intn(base)
		p.Rebounds = rng.Intn(10)
		p.Assists = rng.Intn(8)
		p.Steals = rng.Intn(4)
		p.Blocks = rng.Intn(3)
		p.Fouls = rng.Intn(5)
		p.Turnovers = rng.Intn(5)
		p.ThreePointers = p.Points / 3
	}
}
