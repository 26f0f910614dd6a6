package store

import (
	"context"
	"testing"
	"time"

	"github.com/AdamBeresnev/scorebug-studio/internal/scoreboard"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates an in-memory SQLite database and applies migrations
func setupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	database, err := sqlx.Connect("sqlite3", "file::memory:")
	require.NoError(t, err, "Failed to connect to in-memory DB")

	_, err = database.Exec("PRAGMA foreign_keys = ON;")
	require.NoError(t, err)

	driver, err := sqlite3.WithInstance(database.DB, &sqlite3.Config{})
	require.NoError(t, err, "Failed to create migrate driver instance")

	m, err := migrate.NewWithDatabaseInstance(
		"file://../../migrations",
		"sqlite3",
		driver,
	)
	require.NoError(t, err, "Failed to create migrate instance")

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		require.NoError(t, err, "Failed to apply migrations")
	}

	return database
}

func sampleTeams() []scoreboard.Team {
	now := time.Now().UTC()
	return []scoreboard.Team{
		{
			ID:             uuid.New(),
			Name:           "Harbor Hawks",
			PrimaryColor:   "#1f4e79",
			SecondaryColor: "#f0a500",
			Players: []scoreboard.Player{
				{ID: uuid.New(), Name: "D. Reyes", Number: "4"},
				{ID: uuid.New(), Name: "M. Okafor", Number: "00"},
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	s := NewAppStateStore(db)
	ctx := context.Background()

	teams := sampleTeams()
	require.NoError(t, s.Save(ctx, KeyTeams, teams))

	loaded, err := Load(ctx, s, KeyTeams, []scoreboard.Team(nil))
	require.NoError(t, err)
	assert.Equal(t, teams, loaded)
}

func TestGameRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	s := NewAppStateStore(db)
	ctx := context.Background()

	now := time.Now().UTC()
	target := 21
	game := &scoreboard.Game{
		ID: uuid.New(),
		Home: scoreboard.TeamGameStats{
			TeamID:       uuid.New(),
			Name:         "Harbor Hawks",
			PrimaryColor: "#1f4e79",
			Record:       "12-3",
			Players: []scoreboard.PlayerGameStats{
				{PlayerID: uuid.New(), Name: "D. Reyes", Number: "4", Points: 17, Rebounds: 6, ThreePointers: 5},
			},
		},
		Away: scoreboard.TeamGameStats{
			TeamID: uuid.New(),
			Name:   "Summit Stags",
			Players: []scoreboard.PlayerGameStats{
				{PlayerID: uuid.New(), Name: "E. Thornton", Number: "5", Points: 9, Fouls: 2},
			},
		},
		Quarter:       2,
		TimeRemaining: "8:31",
		TargetScore:   &target,
		Status:        scoreboard.GameLive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	require.NoError(t, s.Save(ctx, KeyCurrentGame, game))

	loaded, err := Load(ctx, s, KeyCurrentGame, (*scoreboard.Game)(nil))
	require.NoError(t, err)
	assert.Equal(t, game, loaded)
}

func TestSaveOverwrites(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	s := NewAppStateStore(db)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, KeySettings, scoreboard.AppSettings{CurrentThemeID: "midnight"}))
	require.NoError(t, s.Save(ctx, KeySettings, scoreboard.AppSettings{CurrentThemeID: "retro"}))

	loaded, err := Load(ctx, s, KeySettings, scoreboard.DefaultSettings())
	require.NoError(t, err)
	assert.Equal(t, "retro", loaded.CurrentThemeID)
}

func TestLoadMissingKeyReturnsFallback(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	s := NewAppStateStore(db)

	fallback := scoreboard.DefaultSettings()
	loaded, err := Load(context.Background(), s, KeySettings, fallback)
	require.NoError(t, err)
	assert.Equal(t, fallback, loaded)
}

func TestLoadCorruptValueReturnsFallback(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	s := NewAppStateStore(db)
	ctx := context.Background()

	_, err := db.Exec("INSERT INTO app_state (key, value) VALUES (?, ?)",
		"scorebug:"+KeyTeams, "{not json at all")
	require.NoError(t, err)

	fallback := sampleTeams()
	loaded, err := Load(ctx, s, KeyTeams, fallback)
	require.NoError(t, err)
	assert.Equal(t, fallback, loaded)
}

func TestDeleteRemovesKey(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	s := NewAppStateStore(db)
	ctx := context.Background()

	game := &scoreboard.Game{ID: uuid.New(), Status: scoreboard.GameLive}
	require.NoError(t, s.Save(ctx, KeyCurrentGame, game))

	loaded, err := Load(ctx, s, KeyCurrentGame, (*scoreboard.Game)(nil))
	require.NoError(t, err)
	require.NotNil(t, loaded)

	require.NoError(t, s.Delete(ctx, KeyCurrentGame))

	loaded, err = Load(ctx, s, KeyCurrentGame, (*scoreboard.Game)(nil))
	require.NoError(t, err)
	assert.Nil(t, loaded)

	// Deleting again is fine.
	require.NoError(t, s.Delete(ctx, KeyCurrentGame))
}
