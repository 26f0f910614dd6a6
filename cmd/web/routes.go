package main

import (
	"errors"
	"net/http"

	"github.com/AdamBeresnev/scorebug-studio/internal/httputil"
	"github.com/AdamBeresnev/scorebug-studio/internal/scoreboard"
	"github.com/AdamBeresnev/scorebug-studio/internal/service"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

func newRouter(svc *service.ScoreboardService) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)

	// Serve static files
	fileServer := http.FileServer(http.Dir("./static"))
	r.Handle("/static/*", http.StripPrefix("/static/", fileServer))

	r.Get("/api/teams", func(w http.ResponseWriter, r *http.Request) {
		httputil.JSON(w, http.StatusOK, svc.Teams())
	})

	r.Post("/api/teams", func(w http.ResponseWriter, r *http.Request) {
		var input service.TeamInput
		if err := httputil.DecodeJSON(r, &input); err != nil {
			httputil.BadRequest(w, "Invalid team payload", err)
			return
		}
		team := svc.AddTeam(r.Context(), input)
		httputil.JSON(w, http.StatusCreated, team)
	})

	r.Patch("/api/teams/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			httputil.BadRequest(w, "Invalid team ID", err)
			return
		}
		var patch service.TeamPatch
		if err := httputil.DecodeJSON(r, &patch); err != nil {
			httputil.BadRequest(w, "Invalid team payload", err)
			return
		}
		team, err := svc.UpdateTeam(r.Context(), id, patch)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		httputil.JSON(w, http.StatusOK, team)
	})

	r.Delete("/api/teams/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			httputil.BadRequest(w, "Invalid team ID", err)
			return
		}
		if err := svc.DeleteTeam(r.Context(), id); err != nil {
			writeServiceError(w, err)
			return
		}
		httputil.NoContent(w)
	})

	r.Post("/api/games/start", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			HomeTeamID uuid.UUID `json:"homeTeamId"`
			AwayTeamID uuid.UUID `json:"awayTeamId"`
		}
		if err := httputil.DecodeJSON(r, &body); err != nil {
			httputil.BadRequest(w, "Invalid start payload", err)
			return
		}
		game, err := svc.StartGame(r.Context(), body.HomeTeamID, body.AwayTeamID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		httputil.JSON(w, http.StatusCreated, game)
	})

	r.Get("/api/games/current", func(w http.ResponseWriter, r *http.Request) {
		game := svc.CurrentGame()
		if game == nil {
			httputil.NotFound(w, "No game in progress", nil)
			return
		}
		httputil.JSON(w, http.StatusOK, game)
	})

	r.Patch("/api/games/current", func(w http.ResponseWriter, r *http.Request) {
		var patch service.GamePatch
		if err := httputil.DecodeJSON(r, &patch); err != nil {
			httputil.BadRequest(w, "Invalid game payload", err)
			return
		}
		game, err := svc.UpdateCurrentGame(r.Context(), patch)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		httputil.JSON(w, http.StatusOK, game)
	})

	r.Post("/api/games/current/stats", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Team     scoreboard.Side     `json:"team"`
			PlayerID uuid.UUID           `json:"playerId"`
			Stat     scoreboard.StatType `json:"stat"`
			Delta    int                 `json:"delta"`
		}
		if err := httputil.DecodeJSON(r, &body); err != nil {
			httputil.BadRequest(w, "Invalid stat payload", err)
			return
		}
		value, err := svc.UpdatePlayerStat(r.Context(), body.Team, body.PlayerID, body.Stat, body.Delta)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		httputil.JSON(w, http.StatusOK, map[string]int{"value": value})
	})

	r.Post("/api/games/current/end", func(w http.ResponseWriter, r *http.Request) {
		game, err := svc.EndGame(r.Context())
		if err != nil {
			writeServiceError(w, err)
			return
		}
		httputil.JSON(w, http.StatusOK, game)
	})

	r.Delete("/api/games/current", func(w http.ResponseWriter, r *http.Request) {
		svc.ClearCurrentGame(r.Context())
		httputil.NoContent(w)
	})

	r.Get("/api/games", func(w http.ResponseWriter, r *http.Request) {
		httputil.JSON(w, http.StatusOK, svc.Games())
	})

	r.Delete("/api/games/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			httputil.BadRequest(w, "Invalid game ID", err)
			return
		}
		if err := svc.DeleteGame(r.Context(), id); err != nil {
			writeServiceError(w, err)
			return
		}
		httputil.NoContent(w)
	})

	r.Get("/api/settings", func(w http.ResponseWriter, r *http.Request) {
		httputil.JSON(w, http.StatusOK, svc.Settings())
	})

	r.Patch("/api/settings/stats", func(w http.ResponseWriter, r *http.Request) {
		var patch service.StatsConfigPatch
		if err := httputil.DecodeJSON(r, &patch); err != nil {
			httputil.BadRequest(w, "Invalid stats config payload", err)
			return
		}
		httputil.JSON(w, http.StatusOK, svc.UpdateStatsConfig(r.Context(), patch))
	})

	r.Patch("/api/settings/scoreboard", func(w http.ResponseWriter, r *http.Request) {
		var patch scoreboard.ScoreboardConfig
		if err := httputil.DecodeJSON(r, &patch); err != nil {
			httputil.BadRequest(w, "Invalid scoreboard config payload", err)
			return
		}
		httputil.JSON(w, http.StatusOK, svc.UpdateScoreboardConfig(r.Context(), patch))
	})

	r.Patch("/api/settings/keyboard", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Bindings map[string]string `json:"bindings"`
			Enabled  *bool             `json:"enabled"`
		}
		if err := httputil.DecodeJSON(r, &body); err != nil {
			httputil.BadRequest(w, "Invalid keyboard payload", err)
			return
		}
		if body.Bindings != nil {
			svc.UpdateKeyboardBindings(r.Context(), body.Bindings)
		}
		if body.Enabled != nil {
			svc.SetKeyboardShortcutsEnabled(r.Context(), *body.Enabled)
		}
		httputil.JSON(w, http.StatusOK, svc.Settings())
	})

	r.Put("/api/settings/target-score", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			TargetScore *int `json:"targetScore"`
		}
		if err := httputil.DecodeJSON(r, &body); err != nil {
			httputil.BadRequest(w, "Invalid target score payload", err)
			return
		}
		svc.SetDefaultTargetScore(r.Context(), body.TargetScore)
		httputil.JSON(w, http.StatusOK, svc.Settings())
	})

	r.Put("/api/settings/theme", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			ThemeID string `json:"themeId"`
		}
		if err := httputil.DecodeJSON(r, &body); err != nil {
			httputil.BadRequest(w, "Invalid theme payload", err)
			return
		}
		svc.SetCurrentTheme(r.Context(), body.ThemeID)
		httputil.JSON(w, http.StatusOK, svc.ResolvedTheme())
	})

	r.Get("/api/themes", func(w http.ResponseWriter, r *http.Request) {
		settings := svc.Settings()
		httputil.JSON(w, http.StatusOK, map[string]any{
			"presets": scoreboard.PresetThemes(),
			"custom":  settings.CustomThemes,
			"active":  svc.ResolvedTheme(),
		})
	})

	r.Post("/api/themes", func(w http.ResponseWriter, r *http.Request) {
		var theme scoreboard.Theme
		if err := httputil.DecodeJSON(r, &theme); err != nil {
			httputil.BadRequest(w, "Invalid theme payload", err)
			return
		}
		httputil.JSON(w, http.StatusCreated, svc.AddCustomTheme(r.Context(), theme))
	})

	r.Patch("/api/themes/{id}", func(w http.ResponseWriter, r *http.Request) {
		var theme scoreboard.Theme
		if err := httputil.DecodeJSON(r, &theme); err != nil {
			httputil.BadRequest(w, "Invalid theme payload", err)
			return
		}
		updated, err := svc.UpdateCustomTheme(r.Context(), chi.URLParam(r, "id"), theme)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		httputil.JSON(w, http.StatusOK, updated)
	})

	r.Delete("/api/themes/{id}", func(w http.ResponseWriter, r *http.Request) {
		if err := svc.DeleteCustomTheme(r.Context(), chi.URLParam(r, "id")); err != nil {
			writeServiceError(w, err)
			return
		}
		httputil.NoContent(w)
	})

	r.Post("/api/reset", func(w http.ResponseWriter, r *http.Request) {
		svc.ResetAllData(r.Context())
		httputil.NoContent(w)
	})

	return r
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidSelection),
		errors.Is(err, service.ErrUnknownStat),
		errors.Is(err, service.ErrUnknownSide):
		httputil.BadRequest(w, err.Error(), nil)
	case errors.Is(err, service.ErrTeamNotFound),
		errors.Is(err, service.ErrPlayerNotFound),
		errors.Is(err, service.ErrGameNotFound),
		errors.Is(err, service.ErrThemeNotFound),
		errors.Is(err, service.ErrNoCurrentGame):
		httputil.NotFound(w, err.Error(), nil)
	default:
		httputil.InternalServerError(w, "Unexpected error", err)
	}
}
