package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/AdamBeresnev/scorebug-studio/internal/db"
	"github.com/AdamBeresnev/scorebug-studio/internal/logger"
	"github.com/AdamBeresnev/scorebug-studio/internal/service"
	"github.com/AdamBeresnev/scorebug-studio/internal/store"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	logger.Init()

	database := db.InitDB(getEnv("SCOREBUG_DB", "scorebug.db"))
	defer database.Close()

	if err := db.RunMigrations(database.DB); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	appState := store.NewAppStateStore(database)
	scoreboardService, err := service.NewScoreboardService(context.Background(), appState)
	if err != nil {
		log.Fatal("Failed to load application state:", err)
	}

	router := newRouter(scoreboardService)

	addr := getEnv("SCOREBUG_ADDR", ":8080")
	log.Println("Server starting on http://localhost" + addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal(err)
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
