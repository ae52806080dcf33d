// Command server runs the repository discovery and activity dashboard API.
// main reads configuration, builds the logger, and starts the server; all
// real logic lives under internal/.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/karn-cyber/RepoRecommendation/internal/server"
)

func main() {
	// A missing .env is fine; real deployments set the environment
	// directly.
	_ = godotenv.Load()

	level := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))

	port := 8080
	if portStr := os.Getenv("PORT"); portStr != "" {
		parsed, err := strconv.Atoi(portStr)
		if err != nil {
			logger.Error("invalid PORT value", slog.String("value", portStr))
			os.Exit(1)
		}
		port = parsed
	}

	callbackURL := os.Getenv("GITHUB_CALLBACK_URL")
	if callbackURL == "" {
		callbackURL = fmt.Sprintf("http://localhost:%d/api/github/oauth/callback", port)
	}

	clientURL := os.Getenv("CLIENT_URL")
	if clientURL == "" {
		clientURL = "http://localhost:5173"
	}

	if os.Getenv("GITHUB_CLIENT_ID") == "" {
		logger.Warn("GITHUB_CLIENT_ID not set — the OAuth connect flow will report unconfigured")
	}
	if os.Getenv("GITHUB_TOKEN") == "" {
		logger.Warn("GITHUB_TOKEN not set — search runs unauthenticated and rate-limited")
	}

	cfg := server.Config{
		Port:               port,
		GitHubToken:        os.Getenv("GITHUB_TOKEN"),
		GitHubClientID:     os.Getenv("GITHUB_CLIENT_ID"),
		GitHubClientSecret: os.Getenv("GITHUB_CLIENT_SECRET"),
		GitHubCallbackURL:  callbackURL,
		ClientURL:          clientURL,
	}

	srv := server.New(cfg, logger)
	if err := srv.Start(); err != nil {
		logger.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
