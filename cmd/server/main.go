package main

import (
	"context"

	"mailtriage/internal/config"
	"mailtriage/internal/database"
	"mailtriage/internal/llm"
	"mailtriage/internal/server"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Setup logger
	logger := cfg.SetupLogger()

	// Initialize database connection
	db, err := database.Open(cfg.DatabaseURL, cfg.DatabasePath)
	if err != nil {
		logger.Warn().Err(err).Msg("Database connection failed")
		logger.Info().Msg("Starting server without database connection")
	} else {
		ctx := context.Background()
		if err := database.InitSchema(ctx, db); err != nil {
			logger.Fatal().Err(err).Msg("Schema initialization failed")
		}
		if err := database.NewStore(db).SeedDefaultPrompts(ctx); err != nil {
			logger.Error().Err(err).Msg("Failed to seed default prompts")
		}
		logger.Info().Str("driver", db.DriverName()).Msg("Database ready")
	}

	// Construct the LLM gateway; a missing key degrades to disabled mode
	gateway := llm.NewClient(cfg, logger)

	// Create and initialize server
	srv := server.New(cfg, db, gateway, logger)
	srv.Initialize()

	// Start server
	if err := srv.Start(); err != nil {
		logger.Fatal().Err(err).Msg("Server failed to start")
	}
}
