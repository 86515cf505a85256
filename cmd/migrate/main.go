package main

import (
	"context"
	"fmt"

	"github.com/dimitrije/parking-control/internal/config"
	"github.com/dimitrije/parking-control/internal/database"
	"github.com/dimitrije/parking-control/internal/logging"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()

	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	fmt.Printf("Successfully applied %d migration statements\n", database.MigrationCount())
}
