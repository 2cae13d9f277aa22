package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Rrens/focusbot/internal/config"
	"github.com/Rrens/focusbot/internal/logger"
	"github.com/Rrens/focusbot/internal/repository/postgres"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	down := flag.Int("down", 0, "roll back this many migrations instead of migrating up")
	version := flag.Bool("version", false, "print the current schema version and exit")
	flag.Parse()

	// Load .env file if it exists
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	if _, err := logger.Setup(cfg.Logging); err != nil {
		log.Fatal().Err(err).Msg("Failed to set up logging")
	}

	if cfg.Database.URL == "" && cfg.Database.Host == "" {
		log.Fatal().Msg("DATABASE_URL (or database.host) is not set")
	}
	dsn := cfg.Database.DSN()

	switch {
	case *version:
		v, dirty, err := postgres.MigrationVersion(dsn)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to read schema version")
		}
		fmt.Fprintf(os.Stdout, "version=%d dirty=%t\n", v, dirty)
	case *down > 0:
		if err := postgres.RollbackMigrations(dsn, *down); err != nil {
			log.Fatal().Err(err).Msg("Rollback failed")
		}
	default:
		if err := postgres.RunMigrations(dsn); err != nil {
			log.Fatal().Err(err).Msg("Migration failed")
		}
	}
}
