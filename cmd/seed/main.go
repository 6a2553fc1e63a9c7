package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/gsbevilaqua83/private-rest-api/internal/flagx"
	"github.com/gsbevilaqua83/private-rest-api/internal/logging"
	"github.com/gsbevilaqua83/private-rest-api/internal/server/config"
	"github.com/gsbevilaqua83/private-rest-api/internal/server/repositories/repomanager"
	"github.com/gsbevilaqua83/private-rest-api/internal/server/seed"
)

func fixturePath() string {
	var path string
	fs := flag.NewFlagSet("seed", flag.ExitOnError)
	fs.StringVar(&path, "s", "fixtures.json", "path to the JSON fixture")
	_ = fs.Parse(flagx.FilterArgs(os.Args[1:], []string{"-s"}))
	return path
}

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewTextSlogLogger(os.Stderr, slog.LevelInfo)

	f, err := seed.ReadFixture(fixturePath())
	if err != nil {
		log.Fatalf("%v", err)
	}

	db, err := repomanager.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer db.Close()

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		log.Fatalf("%v", err)
	}

	if _, err := seed.NewSeeder(db, rm, logger, cfg.BcryptCost).Load(ctx, f); err != nil {
		logger.Error(ctx, "seed failed", "error", err)
		_ = db.Close()
		os.Exit(1)
	}
}
