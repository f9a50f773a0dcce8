// cmd/seeder/main.go
package main

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/unclebandit/campaign-insights/internal/config"
	"github.com/unclebandit/campaign-insights/internal/db"
	"github.com/unclebandit/campaign-insights/internal/logger"
	"github.com/unclebandit/campaign-insights/internal/repository"
)

// The seeder copies the CSV files in DATA_DIR into Postgres so the server can
// run with DATA_SOURCE=postgres.
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.FatalErr(err, "failed to load config")
	}
	logger.Init(cfg.Environment)
	defer logger.Sync()

	if cfg.DatabaseURL == "" {
		logger.Fatal("DATABASE_URL is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	ds, err := (&repository.CSVDatasetRepository{Dir: cfg.DataDir}).Load(ctx)
	if err != nil {
		logger.FatalErr(err, "failed to read csv files", zap.String("dir", cfg.DataDir))
	}

	conn, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.FatalErr(err, "failed to connect to database")
	}
	defer conn.Close()

	pg := &repository.PostgresDatasetRepository{DB: conn}
	if err := pg.Replace(ctx, ds); err != nil {
		logger.FatalErr(err, "failed to seed database")
	}

	logger.Info("database seeding completed",
		zap.Int("influencers", len(ds.Influencers)),
		zap.Int("posts", len(ds.Posts)),
		zap.Int("tracking", len(ds.Tracking)),
		zap.Int("payouts", len(ds.Payouts)))
}
