package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/unclebandit/campaign-insights/internal/bootstrap"
	"github.com/unclebandit/campaign-insights/internal/config"
	"github.com/unclebandit/campaign-insights/internal/logger"
	"github.com/unclebandit/campaign-insights/internal/queue"
	"github.com/unclebandit/campaign-insights/internal/service"
)

// reloadInterval refreshes the worker's snapshot so reports follow the
// configured source.
const reloadInterval = 10 * time.Minute

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.FatalErr(err, "failed to load config")
	}
	logger.Init(cfg.Environment)
	defer logger.Sync()

	if cfg.AMQPURL == "" {
		logger.Fatal("AMQP_URL is required for the report worker")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closeRepo, err := bootstrap.DatasetRepository(ctx, cfg)
	if err != nil {
		logger.FatalErr(err, "failed to open dataset source")
	}
	defer closeRepo()

	datasets := service.NewDatasetService(repo, repo)
	if _, err := datasets.Load(ctx); err != nil {
		logger.FatalErr(err, "failed to load dataset")
	}

	q, err := queue.NewAMQPQueue(cfg.AMQPURL)
	if err != nil {
		logger.FatalErr(err, "failed to connect to rabbitmq")
	}
	defer q.Close()

	reports := &service.ReportService{
		Datasets:       datasets,
		Queue:          q,
		Dir:            cfg.ReportsDir,
		Title:          cfg.DashboardTitle,
		CurrencySymbol: cfg.CurrencySymbol,
	}
	if err := queue.StartReportSubscriber(q, reports, 2*time.Minute); err != nil {
		logger.FatalErr(err, "failed to register consumer")
	}

	logger.Info("worker running, waiting for report jobs", zap.String("queue", queue.TopicReports))

	ticker := time.NewTicker(reloadInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			logger.Info("worker stopping")
			return
		case <-ticker.C:
			if _, err := datasets.Load(ctx); err != nil {
				logger.ErrorErr(err, "dataset reload failed, keeping previous snapshot")
			}
		}
	}
}
