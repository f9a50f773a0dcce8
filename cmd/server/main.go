// cmd/server/main.go
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/unclebandit/campaign-insights/internal/bootstrap"
	"github.com/unclebandit/campaign-insights/internal/config"
	"github.com/unclebandit/campaign-insights/internal/logger"
	"github.com/unclebandit/campaign-insights/internal/queue"
	"github.com/unclebandit/campaign-insights/internal/repository"
	"github.com/unclebandit/campaign-insights/internal/scheduler"
	"github.com/unclebandit/campaign-insights/internal/service"
)

const reportTimeout = 2 * time.Minute

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.FatalErr(err, "failed to load config")
	}
	logger.Init(cfg.Environment)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closeRepo, err := bootstrap.DatasetRepository(ctx, cfg)
	if err != nil {
		logger.FatalErr(err, "failed to open dataset source")
	}
	defer closeRepo()

	datasetService := service.NewDatasetService(repo, &repository.CSVDatasetRepository{Dir: cfg.DataDir})
	if _, err := datasetService.Load(ctx); err != nil {
		logger.FatalErr(err, "failed to load dataset", zap.String("source", cfg.DataSource))
	}

	q, external, closeQueue, err := bootstrap.ReportQueue(cfg)
	if err != nil {
		logger.FatalErr(err, "failed to connect report queue")
	}
	defer closeQueue()

	dashboardService := &service.DashboardService{
		Datasets:       datasetService,
		Title:          cfg.DashboardTitle,
		CurrencySymbol: cfg.CurrencySymbol,
		ExportDir:      cfg.ExportDir,
	}
	reportService := &service.ReportService{
		Datasets:       datasetService,
		Queue:          q,
		Dir:            cfg.ReportsDir,
		Title:          cfg.DashboardTitle,
		CurrencySymbol: cfg.CurrencySymbol,
	}
	if !external {
		if err := queue.StartReportSubscriber(q, reportService, reportTimeout); err != nil {
			logger.FatalErr(err, "failed to start report subscriber")
		}
	}

	if cfg.ReportSchedule != "" {
		sched, err := scheduler.New(cfg.ReportSchedule, datasetService, reportService)
		if err != nil {
			logger.FatalErr(err, "failed to schedule reports")
		}
		sched.Start()
		defer sched.Stop()
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           routes(datasetService, dashboardService, reportService, cfg.DashboardTitle),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server running", zap.String("addr", srv.Addr), zap.String("source", cfg.DataSource))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.FatalErr(err, "server failed")
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.ErrorErr(err, "graceful shutdown failed")
	}
}
