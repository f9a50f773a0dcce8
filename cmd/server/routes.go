package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/unclebandit/campaign-insights/internal/controller"
	"github.com/unclebandit/campaign-insights/internal/handler"
	"github.com/unclebandit/campaign-insights/internal/logger"
	"github.com/unclebandit/campaign-insights/internal/service"
)

func routes(datasets *service.DatasetService, dashboard *service.DashboardService, reports *service.ReportService, title string) http.Handler {
	datasetController := &controller.DatasetController{DatasetService: datasets}
	dashboardController := &controller.DashboardController{DashboardService: dashboard}
	reportController := &controller.ReportController{ReportService: reports}
	dashboardHandler := &handler.DashboardHandler{Service: dashboard, Title: title}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/healthz", handler.Healthz)
	r.Get("/dashboard", dashboardHandler.ChartsPage)

	r.Route("/api", func(r chi.Router) {
		r.Get("/datasets", datasetController.GetDataset)
		r.Post("/datasets/sample", datasetController.UseSample)
		r.Post("/datasets/upload", datasetController.Upload)

		r.Get("/filters", dashboardController.Filters)
		r.Get("/dashboard", dashboardController.Dashboard)
		r.Get("/export/{name}", dashboardController.Export)

		r.Post("/reports", reportController.CreateReport)
	})

	return r
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Int("bytes", ww.BytesWritten()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())))
	})
}
