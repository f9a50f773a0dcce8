package scheduler

import (
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/unclebandit/campaign-insights/internal/analytics"
	"github.com/unclebandit/campaign-insights/internal/logger"
	"github.com/unclebandit/campaign-insights/internal/model"
)

type DatasetProvider interface {
	Current() (*model.Dataset, error)
}

type ReportEnqueuer interface {
	Enqueue(req model.ReportRequest) (*model.ReportRequest, error)
}

// ReportScheduler queues a default-selection report for every campaign in
// the current snapshot on a cron schedule.
type ReportScheduler struct {
	Datasets DatasetProvider
	Reports  ReportEnqueuer
	Formats  []string

	cron *cron.Cron
}

func New(schedule string, datasets DatasetProvider, reports ReportEnqueuer) (*ReportScheduler, error) {
	s := &ReportScheduler{
		Datasets: datasets,
		Reports:  reports,
		Formats:  model.ReportFormats,
		cron:     cron.New(),
	}
	if _, err := s.cron.AddFunc(schedule, func() { s.EnqueueAll() }); err != nil {
		return nil, fmt.Errorf("invalid report schedule %q: %w", schedule, err)
	}
	return s, nil
}

func (s *ReportScheduler) Start() {
	s.cron.Start()
	logger.Info("report scheduler started", zap.Int("entries", len(s.cron.Entries())))
}

// Stop waits for a running job to finish.
func (s *ReportScheduler) Stop() {
	<-s.cron.Stop().Done()
}

// EnqueueAll returns how many reports were queued.
func (s *ReportScheduler) EnqueueAll() int {
	ds, err := s.Datasets.Current()
	if err != nil {
		logger.Warn("scheduled reports skipped", zap.Error(err))
		return 0
	}

	queued := 0
	for _, campaign := range analytics.Options(ds).Campaigns {
		_, err := s.Reports.Enqueue(model.ReportRequest{
			Campaign: campaign,
			Formats:  s.Formats,
		})
		if err != nil {
			logger.ErrorErr(err, "scheduled report failed", zap.String("campaign", campaign))
			continue
		}
		queued++
	}
	logger.Info("scheduled reports queued", zap.Int("count", queued))
	return queued
}
