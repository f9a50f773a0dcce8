package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	v "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/unclebandit/campaign-insights/internal/analytics"
	"github.com/unclebandit/campaign-insights/internal/export"
	"github.com/unclebandit/campaign-insights/internal/logger"
	"github.com/unclebandit/campaign-insights/internal/model"
	"github.com/unclebandit/campaign-insights/internal/queue"
)

// ReportService queues report requests and renders them into REPORTS_DIR.
type ReportService struct {
	Datasets       DatasetProvider
	Queue          queue.Queue
	Dir            string
	Title          string
	CurrencySymbol string
	Now            func() time.Time
}

func ValidateReportRequest(req model.ReportRequest) error {
	formats := make([]interface{}, len(model.ReportFormats))
	for i, f := range model.ReportFormats {
		formats[i] = f
	}
	return v.ValidateStruct(&req,
		v.Field(&req.Campaign, v.Required),
		v.Field(&req.Formats, v.Required, v.Each(v.In(formats...))),
	)
}

// Enqueue validates req, stamps it and publishes it on queue.TopicReports.
func (s *ReportService) Enqueue(req model.ReportRequest) (*model.ReportRequest, error) {
	if err := ValidateReportRequest(req); err != nil {
		return nil, err
	}
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	req.RequestedAt = s.now()

	if err := s.Queue.Publish(queue.TopicReports, req); err != nil {
		return nil, fmt.Errorf("enqueue report: %w", err)
	}
	logger.Info("report queued", zap.String("request_id", req.ID), zap.String("campaign", req.Campaign))
	return &req, nil
}

var unsafeDirChars = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// Process runs the pipeline for req and writes each requested format into
// a fresh <campaign>-<unix>-<random> directory, so runs started in the same
// second never share one.
func (s *ReportService) Process(ctx context.Context, req model.ReportRequest) (*model.ReportResult, error) {
	if err := ValidateReportRequest(req); err != nil {
		return nil, err
	}
	ds, err := s.Datasets.Current()
	if err != nil {
		return nil, err
	}

	sum := analytics.Run(ds, queryFromRequest(req).Resolve(ds))
	rep := export.NewInsightReport(s.Title, s.CurrencySymbol, sum)

	name := fmt.Sprintf("%s-%d", unsafeDirChars.ReplaceAllString(req.Campaign, "_"), s.now().Unix())
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create report dir: %w", err)
	}
	dir, err := os.MkdirTemp(s.Dir, name+"-*")
	if err != nil {
		return nil, fmt.Errorf("create report dir: %w", err)
	}

	res := &model.ReportResult{RequestID: req.ID, Dir: dir}
	seen := map[string]bool{}
	for _, format := range req.Formats {
		if seen[format] {
			continue
		}
		seen[format] = true
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		a := artifactsByFormat[format]
		path := filepath.Join(dir, a.Name)
		if err := writeArtifact(path, a, rep); err != nil {
			return nil, err
		}
		res.Files = append(res.Files, a.Name)
	}
	return res, nil
}

func writeArtifact(path string, a artifact, rep export.InsightReport) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", a.Name, err)
	}
	if err := a.Write(f, rep); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", a.Name, err)
	}
	return f.Close()
}

func (s *ReportService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
