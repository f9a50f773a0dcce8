package service

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/unclebandit/campaign-insights/internal/analytics"
	appErrors "github.com/unclebandit/campaign-insights/internal/errors"
	"github.com/unclebandit/campaign-insights/internal/export"
	"github.com/unclebandit/campaign-insights/internal/logger"
)

// DashboardService answers the interactive dashboard from the current
// snapshot. Every call recomputes the pipeline.
type DashboardService struct {
	Datasets       DatasetProvider
	Title          string
	CurrencySymbol string
	ExportDir      string
}

type FiltersResult struct {
	Options  analytics.FilterOptions `json:"options"`
	Defaults analytics.FilterConfig  `json:"defaults"`
}

// KPIs are the headline numbers formatted for display.
type KPIs struct {
	TotalRevenue string `json:"total_revenue"`
	TotalPayout  string `json:"total_payout"`
	ROAS         string `json:"roas"`
}

type DashboardResult struct {
	Title    string                 `json:"title"`
	Filter   analytics.FilterConfig `json:"filter"`
	KPIs     KPIs                   `json:"kpis"`
	Metrics  analytics.Metrics      `json:"metrics"`
	Insights analytics.Insights     `json:"insights"`
}

// ExportFile is a rendered export ready to stream.
type ExportFile struct {
	Name        string
	ContentType string
	Body        []byte
	SavedTo     string
}

func (s *DashboardService) Filters() (*FiltersResult, error) {
	ds, err := s.Datasets.Current()
	if err != nil {
		return nil, err
	}
	return &FiltersResult{
		Options:  analytics.Options(ds),
		Defaults: analytics.DefaultFilter(ds),
	}, nil
}

func (s *DashboardService) Summary(q FilterQuery) (analytics.Summary, error) {
	ds, err := s.Datasets.Current()
	if err != nil {
		return analytics.Summary{}, err
	}
	return analytics.Run(ds, q.Resolve(ds)), nil
}

func (s *DashboardService) Dashboard(q FilterQuery) (*DashboardResult, error) {
	sum, err := s.Summary(q)
	if err != nil {
		return nil, err
	}
	return &DashboardResult{
		Title:  s.Title,
		Filter: sum.Filter,
		KPIs: KPIs{
			TotalRevenue: export.FormatCurrency(s.CurrencySymbol, sum.Metrics.TotalRevenue),
			TotalPayout:  export.FormatCurrency(s.CurrencySymbol, sum.Metrics.TotalPayout),
			ROAS:         export.FormatROAS(sum.Metrics.ROAS),
		},
		Metrics:  sum.Metrics,
		Insights: sum.Insights,
	}, nil
}

// Export renders the named artifact for the selection. When ExportDir is set
// a copy is also written there.
func (s *DashboardService) Export(q FilterQuery, name string) (*ExportFile, error) {
	a, ok := artifactByName(name)
	if !ok {
		return nil, appErrors.NewUnknownExport(name)
	}

	sum, err := s.Summary(q)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := a.Write(&buf, export.NewInsightReport(s.Title, s.CurrencySymbol, sum)); err != nil {
		return nil, fmt.Errorf("render %s: %w", name, err)
	}

	file := &ExportFile{Name: a.Name, ContentType: a.ContentType, Body: buf.Bytes()}
	if s.ExportDir != "" {
		if err := os.MkdirAll(s.ExportDir, 0o755); err != nil {
			return nil, fmt.Errorf("create export dir: %w", err)
		}
		path := filepath.Join(s.ExportDir, a.Name)
		if err := writeFileAtomic(path, file.Body); err != nil {
			return nil, fmt.Errorf("save %s: %w", name, err)
		}
		file.SavedTo = path
		logger.Info("export saved", zap.String("path", path))
	}
	return file, nil
}

// writeFileAtomic writes body next to path and renames it into place, so a
// reader sees either the previous file or the complete new one.
func writeFileAtomic(path string, body []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(body); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
