package service

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"go.uber.org/zap"

	appErrors "github.com/unclebandit/campaign-insights/internal/errors"
	"github.com/unclebandit/campaign-insights/internal/logger"
	"github.com/unclebandit/campaign-insights/internal/model"
	"github.com/unclebandit/campaign-insights/internal/repository"
)

const SourceUpload = "upload"

// DatasetProvider hands out the current read-only snapshot.
type DatasetProvider interface {
	Current() (*model.Dataset, error)
}

// DatasetStore holds the active snapshot. Snapshots are never mutated after
// Set, so readers may keep using one after it has been replaced.
type DatasetStore struct {
	mu sync.RWMutex
	ds *model.Dataset
}

func (s *DatasetStore) Current() (*model.Dataset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.ds == nil {
		return nil, appErrors.ErrDatasetNotLoaded
	}
	return s.ds, nil
}

func (s *DatasetStore) Set(ds *model.Dataset) {
	s.mu.Lock()
	s.ds = ds
	s.mu.Unlock()
}

// DatasetService switches the store between the configured source, the
// bundled sample directory and user uploads.
type DatasetService struct {
	Repo   repository.DatasetRepositoryInterface
	Sample repository.DatasetRepositoryInterface
	Store  *DatasetStore
	Now    func() time.Time
}

func NewDatasetService(repo, sample repository.DatasetRepositoryInterface) *DatasetService {
	return &DatasetService{
		Repo:   repo,
		Sample: sample,
		Store:  &DatasetStore{},
		Now:    time.Now,
	}
}

func (s *DatasetService) Current() (*model.Dataset, error) {
	return s.Store.Current()
}

// Load reads the configured source into the store.
func (s *DatasetService) Load(ctx context.Context) (model.DatasetSummary, error) {
	return s.loadFrom(ctx, s.Repo)
}

// UseSample reloads the sample directory, replacing any upload.
func (s *DatasetService) UseSample(ctx context.Context) (model.DatasetSummary, error) {
	return s.loadFrom(ctx, s.Sample)
}

func (s *DatasetService) loadFrom(ctx context.Context, repo repository.DatasetRepositoryInterface) (model.DatasetSummary, error) {
	ds, err := repo.Load(ctx)
	if err != nil {
		return model.DatasetSummary{}, fmt.Errorf("load %s dataset: %w", repo.Name(), err)
	}
	if ds.Source == "" {
		ds.Source = repo.Name()
	}
	if ds.LoadedAt.IsZero() {
		ds.LoadedAt = s.Now()
	}
	s.Store.Set(ds)

	sum := ds.Summary()
	logger.Info("dataset loaded",
		zap.String("source", sum.Source),
		zap.Int("influencers", sum.Influencers),
		zap.Int("posts", sum.Posts),
		zap.Int("tracking", sum.Tracking),
		zap.Int("payouts", sum.Payouts))
	return sum, nil
}

// Upload replaces the snapshot with four user-supplied files keyed by
// model.DatasetFiles name. Missing files leave the current snapshot alone.
func (s *DatasetService) Upload(files map[string]io.Reader) (model.DatasetSummary, error) {
	ds, err := repository.DecodeDataset(files)
	if err != nil {
		return model.DatasetSummary{}, err
	}
	ds.Source = SourceUpload
	ds.LoadedAt = s.Now()
	s.Store.Set(ds)

	logger.Info("dataset uploaded", zap.Int("tracking", len(ds.Tracking)))
	return ds.Summary(), nil
}

func (s *DatasetService) Summary() (model.DatasetSummary, error) {
	ds, err := s.Store.Current()
	if err != nil {
		return model.DatasetSummary{}, err
	}
	return ds.Summary(), nil
}
