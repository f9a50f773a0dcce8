package repository

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	appErrors "github.com/unclebandit/campaign-insights/internal/errors"
	"github.com/unclebandit/campaign-insights/internal/model"
)

// DatasetRepositoryInterface is a source of complete dataset snapshots.
type DatasetRepositoryInterface interface {
	Load(ctx context.Context) (*model.Dataset, error)
	Name() string
}

// CSVDatasetRepository reads the four sample files from a directory.
type CSVDatasetRepository struct {
	Dir string
}

func (r *CSVDatasetRepository) Name() string {
	return "sample"
}

func (r *CSVDatasetRepository) Load(ctx context.Context) (*model.Dataset, error) {
	files := make(map[string]io.Reader, len(model.DatasetFiles))
	for _, name := range model.DatasetFiles {
		f, err := os.Open(filepath.Join(r.Dir, name))
		if err != nil {
			return nil, fmt.Errorf("open sample file: %w", err)
		}
		defer f.Close()
		files[name] = f
	}
	ds, err := DecodeDataset(files)
	if err != nil {
		return nil, err
	}
	ds.Source = r.Name()
	return ds, nil
}

// DecodeDataset parses the four files keyed by their canonical names. Missing
// entries are reported together as ErrIncompleteDataset before anything is
// parsed.
func DecodeDataset(files map[string]io.Reader) (*model.Dataset, error) {
	missing := []string{}
	for _, name := range model.DatasetFiles {
		if files[name] == nil {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, appErrors.NewIncompleteDataset(missing)
	}

	ds := &model.Dataset{LoadedAt: time.Now()}
	var err error
	if ds.Influencers, err = DecodeInfluencers(files[model.FileInfluencers]); err != nil {
		return nil, err
	}
	if ds.Posts, err = DecodePosts(files[model.FilePosts]); err != nil {
		return nil, err
	}
	if ds.Tracking, err = DecodeTracking(files[model.FileTracking]); err != nil {
		return nil, err
	}
	if ds.Payouts, err = DecodePayouts(files[model.FilePayouts]); err != nil {
		return nil, err
	}
	return ds, nil
}

// WriteDir writes ds as the four CSV files under dir, creating it if needed.
func WriteDir(dir string, ds *model.Dataset) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	writers := map[string]func(io.Writer) error{
		model.FileInfluencers: func(w io.Writer) error { return EncodeInfluencers(w, ds.Influencers) },
		model.FilePosts:       func(w io.Writer) error { return EncodePosts(w, ds.Posts) },
		model.FileTracking:    func(w io.Writer) error { return EncodeTracking(w, ds.Tracking) },
		model.FilePayouts:     func(w io.Writer) error { return EncodePayouts(w, ds.Payouts) },
	}
	for _, name := range model.DatasetFiles {
		if err := writeFile(filepath.Join(dir, name), writers[name]); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
	}
	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

var _ DatasetRepositoryInterface = (*CSVDatasetRepository)(nil)
