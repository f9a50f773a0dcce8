package repository

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/unclebandit/campaign-insights/internal/model"
)

// RemoteDatasetRepository downloads the four CSV files from BaseURL.
type RemoteDatasetRepository struct {
	BaseURL string
	Client  *resty.Client
}

func NewRemoteDatasetRepository(baseURL string) *RemoteDatasetRepository {
	return &RemoteDatasetRepository{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  resty.New(),
	}
}

func (r *RemoteDatasetRepository) Name() string {
	return "remote"
}

func (r *RemoteDatasetRepository) Load(ctx context.Context) (*model.Dataset, error) {
	files := make(map[string]io.Reader, len(model.DatasetFiles))
	for _, name := range model.DatasetFiles {
		url := r.BaseURL + "/" + name
		resp, err := r.Client.R().SetContext(ctx).Get(url)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", url, err)
		}
		if resp.IsError() {
			return nil, fmt.Errorf("fetch %s: unexpected status %d", url, resp.StatusCode())
		}
		files[name] = bytes.NewReader(resp.Body())
	}

	ds, err := DecodeDataset(files)
	if err != nil {
		return nil, err
	}
	ds.Source = r.Name()
	return ds, nil
}

var _ DatasetRepositoryInterface = (*RemoteDatasetRepository)(nil)
