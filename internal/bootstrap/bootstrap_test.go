package bootstrap

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unclebandit/campaign-insights/internal/config"
	"github.com/unclebandit/campaign-insights/internal/queue"
	"github.com/unclebandit/campaign-insights/internal/repository"
)

func TestDatasetRepository_Sample(t *testing.T) {
	cfg := config.Defaults()
	cfg.DataDir = "/srv/data"

	repo, closeFn, err := DatasetRepository(context.Background(), &cfg)
	require.NoError(t, err)
	defer closeFn()

	csvRepo, ok := repo.(*repository.CSVDatasetRepository)
	require.True(t, ok)
	assert.Equal(t, "/srv/data", csvRepo.Dir)
}

func TestDatasetRepository_Remote(t *testing.T) {
	cfg := config.Defaults()
	cfg.DataSource = config.SourceRemote
	cfg.DatasetBaseURL = "https://cdn.example.com/data/"

	repo, _, err := DatasetRepository(context.Background(), &cfg)
	require.NoError(t, err)
	remote, ok := repo.(*repository.RemoteDatasetRepository)
	require.True(t, ok)
	assert.Equal(t, "https://cdn.example.com/data", remote.BaseURL)
}

func TestDatasetRepository_Unknown(t *testing.T) {
	cfg := config.Defaults()
	cfg.DataSource = "ftp"
	_, _, err := DatasetRepository(context.Background(), &cfg)
	assert.Error(t, err)
}

func TestReportQueue_InMemoryWithoutAMQP(t *testing.T) {
	cfg := config.Defaults()
	q, external, closeFn, err := ReportQueue(&cfg)
	require.NoError(t, err)
	defer closeFn()

	assert.False(t, external)
	assert.IsType(t, &queue.InMemoryQueue{}, q)
}
