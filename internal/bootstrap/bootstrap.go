// Package bootstrap builds the dataset source and report queue selected by
// the configuration. It is shared by the server and worker binaries.
package bootstrap

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/unclebandit/campaign-insights/internal/config"
	"github.com/unclebandit/campaign-insights/internal/db"
	"github.com/unclebandit/campaign-insights/internal/logger"
	"github.com/unclebandit/campaign-insights/internal/queue"
	"github.com/unclebandit/campaign-insights/internal/repository"
)

func noop() error { return nil }

// DatasetRepository returns the configured source and a close func for any
// connection it holds.
func DatasetRepository(ctx context.Context, cfg *config.Config) (repository.DatasetRepositoryInterface, func() error, error) {
	switch cfg.DataSource {
	case config.SourceSample:
		return &repository.CSVDatasetRepository{Dir: cfg.DataDir}, noop, nil
	case config.SourcePostgres:
		conn, err := db.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return &repository.PostgresDatasetRepository{DB: conn}, conn.Close, nil
	case config.SourceRemote:
		return repository.NewRemoteDatasetRepository(cfg.DatasetBaseURL), noop, nil
	}
	return nil, nil, fmt.Errorf("unknown data source %q", cfg.DataSource)
}

// ReportQueue returns RabbitMQ when AMQP_URL is set and an in-memory queue
// otherwise. external reports whether another process consumes the queue.
func ReportQueue(cfg *config.Config) (q queue.Queue, external bool, closeFn func() error, err error) {
	if cfg.AMQPURL == "" {
		logger.Info("using in-memory report queue")
		return queue.NewInMemoryQueue(), false, noop, nil
	}
	aq, err := queue.NewAMQPQueue(cfg.AMQPURL)
	if err != nil {
		return nil, false, nil, err
	}
	logger.Info("using rabbitmq report queue", zap.String("topic", queue.TopicReports))
	return aq, true, aq.Close, nil
}
