package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/unclebandit/campaign-insights/internal/logger"
	"github.com/unclebandit/campaign-insights/internal/model"
)

// ReportProcessor renders a report request.
type ReportProcessor interface {
	Process(ctx context.Context, req model.ReportRequest) (*model.ReportResult, error)
}

// DecodeReportRequest accepts the in-memory payload (a request value or
// pointer) and the AMQP payload (a JSON body).
func DecodeReportRequest(payload any) (model.ReportRequest, error) {
	switch p := payload.(type) {
	case model.ReportRequest:
		return p, nil
	case *model.ReportRequest:
		if p == nil {
			return model.ReportRequest{}, fmt.Errorf("nil report request")
		}
		return *p, nil
	case []byte:
		var req model.ReportRequest
		if err := json.Unmarshal(p, &req); err != nil {
			return model.ReportRequest{}, fmt.Errorf("decode report request: %w", err)
		}
		return req, nil
	}
	return model.ReportRequest{}, fmt.Errorf("unexpected payload type %T", payload)
}

// StartReportSubscriber wires p to TopicReports. Undecodable payloads are
// dropped rather than retried.
func StartReportSubscriber(q Queue, p ReportProcessor, timeout time.Duration) error {
	return q.Subscribe(TopicReports, func(payload any) error {
		req, err := DecodeReportRequest(payload)
		if err != nil {
			logger.ErrorErr(err, "invalid report payload")
			return nil
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		logger.Info("processing report", zap.String("request_id", req.ID), zap.String("campaign", req.Campaign))
		res, err := p.Process(ctx, req)
		if err != nil {
			return err
		}
		logger.Info("report written",
			zap.String("request_id", req.ID),
			zap.String("dir", res.Dir),
			zap.Strings("files", res.Files))
		return nil
	})
}
