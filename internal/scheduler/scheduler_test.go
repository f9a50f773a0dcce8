package scheduler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/unclebandit/campaign-insights/internal/errors"
	"github.com/unclebandit/campaign-insights/internal/model"
)

type stubDatasets struct {
	ds  *model.Dataset
	err error
}

func (s stubDatasets) Current() (*model.Dataset, error) { return s.ds, s.err }

type recordingEnqueuer struct {
	reqs   []model.ReportRequest
	failOn string
}

func (r *recordingEnqueuer) Enqueue(req model.ReportRequest) (*model.ReportRequest, error) {
	if req.Campaign == r.failOn {
		return nil, errors.New("broker down")
	}
	r.reqs = append(r.reqs, req)
	return &req, nil
}

func dataset() *model.Dataset {
	return &model.Dataset{
		Tracking: []model.TrackingRecord{
			{Campaign: "FitLife", InfluencerID: 1},
			{Campaign: "Summer2025", InfluencerID: 2},
			{Campaign: "FitLife", InfluencerID: 3},
			{Campaign: "BoostUp", InfluencerID: 1},
		},
	}
}

func TestNew_RejectsInvalidSpec(t *testing.T) {
	_, err := New("not a schedule", stubDatasets{}, &recordingEnqueuer{})
	assert.Error(t, err)
}

func TestEnqueueAll_OneReportPerCampaign(t *testing.T) {
	enq := &recordingEnqueuer{}
	s, err := New("@daily", stubDatasets{ds: dataset()}, enq)
	require.NoError(t, err)

	assert.Equal(t, 3, s.EnqueueAll())
	require.Len(t, enq.reqs, 3)
	assert.Equal(t, "FitLife", enq.reqs[0].Campaign)
	assert.Equal(t, "Summer2025", enq.reqs[1].Campaign)
	assert.Equal(t, "BoostUp", enq.reqs[2].Campaign)
	for _, req := range enq.reqs {
		assert.Nil(t, req.Platforms)
		assert.Equal(t, model.ReportFormats, req.Formats)
	}
}

func TestEnqueueAll_ContinuesPastFailures(t *testing.T) {
	enq := &recordingEnqueuer{failOn: "Summer2025"}
	s, err := New("@every 1h", stubDatasets{ds: dataset()}, enq)
	require.NoError(t, err)

	assert.Equal(t, 2, s.EnqueueAll())
}

func TestEnqueueAll_NoDataset(t *testing.T) {
	enq := &recordingEnqueuer{}
	s, err := New("@daily", stubDatasets{err: appErrors.ErrDatasetNotLoaded}, enq)
	require.NoError(t, err)

	assert.Equal(t, 0, s.EnqueueAll())
	assert.Empty(t, enq.reqs)
}

func TestStartStop(t *testing.T) {
	s, err := New("@daily", stubDatasets{ds: dataset()}, &recordingEnqueuer{})
	require.NoError(t, err)
	s.Start()
	s.Stop()
}
