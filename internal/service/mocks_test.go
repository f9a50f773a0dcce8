package service

import (
	"context"
	"sync"

	"github.com/unclebandit/campaign-insights/internal/model"
)

// MockDatasetRepo returns a fixed dataset or error.
type MockDatasetRepo struct {
	name  string
	ds    *model.Dataset
	err   error
	calls int
}

func (m *MockDatasetRepo) Name() string { return m.name }

func (m *MockDatasetRepo) Load(ctx context.Context) (*model.Dataset, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	cp := *m.ds
	return &cp, nil
}

// MockQueue records published payloads.
type MockQueue struct {
	mu        sync.Mutex
	published []any
	err       error
}

func (m *MockQueue) Publish(topic string, payload any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.published = append(m.published, payload)
	return nil
}

func (m *MockQueue) Subscribe(topic string, handler func(payload any) error) error {
	return nil
}

func scenarioDataset() *model.Dataset {
	return &model.Dataset{
		Influencers: []model.Influencer{
			{ID: 1, Name: "Asha Rao", Category: "Fitness", Platform: "Instagram"},
			{ID: 2, Name: "Ben Cole", Category: "Health", Platform: "YouTube"},
		},
		Tracking: []model.TrackingRecord{
			{Source: "Instagram", Campaign: "A", InfluencerID: 1, Product: "Omega-3", Orders: 2, Revenue: 500},
			{Source: "YouTube", Campaign: "A", InfluencerID: 2, Product: "Omega-3", Orders: 1, Revenue: 300},
			{Source: "YouTube", Campaign: "B", InfluencerID: 2, Product: "Whey Protein", Orders: 4, Revenue: 1200},
		},
		Payouts: []model.Payout{
			{InfluencerID: 1, Basis: model.BasisPost, Rate: 250, Orders: 3, TotalPayout: 250},
			{InfluencerID: 2, Basis: model.BasisOrder, Rate: 100, Orders: 4, TotalPayout: 400},
		},
	}
}

func loadedStore() *DatasetStore {
	s := &DatasetStore{}
	s.Set(scenarioDataset())
	return s
}
