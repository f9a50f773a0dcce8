package generator

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/unclebandit/campaign-insights/internal/model"
)

func fixedConfig() Config {
	cfg := DefaultConfig()
	cfg.Seed = 42
	cfg.Now = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	return cfg
}

func TestGenerate_DefaultCounts(t *testing.T) {
	ds, err := Generate(fixedConfig())
	require.NoError(t, err)

	assert.Len(t, ds.Influencers, 30)
	assert.Len(t, ds.Posts, 100)
	assert.Len(t, ds.Tracking, 500)
	assert.Len(t, ds.Payouts, 30)
}

func TestGenerate_ReferentialConsistency(t *testing.T) {
	ds, err := Generate(fixedConfig())
	require.NoError(t, err)

	ids := map[int]bool{}
	for _, inf := range ds.Influencers {
		ids[inf.ID] = true
	}
	for _, p := range ds.Posts {
		assert.True(t, ids[p.InfluencerID], "post influencer %d", p.InfluencerID)
	}
	for _, tr := range ds.Tracking {
		assert.True(t, ids[tr.InfluencerID], "tracking influencer %d", tr.InfluencerID)
	}
	seen := map[int]bool{}
	for _, p := range ds.Payouts {
		assert.True(t, ids[p.InfluencerID])
		assert.False(t, seen[p.InfluencerID], "duplicate payout for %d", p.InfluencerID)
		seen[p.InfluencerID] = true
	}
}

func TestGenerate_PayoutTotals(t *testing.T) {
	ds, err := Generate(fixedConfig())
	require.NoError(t, err)

	for _, p := range ds.Payouts {
		switch p.Basis {
		case model.BasisPost:
			assert.Equal(t, p.Rate, p.TotalPayout)
		case model.BasisOrder:
			assert.Equal(t, p.Rate*float64(p.Orders), p.TotalPayout)
		default:
			t.Fatalf("unexpected basis %q", p.Basis)
		}
		assert.GreaterOrEqual(t, p.Rate, 500.0)
		assert.LessOrEqual(t, p.Rate, 5000.0)
		assert.GreaterOrEqual(t, p.Orders, 1)
		assert.LessOrEqual(t, p.Orders, 50)
	}
}

func TestGenerate_RangesAndDates(t *testing.T) {
	cfg := fixedConfig()
	ds, err := Generate(cfg)
	require.NoError(t, err)

	start := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	for _, inf := range ds.Influencers {
		assert.GreaterOrEqual(t, inf.FollowerCount, 10000)
		assert.LessOrEqual(t, inf.FollowerCount, 1000000)
		assert.Contains(t, cfg.Platforms, inf.Platform)
		assert.Contains(t, cfg.Categories, inf.Category)
		assert.NotEmpty(t, inf.Name)
	}
	for _, tr := range ds.Tracking {
		assert.GreaterOrEqual(t, tr.Revenue, 100.0)
		assert.LessOrEqual(t, tr.Revenue, 1000.0)
		assert.InDelta(t, tr.Revenue, round2(tr.Revenue), 1e-9)
		assert.GreaterOrEqual(t, tr.Orders, 1)
		assert.LessOrEqual(t, tr.Orders, 5)
		assert.False(t, tr.Date.Before(start))
		assert.False(t, tr.Date.After(cfg.Now))
		assert.Len(t, tr.UserID, 36)
		assert.Contains(t, cfg.Campaigns, tr.Campaign)
	}
	for _, p := range ds.Posts {
		assert.False(t, p.Date.Before(start))
		assert.False(t, p.Date.After(cfg.Now))
	}
}

func TestGenerate_SeedIsReproducible(t *testing.T) {
	a, err := Generate(fixedConfig())
	require.NoError(t, err)
	b, err := Generate(fixedConfig())
	require.NoError(t, err)

	assert.Equal(t, a.Influencers, b.Influencers)
	assert.Equal(t, a.Tracking, b.Tracking)
	assert.Equal(t, a.Payouts, b.Payouts)

	other := fixedConfig()
	other.Seed = 7
	c, err := Generate(other)
	require.NoError(t, err)
	assert.NotEqual(t, a.Tracking, c.Tracking)
}

func TestGenerate_InvalidConfig(t *testing.T) {
	cfg := fixedConfig()
	cfg.Influencers = 0
	_, err := Generate(cfg)
	assert.Error(t, err)

	cfg = fixedConfig()
	cfg.Campaigns = nil
	_, err = Generate(cfg)
	assert.Error(t, err)

	cfg = fixedConfig()
	cfg.Reach = IntRange{Min: 10, Max: 1}
	_, err = Generate(cfg)
	assert.Error(t, err)
}

func TestLoadProfile_OverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	profile := "influencers: 5\ncampaigns: [Winter]\nrevenue:\n  min: 10\n  max: 20\n"
	require.NoError(t, os.WriteFile(path, []byte(profile), 0o644))

	cfg, err := LoadProfile(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Influencers)
	assert.Equal(t, 100, cfg.Posts)
	assert.Equal(t, []string{"Winter"}, cfg.Campaigns)
	assert.Equal(t, FloatRange{Min: 10, Max: 20}, cfg.Revenue)
	assert.Equal(t, []string{"Instagram", "YouTube", "Twitter"}, cfg.Platforms)
}

func TestWriteXLSX_OneSheetPerDataset(t *testing.T) {
	cfg := fixedConfig()
	cfg.Influencers, cfg.Posts, cfg.Tracking = 3, 4, 5
	ds, err := Generate(cfg)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "dataset.xlsx")
	require.NoError(t, WriteXLSX(path, ds))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"influencers", "posts", "tracking_data", "payouts"}, f.GetSheetList())

	rows, err := f.GetRows("tracking_data")
	require.NoError(t, err)
	require.Len(t, rows, 6)
	assert.Equal(t, "source", rows[0][0])
	assert.Equal(t, "revenue", rows[0][7])
}
