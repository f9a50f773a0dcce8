package generator

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"

	"github.com/unclebandit/campaign-insights/internal/model"
)

type generator struct {
	cfg  Config
	rng  *rand.Rand
	fake *gofakeit.Faker
}

// Generate builds a referentially consistent dataset: every post, tracking
// record and payout points at a generated influencer, and each influencer
// has exactly one payout.
func Generate(cfg Config) (*model.Dataset, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Now.IsZero() {
		cfg.Now = time.Now()
	}

	g := &generator{
		cfg:  cfg,
		rng:  rand.New(rand.NewSource(cfg.Seed)),
		fake: gofakeit.New(cfg.Seed),
	}

	ds := &model.Dataset{Source: "generator", LoadedAt: cfg.Now}
	ds.Influencers = g.influencers()

	ids := make([]int, len(ds.Influencers))
	for i, inf := range ds.Influencers {
		ids[i] = inf.ID
	}

	ds.Posts = g.posts(ids)
	tracking, err := g.tracking(ids)
	if err != nil {
		return nil, err
	}
	ds.Tracking = tracking
	ds.Payouts = g.payouts(ids)
	return ds, nil
}

func (g *generator) influencers() []model.Influencer {
	out := make([]model.Influencer, 0, g.cfg.Influencers)
	for i := 0; i < g.cfg.Influencers; i++ {
		out = append(out, model.Influencer{
			ID:            i + 1,
			Name:          g.fake.Name(),
			Category:      g.pick(g.cfg.Categories),
			Gender:        g.pick(g.cfg.Genders),
			FollowerCount: g.between(g.cfg.Followers),
			Platform:      g.pick(g.cfg.Platforms),
		})
	}
	return out
}

func (g *generator) posts(ids []int) []model.Post {
	out := make([]model.Post, 0, g.cfg.Posts)
	for i := 0; i < g.cfg.Posts; i++ {
		out = append(out, model.Post{
			InfluencerID: ids[g.rng.Intn(len(ids))],
			Platform:     g.pick(g.cfg.Platforms),
			Date:         g.dateThisYear(),
			URL:          g.fake.URL(),
			Caption:      g.fake.Sentence(6),
			Reach:        g.between(g.cfg.Reach),
			Likes:        g.between(g.cfg.Likes),
			Comments:     g.between(g.cfg.Comments),
		})
	}
	return out
}

func (g *generator) tracking(ids []int) ([]model.TrackingRecord, error) {
	out := make([]model.TrackingRecord, 0, g.cfg.Tracking)
	for i := 0; i < g.cfg.Tracking; i++ {
		userID, err := uuid.NewRandomFromReader(g.rng)
		if err != nil {
			return nil, fmt.Errorf("generate user id: %w", err)
		}
		out = append(out, model.TrackingRecord{
			Source:       g.pick(g.cfg.Sources),
			Campaign:     g.pick(g.cfg.Campaigns),
			InfluencerID: ids[g.rng.Intn(len(ids))],
			UserID:       userID.String(),
			Product:      g.pick(g.cfg.Products),
			Date:         g.dateThisYear(),
			Orders:       g.between(g.cfg.TrackingOrders),
			Revenue:      round2(g.cfg.Revenue.Min + g.rng.Float64()*(g.cfg.Revenue.Max-g.cfg.Revenue.Min)),
		})
	}
	return out, nil
}

func (g *generator) payouts(ids []int) []model.Payout {
	out := make([]model.Payout, 0, len(ids))
	bases := []string{model.BasisPost, model.BasisOrder}
	for _, id := range ids {
		basis := g.pick(bases)
		rate := float64(g.between(g.cfg.PayoutRate))
		orders := g.between(g.cfg.PayoutOrders)
		out = append(out, model.Payout{
			InfluencerID: id,
			Basis:        basis,
			Rate:         rate,
			Orders:       orders,
			TotalPayout:  model.ComputeTotalPayout(basis, rate, orders),
		})
	}
	return out
}

func (g *generator) pick(values []string) string {
	return values[g.rng.Intn(len(values))]
}

func (g *generator) between(r IntRange) int {
	return r.Min + g.rng.Intn(r.Max-r.Min+1)
}

// dateThisYear returns a day between January 1st and Now.
func (g *generator) dateThisYear() time.Time {
	now := g.cfg.Now.UTC()
	start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	days := int(now.Sub(start).Hours() / 24)
	return start.AddDate(0, 0, g.rng.Intn(days+1))
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
