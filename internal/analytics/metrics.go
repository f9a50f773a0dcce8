package analytics

import (
	"sort"

	"github.com/unclebandit/campaign-insights/internal/model"
)

// TopInfluencerLimit caps the top influencers table.
const TopInfluencerLimit = 5

type Metrics struct {
	TotalRevenue          float64          `json:"total_revenue"`
	TotalPayout           float64          `json:"total_payout"`
	ROAS                  float64          `json:"roas"`
	RelevantInfluencerIDs []int            `json:"relevant_influencer_ids"`
	InfluencerROAS        []InfluencerROAS `json:"influencer_roas"`
	TopInfluencers        []TopInfluencer  `json:"top_influencers"`
	PlatformDistribution  []PlatformCount  `json:"platform_distribution"`
}

type InfluencerROAS struct {
	InfluencerID int     `json:"influencer_id"`
	Name         string  `json:"name"`
	Revenue      float64 `json:"revenue"`
	TotalPayout  float64 `json:"total_payout"`
	ROAS         float64 `json:"roas"`
}

type TopInfluencer struct {
	InfluencerID int     `json:"influencer_id"`
	Name         string  `json:"name"`
	Platform     string  `json:"platform"`
	Category     string  `json:"category"`
	Revenue      float64 `json:"revenue"`
	Orders       int     `json:"orders"`
}

type PlatformCount struct {
	Platform string `json:"platform"`
	Count    int    `json:"count"`
}

// Aggregate computes every KPI and derived table for a filtered view. Payout
// and influencer lookups use the unfiltered tables of ds.
func Aggregate(ds *model.Dataset, view FilteredView) Metrics {
	m := Metrics{
		TotalRevenue:          TotalRevenue(view.Tracking),
		RelevantInfluencerIDs: RelevantInfluencerIDs(view.Tracking),
	}
	m.TotalPayout = TotalPayout(ds.Payouts, m.RelevantInfluencerIDs)
	m.ROAS = ROAS(m.TotalRevenue, m.TotalPayout)
	m.InfluencerROAS = PerInfluencerROAS(view.Tracking, ds.Payouts, ds.Influencers)
	m.TopInfluencers = TopInfluencers(view.Tracking, ds.Influencers, TopInfluencerLimit)
	m.PlatformDistribution = PlatformDistribution(view.Influencers)
	return m
}

func TotalRevenue(tracking []model.TrackingRecord) float64 {
	var total float64
	for _, t := range tracking {
		total += t.Revenue
	}
	return total
}

// RelevantInfluencerIDs returns the distinct influencer ids in ascending order.
func RelevantInfluencerIDs(tracking []model.TrackingRecord) []int {
	seen := make(map[int]struct{})
	ids := []int{}
	for _, t := range tracking {
		if _, ok := seen[t.InfluencerID]; ok {
			continue
		}
		seen[t.InfluencerID] = struct{}{}
		ids = append(ids, t.InfluencerID)
	}
	sort.Ints(ids)
	return ids
}

// TotalPayout sums every payout row whose influencer is in ids. Duplicate
// payout rows for one influencer are all counted.
func TotalPayout(payouts []model.Payout, ids []int) float64 {
	wanted := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}
	var total float64
	for _, p := range payouts {
		if _, ok := wanted[p.InfluencerID]; ok {
			total += p.TotalPayout
		}
	}
	return total
}

// ROAS is revenue/payout, or 0 when payout is 0.
func ROAS(revenue, payout float64) float64 {
	if payout == 0 {
		return 0
	}
	return revenue / payout
}

type influencerTotals struct {
	id      int
	revenue float64
	orders  int
}

// groupByInfluencer sums tracking rows per influencer, ordered by id.
func groupByInfluencer(tracking []model.TrackingRecord) []influencerTotals {
	index := make(map[int]int)
	groups := []influencerTotals{}
	for _, t := range tracking {
		i, ok := index[t.InfluencerID]
		if !ok {
			i = len(groups)
			index[t.InfluencerID] = i
			groups = append(groups, influencerTotals{id: t.InfluencerID})
		}
		groups[i].revenue += t.Revenue
		groups[i].orders += t.Orders
	}
	sort.Slice(groups, func(a, b int) bool { return groups[a].id < groups[b].id })
	return groups
}

// PerInfluencerROAS joins per-influencer revenue with payouts and the roster.
// Influencers without a payout row, without a roster row, or with a zero
// total payout are left out so every ROAS is finite.
func PerInfluencerROAS(tracking []model.TrackingRecord, payouts []model.Payout, influencers []model.Influencer) []InfluencerROAS {
	payoutsByID := make(map[int][]model.Payout)
	for _, p := range payouts {
		payoutsByID[p.InfluencerID] = append(payoutsByID[p.InfluencerID], p)
	}
	rosterByID := rosterIndex(influencers)

	rows := []InfluencerROAS{}
	for _, g := range groupByInfluencer(tracking) {
		for _, p := range payoutsByID[g.id] {
			if p.TotalPayout == 0 {
				continue
			}
			for _, inf := range rosterByID[g.id] {
				rows = append(rows, InfluencerROAS{
					InfluencerID: g.id,
					Name:         inf.Name,
					Revenue:      g.revenue,
					TotalPayout:  p.TotalPayout,
					ROAS:         g.revenue / p.TotalPayout,
				})
			}
		}
	}
	return rows
}

// TopInfluencers ranks influencers by summed revenue, highest first, keeping
// id order among equal revenues.
func TopInfluencers(tracking []model.TrackingRecord, influencers []model.Influencer, limit int) []TopInfluencer {
	rosterByID := rosterIndex(influencers)

	rows := []TopInfluencer{}
	for _, g := range groupByInfluencer(tracking) {
		for _, inf := range rosterByID[g.id] {
			rows = append(rows, TopInfluencer{
				InfluencerID: g.id,
				Name:         inf.Name,
				Platform:     inf.Platform,
				Category:     inf.Category,
				Revenue:      g.revenue,
				Orders:       g.orders,
			})
		}
	}

	sort.SliceStable(rows, func(a, b int) bool { return rows[a].Revenue > rows[b].Revenue })
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}

// PlatformDistribution counts influencers per platform, largest first and
// alphabetical among equal counts.
func PlatformDistribution(influencers []model.Influencer) []PlatformCount {
	index := make(map[string]int)
	counts := []PlatformCount{}
	for _, inf := range influencers {
		i, ok := index[inf.Platform]
		if !ok {
			i = len(counts)
			index[inf.Platform] = i
			counts = append(counts, PlatformCount{Platform: inf.Platform})
		}
		counts[i].Count++
	}
	sort.Slice(counts, func(a, b int) bool {
		if counts[a].Count != counts[b].Count {
			return counts[a].Count > counts[b].Count
		}
		return counts[a].Platform < counts[b].Platform
	})
	return counts
}

// DistributionMap is the platform -> count view of a distribution.
func DistributionMap(counts []PlatformCount) map[string]int {
	out := make(map[string]int, len(counts))
	for _, c := range counts {
		out[c.Platform] = c.Count
	}
	return out
}

func rosterIndex(influencers []model.Influencer) map[int][]model.Influencer {
	idx := make(map[int][]model.Influencer, len(influencers))
	for _, inf := range influencers {
		idx[inf.ID] = append(idx[inf.ID], inf)
	}
	return idx
}
