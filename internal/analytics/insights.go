package analytics

import "sort"

// NotAvailable is the insight value used when its source table is empty.
const NotAvailable = "N/A"

type Insights struct {
	TopInfluencer        string `json:"top_influencer"`
	BestPlatform         string `json:"best_platform"`
	LowestROASInfluencer string `json:"lowest_roas_influencer"`
}

func SelectInsights(m Metrics) Insights {
	return Insights{
		TopInfluencer:        topInfluencerName(m.TopInfluencers),
		BestPlatform:         bestPlatform(m.PlatformDistribution),
		LowestROASInfluencer: lowestROASName(m.InfluencerROAS),
	}
}

func topInfluencerName(rows []TopInfluencer) string {
	if len(rows) == 0 {
		return NotAvailable
	}
	return rows[0].Name
}

func bestPlatform(counts []PlatformCount) string {
	if len(counts) == 0 {
		return NotAvailable
	}
	best := counts[0]
	for _, c := range counts[1:] {
		if c.Count > best.Count || (c.Count == best.Count && c.Platform < best.Platform) {
			best = c
		}
	}
	return best.Platform
}

func lowestROASName(rows []InfluencerROAS) string {
	if len(rows) == 0 {
		return NotAvailable
	}
	sorted := make([]InfluencerROAS, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(a, b int) bool { return sorted[a].ROAS < sorted[b].ROAS })
	return sorted[0].Name
}

// ROASDescending returns a copy of rows ordered by ROAS, highest first, for
// charting.
func ROASDescending(rows []InfluencerROAS) []InfluencerROAS {
	sorted := make([]InfluencerROAS, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(a, b int) bool { return sorted[a].ROAS > sorted[b].ROAS })
	return sorted
}
