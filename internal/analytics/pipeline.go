package analytics

import "github.com/unclebandit/campaign-insights/internal/model"

// Summary is the full result of one filter pass.
type Summary struct {
	Filter   FilterConfig `json:"filter"`
	Metrics  Metrics      `json:"metrics"`
	Insights Insights     `json:"insights"`
}

// Run filters ds, aggregates and selects insights.
func Run(ds *model.Dataset, cfg FilterConfig) Summary {
	view := ApplyFilter(ds, cfg)
	metrics := Aggregate(ds, view)
	return Summary{
		Filter:   cfg,
		Metrics:  metrics,
		Insights: SelectInsights(metrics),
	}
}
