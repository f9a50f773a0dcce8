package export

import (
	"github.com/unclebandit/campaign-insights/internal/analytics"
)

const (
	TopInfluencersCSVName  = "top_influencers.csv"
	TopInfluencersXLSXName = "top_influencers.xlsx"
	InsightsTextName       = "campaign_insights.txt"
	InsightsPDFName        = "campaign_insights.pdf"
)

// InsightReport is everything the text and PDF exports print.
type InsightReport struct {
	Title          string
	CurrencySymbol string
	Campaign       string
	TotalRevenue   float64
	TotalPayout    float64
	ROAS           float64
	Insights       analytics.Insights
	TopInfluencers []analytics.TopInfluencer
}

func NewInsightReport(title, currency string, s analytics.Summary) InsightReport {
	return InsightReport{
		Title:          title,
		CurrencySymbol: currency,
		Campaign:       s.Filter.Campaign,
		TotalRevenue:   s.Metrics.TotalRevenue,
		TotalPayout:    s.Metrics.TotalPayout,
		ROAS:           s.Metrics.ROAS,
		Insights:       s.Insights,
		TopInfluencers: s.Metrics.TopInfluencers,
	}
}
