// internal/model/dataset.go
package model

import "time"

// DateLayout is the on-disk format of every date column.
const DateLayout = "2006-01-02"

const (
	FileInfluencers = "influencers.csv"
	FilePosts       = "posts.csv"
	FileTracking    = "tracking_data.csv"
	FilePayouts     = "payouts.csv"
)

// DatasetFiles lists the four inputs in load order.
var DatasetFiles = []string{FileInfluencers, FilePosts, FileTracking, FilePayouts}

// Dataset is one complete, read-only snapshot of the four inputs.
type Dataset struct {
	Influencers []Influencer     `json:"influencers"`
	Posts       []Post           `json:"posts"`
	Tracking    []TrackingRecord `json:"tracking"`
	Payouts     []Payout         `json:"payouts"`

	Source   string    `json:"source"`
	LoadedAt time.Time `json:"loaded_at"`
}

type DatasetSummary struct {
	Source      string    `json:"source"`
	LoadedAt    time.Time `json:"loaded_at"`
	Influencers int       `json:"influencers"`
	Posts       int       `json:"posts"`
	Tracking    int       `json:"tracking_records"`
	Payouts     int       `json:"payouts"`
}

func (d *Dataset) Summary() DatasetSummary {
	return DatasetSummary{
		Source:      d.Source,
		LoadedAt:    d.LoadedAt,
		Influencers: len(d.Influencers),
		Posts:       len(d.Posts),
		Tracking:    len(d.Tracking),
		Payouts:     len(d.Payouts),
	}
}
