// internal/model/tracking_record.go
package model

import "time"

// TrackingRecord is one attributed conversion. Source is the brand the order
// came through.
type TrackingRecord struct {
	Source       string    `db:"source" json:"source"`
	Campaign     string    `db:"campaign" json:"campaign"`
	InfluencerID int       `db:"influencer_id" json:"influencer_id"`
	UserID       string    `db:"user_id" json:"user_id"`
	Product      string    `db:"product" json:"product"`
	Date         time.Time `db:"date" json:"date"`
	Orders       int       `db:"orders" json:"orders"`
	Revenue      float64   `db:"revenue" json:"revenue"`
}
