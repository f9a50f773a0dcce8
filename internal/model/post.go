// internal/model/post.go
package model

import "time"

type Post struct {
	InfluencerID int       `db:"influencer_id" json:"influencer_id"`
	Platform     string    `db:"platform" json:"platform"`
	Date         time.Time `db:"date" json:"date"`
	URL          string    `db:"url" json:"url"`
	Caption      string    `db:"caption" json:"caption"`
	Reach        int       `db:"reach" json:"reach"`
	Likes        int       `db:"likes" json:"likes"`
	Comments     int       `db:"comments" json:"comments"`
}
