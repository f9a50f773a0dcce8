// internal/model/influencer.go
package model

type Influencer struct {
	ID            int    `db:"id" json:"id"`
	Name          string `db:"name" json:"name"`
	Category      string `db:"category" json:"category"`
	Gender        string `db:"gender" json:"gender"`
	FollowerCount int    `db:"follower_count" json:"follower_count"`
	Platform      string `db:"platform" json:"platform"`
}
