// internal/model/payout.go
package model

const (
	BasisPost  = "post"
	BasisOrder = "order"
)

type Payout struct {
	InfluencerID int     `db:"influencer_id" json:"influencer_id"`
	Basis        string  `db:"basis" json:"basis"` // post, order
	Rate         float64 `db:"rate" json:"rate"`
	Orders       int     `db:"orders" json:"orders"`
	TotalPayout  float64 `db:"total_payout" json:"total_payout"`
}

// ComputeTotalPayout returns rate*orders for order-based payouts and the flat
// rate otherwise.
func ComputeTotalPayout(basis string, rate float64, orders int) float64 {
	if basis == BasisOrder {
		return rate * float64(orders)
	}
	return rate
}
