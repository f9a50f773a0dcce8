package service

import (
	"github.com/unclebandit/campaign-insights/internal/analytics"
	"github.com/unclebandit/campaign-insights/internal/model"
)

// FilterQuery is a partial selection. A nil field takes its default; a
// non-nil empty slice selects nothing.
type FilterQuery struct {
	Campaign  *string
	Platforms []string
	Brands    []string
	Products  []string
}

func (q FilterQuery) Resolve(ds *model.Dataset) analytics.FilterConfig {
	cfg := analytics.DefaultFilter(ds)
	if q.Campaign != nil {
		cfg.Campaign = *q.Campaign
	}
	if q.Platforms != nil {
		cfg.Platforms = q.Platforms
	}
	if q.Brands != nil {
		cfg.Brands = q.Brands
	}
	if q.Products != nil {
		cfg.Products = q.Products
	}
	return cfg
}

func queryFromRequest(req model.ReportRequest) FilterQuery {
	campaign := req.Campaign
	return FilterQuery{
		Campaign:  &campaign,
		Platforms: req.Platforms,
		Brands:    req.Brands,
		Products:  req.Products,
	}
}
