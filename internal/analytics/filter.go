package analytics

import "github.com/unclebandit/campaign-insights/internal/model"

// FilterConfig is the user's selection. A nil or empty set matches nothing;
// use DefaultFilter to select everything.
type FilterConfig struct {
	Campaign  string   `json:"campaign"`
	Platforms []string `json:"platforms"`
	Brands    []string `json:"brands"`
	Products  []string `json:"products"`
}

// FilterOptions lists the distinct selectable values in first-seen order.
type FilterOptions struct {
	Campaigns []string `json:"campaigns"`
	Platforms []string `json:"platforms"`
	Brands    []string `json:"brands"`
	Products  []string `json:"products"`
}

// FilteredView is the output of ApplyFilter.
type FilteredView struct {
	Influencers []model.Influencer
	Tracking    []model.TrackingRecord
}

func Options(ds *model.Dataset) FilterOptions {
	var campaigns, brands, products, platforms distinct
	for _, t := range ds.Tracking {
		campaigns.add(t.Campaign)
		brands.add(t.Source)
		products.add(t.Product)
	}
	for _, inf := range ds.Influencers {
		platforms.add(inf.Platform)
	}
	return FilterOptions{
		Campaigns: campaigns.list(),
		Platforms: platforms.list(),
		Brands:    brands.list(),
		Products:  products.list(),
	}
}

// DefaultFilter selects the first campaign and every platform, brand and product.
func DefaultFilter(ds *model.Dataset) FilterConfig {
	opts := Options(ds)
	cfg := FilterConfig{
		Platforms: opts.Platforms,
		Brands:    opts.Brands,
		Products:  opts.Products,
	}
	if len(opts.Campaigns) > 0 {
		cfg.Campaign = opts.Campaigns[0]
	}
	return cfg
}

func ApplyFilter(ds *model.Dataset, cfg FilterConfig) FilteredView {
	platforms := toSet(cfg.Platforms)
	brands := toSet(cfg.Brands)
	products := toSet(cfg.Products)

	view := FilteredView{
		Influencers: []model.Influencer{},
		Tracking:    []model.TrackingRecord{},
	}

	ids := make(map[int]struct{})
	for _, inf := range ds.Influencers {
		if _, ok := platforms[inf.Platform]; !ok {
			continue
		}
		view.Influencers = append(view.Influencers, inf)
		ids[inf.ID] = struct{}{}
	}

	for _, t := range ds.Tracking {
		if t.Campaign != cfg.Campaign {
			continue
		}
		if _, ok := brands[t.Source]; !ok {
			continue
		}
		if _, ok := products[t.Product]; !ok {
			continue
		}
		if _, ok := ids[t.InfluencerID]; !ok {
			continue
		}
		view.Tracking = append(view.Tracking, t)
	}

	return view
}

type distinct struct {
	seen   map[string]struct{}
	values []string
}

func (d *distinct) add(v string) {
	if d.seen == nil {
		d.seen = make(map[string]struct{})
	}
	if _, ok := d.seen[v]; ok {
		return
	}
	d.seen[v] = struct{}{}
	d.values = append(d.values, v)
}

func (d *distinct) list() []string {
	if d.values == nil {
		return []string{}
	}
	return d.values
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
