package controller

import (
	"net/http"

	"github.com/unclebandit/campaign-insights/internal/service"
)

const (
	paramCampaign = "campaign"
	paramPlatform = "platform"
	paramBrand    = "brand"
	paramProduct  = "product"
)

// ParseFilterQuery reads the selection from repeatable query parameters.
// An absent parameter keeps the default; a parameter given only as an
// empty value (?platform=) selects nothing.
func ParseFilterQuery(r *http.Request) service.FilterQuery {
	values := r.URL.Query()

	var q service.FilterQuery
	if _, ok := values[paramCampaign]; ok {
		c := values.Get(paramCampaign)
		q.Campaign = &c
	}
	q.Platforms = multi(values[paramPlatform])
	q.Brands = multi(values[paramBrand])
	q.Products = multi(values[paramProduct])
	return q
}

func multi(raw []string) []string {
	if raw == nil {
		return nil
	}
	out := []string{}
	for _, s := range raw {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
