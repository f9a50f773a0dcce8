package controller

import (
	"encoding/json"
	"net/http"

	v "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/unclebandit/campaign-insights/internal/model"
	"github.com/unclebandit/campaign-insights/internal/service"
)

type ReportController struct {
	ReportService *service.ReportService
}

type createReportBody struct {
	Campaign  string   `json:"campaign"`
	Platforms []string `json:"platforms"`
	Brands    []string `json:"brands"`
	Products  []string `json:"products"`
	Formats   []string `json:"formats"`
}

func (b createReportBody) Validate() error {
	return v.ValidateStruct(&b,
		v.Field(&b.Campaign, v.Required),
		v.Field(&b.Formats, v.Required),
	)
}

func (c *ReportController) CreateReport(w http.ResponseWriter, r *http.Request) {
	var body createReportBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		badRequest(w, "invalid body")
		return
	}
	if err := body.Validate(); err != nil {
		writeError(w, err)
		return
	}

	req, err := c.ReportService.Enqueue(model.ReportRequest{
		Campaign:  body.Campaign,
		Platforms: body.Platforms,
		Brands:    body.Brands,
		Products:  body.Products,
		Formats:   body.Formats,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, req)
}
