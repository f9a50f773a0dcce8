package handler

import (
	"bytes"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/unclebandit/campaign-insights/internal/charts"
	"github.com/unclebandit/campaign-insights/internal/controller"
	appErrors "github.com/unclebandit/campaign-insights/internal/errors"
	"github.com/unclebandit/campaign-insights/internal/logger"
	"github.com/unclebandit/campaign-insights/internal/service"
)

// DashboardHandler serves the HTML chart page and the health probe.
type DashboardHandler struct {
	Service *service.DashboardService
	Title   string
}

// ChartsPage renders the three dashboard charts for the selection in the
// query string.
func (h *DashboardHandler) ChartsPage(w http.ResponseWriter, r *http.Request) {
	sum, err := h.Service.Summary(controller.ParseFilterQuery(r))
	if errors.Is(err, appErrors.ErrDatasetNotLoaded) {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	if err != nil {
		logger.ErrorErr(err, "charts page")
		http.Error(w, "failed to build dashboard: "+err.Error(), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := charts.Render(&buf, h.Title, sum); err != nil {
		logger.ErrorErr(err, "render charts", zap.String("campaign", sum.Filter.Campaign))
		http.Error(w, "failed to render charts", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

func Healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}
