package controller

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/unclebandit/campaign-insights/internal/service"
)

type DashboardController struct {
	DashboardService *service.DashboardService
}

func (c *DashboardController) Filters(w http.ResponseWriter, r *http.Request) {
	res, err := c.DashboardService.Filters()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (c *DashboardController) Dashboard(w http.ResponseWriter, r *http.Request) {
	res, err := c.DashboardService.Dashboard(ParseFilterQuery(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// Export streams the artifact named by the {name} URL parameter as a download.
func (c *DashboardController) Export(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	file, err := c.DashboardService.Export(ParseFilterQuery(r), name)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+file.Name+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(file.Body)))
	w.WriteHeader(http.StatusOK)
	w.Write(file.Body)
}
