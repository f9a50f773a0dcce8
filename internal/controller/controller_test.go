package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	v "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/unclebandit/campaign-insights/internal/errors"
)

func TestParseFilterQuery(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	q := ParseFilterQuery(r)
	assert.Nil(t, q.Campaign)
	assert.Nil(t, q.Platforms)
	assert.Nil(t, q.Brands)
	assert.Nil(t, q.Products)

	r = httptest.NewRequest(http.MethodGet, "/api/dashboard?campaign=FitLife&platform=Instagram&platform=YouTube&brand=&product=Omega-3", nil)
	q = ParseFilterQuery(r)
	require.NotNil(t, q.Campaign)
	assert.Equal(t, "FitLife", *q.Campaign)
	assert.Equal(t, []string{"Instagram", "YouTube"}, q.Platforms)
	assert.NotNil(t, q.Brands)
	assert.Empty(t, q.Brands)
	assert.Equal(t, []string{"Omega-3"}, q.Products)
}

func TestWriteErrorStatuses(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"incomplete", appErrors.NewIncompleteDataset([]string{"posts.csv"}), http.StatusBadRequest},
		{"validation", v.Errors{"campaign": errors.New("cannot be blank")}, http.StatusBadRequest},
		{"not loaded", fmt.Errorf("dashboard: %w", appErrors.ErrDatasetNotLoaded), http.StatusConflict},
		{"unknown export", appErrors.NewUnknownExport("x.doc"), http.StatusNotFound},
		{"other", errors.New("disk on fire"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			writeError(w, tt.err)
			assert.Equal(t, tt.code, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
		})
	}
}

func TestWriteErrorIncompleteBody(t *testing.T) {
	w := httptest.NewRecorder()
	writeError(w, appErrors.NewIncompleteDataset([]string{"posts.csv", "payouts.csv"}))

	var body errorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Please upload all 4 files to proceed.", body.Error)
	assert.Equal(t, []string{"posts.csv", "payouts.csv"}, body.Missing)
}

func TestCreateReportBodyValidate(t *testing.T) {
	assert.Error(t, createReportBody{}.Validate())
	assert.Error(t, createReportBody{Campaign: "A"}.Validate())
	assert.NoError(t, createReportBody{Campaign: "A", Formats: []string{"pdf"}}.Validate())
}
