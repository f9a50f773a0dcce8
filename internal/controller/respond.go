package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	v "github.com/go-ozzo/ozzo-validation/v4"
	"go.uber.org/zap"

	appErrors "github.com/unclebandit/campaign-insights/internal/errors"
	"github.com/unclebandit/campaign-insights/internal/logger"
)

type errorBody struct {
	Error   string            `json:"error"`
	Missing []string          `json:"missing,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.ErrorErr(err, "encode response")
	}
}

// writeError maps domain errors onto HTTP statuses. Anything unrecognised is
// logged and reported as 500.
func writeError(w http.ResponseWriter, err error) {
	var incomplete *appErrors.ErrIncompleteDataset
	var unknown *appErrors.ErrUnknownExport
	var invalid v.Errors

	switch {
	case errors.As(err, &incomplete):
		writeJSON(w, http.StatusBadRequest, errorBody{
			Error:   appErrors.IncompleteDatasetPrompt,
			Missing: incomplete.Missing,
		})
	case errors.As(err, &invalid):
		fields := make(map[string]string, len(invalid))
		for k, fe := range invalid {
			fields[k] = fe.Error()
		}
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid request", Fields: fields})
	case errors.Is(err, appErrors.ErrDatasetNotLoaded):
		writeJSON(w, http.StatusConflict, errorBody{Error: err.Error()})
	case errors.As(err, &unknown):
		writeJSON(w, http.StatusNotFound, errorBody{Error: err.Error()})
	default:
		logger.Error("request failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: err.Error()})
	}
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorBody{Error: msg})
}
