package controller

import (
	"io"
	"mime/multipart"
	"net/http"

	appErrors "github.com/unclebandit/campaign-insights/internal/errors"
	"github.com/unclebandit/campaign-insights/internal/model"
	"github.com/unclebandit/campaign-insights/internal/service"
)

const maxUploadBytes = 32 << 20

// uploadFields maps multipart field names onto dataset file names.
var uploadFields = []struct {
	Field string
	File  string
}{
	{"influencers", model.FileInfluencers},
	{"posts", model.FilePosts},
	{"tracking_data", model.FileTracking},
	{"payouts", model.FilePayouts},
}

type DatasetController struct {
	DatasetService *service.DatasetService
}

func (c *DatasetController) GetDataset(w http.ResponseWriter, r *http.Request) {
	sum, err := c.DatasetService.Summary()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sum)
}

func (c *DatasetController) UseSample(w http.ResponseWriter, r *http.Request) {
	sum, err := c.DatasetService.UseSample(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sum)
}

func (c *DatasetController) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, appErrors.NewIncompleteDataset(model.DatasetFiles))
		return
	}
	defer r.MultipartForm.RemoveAll()

	files := map[string]io.Reader{}
	for _, f := range uploadFields {
		headers := r.MultipartForm.File[f.Field]
		if len(headers) == 0 {
			continue
		}
		file, err := headers[0].Open()
		if err != nil {
			badRequest(w, "cannot read "+f.Field+": "+err.Error())
			return
		}
		defer func(file multipart.File) { file.Close() }(file)
		files[f.File] = file
	}

	sum, err := c.DatasetService.Upload(files)
	if err != nil {
		if appErrors.IsLoadError(err) {
			badRequest(w, err.Error())
			return
		}
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sum)
}
