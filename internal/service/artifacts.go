package service

import (
	"io"

	"github.com/unclebandit/campaign-insights/internal/export"
	"github.com/unclebandit/campaign-insights/internal/model"
)

type artifact struct {
	Name        string
	ContentType string
	Write       func(w io.Writer, r export.InsightReport) error
}

var artifactsByFormat = map[string]artifact{
	model.ReportCSV: {
		Name:        export.TopInfluencersCSVName,
		ContentType: "text/csv",
		Write: func(w io.Writer, r export.InsightReport) error {
			return export.WriteTopInfluencersCSV(w, r.TopInfluencers)
		},
	},
	model.ReportXLSX: {
		Name:        export.TopInfluencersXLSXName,
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Write: func(w io.Writer, r export.InsightReport) error {
			return export.WriteTopInfluencersXLSX(w, r.TopInfluencers)
		},
	},
	model.ReportText: {
		Name:        export.InsightsTextName,
		ContentType: "text/plain; charset=utf-8",
		Write:       export.WriteText,
	},
	model.ReportPDF: {
		Name:        export.InsightsPDFName,
		ContentType: "application/pdf",
		Write:       export.WritePDF,
	},
}

func artifactByName(name string) (artifact, bool) {
	for _, a := range artifactsByFormat {
		if a.Name == name {
			return a, true
		}
	}
	return artifact{}, false
}
