package model

import "time"

const (
	ReportCSV  = "csv"
	ReportText = "txt"
	ReportPDF  = "pdf"
	ReportXLSX = "xlsx"
)

// ReportFormats lists every artifact a report job can produce.
var ReportFormats = []string{ReportCSV, ReportText, ReportPDF, ReportXLSX}

// ReportRequest asks for a campaign report to be rendered in the background.
// A nil selection means every available value; an empty one selects nothing.
type ReportRequest struct {
	ID          string    `json:"id"`
	Campaign    string    `json:"campaign"`
	Platforms   []string  `json:"platforms"`
	Brands      []string  `json:"brands"`
	Products    []string  `json:"products"`
	Formats     []string  `json:"formats"`
	RequestedAt time.Time `json:"requested_at"`
}

// ReportResult describes the artifacts written for a request.
type ReportResult struct {
	RequestID string   `json:"request_id"`
	Dir       string   `json:"dir"`
	Files     []string `json:"files"`
}
