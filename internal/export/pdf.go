package export

import (
	"io"
	"strings"

	"github.com/go-pdf/fpdf"
)

const (
	pdfFontSize = 12
	pdfLeading  = pdfFontSize * 1.2
	pdfStartX   = 50
	// 750pt from the bottom of a 792pt Letter page
	pdfStartY = 792 - 750
)

// WritePDF prints the report lines on a single Letter page. Lines past the
// bottom margin are drawn off-page; there is no pagination.
func WritePDF(w io.Writer, r InsightReport) error {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", pdfFontSize)

	// core fonts are cp1252; the rupee sign is not in it
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	y := float64(pdfStartY)
	for _, line := range r.Lines() {
		line = strings.ReplaceAll(line, "₹", "Rs. ")
		pdf.Text(pdfStartX, y, tr(line))
		y += pdfLeading
	}

	return pdf.Output(w)
}
