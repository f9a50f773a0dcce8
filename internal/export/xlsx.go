package export

import (
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/unclebandit/campaign-insights/internal/analytics"
)

const topInfluencersSheet = "Top Influencers"

func WriteTopInfluencersXLSX(w io.Writer, rows []analytics.TopInfluencer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", topInfluencersSheet); err != nil {
		return err
	}

	header := make([]interface{}, len(topInfluencerHeader))
	for i, h := range topInfluencerHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(topInfluencersSheet, "A1", &header); err != nil {
		return err
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []interface{}{r.Name, r.Platform, r.Category, r.Revenue, r.Orders}
		if err := f.SetSheetRow(topInfluencersSheet, cell, &values); err != nil {
			return err
		}
	}

	return f.Write(w)
}
