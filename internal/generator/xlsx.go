package generator

import (
	"github.com/xuri/excelize/v2"

	"github.com/unclebandit/campaign-insights/internal/model"
	"github.com/unclebandit/campaign-insights/internal/repository"
)

// WriteXLSX saves ds as a workbook with one sheet per dataset.
func WriteXLSX(path string, ds *model.Dataset) error {
	f := excelize.NewFile()
	defer f.Close()

	sheets := []struct {
		name   string
		header []string
		rows   [][]interface{}
	}{
		{"influencers", repository.InfluencerColumns, influencerRows(ds.Influencers)},
		{"posts", repository.PostColumns, postRows(ds.Posts)},
		{"tracking_data", repository.TrackingColumns, trackingRows(ds.Tracking)},
		{"payouts", repository.PayoutColumns, payoutRows(ds.Payouts)},
	}

	for i, s := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", s.name); err != nil {
				return err
			}
		} else if _, err := f.NewSheet(s.name); err != nil {
			return err
		}

		header := make([]interface{}, len(s.header))
		for j, h := range s.header {
			header[j] = h
		}
		if err := f.SetSheetRow(s.name, "A1", &header); err != nil {
			return err
		}
		for r, row := range s.rows {
			cell, _ := excelize.CoordinatesToCellName(1, r+2)
			if err := f.SetSheetRow(s.name, cell, &row); err != nil {
				return err
			}
		}
	}

	return f.SaveAs(path)
}

func influencerRows(in []model.Influencer) [][]interface{} {
	out := make([][]interface{}, len(in))
	for i, v := range in {
		out[i] = []interface{}{v.ID, v.Name, v.Category, v.Gender, v.FollowerCount, v.Platform}
	}
	return out
}

func postRows(in []model.Post) [][]interface{} {
	out := make([][]interface{}, len(in))
	for i, v := range in {
		out[i] = []interface{}{v.InfluencerID, v.Platform, v.Date.Format(model.DateLayout), v.URL, v.Caption, v.Reach, v.Likes, v.Comments}
	}
	return out
}

func trackingRows(in []model.TrackingRecord) [][]interface{} {
	out := make([][]interface{}, len(in))
	for i, v := range in {
		out[i] = []interface{}{v.Source, v.Campaign, v.InfluencerID, v.UserID, v.Product, v.Date.Format(model.DateLayout), v.Orders, v.Revenue}
	}
	return out
}

func payoutRows(in []model.Payout) [][]interface{} {
	out := make([][]interface{}, len(in))
	for i, v := range in {
		out[i] = []interface{}{v.InfluencerID, v.Basis, v.Rate, v.Orders, v.TotalPayout}
	}
	return out
}
