package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/unclebandit/campaign-insights/internal/analytics"
)

var topInfluencerHeader = []string{"name", "platform", "category", "revenue", "orders"}

// WriteTopInfluencersCSV writes the top influencers table. Revenue keeps full
// precision so reading the file back yields the same values.
func WriteTopInfluencersCSV(w io.Writer, rows []analytics.TopInfluencer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(topInfluencerHeader); err != nil {
		return err
	}
	for _, r := range rows {
		rec := []string{r.Name, r.Platform, r.Category, strconv.FormatFloat(r.Revenue, 'f', -1, 64), strconv.Itoa(r.Orders)}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadTopInfluencersCSV parses a file written by WriteTopInfluencersCSV.
func ReadTopInfluencersCSV(r io.Reader) ([]analytics.TopInfluencer, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: empty file", TopInfluencersCSVName)
	}

	out := []analytics.TopInfluencer{}
	for i, rec := range records[1:] {
		if len(rec) != len(topInfluencerHeader) {
			return nil, fmt.Errorf("%s line %d: expected %d columns, got %d", TopInfluencersCSVName, i+2, len(topInfluencerHeader), len(rec))
		}
		revenue, err := strconv.ParseFloat(rec[3], 64)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: revenue: %w", TopInfluencersCSVName, i+2, err)
		}
		orders, err := strconv.Atoi(rec[4])
		if err != nil {
			return nil, fmt.Errorf("%s line %d: orders: %w", TopInfluencersCSVName, i+2, err)
		}
		out = append(out, analytics.TopInfluencer{
			Name:     rec[0],
			Platform: rec[1],
			Category: rec[2],
			Revenue:  revenue,
			Orders:   orders,
		})
	}
	return out, nil
}
