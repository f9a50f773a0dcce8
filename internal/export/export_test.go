package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/unclebandit/campaign-insights/internal/analytics"
)

func sampleReport() InsightReport {
	return InsightReport{
		Title:          "HealthKart Campaign Insights",
		CurrencySymbol: "₹",
		Campaign:       "FitLife",
		TotalRevenue:   1234567.891,
		TotalPayout:    250,
		ROAS:           3.2,
		Insights: analytics.Insights{
			TopInfluencer:        "Asha Rao",
			BestPlatform:         "Instagram",
			LowestROASInfluencer: "Ben Cole",
		},
		TopInfluencers: []analytics.TopInfluencer{
			{Name: "Asha Rao", Platform: "Instagram", Category: "Fitness", Revenue: 900.5, Orders: 7},
			{Name: "Ben Cole", Platform: "YouTube", Category: "Health", Revenue: 333.333, Orders: 2},
		},
	}
}

func TestFormatCurrency(t *testing.T) {
	cases := map[float64]string{
		0:           "₹0.00",
		5:           "₹5.00",
		999.999:     "₹1,000.00",
		1234.5:      "₹1,234.50",
		1234567.891: "₹1,234,567.89",
		-98765.4:    "₹-98,765.40",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatCurrency("₹", in), "input %v", in)
	}
	assert.Equal(t, "3.20x", FormatROAS(3.2))
	assert.Equal(t, "0.00x", FormatROAS(0))
}

func TestReportText(t *testing.T) {
	text := sampleReport().Text()

	for _, want := range []string{
		"HealthKart Campaign Insights\n",
		"Campaign: FitLife\n",
		"Total Revenue: ₹1,234,567.89\n",
		"Total Payout: ₹250.00\n",
		"ROAS: 3.20x\n",
		"Top Influencer: Asha Rao\n",
		"Best Platform: Instagram\n",
		"Lowest ROAS Influencer: Ben Cole\n",
		"Top Influencers Table:\n",
	} {
		assert.Contains(t, text, want)
	}

	table := TopInfluencersTable(sampleReport().TopInfluencers)
	assert.Contains(t, table, "name")
	assert.Contains(t, table, "900.50")
	assert.Contains(t, table, "333.33")
	assert.Less(t, strings.Index(table, "Asha Rao"), strings.Index(table, "Ben Cole"))
}

func TestReportTextEmptyTable(t *testing.T) {
	r := sampleReport()
	r.TopInfluencers = nil
	r.Insights = analytics.Insights{TopInfluencer: analytics.NotAvailable, BestPlatform: analytics.NotAvailable, LowestROASInfluencer: analytics.NotAvailable}

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, r))
	assert.Contains(t, buf.String(), "Top Influencer: N/A")
	assert.Contains(t, buf.String(), "revenue")
}

func TestTopInfluencersCSVRoundTrip(t *testing.T) {
	rows := sampleReport().TopInfluencers
	rows = append(rows, analytics.TopInfluencer{Name: "Cole, \"Benji\"", Platform: "Twitter", Category: "Lifestyle", Revenue: 0.1 + 0.2, Orders: 1})

	var buf bytes.Buffer
	require.NoError(t, WriteTopInfluencersCSV(&buf, rows))
	assert.True(t, strings.HasPrefix(buf.String(), "name,platform,category,revenue,orders\n"))

	got, err := ReadTopInfluencersCSV(&buf)
	require.NoError(t, err)
	require.Len(t, got, len(rows))
	for i := range rows {
		assert.Equal(t, rows[i].Name, got[i].Name)
		assert.Equal(t, rows[i].Platform, got[i].Platform)
		assert.Equal(t, rows[i].Category, got[i].Category)
		assert.Equal(t, rows[i].Revenue, got[i].Revenue)
		assert.Equal(t, rows[i].Orders, got[i].Orders)
	}
}

func TestReadTopInfluencersCSVErrors(t *testing.T) {
	_, err := ReadTopInfluencersCSV(strings.NewReader(""))
	assert.Error(t, err)

	_, err = ReadTopInfluencersCSV(strings.NewReader("name,platform,category,revenue,orders\nA,B,C,x,1\n"))
	assert.ErrorContains(t, err, "revenue")
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, sampleReport()))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	assert.Equal(t, 1, pageCount(buf.Bytes()))
}

func TestWritePDFOverflowDoesNotPaginate(t *testing.T) {
	r := sampleReport()
	for i := 0; i < 80; i++ {
		r.TopInfluencers = append(r.TopInfluencers, analytics.TopInfluencer{Name: "filler", Platform: "Twitter", Revenue: 1})
	}
	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, r))
	assert.Equal(t, 1, pageCount(buf.Bytes()))
}

func TestWriteTopInfluencersXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTopInfluencersXLSX(&buf, sampleReport().TopInfluencers))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(topInfluencersSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"name", "platform", "category", "revenue", "orders"}, rows[0])
	assert.Equal(t, "Asha Rao", rows[1][0])
	assert.Equal(t, "7", rows[1][4])
}

func pageCount(pdf []byte) int {
	return bytes.Count(pdf, []byte("/Type /Page")) - bytes.Count(pdf, []byte("/Type /Pages"))
}
