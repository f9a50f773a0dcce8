package export

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/unclebandit/campaign-insights/internal/analytics"
)

// Lines renders the report as the fixed text block shared by the TXT and
// PDF exports.
func (r InsightReport) Lines() []string {
	lines := []string{
		r.Title,
		"",
		"Campaign: " + r.Campaign,
		"Total Revenue: " + FormatCurrency(r.CurrencySymbol, r.TotalRevenue),
		"Total Payout: " + FormatCurrency(r.CurrencySymbol, r.TotalPayout),
		"ROAS: " + FormatROAS(r.ROAS),
		"Top Influencer: " + r.Insights.TopInfluencer,
		"Best Platform: " + r.Insights.BestPlatform,
		"Lowest ROAS Influencer: " + r.Insights.LowestROASInfluencer,
		"",
		"Top Influencers Table:",
	}
	return append(lines, strings.Split(TopInfluencersTable(r.TopInfluencers), "\n")...)
}

func (r InsightReport) Text() string {
	return strings.Join(r.Lines(), "\n") + "\n"
}

func WriteText(w io.Writer, r InsightReport) error {
	_, err := io.WriteString(w, r.Text())
	return err
}

// TopInfluencersTable renders name, platform and revenue as a borderless
// plain-text table.
func TopInfluencersTable(rows []analytics.TopInfluencer) string {
	data := make([][]string, 0, len(rows))
	for _, row := range rows {
		data = append(data, []string{row.Name, row.Platform, FormatAmount(row.Revenue)})
	}

	cell := lipgloss.NewStyle().Padding(0, 1)
	t := table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		Headers("name", "platform", "revenue").
		Rows(data...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 2 {
				return cell.Align(lipgloss.Right)
			}
			return cell
		})

	return t.String()
}
