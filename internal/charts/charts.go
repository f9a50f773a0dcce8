package charts

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/unclebandit/campaign-insights/internal/analytics"
)

// qualitative palette, assigned to platforms in distribution order
var platformPalette = []string{"#66c2a5", "#fc8d62", "#8da0cb", "#e78ac3", "#a6d854", "#ffd92f"}

const roasColor = "#0073e6"

// Page builds the three dashboard charts for one summary.
func Page(title string, s analytics.Summary) *components.Page {
	colors := platformColors(s.Metrics.PlatformDistribution)

	page := components.NewPage()
	page.PageTitle = title
	page.AddCharts(
		TopInfluencersBar(s.Metrics.TopInfluencers, colors),
		PlatformPie(s.Metrics.PlatformDistribution, colors),
		ROASBar(s.Metrics.InfluencerROAS),
	)
	return page
}

func Render(w io.Writer, title string, s analytics.Summary) error {
	return Page(title, s).Render(w)
}

func TopInfluencersBar(rows []analytics.TopInfluencer, colors map[string]string) *charts.Bar {
	names := make([]string, 0, len(rows))
	data := make([]opts.BarData, 0, len(rows))
	for _, r := range rows {
		names = append(names, r.Name)
		data = append(data, opts.BarData{
			Name:      r.Platform,
			Value:     r.Revenue,
			ItemStyle: &opts.ItemStyle{Color: colors[r.Platform]},
		})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Top Influencers by Revenue"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
	)
	bar.SetXAxis(names).AddSeries("revenue", data)
	return bar
}

func PlatformPie(counts []analytics.PlatformCount, colors map[string]string) *charts.Pie {
	data := make([]opts.PieData, 0, len(counts))
	for _, c := range counts {
		data = append(data, opts.PieData{
			Name:      c.Platform,
			Value:     c.Count,
			ItemStyle: &opts.ItemStyle{Color: colors[c.Platform]},
		})
	}

	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Influencer Platform Share"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
	)
	pie.AddSeries("platform", data)
	return pie
}

// ROASBar plots per-influencer ROAS, highest first.
func ROASBar(rows []analytics.InfluencerROAS) *charts.Bar {
	sorted := analytics.ROASDescending(rows)
	names := make([]string, 0, len(sorted))
	data := make([]opts.BarData, 0, len(sorted))
	for _, r := range sorted {
		names = append(names, r.Name)
		data = append(data, opts.BarData{Value: roundTo(r.ROAS, 2)})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "ROAS by Influencer"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
		charts.WithColorsOpts(opts.Colors{roasColor}),
	)
	bar.SetXAxis(names).AddSeries("ROAS", data)
	return bar
}

func platformColors(counts []analytics.PlatformCount) map[string]string {
	colors := make(map[string]string, len(counts))
	for i, c := range counts {
		colors[c.Platform] = platformPalette[i%len(platformPalette)]
	}
	return colors
}
