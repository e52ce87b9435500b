package stats

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

const (
	chartWidth  = "900px"
	chartHeight = "420px"
	xAxisRotate = 45
	barColor    = "#5470c6"
)

// bucketTitles maps bucket keys to chart titles, in BucketNames order.
var bucketTitles = map[string]string{
	"all":            "All Employees",
	"male":           "Men",
	"female":         "Women",
	"femalePartTime": "Women, Part-Time",
	"maleFullTime":   "Men, Full-Time",
}

// RenderHTML writes a single HTML page with one rank-ordered bar chart
// per bucket.
func RenderHTML(w io.Writer, statistics Statistics) error {
	page := components.NewPage()
	page.PageTitle = "Employee Name Frequencies"
	page.SetLayout(components.PageCenterLayout)

	statistics.ChartData.ForEach(func(name string, pairs []ChartPair) {
		page.AddCharts(createNameBarChart(bucketTitles[name], pairs))
	})

	err := page.Render(w)
	if err != nil {
		return fmt.Errorf("stats: render charts: %w", err)
	}

	return nil
}

func createNameBarChart(title string, pairs []ChartPair) *charts.Bar {
	bar := charts.NewBar()

	if len(pairs) == 0 {
		bar.SetGlobalOptions(
			charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
			charts.WithTitleOpts(opts.Title{Title: title, Subtitle: "No data"}),
		)

		return bar
	}

	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: "Name frequency, most common first"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{
			AxisLabel: &opts.AxisLabel{Rotate: xAxisRotate, Interval: "0"},
		}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Employees"}),
	)

	labels := make([]string, len(pairs))
	barData := make([]opts.BarData, len(pairs))

	for i, pair := range pairs {
		labels[i] = pair.Label
		barData[i] = opts.BarData{Value: pair.Value}
	}

	bar.SetXAxis(labels)
	bar.AddSeries("Employees", barData, charts.WithItemStyleOpts(opts.ItemStyle{Color: barColor}))

	return bar
}
