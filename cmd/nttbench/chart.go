package main

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/tuneinsight/ntt/ring"
)

func newTimingChart(lit ring.ParametersLiteral, results []result) *charts.Bar {

	title := fmt.Sprintf("NTT N=%d", lit.N)
	subtitle := fmt.Sprintf("%d iterations, lut=%t, workers=%d", len(results[0].Times), lit.PowerTable, lit.Workers)

	labels := make([]string, len(results))
	mean := make([]opts.BarData, len(results))
	median := make([]opts.BarData, len(results))

	for i, res := range results {
		labels[i] = res.Strategy.String()
		mean[i] = opts.BarData{Value: res.Mean}
		median[i] = opts.BarData{Value: res.Median}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "1200px", Height: "600px"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "ms"}),
	)
	bar.SetXAxis(labels).
		AddSeries("mean", mean).
		AddSeries("median", median).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(true)}))

	return bar
}

// writeChart renders the timings of results as an HTML page at path.
func writeChart(path string, lit ring.ParametersLiteral, results []result) (err error) {

	page := components.NewPage()
	page.AddCharts(newTimingChart(lit, results))

	f, err := os.Create(path)
	if err != nil {
		return
	}

	if err = page.Render(f); err != nil {
		f.Close()
		return
	}

	return f.Close()
}
