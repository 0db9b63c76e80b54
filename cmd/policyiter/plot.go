package main

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// writeReturnsChart renders the per-episode returns and their running mean
// as a line chart and writes it to an HTML file.
func writeReturnsChart(path, mapName string, returns []float64) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("episode returns (%s)", mapName),
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: "shine",
		}),
	)

	var episodes []string
	for i := range returns {
		episodes = append(episodes, fmt.Sprintf("%d", i+1))
	}
	line = line.SetXAxis(episodes)

	perEpisode := make([]opts.LineData, 0, len(returns))
	runningMean := make([]opts.LineData, 0, len(returns))
	sum := 0.0
	for i, r := range returns {
		sum += r
		perEpisode = append(perEpisode, opts.LineData{Value: r})
		runningMean = append(runningMean, opts.LineData{Value: sum / float64(i+1)})
	}
	line.AddSeries("return", perEpisode)
	line.AddSeries("running mean", runningMean)

	page := components.NewPage()
	page.AddCharts(line)
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return page.Render(f)
}
