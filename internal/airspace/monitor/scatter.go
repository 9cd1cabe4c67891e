package monitor

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/banshee-data/airspace.report/internal/airspace"
)

// maxScatterPoints caps chart payload size; large runs are downsampled by
// stride. Conflicted points are always kept.
const maxScatterPoints = 20000

// WriteConflictScatter renders an HTML scatter of the airspace: clear
// points in one series, conflicted points in another. Axes are forced
// square so distances read true.
func WriteConflictScatter(w io.Writer, points []airspace.Point, pairs []airspace.ConflictPair, size float64) error {
	conflicted := make(map[int]bool, len(pairs)*2)
	for _, p := range pairs {
		conflicted[p.A] = true
		conflicted[p.B] = true
	}

	stride := 1
	if len(points) > maxScatterPoints {
		stride = (len(points) + maxScatterPoints - 1) / maxScatterPoints
	}

	clearData := make([]opts.ScatterData, 0, len(points)/stride+1)
	hot := make([]opts.ScatterData, 0, len(conflicted))
	for i, p := range points {
		if conflicted[p.ID] {
			hot = append(hot, opts.ScatterData{Value: []interface{}{p.X, p.Y}})
			continue
		}
		if i%stride != 0 {
			continue
		}
		clearData = append(clearData, opts.ScatterData{Value: []interface{}{p.X, p.Y}})
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Airspace Conflicts", Theme: "dark", Width: "900px", Height: "900px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Airspace Conflict Scatter",
			Subtitle: fmt.Sprintf("points=%d conflicted=%d stride=%d", len(points), len(conflicted), stride),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Min: 0, Max: size, Name: "X (m)", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Min: 0, Max: size, Name: "Y (m)", NameLocation: "middle", NameGap: 30}),
	)

	scatter.AddSeries("clear", clearData, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 3}))
	scatter.AddSeries("conflict", hot, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 6}))

	if err := scatter.Render(w); err != nil {
		return fmt.Errorf("failed to render scatter: %w", err)
	}
	return nil
}
