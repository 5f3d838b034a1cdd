//    MetaMine: topic models and term statistics for data-catalog metadata
//    License: GNU GENERAL PUBLIC LICENSE 3

package render

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/opencatalogtools/metamine/internal/vv"
)

//
// CHARTS
//

// each chart becomes a standalone html file in the output directory; nothing
// here needs a running server, unlike the usual go-echarts examples

// LabeledValue - one bar of a bar chart
type LabeledValue struct {
	Label string
	Value float64
}

// NewBar - a pre-formatted horizontal-label bar chart
func NewBar(title string, subtitle string, data []LabeledValue) *charts.Bar {
	const (
		ROTATELABELS = 45
		SAVETYPE     = "svg"
		SAVESTR      = "Save to file..."
	)

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: vv.DEFAULTCHRTWIDTH, Height: vv.DEFAULTCHRTHEIGHT}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: true,
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{Show: true, Type: SAVETYPE, Name: title, Title: SAVESTR},
			},
		}),
		charts.WithXAxisOpts(opts.XAxis{AxisLabel: &opts.AxisLabel{Show: true, Rotate: ROTATELABELS, Interval: "0"}}),
	)

	labels := make([]string, len(data))
	values := make([]opts.BarData, len(data))
	for i := 0; i < len(data); i++ {
		labels[i] = data[i].Label
		values[i] = opts.BarData{Value: data[i].Value}
	}

	bar.SetXAxis(labels).AddSeries("", values)
	return bar
}

// WritePage - render one or more charts into a standalone html file
func WritePage(outdir string, filename string, cc ...components.Charter) (string, error) {
	const (
		FAIL1 = "WritePage() could not create '%s': %w"
		FAIL2 = "WritePage() could not render '%s': %w"
	)

	if err := os.MkdirAll(outdir, os.FileMode(vv.CONFIGDIRPERMS)); err != nil {
		return "", fmt.Errorf(FAIL1, outdir, err)
	}

	p := filepath.Join(outdir, filename)
	f, err := os.Create(p)
	if err != nil {
		return "", fmt.Errorf(FAIL1, p, err)
	}
	defer f.Close()

	page := components.NewPage()
	page.AddCharts(cc...)
	if err := page.Render(f); err != nil {
		return "", fmt.Errorf(FAIL2, p, err)
	}
	return p, nil
}
