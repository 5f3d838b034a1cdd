//    MetaMine: topic models and term statistics for data-catalog metadata
//    License: GNU GENERAL PUBLIC LICENSE 3

package render

import (
	"fmt"

	"github.com/danaugrs/go-tsne/tsne"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/gonum/mat"

	"github.com/opencatalogtools/metamine/internal/gen"
	"github.com/opencatalogtools/metamine/internal/topics"
	"github.com/opencatalogtools/metamine/internal/vv"
)

//
// TOPIC SCATTERPLOTS
//

// NewTopicScatter - embed the document/topic matrix into two dimensions via t-SNE
// and scatter the documents, one series per dominant topic
func NewTopicScatter(title string, f *topics.Fit) *charts.Scatter {
	const (
		VERBOSE    = false
		SYMSIZE    = 6
		SAVETYPE   = "svg"
		SAVESTR    = "Save to file..."
		SERIESNAME = "topic %02d"
		UNASSIGNED = "(empty)"
		SUBTITLE   = "%d documents, %d topics; t-SNE embedding"
		DOTSL      = ", 60%, 45%, .66)"
	)

	nd := len(f.DocIDs)
	wv := mat.NewDense(nd, f.K, gen.Flatten(f.DocTopics))

	t := tsne.NewTSNE(2, vv.TSNEPERPLEXITY, vv.TSNELEARNRATE, vv.TSNEMAXITER, VERBOSE)
	t.EmbedData(wv, nil)

	// bucket the embedded points by dominant topic; -1 collects the empty documents
	series := make(map[int][]opts.ScatterData)
	for d := 0; d < nd; d++ {
		k := f.DominantTopic(d)
		x := t.Y.At(d, 0)
		y := t.Y.At(d, 1)
		series[k] = append(series[k], opts.ScatterData{Value: []interface{}{x, y}, SymbolSize: SYMSIZE})
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: vv.DEFAULTCHRTWIDTH, Height: vv.DEFAULTCHRTHEIGHT}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: fmt.Sprintf(SUBTITLE, nd, f.K)}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: true,
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{Show: true, Type: SAVETYPE, Name: title, Title: SAVESTR},
			},
		}),
	)

	// hue rotates around the wheel so neighboring topics look distinct
	topiccolor := func(k int) string {
		hue := (k * 360) / f.K
		return "hsla(" + fmt.Sprintf("%d", hue) + DOTSL
	}

	for k := 0; k < f.K; k++ {
		if len(series[k]) == 0 {
			continue
		}
		scatter.AddSeries(fmt.Sprintf(SERIESNAME, k+1), series[k],
			charts.WithItemStyleOpts(opts.ItemStyle{Color: topiccolor(k)}))
	}
	if len(series[-1]) != 0 {
		scatter.AddSeries(UNASSIGNED, series[-1])
	}

	return scatter
}
