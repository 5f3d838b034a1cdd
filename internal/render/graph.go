//    MetaMine: topic models and term statistics for data-catalog metadata
//    License: GNU GENERAL PUBLIC LICENSE 3

package render

import (
	"fmt"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/opencatalogtools/metamine/internal/pairs"
	"github.com/opencatalogtools/metamine/internal/vv"
)

//
// CO-OCCURRENCE NETWORKS
//

// NewPairGraph - a force-layout network of co-occurring terms; edge values are raw pair counts
func NewPairGraph(title string, pp []pairs.Pair) *charts.Graph {
	links := make([]edge, len(pp))
	for i, p := range pp {
		links[i] = edge{A: p.A, B: p.B, Weight: float64(p.N)}
	}
	return newtermgraph(title, fmt.Sprintf("%d strongest pairings", len(pp)), links)
}

// NewCorrGraph - a force-layout network of correlated terms; edge values are phi coefficients
func NewCorrGraph(title string, cc []pairs.Correlation) *charts.Graph {
	links := make([]edge, len(cc))
	for i, c := range cc {
		links[i] = edge{A: c.A, B: c.B, Weight: c.Phi}
	}
	return newtermgraph(title, fmt.Sprintf("%d strongest correlations", len(cc)), links)
}

type edge struct {
	A      string
	B      string
	Weight float64
}

// newtermgraph - do the real work of building a network chart out of weighted term-term edges
func newtermgraph(title string, subtitle string, links []edge) *charts.Graph {
	const (
		SYMSIZE       = 25
		MINSYMSIZE    = 8
		PRECISON      = 4
		REPULSION     = 6000
		GRAVITY       = .15
		EDGELEN       = 40
		EDGEFNTSZ     = 8
		SERIESNAME    = ""
		LAYOUTTYPE    = "force"
		LABELPOSITON  = "right"
		DOTHUE        = 236
		DOTSL         = ", 33%, 40%, 1)"
		SAVETYPE      = "svg"
		SAVESTR       = "Save to file..."
		LINECURVINESS = 0 // non-zero will double-up the lines...
	)

	round := func(val float64) float32 {
		ratio := math.Pow(10, float64(PRECISON))
		return float32(math.Round(val*ratio) / ratio)
	}

	// node size tracks the number of edges a term participates in; the
	// busiest term gets SYMSIZE and the rest scale down from there
	degree := make(map[string]float64)
	var maxdeg float64
	for _, l := range links {
		degree[l.A] += 1
		degree[l.B] += 1
		maxdeg = math.Max(maxdeg, math.Max(degree[l.A], degree[l.B]))
	}

	vardot := func(i int) *opts.ItemStyle {
		dv := DOTHUE
		vd := "hsla(" + fmt.Sprintf("%d", dv) + DOTSL
		return &opts.ItemStyle{Color: vd}
	}

	valuelabel := opts.EdgeLabel{Show: true, FontSize: EDGEFNTSZ, Formatter: "{c}"}

	var gnn []opts.GraphNode
	var gll []opts.GraphLink
	used := make(map[string]bool)

	i := 0
	for _, l := range links {
		for _, t := range []string{l.A, l.B} {
			if used[t] {
				continue
			}
			sz := math.Max(MINSYMSIZE, (degree[t]/maxdeg)*SYMSIZE)
			gnn = append(gnn, opts.GraphNode{Name: t, Value: round(degree[t]), SymbolSize: fmt.Sprintf("%.4f", sz), ItemStyle: vardot(i)})
			used[t] = true
			i++
		}
		gll = append(gll, opts.GraphLink{Source: l.A, Target: l.B, Value: round(l.Weight), Label: &valuelabel})
	}

	graph := charts.NewGraph()
	graph.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: vv.DEFAULTCHRTWIDTH, Height: vv.DEFAULTCHRTHEIGHT}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: true,
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{Show: true, Type: SAVETYPE, Name: title, Title: SAVESTR},
			},
		}),
	)

	graph.AddSeries(SERIESNAME, gnn, gll).
		SetSeriesOptions(
			charts.WithLabelOpts(opts.Label{Show: true, Position: LABELPOSITON}),
			charts.WithGraphChartOpts(
				opts.GraphChart{
					Layout: LAYOUTTYPE,
					Force: &opts.GraphForce{
						Repulsion:  REPULSION,
						Gravity:    GRAVITY,
						EdgeLength: EDGELEN,
					},
					Roam:               true,
					FocusNodeAdjacency: true,
				},
			),
			charts.WithLineStyleOpts(opts.LineStyle{Curveness: LINECURVINESS}),
		)

	return graph
}
