//    MetaMine: topic models and term statistics for data-catalog metadata
//    License: GNU GENERAL PUBLIC LICENSE 3

package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencatalogtools/metamine/internal/pairs"
)

func TestWritePage(t *testing.T) {
	bar := NewBar("Most frequent terms", "field: description", []LabeledValue{
		{Label: "sea", Value: 120},
		{Label: "ice", Value: 90},
		{Label: "moon", Value: 40},
	})

	dir := filepath.Join(t.TempDir(), "charts")
	p, err := WritePage(dir, "tokens.html", bar)
	require.NoError(t, err)

	// the output directory is created on demand and the page is real html
	content, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Contains(t, string(content), "echarts")
	assert.Contains(t, string(content), "Most frequent terms")
}

func TestWritePageMultipleCharts(t *testing.T) {
	bar := NewBar("bar", "", []LabeledValue{{Label: "sea", Value: 1}})
	g := NewPairGraph("pairs", []pairs.Pair{
		{A: "ice", B: "sea", N: 3},
		{A: "moon", B: "sea", N: 1},
	})

	p, err := WritePage(t.TempDir(), "page.html", bar, g)
	require.NoError(t, err)

	content, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Contains(t, string(content), "pairs")
}

func TestCorrGraphNodes(t *testing.T) {
	g := NewCorrGraph("corr", []pairs.Correlation{
		{A: "ice", B: "sea", N: 3, Phi: 0.71},
		{A: "ice", B: "cold", N: 2, Phi: 0.55},
	})
	require.NotNil(t, g)

	p, err := WritePage(t.TempDir(), "corr.html", g)
	require.NoError(t, err)

	content, err := os.ReadFile(p)
	require.NoError(t, err)
	// every distinct term becomes a node
	for _, term := range []string{"ice", "sea", "cold"} {
		assert.Contains(t, string(content), term)
	}
}
