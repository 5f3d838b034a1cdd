//    MetaMine: topic models and term statistics for data-catalog metadata
//    License: GNU GENERAL PUBLIC LICENSE 3

package topics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencatalogtools/metamine/internal/bag"
)

// a tiny corpus with two obvious themes; "the" is there to be stopped
func fixturebags() []bag.DocBag {
	return []bag.DocBag{
		{ID: "d1", Terms: []string{"sea", "ice", "ocean", "temperature", "sea"}},
		{ID: "d2", Terms: []string{"ocean", "sea", "ice", "salinity"}},
		{ID: "d3", Terms: []string{"sea", "ocean", "temperature", "ice"}},
		{ID: "d4", Terms: []string{"moon", "crater", "lunar", "regolith"}},
		{ID: "d5", Terms: []string{"lunar", "moon", "crater", "apollo"}},
		{ID: "d6", Terms: []string{"crater", "moon", "lunar", "basalt"}},
		{ID: "d7", Terms: nil},
	}
}

func smallconfig() Config {
	cfg := DefaultConfig()
	cfg.Topics = 2
	cfg.Iterations = 50
	cfg.XformPasses = 20
	cfg.BurnInPasses = 1
	cfg.Seed = 1
	cfg.Workers = 1
	return cfg
}

func TestModelShapes(t *testing.T) {
	f, err := Model(fixturebags(), nil, smallconfig())
	require.NoError(t, err)

	assert.Equal(t, 2, f.K)
	assert.Len(t, f.DocIDs, 7)
	assert.Len(t, f.DocTopics, 7)
	assert.Len(t, f.TermTopics, 2)
	assert.NotEmpty(t, f.Vocab)
	for _, row := range f.TermTopics {
		assert.Len(t, row, len(f.Vocab))
	}
	for _, row := range f.DocTopics {
		assert.Len(t, row, 2)
	}
}

func TestModelRowsSumToOne(t *testing.T) {
	f, err := Model(fixturebags(), nil, smallconfig())
	require.NoError(t, err)

	for _, row := range f.TermTopics {
		var sum float64
		for _, w := range row {
			sum += w
		}
		assert.InDelta(t, 1.0, sum, 1e-9)
	}

	for doc, row := range f.DocTopics {
		var sum float64
		for _, w := range row {
			sum += w
		}
		if f.DocIDs[doc] == "d7" {
			// the empty document's membership row stays zeroed
			assert.Zero(t, sum)
		} else {
			assert.InDelta(t, 1.0, sum, 1e-9)
		}
	}
}

func TestModelReproducible(t *testing.T) {
	// same seed, single worker: the fits must match cell for cell
	f1, err := Model(fixturebags(), nil, smallconfig())
	require.NoError(t, err)
	f2, err := Model(fixturebags(), nil, smallconfig())
	require.NoError(t, err)

	assert.Equal(t, f1.Vocab, f2.Vocab)
	for k := range f1.TermTopics {
		for v := range f1.TermTopics[k] {
			assert.InDelta(t, f1.TermTopics[k][v], f2.TermTopics[k][v], 1e-12)
		}
	}
	for d := range f1.DocTopics {
		for k := range f1.DocTopics[d] {
			assert.InDelta(t, f1.DocTopics[d][k], f2.DocTopics[d][k], 1e-12)
		}
	}
}

func TestModelStopwords(t *testing.T) {
	bags := []bag.DocBag{
		{ID: "d1", Terms: []string{"the", "sea", "ice"}},
		{ID: "d2", Terms: []string{"the", "moon", "crater"}},
	}
	f, err := Model(bags, []string{"the"}, smallconfig())
	require.NoError(t, err)
	assert.NotContains(t, f.Vocab, "the")
	assert.Contains(t, f.Vocab, "sea")
}

func TestFingerprint(t *testing.T) {
	bags := fixturebags()
	cfg := smallconfig()

	fp1 := Fingerprint(bags, cfg)
	fp2 := Fingerprint(bags, cfg)
	assert.Equal(t, fp1, fp2)
	assert.Len(t, fp1, 32)

	// settings are part of the identity
	cfg.Topics = 3
	assert.NotEqual(t, fp1, Fingerprint(bags, cfg))

	// and so is the corpus
	cfg.Topics = 2
	bags[0].Terms = append(bags[0].Terms, "plankton")
	assert.NotEqual(t, fp1, Fingerprint(bags, cfg))
}

func TestTopTerms(t *testing.T) {
	f, err := Model(fixturebags(), nil, smallconfig())
	require.NoError(t, err)

	top := f.TopTerms(0, 3)
	require.Len(t, top, 3)
	assert.GreaterOrEqual(t, top[0].Weight, top[1].Weight)
	assert.GreaterOrEqual(t, top[1].Weight, top[2].Weight)

	// asking for more than the vocabulary holds is not an error
	all := f.TopTerms(0, 10000)
	assert.Len(t, all, len(f.Vocab))
}
