//    MetaMine: topic models and term statistics for data-catalog metadata
//    License: GNU GENERAL PUBLIC LICENSE 3

package pairs

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencatalogtools/metamine/internal/bag"
)

// four documents; "sea" and "ice" travel together, "moon" keeps to itself
func fixturetokens() []bag.Token {
	return []bag.Token{
		{ID: "d1", Term: "sea"}, {ID: "d1", Term: "ice"},
		{ID: "d2", Term: "sea"}, {ID: "d2", Term: "ice"},
		{ID: "d3", Term: "sea"}, {ID: "d3", Term: "ice"},
		{ID: "d4", Term: "moon"}, {ID: "d4", Term: "sea"},
	}
}

func TestCount(t *testing.T) {
	pp := Count(fixturetokens(), 1)

	require.Len(t, pp, 2)
	// sorted by count descending, so (ice, sea) leads
	assert.Equal(t, Pair{A: "ice", B: "sea", N: 3}, pp[0])
	assert.Equal(t, Pair{A: "moon", B: "sea", N: 1}, pp[1])
}

func TestCountPresenceNotFrequency(t *testing.T) {
	// a term repeated within one document still counts once per pair
	tt := append(fixturetokens(), bag.Token{ID: "d1", Term: "sea"}, bag.Token{ID: "d1", Term: "sea"})
	pp := Count(tt, 1)
	assert.Equal(t, 3, pp[0].N)
}

func TestCountMinDF(t *testing.T) {
	// "moon" appears in one document; mindf 2 removes it from the vocabulary
	pp := Count(fixturetokens(), 2)
	require.Len(t, pp, 1)
	assert.Equal(t, "ice", pp[0].A)
	assert.Equal(t, "sea", pp[0].B)
}

func TestCorrelatePhi(t *testing.T) {
	cc := Correlate(fixturetokens(), 1)

	// "sea" is in every document: zero variance, every pair involving it is skipped
	require.Len(t, cc, 0)
}

func TestCorrelatePhiByHand(t *testing.T) {
	// d1..d3 have both terms, d4 and d5 have neither, d6 has only "ice":
	// n11=3 n10=1 n01=0 n00=2 over 6 docs
	tt := []bag.Token{
		{ID: "d1", Term: "sea"}, {ID: "d1", Term: "ice"},
		{ID: "d2", Term: "sea"}, {ID: "d2", Term: "ice"},
		{ID: "d3", Term: "sea"}, {ID: "d3", Term: "ice"},
		{ID: "d4", Term: "moon"},
		{ID: "d5", Term: "moon"},
		{ID: "d6", Term: "ice"},
	}
	cc := Correlate(tt, 1)

	var found *Correlation
	for i := range cc {
		if cc[i].A == "ice" && cc[i].B == "sea" {
			found = &cc[i]
		}
	}
	require.NotNil(t, found)

	// phi = (3*2 - 1*0) / sqrt(4*2*3*3)
	want := 6.0 / math.Sqrt(72.0)
	assert.InDelta(t, want, found.Phi, 1e-12)
	assert.Equal(t, 3, found.N)
}

func TestCorrelateSorted(t *testing.T) {
	tt := []bag.Token{
		{ID: "d1", Term: "aa"}, {ID: "d1", Term: "bb"},
		{ID: "d2", Term: "aa"}, {ID: "d2", Term: "bb"},
		{ID: "d3", Term: "aa"}, {ID: "d3", Term: "cc"},
		{ID: "d4", Term: "cc"}, {ID: "d4", Term: "bb"},
		{ID: "d5", Term: "dd"},
	}
	cc := Correlate(tt, 1)
	for i := 1; i < len(cc); i++ {
		assert.GreaterOrEqual(t, cc[i-1].Phi, cc[i].Phi)
	}
}

func TestTopPairs(t *testing.T) {
	pp := Count(fixturetokens(), 1)
	assert.Len(t, TopPairs(pp, 1), 1)
	assert.Len(t, TopPairs(pp, 99), len(pp))
}
