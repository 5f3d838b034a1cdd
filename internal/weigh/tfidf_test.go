//    MetaMine: topic models and term statistics for data-catalog metadata
//    License: GNU GENERAL PUBLIC LICENSE 3

package weigh

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencatalogtools/metamine/internal/bag"
)

func fixturetokens() []bag.Token {
	// d1: sea sea ice; d2: sea moon; d3: moon moon
	return []bag.Token{
		{ID: "d1", Term: "sea"}, {ID: "d1", Term: "sea"}, {ID: "d1", Term: "ice"},
		{ID: "d2", Term: "sea"}, {ID: "d2", Term: "moon"},
		{ID: "d3", Term: "moon"}, {ID: "d3", Term: "moon"},
	}
}

func find(t *testing.T, scores []Score, id string, term string) Score {
	t.Helper()
	for _, s := range scores {
		if s.ID == id && s.Term == term {
			return s
		}
	}
	t.Fatalf("no row for (%s, %s)", id, term)
	return Score{}
}

func TestTableByHand(t *testing.T) {
	scores := Table(fixturetokens())

	// "ice" is 1 of 3 tokens in d1 and appears in 1 of 3 documents
	ice := find(t, scores, "d1", "ice")
	assert.Equal(t, 1, ice.N)
	assert.InDelta(t, 1.0/3.0, ice.TF, 1e-12)
	assert.InDelta(t, math.Log(3.0), ice.IDF, 1e-12)
	assert.InDelta(t, (1.0/3.0)*math.Log(3.0), ice.TFIDF, 1e-12)

	// "sea" in d1: 2 of 3 tokens, 2 of 3 documents
	sea := find(t, scores, "d1", "sea")
	assert.Equal(t, 2, sea.N)
	assert.InDelta(t, 2.0/3.0, sea.TF, 1e-12)
	assert.InDelta(t, math.Log(3.0/2.0), sea.IDF, 1e-12)
}

func TestTFIDFIdentity(t *testing.T) {
	for _, s := range Table(fixturetokens()) {
		assert.InDelta(t, s.TF*s.IDF, s.TFIDF, 1e-12)
	}
}

func TestUbiquitousTermScoresZero(t *testing.T) {
	tt := []bag.Token{
		{ID: "d1", Term: "data"}, {ID: "d1", Term: "sea"},
		{ID: "d2", Term: "data"},
		{ID: "d3", Term: "data"},
	}
	scores := Table(tt)

	// a term in every document has idf 0, so its tfidf is 0 no matter the tf
	for _, s := range scores {
		if s.Term == "data" {
			assert.Zero(t, s.IDF)
			assert.Zero(t, s.TFIDF)
		}
	}
}

func TestEmptyDocumentsContributeNothing(t *testing.T) {
	scores := Table(fixturetokens())
	for _, s := range scores {
		assert.NotEmpty(t, s.Term)
	}
	// three documents in the fixture, five distinct (doc, term) rows
	assert.Len(t, scores, 5)
}

func TestTableSorted(t *testing.T) {
	scores := Table(fixturetokens())
	for i := 1; i < len(scores); i++ {
		assert.GreaterOrEqual(t, scores[i-1].TFIDF, scores[i].TFIDF)
	}
}

func TestTopPerDoc(t *testing.T) {
	perdoc := TopPerDoc(Table(fixturetokens()), 1)
	require.Len(t, perdoc["d1"], 1)
	// "ice" beats "sea" in d1: rarer across the corpus
	assert.Equal(t, "ice", perdoc["d1"][0].Term)
}

func TestForDoc(t *testing.T) {
	rows := ForDoc(Table(fixturetokens()), "d2")
	require.Len(t, rows, 2)
	assert.Equal(t, "d2", rows[0].ID)
}

func TestTopOverall(t *testing.T) {
	scores := Table(fixturetokens())
	assert.Len(t, TopOverall(scores, 2), 2)
	assert.Len(t, TopOverall(scores, 99), len(scores))
}
