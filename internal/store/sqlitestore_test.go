//    MetaMine: topic models and term statistics for data-catalog metadata
//    License: GNU GENERAL PUBLIC LICENSE 3

package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencatalogtools/metamine/internal/pairs"
	"github.com/opencatalogtools/metamine/internal/topics"
	"github.com/opencatalogtools/metamine/internal/weigh"
)

func teststore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "mm-test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func testfit() *topics.Fit {
	return &topics.Fit{
		K:      2,
		DocIDs: []string{"d1", "d2", "d3"},
		Vocab:  []string{"sea", "ice", "moon"},
		TermTopics: [][]float64{
			{0.5, 0.5, 0},
			{0.1, 0.1, 0.8},
		},
		DocTopics: [][]float64{
			{0.9, 0.1},
			{0.2, 0.8},
			{0, 0},
		},
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "mm.db")

	s1, err := Open(p)
	require.NoError(t, err)
	require.NoError(t, s1.Close())

	// re-opening an existing store must not trip over the schema
	s2, err := Open(p)
	require.NoError(t, err)
	require.NoError(t, s2.Close())
}

func TestNewRun(t *testing.T) {
	s := teststore(t)

	r1, err := s.NewRun("catalog.json", "description", "abc123")
	require.NoError(t, err)
	r2, err := s.NewRun("catalog.json", "description", "abc123")
	require.NoError(t, err)

	assert.NotEmpty(t, r1)
	assert.NotEqual(t, r1, r2)
}

func TestDerivedTablesRoundTrip(t *testing.T) {
	s := teststore(t)

	run, err := s.NewRun("catalog.json", "title", "")
	require.NoError(t, err)

	require.NoError(t, s.AddTermCounts(run, map[string]int{"sea": 5, "ice": 3}))
	require.NoError(t, s.AddPairs(run, []pairs.Pair{{A: "ice", B: "sea", N: 3}}))
	require.NoError(t, s.AddCorrelations(run, []pairs.Correlation{{A: "ice", B: "sea", N: 3, Phi: 0.7}}))
	require.NoError(t, s.AddScores(run, []weigh.Score{
		{ID: "d1", Term: "sea", N: 2, TF: 0.5, IDF: 0.4, TFIDF: 0.2},
	}))
	require.NoError(t, s.AddFit(run, testfit()))

	rows, err := s.exportrows("termcounts", []string{"run", "term", "n"}, run)
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	rows, err = s.exportrows("termpairs", []string{"run", "a", "b", "n", "phi"}, run)
	require.NoError(t, err)
	assert.Len(t, rows, 2) // one counted pair plus one correlated pair

	rows, err = s.exportrows("tfidf", []string{"run", "doc", "term", "n", "tf", "idf", "tfidf"}, run)
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	// zero-weight memberships are not stored: d1 and d2 contribute 2 rows each, d3 none
	rows, err = s.exportrows("memberships", []string{"run", "doc", "topic", "weight"}, run)
	require.NoError(t, err)
	assert.Len(t, rows, 4)

	// rows of other runs stay invisible
	rows, err = s.exportrows("termcounts", []string{"run", "term", "n"}, "no-such-run")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestFitCacheRoundTrip(t *testing.T) {
	s := teststore(t)
	f := testfit()

	const fp = "0123456789abcdef0123456789abcdef"

	assert.False(t, s.HasFit(fp))
	require.NoError(t, s.SaveFit(fp, f))
	assert.True(t, s.HasFit(fp))
	assert.Equal(t, 1, s.FitCount())

	got, err := s.FetchFit(fp)
	require.NoError(t, err)
	assert.Equal(t, f.K, got.K)
	assert.Equal(t, f.DocIDs, got.DocIDs)
	assert.Equal(t, f.Vocab, got.Vocab)
	assert.Equal(t, f.TermTopics, got.TermTopics)
	assert.Equal(t, f.DocTopics, got.DocTopics)
}

func TestFitCacheOverwrite(t *testing.T) {
	s := teststore(t)

	const fp = "ffffffffffffffffffffffffffffffff"

	require.NoError(t, s.SaveFit(fp, testfit()))

	f2 := testfit()
	f2.DocIDs[0] = "renamed"
	require.NoError(t, s.SaveFit(fp, f2))

	got, err := s.FetchFit(fp)
	require.NoError(t, err)
	assert.Equal(t, "renamed", got.DocIDs[0])
	assert.Equal(t, 1, s.FitCount())
}

func TestFetchFitMissing(t *testing.T) {
	s := teststore(t)
	_, err := s.FetchFit("not-a-fingerprint")
	assert.Error(t, err)
}
