//    MetaMine: topic models and term statistics for data-catalog metadata
//    License: GNU GENERAL PUBLIC LICENSE 3

package bag

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/opencatalogtools/metamine/internal/cat"
)

func TestTokenizeBasics(t *testing.T) {
	tt := Tokenize("The NASA PDS archive, version 3.1!", false)
	assert.Equal(t, []string{"the", "nasa", "pds", "archive", "version"}, tt)
}

func TestTokenizeDigits(t *testing.T) {
	// all-digit tokens drop by default but survive with keepdigits
	assert.Equal(t, []string{"apollo"}, Tokenize("Apollo 17", false))
	assert.Equal(t, []string{"apollo", "17"}, Tokenize("Apollo 17", true))
}

func TestTokenizeShortTokens(t *testing.T) {
	// single letters are markup shrapnel, not words
	tt := Tokenize("a b c sea", false)
	assert.Equal(t, []string{"sea"}, tt)
}

func TestTokenizeMarkup(t *testing.T) {
	tt := Tokenize(`<p>Sea surface</p> data at https://example.org/x?y=1 &amp; more &#939; here`, false)
	assert.Equal(t, []string{"sea", "surface", "data", "at", "and", "more", "here"}, tt)
}

func TestTokenizeAccents(t *testing.T) {
	tt := Tokenize("résumé of Galápagos côtière data", false)
	assert.Equal(t, []string{"resume", "of", "galapagos", "cotiere", "data"}, tt)
}

func TestBuildDropsStops(t *testing.T) {
	recs := []cat.FieldRecord{
		{ID: "d1", Text: "the global temperature of the ocean"},
		{ID: "d2", Text: "the the the"},
	}
	tt := Build(recs, DefaultStopset(), false)

	for _, tok := range tt {
		assert.NotEqual(t, "the", tok.Term)
		assert.NotEqual(t, "of", tok.Term)
	}
	assert.Equal(t, []Token{
		{ID: "d1", Term: "global"},
		{ID: "d1", Term: "temperature"},
		{ID: "d1", Term: "ocean"},
	}, tt)
}

func TestBagsKeepEmptyDocuments(t *testing.T) {
	recs := []cat.FieldRecord{
		{ID: "d1", Text: "lunar craters"},
		{ID: "d2", Text: ""},
		{ID: "d3", Text: "the of and"},
	}
	bb := Bags(recs, DefaultStopset(), false)

	assert.Len(t, bb, 3)
	assert.Equal(t, "d2", bb[1].ID)
	assert.Empty(t, bb[1].Terms)
	assert.Empty(t, bb[2].Terms)

	cc := Corpus(bb)
	assert.Equal(t, []string{"lunar craters", "", ""}, cc)
}

func TestTermCounts(t *testing.T) {
	tt := []Token{
		{ID: "d1", Term: "data"},
		{ID: "d2", Term: "data"},
		{ID: "d2", Term: "lunar"},
	}
	counts := TermCounts(tt)
	assert.Equal(t, 2, counts["data"])
	assert.Equal(t, 1, counts["lunar"])
}

func TestDefaultStopset(t *testing.T) {
	stops := DefaultStopset()
	// the usual suspects plus the markup residue
	assert.True(t, stops["the"])
	assert.True(t, stops["and"])
	assert.True(t, stops["nbsp"])
	assert.False(t, stops["ocean"])
}
