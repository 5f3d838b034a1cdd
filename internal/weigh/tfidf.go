//    MetaMine: topic models and term statistics for data-catalog metadata
//    License: GNU GENERAL PUBLIC LICENSE 3

package weigh

import (
	"math"
	"sort"

	"github.com/opencatalogtools/metamine/internal/bag"
)

//
// TF-IDF
//

// Score - one (dataset, term) row of the weighting table
type Score struct {
	ID    string
	Term  string
	N     int     // raw count of the term in the document
	TF    float64 // N / document token total
	IDF   float64 // ln(documents / documents containing the term)
	TFIDF float64 // TF * IDF
}

// Table - the full per-(document, term) tf-idf table for a token record set
//
// documents whose field tokenized to nothing contribute no rows; a term present
// in every document scores idf 0 and so tfidf 0. near-empty documents inflate
// the tf of whatever scraps they do contain; that is an artifact of the data,
// not something this table papers over.
func Table(tokens []bag.Token) []Score {
	// per-document term counts and totals
	counts := make(map[string]map[string]int)
	totals := make(map[string]int)
	for i := 0; i < len(tokens); i++ {
		t := tokens[i]
		if _, ok := counts[t.ID]; !ok {
			counts[t.ID] = make(map[string]int)
		}
		counts[t.ID][t.Term] += 1
		totals[t.ID] += 1
	}

	// document frequency per term
	df := make(map[string]int)
	for _, terms := range counts {
		for term := range terms {
			df[term] += 1
		}
	}

	ndocs := float64(len(counts))

	var scores []Score
	for id, terms := range counts {
		for term, n := range terms {
			tf := float64(n) / float64(totals[id])
			idf := math.Log(ndocs / float64(df[term]))
			scores = append(scores, Score{
				ID:    id,
				Term:  term,
				N:     n,
				TF:    tf,
				IDF:   idf,
				TFIDF: tf * idf,
			})
		}
	}

	sort.Slice(scores, func(i, j int) bool {
		if scores[i].TFIDF != scores[j].TFIDF {
			return scores[i].TFIDF > scores[j].TFIDF
		}
		if scores[i].ID != scores[j].ID {
			return scores[i].ID < scores[j].ID
		}
		return scores[i].Term < scores[j].Term
	})
	return scores
}

// TopPerDoc - the n highest-scoring terms for each document
func TopPerDoc(scores []Score, n int) map[string][]Score {
	perdoc := make(map[string][]Score)
	for i := 0; i < len(scores); i++ {
		s := scores[i]
		if len(perdoc[s.ID]) < n {
			perdoc[s.ID] = append(perdoc[s.ID], s)
		}
	}
	return perdoc
}

// TopOverall - the first n rows of an already-sorted score table
func TopOverall(scores []Score, n int) []Score {
	if n > len(scores) {
		n = len(scores)
	}
	return scores[0:n]
}

// ForDoc - all rows for one document, highest tfidf first
func ForDoc(scores []Score, id string) []Score {
	var out []Score
	for i := 0; i < len(scores); i++ {
		if scores[i].ID == id {
			out = append(out, scores[i])
		}
	}
	return out
}
