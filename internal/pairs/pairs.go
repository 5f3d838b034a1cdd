//    MetaMine: topic models and term statistics for data-catalog metadata
//    License: GNU GENERAL PUBLIC LICENSE 3

package pairs

import (
	"fmt"
	"math"
	"sort"

	"github.com/opencatalogtools/metamine/internal/bag"
	"github.com/opencatalogtools/metamine/internal/lnch"
)

//
// CO-OCCURRENCE & CORRELATION
//

// two terms "co-occur" when both appear in the token set of the same dataset id;
// counting is presence-based: a term showing up five times in one description
// still contributes one to each of its pairs there

// Pair - (term a, term b, number of datasets where both appear); A < B always
type Pair struct {
	A string
	B string
	N int
}

// Correlation - the phi coefficient of two terms across document presence/absence
type Correlation struct {
	A   string
	B   string
	N   int // co-occurrence count, kept for the reports
	Phi float64
}

type pairkey struct {
	a string
	b string
}

// termsets - per-document term sets from the flat token record set
func termsets(tokens []bag.Token) map[string]map[string]bool {
	docs := make(map[string]map[string]bool)
	for i := 0; i < len(tokens); i++ {
		t := tokens[i]
		if _, ok := docs[t.ID]; !ok {
			docs[t.ID] = make(map[string]bool)
		}
		docs[t.ID][t.Term] = true
	}
	return docs
}

// docfrequency - in how many documents does each term appear?
func docfrequency(docs map[string]map[string]bool) map[string]int {
	df := make(map[string]int)
	for _, set := range docs {
		for term := range set {
			df[term] += 1
		}
	}
	return df
}

// countpairs - pair counts over per-document term sets; mindf thins the vocabulary first
func countpairs(docs map[string]map[string]bool, mindf int) map[pairkey]int {
	df := docfrequency(docs)

	counts := make(map[pairkey]int)
	for _, set := range docs {
		var terms []string
		for term := range set {
			if df[term] >= mindf {
				terms = append(terms, term)
			}
		}
		sort.Strings(terms)
		for i := 0; i < len(terms); i++ {
			for j := i + 1; j < len(terms); j++ {
				counts[pairkey{terms[i], terms[j]}] += 1
			}
		}
	}
	return counts
}

// Count - pairwise co-occurrence counts; self-pairs excluded, (a,b) == (b,a)
func Count(tokens []bag.Token, mindf int) []Pair {
	docs := termsets(tokens)
	counts := countpairs(docs, mindf)

	pp := make([]Pair, 0, len(counts))
	for k, n := range counts {
		pp = append(pp, Pair{A: k.a, B: k.b, N: n})
	}
	sortpairs(pp)
	return pp
}

// Correlate - the phi coefficient for every pair of sufficiently common terms
func Correlate(tokens []bag.Token, mindf int) []Correlation {
	const (
		SKIPPED = "Correlate() skipped %d zero-variance pairs"
	)

	docs := termsets(tokens)
	df := docfrequency(docs)
	counts := countpairs(docs, mindf)
	total := len(docs)

	var skipped int
	cc := make([]Correlation, 0, len(counts))
	for k, n11 := range counts {
		// the 2x2 presence/absence contingency table for the pair
		n10 := df[k.a] - n11
		n01 := df[k.b] - n11
		n00 := total - n11 - n10 - n01

		n1x := float64(n11 + n10)
		n0x := float64(n01 + n00)
		nx1 := float64(n11 + n01)
		nx0 := float64(n10 + n00)

		denom := math.Sqrt(n1x * n0x * nx1 * nx0)
		if denom == 0 {
			// a term present in every document (or co-extensive with the corpus) has no variance to correlate
			skipped += 1
			continue
		}

		phi := (float64(n11)*float64(n00) - float64(n10)*float64(n01)) / denom
		cc = append(cc, Correlation{A: k.a, B: k.b, N: n11, Phi: phi})
	}

	if skipped > 0 {
		lnch.Msg.PEEK(fmt.Sprintf(SKIPPED, skipped))
	}

	sort.Slice(cc, func(i, j int) bool {
		if cc[i].Phi != cc[j].Phi {
			return cc[i].Phi > cc[j].Phi
		}
		if cc[i].A != cc[j].A {
			return cc[i].A < cc[j].A
		}
		return cc[i].B < cc[j].B
	})
	return cc
}

// KeywordPairs - co-occurrence over the human-assigned keyword sets instead of free text tokens
func KeywordPairs(recs []bag.Token, mindf int) []Pair {
	return Count(recs, mindf)
}

// TopPairs - the first n of an already-sorted pair list
func TopPairs(pp []Pair, n int) []Pair {
	if n > len(pp) {
		n = len(pp)
	}
	return pp[0:n]
}

// TopCorrelations - the first n of an already-sorted correlation list
func TopCorrelations(cc []Correlation, n int) []Correlation {
	if n > len(cc) {
		n = len(cc)
	}
	return cc[0:n]
}

func sortpairs(pp []Pair) {
	sort.Slice(pp, func(i, j int) bool {
		if pp[i].N != pp[j].N {
			return pp[i].N > pp[j].N
		}
		if pp[i].A != pp[j].A {
			return pp[i].A < pp[j].A
		}
		return pp[i].B < pp[j].B
	})
}
