//    MetaMine: topic models and term statistics for data-catalog metadata
//    License: GNU GENERAL PUBLIC LICENSE 3

package topics

import (
	"sort"

	"github.com/opencatalogtools/metamine/internal/cat"
)

//
// MODEL SUMMARIES
//

// DominantTopic - the topic with the highest membership for document i; -1 for an empty document
func (f *Fit) DominantTopic(doc int) int {
	max := float64(0)
	winner := -1
	for topic := 0; topic < f.K; topic++ {
		if f.DocTopics[doc][topic] > max {
			winner = topic
			max = f.DocTopics[doc][topic]
		}
	}
	return winner
}

// DocsPerTopic - N documents have topic X as their dominant topic
func (f *Fit) DocsPerTopic() []int {
	counter := make([]int, f.K)
	for doc := 0; doc < len(f.DocTopics); doc++ {
		w := f.DominantTopic(doc)
		if w >= 0 {
			counter[w] += 1
		}
	}
	return counter
}

// TopicWeightShares - scaled total accumulated weight of each topic
func (f *Fit) TopicWeightShares() []float64 {
	counter := make([]float64, f.K)
	for doc := 0; doc < len(f.DocTopics); doc++ {
		for topic := 0; topic < f.K; topic++ {
			counter[topic] += f.DocTopics[doc][topic]
		}
	}

	high := float64(0)
	for i := 0; i < f.K; i++ {
		if counter[i] > high {
			high = counter[i]
		}
	}
	if high == 0 {
		return counter
	}

	scaled := make([]float64, f.K)
	for i := 0; i < f.K; i++ {
		scaled[i] = counter[i] / high
	}
	return scaled
}

// DocWeight - a document labeled with its membership weight for some topic
type DocWeight struct {
	ID     string
	Weight float64
}

// TopDocs - the n documents most strongly associated with a topic
func (f *Fit) TopDocs(topic int, n int) []DocWeight {
	dd := make([]DocWeight, len(f.DocTopics))
	for doc := 0; doc < len(f.DocTopics); doc++ {
		dd[doc] = DocWeight{ID: f.DocIDs[doc], Weight: f.DocTopics[doc][topic]}
	}
	sort.Slice(dd, func(i, j int) bool {
		if dd[i].Weight != dd[j].Weight {
			return dd[i].Weight > dd[j].Weight
		}
		return dd[i].ID < dd[j].ID
	})
	if n > len(dd) {
		n = len(dd)
	}
	return dd[0:n]
}

// KeywordCount - a human-assigned keyword and how many of a topic's datasets carry it
type KeywordCount struct {
	Keyword string
	N       int
}

// KeywordJoin - tally the catalog's own keywords by dominant topic: do the
// modeled topics line up with what the catalog's curators thought?
func KeywordJoin(f *Fit, c *cat.Catalog, n int) map[int][]KeywordCount {
	tallies := make(map[int]map[string]int)
	for topic := 0; topic < f.K; topic++ {
		tallies[topic] = make(map[string]int)
	}

	for doc := 0; doc < len(f.DocIDs); doc++ {
		w := f.DominantTopic(doc)
		if w < 0 {
			continue
		}
		ds, ok := c.Get(f.DocIDs[doc])
		if !ok {
			continue
		}
		for _, k := range ds.Keywords {
			tallies[w][k] += 1
		}
	}

	joined := make(map[int][]KeywordCount)
	for topic := 0; topic < f.K; topic++ {
		kk := make([]KeywordCount, 0, len(tallies[topic]))
		for k, ct := range tallies[topic] {
			kk = append(kk, KeywordCount{Keyword: k, N: ct})
		}
		sort.Slice(kk, func(i, j int) bool {
			if kk[i].N != kk[j].N {
				return kk[i].N > kk[j].N
			}
			return kk[i].Keyword < kk[j].Keyword
		})
		if n < len(kk) {
			kk = kk[0:n]
		}
		joined[topic] = kk
	}
	return joined
}
