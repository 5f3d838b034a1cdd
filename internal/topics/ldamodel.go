//    MetaMine: topic models and term statistics for data-catalog metadata
//    License: GNU GENERAL PUBLIC LICENSE 3

package topics

import (
	"crypto/md5"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/james-bowman/nlp"
	"golang.org/x/exp/rand"

	"github.com/opencatalogtools/metamine/internal/bag"
	"github.com/opencatalogtools/metamine/internal/vv"
)

//
// LDA TOPIC MODELING
//

// see https://github.com/james-bowman/nlp/blob/26d441fa0ded/lda.go for the
// knobs the modeler exposes; the defaults below are the ones that behaved on
// a ~32k-document catalog

type Config struct {
	Topics         int
	Iterations     int
	XformPasses    int
	BurnInPasses   int
	ChangeEvalFrq  int
	PerplexEvalFrq int
	PerplexTol     float64
	Seed           uint64 // 0 = seed from the clock
	Workers        int
}

func DefaultConfig() Config {
	return Config{
		Topics:         vv.LDATOPICS,
		Iterations:     vv.LDAITER,
		XformPasses:    vv.LDAXFORMPASSES,
		BurnInPasses:   vv.LDABURNINPASSES,
		ChangeEvalFrq:  vv.LDACHGEVALFRQ,
		PerplexEvalFrq: vv.LDAPERPEVALFRQ,
		PerplexTol:     vv.LDAPERPTOL,
		Seed:           vv.LDASEED,
		Workers:        1,
	}
}

// Fit - the artifacts of one LDA run, flattened out of the model's matrices
type Fit struct {
	K          int
	DocIDs     []string
	Vocab      []string
	TermTopics [][]float64 // K x V; each topic's term distribution sums to 1
	DocTopics  [][]float64 // D x K; each document's membership distribution sums to 1
}

// Model - fit a topic model over the bags; empty bags are legal and get a zeroed membership row
func Model(bags []bag.DocBag, stops []string, cfg Config) (*Fit, error) {
	const (
		FAIL = "Model() failed to model topics for the corpus: %w"
	)

	corpus := bag.Corpus(bags)

	vectoriser := nlp.NewCountVectoriser(stops...)

	lda := nlp.NewLatentDirichletAllocation(cfg.Topics)
	lda.Processes = cfg.Workers
	lda.Iterations = cfg.Iterations
	lda.TransformationPasses = cfg.XformPasses
	lda.BurnInPasses = cfg.BurnInPasses
	lda.ChangeEvaluationFrequency = cfg.ChangeEvalFrq
	lda.PerplexityEvaluationFrequency = cfg.PerplexEvalFrq
	lda.PerplexityTolerance = cfg.PerplexTol

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	lda.Rnd = rand.New(rand.NewSource(seed))

	pipeline := nlp.NewPipeline(vectoriser, lda)

	docsOverTopics, err := pipeline.FitTransform(corpus...)
	if err != nil {
		return nil, fmt.Errorf(FAIL, err)
	}

	topicsOverWords := lda.Components()

	f := &Fit{K: cfg.Topics}

	f.DocIDs = make([]string, len(bags))
	for i := 0; i < len(bags); i++ {
		f.DocIDs[i] = bags[i].ID
	}

	f.Vocab = make([]string, len(vectoriser.Vocabulary))
	for k, v := range vectoriser.Vocabulary {
		f.Vocab[v] = k
	}

	// flatten and re-normalize: the matrices are close to stochastic already,
	// but the artifact tables promise exact unit sums

	tr, tc := topicsOverWords.Dims() // tr = K; tc = len(vocab)
	f.TermTopics = make([][]float64, tr)
	for topic := 0; topic < tr; topic++ {
		row := make([]float64, tc)
		for word := 0; word < tc; word++ {
			row[word] = topicsOverWords.At(topic, word)
		}
		f.TermTopics[topic] = normalize(row)
	}

	dr, dc := docsOverTopics.Dims() // dr = K; dc = len(bags)
	f.DocTopics = make([][]float64, dc)
	for doc := 0; doc < dc; doc++ {
		row := make([]float64, dr)
		for topic := 0; topic < dr; topic++ {
			row[topic] = docsOverTopics.At(topic, doc)
		}
		f.DocTopics[doc] = normalize(row)
	}

	return f, nil
}

// normalize - scale a row to sum to 1; an all-zero row (empty document) stays zero
func normalize(row []float64) []float64 {
	var sum float64
	for i := 0; i < len(row); i++ {
		sum += row[i]
	}
	if sum == 0 {
		return row
	}
	for i := 0; i < len(row); i++ {
		row[i] = row[i] / sum
	}
	return row
}

// Fingerprint - identifies a (corpus, settings) combination so a stored fit can be reused
func Fingerprint(bags []bag.DocBag, cfg Config) string {
	h := md5.New()
	fmt.Fprintf(h, "k=%d;i=%d;x=%d;b=%d;s=%d;", cfg.Topics, cfg.Iterations, cfg.XformPasses, cfg.BurnInPasses, cfg.Seed)
	for i := 0; i < len(bags); i++ {
		fmt.Fprintf(h, "%s|%s\n", bags[i].ID, strings.Join(bags[i].Terms, " "))
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// TermWeight - one cell of the term-topic table, labeled
type TermWeight struct {
	Term   string
	Weight float64
}

// TopTerms - the n most heavily weighted terms for a topic
func (f *Fit) TopTerms(topic int, n int) []TermWeight {
	tss := make([]TermWeight, len(f.Vocab))
	for word := 0; word < len(f.Vocab); word++ {
		tss[word] = TermWeight{Term: f.Vocab[word], Weight: f.TermTopics[topic][word]}
	}
	sort.Slice(tss, func(i, j int) bool {
		if tss[i].Weight != tss[j].Weight {
			return tss[i].Weight > tss[j].Weight
		}
		return tss[i].Term < tss[j].Term
	})
	if n > len(tss) {
		n = len(tss)
	}
	return tss[0:n]
}
