//    MetaMine: topic models and term statistics for data-catalog metadata
//    License: GNU GENERAL PUBLIC LICENSE 3

package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/opencatalogtools/metamine/internal/bag"
	"github.com/opencatalogtools/metamine/internal/cat"
	"github.com/opencatalogtools/metamine/internal/gen"
	"github.com/opencatalogtools/metamine/internal/lnch"
	"github.com/opencatalogtools/metamine/internal/render"
	"github.com/opencatalogtools/metamine/internal/store"
	"github.com/opencatalogtools/metamine/internal/topics"
	"github.com/opencatalogtools/metamine/internal/vv"
)

var (
	flagtopics int
	flagseed   uint64
	flagiter   int
	flagrefit  bool
	flaggraph  bool
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "Fit an LDA topic model to the metadata",
	Long: `Fit a latent Dirichlet allocation model to the chosen field and
report the topics: their top terms, how many datasets each topic
dominates, which datasets typify it, and how the topics line up with
the catalog's human-assigned keywords. Fitted models are cached in the
results store by corpus fingerprint; --refit ignores the cache.`,
	Run: runtopics,
}

func init() {
	rootCmd.AddCommand(topicsCmd)
	stageflags(topicsCmd)
	topicsCmd.Flags().IntVar(&flagtopics, "topics", lnch.Config.Topics, "number of topics to fit")
	topicsCmd.Flags().Uint64Var(&flagseed, "seed", lnch.Config.Seed, "random seed; 0 seeds from the clock")
	topicsCmd.Flags().IntVar(&flagiter, "iterations", lnch.Config.Iterations, "gibbs sampling iterations")
	topicsCmd.Flags().BoolVar(&flagrefit, "refit", false, "refit even if a cached model matches")
	topicsCmd.Flags().BoolVar(&flaggraph, "graph", true, "write the html charts")
}

func runtopics(cmd *cobra.Command, args []string) {
	const (
		TOOMANY = "%d topics is past the sane ceiling; capping at %d"
	)

	stageconfig(cmd)
	ff := cmd.Flags()
	if ff.Changed("topics") {
		lnch.Config.Topics = flagtopics
	}
	if ff.Changed("seed") {
		lnch.Config.Seed = flagseed
	}
	if ff.Changed("iterations") {
		lnch.Config.Iterations = flagiter
	}
	if ff.Changed("refit") {
		lnch.Config.Refit = flagrefit
	}
	if ff.Changed("graph") {
		lnch.Config.Graph = flaggraph
	}

	if lnch.Config.Topics > vv.LDAMAXTOPICS {
		lnch.Msg.WARN(fmt.Sprintf(TOOMANY, lnch.Config.Topics, vv.LDAMAXTOPICS))
		lnch.Config.Topics = vv.LDAMAXTOPICS
	}

	c := loadcatalog()
	stops := bag.ReadStopConfig()
	bags := bag.Bags(fieldrecords(c), gen.ToSet(stops), lnch.Config.KeepDigits)

	cfg := topics.DefaultConfig()
	cfg.Topics = lnch.Config.Topics
	cfg.Iterations = lnch.Config.Iterations
	cfg.XformPasses = lnch.Config.XformPasses
	cfg.BurnInPasses = lnch.Config.BurnInPasses
	cfg.Seed = lnch.Config.Seed
	cfg.Workers = lnch.Config.WorkerCount

	s := openstore()
	defer s.Close()

	f := fitorfetch(s, bags, stops, cfg)

	fp := topics.Fingerprint(bags, cfg)
	rid, err := s.NewRun(lnch.Config.Catalog, lnch.Config.Field, fp)
	lnch.Msg.EC(err)
	lnch.Msg.EC(s.AddFit(rid, f))

	topicreport(c, f)

	if lnch.Config.Graph {
		topiccharts(c, f)
	}
}

// fitorfetch - reuse a cached model when the corpus and settings match; otherwise fit and cache
func fitorfetch(s *store.Store, bags []bag.DocBag, stops []string, cfg topics.Config) *topics.Fit {
	const (
		HIT  = "reusing the cached model under fingerprint %s; --refit forces a new fit"
		MISS = "fitting %d topics to %d documents; this is the slow part"
	)

	fp := topics.Fingerprint(bags, cfg)

	if !lnch.Config.Refit && s.HasFit(fp) {
		lnch.Msg.NOTE(fmt.Sprintf(HIT, fp))
		f, err := s.FetchFit(fp)
		lnch.Msg.EC(err)
		return f
	}

	lnch.Msg.NOTE(fmt.Sprintf(MISS, cfg.Topics, len(bags)))
	start := time.Now()
	f, err := topics.Model(bags, stops, cfg)
	lnch.Msg.EC(err)
	lnch.Msg.Timer("D", "lda fit", start, start)

	lnch.Msg.EC(s.SaveFit(fp, f))
	return f
}

// topicreport - the terminal tables: top terms, dominated datasets, keyword alignment
func topicreport(c *cat.Catalog, f *topics.Fit) {
	const (
		HDRA = "topic"
		HDRB = "top terms"
		HDRC = "datasets"
		HDRD = "weight share"
		HDRE = "most typical"
		HDRF = "top keywords"
		TOPC = "topic %02d"
	)

	perdoc := f.DocsPerTopic()
	shares := f.TopicWeightShares()
	kw := topics.KeywordJoin(f, c, vv.TOPICTOPKEYWDS)

	rows := make([][]string, f.K)
	for k := 0; k < f.K; k++ {
		terms := make([]string, 0, vv.TOPICTOPTERMS)
		for _, tw := range f.TopTerms(k, vv.TOPICTOPTERMS) {
			terms = append(terms, tw.Term)
		}

		typical := make([]string, 0, vv.TOPICTOPDOCS)
		for _, dw := range f.TopDocs(k, vv.TOPICTOPDOCS) {
			title := dw.ID
			if ds, ok := c.Get(dw.ID); ok && ds.Title != "" {
				title = ds.Title
			}
			typical = append(typical, title)
		}

		kws := make([]string, 0, len(kw[k]))
		for _, kc := range kw[k] {
			kws = append(kws, kc.Keyword)
		}

		rows[k] = []string{
			fmt.Sprintf(TOPC, k+1),
			strings.Join(terms, " "),
			strconv.Itoa(perdoc[k]),
			fmt.Sprintf("%.3f", shares[k]),
			strings.Join(typical, " | "),
			strings.Join(kws, " "),
		}
	}
	printtable([]string{HDRA, HDRB, HDRC, HDRD, HDRE, HDRF}, rows)
}

// topiccharts - the html side of the report: membership bars and the t-sne scatter
func topiccharts(c *cat.Catalog, f *topics.Fit) {
	const (
		CHT1 = "Datasets per dominant topic"
		CHT2 = "Accumulated topic weight (scaled)"
		CHT3 = "Documents embedded by topic membership"
		SUB  = "field: %s; %d topics"
		FILE = "topics.html"
		TOPC = "topic %02d"
		MSG  = "charts written to %s"
	)

	sub := fmt.Sprintf(SUB, lnch.Config.Field, f.K)

	perdoc := f.DocsPerTopic()
	counts := make([]render.LabeledValue, f.K)
	for k := 0; k < f.K; k++ {
		counts[k] = render.LabeledValue{Label: fmt.Sprintf(TOPC, k+1), Value: float64(perdoc[k])}
	}

	shares := f.TopicWeightShares()
	weights := make([]render.LabeledValue, f.K)
	for k := 0; k < f.K; k++ {
		weights[k] = render.LabeledValue{Label: fmt.Sprintf(TOPC, k+1), Value: shares[k]}
	}

	b1 := render.NewBar(CHT1, sub, counts)
	b2 := render.NewBar(CHT2, sub, weights)
	sc := render.NewTopicScatter(CHT3, f)

	p, err := render.WritePage(lnch.Config.OutDir, FILE, b1, b2, sc)
	lnch.Msg.EC(err)
	lnch.Msg.NOTE(fmt.Sprintf(MSG, p))
}
