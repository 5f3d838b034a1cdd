//    MetaMine: topic models and term statistics for data-catalog metadata
//    License: GNU GENERAL PUBLIC LICENSE 3

package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/opencatalogtools/metamine/internal/bag"
	"github.com/opencatalogtools/metamine/internal/gen"
	"github.com/opencatalogtools/metamine/internal/lnch"
	"github.com/opencatalogtools/metamine/internal/pairs"
	"github.com/opencatalogtools/metamine/internal/render"
	"github.com/opencatalogtools/metamine/internal/topics"
	"github.com/opencatalogtools/metamine/internal/vv"
	"github.com/opencatalogtools/metamine/internal/weigh"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Run the whole pipeline under a single run id",
	Long: `Run every stage back to back: ingest, tokens, pair statistics,
tf-idf, and the topic model. All derived tables land in the results
store under one run id and every chart lands in the output directory.`,
	Run: runreport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
	stageflags(reportCmd)
}

func runreport(cmd *cobra.Command, args []string) {
	const (
		FILE  = "report.html"
		CHT1  = "Most frequent terms"
		CHT2  = "Correlated terms"
		CHT3  = "Highest tf-idf terms"
		CHT4  = "Datasets per dominant topic"
		CHT5  = "Documents embedded by topic membership"
		SUB   = "field: %s"
		MSG   = "charts written to %s"
		MSGDB = "the full report is stored under run %s"
	)

	stageconfig(cmd)
	launch := time.Now()

	c := loadcatalog()
	tt := buildtokens(c)
	stops := bag.ReadStopConfig()
	bags := bag.Bags(fieldrecords(c), gen.ToSet(stops), lnch.Config.KeepDigits)

	prev := time.Now()
	pp := pairs.Count(tt, lnch.Config.MinPairCount)
	cc := pairs.Correlate(tt, lnch.Config.MinPairCount)
	lnch.Msg.Timer("C", "pair statistics", launch, prev)

	prev = time.Now()
	scores := weigh.Table(tt)
	lnch.Msg.Timer("D", "tf-idf", launch, prev)

	cfg := topics.DefaultConfig()
	cfg.Topics = lnch.Config.Topics
	cfg.Iterations = lnch.Config.Iterations
	cfg.XformPasses = lnch.Config.XformPasses
	cfg.BurnInPasses = lnch.Config.BurnInPasses
	cfg.Seed = lnch.Config.Seed
	cfg.Workers = lnch.Config.WorkerCount

	s := openstore()
	defer s.Close()

	prev = time.Now()
	f := fitorfetch(s, bags, stops, cfg)
	lnch.Msg.Timer("E", "topic model", launch, prev)

	fp := topics.Fingerprint(bags, cfg)
	rid, err := s.NewRun(lnch.Config.Catalog, lnch.Config.Field, fp)
	lnch.Msg.EC(err)

	counts := bag.TermCounts(tt)
	lnch.Msg.EC(s.AddTermCounts(rid, counts))
	lnch.Msg.EC(s.AddPairs(rid, pp))
	lnch.Msg.EC(s.AddCorrelations(rid, cc))
	lnch.Msg.EC(s.AddScores(rid, scores))
	lnch.Msg.EC(s.AddFit(rid, f))

	topicreport(c, f)

	if lnch.Config.Graph {
		sub := fmt.Sprintf(SUB, lnch.Config.Field)

		top := lnch.Config.TopN
		ranked := termcounttable(tt)
		if top > len(ranked) {
			top = len(ranked)
		}
		freqbars := make([]render.LabeledValue, top)
		for i := 0; i < top; i++ {
			freqbars[i] = render.LabeledValue{Label: ranked[i].Term, Value: float64(ranked[i].N)}
		}

		best := weigh.TopOverall(scores, lnch.Config.TopN)
		tfbars := make([]render.LabeledValue, len(best))
		for i, sc := range best {
			tfbars[i] = render.LabeledValue{Label: sc.Term, Value: sc.TFIDF}
		}

		perdoc := f.DocsPerTopic()
		topicbars := make([]render.LabeledValue, f.K)
		for k := 0; k < f.K; k++ {
			topicbars[k] = render.LabeledValue{Label: fmt.Sprintf("topic %02d", k+1), Value: float64(perdoc[k])}
		}

		g := render.NewCorrGraph(CHT2+" ("+sub+")", pairs.TopCorrelations(cc, vv.PAIRTOPN))

		p, err := render.WritePage(lnch.Config.OutDir, FILE,
			render.NewBar(CHT1, sub, freqbars),
			g,
			render.NewBar(CHT3, sub, tfbars),
			render.NewBar(CHT4, sub, topicbars),
			render.NewTopicScatter(CHT5, f),
		)
		lnch.Msg.EC(err)
		lnch.Msg.NOTE(fmt.Sprintf(MSG, p))
	}

	lnch.Msg.MAND(fmt.Sprintf(MSGDB, rid))
	lnch.Msg.Timer("F", "report complete", launch, time.Now())
}
