//    MetaMine: topic models and term statistics for data-catalog metadata
//    License: GNU GENERAL PUBLIC LICENSE 3

package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/opencatalogtools/metamine/internal/lnch"
	"github.com/opencatalogtools/metamine/internal/render"
	"github.com/opencatalogtools/metamine/internal/weigh"
)

var flagdataset string

var tfidfCmd = &cobra.Command{
	Use:   "tfidf",
	Short: "Score terms by tf-idf",
	Long: `Weigh every term in every dataset's metadata by tf-idf: terms that
are frequent in one dataset but rare across the catalog score high.
Use --dataset to inspect the characteristic vocabulary of a single
dataset.`,
	Run: runtfidf,
}

func init() {
	rootCmd.AddCommand(tfidfCmd)
	stageflags(tfidfCmd)
	tfidfCmd.Flags().StringVar(&flagdataset, "dataset", "", "show the scores of one dataset identifier")
}

func runtfidf(cmd *cobra.Command, args []string) {
	const (
		HDRA  = "dataset"
		HDRB  = "term"
		HDRC  = "n"
		HDRD  = "tf-idf"
		CHT   = "Highest tf-idf terms"
		SUB   = "field: %s"
		FILE  = "tfidf.html"
		MSG   = "chart written to %s"
		MSGDB = "tf-idf table stored under run %s"
		NONE  = "no rows for dataset '%s'"
	)

	stageconfig(cmd)
	c := loadcatalog()
	tt := buildtokens(c)

	start := time.Now()
	scores := weigh.Table(tt)
	lnch.Msg.Timer("C", "tf-idf", start, start)

	shown := weigh.TopOverall(scores, lnch.Config.TopN)
	if flagdataset != "" {
		shown = weigh.ForDoc(scores, flagdataset)
		if len(shown) == 0 {
			lnch.Msg.WARN(fmt.Sprintf(NONE, flagdataset))
		}
		if len(shown) > lnch.Config.TopN {
			shown = shown[:lnch.Config.TopN]
		}
	}

	rows := make([][]string, len(shown))
	bars := make([]render.LabeledValue, len(shown))
	for i, sc := range shown {
		rows[i] = []string{sc.ID, sc.Term, strconv.Itoa(sc.N), fmt.Sprintf("%.5f", sc.TFIDF)}
		bars[i] = render.LabeledValue{Label: sc.Term, Value: sc.TFIDF}
	}
	printtable([]string{HDRA, HDRB, HDRC, HDRD}, rows)

	s := openstore()
	defer s.Close()

	rid, err := s.NewRun(lnch.Config.Catalog, lnch.Config.Field, "")
	lnch.Msg.EC(err)
	lnch.Msg.EC(s.AddScores(rid, scores))
	lnch.Msg.FYI(fmt.Sprintf(MSGDB, rid))

	if lnch.Config.Graph && len(bars) > 0 {
		bar := render.NewBar(CHT, fmt.Sprintf(SUB, lnch.Config.Field), bars)
		p, err := render.WritePage(lnch.Config.OutDir, FILE, bar)
		lnch.Msg.EC(err)
		lnch.Msg.NOTE(fmt.Sprintf(MSG, p))
	}
}
