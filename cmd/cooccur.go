//    MetaMine: topic models and term statistics for data-catalog metadata
//    License: GNU GENERAL PUBLIC LICENSE 3

package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/opencatalogtools/metamine/internal/bag"
	"github.com/opencatalogtools/metamine/internal/cat"
	"github.com/opencatalogtools/metamine/internal/lnch"
	"github.com/opencatalogtools/metamine/internal/pairs"
	"github.com/opencatalogtools/metamine/internal/render"
	"github.com/opencatalogtools/metamine/internal/vv"
)

var (
	flagcofield  string
	flagmincount int
	flagcotop    int
)

var cooccurCmd = &cobra.Command{
	Use:   "cooccur",
	Short: "Count and correlate co-occurring terms",
	Long: `Count how often two terms appear in the same dataset's metadata and
compute the phi correlation for each pair. Besides title and
description this stage also accepts --field keyword, which mines the
catalog's human-assigned keyword lists instead of free text.`,
	Run: runcooccur,
}

func init() {
	rootCmd.AddCommand(cooccurCmd)
	cooccurCmd.Flags().StringVar(&flagcofield, "field", lnch.Config.Field, "field to mine: title, description, or keyword")
	cooccurCmd.Flags().IntVar(&flagmincount, "mincount", lnch.Config.MinPairCount, "minimum documents a term must hit before it can pair")
	cooccurCmd.Flags().IntVar(&flagcotop, "top", vv.PAIRTOPN, "pairs to show and to draw")
}

// keywordtokens - one token per keyword assignment so keywords can feed the pair counter
func keywordtokens(c *cat.Catalog) []bag.Token {
	kk := c.Keywords()
	tt := make([]bag.Token, len(kk))
	for i, k := range kk {
		tt[i] = bag.Token{ID: k.ID, Term: k.Keyword}
	}
	return tt
}

func runcooccur(cmd *cobra.Command, args []string) {
	const (
		HDRA  = "term a"
		HDRB  = "term b"
		HDRC  = "count"
		HDRD  = "phi"
		CHT1  = "Co-occurring terms"
		CHT2  = "Correlated terms"
		SUB   = "field: %s"
		FILE  = "cooccur.html"
		MSG   = "charts written to %s"
		MSGDB = "pair tables stored under run %s"
	)

	ff := cmd.Flags()
	if ff.Changed("field") {
		lnch.Config.Field = flagcofield
	}
	if ff.Changed("mincount") {
		lnch.Config.MinPairCount = flagmincount
	}

	c := loadcatalog()

	kw := lnch.Config.Field == vv.FIELDKEYWORD

	var tt []bag.Token
	if kw {
		tt = keywordtokens(c)
	} else {
		tt = buildtokens(c)
	}

	start := time.Now()
	var pp []pairs.Pair
	if kw {
		pp = pairs.KeywordPairs(tt, lnch.Config.MinPairCount)
	} else {
		pp = pairs.Count(tt, lnch.Config.MinPairCount)
	}
	cc := pairs.Correlate(tt, lnch.Config.MinPairCount)
	lnch.Msg.Timer("C", "pair statistics", start, start)

	toppp := pairs.TopPairs(pp, flagcotop)
	topcc := pairs.TopCorrelations(cc, flagcotop)

	rows := make([][]string, len(toppp))
	for i, p := range toppp {
		rows[i] = []string{p.A, p.B, strconv.Itoa(p.N), ""}
	}
	printtable([]string{HDRA, HDRB, HDRC, HDRD}, rows)

	rows = make([][]string, len(topcc))
	for i, co := range topcc {
		rows[i] = []string{co.A, co.B, strconv.Itoa(co.N), fmt.Sprintf("%.4f", co.Phi)}
	}
	printtable([]string{HDRA, HDRB, HDRC, HDRD}, rows)

	s := openstore()
	defer s.Close()

	rid, err := s.NewRun(lnch.Config.Catalog, lnch.Config.Field, "")
	lnch.Msg.EC(err)
	lnch.Msg.EC(s.AddPairs(rid, pp))
	lnch.Msg.EC(s.AddCorrelations(rid, cc))
	lnch.Msg.FYI(fmt.Sprintf(MSGDB, rid))

	if lnch.Config.Graph {
		sub := fmt.Sprintf(SUB, lnch.Config.Field)
		g1 := render.NewPairGraph(CHT1+" ("+sub+")", toppp)
		g2 := render.NewCorrGraph(CHT2+" ("+sub+")", topcc)
		p, err := render.WritePage(lnch.Config.OutDir, FILE, g1, g2)
		lnch.Msg.EC(err)
		lnch.Msg.NOTE(fmt.Sprintf(MSG, p))
	}
}
