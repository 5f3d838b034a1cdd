//    MetaMine: topic models and term statistics for data-catalog metadata
//    License: GNU GENERAL PUBLIC LICENSE 3

package cmd

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/opencatalogtools/metamine/internal/bag"
	"github.com/opencatalogtools/metamine/internal/lnch"
	"github.com/opencatalogtools/metamine/internal/render"
)

var (
	flagfield  string
	flagtop    int
	flagdigits bool
)

var tokensCmd = &cobra.Command{
	Use:   "tokens",
	Short: "Tokenize a metadata field and rank its terms",
	Long: `Tokenize the chosen free-text field (title or description), drop
stop words, and rank what remains by frequency. The full term table
lands in the results store; the head of it lands on the terminal and
in a bar chart.`,
	Run: runtokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
	stageflags(tokensCmd)
}

// stageflags - the flags shared by every stage that consumes tokens
func stageflags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagfield, "field", lnch.Config.Field, "metadata field to mine: title or description")
	cmd.Flags().IntVar(&flagtop, "top", lnch.Config.TopN, "rows to show in tables and charts")
	cmd.Flags().BoolVar(&flagdigits, "digits", false, "keep all-digit tokens")
}

// stageconfig - overlay the stage flags onto the configuration
func stageconfig(cmd *cobra.Command) {
	ff := cmd.Flags()
	if ff.Changed("field") {
		lnch.Config.Field = flagfield
	}
	if ff.Changed("top") {
		lnch.Config.TopN = flagtop
	}
	if ff.Changed("digits") {
		lnch.Config.KeepDigits = flagdigits
	}
}

func runtokens(cmd *cobra.Command, args []string) {
	const (
		HDRA  = "term"
		HDRB  = "count"
		CHT   = "Most frequent terms"
		SUB   = "field: %s"
		FILE  = "tokens.html"
		MSG   = "chart written to %s"
		MSGDB = "term counts stored under run %s"
	)

	stageconfig(cmd)
	c := loadcatalog()
	tt := buildtokens(c)
	counts := termcounttable(tt)

	top := lnch.Config.TopN
	if top > len(counts) {
		top = len(counts)
	}

	rows := make([][]string, top)
	bars := make([]render.LabeledValue, top)
	for i := 0; i < top; i++ {
		rows[i] = []string{counts[i].Term, strconv.Itoa(counts[i].N)}
		bars[i] = render.LabeledValue{Label: counts[i].Term, Value: float64(counts[i].N)}
	}
	printtable([]string{HDRA, HDRB}, rows)

	s := openstore()
	defer s.Close()

	rid, err := s.NewRun(lnch.Config.Catalog, lnch.Config.Field, "")
	lnch.Msg.EC(err)

	all := make(map[string]int, len(counts))
	for _, tc := range counts {
		all[tc.Term] = tc.N
	}
	lnch.Msg.EC(s.AddTermCounts(rid, all))
	lnch.Msg.FYI(fmt.Sprintf(MSGDB, rid))

	if lnch.Config.Graph {
		bar := render.NewBar(CHT, fmt.Sprintf(SUB, lnch.Config.Field), bars)
		p, err := render.WritePage(lnch.Config.OutDir, FILE, bar)
		lnch.Msg.EC(err)
		lnch.Msg.NOTE(fmt.Sprintf(MSG, p))
	}
}

type termcount struct {
	Term string
	N    int
}

// termcounttable - frequency-ranked terms, ties alphabetical
func termcounttable(tt []bag.Token) []termcount {
	counts := bag.TermCounts(tt)
	ranked := make([]termcount, 0, len(counts))
	for t, n := range counts {
		ranked = append(ranked, termcount{Term: t, N: n})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].N != ranked[j].N {
			return ranked[i].N > ranked[j].N
		}
		return ranked[i].Term < ranked[j].Term
	})
	return ranked
}
