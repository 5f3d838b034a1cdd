//    MetaMine: topic models and term statistics for data-catalog metadata
//    License: GNU GENERAL PUBLIC LICENSE 3

package cmd

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/opencatalogtools/metamine/internal/lnch"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Load a catalog snapshot and report its shape",
	Long: `Load the catalog json and report what came in: dataset count,
duplicate and anonymous records, and the most common human-assigned
keywords.`,
	Run: runingest,
}

func init() {
	rootCmd.AddCommand(ingestCmd)
}

func runingest(cmd *cobra.Command, args []string) {
	const (
		HDRA = "datasets"
		HDRB = "duplicates"
		HDRC = "no identifier"
		HDRD = "keyword"
		HDRE = "count"
		MSG  = "top %d keywords"
	)

	c := loadcatalog()

	printtable([]string{HDRA, HDRB, HDRC}, [][]string{{
		strconv.Itoa(c.Len()), strconv.Itoa(c.Dupes), strconv.Itoa(c.Anonymous),
	}})

	kc := c.KeywordCounts()
	type kn struct {
		K string
		N int
	}
	ranked := make([]kn, 0, len(kc))
	for k, n := range kc {
		ranked = append(ranked, kn{K: k, N: n})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].N != ranked[j].N {
			return ranked[i].N > ranked[j].N
		}
		return ranked[i].K < ranked[j].K
	})

	top := lnch.Config.TopN
	if top > len(ranked) {
		top = len(ranked)
	}

	lnch.Msg.NOTE(fmt.Sprintf(MSG, top))
	rows := make([][]string, top)
	for i := 0; i < top; i++ {
		rows[i] = []string{ranked[i].K, strconv.Itoa(ranked[i].N)}
	}
	printtable([]string{HDRD, HDRE}, rows)
}
