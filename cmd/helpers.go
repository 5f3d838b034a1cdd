//    MetaMine: topic models and term statistics for data-catalog metadata
//    License: GNU GENERAL PUBLIC LICENSE 3

package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/opencatalogtools/metamine/internal/bag"
	"github.com/opencatalogtools/metamine/internal/cat"
	"github.com/opencatalogtools/metamine/internal/lnch"
	"github.com/opencatalogtools/metamine/internal/store"
	"github.com/opencatalogtools/metamine/internal/vv"
)

//
// SHARED PLUMBING
//

// loadcatalog - read the configured catalog and report its shape
func loadcatalog() *cat.Catalog {
	const (
		MSG1 = "loaded %d datasets from '%s'"
		MSG2 = "%d duplicate identifiers (last record wins); %d records without identifiers dropped"
	)

	start := time.Now()
	c, err := cat.Load(lnch.Config.Catalog)
	lnch.Msg.EC(err)

	lnch.Msg.FYI(fmt.Sprintf(MSG1, c.Len(), lnch.Config.Catalog))
	if c.Dupes > 0 || c.Anonymous > 0 {
		lnch.Msg.NOTE(fmt.Sprintf(MSG2, c.Dupes, c.Anonymous))
	}
	lnch.Msg.Timer("A", "catalog ingest", start, start)
	return c
}

// fieldrecords - pick the configured free-text field out of the catalog
func fieldrecords(c *cat.Catalog) []cat.FieldRecord {
	const (
		FAIL = "unknown field '%s'; expected '%s' or '%s'"
	)

	switch lnch.Config.Field {
	case vv.FIELDTITLE:
		return c.Titles()
	case vv.FIELDDESCRIPTION:
		return c.Descriptions()
	default:
		lnch.Msg.Error(fmt.Errorf(FAIL, lnch.Config.Field, vv.FIELDTITLE, vv.FIELDDESCRIPTION))
		return nil
	}
}

// buildtokens - tokenize the configured field with the configured stop list
func buildtokens(c *cat.Catalog) []bag.Token {
	const (
		MSG = "tokenized '%s': %d tokens, %d distinct terms"
	)

	start := time.Now()
	stops := bag.Stopset()
	tt := bag.Build(fieldrecords(c), stops, lnch.Config.KeepDigits)
	lnch.Msg.FYI(fmt.Sprintf(MSG, lnch.Config.Field, len(tt), len(bag.TermCounts(tt))))
	lnch.Msg.Timer("B", "tokenization", start, start)
	return tt
}

// openstore - open the sqlite results store or die trying
func openstore() *store.Store {
	s, err := store.Open(lnch.Config.Store)
	lnch.Msg.EC(err)
	return s
}

// printtable - dump rows to the terminal; capped so a fat corpus cannot flood it
func printtable(header []string, rows [][]string) {
	const (
		MSG = "(table truncated at %d rows)"
	)

	if len(rows) > vv.MAXTABLEROWS {
		rows = rows[:vv.MAXTABLEROWS]
		lnch.Msg.NOTE(fmt.Sprintf(MSG, vv.MAXTABLEROWS))
	}

	t := tablewriter.NewWriter(os.Stdout)
	t.SetHeader(header)
	t.SetAutoFormatHeaders(false)
	t.SetAutoWrapText(false)
	t.AppendBulk(rows)
	t.Render()
}
