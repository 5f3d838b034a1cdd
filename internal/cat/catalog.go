//    MetaMine: topic models and term statistics for data-catalog metadata
//    License: GNU GENERAL PUBLIC LICENSE 3

package cat

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/opencatalogtools/metamine/internal/gen"
)

//
// INGESTION
//

// the input is a Project Open Data style catalog: one big JSON object whose
// "dataset" array carries the ~32k metadata entries we mine; only four of the
// many fields in an entry matter here

// Dataset - one catalog entry, reduced to its minable fields
type Dataset struct {
	Identifier  string   `json:"identifier"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Keywords    []string `json:"keyword"`
}

// FieldRecord - (dataset id, text) for one of the free-text fields
type FieldRecord struct {
	ID   string
	Text string
}

// KeywordRecord - (dataset id, keyword); keywords arrive pre-assigned by humans
type KeywordRecord struct {
	ID      string
	Keyword string
}

// Catalog - the decoded snapshot plus ingest bookkeeping
type Catalog struct {
	Datasets  []Dataset
	Dupes     int // identifiers seen more than once; last record wins
	Anonymous int // entries with no identifier; dropped
	byid      map[string]int
}

type rawcatalog struct {
	Datasets []Dataset `json:"dataset"`
}

// Load - read and decode a catalog snapshot from disk
func Load(path string) (*Catalog, error) {
	const (
		FAIL = "Load() could not open '%s': %w"
	)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf(FAIL, path, err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode - parse catalog JSON into a Catalog; duplicate ids collapse (last wins), id-less entries drop
func Decode(r io.Reader) (*Catalog, error) {
	const (
		FAIL = "Decode() could not parse the catalog: %w"
	)

	var raw rawcatalog
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf(FAIL, err)
	}

	c := &Catalog{byid: make(map[string]int, len(raw.Datasets))}

	for i := 0; i < len(raw.Datasets); i++ {
		ds := raw.Datasets[i]
		ds.Identifier = strings.TrimSpace(ds.Identifier)
		if ds.Identifier == "" {
			c.Anonymous += 1
			continue
		}
		ds.Keywords = normalizekeywords(ds.Keywords)
		if at, seen := c.byid[ds.Identifier]; seen {
			c.Dupes += 1
			c.Datasets[at] = ds
			continue
		}
		c.byid[ds.Identifier] = len(c.Datasets)
		c.Datasets = append(c.Datasets, ds)
	}

	return c, nil
}

// normalizekeywords - trim, drop empties, and collapse case so that "Oceans" and "OCEANS" count as one keyword
func normalizekeywords(kw []string) []string {
	var out []string
	for i := 0; i < len(kw); i++ {
		k := strings.ToUpper(strings.TrimSpace(kw[i]))
		if k != "" {
			out = append(out, k)
		}
	}
	return gen.Unique(out)
}

// Len - number of ingested datasets
func (c *Catalog) Len() int {
	return len(c.Datasets)
}

// Get - fetch a dataset by identifier
func (c *Catalog) Get(id string) (Dataset, bool) {
	at, ok := c.byid[id]
	if !ok {
		return Dataset{}, false
	}
	return c.Datasets[at], true
}

// Titles - the flat (id, title) record set
func (c *Catalog) Titles() []FieldRecord {
	rr := make([]FieldRecord, len(c.Datasets))
	for i := 0; i < len(c.Datasets); i++ {
		rr[i] = FieldRecord{ID: c.Datasets[i].Identifier, Text: c.Datasets[i].Title}
	}
	return rr
}

// Descriptions - the flat (id, description) record set
func (c *Catalog) Descriptions() []FieldRecord {
	rr := make([]FieldRecord, len(c.Datasets))
	for i := 0; i < len(c.Datasets); i++ {
		rr[i] = FieldRecord{ID: c.Datasets[i].Identifier, Text: c.Datasets[i].Description}
	}
	return rr
}

// Keywords - the flat (id, keyword) record set; one row per assignment
func (c *Catalog) Keywords() []KeywordRecord {
	var rr []KeywordRecord
	for i := 0; i < len(c.Datasets); i++ {
		for _, k := range c.Datasets[i].Keywords {
			rr = append(rr, KeywordRecord{ID: c.Datasets[i].Identifier, Keyword: k})
		}
	}
	return rr
}

// KeywordCounts - how often each keyword is assigned across the catalog
func (c *Catalog) KeywordCounts() map[string]int {
	counts := make(map[string]int)
	for i := 0; i < len(c.Datasets); i++ {
		for _, k := range c.Datasets[i].Keywords {
			counts[k] += 1
		}
	}
	return counts
}
