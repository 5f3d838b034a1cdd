//    MetaMine: topic models and term statistics for data-catalog metadata
//    License: GNU GENERAL PUBLIC LICENSE 3

package bag

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/opencatalogtools/metamine/internal/gen"
	"github.com/opencatalogtools/metamine/internal/lnch"
	"github.com/opencatalogtools/metamine/internal/vv"
)

//
// STOPWORDS
//

var (
	// English175 - common english function words; the usual suspects
	English175 = []string{"a", "about", "above", "after", "again", "against", "all", "am", "an", "and", "any", "are",
		"aren", "as", "at", "be", "because", "been", "before", "being", "below", "between", "both", "but", "by",
		"can", "cannot", "could", "couldn", "did", "didn", "do", "does", "doesn", "doing", "don", "down", "during",
		"each", "few", "for", "from", "further", "had", "hadn", "has", "hasn", "have", "haven", "having", "he",
		"her", "here", "hers", "herself", "him", "himself", "his", "how", "i", "if", "in", "into", "is", "isn",
		"it", "its", "itself", "just", "me", "more", "most", "mustn", "my", "myself", "no", "nor", "not", "now",
		"of", "off", "on", "once", "only", "or", "other", "ought", "our", "ours", "ourselves", "out", "over",
		"own", "same", "shan", "she", "should", "shouldn", "so", "some", "such", "than", "that", "the", "their",
		"theirs", "them", "themselves", "then", "there", "these", "they", "this", "those", "through", "to", "too",
		"under", "until", "up", "very", "was", "wasn", "we", "were", "weren", "what", "when", "where", "which",
		"while", "who", "whom", "why", "will", "with", "won", "would", "wouldn", "you", "your", "yours",
		"yourself", "yourselves"}

	// NoiseStops - markup residue and boilerplate that survives tokenization of real catalog descriptions
	NoiseStops = []string{"amp", "nbsp", "gt", "lt", "quot", "apos", "br", "href", "em", "td", "tr", "tbody",
		"table", "font", "px", "div", "span", "http", "https", "www", "com", "gov", "html", "file", "files",
		"ii", "iii", "v1", "v2", "v3", "v4"}
)

// ReadStopConfig - read the stop list from the user config dir; if the file does not exist, generate it first
func ReadStopConfig() []string {
	const (
		ERR1 = "ReadStopConfig() cannot find UserHomeDir"
		ERR2 = "ReadStopConfig() failed to parse "
		MSG1 = "ReadStopConfig() wrote stop word configuration file: "
	)

	stops := append(append([]string{}, English175...), NoiseStops...)

	h, e := os.UserHomeDir()
	if e != nil {
		lnch.Msg.MAND(ERR1)
		return stops
	}

	vcfg := fmt.Sprintf(vv.CONFIGALTAPTH, h) + vv.CONFIGSTOPS

	_, yes := os.Stat(vcfg)

	if yes != nil {
		sort.Strings(stops)
		content, err := json.MarshalIndent(stops, "", vv.JSONINDENT)
		lnch.Msg.EC(err)

		_ = os.MkdirAll(fmt.Sprintf(vv.CONFIGALTAPTH, h), os.FileMode(vv.CONFIGDIRPERMS))
		err = os.WriteFile(vcfg, content, vv.WRITEPERMS)
		lnch.Msg.EC(err)
		lnch.Msg.PEEK(MSG1 + vcfg)
	} else {
		loadedcfg, _ := os.Open(vcfg)
		decoderc := json.NewDecoder(loadedcfg)
		var stp []string
		errc := decoderc.Decode(&stp)
		_ = loadedcfg.Close()
		if errc != nil {
			lnch.Msg.CRIT(ERR2 + vcfg)
		} else {
			stops = stp
		}
	}
	return stops
}

// Stopset - the stop list as a set
func Stopset() map[string]bool {
	return gen.ToSet(ReadStopConfig())
}

// DefaultStopset - the bundled lists only; no config file involvement (tests want this)
func DefaultStopset() map[string]bool {
	return gen.ToSet(append(append([]string{}, English175...), NoiseStops...))
}
