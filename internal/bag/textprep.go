//    MetaMine: topic models and term statistics for data-catalog metadata
//    License: GNU GENERAL PUBLIC LICENSE 3

package bag

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/opencatalogtools/metamine/internal/cat"
	"github.com/opencatalogtools/metamine/internal/vv"
)

//
// TOKENIZATION & CLEANING
//

// Token - (dataset id, term) after splitting and stop-word removal; order within a document is discarded
type Token struct {
	ID   string
	Term string
}

// DocBag - the bag of terms for one dataset
type DocBag struct {
	ID    string
	Terms []string
}

var (
	splitter  = regexp.MustCompile(`[^a-z0-9]+`)
	alldigits = regexp.MustCompile(`^[0-9]+$`)

	// description fields in the wild carry markup shrapnel and urls; purge before splitting
	purgable = []string{`<[^>]*>`, `https?://\S+`, `&#?[0-9a-z]+;`}
)

// Stripper - delete each in a list of patterns from a string
func Stripper(item string, purge []string) string {
	for i := 0; i < len(purge); i++ {
		re := regexp.MustCompile(purge[i])
		item = re.ReplaceAllString(item, " ")
	}
	return item
}

// makesubstitutions - unescape the entities that should survive as words before the purge eats them
func makesubstitutions(thetext string) string {
	swap := strings.NewReplacer("&amp;", " and ", "&nbsp;", " ", "&quot;", " ", "&apos;", " ",
		"&gt;", " ", "&lt;", " ", "&mdash;", " ", "&ndash;", " ")
	return swap.Replace(thetext)
}

var foldchain = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// deaccent - "résumé" --> "resume"; catalog text is mostly ascii but not reliably so
func deaccent(s string) string {
	out, _, err := transform.String(foldchain, s)
	if err != nil {
		return s
	}
	return out
}

// Tokenize - split a text field into word tokens; no stop-word filtering here
func Tokenize(text string, keepdigits bool) []string {
	text = makesubstitutions(text)
	text = Stripper(text, purgable)
	text = deaccent(strings.ToLower(text))

	split := splitter.Split(text, -1)

	var tokens []string
	for i := 0; i < len(split); i++ {
		w := split[i]
		if len(w) < vv.MINTOKENLENGTH {
			continue
		}
		if !keepdigits && alldigits.MatchString(w) {
			continue
		}
		tokens = append(tokens, w)
	}
	return tokens
}

// Build - turn field records into the flat token record set, minus stop words
func Build(recs []cat.FieldRecord, stops map[string]bool, keepdigits bool) []Token {
	var tt []Token
	for i := 0; i < len(recs); i++ {
		for _, w := range Tokenize(recs[i].Text, keepdigits) {
			if stops[w] {
				continue
			}
			tt = append(tt, Token{ID: recs[i].ID, Term: w})
		}
	}
	return tt
}

// Bags - one bag per dataset, in record order; datasets whose field tokenized to nothing still get a (empty) bag
func Bags(recs []cat.FieldRecord, stops map[string]bool, keepdigits bool) []DocBag {
	bags := make([]DocBag, len(recs))
	for i := 0; i < len(recs); i++ {
		bags[i].ID = recs[i].ID
		for _, w := range Tokenize(recs[i].Text, keepdigits) {
			if stops[w] {
				continue
			}
			bags[i].Terms = append(bags[i].Terms, w)
		}
	}
	return bags
}

// Corpus - space-joined bags, the shape the vectoriser wants
func Corpus(bags []DocBag) []string {
	cc := make([]string, len(bags))
	for i := 0; i < len(bags); i++ {
		cc[i] = strings.Join(bags[i].Terms, " ")
	}
	return cc
}

// TermCounts - total occurrences of each term in the token record set
func TermCounts(tokens []Token) map[string]int {
	counts := make(map[string]int)
	for i := 0; i < len(tokens); i++ {
		counts[tokens[i].Term] += 1
	}
	return counts
}
