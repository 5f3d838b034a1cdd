//    MetaMine: topic models and term statistics for data-catalog metadata
//    License: GNU GENERAL PUBLIC LICENSE 3

package vv

const (
	MYNAME    = "MetaMine"
	SHORTNAME = "MM"
	VERSION   = "0.3.1"

	CONFIGALTAPTH  = "%s/.config/metamine/" // %s = os.UserHomeDir()
	CONFIGBASIC    = "mm-conf.json"
	CONFIGSTOPS    = "mm-stopwords.json"
	JSONINDENT     = "  "
	WRITEPERMS     = 0644
	CONFIGDIRPERMS = 0700

	DEFAULTCATALOG  = "catalog.json"
	DEFAULTOUTDIR   = "mm-output"
	DEFAULTSTORE    = "metamine.db"
	DEFAULTLOGLEVEL = 2
	DEFAULTFIELD    = "description"

	// a catalog "dataset" entry can carry several text fields; these are the ones we mine
	FIELDTITLE       = "title"
	FIELDDESCRIPTION = "description"
	FIELDKEYWORD     = "keyword"

	DEFAULTPSQLHOST = "127.0.0.1"
	DEFAULTPSQLPORT = 5432
	DEFAULTPSQLUSER = "metamine"
	DEFAULTPSQLDB   = "metamineDB"

	MINTOKENLENGTH = 2   // single letters are markup shrapnel, not words
	TOPNTERMS      = 15  // default table/chart length for term rankings
	PAIRMINCOUNT   = 20  // a term must hit N documents before it can correlate
	PAIRTOPN       = 60  // edges drawn in the co-occurrence network
	MAXTABLEROWS   = 500 // terminal tables get silly after this
)
