//    MetaMine: topic models and term statistics for data-catalog metadata
//    License: GNU GENERAL PUBLIC LICENSE 3

package vv

const (
	// LDATOPICS - the topic count that proved informative for a catalog of this size; see the "topics" command flag to vary it
	LDATOPICS       = 24
	LDAMAXTOPICS    = 60
	LDAITER         = 200
	LDAXFORMPASSES  = 100
	LDABURNINPASSES = 2
	LDACHGEVALFRQ   = 10
	LDAPERPEVALFRQ  = 10
	LDAPERPTOL      = 1e-2
	LDASEED         = 1 // 0 = seed from the clock; anything else reproduces the fit
	TOPICTOPTERMS   = 8
	TOPICTOPDOCS    = 3
	TOPICTOPKEYWDS  = 10

	TSNEPERPLEXITY = 150
	TSNELEARNRATE  = 100
	TSNEMAXITER    = 150

	DEFAULTCHRTWIDTH  = "1500px"
	DEFAULTCHRTHEIGHT = "1200px"
)
