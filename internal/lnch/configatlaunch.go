//    MetaMine: topic models and term statistics for data-catalog metadata
//    License: GNU GENERAL PUBLIC LICENSE 3

package lnch

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"github.com/opencatalogtools/metamine/internal/mm"
	"github.com/opencatalogtools/metamine/internal/vv"
)

type PostgresLogin struct {
	Host   string
	Port   int
	User   string
	Pass   string
	DBName string
}

type CurrentConfiguration struct {
	Catalog       string // path to the catalog JSON snapshot
	OutDir        string // where the html charts land
	Store         string // sqlite results store
	Field         string // which text field feeds tokens/tfidf/topics: "title" or "description"
	LogLevel      int
	BlackAndWhite bool
	WorkerCount   int
	Topics        int
	Seed          uint64
	Iterations    int
	XformPasses   int
	BurnInPasses  int
	MinPairCount  int
	TopN          int
	KeepDigits    bool
	Refit         bool
	Graph         bool
	Profiling     bool
	PGLogin       PostgresLogin
}

var (
	// Config - the run-wide configuration; cmd/ applies flag overrides on top of this
	Config = BuildDefaultConfig()

	// Msg - the run-wide messenger; rebuilt by cmd/ once the flags are known
	Msg = mm.NewMessageMaker(vv.MYNAME, vv.SHORTNAME, vv.VERSION, vv.DEFAULTLOGLEVEL, false)
)

func BuildDefaultConfig() CurrentConfiguration {
	var c CurrentConfiguration
	c.Catalog = vv.DEFAULTCATALOG
	c.OutDir = vv.DEFAULTOUTDIR
	c.Store = vv.DEFAULTSTORE
	c.Field = vv.DEFAULTFIELD
	c.LogLevel = vv.DEFAULTLOGLEVEL
	c.BlackAndWhite = false
	c.WorkerCount = runtime.NumCPU()
	c.Topics = vv.LDATOPICS
	c.Seed = vv.LDASEED
	c.Iterations = vv.LDAITER
	c.XformPasses = vv.LDAXFORMPASSES
	c.BurnInPasses = vv.LDABURNINPASSES
	c.MinPairCount = vv.PAIRMINCOUNT
	c.TopN = vv.TOPNTERMS
	c.KeepDigits = false
	c.Refit = false
	c.Graph = true
	c.PGLogin = PostgresLogin{
		Host:   vv.DEFAULTPSQLHOST,
		Port:   vv.DEFAULTPSQLPORT,
		User:   vv.DEFAULTPSQLUSER,
		DBName: vv.DEFAULTPSQLDB,
	}
	return c
}

// LookForConfigFile - if ~/.config/metamine/mm-conf.json is missing, write the defaults there so the user has a file to edit
func LookForConfigFile() {
	const (
		FYI = "LookForConfigFile() wrote default configuration: "
		ERR = "LookForConfigFile() cannot find UserHomeDir"
	)

	h, e := os.UserHomeDir()
	if e != nil {
		Msg.WARN(ERR)
		return
	}

	cd := fmt.Sprintf(vv.CONFIGALTAPTH, h)
	cf := cd + vv.CONFIGBASIC

	_, yes := os.Stat(cf)
	if yes == nil {
		return
	}

	ee := os.MkdirAll(cd, os.FileMode(vv.CONFIGDIRPERMS))
	Msg.EC(ee)

	content, err := json.MarshalIndent(Config, "", vv.JSONINDENT)
	Msg.EC(err)

	err = os.WriteFile(cf, content, vv.WRITEPERMS)
	Msg.EC(err)
	Msg.PEEK(FYI + cf)
}

// ConfigAtLaunch - overlay the values in the config file (if any) onto the defaults
func ConfigAtLaunch() {
	const (
		ERR = "ConfigAtLaunch() failed to parse "
	)

	h, e := os.UserHomeDir()
	if e != nil {
		return
	}

	cf := fmt.Sprintf(vv.CONFIGALTAPTH, h) + vv.CONFIGBASIC

	loadedcfg, err := os.Open(cf)
	if err != nil {
		LookForConfigFile()
		return
	}

	decoderc := json.NewDecoder(loadedcfg)
	vc := BuildDefaultConfig()
	errc := decoderc.Decode(&vc)
	_ = loadedcfg.Close()
	if errc != nil {
		Msg.CRIT(ERR + cf)
		return
	}
	Config = vc
}

// RebuildMessenger - the messenger is built before the flags are parsed; rebuild it once they are
func RebuildMessenger() {
	Msg = mm.NewMessageMaker(vv.MYNAME, vv.SHORTNAME, vv.VERSION, Config.LogLevel, Config.BlackAndWhite)
}
