//    MetaMine: topic models and term statistics for data-catalog metadata
//    License: GNU GENERAL PUBLIC LICENSE 3

package cmd

import (
	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/opencatalogtools/metamine/internal/lnch"
)

//
// PERSISTENT FLAGS
//

var (
	flagcatalog  string
	flagoutdir   string
	flagstore    string
	flagloglevel int
	flagbw       bool
	flagworkers  int
	flagprofile  bool
)

var profiler interface{ Stop() }

var rootCmd = &cobra.Command{
	Use:   "metamine",
	Short: "Term statistics and topic models for data-catalog metadata",
	Long: `MetaMine reads a data.json catalog snapshot and mines its free-text
metadata: token and pair counts, tf-idf scores, and LDA topic models.
Results land in terminal tables, standalone html charts, and a sqlite
results store.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		lnch.ConfigAtLaunch()
		overlayflags(cmd)
		lnch.RebuildMessenger()
		if lnch.Config.Profiling {
			profiler = profile.Start(profile.ProfilePath("."))
		}
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if profiler != nil {
			profiler.Stop()
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagcatalog, "catalog", lnch.Config.Catalog, "path to the catalog json snapshot")
	pf.StringVar(&flagoutdir, "out", lnch.Config.OutDir, "directory for html charts")
	pf.StringVar(&flagstore, "store", lnch.Config.Store, "path to the sqlite results store")
	pf.IntVar(&flagloglevel, "loglevel", lnch.Config.LogLevel, "console verbosity (-1 to 5)")
	pf.BoolVar(&flagbw, "bw", false, "disable color in the console output")
	pf.IntVar(&flagworkers, "workers", lnch.Config.WorkerCount, "number of workers")
	pf.BoolVar(&flagprofile, "profile", false, "write a cpu profile")
}

// overlayflags - flags the user actually set win over the config file
func overlayflags(cmd *cobra.Command) {
	ff := cmd.Flags()
	if ff.Changed("catalog") {
		lnch.Config.Catalog = flagcatalog
	}
	if ff.Changed("out") {
		lnch.Config.OutDir = flagoutdir
	}
	if ff.Changed("store") {
		lnch.Config.Store = flagstore
	}
	if ff.Changed("loglevel") {
		lnch.Config.LogLevel = flagloglevel
	}
	if ff.Changed("bw") {
		lnch.Config.BlackAndWhite = flagbw
	}
	if ff.Changed("workers") {
		lnch.Config.WorkerCount = flagworkers
	}
	if ff.Changed("profile") {
		lnch.Config.Profiling = flagprofile
	}
}
