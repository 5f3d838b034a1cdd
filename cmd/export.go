//    MetaMine: topic models and term statistics for data-catalog metadata
//    License: GNU GENERAL PUBLIC LICENSE 3

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opencatalogtools/metamine/internal/lnch"
	"github.com/opencatalogtools/metamine/internal/store"
)

var (
	flagpghost string
	flagpgport int
	flagpguser string
	flagpgpass string
	flagpgdb   string
)

var exportCmd = &cobra.Command{
	Use:   "export <run-id>",
	Short: "Copy one run's tables into PostgreSQL",
	Long: `Copy the derived tables of one run from the sqlite store into a
PostgreSQL database so they can be queried with heavier tooling. This
is a best-effort batch copy; the sqlite file stays the system of
record.`,
	Args: cobra.ExactArgs(1),
	Run:  runexport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&flagpghost, "pghost", lnch.Config.PGLogin.Host, "postgresql host")
	exportCmd.Flags().IntVar(&flagpgport, "pgport", lnch.Config.PGLogin.Port, "postgresql port")
	exportCmd.Flags().StringVar(&flagpguser, "pguser", lnch.Config.PGLogin.User, "postgresql user")
	exportCmd.Flags().StringVar(&flagpgpass, "pgpass", "", "postgresql password")
	exportCmd.Flags().StringVar(&flagpgdb, "pgdb", lnch.Config.PGLogin.DBName, "postgresql database")
}

func runexport(cmd *cobra.Command, args []string) {
	const (
		MSG = "copied %d rows of run %s into '%s' on %s"
	)

	ff := cmd.Flags()
	if ff.Changed("pghost") {
		lnch.Config.PGLogin.Host = flagpghost
	}
	if ff.Changed("pgport") {
		lnch.Config.PGLogin.Port = flagpgport
	}
	if ff.Changed("pguser") {
		lnch.Config.PGLogin.User = flagpguser
	}
	if ff.Changed("pgpass") {
		lnch.Config.PGLogin.Pass = flagpgpass
	}
	if ff.Changed("pgdb") {
		lnch.Config.PGLogin.DBName = flagpgdb
	}

	run := args[0]

	s := openstore()
	defer s.Close()

	pool, err := store.OpenPGPool(lnch.Config.PGLogin)
	lnch.Msg.EC(err)
	defer pool.Close()

	n, err := store.ExportRun(pool, s, run)
	lnch.Msg.EC(err)
	lnch.Msg.MAND(fmt.Sprintf(MSG, n, run, lnch.Config.PGLogin.DBName, lnch.Config.PGLogin.Host))
}
