//    MetaMine: topic models and term statistics for data-catalog metadata
//    License: GNU GENERAL PUBLIC LICENSE 3

package main

import (
	"fmt"
	"os"

	"github.com/opencatalogtools/metamine/cmd"
	"github.com/opencatalogtools/metamine/internal/lnch"
	"github.com/opencatalogtools/metamine/internal/vv"
)

func main() {
	versioninfo := fmt.Sprintf("%s (v.%s)", vv.MYNAME, vv.VERSION)
	lnch.Msg.CRIT(versioninfo)

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
