//    MetaMine: topic models and term statistics for data-catalog metadata
//    License: GNU GENERAL PUBLIC LICENSE 3

package lnch

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/opencatalogtools/metamine/internal/vv"
)

func TestBuildDefaultConfig(t *testing.T) {
	c := BuildDefaultConfig()
	assert.Equal(t, vv.DEFAULTCATALOG, c.Catalog)
	assert.Equal(t, vv.DEFAULTFIELD, c.Field)
	assert.Equal(t, vv.LDATOPICS, c.Topics)
	assert.Equal(t, uint64(vv.LDASEED), c.Seed)
	assert.Equal(t, vv.PAIRMINCOUNT, c.MinPairCount)
	assert.Equal(t, runtime.NumCPU(), c.WorkerCount)
	assert.False(t, c.KeepDigits)
	assert.True(t, c.Graph)
	assert.Equal(t, vv.DEFAULTPSQLHOST, c.PGLogin.Host)
	assert.Equal(t, vv.DEFAULTPSQLPORT, c.PGLogin.Port)
}

func TestRebuildMessenger(t *testing.T) {
	old := Config
	oldmsg := Msg
	defer func() {
		Config = old
		Msg = oldmsg
	}()

	Config.LogLevel = 4
	Config.BlackAndWhite = true
	RebuildMessenger()
	assert.Equal(t, 4, Msg.LLvl)
	assert.True(t, Msg.BW)
	assert.Equal(t, vv.MYNAME, Msg.Lnc.Name)
}
