//    MetaMine: topic models and term statistics for data-catalog metadata
//    License: GNU GENERAL PUBLIC LICENSE 3

package mm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testmaker(bw bool) *MessageMaker {
	m := NewMessageMaker("MetaMine", "MM", "0.0.0", MSGNOTE, bw)
	m.Win = false
	return m
}

func TestColorSwap(t *testing.T) {
	m := testmaker(false)
	out := m.Color("[catalog: C4ok C0]")
	assert.Contains(t, out, GREEN)
	assert.Contains(t, out, RESET)
	assert.NotContains(t, out, "C4")
	assert.NotContains(t, out, "C0")
}

func TestColorSwapBW(t *testing.T) {
	m := testmaker(true)
	out := m.Color("C5hot	C0")
	assert.NotContains(t, out, "\033")
	assert.NotContains(t, out, "C5")
}

func TestStyled(t *testing.T) {
	m := testmaker(false)
	out := m.Styled("S1bold wordsS0")
	assert.Contains(t, out, "\033[1m")
	assert.NotContains(t, out, "S1")

	bw := testmaker(true)
	assert.Equal(t, "bold words", bw.Styled("S1bold wordsS0"))
}

func TestColStyle(t *testing.T) {
	m := testmaker(true)
	assert.Equal(t, "plain", m.ColStyle("S1C1plainC0S0"))
}

func TestNewMessageMaker(t *testing.T) {
	m := NewMessageMaker("MetaMine", "MM", "1.2.3", MSGWARN, false)
	assert.Equal(t, "MM", m.Lnc.Shortname)
	assert.Equal(t, "1.2.3", m.Lnc.Version)
	assert.Equal(t, MSGWARN, m.LLvl)
	assert.False(t, m.Lnc.LaunchTime.IsZero())
}
