package catmux

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestYaesuAsciiDecodeFrequency(t *testing.T) {
	d := newYaesuAsciiDecoder()
	cmds := d.Push([]byte("FA014250000;"))
	if assert.Len(t, cmds, 1) {
		assert.Equal(t, CmdSetFrequency, cmds[0].Kind)
		assert.Equal(t, uint64(14250000), cmds[0].Hz)
	}
}

func TestYaesuAsciiModeToken(t *testing.T) {
	d := newYaesuAsciiDecoder()
	cmds := d.Push([]byte("MD03;"))
	if assert.Len(t, cmds, 1) {
		assert.Equal(t, CmdSetMode, cmds[0].Kind)
		assert.Equal(t, ModeCW, cmds[0].Mode)
	}
}

func TestYaesuAsciiFrequencyRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		hz := rapid.Uint64Range(0, 999999999).Draw(t, "hz")
		enc := yaesuAsciiEncoder{}
		frame := enc.Encode(SetFrequency(hz))
		d := newYaesuAsciiDecoder()
		cmds := d.Push(frame)
		if assert.Len(t, cmds, 1) {
			assert.Equal(t, CmdSetFrequency, cmds[0].Kind)
			assert.Equal(t, hz, cmds[0].Hz)
		}
	})
}
