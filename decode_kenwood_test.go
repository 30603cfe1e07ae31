package catmux

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestKenwoodDecodeSetFrequency(t *testing.T) {
	d := newKenwoodDecoder(ProtocolKenwood)
	cmds := d.Push([]byte("FA00014250000;"))
	if assert.Len(t, cmds, 1) {
		assert.Equal(t, CmdSetFrequency, cmds[0].Kind)
		assert.Equal(t, uint64(14250000), cmds[0].Hz)
		assert.Equal(t, VfoA, cmds[0].Vfo)
	}
}

func TestKenwoodDecodeQueryVariant(t *testing.T) {
	d := newKenwoodDecoder(ProtocolKenwood)
	cmds := d.Push([]byte("FA;"))
	if assert.Len(t, cmds, 1) {
		assert.Equal(t, CmdGetFrequency, cmds[0].Kind)
	}
}

func TestKenwoodDecodeStreamingAcrossPushes(t *testing.T) {
	d := newKenwoodDecoder(ProtocolKenwood)
	var cmds []RadioCommand
	cmds = append(cmds, d.Push([]byte("FA000142"))...)
	cmds = append(cmds, d.Push([]byte("50000;MD3;"))...)
	if assert.Len(t, cmds, 2) {
		assert.Equal(t, CmdSetFrequency, cmds[0].Kind)
		assert.Equal(t, CmdSetMode, cmds[1].Kind)
		assert.Equal(t, ModeCW, cmds[1].Mode)
	}
}

func TestKenwoodAIAbsorbed(t *testing.T) {
	d := newKenwoodDecoder(ProtocolKenwood)
	cmds := d.Push([]byte("AI2;"))
	assert.Empty(t, cmds)
}

func TestKenwoodUnknownFrameCarriesBytes(t *testing.T) {
	d := newKenwoodDecoder(ProtocolKenwood)
	cmds := d.Push([]byte("ZZXY1;"))
	if assert.Len(t, cmds, 1) {
		assert.Equal(t, CmdUnknown, cmds[0].Kind)
		assert.Equal(t, []byte("ZZXY1;"), cmds[0].Unknown)
	}
}

func TestKenwoodEncodeDecodeFrequencyRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		hz := rapid.Uint64Range(0, 99999999999).Draw(t, "hz")
		enc := kenwoodEncoder{proto: ProtocolKenwood}
		frame := enc.Encode(SetFrequency(hz))
		d := newKenwoodDecoder(ProtocolKenwood)
		cmds := d.Push(frame)
		if assert.Len(t, cmds, 1) {
			assert.Equal(t, CmdSetFrequency, cmds[0].Kind)
			assert.Equal(t, hz, cmds[0].Hz)
		}
	})
}
