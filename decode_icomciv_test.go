package catmux

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestCivDecodeFrequencyReport(t *testing.T) {
	d := newCivDecoder()
	// FE FE 94 E0 00 00 00 25 14 00 FD -> 14,250,000 Hz report.
	frame := []byte{0xFE, 0xFE, 0x94, 0xE0, 0x00, 0x00, 0x00, 0x25, 0x14, 0x00, 0xFD}
	cmds := d.Push(frame)
	if assert.Len(t, cmds, 1) {
		assert.Equal(t, CmdFrequencyReport, cmds[0].Kind)
		assert.Equal(t, uint64(14250000), cmds[0].Hz)
	}
}

func TestCivDecodeRecordsFromAddress(t *testing.T) {
	d := newCivDecoder()
	frame := []byte{0xFE, 0xFE, 0x94, 0xE0, 0x03, 0xFD}
	cmds := d.Push(frame)
	if assert.Len(t, cmds, 1) {
		assert.True(t, cmds[0].HasCivAddress)
		assert.Equal(t, byte(0xE0), cmds[0].CivAddress, "from is the fourth byte (index 3), not the to address before it")
	}
}

func TestCivDecodeResyncOnGarbage(t *testing.T) {
	d := newCivDecoder()
	garbage := []byte{0x01, 0x02, 0x03}
	frame := []byte{0xFE, 0xFE, 0x94, 0xE0, 0x03, 0xFD}
	cmds := d.Push(append(garbage, frame...))
	if assert.Len(t, cmds, 1) {
		assert.Equal(t, CmdGetFrequency, cmds[0].Kind)
	}
}

func TestCivDecodeSplitFrameIsUnknown(t *testing.T) {
	d := newCivDecoder()
	frame := []byte{0xFE, 0xFE, 0x94, 0xE0, 0x0F, 0x01, 0xFD}
	cmds := d.Push(frame)
	if assert.Len(t, cmds, 1) {
		assert.Equal(t, CmdUnknown, cmds[0].Kind)
	}
}

func TestCivEncodeSetVsReportDiffer(t *testing.T) {
	enc := civEncoder{to: 0x94}
	setFrame := enc.Encode(SetFrequency(14250000))
	reportFrame := enc.Encode(FrequencyReport(14250000))
	assert.NotEqual(t, setFrame[4], reportFrame[4], "Set and Report must use distinct CI-V commands")
	assert.Equal(t, byte(0x05), setFrame[4])
	assert.Equal(t, byte(0x00), reportFrame[4])
}

func TestCivFrequencyReportRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		hz := rapid.Uint64Range(0, 9999999999).Draw(t, "hz")
		enc := civEncoder{to: 0x94}
		frame := enc.Encode(FrequencyReport(hz))
		d := newCivDecoder()
		cmds := d.Push(frame)
		if assert.Len(t, cmds, 1) {
			assert.Equal(t, CmdFrequencyReport, cmds[0].Kind)
			assert.Equal(t, hz, cmds[0].Hz)
		}
	})
}
