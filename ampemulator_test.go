package catmux

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestEngineWithActiveRadio(t *testing.T) (*Engine, RadioHandle) {
	t.Helper()
	e := NewEngine(DefaultMultiplexerConfig())
	h := e.RegisterRadio("radio1", "tcp://x", ProtocolKenwood)
	e.SelectRadio(h)
	e.ProcessRadioCommand(h, SetFrequency(14250000))
	e.ProcessRadioCommand(h, SetMode(ModeCW))
	return e, h
}

func TestAmpEmulatorAnswersGetID(t *testing.T) {
	e, _ := newTestEngineWithActiveRadio(t)
	resp := e.resolveAmplifierQuery(GetID())
	assert.Equal(t, []byte("ID022;"), resp)
}

func TestAmpEmulatorAnswersGetFrequencyFromCache(t *testing.T) {
	e, _ := newTestEngineWithActiveRadio(t)
	resp := e.resolveAmplifierQuery(GetFrequency())
	assert.Equal(t, []byte("FA00014250000;"), resp)
}

func TestAmpEmulatorNoResponseWithoutActiveRadio(t *testing.T) {
	e := NewEngine(DefaultMultiplexerConfig())
	resp := e.resolveAmplifierQuery(GetFrequency())
	assert.Nil(t, resp)
}

func TestAmpEmulatorBandQuery(t *testing.T) {
	e, h := newTestEngineWithActiveRadio(t)
	e.ProcessRadioCommand(h, SetVfo(VfoB))
	resp := e.resolveAmplifierQuery(Unknown([]byte("CB;")))
	assert.Equal(t, []byte("CB1;"), resp)
}

func TestAmpEmulatorNeverTouchesElection(t *testing.T) {
	e := NewEngine(DefaultMultiplexerConfig())
	h1 := e.RegisterRadio("radio1", "tcp://x", ProtocolKenwood)
	e.SetSwitchingMode(SwitchingAutomatic)
	e.ProcessRadioCommand(h1, SetPtt(true)) // elects radio1
	before := e.activeRadio

	e.ProcessAmplifierInput([]byte("ID;"))
	assert.Equal(t, before, e.activeRadio)
}
