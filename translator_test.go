package catmux

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslateFrequencyReportToKenwoodSet(t *testing.T) {
	out, err := translate(FrequencyReport(14250000), ProtocolKenwood, TranslationConfig{})
	assert.NoError(t, err)
	assert.Equal(t, []byte("FA00014250000;"), out)
}

func TestTranslatePttReportToCivSet(t *testing.T) {
	out, err := translate(PttReport(true), ProtocolIcomCIV, TranslationConfig{CivToAddress: 0x94})
	assert.NoError(t, err)
	assert.Equal(t, []byte{0xFE, 0xFE, 0x94, 0xE0, 0x1C, 0x00, 0x01, 0xFD}, out)
}

func TestTranslateUnmappedModeFails(t *testing.T) {
	_, err := translate(SetMode(ModeC4FM), ProtocolIcomCIV, TranslationConfig{CivToAddress: 0x94})
	assert.Error(t, err)
}

func TestReportToSetLeavesOtherKindsAlone(t *testing.T) {
	cmd := GetFrequency()
	assert.Equal(t, cmd, reportToSet(cmd))
}
