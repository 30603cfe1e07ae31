package catmux

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsKenwoodFamily(t *testing.T) {
	assert.True(t, ProtocolKenwood.isKenwoodFamily())
	assert.True(t, ProtocolElecraft.isKenwoodFamily())
	assert.True(t, ProtocolFlexRadio.isKenwoodFamily())
	assert.False(t, ProtocolIcomCIV.isKenwoodFamily())
	assert.False(t, ProtocolYaesuBinary.isKenwoodFamily())
}

func TestHeartbeatEligible(t *testing.T) {
	assert.True(t, ProtocolKenwood.heartbeatEligible())
	assert.True(t, ProtocolYaesuAscii.heartbeatEligible())
	assert.True(t, ProtocolIcomCIV.heartbeatEligible())
	assert.False(t, ProtocolYaesuBinary.heartbeatEligible())
}

func TestModeTablesRoundTrip(t *testing.T) {
	for mode, code := range kenwoodModeCodes {
		assert.Equal(t, mode, kenwoodCodeToMode(code))
	}
	for mode, code := range civModeCodes {
		assert.Equal(t, mode, civCodeToMode(code))
	}
	for mode, code := range yaesuBinModeCodes {
		assert.Equal(t, mode, yaesuBinCodeToMode(code))
	}
	for mode, code := range yaesuAsciiModeCodes {
		assert.Equal(t, mode, yaesuAsciiCodeToMode(code))
	}
}

func TestUnmappedModeCodeDecodesUnknown(t *testing.T) {
	assert.Equal(t, ModeUnknown, kenwoodCodeToMode('Z'))
	assert.Equal(t, ModeUnknown, civCodeToMode(0xFF))
}
