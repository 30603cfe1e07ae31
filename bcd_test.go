package catmux

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestBcdLittleEndianWorkedExample(t *testing.T) {
	// 14,250,000 Hz <-> 00 00 25 14 00 (CI-V, 5 bytes, LE digit pairs).
	hz, ok := bcdDecodeLE([]byte{0x00, 0x00, 0x25, 0x14, 0x00})
	assert.True(t, ok)
	assert.Equal(t, uint64(14250000), hz)
	assert.Equal(t, []byte{0x00, 0x00, 0x25, 0x14, 0x00}, bcdEncodeLE(14250000, 5))
}

func TestBcdBigEndianWorkedExample(t *testing.T) {
	// 14 25 00 00 (Yaesu binary, 4 bytes, BE digit pairs, exact Hz) <-> 14,250,000 Hz.
	hz, ok := bcdDecodeBE([]byte{0x14, 0x25, 0x00, 0x00})
	assert.True(t, ok)
	assert.Equal(t, uint64(14250000), hz)
	assert.Equal(t, []byte{0x14, 0x25, 0x00, 0x00}, bcdEncodeBE(14250000, 4))
}

func TestBcdRejectsInvalidNibbles(t *testing.T) {
	_, ok := bcdDecodeLE([]byte{0xAF})
	assert.False(t, ok)
	_, ok = bcdDecodeBE([]byte{0xFA})
	assert.False(t, ok)
}

func TestBcdRoundTripLE(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := rapid.Uint64Range(0, 9999999999).Draw(t, "hz")
		enc := bcdEncodeLE(v, 5)
		got, ok := bcdDecodeLE(enc)
		assert.True(t, ok)
		assert.Equal(t, v, got)
	})
}

func TestBcdRoundTripBE(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := rapid.Uint64Range(0, 99999999).Draw(t, "units")
		enc := bcdEncodeBE(v, 4)
		got, ok := bcdDecodeBE(enc)
		assert.True(t, ok)
		assert.Equal(t, v, got)
	})
}
