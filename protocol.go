package catmux

// Protocol identifies a CAT dialect. Elecraft and FlexRadio are
// Kenwood-syntax supersets parsed by the same decoder with dialect
// flags; see decode_kenwood.go.
type Protocol int

const (
	ProtocolKenwood Protocol = iota
	ProtocolElecraft
	ProtocolFlexRadio
	ProtocolIcomCIV
	ProtocolYaesuBinary
	ProtocolYaesuAscii
)

func (p Protocol) String() string {
	switch p {
	case ProtocolKenwood:
		return "Kenwood"
	case ProtocolElecraft:
		return "Elecraft"
	case ProtocolFlexRadio:
		return "FlexRadio"
	case ProtocolIcomCIV:
		return "IcomCIV"
	case ProtocolYaesuBinary:
		return "YaesuBinary"
	case ProtocolYaesuAscii:
		return "YaesuAscii"
	default:
		return "Unknown"
	}
}

// isKenwoodFamily reports whether p is parsed by the Kenwood-syntax
// decoder (Kenwood, Elecraft, FlexRadio all share it with dialect
// flags per §4.1).
func (p Protocol) isKenwoodFamily() bool {
	switch p {
	case ProtocolKenwood, ProtocolElecraft, ProtocolFlexRadio:
		return true
	default:
		return false
	}
}

// heartbeatEligible reports whether p is one of the Kenwood-family
// protocols plus Yaesu ASCII that receive the §4.6 1Hz auto-info
// heartbeat, or Icom's transceive-enable equivalent. Yaesu binary has
// no heartbeat.
func (p Protocol) heartbeatEligible() bool {
	return p.isKenwoodFamily() || p == ProtocolYaesuAscii || p == ProtocolIcomCIV
}

// Vfo selects which of a radio's two tuning registers is in play.
type Vfo int

const (
	VfoA Vfo = iota
	VfoB
)

func (v Vfo) String() string {
	if v == VfoB {
		return "B"
	}
	return "A"
}

// OperatingMode is the protocol-agnostic operating mode vocabulary.
// Each protocol defines an injective partial mapping to its own
// numeric code set (§4.7); ModeUnknown is the result of decoding an
// unmapped code.
type OperatingMode int

const (
	ModeUnknown OperatingMode = iota
	ModeLSB
	ModeUSB
	ModeCW
	ModeCwReverse
	ModeAM
	ModeFM
	ModeFmNarrow
	ModeAmNarrow
	ModeRTTY
	ModeRttyReverse
	ModeDataLsb
	ModeDataUsb
	ModeC4FM
)

func (m OperatingMode) String() string {
	switch m {
	case ModeLSB:
		return "LSB"
	case ModeUSB:
		return "USB"
	case ModeCW:
		return "CW"
	case ModeCwReverse:
		return "CwReverse"
	case ModeAM:
		return "AM"
	case ModeFM:
		return "FM"
	case ModeFmNarrow:
		return "FmNarrow"
	case ModeAmNarrow:
		return "AmNarrow"
	case ModeRTTY:
		return "RTTY"
	case ModeRttyReverse:
		return "RttyReverse"
	case ModeDataLsb:
		return "DataLsb"
	case ModeDataUsb:
		return "DataUsb"
	case ModeC4FM:
		return "C4FM"
	default:
		return "Unknown"
	}
}

// Mode tables, authoritative per §4.7. Each table is a partial
// injection OperatingMode -> protocol code; the inverse maps are
// built once at init and may themselves be partial (unmapped codes
// decode to ModeUnknown).

var kenwoodModeCodes = map[OperatingMode]byte{
	ModeLSB:       '1',
	ModeUSB:       '2',
	ModeCW:        '3',
	ModeFM:        '4',
	ModeAM:        '5',
	ModeRTTY:      '6',
	ModeCwReverse: '7',
	ModeDataUsb:   '9',
}

var civModeCodes = map[OperatingMode]byte{
	ModeLSB:       0x00,
	ModeUSB:       0x01,
	ModeAM:        0x02,
	ModeCW:        0x03,
	ModeRTTY:      0x04,
	ModeFM:        0x05,
	ModeCwReverse: 0x07,
	ModeDataUsb:   0x08,
}

var yaesuBinModeCodes = map[OperatingMode]byte{
	ModeLSB:       0x00,
	ModeUSB:       0x01,
	ModeCW:        0x02,
	ModeCwReverse: 0x03,
	ModeAM:        0x04,
	ModeFM:        0x08,
}

var yaesuAsciiModeCodes = map[OperatingMode]byte{
	ModeLSB:       '1',
	ModeUSB:       '2',
	ModeCW:        '3',
	ModeFM:        '4',
	ModeAM:        '5',
	ModeRTTY:      '6',
	ModeCwReverse: '7',
	ModeDataLsb:   '8',
	ModeDataUsb:   'C',
	ModeC4FM:      'E',
}

func invertModeTable(t map[OperatingMode]byte) map[byte]OperatingMode {
	inv := make(map[byte]OperatingMode, len(t))
	for mode, code := range t {
		inv[code] = mode
	}
	return inv
}

var (
	kenwoodCodeModes    = invertModeTable(kenwoodModeCodes)
	civCodeModes        = invertModeTable(civModeCodes)
	yaesuBinCodeModes   = invertModeTable(yaesuBinModeCodes)
	yaesuAsciiCodeModes = invertModeTable(yaesuAsciiModeCodes)
)

func kenwoodModeToCode(m OperatingMode) (byte, bool) {
	c, ok := kenwoodModeCodes[m]
	return c, ok
}

func kenwoodCodeToMode(c byte) OperatingMode {
	if m, ok := kenwoodCodeModes[c]; ok {
		return m
	}
	return ModeUnknown
}

func civModeToCode(m OperatingMode) (byte, bool) {
	c, ok := civModeCodes[m]
	return c, ok
}

func civCodeToMode(c byte) OperatingMode {
	if m, ok := civCodeModes[c]; ok {
		return m
	}
	return ModeUnknown
}

func yaesuBinModeToCode(m OperatingMode) (byte, bool) {
	c, ok := yaesuBinModeCodes[m]
	return c, ok
}

func yaesuBinCodeToMode(c byte) OperatingMode {
	if m, ok := yaesuBinCodeModes[c]; ok {
		return m
	}
	return ModeUnknown
}

func yaesuAsciiModeToCode(m OperatingMode) (byte, bool) {
	c, ok := yaesuAsciiModeCodes[m]
	return c, ok
}

func yaesuAsciiCodeToMode(c byte) OperatingMode {
	if m, ok := yaesuAsciiCodeModes[c]; ok {
		return m
	}
	return ModeUnknown
}
