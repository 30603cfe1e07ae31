package catmux

// SwitchingMode selects the election policy run in engine step 3
// (§4.3).
type SwitchingMode int

const (
	// SwitchingManual never switches automatically; only an explicit
	// SelectRadio call changes the active radio.
	SwitchingManual SwitchingMode = iota
	// SwitchingFrequencyTriggered switches to a radio whose frequency
	// changed to a new value.
	SwitchingFrequencyTriggered
	// SwitchingAutomatic switches on PTT-true, frequency change, or
	// mode change.
	SwitchingAutomatic
)

func (s SwitchingMode) String() string {
	switch s {
	case SwitchingManual:
		return "Manual"
	case SwitchingFrequencyTriggered:
		return "FrequencyTriggered"
	case SwitchingAutomatic:
		return "Automatic"
	default:
		return "?"
	}
}

// AmplifierConfig describes the amplifier-facing identity and wire
// protocol (§4.5, §4.4).
type AmplifierConfig struct {
	// Protocol the amplifier peer speaks.
	Protocol Protocol

	// CivAddress is the amplifier's configured CI-V address (default
	// 0x94). The engine does not read it: CI-V frames toward the
	// amplifier are addressed with TranslationConfig.CivToAddress, and
	// amplifier input is not filtered by address.
	CivAddress byte

	// ImpersonatedID is the ID string returned for GetId queries
	// (§4.5). Default "022" (Kenwood TS-990S).
	ImpersonatedID string
}

// DefaultAmplifierConfig returns the §4.5 default: a Kenwood TS-990S
// at CI-V address 0x94.
func DefaultAmplifierConfig() AmplifierConfig {
	return AmplifierConfig{
		Protocol:       ProtocolKenwood,
		CivAddress:     0x94,
		ImpersonatedID: "022",
	}
}

// TranslationConfig carries translator-side tunables; currently just
// the CI-V "to" address to stamp on amplifier-bound frames when the
// target protocol is CI-V (kept distinct from AmplifierConfig.CivAddress
// in case the amplifier's own receive address differs from its
// identification address).
type TranslationConfig struct {
	CivToAddress byte
}

// MultiplexerConfig is supplied as a plain value at Mux construction
// (§3, §6). There is no persisted file format in the core; cmd/catmuxd
// loads this from YAML.
type MultiplexerConfig struct {
	SwitchingMode SwitchingMode
	LockoutMs     uint64
	Amplifier     AmplifierConfig
	Translation   TranslationConfig
}

// DefaultMultiplexerConfig returns the §3 defaults: Manual switching,
// 500ms lockout, default amplifier identity.
func DefaultMultiplexerConfig() MultiplexerConfig {
	return MultiplexerConfig{
		SwitchingMode: SwitchingManual,
		LockoutMs:     500,
		Amplifier:     DefaultAmplifierConfig(),
		Translation:   TranslationConfig{CivToAddress: 0x94},
	}
}
