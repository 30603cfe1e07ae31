package catmux

import "time"

// RadioHandle is an opaque identifier assigned monotonically by the
// engine on registration. It is stable for the radio's lifetime and
// never reused within a process (§3). Zero is never issued by
// RegisterRadio and is used internally as "no handle".
type RadioHandle uint64

// RadioState is the per-radio record owned exclusively by the
// engine. Observers only ever see copies returned from Snapshot or
// embedded in MuxEvent values (§9: "the engine is sole owner").
type RadioState struct {
	// Identity, fixed at registration.
	Handle   RadioHandle
	Name     string
	Port     string
	Protocol Protocol
	Meta     map[string]string

	// Last observed state.
	FrequencyHz    uint64
	HasFrequency   bool
	Mode           OperatingMode
	HasMode        bool
	Ptt            bool
	Vfo            Vfo
	HasVfo         bool
	Split          bool

	// CivAddress is the most recently observed CI-V `from` byte for
	// this radio (§4.1); only ever set for CI-V peers.
	CivAddress byte
	HasCivAddr bool

	// Timing.
	LastActivity   time.Time
	LastFreqChange time.Time
	HasFreqChange  bool

	// Derived (§4.3 step 5). ControlBand/TxBand hold the current value
	// (inferred or reported); the Reported flags are sticky once a
	// protocol-specific direct report has been seen, which stops
	// inference from overwriting them on later commands.
	ControlBand        int // 0 = Main/A, 1 = Sub/B
	HasControlBand     bool
	ControlBandReported bool
	TxBand             int
	HasTxBand          bool
	TxBandReported     bool
}

// clone returns a deep-enough copy safe to hand to a caller outside
// the actor goroutine (the only mutable field, Meta, is a map).
func (s RadioState) clone() RadioState {
	cp := s
	if s.Meta != nil {
		cp.Meta = make(map[string]string, len(s.Meta))
		for k, v := range s.Meta {
			cp.Meta[k] = v
		}
	}
	return cp
}
