package catmux

import (
	"strings"
	"time"
)

// Engine holds all multiplexer state (§3 "Engine state") and
// implements the processing pipeline of §4.3. It has no goroutines
// and no locks of its own; Mux is the actor shell that gives it
// exclusive-access semantics. Tests in this package talk to Engine
// directly since that is simpler than driving the actor for
// synchronous assertions; production code always goes through Mux.
type Engine struct {
	cfg MultiplexerConfig

	radios        map[RadioHandle]RadioState
	radioDecoders map[RadioHandle]Decoder
	radioOutbox   map[RadioHandle][][]byte
	heartbeats    map[RadioHandle]time.Time

	ampDecoder Decoder
	ampOutbox  [][]byte

	activeRadio  RadioHandle
	lockoutUntil time.Time
	hasLockout   bool

	nextHandle uint64

	events *eventQueue

	// now is the engine's clock, overridable in tests for
	// deterministic lockout-window assertions (scenario d, §8).
	now func() time.Time
}

// NewEngine constructs an Engine with the given configuration.
func NewEngine(cfg MultiplexerConfig) *Engine {
	return &Engine{
		cfg:           cfg,
		radios:        make(map[RadioHandle]RadioState),
		radioDecoders: make(map[RadioHandle]Decoder),
		radioOutbox:   make(map[RadioHandle][][]byte),
		heartbeats:    make(map[RadioHandle]time.Time),
		ampDecoder:    NewDecoder(cfg.Amplifier.Protocol),
		events:        newEventQueue(),
		now:           time.Now,
	}
}

// RegisterRadio inserts a new radio and emits RadioConnected (§4.3).
// The first registered radio is not automatically made active (§9
// Open Question, resolved here as "no").
func (e *Engine) RegisterRadio(name, port string, proto Protocol) RadioHandle {
	return e.RegisterRadioMeta(name, port, proto, nil)
}

// RegisterRadioMeta is RegisterRadio with free-form peer metadata
// attached to the RadioConnected event (SPEC_FULL §3).
func (e *Engine) RegisterRadioMeta(name, port string, proto Protocol, meta map[string]string) RadioHandle {
	e.nextHandle++
	h := RadioHandle(e.nextHandle)
	e.radios[h] = RadioState{
		Handle:       h,
		Name:         name,
		Port:         port,
		Protocol:     proto,
		Meta:         meta,
		LastActivity: e.now(),
	}
	e.radioDecoders[h] = NewDecoder(proto)
	e.events.push(MuxEvent{Kind: EventRadioConnected, Handle: h, Meta: meta})
	return h
}

// UnregisterRadio removes a radio. If it was active, active_radio
// becomes None and ActiveRadioChanged{from: Some(h), to: None} is
// emitted; another radio is never auto-promoted (§4.3 invariants).
func (e *Engine) UnregisterRadio(h RadioHandle) {
	if _, ok := e.radios[h]; !ok {
		return
	}
	wasActive := h == e.activeRadio
	delete(e.radios, h)
	delete(e.radioDecoders, h)
	delete(e.radioOutbox, h)
	delete(e.heartbeats, h)
	e.events.push(MuxEvent{Kind: EventRadioDisconnected, Handle: h})
	if wasActive {
		e.activeRadio = 0
		e.events.push(MuxEvent{Kind: EventActiveRadioChanged, From: h, HasFrom: true})
	}
}

// SelectRadio performs an immediate manual switch, bypassing lockout
// (§4.3 "Manual select via select_radio ignores lockout"). It still
// arms lockout_until for subsequent automatic switches.
func (e *Engine) SelectRadio(h RadioHandle) {
	if _, ok := e.radios[h]; !ok {
		return
	}
	if h == e.activeRadio {
		return
	}
	e.switchActive(h)
}

// SetSwitchingMode changes the election policy and emits
// SwitchingModeChanged.
func (e *Engine) SetSwitchingMode(mode SwitchingMode) {
	e.cfg.SwitchingMode = mode
	e.events.push(MuxEvent{Kind: EventSwitchingModeChanged, SwitchMode: mode})
}

// switchActive performs the mechanics of an active-radio change:
// emit ActiveRadioChanged before to, arm lockout_until (§4.3
// invariants: "ActiveRadioChanged is emitted before any AmpDataOut
// caused by commands on the new active radio" — callers must invoke
// this before running step 4 of the pipeline for the new radio).
func (e *Engine) switchActive(h RadioHandle) {
	old := e.activeRadio
	e.activeRadio = h
	e.lockoutUntil = e.now().Add(time.Duration(e.cfg.LockoutMs) * time.Millisecond)
	e.hasLockout = true
	ev := MuxEvent{Kind: EventActiveRadioChanged, To: h, HasTo: true}
	if old != 0 {
		ev.From = old
		ev.HasFrom = true
	}
	e.events.push(ev)
	logger.Info("active radio changed", "from", old, "to", h, "mode", e.cfg.SwitchingMode)
}

// ProcessRadioCommand runs the full pipeline of §4.3 for a command
// observed on radio h.
func (e *Engine) ProcessRadioCommand(h RadioHandle, cmd RadioCommand) {
	before, ok := e.radios[h]
	if !ok {
		return // step 1: ignore unknown handle, no emit
	}

	st := before
	e.applyEvidence(&st, cmd)
	st.LastActivity = e.now()

	if h != e.activeRadio {
		e.maybeElect(h, cmd, before)
	}

	if h == e.activeRadio {
		e.emitToAmplifier(cmd)
	}

	e.updateDerivedBands(&st)
	e.radios[h] = st
	e.emitStateChanged(h, before, st)
}

// applyEvidence implements §4.3 step 2: every RadioCommand is state
// evidence regardless of whether the radio is active (§9 Open
// Question: PttReport telemetry is always recorded).
func (e *Engine) applyEvidence(st *RadioState, cmd RadioCommand) {
	if cmd.HasCivAddress {
		st.CivAddress = cmd.CivAddress
		st.HasCivAddr = true
	}
	switch cmd.Kind {
	case CmdSetFrequency, CmdFrequencyReport:
		st.FrequencyHz = cmd.Hz
		st.HasFrequency = true
		st.LastFreqChange = e.now()
		st.HasFreqChange = true
	case CmdSetMode, CmdModeReport:
		st.Mode = cmd.Mode
		st.HasMode = true
	case CmdSetPtt, CmdPttReport:
		st.Ptt = cmd.Active
	case CmdSetVfo, CmdVfoReport:
		st.Vfo = cmd.Vfo
		st.HasVfo = true
	case CmdStatusReport:
		st.FrequencyHz = cmd.Status.Hz
		st.HasFrequency = true
		st.Mode = cmd.Status.Mode
		st.HasMode = true
		st.Ptt = cmd.Status.Ptt
		st.Vfo = cmd.Status.Vfo
		st.HasVfo = true
	case CmdUnknown:
		applyBandEvidence(st, cmd.Unknown)
	}
}

// applyBandEvidence recognizes the protocol-specific byte patterns
// that directly report split state or control/transmit band, rather
// than requiring inference from VFO+split (§4.1 clarification in
// SPEC_FULL §4). Kenwood-family (and Yaesu ASCII, which shares the
// framing): "SPn;" split, "FRn;" control band, "FTn;" transmit band.
// CI-V: cmd 0x0F is split on/off.
func applyBandEvidence(st *RadioState, data []byte) {
	if st.Protocol.isKenwoodFamily() || st.Protocol == ProtocolYaesuAscii {
		s := string(data)
		switch {
		case strings.HasPrefix(s, "SP") && strings.HasSuffix(s, ";") && len(s) == 4:
			st.Split = s[2] == '1'
		case strings.HasPrefix(s, "FR") && strings.HasSuffix(s, ";") && len(s) == 4:
			st.ControlBand = digitToBand(s[2])
			st.HasControlBand = true
			st.ControlBandReported = true
		case strings.HasPrefix(s, "FT") && strings.HasSuffix(s, ";") && len(s) == 4:
			st.TxBand = digitToBand(s[2])
			st.HasTxBand = true
			st.TxBandReported = true
		}
		return
	}
	if st.Protocol == ProtocolIcomCIV {
		if len(data) < 6 || data[0] != civPreamble || data[1] != civPreamble || data[4] != 0x0F {
			return
		}
		rest := data[5 : len(data)-1]
		if len(rest) >= 1 {
			st.Split = rest[0] != 0x00
		}
	}
}

func digitToBand(d byte) int {
	if d == '1' {
		return 1
	}
	return 0
}

// maybeElect implements §4.3 step 3: decide whether to switch the
// active radio to h, subject to the configured SwitchingMode and the
// lockout window.
func (e *Engine) maybeElect(h RadioHandle, cmd RadioCommand, before RadioState) {
	if !e.shouldSwitch(cmd, before) {
		return
	}
	if e.hasLockout {
		now := e.now()
		if now.Before(e.lockoutUntil) {
			remaining := e.lockoutUntil.Sub(now)
			ms := remaining.Milliseconds()
			if remaining%time.Millisecond != 0 {
				ms++ // ceiling: invariant 5 requires remaining_ms > 0
			}
			e.events.push(MuxEvent{
				Kind:        EventSwitchingBlocked,
				Requested:   h,
				Current:     e.activeRadio,
				RemainingMs: ms,
			})
			logger.Debug("switch blocked by lockout", "requested", h, "current", e.activeRadio, "remaining_ms", ms)
			return
		}
		e.hasLockout = false // lockout_until cleared on expiry check (§3)
	}
	e.switchActive(h)
}

// shouldSwitch implements the §4.3 election table.
func (e *Engine) shouldSwitch(cmd RadioCommand, before RadioState) bool {
	switch e.cfg.SwitchingMode {
	case SwitchingManual:
		return false
	case SwitchingFrequencyTriggered:
		return isFreqChange(cmd, before)
	case SwitchingAutomatic:
		if cmd.Kind == CmdSetPtt && cmd.Active {
			return true
		}
		if cmd.Kind == CmdPttReport && cmd.Active {
			return true
		}
		if isFreqChange(cmd, before) {
			return true
		}
		if isModeChange(cmd, before) {
			return true
		}
		return false
	default:
		return false
	}
}

func isFreqChange(cmd RadioCommand, before RadioState) bool {
	if cmd.Kind != CmdSetFrequency && cmd.Kind != CmdFrequencyReport {
		return false
	}
	return !before.HasFrequency || before.FrequencyHz != cmd.Hz
}

func isModeChange(cmd RadioCommand, before RadioState) bool {
	if cmd.Kind != CmdSetMode && cmd.Kind != CmdModeReport {
		return false
	}
	return !before.HasMode || before.Mode != cmd.Mode
}

// emitToAmplifier implements §4.3 step 4 / §4.4's filter: only
// commands from the currently active radio ever reach the amplifier.
func (e *Engine) emitToAmplifier(cmd RadioCommand) {
	st := e.radios[e.activeRadio]

	if cmd.Kind == CmdUnknown {
		if st.Protocol == e.cfg.Amplifier.Protocol {
			e.sendAmpBytes(cmd.Unknown)
		}
		return
	}
	if !passesAmplifierFilter(cmd.Kind) {
		return
	}

	out, err := translate(cmd, e.cfg.Amplifier.Protocol, e.cfg.Translation)
	if err != nil {
		e.events.push(MuxEvent{Kind: EventError, Source: errSourceTranslator, Message: err.Error()})
		logger.Warn("translation failed", "err", err)
		return
	}
	if len(out) == 0 {
		return
	}
	e.sendAmpBytes(out)
}

// passesAmplifierFilter implements §4.3 step 4's pass/drop table.
func passesAmplifierFilter(k CommandKind) bool {
	switch k {
	case CmdSetFrequency, CmdFrequencyReport, CmdSetMode, CmdModeReport, CmdSetPtt, CmdPttReport:
		return true
	default:
		return false
	}
}

func (e *Engine) sendAmpBytes(data []byte) {
	e.ampOutbox = append(e.ampOutbox, data)
	e.events.push(MuxEvent{Kind: EventAmpDataOut, Data: data, Protocol: e.cfg.Amplifier.Protocol})
}

// updateDerivedBands implements §4.3 step 5: accept directly-reported
// band values, else infer from VFO and split.
func (e *Engine) updateDerivedBands(st *RadioState) {
	if !st.ControlBandReported && st.HasVfo {
		cb := 0
		if st.Vfo == VfoB {
			cb = 1
		}
		st.ControlBand = cb
		st.HasControlBand = true
	}
	if !st.TxBandReported && st.HasControlBand {
		tx := st.ControlBand
		if st.Split {
			tx ^= 1
		}
		st.TxBand = tx
		st.HasTxBand = true
	}
}

// emitStateChanged implements §4.3 step 6: emit RadioStateChanged iff
// an observable field actually changed.
func (e *Engine) emitStateChanged(h RadioHandle, before, after RadioState) {
	ev := MuxEvent{Kind: EventRadioStateChanged, Handle: h}
	changed := false

	if after.HasFrequency && (!before.HasFrequency || before.FrequencyHz != after.FrequencyHz) {
		ev.HasFreq = true
		ev.FreqHz = after.FrequencyHz
		changed = true
	}
	if after.HasMode && (!before.HasMode || before.Mode != after.Mode) {
		ev.HasMode = true
		ev.Mode = after.Mode
		changed = true
	}
	if before.Ptt != after.Ptt {
		ev.HasPtt = true
		ev.Ptt = after.Ptt
		changed = true
	}

	if changed {
		e.events.push(ev)
	}
}

// ProcessAmplifierInput dispatches amplifier-originated bytes to the
// query emulator (§4.5). It never reaches the election logic.
func (e *Engine) ProcessAmplifierInput(data []byte) {
	e.events.push(MuxEvent{Kind: EventAmpDataIn, Data: data, Protocol: e.cfg.Amplifier.Protocol})
	cmds := e.ampDecoder.Push(data)
	for _, cmd := range cmds {
		resp := e.resolveAmplifierQuery(cmd)
		if resp == nil {
			continue
		}
		e.sendAmpBytes(resp)
	}
}

// FeedRadioBytes decodes inbound bytes for radio h and runs each
// resulting command through the pipeline (§2 data flow: "byte stream
// from a radio -> that radio's streaming decoder -> normalized
// RadioCommand -> engine.process").
func (e *Engine) FeedRadioBytes(h RadioHandle, data []byte) {
	st, ok := e.radios[h]
	if !ok {
		return
	}
	e.events.push(MuxEvent{Kind: EventRadioDataIn, Handle: h, Data: data, Protocol: st.Protocol})
	dec, ok := e.radioDecoders[h]
	if !ok {
		return
	}
	for _, cmd := range dec.Push(data) {
		e.ProcessRadioCommand(h, cmd)
	}
}

// Tick advances heartbeat scheduling (§4.6): at most once per second,
// per eligible radio, queue and emit its heartbeat frame.
func (e *Engine) Tick() {
	now := e.now()
	for h, st := range e.radios {
		if !st.Protocol.heartbeatEligible() {
			continue
		}
		if last, ok := e.heartbeats[h]; ok && now.Sub(last) < heartbeatInterval {
			continue
		}
		frame := heartbeatFrame(st.Protocol)
		if frame == nil {
			continue
		}
		e.heartbeats[h] = now
		e.radioOutbox[h] = append(e.radioOutbox[h], frame)
		e.events.push(MuxEvent{Kind: EventRadioDataOut, Handle: h, Data: frame, Protocol: st.Protocol})
	}
}

// DrainEvents returns and clears the pending ordered event buffer.
func (e *Engine) DrainEvents() []MuxEvent {
	return e.events.drain()
}

// DrainRadioOutbox returns and clears bytes queued for delivery to a
// specific radio peer.
func (e *Engine) DrainRadioOutbox(h RadioHandle) [][]byte {
	out := e.radioOutbox[h]
	delete(e.radioOutbox, h)
	return out
}

// DrainAmpOutbox returns and clears bytes queued for delivery to the
// amplifier peer.
func (e *Engine) DrainAmpOutbox() [][]byte {
	out := e.ampOutbox
	e.ampOutbox = nil
	return out
}

// Snapshot returns a copy of one radio's current state.
func (e *Engine) Snapshot(h RadioHandle) (RadioState, bool) {
	st, ok := e.radios[h]
	if !ok {
		return RadioState{}, false
	}
	return st.clone(), true
}
