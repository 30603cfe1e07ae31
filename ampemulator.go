package catmux

import "bytes"

// resolveAmplifierQuery implements §4.5: amplifier-originated commands
// never reach the election logic. They are answered directly from the
// cached active-radio snapshot, impersonating a single high-end
// transceiver (default: Kenwood TS-990S, ID022). A nil result means
// no response should be sent (§7: "amplifier query with no cached
// state: no response, no error").
func (e *Engine) resolveAmplifierQuery(cmd RadioCommand) []byte {
	enc := NewEncoder(e.cfg.Amplifier.Protocol, e.cfg.Translation.CivToAddress)

	switch cmd.Kind {
	case CmdGetID:
		return enc.Encode(IDReport(e.cfg.Amplifier.ImpersonatedID))
	case CmdGetFrequency:
		st, ok := e.activeState()
		if !ok || !st.HasFrequency {
			return nil
		}
		return enc.Encode(SetFrequency(st.FrequencyHz))
	case CmdGetMode:
		st, ok := e.activeState()
		if !ok || !st.HasMode {
			return nil
		}
		return enc.Encode(SetMode(st.Mode))
	case CmdGetPtt:
		st, ok := e.activeState()
		if !ok {
			return nil
		}
		return enc.Encode(SetPtt(st.Ptt))
	case CmdGetVfo:
		st, ok := e.activeState()
		if !ok || !st.HasVfo {
			return nil
		}
		return enc.Encode(SetVfo(st.Vfo))
	case CmdGetStatus:
		st, ok := e.activeState()
		if !ok {
			return nil
		}
		return enc.Encode(StatusReport(StatusFields{
			Hz:   st.FrequencyHz,
			Mode: st.Mode,
			Ptt:  st.Ptt,
			Vfo:  st.Vfo,
		}))
	case CmdUnknown:
		return e.resolveBandQuery(cmd.Unknown)
	default:
		return nil
	}
}

// resolveBandQuery answers the Kenwood-family CB;/TB; control-band /
// transmit-band queries (§4.5), which never enter the normalized
// RadioCommand vocabulary and so arrive here as CmdUnknown frames.
func (e *Engine) resolveBandQuery(raw []byte) []byte {
	if !e.cfg.Amplifier.Protocol.isKenwoodFamily() {
		return nil
	}
	st, ok := e.activeState()
	if !ok {
		return nil
	}
	switch {
	case bytes.Equal(raw, []byte("CB;")):
		if !st.HasControlBand {
			return nil
		}
		return []byte{'C', 'B', byte('0' + st.ControlBand), ';'}
	case bytes.Equal(raw, []byte("TB;")):
		if !st.HasTxBand {
			return nil
		}
		return []byte{'T', 'B', byte('0' + st.TxBand), ';'}
	default:
		return nil
	}
}

// activeState returns a snapshot of the currently active radio, or
// ok=false if there is none registered.
func (e *Engine) activeState() (RadioState, bool) {
	if e.activeRadio == 0 {
		return RadioState{}, false
	}
	st, ok := e.radios[e.activeRadio]
	if !ok {
		return RadioState{}, false
	}
	return st, true
}
