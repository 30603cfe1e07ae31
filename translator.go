package catmux

// translate implements §4.4: translate a RadioCommand observed on one
// protocol into the bytes a target protocol expects. Unsolicited
// *Report commands are re-encoded as the equivalent Set* form because
// the amplifier is a controller target, not a transceiver expecting
// to receive reports from its peers. Identical source/target
// protocols get no special handling here: emitToAmplifier in engine.go
// passes Unknown frames through verbatim when the protocols match, and
// re-encodes every other command through translate.
func translate(cmd RadioCommand, target Protocol, cfg TranslationConfig) ([]byte, error) {
	enc := NewEncoder(target, cfg.CivToAddress)
	asSet := reportToSet(cmd)
	out := enc.Encode(asSet)
	if out == nil && commandRepresentable(asSet) {
		// Encode returned nothing even though the kind is generally
		// representable: a specific payload (e.g. an unmapped mode)
		// could not be expressed in the target protocol (§4.4, §7
		// "unsupported translation").
		return nil, &translateError{kind: asSet.Kind, target: target}
	}
	return out, nil
}

// reportToSet rewrites FrequencyReport/ModeReport/PttReport into
// their Set* equivalents, per §4.4. All other kinds pass through
// unchanged.
func reportToSet(cmd RadioCommand) RadioCommand {
	switch cmd.Kind {
	case CmdFrequencyReport:
		cmd.Kind = CmdSetFrequency
	case CmdModeReport:
		cmd.Kind = CmdSetMode
	case CmdPttReport:
		cmd.Kind = CmdSetPtt
	}
	return cmd
}

// commandRepresentable reports whether cmd's Kind is one the
// translator is ever expected to emit bytes for. Get*/IdReport/
// StatusReport/SetPower/Unknown are filtered out before translate is
// called (see passesAmplifierFilter in engine.go), so a nil Encode
// result for one of the remaining kinds always indicates an
// unsupported payload rather than an intentionally-dropped kind.
func commandRepresentable(cmd RadioCommand) bool {
	switch cmd.Kind {
	case CmdSetFrequency, CmdSetMode, CmdSetPtt:
		return true
	default:
		return false
	}
}

type translateError struct {
	kind   CommandKind
	target Protocol
}

func (e *translateError) Error() string {
	return "translator: cannot represent " + e.kind.String() + " in " + e.target.String()
}
