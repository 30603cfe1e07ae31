package catmux

// RadioCommand is the normalized command vocabulary exchanged inside
// the core (§3, §4.2). Frequency is always exact integer Hz; modes
// are enum values, never strings. Exactly one Kind-appropriate field
// is meaningful for a given Kind; the zero value of the others is
// ignored.
//
// Set* is a command from a controller; *Report is an unsolicited or
// solicited state report. The engine treats both as state evidence
// (§4.3 step 2); the amplifier-facing translator normally emits Set*
// (§4.4).
type RadioCommand struct {
	Kind CommandKind

	Hz     uint64
	Mode   OperatingMode
	Active bool // PTT / SetPower payload
	Vfo    Vfo
	ID     string // IdReport payload

	// StatusReport fields (§3); zero value means "not reported".
	Status StatusFields

	// Unknown preserves the bytes of a well-framed but unrecognized
	// command (§3, §4.1).
	Unknown []byte

	// CivAddress is the CI-V frame's `from` byte, present on every
	// command the CI-V decoder produces (§4.1); the engine records it
	// as civ_address evidence on the originating RadioState (§3).
	CivAddress    byte
	HasCivAddress bool
}

// StatusFields is the payload of a StatusReport command.
type StatusFields struct {
	Hz   uint64
	Mode OperatingMode
	Ptt  bool
	Vfo  Vfo
}

// CommandKind enumerates the RadioCommand variants from §3.
type CommandKind int

const (
	CmdSetFrequency CommandKind = iota
	CmdFrequencyReport
	CmdGetFrequency
	CmdSetMode
	CmdModeReport
	CmdGetMode
	CmdSetPtt
	CmdPttReport
	CmdGetPtt
	CmdSetVfo
	CmdVfoReport
	CmdGetVfo
	CmdGetID
	CmdIDReport
	CmdGetStatus
	CmdStatusReport
	CmdSetPower
	CmdUnknown
)

func (k CommandKind) String() string {
	switch k {
	case CmdSetFrequency:
		return "SetFrequency"
	case CmdFrequencyReport:
		return "FrequencyReport"
	case CmdGetFrequency:
		return "GetFrequency"
	case CmdSetMode:
		return "SetMode"
	case CmdModeReport:
		return "ModeReport"
	case CmdGetMode:
		return "GetMode"
	case CmdSetPtt:
		return "SetPtt"
	case CmdPttReport:
		return "PttReport"
	case CmdGetPtt:
		return "GetPtt"
	case CmdSetVfo:
		return "SetVfo"
	case CmdVfoReport:
		return "VfoReport"
	case CmdGetVfo:
		return "GetVfo"
	case CmdGetID:
		return "GetId"
	case CmdIDReport:
		return "IdReport"
	case CmdGetStatus:
		return "GetStatus"
	case CmdStatusReport:
		return "StatusReport"
	case CmdSetPower:
		return "SetPower"
	case CmdUnknown:
		return "Unknown"
	default:
		return "?"
	}
}

// isReport reports whether k is a *Report variant rather than a Set*
// command or a Get* query.
func (k CommandKind) isReport() bool {
	switch k {
	case CmdFrequencyReport, CmdModeReport, CmdPttReport, CmdVfoReport, CmdIDReport, CmdStatusReport:
		return true
	default:
		return false
	}
}

// isQuery reports whether k is a Get* query.
func (k CommandKind) isQuery() bool {
	switch k {
	case CmdGetFrequency, CmdGetMode, CmdGetPtt, CmdGetVfo, CmdGetID, CmdGetStatus:
		return true
	default:
		return false
	}
}

// Convenience constructors, used by decoders and tests alike.

func SetFrequency(hz uint64) RadioCommand   { return RadioCommand{Kind: CmdSetFrequency, Hz: hz} }
func FrequencyReport(hz uint64) RadioCommand {
	return RadioCommand{Kind: CmdFrequencyReport, Hz: hz}
}
func GetFrequency() RadioCommand { return RadioCommand{Kind: CmdGetFrequency} }

func SetMode(m OperatingMode) RadioCommand    { return RadioCommand{Kind: CmdSetMode, Mode: m} }
func ModeReport(m OperatingMode) RadioCommand { return RadioCommand{Kind: CmdModeReport, Mode: m} }
func GetMode() RadioCommand                   { return RadioCommand{Kind: CmdGetMode} }

func SetPtt(active bool) RadioCommand    { return RadioCommand{Kind: CmdSetPtt, Active: active} }
func PttReport(active bool) RadioCommand { return RadioCommand{Kind: CmdPttReport, Active: active} }
func GetPtt() RadioCommand                { return RadioCommand{Kind: CmdGetPtt} }

func SetVfo(v Vfo) RadioCommand    { return RadioCommand{Kind: CmdSetVfo, Vfo: v} }
func VfoReport(v Vfo) RadioCommand { return RadioCommand{Kind: CmdVfoReport, Vfo: v} }
func GetVfo() RadioCommand          { return RadioCommand{Kind: CmdGetVfo} }

func GetID() RadioCommand              { return RadioCommand{Kind: CmdGetID} }
func IDReport(id string) RadioCommand { return RadioCommand{Kind: CmdIDReport, ID: id} }

func GetStatus() RadioCommand { return RadioCommand{Kind: CmdGetStatus} }
func StatusReport(s StatusFields) RadioCommand {
	return RadioCommand{Kind: CmdStatusReport, Status: s}
}

func SetPower(on bool) RadioCommand { return RadioCommand{Kind: CmdSetPower, Active: on} }

func Unknown(data []byte) RadioCommand {
	cp := make([]byte, len(data))
	copy(cp, data)
	return RadioCommand{Kind: CmdUnknown, Unknown: cp}
}
