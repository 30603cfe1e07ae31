package catmux

import "strconv"

// kenwoodDecoder implements the Kenwood/Elecraft/FlexRadio ASCII
// dialect (§4.1). Frames are terminated by ';'; FlexRadio additionally
// recognizes 'ZZ'-prefixed four-letter tokens with extended widths.
// The three protocols share this single decoder with dialect flags
// because Elecraft and FlexRadio are Kenwood-syntax supersets.
type kenwoodDecoder struct {
	proto Protocol
	buf   growableBuffer
}

func newKenwoodDecoder(p Protocol) *kenwoodDecoder {
	return &kenwoodDecoder{proto: p}
}

func (d *kenwoodDecoder) Push(data []byte) []RadioCommand {
	d.buf.append(data)
	var out []RadioCommand
	for {
		idx := indexByte(d.buf.buf, ';')
		if idx < 0 {
			break
		}
		frame := d.buf.buf[:idx+1]
		if cmd, ok := decodeKenwoodFrame(frame); ok {
			out = append(out, cmd)
		}
		d.buf.discard(idx + 1)
	}
	return out
}

func indexByte(b []byte, c byte) int {
	for i, v := range b {
		if v == c {
			return i
		}
	}
	return -1
}

// decodeKenwoodFrame parses one complete ';'-terminated frame
// (terminator included). Returns ok=false for an empty frame and for
// the absorbed AI auto-info frames; every other frame yields at least
// CmdUnknown.
func decodeKenwoodFrame(frame []byte) (RadioCommand, bool) {
	if len(frame) < 1 {
		return RadioCommand{}, false
	}
	body := frame[:len(frame)-1] // drop ';'

	tokenLen := 2
	if len(body) >= 2 && body[0] == 'Z' && body[1] == 'Z' {
		tokenLen = 4
	}
	if len(body) < tokenLen {
		return Unknown(frame), true
	}
	token := string(body[:tokenLen])
	params := string(body[tokenLen:])

	switch token {
	case "FA":
		return kenwoodFreqToken(params, frame, VfoA, 11)
	case "FB":
		return kenwoodFreqToken(params, frame, VfoB, 11)
	case "ZZFA":
		return kenwoodFreqToken(params, frame, VfoA, 11)
	case "ZZFB":
		return kenwoodFreqToken(params, frame, VfoB, 11)
	case "MD":
		return kenwoodModeToken(params, frame, kenwoodCodeToMode)
	case "ZZMD":
		return kenwoodZZModeToken(params, frame)
	case "TX":
		return kenwoodTxToken(params, frame)
	case "RX":
		if params == "" {
			return SetPtt(false), true
		}
		return Unknown(frame), true
	case "AI":
		return RadioCommand{}, false // absorbed, no command (§4.1)
	case "ID":
		if params == "" {
			return GetID(), true
		}
		return IDReport(params), true
	case "IF":
		return kenwoodIfToken(params, frame)
	default:
		return Unknown(frame), true
	}
}

// kenwoodIfToken parses the comprehensive "IF" status frame (§4.1:
// "parse freq at bytes 2..13, mode, TX flag, VFO"). Kenwood's real IF
// reply carries several more fields (RIT/XIT, split, tone, scan) that
// this multiplexer has no use for and does not interpret; only the
// four fields the engine needs for StatusReport are extracted, at
// fixed offsets within the field layout below:
//
//	[0:11]  frequency, 11 digits
//	[11:20] unused (step/RIT/XIT/memory bank)
//	[20]    TX flag: '0' = RX, '1' = TX
//	[21]    mode digit, Kenwood mode code table (§4.7)
//	[22]    VFO: '0' = A, '1' = B
//	[23:]   unused (scan/split/tone)
func kenwoodIfToken(params string, frame []byte) (RadioCommand, bool) {
	const minLen = 23
	if len(params) < minLen || !allDigits(params[:11]) {
		return Unknown(frame), true
	}
	hz, err := strconv.ParseUint(params[:11], 10, 64)
	if err != nil {
		return Unknown(frame), true
	}
	status := StatusFields{
		Hz:   hz,
		Ptt:  params[20] == '1',
		Mode: kenwoodCodeToMode(params[21]),
	}
	if params[22] == '1' {
		status.Vfo = VfoB
	}
	return StatusReport(status), true
}

// kenwoodFreqToken handles FA/FB/ZZFA/ZZFB: digits present means a
// Set, no digits means a query (§4.1 "Query variants").
func kenwoodFreqToken(params string, frame []byte, vfo Vfo, width int) (RadioCommand, bool) {
	if params == "" {
		return GetFrequency(), true
	}
	if len(params) != width || !allDigits(params) {
		return Unknown(frame), true
	}
	hz, err := strconv.ParseUint(params, 10, 64)
	if err != nil {
		return Unknown(frame), true
	}
	cmd := SetFrequency(hz)
	cmd.Vfo = vfo
	return cmd, true
}

func kenwoodModeToken(params string, frame []byte, lookup func(byte) OperatingMode) (RadioCommand, bool) {
	if params == "" {
		return GetMode(), true
	}
	if len(params) != 1 {
		return Unknown(frame), true
	}
	return SetMode(lookup(params[0])), true
}

// kenwoodZZModeToken decodes FlexRadio's 2-digit ZZMD form.
func kenwoodZZModeToken(params string, frame []byte) (RadioCommand, bool) {
	if params == "" {
		return GetMode(), true
	}
	if len(params) != 2 || !allDigits(params) {
		return Unknown(frame), true
	}
	n, _ := strconv.ParseUint(params, 10, 8)
	return SetMode(kenwoodCodeToMode('0' + byte(n))), true
}

func kenwoodTxToken(params string, frame []byte) (RadioCommand, bool) {
	switch params {
	case "", "1", "2":
		return SetPtt(true), true
	case "0":
		return SetPtt(false), true
	default:
		return Unknown(frame), true
	}
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

// kenwoodEncoder is the bit-exact inverse for the Kenwood family
// (§4.1 "Encoder contract"). FlexRadio uses the same widths as
// Kenwood/Elecraft in this subset; the dialect flag is retained for
// future divergence.
type kenwoodEncoder struct {
	proto Protocol
}

func (e kenwoodEncoder) Encode(cmd RadioCommand) []byte {
	switch cmd.Kind {
	case CmdSetFrequency, CmdFrequencyReport:
		token := "FA"
		if cmd.Vfo == VfoB {
			token = "FB"
		}
		return []byte(token + padDigits(cmd.Hz, 11) + ";")
	case CmdGetFrequency:
		token := "FA"
		if cmd.Vfo == VfoB {
			token = "FB"
		}
		return []byte(token + ";")
	case CmdSetMode, CmdModeReport:
		code, ok := kenwoodModeToCode(cmd.Mode)
		if !ok {
			return nil
		}
		return []byte{'M', 'D', code, ';'}
	case CmdGetMode:
		return []byte("MD;")
	case CmdSetPtt, CmdPttReport:
		if cmd.Active {
			return []byte("TX;")
		}
		return []byte("RX;")
	case CmdGetID:
		return []byte("ID;")
	case CmdIDReport:
		return []byte("ID" + cmd.ID + ";")
	case CmdUnknown:
		return cmd.Unknown
	default:
		return nil
	}
}

func padDigits(v uint64, width int) string {
	s := strconv.FormatUint(v, 10)
	for len(s) < width {
		s = "0" + s
	}
	return s
}
