package catmux

import "strconv"

// yaesuAsciiDecoder implements Yaesu's ASCII CAT dialect (§4.1): the
// same ';'-terminated framing as Kenwood, but FA/FB carry 9 digits at
// 1Hz resolution and MD uses a 2-digit "MD<receiver><mode>" form.
type yaesuAsciiDecoder struct {
	buf growableBuffer
}

func newYaesuAsciiDecoder() *yaesuAsciiDecoder { return &yaesuAsciiDecoder{} }

func (d *yaesuAsciiDecoder) Push(data []byte) []RadioCommand {
	d.buf.append(data)
	var out []RadioCommand
	for {
		idx := indexByte(d.buf.buf, ';')
		if idx < 0 {
			break
		}
		frame := d.buf.buf[:idx+1]
		if cmd, ok := decodeYaesuAsciiFrame(frame); ok {
			out = append(out, cmd)
		}
		d.buf.discard(idx + 1)
	}
	return out
}

func decodeYaesuAsciiFrame(frame []byte) (RadioCommand, bool) {
	if len(frame) < 1 {
		return RadioCommand{}, false
	}
	body := frame[:len(frame)-1]
	if len(body) < 2 {
		return Unknown(frame), true
	}
	token := string(body[:2])
	params := string(body[2:])

	switch token {
	case "FA":
		return yaesuAsciiFreqToken(params, frame, VfoA)
	case "FB":
		return yaesuAsciiFreqToken(params, frame, VfoB)
	case "MD":
		return yaesuAsciiModeToken(params, frame)
	case "TX":
		switch params {
		case "", "1", "2":
			return SetPtt(true), true
		case "0":
			return SetPtt(false), true
		default:
			return Unknown(frame), true
		}
	case "RX":
		if params == "" {
			return SetPtt(false), true
		}
		return Unknown(frame), true
	case "AI":
		return RadioCommand{}, false
	case "ID":
		if params == "" {
			return GetID(), true
		}
		return IDReport(params), true
	default:
		return Unknown(frame), true
	}
}

func yaesuAsciiFreqToken(params string, frame []byte, vfo Vfo) (RadioCommand, bool) {
	if params == "" {
		return GetFrequency(), true
	}
	if len(params) != 9 || !allDigits(params) {
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

// yaesuAsciiModeToken decodes "MD<receiver><mode>": receiver is '0'
// or '1', mode is a hex digit per §4.7's Yaesu-ASCII column. "MD;" and
// the per-receiver query "MD<receiver>;" both decode as GetMode.
func yaesuAsciiModeToken(params string, frame []byte) (RadioCommand, bool) {
	if params == "" || params == "0" || params == "1" {
		return GetMode(), true
	}
	if len(params) != 2 || (params[0] != '0' && params[0] != '1') {
		return Unknown(frame), true
	}
	return SetMode(yaesuAsciiCodeToMode(upperHex(params[1]))), true
}

func upperHex(b byte) byte {
	if b >= 'a' && b <= 'f' {
		return b - 'a' + 'A'
	}
	return b
}

// yaesuAsciiEncoder is the bit-exact inverse for the subset of
// RadioCommand Yaesu ASCII can represent. Mode is always reported
// against receiver 0, matching a single-VFO controller view.
type yaesuAsciiEncoder struct{}

func (yaesuAsciiEncoder) Encode(cmd RadioCommand) []byte {
	switch cmd.Kind {
	case CmdSetFrequency, CmdFrequencyReport:
		token := "FA"
		if cmd.Vfo == VfoB {
			token = "FB"
		}
		return []byte(token + padDigits(cmd.Hz, 9) + ";")
	case CmdGetFrequency:
		token := "FA"
		if cmd.Vfo == VfoB {
			token = "FB"
		}
		return []byte(token + ";")
	case CmdSetMode, CmdModeReport:
		code, ok := yaesuAsciiModeToCode(cmd.Mode)
		if !ok {
			return nil
		}
		return []byte{'M', 'D', '0', code, ';'}
	case CmdGetMode:
		return []byte("MD0;")
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
