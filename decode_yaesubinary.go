package catmux

// yaesuBinaryDecoder implements the legacy Yaesu binary CAT protocol
// (§4.1): fixed 5-byte frames, no terminator, no resynchronization
// mid-frame. On any parse failure exactly five bytes are discarded.
type yaesuBinaryDecoder struct {
	buf growableBuffer
}

func newYaesuBinaryDecoder() *yaesuBinaryDecoder { return &yaesuBinaryDecoder{} }

const yaesuBinFrameLen = 5

func (d *yaesuBinaryDecoder) Push(data []byte) []RadioCommand {
	d.buf.append(data)
	var out []RadioCommand
	for len(d.buf.buf) >= yaesuBinFrameLen {
		frame := append([]byte(nil), d.buf.buf[:yaesuBinFrameLen]...)
		d.buf.discard(yaesuBinFrameLen)
		if cmd, ok := decodeYaesuBinFrame(frame); ok {
			out = append(out, cmd)
		}
	}
	return out
}

// decodeYaesuBinFrame interprets [p1 p2 p3 p4 op] per §4.1. Opcode 03
// (read-freq) is ambiguous between request and response at the
// decoder level; per §9's resolution, zero parameter bytes mean a
// request (GetFrequency) and non-zero bytes mean a response carrying
// the frequency (FrequencyReport).
func decodeYaesuBinFrame(frame []byte) (RadioCommand, bool) {
	if len(frame) != yaesuBinFrameLen {
		return RadioCommand{}, false
	}
	p := frame[:4]
	op := frame[4]

	switch op {
	case 0x01:
		hz, ok := bcdDecodeBE(p)
		if !ok {
			return Unknown(frame), true
		}
		return SetFrequency(hz), true
	case 0x03:
		if p[0] == 0 && p[1] == 0 && p[2] == 0 && p[3] == 0 {
			return GetFrequency(), true
		}
		hz, ok := bcdDecodeBE(p)
		if !ok {
			return Unknown(frame), true
		}
		return FrequencyReport(hz), true
	case 0x07:
		return SetMode(yaesuBinCodeToMode(p[0])), true
	case 0x08:
		switch p[0] {
		case 0x00:
			return SetPtt(false), true
		case 0x01:
			return SetPtt(true), true
		default:
			return Unknown(frame), true
		}
	default:
		return Unknown(frame), true
	}
}

// yaesuBinaryEncoder is the bit-exact inverse for the subset of
// RadioCommand Yaesu binary can represent.
type yaesuBinaryEncoder struct{}

func (yaesuBinaryEncoder) Encode(cmd RadioCommand) []byte {
	switch cmd.Kind {
	case CmdSetFrequency:
		return yaesuBinFreqFrame(cmd.Hz, 0x01)
	case CmdFrequencyReport:
		return yaesuBinFreqFrame(cmd.Hz, 0x03)
	case CmdGetFrequency:
		return []byte{0x00, 0x00, 0x00, 0x00, 0x03}
	case CmdSetMode, CmdModeReport:
		code, ok := yaesuBinModeToCode(cmd.Mode)
		if !ok {
			return nil
		}
		return []byte{code, 0x00, 0x00, 0x00, 0x07}
	case CmdSetPtt, CmdPttReport:
		v := byte(0x00)
		if cmd.Active {
			v = 0x01
		}
		return []byte{v, 0x00, 0x00, 0x00, 0x08}
	case CmdUnknown:
		return cmd.Unknown
	default:
		return nil
	}
}

func yaesuBinFreqFrame(hz uint64, op byte) []byte {
	bcd := bcdEncodeBE(hz, 4)
	return append(bcd, op)
}
