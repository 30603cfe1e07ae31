package catmux

// civDecoder implements Icom's CI-V binary protocol (§4.1). Frames
// are delimited by a `FE FE` preamble and a trailing `FD`; the
// decoder locks onto the preamble and resynchronizes by discarding up
// to the next plausible frame start on any malformed input.
type civDecoder struct {
	buf growableBuffer
}

func newCivDecoder() *civDecoder { return &civDecoder{} }

const (
	civPreamble = 0xFE
	civEnd      = 0xFD
)

func (d *civDecoder) Push(data []byte) []RadioCommand {
	d.buf.append(data)
	var out []RadioCommand
	for {
		b := d.buf.buf
		start := civFindPreamble(b)
		if start < 0 {
			// No preamble at all: nothing useful can ever come from
			// this buffer, but keep the trailing byte in case it is
			// the first half of a preamble split across pushes.
			if len(b) > 1 {
				d.buf.discard(len(b) - 1)
			}
			return out
		}
		if start > 0 {
			d.buf.discard(start)
			b = d.buf.buf
		}
		end := civFindEnd(b)
		if end < 0 {
			// Incomplete frame; wait for more bytes.
			return out
		}
		frame := b[:end+1]
		if cmd, ok := decodeCivFrame(frame); ok {
			cmd.CivAddress = frame[3]
			cmd.HasCivAddress = true
			out = append(out, cmd)
		}
		d.buf.discard(end + 1)
	}
}

// civFindPreamble returns the index of the first `FE FE` pair, or -1.
func civFindPreamble(b []byte) int {
	for i := 0; i+1 < len(b); i++ {
		if b[i] == civPreamble && b[i+1] == civPreamble {
			return i
		}
	}
	return -1
}

// civFindEnd returns the index of the first FD terminator at or after
// offset 2 (past the preamble), or -1 if none yet.
func civFindEnd(b []byte) int {
	for i := 2; i < len(b); i++ {
		if b[i] == civEnd {
			return i
		}
	}
	return -1
}

// decodeCivFrame parses one complete `FE FE ... FD` frame. Frames
// shorter than 6 bytes or with a mismatched preamble are rejected
// (§4.1).
func decodeCivFrame(frame []byte) (RadioCommand, bool) {
	if len(frame) < 6 || frame[0] != civPreamble || frame[1] != civPreamble {
		return RadioCommand{}, false
	}
	cmd := frame[4]
	rest := frame[5 : len(frame)-1] // drop trailing FD

	switch cmd {
	case 0x00:
		hz, ok := bcdDecodeLE(rest)
		if !ok || len(rest) != 5 {
			return Unknown(frame), true
		}
		return FrequencyReport(hz), true
	case 0x03:
		return GetFrequency(), true
	case 0x04:
		return GetMode(), true
	case 0x05:
		if len(rest) != 5 {
			return Unknown(frame), true
		}
		hz, ok := bcdDecodeLE(rest)
		if !ok {
			return Unknown(frame), true
		}
		return SetFrequency(hz), true
	case 0x06:
		if len(rest) < 1 {
			return Unknown(frame), true
		}
		return SetMode(civCodeToMode(rest[0])), true
	case 0x1A:
		if len(rest) >= 1 && rest[0] == 0x05 {
			return RadioCommand{}, false // transceive enable/disable, absorbed
		}
		return Unknown(frame), true
	case 0x1C:
		if len(rest) >= 2 && rest[0] == 0x00 {
			return SetPtt(rest[1] != 0x00), true
		}
		return Unknown(frame), true
	case 0x0F:
		// Split on/off, engine-recognized band-state evidence; kept
		// as Unknown at the protocol layer (not in the normalized
		// vocabulary) so the engine can pattern-match it (§4.3 step 5,
		// SPEC_FULL §4 clarification).
		return Unknown(frame), true
	default:
		return Unknown(frame), true
	}
}

// civEncoder is the bit-exact inverse for the subset of RadioCommand
// CI-V can represent (§4.1). `to` is the address of the peer this
// encoder is producing frames for (the amplifier's configured or
// default CI-V address, §9 Open Question: default 0x94); `from` is
// fixed at the controller address 0xE0, matching scenario (a)/(b).
type civEncoder struct {
	to byte
}

const civFromAddress = 0xE0

func (e civEncoder) Encode(cmd RadioCommand) []byte {
	switch cmd.Kind {
	case CmdSetFrequency:
		return e.frame(0x05, bcdEncodeLE(cmd.Hz, 5))
	case CmdFrequencyReport:
		return e.frame(0x00, bcdEncodeLE(cmd.Hz, 5))
	case CmdGetFrequency:
		return e.frame(0x03, nil)
	case CmdGetMode:
		return e.frame(0x04, nil)
	case CmdSetMode, CmdModeReport:
		code, ok := civModeToCode(cmd.Mode)
		if !ok {
			return nil
		}
		return e.frame(0x06, []byte{code})
	case CmdSetPtt, CmdPttReport:
		v := byte(0x00)
		if cmd.Active {
			v = 0x01
		}
		return e.frame(0x1C, []byte{0x00, v})
	case CmdUnknown:
		return cmd.Unknown
	default:
		return nil
	}
}

func (e civEncoder) frame(cmd byte, data []byte) []byte {
	out := make([]byte, 0, 6+len(data))
	out = append(out, civPreamble, civPreamble, e.to, civFromAddress, cmd)
	out = append(out, data...)
	out = append(out, civEnd)
	return out
}
