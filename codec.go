package catmux

// Decoder is the streaming contract every protocol codec implements
// (§4.1, §9 "Streaming parse"): bytes arrive in arbitrary fragments,
// and each Push call returns zero or more complete commands. Decoders
// never fail fatally; a malformed frame is discarded silently or
// surfaced as a CmdUnknown command carrying the framed bytes.
type Decoder interface {
	// Push feeds the next fragment of bytes and returns every command
	// that could be completed as a result, in order.
	Push(data []byte) []RadioCommand
}

// Encoder is the bit-exact inverse of a Decoder for the subset of
// RadioCommand its protocol can represent (§4.1 "Encoder contract").
// Unsupported commands return a nil/empty slice.
type Encoder interface {
	Encode(cmd RadioCommand) []byte
}

// NewDecoder returns a fresh streaming decoder for protocol p.
func NewDecoder(p Protocol) Decoder {
	switch p {
	case ProtocolKenwood, ProtocolElecraft, ProtocolFlexRadio:
		return newKenwoodDecoder(p)
	case ProtocolIcomCIV:
		return newCivDecoder()
	case ProtocolYaesuBinary:
		return newYaesuBinaryDecoder()
	case ProtocolYaesuAscii:
		return newYaesuAsciiDecoder()
	default:
		return newNopDecoder()
	}
}

// NewEncoder returns an encoder targeting protocol p with the given
// CI-V "to" address (ignored by non-CI-V protocols).
func NewEncoder(p Protocol, civToAddress byte) Encoder {
	switch p {
	case ProtocolKenwood, ProtocolElecraft, ProtocolFlexRadio:
		return kenwoodEncoder{proto: p}
	case ProtocolIcomCIV:
		return civEncoder{to: civToAddress}
	case ProtocolYaesuBinary:
		return yaesuBinaryEncoder{}
	case ProtocolYaesuAscii:
		return yaesuAsciiEncoder{}
	default:
		return nopEncoder{}
	}
}

type nopDecoder struct{}

func newNopDecoder() *nopDecoder { return &nopDecoder{} }

func (d *nopDecoder) Push(data []byte) []RadioCommand { return nil }

type nopEncoder struct{}

func (nopEncoder) Encode(cmd RadioCommand) []byte { return nil }

// growableBuffer is the single reused per-decoder buffer referenced
// in §9 ("None may allocate per byte; reuse one growable buffer per
// decoder.").
type growableBuffer struct {
	buf []byte
}

// bufferCeiling bounds decoder buffers (§5 "Decoder buffers are
// bounded"): once exceeded, the oldest bytes are discarded so a
// stream of noise can never grow memory without bound.
const bufferCeiling = 4096

func (g *growableBuffer) append(data []byte) {
	g.buf = append(g.buf, data...)
	if len(g.buf) > bufferCeiling {
		excess := len(g.buf) - bufferCeiling
		g.buf = g.buf[excess:]
	}
}

func (g *growableBuffer) discard(n int) {
	if n >= len(g.buf) {
		g.buf = g.buf[:0]
		return
	}
	g.buf = g.buf[n:]
}
