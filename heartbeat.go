package catmux

import "time"

// heartbeatInterval is the §4.6 cadence: once per second toward each
// Kenwood-family/Yaesu-ASCII radio (auto-info recovery after reboot)
// and Icom radios (transceive-enable equivalent). Yaesu binary has no
// heartbeat.
const heartbeatInterval = time.Second

// heartbeatFrame returns the bytes to send to a radio of protocol p
// as its periodic heartbeat, or nil if p has none (§4.6).
func heartbeatFrame(p Protocol) []byte {
	if !p.heartbeatEligible() {
		return nil
	}
	if p == ProtocolIcomCIV {
		// Transceive enable, equivalent to Kenwood-family AI2; (§4.6).
		// Addressed to the broadcast/default controller address; a
		// real radio peer answers on whatever "from" it already used.
		enc := civEncoder{to: 0x00}
		return enc.frame(0x1A, []byte{0x05, 0x01})
	}
	return []byte("AI2;")
}
