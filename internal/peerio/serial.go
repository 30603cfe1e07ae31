package peerio

import (
	"time"

	serial "github.com/daedaluz/goserial"
)

// serialPeer wraps a daedaluz/goserial Port as a Peer, for radios
// that are genuinely attached over RS-232/USB-serial rather than a
// network CAT gateway.
type serialPeer struct {
	port *serial.Port
}

// OpenSerial opens name (e.g. "/dev/ttyUSB0") at baud and returns a
// Peer. The port is put into raw mode since CAT framing is entirely
// the codec's responsibility, not the tty line discipline's.
func OpenSerial(name string, baud int) (Peer, error) {
	port, err := serial.Open(name, serial.NewOptions())
	if err != nil {
		return nil, err
	}
	if err := port.MakeRaw(); err != nil {
		port.Close()
		return nil, err
	}
	attrs, err := port.GetAttr2()
	if err != nil {
		port.Close()
		return nil, err
	}
	attrs.MakeRaw()
	attrs.SetCustomSpeed(uint32(baud))
	if err := port.SetAttr2(serial.TCSANOW, attrs); err != nil {
		port.Close()
		return nil, err
	}
	return serialPeer{port: port}, nil
}

func (s serialPeer) Read(p []byte) (int, error)  { return s.port.Read(p) }
func (s serialPeer) Write(p []byte) (int, error) { return s.port.Write(p) }
func (s serialPeer) Close() error                { return s.port.Close() }

// SetReadDeadline translates the net.Conn-style absolute deadline
// into goserial's duration-based ReadTimeout, since the underlying
// termios layer has no notion of a wall-clock deadline.
func (s serialPeer) SetReadDeadline(t time.Time) error {
	d := time.Until(t)
	if d < 0 {
		d = 0
	}
	s.port.SetReadTimeout(d)
	return nil
}
