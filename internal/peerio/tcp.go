package peerio

import (
	"net"
	"time"
)

// tcpPeer wraps a net.Conn as a Peer. Radios are commonly exposed
// over TCP by software rigs and SDR-based CAT servers, alongside
// genuine serial transceivers.
type tcpPeer struct {
	net.Conn
}

// DialTCP connects to a radio or amplifier's TCP CAT endpoint.
func DialTCP(addr string, timeout time.Duration) (Peer, error) {
	conn, err := net.DialTimeout("tcp", addr, timeout)
	if err != nil {
		return nil, err
	}
	return tcpPeer{conn}, nil
}

// ListenTCP accepts a single inbound connection on addr, for peers
// that connect out to the multiplexer rather than the other way
// around (e.g. an amplifier that only dials its controller).
func ListenTCP(addr string) (Peer, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	defer ln.Close()
	conn, err := ln.Accept()
	if err != nil {
		return nil, err
	}
	return tcpPeer{conn}, nil
}
