// Package peerio adapts catmux.Mux to real byte-stream peers: TCP
// sockets and serial ports. The core catmux package never touches a
// socket or a file descriptor directly (its Mux only consumes and
// produces byte slices); this package is the one place that does,
// following the teacher's separation between protocol/engine logic
// and the concrete I/O backends wired up in its cmd/ binaries.
package peerio

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// readTimeout bounds a single Read call so a peer that goes silent
// without closing its connection doesn't block the read loop forever;
// the loop just retries after each timeout until ctx is cancelled.
const readTimeout = 100 * time.Millisecond

// Peer is a bidirectional byte stream to one radio or amplifier.
// tcpPeer and serialPeer both satisfy it.
type Peer interface {
	io.ReadWriteCloser
	// SetReadDeadline mirrors net.Conn; serial ports that can't honor
	// a deadline implement it as a no-op.
	SetReadDeadline(t time.Time) error
}

// Feeder is the subset of catmux.Mux a read loop needs: somewhere to
// hand the raw bytes it has read. Queued output is pulled separately
// by RunWriteLoop.
type Feeder interface {
	Feed(data []byte)
}

// RunReadLoop copies bytes from p to feed until ctx is cancelled or p
// is closed, logging and retrying on transient read errors. It is run
// in its own goroutine per peer by cmd/catmuxd.
func RunReadLoop(ctx context.Context, name string, p Peer, feed Feeder) {
	buf := make([]byte, 4096)
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		p.SetReadDeadline(time.Now().Add(readTimeout))
		n, err := p.Read(buf)
		if n > 0 {
			data := make([]byte, n)
			copy(data, buf[:n])
			feed.Feed(data)
		}
		if err != nil {
			if isTimeout(err) {
				continue
			}
			if err == io.EOF {
				log.Info("peer closed", "peer", name)
				return
			}
			log.Warn("peer read error", "peer", name, "err", err)
			return
		}
	}
}

// RunWriteLoop drains next() (typically Mux.DrainRadioOutbox or
// DrainAmpOutbox) on a fixed cadence and writes whatever it returns to
// p. A poll loop rather than a push channel matches the outbox model in
// the core package: the mux queues outbound frames in slices that have
// no size limit and never blocks waiting on a slow peer, so the peer
// side is responsible for catching up.
func RunWriteLoop(ctx context.Context, name string, p Peer, interval time.Duration, next func() [][]byte) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			for _, frame := range next() {
				if _, err := p.Write(frame); err != nil {
					log.Warn("peer write error", "peer", name, "err", err)
					return
				}
			}
		}
	}
}

func isTimeout(err error) bool {
	type timeoutErr interface{ Timeout() bool }
	te, ok := err.(timeoutErr)
	return ok && te.Timeout()
}
