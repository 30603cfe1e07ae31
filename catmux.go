/*------------------------------------------------------------------
 *
 * Package catmux implements a CAT (Computer Aided Transceiver)
 * multiplexer: several amateur radio transceivers share one
 * downstream amplifier through a single logical control path. The
 * package observes every radio's state, elects one radio as active,
 * translates the active radio's state into the amplifier's wire
 * protocol, and answers amplifier queries from a cached snapshot
 * while impersonating a single high-end transceiver.
 *
 * The package owns no sockets, serial ports, or files: it consumes
 * decoded commands and raw bytes from peers (see internal/peerio
 * and cmd/catmuxd for real I/O) and emits MuxEvent values plus
 * outbound byte slices. See SPEC_FULL.md for the full design.
 *
 *------------------------------------------------------------------*/

package catmux

import "context"

// Mux is the actor shell around Engine: it serializes every mutating
// call through a single goroutine so the engine never needs locks.
// All exported Mux methods are safe to call from any goroutine.
type Mux struct {
	cmds   chan muxMessage
	engine *Engine
	done   chan struct{}
	cancel context.CancelFunc
}

// NewMux constructs a Mux with a fresh Engine and starts its actor
// goroutine. Cancel ctx (or call Close) to stop it. Close never closes
// the cmds channel itself — do() would then race a send against a
// closed channel, which panics rather than blocking — so shutdown is
// always driven by cancelling an internal context instead.
func NewMux(ctx context.Context, cfg MultiplexerConfig) *Mux {
	runCtx, cancel := context.WithCancel(ctx)
	m := &Mux{
		cmds:   make(chan muxMessage, 256),
		engine: NewEngine(cfg),
		done:   make(chan struct{}),
		cancel: cancel,
	}
	go m.run(runCtx)
	return m
}

// muxMessage is the single envelope type flowing through the actor's
// inbound queue. apply is the operation to run on the engine; reply,
// if non-nil, is closed after the op has been fully applied.
type muxMessage struct {
	apply func(e *Engine)
	reply chan struct{}
}

func (m *Mux) run(ctx context.Context) {
	defer close(m.done)
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-m.cmds:
			if !ok {
				return
			}
			msg.apply(m.engine)
			if msg.reply != nil {
				close(msg.reply)
			}
		}
	}
}

// do sends apply to the actor goroutine and blocks until it has run.
// This is the only place a caller ever touches the Engine directly,
// which keeps every mutation on the single actor goroutine.
func (m *Mux) do(apply func(e *Engine)) {
	reply := make(chan struct{})
	select {
	case m.cmds <- muxMessage{apply: apply, reply: reply}:
	case <-m.done:
		return
	}
	select {
	case <-reply:
	case <-m.done:
	}
}

// RegisterRadio registers a new radio peer and returns its handle.
func (m *Mux) RegisterRadio(name, port string, proto Protocol) RadioHandle {
	var h RadioHandle
	m.do(func(e *Engine) { h = e.RegisterRadio(name, port, proto) })
	return h
}

// RegisterRadioMeta is RegisterRadio plus free-form peer metadata
// attached to the resulting RadioConnected event.
func (m *Mux) RegisterRadioMeta(name, port string, proto Protocol, meta map[string]string) RadioHandle {
	var h RadioHandle
	m.do(func(e *Engine) { h = e.RegisterRadioMeta(name, port, proto, meta) })
	return h
}

// UnregisterRadio removes a previously registered radio.
func (m *Mux) UnregisterRadio(h RadioHandle) {
	m.do(func(e *Engine) { e.UnregisterRadio(h) })
}

// SelectRadio performs an immediate manual switch, bypassing lockout.
func (m *Mux) SelectRadio(h RadioHandle) {
	m.do(func(e *Engine) { e.SelectRadio(h) })
}

// SetSwitchingMode changes the election policy.
func (m *Mux) SetSwitchingMode(mode SwitchingMode) {
	m.do(func(e *Engine) { e.SetSwitchingMode(mode) })
}

// ProcessRadioCommand runs the full engine pipeline for a command
// observed from the given radio.
func (m *Mux) ProcessRadioCommand(h RadioHandle, cmd RadioCommand) {
	m.do(func(e *Engine) { e.ProcessRadioCommand(h, cmd) })
}

// ProcessAmplifierBytes dispatches amplifier-originated bytes to the
// query emulator; it never reaches the election logic.
func (m *Mux) ProcessAmplifierBytes(data []byte) {
	m.do(func(e *Engine) { e.ProcessAmplifierInput(data) })
}

// FeedRadioBytes decodes inbound bytes from the given radio's peer
// connection and runs every resulting command through the pipeline.
func (m *Mux) FeedRadioBytes(h RadioHandle, data []byte) {
	m.do(func(e *Engine) { e.FeedRadioBytes(h, data) })
}

// DrainEvents returns and clears the pending ordered event buffer.
func (m *Mux) DrainEvents() []MuxEvent {
	var evs []MuxEvent
	m.do(func(e *Engine) { evs = e.DrainEvents() })
	return evs
}

// DrainRadioOutbox returns and clears bytes queued for delivery to a
// specific radio peer (heartbeats, translated responses).
func (m *Mux) DrainRadioOutbox(h RadioHandle) [][]byte {
	var out [][]byte
	m.do(func(e *Engine) { out = e.DrainRadioOutbox(h) })
	return out
}

// DrainAmpOutbox returns and clears bytes queued for delivery to the
// amplifier peer.
func (m *Mux) DrainAmpOutbox() [][]byte {
	var out [][]byte
	m.do(func(e *Engine) { out = e.DrainAmpOutbox() })
	return out
}

// Tick advances heartbeat scheduling; lockout expiry is checked only
// when a command requests a switch. Callers drive this periodically,
// typically once per second alongside the heartbeat cadence in §4.6.
func (m *Mux) Tick() {
	m.do(func(e *Engine) { e.Tick() })
}

// Snapshot returns a read-only copy of one radio's last-known state,
// or ok=false if the handle is not registered.
func (m *Mux) Snapshot(h RadioHandle) (RadioState, bool) {
	var st RadioState
	var ok bool
	m.do(func(e *Engine) { st, ok = e.Snapshot(h) })
	return st, ok
}

// Close stops the actor goroutine and waits for it to exit. Safe to
// call more than once; calls to other Mux methods after Close return
// promptly without panicking.
func (m *Mux) Close() {
	m.cancel()
	<-m.done
}
