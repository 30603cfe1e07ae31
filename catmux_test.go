package catmux

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMuxRegisterAndProcessCommand(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := NewMux(ctx, DefaultMultiplexerConfig())
	defer m.Close()

	h := m.RegisterRadio("r1", "tcp://x", ProtocolKenwood)
	m.SelectRadio(h)
	m.ProcessRadioCommand(h, SetFrequency(14250000))

	st, ok := m.Snapshot(h)
	assert.True(t, ok)
	assert.Equal(t, uint64(14250000), st.FrequencyHz)

	out := m.DrainAmpOutbox()
	if assert.Len(t, out, 1) {
		assert.Equal(t, []byte("FA00014250000;"), out[0])
	}
}

func TestMuxCloseStopsActor(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := NewMux(ctx, DefaultMultiplexerConfig())
	m.Close()

	done := make(chan struct{})
	go func() {
		m.Tick() // must return promptly even though the actor has stopped
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Tick did not return after Close")
	}
}
