package main

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	metricEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catmux_events_total",
		Help: "Count of MuxEvent values emitted, by kind.",
	}, []string{"kind"})

	metricActiveRadio = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "catmux_active_radio_handle",
		Help: "Currently active radio handle, 0 if none.",
	})

	metricSwitchingBlocked = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catmux_switching_blocked_total",
		Help: "Count of switch attempts rejected by the lockout window.",
	})
)

var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// eventHub fans out drained MuxEvent batches to every connected
// /events WebSocket client.
type eventHub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

func newEventHub() *eventHub {
	return &eventHub{clients: make(map[*websocket.Conn]struct{})}
}

func (h *eventHub) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := wsUpgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn("websocket upgrade failed", "err", err)
		return
	}
	h.mu.Lock()
	h.clients[conn] = struct{}{}
	h.mu.Unlock()

	go func() {
		defer func() {
			h.mu.Lock()
			delete(h.clients, conn)
			h.mu.Unlock()
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (h *eventHub) broadcast(payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			conn.Close()
			delete(h.clients, conn)
		}
	}
}

// newAPIMux wires /events and /metrics onto an http.ServeMux.
func newAPIMux(hub *eventHub) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/events", hub.serveWS)
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}
