/*------------------------------------------------------------------
 *
 * Purpose:	Daemon entry point: wires the catmux engine to real
 *		radio peers and a small HTTP control API. No amplifier
 *		peer is attached; the amplifier settings only configure
 *		the engine.
 *
 *------------------------------------------------------------------*/
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/kc9xyz/catmux"
	"github.com/kc9xyz/catmux/internal/peerio"
	"github.com/spf13/pflag"
)

func main() {
	var configPath = pflag.StringP("config", "c", "catmuxd.yaml", "Path to YAML configuration file.")
	var verbose = pflag.BoolP("verbose", "v", false, "Enable debug logging.")
	var help = pflag.Bool("help", false, "Display help text.")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s - CAT multiplexer daemon\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Usage: %s [OPTIONS]\n\n", os.Args[0])
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if *help {
		pflag.Usage()
		os.Exit(0)
	}

	if *verbose {
		log.SetLevel(log.DebugLevel)
	}
	catmux.SetLogger(log.Default())

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatal("failed to load config", "path", *configPath, "err", err)
	}

	elog, err := newEventlog(cfg.EventLogDir)
	if err != nil {
		log.Fatal("failed to open event log", "err", err)
	}
	defer elog.close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mux := catmux.NewMux(ctx, cfg.toMultiplexerConfig())
	defer mux.Close()

	hub := newEventHub()

	for _, rc := range cfg.Radios {
		if err := attachRadio(ctx, mux, rc); err != nil {
			log.Error("failed to attach radio", "name", rc.Name, "err", err)
		}
	}

	httpMux := newAPIMux(hub)
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: httpMux}
	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server error", "err", err)
		}
	}()

	if port, err := portOf(cfg.HTTPAddr); err == nil {
		announce(ctx, cfg.DNSSDName, port)
	}

	go pumpEvents(ctx, mux, elog, hub)
	go tickLoop(ctx, mux)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Info("shutting down")
	cancel()
	httpSrv.Close()
}

// tickLoop drives heartbeat scheduling once per second (§4.6).
func tickLoop(ctx context.Context, mux *catmux.Mux) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			mux.Tick()
		}
	}
}

// pumpEvents drains the engine's event queue on a tight cadence and
// fans each event out to the CSV log, the metrics registry, and any
// connected WebSocket clients.
func pumpEvents(ctx context.Context, mux *catmux.Mux, elog *eventlog, hub *eventHub) {
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			for _, ev := range mux.DrainEvents() {
				metricEventsTotal.WithLabelValues(ev.Kind.String()).Inc()
				if ev.Kind == catmux.EventActiveRadioChanged {
					metricActiveRadio.Set(float64(ev.To))
				}
				if ev.Kind == catmux.EventSwitchingBlocked {
					metricSwitchingBlocked.Inc()
				}
				if err := elog.write(ev); err != nil {
					log.Warn("event log write failed", "err", err)
				}
				hub.broadcast(ev)
			}
		}
	}
}

// radioFeed adapts one radio handle's FeedRadioBytes call to the
// peerio.Feeder interface.
type radioFeed struct {
	mux    *catmux.Mux
	handle catmux.RadioHandle
}

func (f radioFeed) Feed(data []byte) { f.mux.FeedRadioBytes(f.handle, data) }

// attachRadio opens rc's configured transport, registers it with mux,
// and starts its read/write loops.
func attachRadio(ctx context.Context, mux *catmux.Mux, rc radioYAML) error {
	proto := parseProtocol(rc.Protocol)

	var peer peerio.Peer
	var err error
	switch rc.Kind {
	case "serial":
		peer, err = peerio.OpenSerial(rc.Addr, rc.Baud)
	default:
		peer, err = peerio.DialTCP(rc.Addr, 5*time.Second)
	}
	if err != nil {
		return err
	}

	handle := mux.RegisterRadioMeta(rc.Name, rc.Addr, proto, map[string]string{
		"connection_id": uuid.NewString(),
	})
	feed := radioFeed{mux: mux, handle: handle}

	go peerio.RunReadLoop(ctx, rc.Name, peer, feed)
	go peerio.RunWriteLoop(ctx, rc.Name, peer, 50*time.Millisecond, func() [][]byte {
		return mux.DrainRadioOutbox(handle)
	})
	return nil
}

// portOf extracts the numeric port from an addr like ":8742" or
// "0.0.0.0:8742" for dnssd advertisement.
func portOf(addr string) (int, error) {
	i := len(addr) - 1
	for i >= 0 && addr[i] != ':' {
		i--
	}
	if i < 0 {
		return 0, fmt.Errorf("no port in %q", addr)
	}
	var port int
	if _, err := fmt.Sscanf(addr[i+1:], "%d", &port); err != nil {
		return 0, err
	}
	return port, nil
}
