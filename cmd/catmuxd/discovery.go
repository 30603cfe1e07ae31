package main

import (
	"context"

	"github.com/brutella/dnssd"
	"github.com/charmbracelet/log"
)

// dnssdServiceType mirrors the teacher's KISS-over-TCP announcement,
// advertising the multiplexer's control API instead of a TNC.
const dnssdServiceType = "_catmux._tcp"

// announce advertises the daemon's HTTP control API over mDNS/DNS-SD
// so CAT client software on the local network can find it without a
// configured address, the same convenience the teacher's dns_sd.go
// gives KISS TNC clients.
func announce(ctx context.Context, name string, port int) {
	if name == "" {
		name = "catmuxd"
	}
	cfg := dnssd.Config{
		Name: name,
		Type: dnssdServiceType,
		Port: port,
	}
	sv, err := dnssd.NewService(cfg)
	if err != nil {
		log.Error("dnssd: failed to create service", "err", err)
		return
	}
	rp, err := dnssd.NewResponder()
	if err != nil {
		log.Error("dnssd: failed to create responder", "err", err)
		return
	}
	if _, err := rp.Add(sv); err != nil {
		log.Error("dnssd: failed to add service", "err", err)
		return
	}
	log.Info("dnssd: announcing", "name", name, "type", dnssdServiceType, "port", port)
	go func() {
		if err := rp.Respond(ctx); err != nil && ctx.Err() == nil {
			log.Error("dnssd: responder error", "err", err)
		}
	}()
}
