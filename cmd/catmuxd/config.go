package main

import (
	"os"

	"github.com/kc9xyz/catmux"
	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk YAML schema loaded at startup. It mirrors
// catmux.MultiplexerConfig but uses plain strings/ints for the fields
// that are enums in the core package, so the file stays readable.
type fileConfig struct {
	SwitchingMode string         `yaml:"switching_mode"`
	LockoutMs     uint64         `yaml:"lockout_ms"`
	Amplifier     amplifierYAML  `yaml:"amplifier"`
	CivToAddress  int            `yaml:"civ_to_address"`
	Radios        []radioYAML    `yaml:"radios"`
	HTTPAddr      string         `yaml:"http_addr"`
	DNSSDName     string         `yaml:"dnssd_name"`
	EventLogDir   string         `yaml:"event_log_dir"`
}

type amplifierYAML struct {
	Protocol       string `yaml:"protocol"`
	CivAddress     int    `yaml:"civ_address"`
	ImpersonatedID string `yaml:"impersonated_id"`
}

type radioYAML struct {
	Name     string `yaml:"name"`
	Protocol string `yaml:"protocol"`
	Kind     string `yaml:"kind"` // "tcp" or "serial"
	Addr     string `yaml:"addr"` // host:port for tcp, device path for serial
	Baud     int    `yaml:"baud"` // serial only
}

// loadConfig reads and parses path, applying catmux's own defaults
// for any field the file omits.
func loadConfig(path string) (fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fileConfig{}, err
	}
	cfg := fileConfig{
		SwitchingMode: "manual",
		LockoutMs:     500,
		Amplifier: amplifierYAML{
			Protocol:       "kenwood",
			CivAddress:     0x94,
			ImpersonatedID: "022",
		},
		CivToAddress: 0x94,
		HTTPAddr:     ":8742",
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fileConfig{}, err
	}
	return cfg, nil
}

func parseProtocol(s string) catmux.Protocol {
	switch s {
	case "elecraft":
		return catmux.ProtocolElecraft
	case "flexradio":
		return catmux.ProtocolFlexRadio
	case "icom_civ", "civ":
		return catmux.ProtocolIcomCIV
	case "yaesu_binary":
		return catmux.ProtocolYaesuBinary
	case "yaesu_ascii":
		return catmux.ProtocolYaesuAscii
	default:
		return catmux.ProtocolKenwood
	}
}

func parseSwitchingMode(s string) catmux.SwitchingMode {
	switch s {
	case "frequency_triggered":
		return catmux.SwitchingFrequencyTriggered
	case "automatic":
		return catmux.SwitchingAutomatic
	default:
		return catmux.SwitchingManual
	}
}

// toMultiplexerConfig converts the file schema into the core config
// value Mux is constructed with.
func (c fileConfig) toMultiplexerConfig() catmux.MultiplexerConfig {
	return catmux.MultiplexerConfig{
		SwitchingMode: parseSwitchingMode(c.SwitchingMode),
		LockoutMs:     c.LockoutMs,
		Amplifier: catmux.AmplifierConfig{
			Protocol:       parseProtocol(c.Amplifier.Protocol),
			CivAddress:     byte(c.Amplifier.CivAddress),
			ImpersonatedID: c.Amplifier.ImpersonatedID,
		},
		Translation: catmux.TranslationConfig{
			CivToAddress: byte(c.CivToAddress),
		},
	}
}
