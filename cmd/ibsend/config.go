package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/vjebelev/ibgo/internal/transport"
)

// ibsend config.toml key mapping to gateway session settings.
type fileConfig struct {
	GatewayAddr      string `toml:"gateway_addr"`
	ClientID         int64  `toml:"client_id"`
	ConnectTimeoutMS int64  `toml:"connect_timeout_ms"`
	WriteTimeoutMS   int64  `toml:"write_timeout_ms"`
	DialAttempts     int    `toml:"dial_attempts"`
}

type sendConfig struct {
	GatewayAddr string
	ClientID    int64
	Transport   transport.Config
}

func defaultSendConfig() sendConfig {
	return sendConfig{
		GatewayAddr: "127.0.0.1:7496",
		ClientID:    0,
		Transport:   transport.DefaultConfig(),
	}
}

// loadSendConfig reads a TOML config with default overlay.
func loadSendConfig(path string) (sendConfig, error) {
	cfg := defaultSendConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return sendConfig{}, fmt.Errorf("load ibsend config: %w", err)
	}

	if meta.IsDefined("gateway_addr") {
		cfg.GatewayAddr = strings.TrimSpace(raw.GatewayAddr)
	}
	if meta.IsDefined("client_id") {
		cfg.ClientID = raw.ClientID
	}
	if meta.IsDefined("connect_timeout_ms") {
		cfg.Transport.ConnectTimeout = time.Duration(raw.ConnectTimeoutMS) * time.Millisecond
	}
	if meta.IsDefined("write_timeout_ms") {
		cfg.Transport.WriteTimeout = time.Duration(raw.WriteTimeoutMS) * time.Millisecond
	}
	if meta.IsDefined("dial_attempts") {
		cfg.Transport.DialAttempts = raw.DialAttempts
	}

	if cfg.GatewayAddr == "" {
		return sendConfig{}, fmt.Errorf("load ibsend config: gateway_addr is required")
	}
	if cfg.Transport.DialAttempts < 1 {
		return sendConfig{}, fmt.Errorf("load ibsend config: dial_attempts must be at least 1")
	}
	return cfg, nil
}
