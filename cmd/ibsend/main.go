package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/vjebelev/ibgo/internal/logging"
	"github.com/vjebelev/ibgo/internal/messages/outgoing"
	"github.com/vjebelev/ibgo/internal/transport"
)

func main() {
	configPath := flag.String("config", "", "path to config.toml")
	kind := flag.String("kind", outgoing.RequestCurrentTime, "message kind to send")
	subjectID := flag.Int64("id", 0, "subject identifier for kinds that take one")
	flag.Parse()

	logging.ConfigureRuntime()

	if err := run(*configPath, *kind, *subjectID); err != nil {
		fmt.Fprintf(os.Stderr, "ibsend: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, kind string, subjectID int64) error {
	cfg := defaultSendConfig()
	if configPath != "" {
		loaded, err := loadSendConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	gc, err := transport.Dial(cfg.GatewayAddr, cfg.ClientID, cfg.Transport, log.Logger)
	if err != nil {
		return err
	}
	defer gc.Close()

	payload := outgoing.Payload{}
	if subjectID != 0 {
		payload["id"] = subjectID
	}
	if err := outgoing.Send(kind, payload, gc); err != nil {
		return err
	}
	log.Info().Str("kind", kind).Msg("message sent")
	return nil
}
