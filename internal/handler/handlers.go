package handler

import (
	"github.com/MKhiriev/go-toml-selector/internal/config"
	"github.com/MKhiriev/go-toml-selector/internal/events"
	"github.com/MKhiriev/go-toml-selector/internal/handler/http"
	"github.com/MKhiriev/go-toml-selector/internal/logger"
	"github.com/MKhiriev/go-toml-selector/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the transport handlers enabled by cfg. updates feeds
// the websocket push channel and may be nil.
func NewHandlers(services *service.Services, updates events.Subscriber, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, updates, cfg.App.HashKey, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHTTPAddress
	}

	return handlers, nil
}
