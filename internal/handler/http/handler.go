package http

import (
	"github.com/MKhiriev/go-toml-selector/internal/events"
	"github.com/MKhiriev/go-toml-selector/internal/logger"
	"github.com/MKhiriev/go-toml-selector/internal/service"
	"github.com/MKhiriev/go-toml-selector/internal/utils"
	"github.com/MKhiriev/go-toml-selector/internal/validators"
)

type Handler struct {
	services *service.Services
	updates  events.Subscriber
	signer   *utils.Signer

	validator validators.Validator

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. updates feeds the /ws push channel
// and may be nil, in which case /ws answers 404. A non-empty hashKey signs
// every JSON response body.
func NewHandler(services *service.Services, updates events.Subscriber, hashKey string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		updates:   updates,
		signer:    utils.NewSigner(hashKey),
		validator: validators.NewRequestValidator(),
		logger:    logger,
	}
}
