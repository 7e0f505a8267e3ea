package http

import (
	"github.com/MKhiriev/go-landing-builder/internal/config"
	"github.com/MKhiriev/go-landing-builder/internal/logger"
	"github.com/MKhiriev/go-landing-builder/internal/service"
	"github.com/MKhiriev/go-landing-builder/internal/utils"
)

type Handler struct {
	services *service.Services

	hasher      *utils.Hasher
	authLimiter *ipRateLimiter

	logger *logger.Logger
}

// NewHandler returns the HTTP handler. Document bodies are checked against
// the HashSHA256 header when cfg.App.HashKey is set.
func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:    services,
		hasher:      utils.NewHasher(cfg.App.HashKey),
		authLimiter: newIPRateLimiter(cfg.Server.AuthRateLimit, cfg.Server.AuthRateBurst),
		logger:      logger,
	}
}
