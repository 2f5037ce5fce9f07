package http

import (
	"github.com/MKhiriev/go-quiz-timer/internal/authority"
	"github.com/MKhiriev/go-quiz-timer/internal/logger"
)

type Handler struct {
	authority      authority.Authority
	allowedOrigins []string

	logger *logger.Logger
}

func NewHandler(authority authority.Authority, allowedOrigins []string, logger *logger.Logger) *Handler {
	logger.Info().Strs("allowed_origins", allowedOrigins).Msg("http handler created")
	return &Handler{
		authority:      authority,
		allowedOrigins: allowedOrigins,
		logger:         logger,
	}
}
