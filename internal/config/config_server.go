package config

import (
	"fmt"
	"time"
)

// ServerConfig is the reference authority configuration assembled from
// [StructuredConfig].
type ServerConfig struct {
	HTTPAddress    string
	RequestTimeout time.Duration
	QuizFile       string
	AllowedOrigins []string
}

// GetServerConfig builds and validates the authority config view.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newServerConfig(cfg)
}

func newServerConfig(cfg *StructuredConfig) (*ServerConfig, error) {
	serverCfg := &ServerConfig{
		HTTPAddress:    cfg.Server.HTTPAddress,
		RequestTimeout: cfg.Server.RequestTimeout,
		QuizFile:       cfg.Server.QuizFile,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	}

	return serverCfg, serverCfg.validate()
}
