// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks invariants shared by both binaries. Role-specific checks
// live on [ClientConfig] and [ServerConfig].
func (cfg *StructuredConfig) validate() error {
	durations := map[string]int64{
		"adapter request timeout": int64(cfg.Adapter.RequestTimeout),
		"server request timeout":  int64(cfg.Server.RequestTimeout),
		"tick interval":           int64(cfg.Workers.TickInterval),
		"resync interval":         int64(cfg.Workers.ResyncInterval),
	}
	for name, d := range durations {
		if d < 0 {
			return fmt.Errorf("%s: %w", name, ErrNegativeDuration)
		}
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.TickInterval <= 0 || cfg.Workers.ResyncInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.HTTPAddress == "" || cfg.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}
