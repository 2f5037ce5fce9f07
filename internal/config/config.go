// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// Defaults applied before any other source.
const (
	DefaultAuthorityAddress = "localhost:4000"
	DefaultRequestTimeout   = 10 * time.Second
	DefaultTickInterval     = time.Second
	DefaultResyncInterval   = 10 * time.Second
	DefaultClientDSN        = "quiz-client.db"
	DefaultEnvFile          = ".env"
)

// StructuredConfig is the top-level configuration container shared by the
// client and the authority binaries. It is populated by merging defaults,
// environment variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix - prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       - direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Adapter holds the client's view of the remote session authority.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the client-local persistence settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listen address and content settings of the authority.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds the intervals of the client countdown and resync loops.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log holds log output settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file,
	// populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Adapter contains settings for talking to the session authority.
type Adapter struct {
	// HTTPAddress is the authority base address, with or without scheme.
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for client storage backends.
type Storage struct {
	// DB holds the local database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds the connection parameters for the local SQLite database.
type DB struct {
	// DSN is the SQLite database file path.
	DSN string `env:"DATABASE_URI"`
}

// Server holds settings of the reference authority.
type Server struct {
	// HTTPAddress is the listen address in host:port form.
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is used as the read/write timeout of the HTTP server.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// QuizFile is an optional YAML quiz descriptor. The built-in quiz is
	// served when empty.
	QuizFile string `env:"QUIZ_FILE"`

	// AllowedOrigins lists CORS origins allowed to call the authority.
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// Workers holds the client interval loop settings.
type Workers struct {
	// TickInterval is the period of the local countdown tick.
	TickInterval time.Duration `env:"TICK_INTERVAL"`

	// ResyncInterval is the period of the authority resync loop.
	ResyncInterval time.Duration `env:"RESYNC_INTERVAL"`
}

// Log holds log output settings.
type Log struct {
	// File is the client log file. Empty selects a file next to the binary.
	File string `env:"FILE"`
}

// GetStructuredConfig assembles the configuration from all sources for the
// current process.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv(envFilePath()).
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}

func defaults() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    DefaultAuthorityAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Storage: Storage{
			DB: DB{DSN: DefaultClientDSN},
		},
		Server: Server{
			HTTPAddress:    DefaultAuthorityAddress,
			RequestTimeout: DefaultRequestTimeout,
			AllowedOrigins: []string{"*"},
		},
		Workers: Workers{
			TickInterval:   DefaultTickInterval,
			ResyncInterval: DefaultResyncInterval,
		},
	}
}

func envFilePath() string {
	if path := os.Getenv("ENV_FILE"); path != "" {
		return path
	}
	return DefaultEnvFile
}
