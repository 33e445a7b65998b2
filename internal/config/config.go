// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"
)

// Config is the top-level configuration container for the openxrypt daemon.
// It aggregates all sub-configurations and is populated by merging values
// from environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type Config struct {
	// App holds application-level settings such as the reported version.
	App App `envPrefix:"APP_"`

	// Storage holds the keyring persistence settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the control-channel listen settings.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds the scan worker settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file,
	// merged on top of env and flag values when non-empty.
	// Populated via the CONFIG environment variable or the -c/-config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string reported by /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage holds keyring persistence settings.
type Storage struct {
	// KeyringPath is the path of the SQLite database file holding the
	// public_keys and private_keys namespaces. ":memory:" keeps the
	// keyring in process memory (useful for tests, not for daily use —
	// stored correspondent keys are meant to survive restarts).
	// Env: STORAGE_KEYRING_PATH
	KeyringPath string `env:"KEYRING_PATH"`
}

// Server holds the control-channel listen settings. The channel is a local
// surface for the browser extension and the popup; it must not be exposed
// beyond the loopback interface.
type Server struct {
	// Address is the TCP address the control channel listens on,
	// "host:port" form. Default "127.0.0.1:7633".
	// Env: SERVER_ADDRESS
	Address string `env:"ADDRESS"`

	// RequestTimeout bounds a single control-channel request, including
	// the crypto work it triggers (e.g. "30s").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds the scan worker settings.
type Workers struct {
	// MutationQueueSize is the buffer of pending mutation notifications.
	// Overflowing notifications are dropped — the next mutation re-delivers
	// the same page state, so a dropped scan is only deferred.
	// Env: WORKERS_MUTATION_QUEUE_SIZE
	MutationQueueSize int `env:"MUTATION_QUEUE_SIZE"`
}

// PopupConfig is the configuration of the TUI popup client.
type PopupConfig struct {
	// Popup holds the control-channel client settings.
	Popup Popup `envPrefix:"POPUP_"`

	// App holds application-level settings shared with the daemon.
	App App `envPrefix:"APP_"`
}

// Popup holds control-channel client settings.
type Popup struct {
	// BaseURL is the daemon's control-channel base URL.
	// Env: POPUP_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds a single client call (e.g. "15s").
	// Env: POPUP_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Defaults applied after merging when a field is still zero.
const (
	defaultAddress        = "127.0.0.1:7633"
	defaultRequestTimeout = 30 * time.Second
	defaultKeyringPath    = "xrypt-keyring.db"
	defaultQueueSize      = 64
	defaultPopupTimeout   = 15 * time.Second
)

// GetConfig loads, merges, and validates the daemon configuration.
func GetConfig() (*Config, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return cfg, cfg.validate()
}

// GetPopupConfig loads the popup client configuration from the environment.
// The popup has no flag or JSON sources; it is launched by a user, not an
// init system.
func GetPopupConfig() (*PopupConfig, error) {
	cfg := &PopupConfig{}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}

	if cfg.Popup.BaseURL == "" {
		cfg.Popup.BaseURL = "http://" + defaultAddress
	}
	if cfg.Popup.RequestTimeout <= 0 {
		cfg.Popup.RequestTimeout = defaultPopupTimeout
	}

	return cfg, nil
}

func (cfg *Config) applyDefaults() {
	if cfg.Server.Address == "" {
		cfg.Server.Address = defaultAddress
	}
	if cfg.Server.RequestTimeout <= 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Storage.KeyringPath == "" {
		cfg.Storage.KeyringPath = defaultKeyringPath
	}
	if cfg.Workers.MutationQueueSize <= 0 {
		cfg.Workers.MutationQueueSize = defaultQueueSize
	}
}
