// SPDX-License-Identifier: Apache-2.0

package config

import (
	"net"
	"strings"
)

// validate checks that the final merged [Config] satisfies the daemon's
// invariants before it is used at startup.
func (cfg *Config) validate() error {
	host, _, err := net.SplitHostPort(cfg.Server.Address)
	if err != nil {
		return ErrInvalidServerConfigs
	}

	// The control channel carries key material and plaintext; refusing
	// non-loopback binds keeps mistakes from turning into an open service.
	if !isLoopbackHost(host) {
		return ErrNonLocalAddress
	}

	if strings.TrimSpace(cfg.Storage.KeyringPath) == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}

func isLoopbackHost(host string) bool {
	if host == "" || host == "localhost" {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}
