package config

import (
	"flag"
	"time"
)

// ParseFlags parses all daemon configuration flags.
//
// Flags:
//
//	-a control-channel address in format [host]:[port]
//	-k keyring SQLite database path
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-mutation-queue-size scan worker queue capacity
func ParseFlags() *Config {
	var address string
	var keyringPath string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var queueSize int

	flag.StringVar(&address, "a", "", "Control channel address host:port")
	flag.StringVar(&keyringPath, "k", "", "Keyring SQLite database path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.IntVar(&queueSize, "mutation-queue-size", 0, "Scan worker queue capacity")

	flag.Parse()

	return &Config{
		Server: Server{
			Address:        address,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			KeyringPath: keyringPath,
		},
		Workers: Workers{
			MutationQueueSize: queueSize,
		},
		JSONFilePath: jsonConfigPath,
	}
}
