// Package config loads the engine's own settings: the compile cache's
// location and enablement, and the debug RPC server's listen address.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the config file exprc/exprd load from the current
// directory.
const DefaultFileName = "exprlang.yaml"

// Config is the root of exprlang.yaml.
type Config struct {
	// Cache configures the on-disk compile cache. A zero value disables
	// caching.
	Cache CacheConfig `yaml:"cache"`
	// RPC configures the debug gRPC server started by cmd/exprd.
	RPC RPCConfig `yaml:"rpc"`
}

type CacheConfig struct {
	Path    string `yaml:"path"`
	Enabled bool   `yaml:"enabled"`
}

type RPCConfig struct {
	Addr string `yaml:"addr"`
}

// Default returns the configuration used when no config file is found.
func Default() Config {
	return Config{
		Cache: CacheConfig{Path: "exprlang-cache.sqlite", Enabled: false},
		RPC:   RPCConfig{Addr: "localhost:7443"},
	}
}

// Load reads and parses path, returning Default() unmodified if path
// does not exist.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
