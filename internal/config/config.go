// Package config loads the bridge configuration from a YAML file and
// applies defaults.
package config

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Config is the full bridge configuration.
type Config struct {
	LogLevel string  `mapstructure:"log_level"`
	Server   Server  `mapstructure:"server"`
	Gate     Gate    `mapstructure:"gate"`
	Journal  Journal `mapstructure:"journal"`
}

// Server holds the transport settings.
type Server struct {
	// Transport is one of "stdio", "sse" or "http".
	Transport string `mapstructure:"transport"`
	Port      int    `mapstructure:"port"`
}

// Gate holds the compilation gate timing.
type Gate struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
	PollMillis     int `mapstructure:"poll_millis"`
}

// Journal selects and sizes the command journal backend.
type Journal struct {
	// Backend is "memory" or "redis".
	Backend   string `mapstructure:"backend"`
	RedisAddr string `mapstructure:"redis_addr"`
	Capacity  int    `mapstructure:"capacity"`
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{
		LogLevel: "info",
		Server:   Server{Transport: "stdio", Port: 8090},
		Gate:     Gate{TimeoutSeconds: 30, PollMillis: 100},
		Journal:  Journal{Backend: "memory", RedisAddr: "localhost:6379", Capacity: 256},
	}
}

// Load reads a YAML config file over the defaults. An empty path
// returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	var tree map[string]any
	if err := yaml.Unmarshal(raw, &tree); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return cfg, err
	}
	if err := decoder.Decode(tree); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}
