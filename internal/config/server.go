// Package config provides configuration utilities for the application.
package config

import (
	"os"
	"time"

	"github.com/spf13/viper"
)

// ServerConfig controls the HTTP ingress.
type ServerConfig struct {
	Addr           string
	MaxUploadBytes int64
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
}

// DefaultServerConfig returns the server defaults.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Addr:           ":8080",
		MaxUploadBytes: 16 << 20,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
	}
}

// LoadServerConfig loads HTTP server configuration.
// It follows this precedence:
// 1. Viper configuration (from config file or BANKSTAT_ env vars)
// 2. Direct environment variables (BANKSTAT_SERVER_ADDR)
// 3. Default values
func LoadServerConfig() ServerConfig {
	config := DefaultServerConfig()

	// Load from Viper first
	if v := viper.GetString("server.addr"); v != "" {
		config.Addr = v
	}
	if v := viper.GetInt64("server.max_upload_bytes"); v > 0 {
		config.MaxUploadBytes = v
	}
	if v := viper.GetDuration("server.read_timeout"); v > 0 {
		config.ReadTimeout = v
	}
	if v := viper.GetDuration("server.write_timeout"); v > 0 {
		config.WriteTimeout = v
	}

	// Override with direct environment variables if not set
	if config.Addr == DefaultServerConfig().Addr {
		if v := os.Getenv("BANKSTAT_SERVER_ADDR"); v != "" {
			config.Addr = v
		}
	}

	return config
}
