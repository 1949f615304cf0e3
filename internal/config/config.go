package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the complete process configuration
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Storage StorageConfig `mapstructure:"storage"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Host     string `mapstructure:"host"`      // Bind address (e.g., 0.0.0.0 for all interfaces)
	GRPCPort int    `mapstructure:"grpc_port"` // gRPC server port
	HTTPPort int    `mapstructure:"http_port"` // HTTP ops server port
}

// StorageConfig represents storage configuration
type StorageConfig struct {
	// Location is either a filesystem path for the database file or the
	// in-memory designator ":memory:". It is the only configuration
	// surface the storage engine depends on.
	Location string `mapstructure:"location"`
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level      string `mapstructure:"level"`       // debug, info, warn, error
	Format     string `mapstructure:"format"`      // json, console
	OutputPath string `mapstructure:"output_path"` // stdout, stderr, file path
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("server config: %w", err)
	}

	if err := c.Storage.Validate(); err != nil {
		return fmt.Errorf("storage config: %w", err)
	}

	return nil
}

// Validate validates server configuration
func (s *ServerConfig) Validate() error {
	if s.GRPCPort <= 0 || s.GRPCPort > 65535 {
		return fmt.Errorf("invalid grpc port: %d", s.GRPCPort)
	}
	if s.HTTPPort <= 0 || s.HTTPPort > 65535 {
		return fmt.Errorf("invalid http port: %d", s.HTTPPort)
	}
	if s.GRPCPort == s.HTTPPort {
		return fmt.Errorf("grpc and http ports must differ: %d", s.GRPCPort)
	}
	return nil
}

// Validate validates storage configuration
func (s *StorageConfig) Validate() error {
	if s.Location == "" {
		return fmt.Errorf("storage location is required")
	}
	return nil
}

// InMemory reports whether the configured location is the in-memory designator
func (s *StorageConfig) InMemory() bool {
	return s.Location == ":memory:"
}

// EnsureDirectories ensures the database parent directory exists
func (c *Config) EnsureDirectories() error {
	if c.Storage.InMemory() {
		return nil
	}
	return os.MkdirAll(filepath.Dir(c.Storage.Location), 0755)
}

// GRPCAddress returns the gRPC bind address
func (c *Config) GRPCAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.GRPCPort)
}

// HTTPAddress returns the HTTP ops server bind address
func (c *Config) HTTPAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.HTTPPort)
}
