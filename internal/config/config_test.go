package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:   "in-memory storage",
			mutate: func(c *Config) { c.Storage.Location = ":memory:" },
		},
		{
			name:    "grpc port zero",
			mutate:  func(c *Config) { c.Server.GRPCPort = 0 },
			wantErr: true,
		},
		{
			name:    "grpc port out of range",
			mutate:  func(c *Config) { c.Server.GRPCPort = 70000 },
			wantErr: true,
		},
		{
			name:    "http port negative",
			mutate:  func(c *Config) { c.Server.HTTPPort = -1 },
			wantErr: true,
		},
		{
			name: "grpc and http ports collide",
			mutate: func(c *Config) {
				c.Server.GRPCPort = 9000
				c.Server.HTTPPort = 9000
			},
			wantErr: true,
		},
		{
			name:    "empty storage location",
			mutate:  func(c *Config) { c.Storage.Location = "" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Fatal("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestInMemory(t *testing.T) {
	s := StorageConfig{Location: ":memory:"}
	if !s.InMemory() {
		t.Error("expected InMemory for :memory: location")
	}

	s.Location = "./data/metrond.db"
	if s.InMemory() {
		t.Error("file location reported as in-memory")
	}
}

func TestAddresses(t *testing.T) {
	cfg := &Config{Server: ServerConfig{Host: "127.0.0.1", GRPCPort: 50051, HTTPPort: 8080}}

	if got := cfg.GRPCAddress(); got != "127.0.0.1:50051" {
		t.Errorf("grpc address = %q", got)
	}
	if got := cfg.HTTPAddress(); got != "127.0.0.1:8080" {
		t.Errorf("http address = %q", got)
	}
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  host: 127.0.0.1
  grpc_port: 6000
  http_port: 6001
storage:
  location: ":memory:"
logging:
  level: debug
  format: console
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("host = %q", cfg.Server.Host)
	}
	if cfg.Server.GRPCPort != 6000 || cfg.Server.HTTPPort != 6001 {
		t.Errorf("ports = %d/%d", cfg.Server.GRPCPort, cfg.Server.HTTPPort)
	}
	if !cfg.Storage.InMemory() {
		t.Errorf("location = %q, want in-memory", cfg.Storage.Location)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "console" {
		t.Errorf("logging = %+v", cfg.Logging)
	}
	// Unset keys fall back to defaults.
	if cfg.Logging.OutputPath != "stdout" {
		t.Errorf("output_path = %q, want stdout", cfg.Logging.OutputPath)
	}
}

func TestLoad_InvalidFileRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  grpc_port: 7000
  http_port: 7000
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for colliding ports, got nil")
	}
}

func TestEnsureDirectories(t *testing.T) {
	dir := t.TempDir()

	cfg := DefaultConfig()
	cfg.Storage.Location = filepath.Join(dir, "nested", "metrond.db")

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "nested")); err != nil {
		t.Errorf("parent directory not created: %v", err)
	}

	cfg.Storage.Location = ":memory:"
	if err := cfg.EnsureDirectories(); err != nil {
		t.Errorf("in-memory ensure directories: %v", err)
	}
}
