package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/JaimeStill/qc-lab/internal/config"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

const minimal = `
[database]
name = "qc"
user = "qc"
`

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeFile(t, dir, config.BaseConfigFile, minimal)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Addr() != "0.0.0.0:8080" {
		t.Errorf("Addr() = %q", cfg.Server.Addr())
	}
	if cfg.API.BasePath != "/api" {
		t.Errorf("BasePath = %q, want /api", cfg.API.BasePath)
	}
	if cfg.API.MaxBodySizeBytes() != 1_000_000 {
		t.Errorf("MaxBodySizeBytes() = %d, want 1000000", cfg.API.MaxBodySizeBytes())
	}
	if cfg.ShutdownTimeoutDuration() != 30*time.Second {
		t.Errorf("ShutdownTimeoutDuration() = %v", cfg.ShutdownTimeoutDuration())
	}
	if cfg.Database.SSLMode != "disable" {
		t.Errorf("SSLMode = %q", cfg.Database.SSLMode)
	}
}

func TestLoad_OverlayAndEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	writeFile(t, dir, config.BaseConfigFile, `
shutdown_timeout = "45s"

[server]
port = 8000

[database]
name = "qc"
user = "qc"

[api]
max_body_size = "2MB"
`)
	writeFile(t, dir, "config.test.toml", `
[server]
port = 9090

[api]
base_path = "/v1"
`)

	t.Setenv(config.EnvServiceEnv, "test")
	t.Setenv("LOGGING_LEVEL", "debug")
	t.Setenv("DATABASE_MIGRATE_ON_START", "true")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Port = %d, want 9090 from overlay", cfg.Server.Port)
	}
	if cfg.API.BasePath != "/v1" {
		t.Errorf("BasePath = %q, want /v1 from overlay", cfg.API.BasePath)
	}
	if cfg.API.MaxBodySizeBytes() != 2_000_000 {
		t.Errorf("MaxBodySizeBytes() = %d, want 2000000 from base", cfg.API.MaxBodySizeBytes())
	}
	if cfg.Database.Name != "qc" {
		t.Errorf("Database.Name = %q, want qc", cfg.Database.Name)
	}
	if cfg.ShutdownTimeout != "45s" {
		t.Errorf("ShutdownTimeout = %q, want 45s", cfg.ShutdownTimeout)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug from env", cfg.Logging.Level)
	}
	if !cfg.Database.MigrateOnStart {
		t.Error("MigrateOnStart = false, want true from env")
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed toml", "\n[server"},
		{"bad log format", "\n[logging]\nformat = \"xml\""},
		{"bad body size", "[api]\nmax_body_size = \"lots\""},
		{"bad port", "[server]\nport = 70000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			t.Chdir(dir)
			writeFile(t, dir, config.BaseConfigFile, minimal+tt.content)

			if _, err := config.Load(); err == nil {
				t.Error("Load() error = nil, want error")
			}
		})
	}
}

func TestLoad_MissingBaseFile(t *testing.T) {
	t.Chdir(t.TempDir())

	if _, err := config.Load(); err == nil {
		t.Error("Load() error = nil, want error for missing config.toml")
	}
}

func TestConfig_Finalize_InvalidShutdownTimeout(t *testing.T) {
	cfg := &config.Config{ShutdownTimeout: "soon"}
	if err := cfg.Finalize(); err == nil {
		t.Error("Finalize() error = nil, want invalid shutdown_timeout")
	}
}

func TestServerConfig_Merge(t *testing.T) {
	base := &config.ServerConfig{Host: "localhost", Port: 8080, ReadTimeout: "30s", WriteTimeout: "30s"}
	base.Merge(&config.ServerConfig{Port: 9090, WriteTimeout: "60s"})

	if base.Host != "localhost" || base.ReadTimeout != "30s" {
		t.Errorf("unset overlay fields changed base: %+v", base)
	}
	if base.Port != 9090 || base.WriteTimeout != "60s" {
		t.Errorf("overlay not applied: %+v", base)
	}
}

func TestServerConfig_Addr(t *testing.T) {
	tests := []struct {
		host string
		port int
		want string
	}{
		{"0.0.0.0", 8080, "0.0.0.0:8080"},
		{"localhost", 3000, "localhost:3000"},
		{"::1", 8080, "[::1]:8080"},
	}

	for _, tt := range tests {
		cfg := &config.ServerConfig{Host: tt.host, Port: tt.port}
		if got := cfg.Addr(); got != tt.want {
			t.Errorf("Addr() = %q, want %q", got, tt.want)
		}
	}
}

func TestAPIConfig_Merge_IgnoresInvalidSize(t *testing.T) {
	base := &config.APIConfig{MaxBodySize: "1MB"}
	base.Merge(&config.APIConfig{MaxBodySize: "huge"})

	if base.MaxBodySize != "1MB" {
		t.Errorf("MaxBodySize = %q, want 1MB", base.MaxBodySize)
	}
}
