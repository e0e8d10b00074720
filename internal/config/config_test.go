package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	want := Default()
	if cfg.Log != want.Log {
		t.Errorf("Log: got %+v, want %+v", cfg.Log, want.Log)
	}
	if cfg.HTTP != want.HTTP {
		t.Errorf("HTTP: got %+v, want %+v", cfg.HTTP, want.HTTP)
	}
	if cfg.Redis != want.Redis {
		t.Errorf("Redis: got %+v, want %+v", cfg.Redis, want.Redis)
	}
	if cfg.Kernels.MaxPixels != 8192*8192 {
		t.Errorf("MaxPixels: got %d", cfg.Kernels.MaxPixels)
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
log:
  level: debug
  format: json
http:
  addr: "127.0.0.1:9000"
  read_timeout: 5s
redis:
  enabled: true
  ttl: 10m
kernels:
  max_pixels: 1000
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("Log: got %+v", cfg.Log)
	}
	if cfg.HTTP.Addr != "127.0.0.1:9000" {
		t.Errorf("HTTP.Addr: got %s", cfg.HTTP.Addr)
	}
	if cfg.HTTP.ReadTimeout != 5*time.Second {
		t.Errorf("HTTP.ReadTimeout: got %v", cfg.HTTP.ReadTimeout)
	}
	// Unset keys keep their defaults.
	if cfg.HTTP.WriteTimeout != 30*time.Second {
		t.Errorf("HTTP.WriteTimeout: got %v", cfg.HTTP.WriteTimeout)
	}
	if !cfg.Redis.Enabled || cfg.Redis.TTL != 10*time.Minute {
		t.Errorf("Redis: got %+v", cfg.Redis)
	}
	if cfg.Kernels.MaxPixels != 1000 {
		t.Errorf("MaxPixels: got %d", cfg.Kernels.MaxPixels)
	}
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("RASTER_MCP_LOG_LEVEL", "warn")
	t.Setenv("RASTER_MCP_HTTP_ADDR", ":7070")
	t.Setenv("RASTER_MCP_KERNELS_MAX_PIXELS", "42")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level: got %s, want warn", cfg.Log.Level)
	}
	if cfg.HTTP.Addr != ":7070" {
		t.Errorf("HTTP.Addr: got %s, want :7070", cfg.HTTP.Addr)
	}
	if cfg.Kernels.MaxPixels != 42 {
		t.Errorf("MaxPixels: got %d, want 42", cfg.Kernels.MaxPixels)
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Error("Load should fail for a missing file")
	}

	t.Setenv("RASTER_MCP_LOG_FORMAT", "xml")
	if _, err := Load(""); err == nil {
		t.Error("Load should reject log.format=xml")
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}

	cfg.Kernels.MaxPixels = -1
	if err := cfg.Validate(); err == nil {
		t.Error("negative max_pixels accepted")
	}

	cfg = Default()
	cfg.HTTP.MaxBodyBytes = 0
	if err := cfg.Validate(); err == nil {
		t.Error("zero max_body_bytes accepted")
	}
}
