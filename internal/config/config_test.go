package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("VISION_PROVIDER", "")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	if cfg.Server.Port != "5000" {
		t.Errorf("port = %q, want 5000", cfg.Server.Port)
	}
	if cfg.Vision.Provider != "openai" {
		t.Errorf("provider = %q, want openai", cfg.Vision.Provider)
	}
}

func TestLoadConfigEnvFallback(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("VISION_PROVIDER", "google")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Vision.Provider != "google" {
		t.Errorf("provider = %q, want google", cfg.Vision.Provider)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{
		"server": {"port": "9000", "static_dir": "./static", "debug": true},
		"vision": {"provider": "google"}
	}`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	if cfg.Server.Port != "9000" {
		t.Errorf("port = %q, want 9000", cfg.Server.Port)
	}
	if cfg.Server.StaticDir != "./static" {
		t.Errorf("static dir = %q, want ./static", cfg.Server.StaticDir)
	}
	if !cfg.Server.Debug {
		t.Error("expected debug to be true")
	}
	if cfg.Vision.Provider != "google" {
		t.Errorf("provider = %q, want google", cfg.Vision.Provider)
	}
}

func TestLoadConfigMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected error for malformed config file")
	}
}

func TestGetConfigPathEnvOverride(t *testing.T) {
	t.Setenv("KBJU_CONFIG", "/etc/kbju/config.json")

	if got := GetConfigPath(); got != "/etc/kbju/config.json" {
		t.Errorf("GetConfigPath = %q, want /etc/kbju/config.json", got)
	}
}
