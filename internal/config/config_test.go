package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.AnkiConnectURL != "http://127.0.0.1:8765" {
		t.Fatalf("url = %q", cfg.AnkiConnectURL)
	}
	if cfg.Timeout() != 10*time.Second {
		t.Fatalf("timeout = %v", cfg.Timeout())
	}
	if cfg.JournalPath != "" {
		t.Fatalf("journal should default to disabled, got %q", cfg.JournalPath)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "anki-mcp.yaml")
	data := "anki_connect_url: http://192.168.1.50:8765\ntimeout_seconds: 3\njournal_path: /tmp/j.db\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.AnkiConnectURL != "http://192.168.1.50:8765" {
		t.Fatalf("url = %q", cfg.AnkiConnectURL)
	}
	if cfg.TimeoutSeconds != 3 || cfg.JournalPath != "/tmp/j.db" {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "anki-mcp.yaml")
	if err := os.WriteFile(path, []byte("anki_connect_url: http://from-file:8765\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("ANKI_CONNECT_URL", "http://from-env:8765")
	t.Setenv("ANKI_MCP_TIMEOUT", "42")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.AnkiConnectURL != "http://from-env:8765" {
		t.Fatalf("env should win over file, got %q", cfg.AnkiConnectURL)
	}
	if cfg.TimeoutSeconds != 42 {
		t.Fatalf("timeout = %d", cfg.TimeoutSeconds)
	}
}

func TestLoadExplicitMissingFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("explicit missing config should fail")
	}
}
