// Package config loads server settings from an optional yaml file with
// environment overrides on top.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is everything the server needs at startup. The AnkiConnect endpoint
// is injected into the client from here; nothing mutates it afterwards.
type Config struct {
	AnkiConnectURL string `yaml:"anki_connect_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	JournalPath    string `yaml:"journal_path"`
	LogLevel       string `yaml:"log_level"`
}

// Default returns the built-in settings: local AnkiConnect, 10s timeout,
// journal disabled.
func Default() Config {
	return Config{
		AnkiConnectURL: "http://127.0.0.1:8765",
		TimeoutSeconds: 10,
		LogLevel:       "info",
	}
}

func candidatePaths() []string {
	paths := []string{"anki-mcp.yaml", "anki-mcp.yml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "anki-mcp", "config.yaml"))
	}
	return paths
}

// Load reads configuration. With an explicit path the file must exist; with
// an empty path the first candidate found is used and none existing is fine.
// Environment variables override file values either way.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		for _, p := range candidatePaths() {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	} else if _, err := os.Stat(path); err != nil {
		return cfg, fmt.Errorf("config file %s: %w", path, err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	if cfg.AnkiConnectURL == "" {
		cfg.AnkiConnectURL = Default().AnkiConnectURL
	}
	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = Default().TimeoutSeconds
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("ANKI_CONNECT_URL"); v != "" {
		c.AnkiConnectURL = v
	}
	if v := os.Getenv("ANKI_MCP_TIMEOUT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.TimeoutSeconds = n
		}
	}
	if v := os.Getenv("ANKI_MCP_JOURNAL"); v != "" {
		c.JournalPath = v
	}
	if v := os.Getenv("ANKI_MCP_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
}

// Timeout returns the per-call HTTP timeout.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
