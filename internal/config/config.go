// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config manages the datachat configuration.
//
// Configuration lives in ~/.datachat/config.toml. Environment variables
// (DATACHAT_SERVER_URL, DATACHAT_LANG, DATACHAT_AI_MODE) override the
// file, and sensible defaults cover a missing file entirely.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/datachat-tui/internal/util"
)

// Config holds all datachat configuration.
type Config struct {
	Server ServerConfig `toml:"server" json:"server"`
	UI     UIConfig     `toml:"ui" json:"ui"`
	Chat   ChatConfig   `toml:"chat" json:"chat"`
}

// ServerConfig selects the backend to talk to.
type ServerConfig struct {
	// URL is the backend API base, including the /api prefix.
	URL string `toml:"url" json:"url"`
	// TimeoutSecs bounds ordinary requests. Imports get ten times this.
	TimeoutSecs int `toml:"timeout_secs" json:"timeout_secs"`
}

// UIConfig controls presentation.
type UIConfig struct {
	// Language is "auto", "en", or "fr". Auto follows LANG.
	Language string `toml:"language" json:"language"`
}

// ChatConfig carries session defaults.
type ChatConfig struct {
	// AIMode enables OSINT enrichment for new sessions.
	AIMode bool `toml:"ai_mode" json:"ai_mode"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			URL:         "http://localhost:8000/api",
			TimeoutSecs: 60,
		},
		UI: UIConfig{
			Language: "auto",
		},
		Chat: ChatConfig{
			AIMode: false,
		},
	}
}

// ConfigDir returns the datachat configuration directory (~/.datachat).
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".datachat"), nil
}

// ConfigPath returns the path of the TOML config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// EnsureConfigDir creates the configuration directory if needed.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0700)
}

// Load reads the config file, applies environment overrides, and
// validates. A missing file yields defaults, not an error.
func Load() (*Config, error) {
	cfg := Default()

	path, err := ConfigPath()
	if err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			if _, err := toml.DecodeFile(path, cfg); err != nil {
				return nil, fmt.Errorf("failed to decode config file: %w", err)
			}
		}
	}

	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Save writes the configuration to the TOML config file.
func Save(cfg *Config) error {
	if err := EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	path, err := ConfigPath()
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	buf.WriteString("# datachat configuration file\n")
	buf.WriteString("# Generated by datachat - edit with care\n\n")

	encoder := toml.NewEncoder(&buf)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	// Atomic write: a crash mid-save must not leave a corrupt config.
	if err := util.AtomicWriteFile(path, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// ApplyEnvOverrides applies DATACHAT_* environment variables on top of
// whatever the file provided.
func (c *Config) ApplyEnvOverrides() {
	if url := os.Getenv("DATACHAT_SERVER_URL"); url != "" {
		c.Server.URL = url
	}
	if lang := os.Getenv("DATACHAT_LANG"); lang != "" {
		c.UI.Language = lang
	}
	if ai := os.Getenv("DATACHAT_AI_MODE"); ai != "" {
		c.Chat.AIMode = ai == "1" || strings.ToLower(ai) == "true"
	}
}

// SetDefaults fills zero values left by a partial config file.
func (c *Config) SetDefaults() {
	def := Default()
	if c.Server.URL == "" {
		c.Server.URL = def.Server.URL
	}
	if c.Server.TimeoutSecs <= 0 {
		c.Server.TimeoutSecs = def.Server.TimeoutSecs
	}
	if c.UI.Language == "" {
		c.UI.Language = def.UI.Language
	}
}

// ValidationError describes a rejected config field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks the configuration for usable values.
func (c *Config) Validate() error {
	if !strings.HasPrefix(c.Server.URL, "http://") && !strings.HasPrefix(c.Server.URL, "https://") {
		return ValidationError{Field: "server.url", Message: "must start with http:// or https://"}
	}
	switch c.UI.Language {
	case "auto", "en", "fr":
	default:
		return ValidationError{Field: "ui.language", Message: "must be auto, en, or fr"}
	}
	return nil
}

// =============================================================================
// GLOBAL ACCESS
// =============================================================================

var (
	globalConfig *Config
	globalMu     sync.RWMutex
)

// Global returns the process-wide configuration, loading it on first use.
func Global() *Config {
	globalMu.RLock()
	if globalConfig != nil {
		defer globalMu.RUnlock()
		return globalConfig
	}
	globalMu.RUnlock()

	globalMu.Lock()
	defer globalMu.Unlock()
	if globalConfig == nil {
		cfg, err := Load()
		if err != nil {
			cfg = Default()
		}
		globalConfig = cfg
	}
	return globalConfig
}

// SetGlobal replaces the process-wide configuration.
func SetGlobal(cfg *Config) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalConfig = cfg
}
