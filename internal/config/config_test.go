// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.API.BaseURL != "http://127.0.0.1:8000/api" {
		t.Errorf("expected default base URL, got %s", cfg.API.BaseURL)
	}
	if cfg.API.TimeoutSecs != 30 {
		t.Errorf("expected timeout 30, got %d", cfg.API.TimeoutSecs)
	}
	if cfg.API.MaxRetries != 3 {
		t.Errorf("expected max retries 3, got %d", cfg.API.MaxRetries)
	}
	if !cfg.Cache.Enabled {
		t.Error("expected cache enabled by default")
	}
	if cfg.UI.Theme != "dark" {
		t.Errorf("expected dark theme, got %s", cfg.UI.Theme)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "empty base URL",
			mutate:  func(c *Config) { c.API.BaseURL = "" },
			wantErr: "api.base_url",
		},
		{
			name:    "malformed base URL",
			mutate:  func(c *Config) { c.API.BaseURL = "not a url" },
			wantErr: "api.base_url",
		},
		{
			name:    "timeout too small",
			mutate:  func(c *Config) { c.API.TimeoutSecs = 0 },
			wantErr: "api.timeout_secs",
		},
		{
			name:    "timeout too large",
			mutate:  func(c *Config) { c.API.TimeoutSecs = 301 },
			wantErr: "api.timeout_secs",
		},
		{
			name:    "negative retries",
			mutate:  func(c *Config) { c.API.MaxRetries = -1 },
			wantErr: "api.max_retries",
		},
		{
			name:    "unknown theme",
			mutate:  func(c *Config) { c.UI.Theme = "neon" },
			wantErr: "ui.theme",
		},
		{
			name:   "theme is case-insensitive",
			mutate: func(c *Config) { c.UI.Theme = "Dark" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestSetDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.SetDefaults()

	if cfg.API.BaseURL == "" {
		t.Error("expected base URL to be filled in")
	}
	if cfg.API.TimeoutSecs != 30 {
		t.Errorf("expected timeout 30, got %d", cfg.API.TimeoutSecs)
	}
	if cfg.UI.Theme != "dark" {
		t.Errorf("expected dark theme, got %s", cfg.UI.Theme)
	}
}

func TestSetDefaultsPreservesExisting(t *testing.T) {
	cfg := &Config{}
	cfg.API.BaseURL = "https://booking.example.edu/api"
	cfg.API.TimeoutSecs = 60
	cfg.SetDefaults()

	if cfg.API.BaseURL != "https://booking.example.edu/api" {
		t.Errorf("base URL overwritten: %s", cfg.API.BaseURL)
	}
	if cfg.API.TimeoutSecs != 60 {
		t.Errorf("timeout overwritten: %d", cfg.API.TimeoutSecs)
	}
}

func TestSaveAndLoadTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	cfg := Default()
	cfg.API.BaseURL = "https://booking.example.edu/api"
	cfg.UI.Theme = "light"
	cfg.Cache.Enabled = false

	if err := SaveTOML(cfg, path); err != nil {
		t.Fatalf("SaveTOML failed: %v", err)
	}

	loaded := Default()
	if err := LoadTOML(loaded, path); err != nil {
		t.Fatalf("LoadTOML failed: %v", err)
	}

	if loaded.API.BaseURL != cfg.API.BaseURL {
		t.Errorf("base URL mismatch: %s", loaded.API.BaseURL)
	}
	if loaded.UI.Theme != "light" {
		t.Errorf("theme mismatch: %s", loaded.UI.Theme)
	}
	if loaded.Cache.Enabled {
		t.Error("expected cache disabled after round trip")
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("CAMPUS_API_URL", "https://env.example.edu/api")
	t.Setenv("CAMPUS_TIMEOUT_SECS", "45")
	t.Setenv("CAMPUS_THEME", "light")
	t.Setenv("CAMPUS_NO_CACHE", "1")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	if cfg.API.BaseURL != "https://env.example.edu/api" {
		t.Errorf("env base URL not applied: %s", cfg.API.BaseURL)
	}
	if cfg.API.TimeoutSecs != 45 {
		t.Errorf("env timeout not applied: %d", cfg.API.TimeoutSecs)
	}
	if cfg.UI.Theme != "light" {
		t.Errorf("env theme not applied: %s", cfg.UI.Theme)
	}
	if cfg.Cache.Enabled {
		t.Error("CAMPUS_NO_CACHE=1 should disable the cache")
	}
}

func TestApplyEnvOverridesIgnoresGarbage(t *testing.T) {
	t.Setenv("CAMPUS_TIMEOUT_SECS", "not-a-number")

	cfg := Default()
	cfg.ApplyEnvOverrides()
	if cfg.API.TimeoutSecs != 30 {
		t.Errorf("garbage timeout should be ignored, got %d", cfg.API.TimeoutSecs)
	}
}

func TestCachePath(t *testing.T) {
	cfg := Default()
	cfg.Cache.Path = "/tmp/custom-cache.db"
	path, err := cfg.CachePath()
	if err != nil {
		t.Fatal(err)
	}
	if path != "/tmp/custom-cache.db" {
		t.Errorf("explicit cache path not honored: %s", path)
	}

	cfg.Cache.Path = ""
	path, err = cfg.CachePath()
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(path) != "cache.db" {
		t.Errorf("default cache path should end in cache.db: %s", path)
	}
}
