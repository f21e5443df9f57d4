package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
telegram:
  token: "test-token"
cohere:
  api_key: "test-key"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Log.Level != "info" || cfg.Log.Format != "json" {
		t.Errorf("log defaults = %q/%q, want info/json", cfg.Log.Level, cfg.Log.Format)
	}
	if cfg.Cohere.BaseURL != "https://api.cohere.ai" {
		t.Errorf("cohere base_url = %q", cfg.Cohere.BaseURL)
	}
	if cfg.Cohere.Model != "command-r-plus" {
		t.Errorf("cohere model = %q", cfg.Cohere.Model)
	}
	if cfg.Cohere.Timeout != 2*time.Minute {
		t.Errorf("cohere timeout = %v, want 2m", cfg.Cohere.Timeout)
	}
	if cfg.Cohere.Preamble == "" {
		t.Error("default preamble must not be empty")
	}
	if cfg.Registry.ParticipantsFile != "participants.txt" {
		t.Errorf("participants file = %q", cfg.Registry.ParticipantsFile)
	}
	if cfg.Database.Path != "storage.db" {
		t.Errorf("database path = %q", cfg.Database.Path)
	}
	if task, ok := cfg.Scheduler.Tasks["sql_maintenance"]; !ok || !task.Enabled {
		t.Errorf("sql_maintenance task = %+v, want enabled default", task)
	}
	if task, ok := cfg.Scheduler.Tasks["admin_refresh"]; !ok || !task.Enabled {
		t.Errorf("admin_refresh task = %+v, want enabled default", task)
	}
}

func TestLoadOverridesFromFile(t *testing.T) {
	path := writeConfig(t, `
telegram:
  token: "test-token"
cohere:
  api_key: "test-key"
  timeout: 30s
log:
  level: debug
  format: text
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "text" {
		t.Errorf("log = %q/%q, want debug/text", cfg.Log.Level, cfg.Log.Format)
	}
	if cfg.Cohere.Timeout != 30*time.Second {
		t.Errorf("timeout = %v, want 30s", cfg.Cohere.Timeout)
	}
}

func TestLoadMissingFileUsesEnv(t *testing.T) {
	t.Setenv("BOT_TELEGRAM_TOKEN", "env-token")
	t.Setenv("BOT_COHERE_API_KEY", "env-key")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load with missing file: %v", err)
	}
	if cfg.Telegram.Token != "env-token" {
		t.Errorf("token = %q, want env value", cfg.Telegram.Token)
	}
	if cfg.Cohere.APIKey != "env-key" {
		t.Errorf("api key = %q, want env value", cfg.Cohere.APIKey)
	}
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "missing token",
			content: `
cohere:
  api_key: "test-key"
`,
		},
		{
			name: "bad log level",
			content: `
telegram:
  token: "test-token"
cohere:
  api_key: "test-key"
log:
  level: verbose
`,
		},
		{
			name: "timeout out of range",
			content: `
telegram:
  token: "test-token"
cohere:
  api_key: "test-key"
  timeout: 1h
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.content)); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}
