package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadValidConfig(t *testing.T) {
	path := writeConfig(t, `
tempo:
  endpoint: https://tempo.example.com/graphql
  token: secret-token
defaults:
  project: PROJ
  ticket: PROJ-123
  time_spent: 6h
calendar:
  holidays_file: holidays.txt
log:
  file: logs/tyr.log
  level: debug
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q) error: %v", path, err)
	}

	if cfg.Tempo.Endpoint != "https://tempo.example.com/graphql" {
		t.Errorf("endpoint = %q", cfg.Tempo.Endpoint)
	}
	if cfg.Tempo.Token != "secret-token" {
		t.Errorf("token = %q", cfg.Tempo.Token)
	}
	if cfg.Defaults.Project != "PROJ" || cfg.Defaults.Ticket != "PROJ-123" {
		t.Errorf("defaults = %+v", cfg.Defaults)
	}
	if cfg.Defaults.GetTimeSpent() != "6h" {
		t.Errorf("GetTimeSpent() = %q, want 6h", cfg.Defaults.GetTimeSpent())
	}
	if cfg.Calendar.HolidaysFile != "holidays.txt" {
		t.Errorf("holidays_file = %q", cfg.Calendar.HolidaysFile)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log.level = %q", cfg.Log.Level)
	}
}

func TestLoadExpandsTokenEnvVar(t *testing.T) {
	t.Setenv("TYR_TEST_TOKEN", "from-env")

	path := writeConfig(t, `
tempo:
  endpoint: https://tempo.example.com/graphql
  token: ${TYR_TEST_TOKEN}
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q) error: %v", path, err)
	}

	if cfg.Tempo.Token != "from-env" {
		t.Errorf("token = %q, want from-env", cfg.Tempo.Token)
	}
}

func TestLoadMissingRequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "Missing endpoint",
			content: `
tempo:
  token: secret-token
`,
		},
		{
			name: "Missing token",
			content: `
tempo:
  endpoint: https://tempo.example.com/graphql
`,
		},
		{
			name: "Token from unset env var",
			content: `
tempo:
  endpoint: https://tempo.example.com/graphql
  token: ${TYR_UNSET_TOKEN_VAR}
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)

			if _, err := Load(path); err == nil {
				t.Error("Load() succeeded, want validation error")
			}
		})
	}
}

func TestGetTimeSpentDefault(t *testing.T) {
	d := DefaultsConfig{}
	if d.GetTimeSpent() != "8h" {
		t.Errorf("GetTimeSpent() = %q, want 8h", d.GetTimeSpent())
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() succeeded for missing file")
	}
}
