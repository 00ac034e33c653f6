// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/danielhkuo/ballot-box/db"
)

// noEnvFile keeps a stray .env in the working directory out of the tests
func noEnvFile(t *testing.T) string {
	t.Helper()
	return "-env=" + filepath.Join(t.TempDir(), "missing.env")
}

func TestParseFlags_EnvVars(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "file:test.db")
	t.Setenv("ADMIN_KEY", "test-key")
	t.Setenv("SESSION_TTL", "15m")

	cfg, err := ParseFlags([]string{noEnvFile(t)})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseURL != "file:test.db" {
		t.Errorf("expected database url from env, got %q", cfg.DatabaseURL)
	}
	if cfg.SessionTTL != 15*time.Minute {
		t.Errorf("expected session ttl 15m, got %s", cfg.SessionTTL)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("ADMIN_KEY", "env-key")

	cfg, err := ParseFlags([]string{noEnvFile(t), "-p", "8080", "-d", "file:test.db", "-admin-key", "cli-key"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.AdminKey != "cli-key" {
		t.Errorf("CLI should override env: expected cli-key, got %q", cfg.AdminKey)
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	t.Setenv("ADMIN_KEY", "k")

	cfg, err := ParseFlags([]string{noEnvFile(t)})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 3318 {
		t.Errorf("expected default port 3318, got %d", cfg.Port)
	}
	if cfg.DatabaseType != db.SQLite {
		t.Errorf("expected sqlite by default, got %q", cfg.DatabaseType)
	}
	if cfg.DatabaseURL == "" {
		t.Error("expected a default sqlite path")
	}
	if cfg.SessionTTL != 2*time.Hour {
		t.Errorf("expected default session ttl 2h, got %s", cfg.SessionTTL)
	}
	if cfg.FeedInterval != 30*time.Second {
		t.Errorf("expected default feed interval 30s, got %s", cfg.FeedInterval)
	}
	if !cfg.Seed {
		t.Error("expected seeding on by default")
	}
	if cfg.LogFormat != "auto" || cfg.LogLevel != "info" {
		t.Errorf("unexpected log defaults: level=%q format=%q", cfg.LogLevel, cfg.LogFormat)
	}
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{"missing admin key", nil, nil},
		{"postgres without url", map[string]string{"ADMIN_KEY": "k"}, []string{"-t", "postgres"}},
		{"unknown database type", map[string]string{"ADMIN_KEY": "k"}, []string{"-t", "mysql"}},
		{"bad port env", map[string]string{"ADMIN_KEY": "k", "PORT": "eighty"}, nil},
		{"bad ttl env", map[string]string{"ADMIN_KEY": "k", "SESSION_TTL": "soon"}, nil},
		{"negative feed interval", map[string]string{"ADMIN_KEY": "k"}, []string{"-feed-interval", "-1s"}},
		{"bad seed env", map[string]string{"ADMIN_KEY": "k", "SEED_ELECTIONS": "maybe"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("ADMIN_KEY", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			args := append([]string{noEnvFile(t)}, tt.args...)
			if _, err := ParseFlags(args); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestParseFlags_NoSeed(t *testing.T) {
	t.Setenv("ADMIN_KEY", "k")
	t.Setenv("SEED_ELECTIONS", "true")

	cfg, err := ParseFlags([]string{noEnvFile(t), "-no-seed"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Seed {
		t.Error("-no-seed should win over SEED_ELECTIONS")
	}
}

func TestParseFlags_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	content := "ADMIN_KEY=from-file\nFEED_INTERVAL=5s\nLOG_FORMAT=json\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	// godotenv writes straight into the process environment
	for _, key := range []string{"ADMIN_KEY", "FEED_INTERVAL", "LOG_FORMAT"} {
		key := key
		t.Cleanup(func() { os.Unsetenv(key) })
	}

	cfg, err := ParseFlags([]string{"-env", path})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.AdminKey != "from-file" {
		t.Errorf("expected admin key from .env, got %q", cfg.AdminKey)
	}
	if cfg.FeedInterval != 5*time.Second {
		t.Errorf("expected feed interval 5s, got %s", cfg.FeedInterval)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("expected json log format, got %q", cfg.LogFormat)
	}
}
