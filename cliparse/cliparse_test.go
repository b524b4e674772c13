// cliparse/cliparse_test.go
package cliparse

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// noEnvFile points -env at a path that does not exist
func noEnvFile(t *testing.T) string {
	return "-env=" + filepath.Join(t.TempDir(), "missing.env")
}

func TestParseFlags_EnvVars(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("SLUG_SALT", "test-slug")
	t.Setenv("DATABASE_URL", "file:test.db")
	t.Setenv("YOUTUBE_API_KEY", "yt-key")
	t.Setenv("SEARCH_MAX_RESULTS", "8")

	cfg, err := ParseFlags([]string{noEnvFile(t)})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.SlugSalt != "test-slug" {
		t.Errorf("expected slug salt from env, got %q", cfg.SlugSalt)
	}
	if !cfg.StoreEnabled() || cfg.DatabaseType != "sqlite" {
		t.Errorf("expected sqlite store, got %q %q", cfg.DatabaseType, cfg.DatabaseURL)
	}
	if !cfg.SearchEnabled() || cfg.SearchMaxResults != 8 {
		t.Errorf("expected search enabled with 8 results, got %+v", cfg)
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	t.Setenv("SLUG_SALT", "s")

	cfg, err := ParseFlags([]string{noEnvFile(t)})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != DefaultPort {
		t.Errorf("expected default port %d, got %d", DefaultPort, cfg.Port)
	}
	if cfg.StoreEnabled() {
		t.Error("expected in-memory mode without DATABASE_URL")
	}
	if cfg.SearchEnabled() {
		t.Error("expected search disabled without API key")
	}
	if cfg.SearchMaxResults != DefaultMaxResults {
		t.Errorf("expected %d max results, got %d", DefaultMaxResults, cfg.SearchMaxResults)
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "text" {
		t.Errorf("unexpected log defaults %q %q", cfg.LogLevel, cfg.LogFormat)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_TYPE", "sqlite")

	cfg, err := ParseFlags([]string{noEnvFile(t), "-p", "8080", "-t", "postgres", "-d", "postgres://x", "-slug-salt", "s2"})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "postgres" {
		t.Errorf("CLI should override env: expected postgres, got %q", cfg.DatabaseType)
	}
}

func TestParseFlags_Errors(t *testing.T) {
	testCases := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{"missing salt", nil, nil},
		{"bad port", map[string]string{"SLUG_SALT": "s", "PORT": "abc"}, nil},
		{"port out of range", map[string]string{"SLUG_SALT": "s"}, []string{"-p", "70000"}},
		{"bad database type", map[string]string{"SLUG_SALT": "s", "DATABASE_TYPE": "mysql"}, nil},
		{"too many results", map[string]string{"SLUG_SALT": "s", "SEARCH_MAX_RESULTS": "51"}, nil},
		{"unknown flag", map[string]string{"SLUG_SALT": "s"}, []string{"-nope"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("SLUG_SALT", "")
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			args := append([]string{noEnvFile(t)}, tc.args...)
			if _, err := ParseFlags(args); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestParseFlags_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	content := "SLUG_SALT=from-file\nPORT=4000\nYOUTUBE_API_KEY=file-key\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PORT", "5000") // already set, must win over the file
	t.Cleanup(func() {
		os.Unsetenv("SLUG_SALT")
		os.Unsetenv("YOUTUBE_API_KEY")
	})

	cfg, err := ParseFlags([]string{"-env", path})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.SlugSalt != "from-file" {
		t.Errorf("expected salt from .env, got %q", cfg.SlugSalt)
	}
	if cfg.Port != 5000 {
		t.Errorf("expected existing env to win, got %d", cfg.Port)
	}
	if cfg.YouTubeAPIKey != "file-key" {
		t.Errorf("expected key from .env, got %q", cfg.YouTubeAPIKey)
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := Config{LogLevel: "warn", LogFormat: "json"}.NewLogger(&buf)

	logger.Info("hidden")
	logger.Warn("shown", "session", "abc")

	out := strings.TrimSpace(buf.String())
	if strings.Contains(out, "hidden") {
		t.Error("info message should be filtered at warn level")
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(out), &entry); err != nil {
		t.Fatalf("expected one JSON line, got %q: %v", out, err)
	}
	if entry["session"] != "abc" {
		t.Errorf("expected session attribute, got %v", entry)
	}
}
