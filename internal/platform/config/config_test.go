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
		t.Fatalf("write config: %v", err)
	}
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"MINDBLOOM_ENTRIES_URL", "MINDBLOOM_ANALYTICS_URL", "MINDBLOOM_SUBSCRIPTION_URL",
		"MINDBLOOM_USER_ID", "MINDBLOOM_DATA_DIR", "MINDBLOOM_HTTP_TIMEOUT",
	} {
		t.Setenv(key, "")
	}
}

func TestNewReadsYAMLAndAppliesDefaults(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
entries_url: http://localhost:8001/entries
analytics_url: http://localhost:8002/analytics
subscription_url: http://localhost:8003/subscription
data_dir: /tmp/mindbloom-test
`)
	cfg, err := New(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.UserID != "default_user" {
		t.Fatalf("default user id expected, got %q", cfg.UserID)
	}
	if cfg.HTTPTimeout != 10*time.Second {
		t.Fatalf("default timeout expected, got %v", cfg.HTTPTimeout)
	}
	if cfg.DBPath != filepath.Join("/tmp/mindbloom-test", "mindbloom.db") {
		t.Fatalf("unexpected db path %q", cfg.DBPath)
	}
}

func TestNewEnvironmentOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
entries_url: http://file/entries
analytics_url: http://file/analytics
subscription_url: http://file/subscription
user_id: from-file
`)
	t.Setenv("MINDBLOOM_ENTRIES_URL", "http://env/entries")
	t.Setenv("MINDBLOOM_USER_ID", "from-env")
	t.Setenv("MINDBLOOM_HTTP_TIMEOUT", "3s")
	t.Setenv("MINDBLOOM_DATA_DIR", t.TempDir())

	cfg, err := New(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.EntriesURL != "http://env/entries" {
		t.Fatalf("env must override file, got %q", cfg.EntriesURL)
	}
	if cfg.AnalyticsURL != "http://file/analytics" {
		t.Fatalf("file value must survive without override, got %q", cfg.AnalyticsURL)
	}
	if cfg.UserID != "from-env" || cfg.HTTPTimeout != 3*time.Second {
		t.Fatalf("unexpected overrides: %+v", cfg)
	}
}

func TestNewRequiresEndpointURLs(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
entries_url: http://localhost:8001/entries
`)
	if _, err := New(path); err == nil {
		t.Fatalf("missing endpoint URLs must be rejected")
	}
}

func TestNewRejectsBadTimeout(t *testing.T) {
	clearEnv(t)
	t.Setenv("MINDBLOOM_ENTRIES_URL", "http://env/entries")
	t.Setenv("MINDBLOOM_ANALYTICS_URL", "http://env/analytics")
	t.Setenv("MINDBLOOM_SUBSCRIPTION_URL", "http://env/subscription")
	t.Setenv("MINDBLOOM_HTTP_TIMEOUT", "soon")

	if _, err := New(""); err == nil {
		t.Fatalf("unparseable timeout must be rejected")
	}
}

func TestNewMissingFileIsNotAnError(t *testing.T) {
	clearEnv(t)
	t.Setenv("MINDBLOOM_ENTRIES_URL", "http://env/entries")
	t.Setenv("MINDBLOOM_ANALYTICS_URL", "http://env/analytics")
	t.Setenv("MINDBLOOM_SUBSCRIPTION_URL", "http://env/subscription")
	t.Setenv("MINDBLOOM_DATA_DIR", t.TempDir())

	cfg, err := New(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("absent config file must fall back to env, got %v", err)
	}
	if cfg.EntriesURL != "http://env/entries" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}
