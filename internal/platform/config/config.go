package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const defaultTimeout = 10 * time.Second

type Config struct {
	EntriesURL      string `yaml:"entries_url"`
	AnalyticsURL    string `yaml:"analytics_url"`
	SubscriptionURL string `yaml:"subscription_url"`

	// UserID identifies the diary owner and is threaded through every
	// backend call. It is configuration, never a compile-time constant.
	UserID string `yaml:"user_id"`

	HTTPTimeout time.Duration `yaml:"http_timeout"`

	// DataDir holds the local entry-window cache database.
	DataDir string `yaml:"data_dir"`

	DBPath string `yaml:"-"`
}

// New loads the optional yaml config file, then applies environment
// overrides (a .env file next to the working directory is honored).
func New(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		UserID:      "default_user",
		HTTPTimeout: defaultTimeout,
	}

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(b, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	cfg.EntriesURL = getenv("MINDBLOOM_ENTRIES_URL", cfg.EntriesURL)
	cfg.AnalyticsURL = getenv("MINDBLOOM_ANALYTICS_URL", cfg.AnalyticsURL)
	cfg.SubscriptionURL = getenv("MINDBLOOM_SUBSCRIPTION_URL", cfg.SubscriptionURL)
	cfg.UserID = getenv("MINDBLOOM_USER_ID", cfg.UserID)
	cfg.DataDir = getenv("MINDBLOOM_DATA_DIR", cfg.DataDir)
	if raw := getenv("MINDBLOOM_HTTP_TIMEOUT", ""); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("parse MINDBLOOM_HTTP_TIMEOUT: %w", err)
		}
		cfg.HTTPTimeout = d
	}

	if cfg.EntriesURL == "" || cfg.AnalyticsURL == "" || cfg.SubscriptionURL == "" {
		return Config{}, fmt.Errorf("entries, analytics and subscription endpoint URLs are required")
	}
	if cfg.UserID == "" {
		return Config{}, fmt.Errorf("user id is required")
	}
	if cfg.HTTPTimeout <= 0 {
		cfg.HTTPTimeout = defaultTimeout
	}
	if cfg.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve home dir: %w", err)
		}
		cfg.DataDir = filepath.Join(home, ".mindbloom")
	}
	cfg.DBPath = filepath.Join(cfg.DataDir, "mindbloom.db")
	return cfg, nil
}

func getenv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}
