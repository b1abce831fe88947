package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the overall application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Log        LogConfig        `yaml:"log"`
	Push       PushConfig       `yaml:"push"`
	WorkerPool WorkerPoolConfig `yaml:"worker_pool"`
	Session    SessionConfig    `yaml:"session"`
	Units      UnitsConfig      `yaml:"units"`
	NewBrew    NewBrewConfig    `yaml:"new_brew"`
	Theme      ThemeConfig      `yaml:"theme"`
}

// WorkerPoolConfig holds the configuration for the notification worker pool.
type WorkerPoolConfig struct {
	Size int `yaml:"size"`
}

// PushConfig holds the VAPID keys for web push notifications.
type PushConfig struct {
	PublicKey  string `yaml:"vapid_public_key"`
	PrivateKey string `yaml:"vapid_private_key"`
	Subject    string `yaml:"subject"`
	TTL        int    `yaml:"ttl"`
}

// Enabled reports whether both VAPID keys are present.
func (p PushConfig) Enabled() bool {
	return p.PublicKey != "" && p.PrivateKey != ""
}

// ServerConfig holds the server-related configuration.
type ServerConfig struct {
	Port            int     `yaml:"port"`
	RateLimitPerSec float64 `yaml:"rate_limit_per_sec"`
	RateLimitBurst  int     `yaml:"rate_limit_burst"`
	CacheTTLSeconds int     `yaml:"cache_ttl_seconds"`

	CacheTTL time.Duration `yaml:"-"`
}

// DatabaseConfig holds the database connection configuration.
type DatabaseConfig struct {
	Driver                 string `yaml:"driver"`
	DSN                    string `yaml:"dsn"`
	MaxOpenConns           int    `yaml:"max_open_conns"`
	MaxIdleConns           int    `yaml:"max_idle_conns"`
	ConnMaxLifetimeMinutes int    `yaml:"conn_max_lifetime_minutes"`
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// SessionConfig controls navigation session expiry.
type SessionConfig struct {
	TTLMinutes int           `yaml:"ttl_minutes"`
	TTL        time.Duration `yaml:"-"`
}

// UnitsConfig selects display units for numerical inputs.
type UnitsConfig struct {
	Weight      string `yaml:"weight"`      // "g" or "oz"
	Temperature string `yaml:"temperature"` // "C" or "F"
}

// NewBrewConfig lists the attribute steps of the new brew flow, in order.
type NewBrewConfig struct {
	Sequence []string `yaml:"sequence"`
}

// ThemeConfig holds the colors and fonts applied to every screen.
type ThemeConfig struct {
	Name         string `yaml:"name"`
	DarkColor    string `yaml:"dark_color"`
	LightColor   string `yaml:"light_color"`
	AccentColor  string `yaml:"accent_color"`
	DefaultFont  string `yaml:"default_font"`
	FontSize     int    `yaml:"font_size"`
	BarStyleDark bool   `yaml:"bar_style_dark"`
}

// DefaultSequence is used when new_brew.sequence is empty.
var DefaultSequence = []string{
	"grindSize", "tamping", "coffeeWeight", "waterWeight", "waterTemperature", "preInfusionTime", "time",
}

// Load reads the configuration from the given path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	if dsn := os.Getenv("BREWER_DATABASE_DSN"); dsn != "" {
		cfg.Database.DSN = dsn
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (cfg *Config) applyDefaults() {
	if cfg.Server.Port <= 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.RateLimitPerSec <= 0 {
		cfg.Server.RateLimitPerSec = 10
	}
	if cfg.Server.RateLimitBurst <= 0 {
		cfg.Server.RateLimitBurst = 5
	}
	if cfg.Server.CacheTTLSeconds <= 0 {
		cfg.Server.CacheTTLSeconds = 300
	}
	cfg.Server.CacheTTL = time.Duration(cfg.Server.CacheTTLSeconds) * time.Second

	if cfg.Database.Driver == "" {
		cfg.Database.Driver = "sqlite"
	}
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "brewer.db"
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	if cfg.Push.TTL <= 0 {
		cfg.Push.TTL = 3600
	}
	if cfg.WorkerPool.Size <= 0 {
		cfg.WorkerPool.Size = 1
	}

	if cfg.Session.TTLMinutes <= 0 {
		cfg.Session.TTLMinutes = 30
	}
	cfg.Session.TTL = time.Duration(cfg.Session.TTLMinutes) * time.Minute

	if cfg.Units.Weight == "" {
		cfg.Units.Weight = "g"
	}
	if cfg.Units.Temperature == "" {
		cfg.Units.Temperature = "C"
	}

	if len(cfg.NewBrew.Sequence) == 0 {
		cfg.NewBrew.Sequence = append([]string(nil), DefaultSequence...)
	}

	if cfg.Theme.Name == "" {
		cfg.Theme.Name = "main"
		cfg.Theme.DarkColor = "#2B2B2B"
		cfg.Theme.LightColor = "#F4F1EA"
		cfg.Theme.AccentColor = "#C8873A"
		cfg.Theme.DefaultFont = "AvenirNext-Regular"
		cfg.Theme.FontSize = 15
		cfg.Theme.BarStyleDark = true
	}
}
