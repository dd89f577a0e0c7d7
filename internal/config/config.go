package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server      ServerConfig   `yaml:"server" toml:"server"`
	Database    DatabaseConfig `yaml:"database" toml:"database"`
	Log         LogConfig      `yaml:"log" toml:"log"`
	Client      ClientConfig   `yaml:"client" toml:"client"`
	KeyMappings KeyMappings    `yaml:"key_mappings" toml:"key_mappings"`
	ColorScheme ColorScheme    `yaml:"theme" toml:"theme"`
}

// ServerConfig configures the REST API server
type ServerConfig struct {
	Addr                   string   `yaml:"addr" toml:"addr"`
	CORSOrigins            []string `yaml:"cors_origins" toml:"cors_origins"`
	BodyLimit              string   `yaml:"body_limit" toml:"body_limit"`
	ShutdownTimeoutSeconds int      `yaml:"shutdown_timeout_seconds" toml:"shutdown_timeout_seconds"`
}

// DatabaseConfig selects and tunes the relational store
type DatabaseConfig struct {
	// Driver is "sqlite" or "pgx"
	Driver string `yaml:"driver" toml:"driver"`
	// DSN is a file path for sqlite (empty means ~/.kanban/kanban.db) or a
	// postgres URL for pgx
	DSN                string `yaml:"dsn" toml:"dsn"`
	ReorderConcurrency int    `yaml:"reorder_concurrency" toml:"reorder_concurrency"`
}

// LogConfig configures logrus
type LogConfig struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"` // text or json
	File   string `yaml:"file" toml:"file"`     // empty means stderr
}

// ClientConfig configures the HTTP client used by the tui command
type ClientConfig struct {
	APIURL         string `yaml:"api_url" toml:"api_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds" toml:"timeout_seconds"`
}

// Default returns the configuration used when no file or env override is present
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads configuration from path, or from the default location when path
// is empty, then applies environment overrides. A missing default file is
// not an error; a missing explicit file is.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err == nil {
			path = p
		}
	}

	cfg := &Config{}
	if path != "" {
		if err := decodeFile(path, cfg); err != nil {
			if explicit || !errors.Is(err, fs.ErrNotExist) {
				return nil, err
			}
		}
	}

	loadThemeFile(cfg)
	cfg.applyDefaults()
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultPath returns $XDG_CONFIG_HOME/kanban/config.yaml, falling back to
// ~/.config/kanban/config.yaml
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "kanban", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "kanban", "config.yaml"), nil
}

// decodeFile picks the decoder from the file extension.
func decodeFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
	case ".yaml", ".yml", "":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return fmt.Errorf("unsupported config format %q", filepath.Ext(path))
	}
	return nil
}

// loadThemeFile merges the theme from KANBAN_THEME_FILE, if set
func loadThemeFile(cfg *Config) {
	themeFile := os.Getenv("KANBAN_THEME_FILE")
	if themeFile == "" {
		return
	}

	var themeConfig Config
	if decodeFile(themeFile, &themeConfig) == nil {
		cfg.ColorScheme.MergeFrom(themeConfig.ColorScheme)
	}
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if len(c.Server.CORSOrigins) == 0 {
		c.Server.CORSOrigins = []string{"*"}
	}
	if c.Server.BodyLimit == "" {
		c.Server.BodyLimit = "1M"
	}
	if c.Server.ShutdownTimeoutSeconds <= 0 {
		c.Server.ShutdownTimeoutSeconds = 10
	}
	if c.Database.Driver == "" {
		c.Database.Driver = "sqlite"
	}
	if c.Database.ReorderConcurrency <= 0 {
		c.Database.ReorderConcurrency = 8
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Client.APIURL == "" {
		c.Client.APIURL = "http://localhost:8080/api"
	}
	if c.Client.TimeoutSeconds <= 0 {
		c.Client.TimeoutSeconds = 10
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}

// applyEnv overrides file values with KANBAN_* environment variables
func (c *Config) applyEnv() error {
	for env, dst := range map[string]*string{
		"KANBAN_ADDR":      &c.Server.Addr,
		"KANBAN_DB_DRIVER": &c.Database.Driver,
		"KANBAN_DB_DSN":    &c.Database.DSN,
		"KANBAN_LOG_LEVEL": &c.Log.Level,
		"KANBAN_LOG_FILE":  &c.Log.File,
		"KANBAN_API_URL":   &c.Client.APIURL,
	} {
		if v, ok := os.LookupEnv(env); ok {
			*dst = v
		}
	}

	if v := os.Getenv("KANBAN_REORDER_CONCURRENCY"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return fmt.Errorf("KANBAN_REORDER_CONCURRENCY must be a positive integer, got %q", v)
		}
		c.Database.ReorderConcurrency = n
	}
	return nil
}
