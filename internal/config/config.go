// Package config holds runtime configuration, loaded from a YAML file,
// environment variables and flags via viper.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Server struct {
	Addr         string   `mapstructure:"addr"`
	AllowOrigins []string `mapstructure:"allow-origins"`
}

type Database struct {
	Path string `mapstructure:"path"`
}

type Adzuna struct {
	AppID   string `mapstructure:"app-id"`
	AppKey  string `mapstructure:"app-key"`
	BaseURL string `mapstructure:"base-url"`
	Country string `mapstructure:"country"`

	// KeyringAccount names the OS keychain entry consulted when AppKey
	// is not set directly.
	KeyringAccount string `mapstructure:"keyring-account"`
}

// Refresh controls the optional background ingest loop. A zero interval
// disables it and postings only refresh via POST /refresh.
type Refresh struct {
	Interval time.Duration `mapstructure:"interval"`
	Keyword  string        `mapstructure:"keyword"`
	Results  int           `mapstructure:"results"`
}

type Models struct {
	Dir       string `mapstructure:"dir"`
	RulesFile string `mapstructure:"rules-file"`
}

type Config struct {
	Server   Server   `mapstructure:"server"`
	Database Database `mapstructure:"database"`
	Adzuna   Adzuna   `mapstructure:"adzuna"`
	Refresh  Refresh  `mapstructure:"refresh"`
	Models   Models   `mapstructure:"models"`
}

// SetDefaults registers fallback values on the given viper instance.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8000")
	v.SetDefault("server.allow-origins", []string{"*"})
	v.SetDefault("database.path", "jobmarket.db")
	v.SetDefault("adzuna.country", "us")
	v.SetDefault("refresh.keyword", "data")
	v.SetDefault("refresh.results", 50)
	v.SetDefault("models.dir", "models")
}

// FromViper decodes the merged configuration.
func FromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

// Validate rejects configurations that cannot start a server.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Server.Addr) == "" {
		return fmt.Errorf("server.addr is empty")
	}
	if strings.TrimSpace(c.Database.Path) == "" {
		return fmt.Errorf("database.path is empty")
	}
	if strings.TrimSpace(c.Adzuna.Country) == "" {
		return fmt.Errorf("adzuna.country is empty")
	}
	return nil
}
