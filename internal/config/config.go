// Package config loads the portfolio server configuration from an optional
// YAML file, PORTFOLIO_* environment variables and the platform PORT variable.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config is the full server configuration.
type Config struct {
	Server  ServerConfig  `koanf:"server"`
	Site    SiteConfig    `koanf:"site"`
	Resume  ResumeConfig  `koanf:"resume"`
	Theme   ThemeConfig   `koanf:"theme"`
	Storage StorageConfig `koanf:"storage"`
}

type ServerConfig struct {
	Port int    `koanf:"port" validate:"min=1,max=65535"`
	Mode string `koanf:"mode" validate:"oneof=debug release test"`
	// SessionTTL is how long an idle visitor page is kept, in minutes.
	SessionTTL int `koanf:"session_ttl" validate:"min=1"`
	// MaxPages caps the number of live visitor pages.
	MaxPages int `koanf:"max_pages" validate:"min=1"`
}

// SiteConfig points at the files served next to the page.
type SiteConfig struct {
	Dir       string `koanf:"dir" validate:"required"`
	DataFile  string `koanf:"data_file" validate:"required"`
	StaticDir string `koanf:"static_dir"`
	Skeleton  string `koanf:"skeleton"`
	// Origin is the base URL data.json is requested from. Empty means the
	// file is read from Dir.
	Origin string `koanf:"origin" validate:"omitempty,url"`
}

type ResumeConfig struct {
	Path         string `koanf:"path" validate:"required"`
	DownloadName string `koanf:"download_name" validate:"required"`
}

type ThemeConfig struct {
	Default    string `koanf:"default" validate:"oneof=light dark"`
	StorageKey string `koanf:"storage_key" validate:"required"`
}

type StorageConfig struct {
	DataDir string `koanf:"data_dir" validate:"required"`
	// TrackVisits enables hashed-IP page view tracking.
	TrackVisits bool `koanf:"track_visits"`
	// RetentionMonths is how long visit records are kept.
	RetentionMonths int `koanf:"retention_months" validate:"min=1"`
}

// DefaultConfig returns a configuration that serves ./site on port 8080.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:       8080,
			Mode:       "release",
			SessionTTL: 30,
			MaxPages:   1000,
		},
		Site: SiteConfig{
			Dir:       "site",
			DataFile:  "data.json",
			StaticDir: "static",
		},
		Resume: ResumeConfig{
			Path:         "resume.pdf",
			DownloadName: "Resume.pdf",
		},
		Theme: ThemeConfig{
			Default:    "dark",
			StorageKey: "theme",
		},
		Storage: StorageConfig{
			DataDir:         ".portfolio",
			TrackVisits:     true,
			RetentionMonths: 12,
		},
	}
}

// Load reads path if it exists, overlays PORTFOLIO_* environment variables
// (PORTFOLIO_SERVER__PORT -> server.port) and finally honors PORT.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("PORTFOLIO_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "PORTFOLIO_")), "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", port, err)
		}
		cfg.Server.Port = p
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Addr is the listen address.
func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Server.Port)
}
