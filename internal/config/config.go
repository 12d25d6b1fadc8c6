package config

import (
	"embed"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

// Activity configures the external status feed shown in the UI.
type Activity struct {
	Type string `yaml:"type"` // "websocket" or "feed"
	URL  string `yaml:"url"`
}

// Renderer configures the external filter renderer. Each filter change
// pipes one JSON request to the command's stdin.
type Renderer struct {
	Command string   `yaml:"command"`
	Args    []string `yaml:"args,omitempty"`
}

type Config struct {
	GalleryURL      string    `yaml:"gallery_url"`
	ListPath        string    `yaml:"list_path,omitempty"`
	RefreshInterval string    `yaml:"refresh_interval"`
	Retention       string    `yaml:"retention"`
	PastaVersion    string    `yaml:"pasta_version,omitempty"`
	Activity        *Activity `yaml:"activity,omitempty"`
	Renderer        *Renderer `yaml:"renderer,omitempty"`
}

// BaseURL returns the gallery base with a guaranteed trailing slash.
func (c *Config) BaseURL() string {
	u := c.GalleryURL
	if u == "" {
		return "http://elm-in-action.com/"
	}
	if u[len(u)-1] != '/' {
		u += "/"
	}
	return u
}

func (c *Config) RefreshDuration() time.Duration {
	d, err := time.ParseDuration(c.RefreshInterval)
	if err != nil {
		return time.Hour
	}
	return d
}

func (c *Config) RetentionDuration() time.Duration {
	if c.Retention == "" {
		return 30 * 24 * time.Hour
	}
	// Support "Nd" day syntax
	if len(c.Retention) > 1 && c.Retention[len(c.Retention)-1] == 'd' {
		var days int
		if _, err := fmt.Sscanf(c.Retention, "%dd", &days); err == nil {
			return time.Duration(days) * 24 * time.Hour
		}
	}
	d, err := time.ParseDuration(c.Retention)
	if err != nil {
		return 30 * 24 * time.Hour
	}
	return d
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "pgroove", "config.yaml")
}

func CachePath() string {
	return filepath.Join(xdg.CacheHome, "pgroove", "pgroove.db")
}

func loadDefaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	return &cfg, nil
}

func Load(path string) (*Config, error) {
	defaults, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Write defaults to config path on first run
			if err := writeDefaults(path); err != nil {
				// Non-fatal: just use embedded defaults
				return defaults, nil
			}
			return defaults, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	return os.WriteFile(path, data, 0o644)
}

func validate(cfg *Config) error {
	if cfg.GalleryURL != "" {
		if err := checkScheme("gallery_url", cfg.GalleryURL, "http", "https"); err != nil {
			return err
		}
	}

	if a := cfg.Activity; a != nil {
		switch a.Type {
		case "websocket":
			if err := checkScheme("activity url", a.URL, "ws", "wss"); err != nil {
				return err
			}
		case "feed":
			if err := checkScheme("activity url", a.URL, "http", "https"); err != nil {
				return err
			}
		default:
			return fmt.Errorf("activity: unknown type %q (valid: websocket, feed)", a.Type)
		}
	}

	if r := cfg.Renderer; r != nil && r.Command == "" {
		return fmt.Errorf("renderer: command is required")
	}

	return nil
}

func checkScheme(field, raw string, schemes ...string) error {
	if raw == "" {
		return fmt.Errorf("%s is required", field)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s: invalid url: %w", field, err)
	}
	for _, s := range schemes {
		if u.Scheme == s {
			return nil
		}
	}
	return fmt.Errorf("%s: unsupported scheme %q", field, u.Scheme)
}
