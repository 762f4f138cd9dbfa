// Package config holds application configuration: static settings read through
// viper (defaults, optional catatumbo.yaml, CATATUMBO_* environment variables)
// and user preferences stored by Fyne.
package config

import (
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/catatumbo/nube-catatumbo/internal/model"
)

// EnvPrefix prefixes environment overrides, e.g. CATATUMBO_DOWNLOAD_TICK=150ms
const EnvPrefix = "CATATUMBO"

// Config holds application level configuration aggregated from env/config files.
type Config struct {
	Download struct {
		Tick            time.Duration `mapstructure:"tick"`
		Step            int           `mapstructure:"step"`
		CompletionDelay time.Duration `mapstructure:"completion_delay"`
	} `mapstructure:"download"`
	Share struct {
		Delay time.Duration `mapstructure:"delay"`
	} `mapstructure:"share"`
	Connection struct {
		CheckInterval time.Duration `mapstructure:"check_interval"`
		Address       string        `mapstructure:"address"`
		Timeout       time.Duration `mapstructure:"timeout"`
	} `mapstructure:"connection"`
	Gesture struct {
		SwipeThreshold float32 `mapstructure:"swipe_threshold"`
	} `mapstructure:"gesture"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	Categories []model.Category `mapstructure:"categories"`
	Catalog    []model.Resource `mapstructure:"catalog"`
}

// Load reads configuration. An empty path looks for an optional catatumbo.*
// file in the working directory; an explicit path must exist.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("download.tick", 300*time.Millisecond)
	v.SetDefault("download.step", 10)
	v.SetDefault("download.completion_delay", 800*time.Millisecond)
	v.SetDefault("share.delay", 1000*time.Millisecond)
	v.SetDefault("connection.check_interval", 30*time.Second)
	v.SetDefault("connection.address", "1.1.1.1:53")
	v.SetDefault("connection.timeout", 2*time.Second)
	v.SetDefault("gesture.swipe_threshold", 100)
	v.SetDefault("log.level", "info")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("catatumbo")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if len(cfg.Categories) == 0 {
		cfg.Categories = DefaultCategories()
	}
	if len(cfg.Catalog) == 0 {
		cfg.Catalog = DefaultCatalog()
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the simulation cannot run with
func (c Config) Validate() error {
	var errs []error
	if c.Download.Tick <= 0 {
		errs = append(errs, fmt.Errorf("download.tick must be positive, got %v", c.Download.Tick))
	}
	if c.Download.Step <= 0 || c.Download.Step > 100 {
		errs = append(errs, fmt.Errorf("download.step must be within 1..100, got %d", c.Download.Step))
	}
	if c.Download.CompletionDelay <= 0 {
		errs = append(errs, fmt.Errorf("download.completion_delay must be positive, got %v", c.Download.CompletionDelay))
	}
	if c.Share.Delay <= 0 {
		errs = append(errs, fmt.Errorf("share.delay must be positive, got %v", c.Share.Delay))
	}
	if c.Connection.CheckInterval <= 0 {
		errs = append(errs, fmt.Errorf("connection.check_interval must be positive, got %v", c.Connection.CheckInterval))
	}
	if c.Connection.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("connection.timeout must be positive, got %v", c.Connection.Timeout))
	}
	if _, _, err := net.SplitHostPort(c.Connection.Address); err != nil {
		errs = append(errs, fmt.Errorf("connection.address: %w", err))
	}
	if c.Gesture.SwipeThreshold <= 0 {
		errs = append(errs, fmt.Errorf("gesture.swipe_threshold must be positive, got %v", c.Gesture.SwipeThreshold))
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}

	seen := make(map[string]bool, len(c.Catalog))
	for _, r := range c.Catalog {
		if r.ID == "" {
			errs = append(errs, fmt.Errorf("catalog resource %q has no id", r.Title))
			continue
		}
		if seen[r.ID] {
			errs = append(errs, fmt.Errorf("duplicate catalog id %q", r.ID))
		}
		seen[r.ID] = true
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// LogLevel returns the parsed log level, info when unparsable
func (c Config) LogLevel() logrus.Level {
	level, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

// ResourcesIn returns the catalog entries of a category, all of them for ""
func (c Config) ResourcesIn(category string) []model.Resource {
	if category == "" {
		return c.Catalog
	}
	var out []model.Resource
	for _, r := range c.Catalog {
		if r.Category == category {
			out = append(out, r)
		}
	}
	return out
}
