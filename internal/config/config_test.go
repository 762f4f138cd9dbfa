package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/catatumbo/nube-catatumbo/internal/model"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.Download.Tick != 300*time.Millisecond {
		t.Errorf("Expected tick 300ms, got %v", cfg.Download.Tick)
	}
	if cfg.Download.Step != 10 {
		t.Errorf("Expected step 10, got %d", cfg.Download.Step)
	}
	if cfg.Download.CompletionDelay != 800*time.Millisecond {
		t.Errorf("Expected completion delay 800ms, got %v", cfg.Download.CompletionDelay)
	}
	if cfg.Share.Delay != time.Second {
		t.Errorf("Expected share delay 1s, got %v", cfg.Share.Delay)
	}
	if cfg.Connection.CheckInterval != 30*time.Second || cfg.Connection.Timeout != 2*time.Second {
		t.Errorf("Unexpected connection timing: %+v", cfg.Connection)
	}
	if cfg.Connection.Address != "1.1.1.1:53" {
		t.Errorf("Expected default connection address, got %q", cfg.Connection.Address)
	}
	if cfg.Gesture.SwipeThreshold != 100 {
		t.Errorf("Expected swipe threshold 100, got %v", cfg.Gesture.SwipeThreshold)
	}
	if cfg.LogLevel() != logrus.InfoLevel {
		t.Errorf("Expected info level, got %v", cfg.LogLevel())
	}
	if len(cfg.Catalog) != len(DefaultCatalog()) {
		t.Errorf("Expected default catalog, got %d entries", len(cfg.Catalog))
	}
	if len(cfg.Categories) != len(DefaultCategories()) {
		t.Errorf("Expected default categories, got %d entries", len(cfg.Categories))
	}
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catatumbo.yaml")
	content := `
download:
  tick: 50ms
  step: 25
share:
  delay: 2s
log:
  level: debug
catalog:
  - id: r1
    title: Recurso uno
    category: salud
    kind: video
    size: 10 MB
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.Download.Tick != 50*time.Millisecond || cfg.Download.Step != 25 {
		t.Errorf("Unexpected download config: %+v", cfg.Download)
	}
	if cfg.Download.CompletionDelay != 800*time.Millisecond {
		t.Errorf("Unset keys should keep defaults, got %v", cfg.Download.CompletionDelay)
	}
	if cfg.Share.Delay != 2*time.Second {
		t.Errorf("Expected share delay 2s, got %v", cfg.Share.Delay)
	}
	if cfg.LogLevel() != logrus.DebugLevel {
		t.Errorf("Expected debug level, got %v", cfg.LogLevel())
	}
	if len(cfg.Catalog) != 1 || cfg.Catalog[0].Title != "Recurso uno" || cfg.Catalog[0].SizeLabel() != "10 MB" {
		t.Errorf("Unexpected catalog: %+v", cfg.Catalog)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("Expected error for missing explicit config file")
	}
}

func TestLoad_BrokenOptionalFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	if err := os.WriteFile(filepath.Join(dir, "catatumbo.yaml"), []byte("download: [tick\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(""); err == nil {
		t.Error("Expected parse error for a broken catatumbo.yaml")
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("CATATUMBO_DOWNLOAD_STEP", "20")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cfg.Download.Step != 20 {
		t.Errorf("Expected step 20 from env, got %d", cfg.Download.Step)
	}
}

func TestValidate(t *testing.T) {
	chdir(t, t.TempDir())
	base, err := Load("")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero tick", func(c *Config) { c.Download.Tick = 0 }, "download.tick"},
		{"step too big", func(c *Config) { c.Download.Step = 150 }, "download.step"},
		{"negative delay", func(c *Config) { c.Download.CompletionDelay = -time.Second }, "completion_delay"},
		{"zero share delay", func(c *Config) { c.Share.Delay = 0 }, "share.delay"},
		{"zero check interval", func(c *Config) { c.Connection.CheckInterval = 0 }, "check_interval"},
		{"zero connection timeout", func(c *Config) { c.Connection.Timeout = 0 }, "connection.timeout"},
		{"address without port", func(c *Config) { c.Connection.Address = "1.1.1.1" }, "connection.address"},
		{"zero threshold", func(c *Config) { c.Gesture.SwipeThreshold = 0 }, "swipe_threshold"},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
		{"duplicate id", func(c *Config) { c.Catalog = append(c.Catalog, c.Catalog[0]) }, "duplicate"},
	}

	for _, test := range tests {
		cfg := base
		cfg.Catalog = append([]model.Resource(nil), base.Catalog...)
		test.mutate(&cfg)
		err := cfg.Validate()
		if err == nil || !strings.Contains(err.Error(), test.want) {
			t.Errorf("%s: expected error containing %q, got %v", test.name, test.want, err)
		}
	}

	if err := base.Validate(); err != nil {
		t.Errorf("Defaults should validate, got %v", err)
	}
}

func TestResourcesIn(t *testing.T) {
	cfg := Config{Catalog: DefaultCatalog()}

	if len(cfg.ResourcesIn("")) != len(DefaultCatalog()) {
		t.Error("Empty category should return the whole catalog")
	}
	for _, r := range cfg.ResourcesIn("salud") {
		if r.Category != "salud" {
			t.Errorf("Unexpected resource %s in salud", r.ID)
		}
	}
	if len(cfg.ResourcesIn("none")) != 0 {
		t.Error("Unknown category should be empty")
	}
}
