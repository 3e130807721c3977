package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.APIURL == "" {
		t.Error("APIURL default is empty")
	}
	if cfg.PollIntervalSec <= 0 {
		t.Errorf("PollIntervalSec = %d, want positive default", cfg.PollIntervalSec)
	}
	if cfg.DropdownCap <= 0 {
		t.Errorf("DropdownCap = %d, want positive default", cfg.DropdownCap)
	}
}

func TestLoadReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "api_url: https://staging.hirewire.dev\npoll_interval_sec: 10\ndropdown_cap: 5\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.APIURL != "https://staging.hirewire.dev" {
		t.Errorf("APIURL = %q", cfg.APIURL)
	}
	if cfg.PollIntervalSec != 10 {
		t.Errorf("PollIntervalSec = %d, want 10", cfg.PollIntervalSec)
	}
	if cfg.DropdownCap != 5 {
		t.Errorf("DropdownCap = %d, want 5", cfg.DropdownCap)
	}
}

func TestLoadEnvOverridesAPIURL(t *testing.T) {
	t.Setenv("HIREWIRE_API_URL", "http://localhost:8080")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.APIURL != "http://localhost:8080" {
		t.Errorf("APIURL = %q, want env override", cfg.APIURL)
	}
}

func TestLoadClampsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("poll_interval_sec: -5\ndropdown_cap: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.PollIntervalSec <= 0 {
		t.Errorf("PollIntervalSec = %d, want clamped to default", cfg.PollIntervalSec)
	}
	if cfg.DropdownCap <= 0 {
		t.Errorf("DropdownCap = %d, want clamped to default", cfg.DropdownCap)
	}
}
