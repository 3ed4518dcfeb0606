package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/eoflabs/eof1validator/internal/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	if cfg.Hardfork != "mainnet-eof1" {
		t.Errorf("Hardfork = %q, want mainnet-eof1", cfg.Hardfork)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.BatchConcurrency <= 0 {
		t.Errorf("BatchConcurrency = %d, want > 0", cfg.BatchConcurrency)
	}
}

func TestLoadEmptyPathReturnsDefault(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("Load(\"\") = %v", err)
	}
	if cfg != config.Default() {
		t.Errorf("Load(\"\") = %+v, want Default()", cfg)
	}
}

func TestLoadOverlaysFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "eofcheck.toml")
	body := "LogLevel = \"debug\"\nCacheDir = \"/tmp/eofcheck-cache\"\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load(%q) = %v", path, err)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.CacheDir != "/tmp/eofcheck-cache" {
		t.Errorf("CacheDir = %q, want /tmp/eofcheck-cache", cfg.CacheDir)
	}
	if cfg.Hardfork != config.Default().Hardfork {
		t.Errorf("Hardfork = %q, want default to survive the overlay", cfg.Hardfork)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	if err == nil {
		t.Fatal("Load on a missing file should return an error")
	}
}
