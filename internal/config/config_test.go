package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	if Exists() {
		t.Fatal("Exists() = true for empty dir")
	}
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	want := DefaultConfig()
	want.General.DataDir = "/srv/automarket"
	want.General.DefaultMarket = "user"
	want.Account.StartingBalance = 250_000
	want.Account.Increment = 5_000
	want.Appearance.Theme = "tokyo-night"

	if err := Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after Save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != want {
		t.Errorf("Load() = %+v, want %+v", got, want)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	if err := os.MkdirAll(filepath.Join(dir, "automarket"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(Path(), []byte("[account]\nstarting_balance = 1000\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Account.StartingBalance != 1000 {
		t.Errorf("StartingBalance = %d, want 1000", cfg.Account.StartingBalance)
	}
	if cfg.Account.Increment != 10_000 || cfg.Appearance.Theme != "flexoki-dark" {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadMalformed(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	_ = os.MkdirAll(filepath.Join(dir, "automarket"), 0o755)
	_ = os.WriteFile(Path(), []byte("[account\n"), 0o600)

	if _, err := Load(); err == nil {
		t.Error("expected parse error")
	}
}

func TestDataDir(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")

	cfg := DefaultConfig()
	if got := DataDir(cfg); got != filepath.Join("/tmp/xdg-data", "automarket") {
		t.Errorf("DataDir = %q", got)
	}
	cfg.General.DataDir = "/var/lib/cars"
	if got := DataDir(cfg); got != "/var/lib/cars" {
		t.Errorf("DataDir = %q", got)
	}
}
