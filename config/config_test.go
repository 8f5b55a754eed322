package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.ItemCount != 10000 {
		t.Errorf("default item count should be 10000, got %d", cfg.ItemCount)
	}
	if cfg.RowHeight != 44 {
		t.Errorf("default row height should be 44, got %d", cfg.RowHeight)
	}
	if cfg.ViewportHeight != 320 {
		t.Errorf("default viewport height should be 320, got %d", cfg.ViewportHeight)
	}
	if cfg.Overscan != 1 {
		t.Errorf("default overscan should be 1, got %d", cfg.Overscan)
	}
	if cfg.DefaultSortKey != "name" {
		t.Errorf("default sort key should be name, got %s", cfg.DefaultSortKey)
	}
	if cfg.NaiveDefault {
		t.Error("naive mode should be off by default")
	}
}

func TestLoadConfigCreatesDefaultFile(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)

	cfg := LoadConfig()
	if cfg.ItemCount != 10000 {
		t.Errorf("expected default config, got item count %d", cfg.ItemCount)
	}

	// First load writes the defaults so users have a file to edit
	configPath := filepath.Join(tempDir, ".showcase", ConfigFileName)
	if _, err := os.Stat(configPath); err != nil {
		t.Errorf("expected config file at %s: %v", configPath, err)
	}
}

func TestConfigRoundTrip(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)

	cfg := DefaultConfig()
	cfg.ItemCount = 500
	cfg.Seed = 42
	cfg.DefaultSortKey = "price"
	cfg.NaiveDefault = true
	cfg.SettleDelayMS = 200

	if err := SaveConfig(cfg); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded := LoadConfig()
	if loaded.ItemCount != 500 {
		t.Errorf("item count not persisted, got %d", loaded.ItemCount)
	}
	if loaded.Seed != 42 {
		t.Errorf("seed not persisted, got %d", loaded.Seed)
	}
	if loaded.DefaultSortKey != "price" {
		t.Errorf("sort key not persisted, got %s", loaded.DefaultSortKey)
	}
	if !loaded.NaiveDefault {
		t.Error("naive default not persisted")
	}
	if loaded.SettleDelayMS != 200 {
		t.Errorf("settle delay not persisted, got %d", loaded.SettleDelayMS)
	}
}

func TestLoadConfigKeepsDefaultsForMissingFields(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)

	configDir := filepath.Join(tempDir, ".showcase")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}

	// A partial file should leave unmentioned fields at their defaults
	partial := []byte(`{"item_count": 250}`)
	if err := os.WriteFile(filepath.Join(configDir, ConfigFileName), partial, 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg := LoadConfig()
	if cfg.ItemCount != 250 {
		t.Errorf("item count should come from file, got %d", cfg.ItemCount)
	}
	if cfg.RowHeight != 44 {
		t.Errorf("row height should keep its default, got %d", cfg.RowHeight)
	}
	if cfg.SettleDelayMS != 120 {
		t.Errorf("settle delay should keep its default, got %d", cfg.SettleDelayMS)
	}
}

func TestStateSurvivesCorruptFile(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)

	configDir := filepath.Join(tempDir, ".showcase")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(configDir, StateFileName), []byte("{not json"), 0644); err != nil {
		t.Fatalf("failed to write state file: %v", err)
	}

	// A corrupt file falls back to defaults instead of failing
	state := LoadState()
	defer state.Close()
	if state.GetHelpScreensSeen() != 0 {
		t.Errorf("corrupt state should load as default, got %d", state.GetHelpScreensSeen())
	}
}

func TestStateRefreshSeesOtherWriters(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)

	first := LoadState()
	defer first.Close()

	second := LoadState()
	defer second.Close()
	if err := second.SetHelpScreensSeen(0b11); err != nil {
		t.Fatalf("SetHelpScreensSeen failed: %v", err)
	}

	if err := first.RefreshState(); err != nil {
		t.Fatalf("RefreshState failed: %v", err)
	}
	if first.GetHelpScreensSeen() != 0b11 {
		t.Errorf("refresh should pick up the other writer, got %d", first.GetHelpScreensSeen())
	}
}

func TestHelpScreensSeen(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)

	state := LoadState()
	defer state.Close()

	if state.GetHelpScreensSeen() != 0 {
		t.Error("fresh state should have no help screens seen")
	}

	if err := state.SetHelpScreensSeen(1); err != nil {
		t.Fatalf("SetHelpScreensSeen failed: %v", err)
	}

	reloaded := LoadState()
	defer reloaded.Close()
	if reloaded.GetHelpScreensSeen() != 1 {
		t.Errorf("help screens seen not persisted, got %d", reloaded.GetHelpScreensSeen())
	}
}
