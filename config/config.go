package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"showcase/log"
)

const ConfigFileName = "config.json"

// Config holds the user-tunable settings loaded from ~/.showcase/config.json.
type Config struct {
	// ItemCount is the number of catalog items to generate on startup
	ItemCount int `json:"item_count"`
	// Seed fixes the pseudo-random generator so runs are reproducible
	Seed int64 `json:"seed"`
	// DefaultSortKey is the sort applied on startup: "name" or "price"
	DefaultSortKey string `json:"default_sort_key"`
	// RowHeight is the logical pixel height of one list row
	RowHeight int `json:"row_height"`
	// ViewportHeight is the logical pixel height of the list viewport
	ViewportHeight int `json:"viewport_height"`
	// Overscan is the number of extra rows rendered beyond each viewport edge
	Overscan int `json:"overscan"`
	// NaiveDefault starts the app in naive full-render mode
	NaiveDefault bool `json:"naive_default"`
	// DetailLatencyMS is the simulated latency for detail loads, in milliseconds
	DetailLatencyMS int `json:"detail_latency_ms"`
	// SettleDelayMS is the filter settle delay, in milliseconds
	SettleDelayMS int `json:"settle_delay_ms"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		ItemCount:       10000,
		Seed:            1,
		DefaultSortKey:  "name",
		RowHeight:       44,
		ViewportHeight:  320,
		Overscan:        1,
		NaiveDefault:    false,
		DetailLatencyMS: 250,
		SettleDelayMS:   120,
	}
}

// LoadConfig loads the configuration from disk. If it can't be done, we return the default config.
func LoadConfig() *Config {
	configDir, err := log.GetConfigDir()
	if err != nil {
		log.ErrorLog.Printf("failed to get config directory: %v", err)
		return DefaultConfig()
	}

	configPath := filepath.Join(configDir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			defaultCfg := DefaultConfig()
			if saveErr := SaveConfig(defaultCfg); saveErr != nil {
				log.WarningLog.Printf("failed to save default config: %v", saveErr)
			}
			return defaultCfg
		}

		log.WarningLog.Printf("failed to read config file: %v", err)
		return DefaultConfig()
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		log.ErrorLog.Printf("failed to parse config file: %v", err)
		return DefaultConfig()
	}

	return config
}

// SaveConfig saves the configuration to disk
func SaveConfig(config *Config) error {
	configDir, err := log.GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(configDir, ConfigFileName)
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(configPath, data, 0644)
}
