package driver

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config holds the batched-execution parameters for the Driver.
type Config struct {
	// BatchSize is the maximum number of interpreter steps executed
	// per engine tick. Keeping batches bounded preserves external
	// responsiveness when the driver is embedded in a larger
	// simulation. Default: 256 steps.
	BatchSize int `json:"batch_size"`

	// MaxCycles is the total cycle limit for a driven run.
	// Default: 100000 cycles.
	MaxCycles uint32 `json:"max_cycles"`

	// FreqMHz is the tick frequency of the driver component in MHz.
	// It only affects virtual timestamps, not results. Default: 1 MHz.
	FreqMHz uint64 `json:"freq_mhz"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		BatchSize: 256,
		MaxCycles: 100000,
		FreqMHz:   1,
	}
}

// LoadConfig loads a Config from a JSON file. Missing fields keep
// their defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read driver config file: %w", err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse driver config: %w", err)
	}

	return config, nil
}

// SaveConfig writes a Config to a JSON file.
func (c *Config) SaveConfig(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize driver config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write driver config file: %w", err)
	}

	return nil
}

// Validate checks that all parameters are usable.
func (c *Config) Validate() error {
	if c.BatchSize <= 0 {
		return fmt.Errorf("batch_size must be > 0")
	}
	if c.MaxCycles == 0 {
		return fmt.Errorf("max_cycles must be > 0")
	}
	if c.FreqMHz == 0 {
		return fmt.Errorf("freq_mhz must be > 0")
	}
	return nil
}
