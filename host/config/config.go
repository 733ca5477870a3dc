// Package config loads the simulated inverter configuration
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"inverter/core"
	"inverter/host/sim"
)

// Mode names for the frequency selector
const (
	ModeLow  = "low"
	ModeHigh = "high"
)

// Config describes a simulated inverter run
type Config struct {
	CycleHz     uint32       `json:"cycle_hz"`
	LowHz       float64      `json:"low_hz"`
	HighHz      float64      `json:"high_hz"`
	TableLength int          `json:"table_length"` // 0 derives from cycle_hz/low_hz
	SkipReload  int          `json:"skip_reload"`  // 0 derives from low_hz/high_hz
	Mode        string       `json:"mode"`         // Initial selector position
	Cycles      int          `json:"cycles"`       // 0 runs six low-frequency periods
	Switches    []sim.Change `json:"switches"`
}

// LoadConfig parses a JSON configuration and fills in derived values
func LoadConfig(jsonData []byte) (*Config, error) {
	var config Config

	if err := json.Unmarshal(jsonData, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := applyDefaults(&config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// LoadFile reads and parses a configuration file
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return LoadConfig(data)
}

// applyDefaults fills in missing configuration values from the
// reference design and derives the table length and skip reload.
func applyDefaults(config *Config) error {
	if config.CycleHz == 0 {
		config.CycleHz = core.ReferenceCycleHz
	}
	if config.LowHz == 0 {
		config.LowHz = core.ReferenceLowHz
	}
	if config.HighHz == 0 {
		config.HighHz = core.ReferenceHighHz
	}
	if config.Mode == "" {
		config.Mode = ModeHigh
	}

	if config.TableLength == 0 {
		n, err := core.TableLength(float64(config.CycleHz), config.LowHz)
		if err != nil {
			return fmt.Errorf("cannot derive table length: %w", err)
		}
		config.TableLength = n
	}
	if config.SkipReload == 0 {
		r, err := core.SkipReload(config.TableLength, config.LowHz, config.HighHz)
		if err != nil {
			return fmt.Errorf("cannot derive skip reload: %w", err)
		}
		config.SkipReload = int(r)
	}
	if config.Cycles == 0 {
		config.Cycles = config.TableLength * 6
	}
	return nil
}

// Validate checks a configuration after defaults were applied
func (c *Config) Validate() error {
	if c.LowHz <= 0 || c.HighHz <= c.LowHz {
		return fmt.Errorf("need 0 < low_hz < high_hz, got %g and %g", c.LowHz, c.HighHz)
	}
	if c.Mode != ModeLow && c.Mode != ModeHigh {
		return fmt.Errorf("unknown mode %q (want %q or %q)", c.Mode, ModeLow, ModeHigh)
	}
	if c.TableLength < 4 || c.TableLength%2 != 0 {
		return fmt.Errorf("table_length %d must be even and at least 4", c.TableLength)
	}
	if c.SkipReload < 1 || c.SkipReload > 255 {
		return fmt.Errorf("skip_reload %d out of range 1..255", c.SkipReload)
	}
	if c.Cycles < 0 {
		return fmt.Errorf("cycles must not be negative")
	}
	for i := 1; i < len(c.Switches); i++ {
		if c.Switches[i].Cycle <= c.Switches[i-1].Cycle {
			return fmt.Errorf("switch %d at cycle %d is not after cycle %d",
				i, c.Switches[i].Cycle, c.Switches[i-1].Cycle)
		}
	}
	return nil
}

// Table returns the waveform table for the configured length, using the
// precomputed reference table when the length matches.
func (c *Config) Table() (core.Table, error) {
	if c.TableLength == core.ReferenceLength {
		return core.Reference, nil
	}
	return core.Sine(c.TableLength)
}

// SimConfig converts the configuration into simulator settings
func (c *Config) SimConfig() (sim.Config, error) {
	table, err := c.Table()
	if err != nil {
		return sim.Config{}, fmt.Errorf("invalid table_length %d: %w", c.TableLength, err)
	}
	return sim.Config{
		CycleHz:    c.CycleHz,
		Table:      table,
		Reload:     uint8(c.SkipReload),
		InitialLow: c.Mode == ModeLow,
		Switches:   c.Switches,
	}, nil
}

// Default returns the reference design configuration
func Default() *Config {
	c := &Config{}
	if err := applyDefaults(c); err != nil {
		// The reference constants always derive cleanly
		panic(err)
	}
	return c
}
