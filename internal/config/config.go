// Package config loads runtime tuning parameters for the screening engine.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Defaults applied when a field is absent from the config file.
const (
	DefaultThresholdKm       = 10.0
	DefaultSafeDistanceKm    = 1.0
	DefaultCollisionRadiusKm = 0.01
	DefaultSampleCount       = 10000
	DefaultSeed              = 42
	DefaultCellSizeKm        = 50.0
	DefaultMaxSnapshots      = 86400
	DefaultMaxEvents         = 10000
	DefaultSnapshotSeconds   = 1.0

	DefaultDryMassKg  = 1000.0
	DefaultIspS       = 300.0
	DefaultMaxThrustN = 100.0
	DefaultFuelMassKg = 50.0
)

// Config is the root runtime configuration. Fields are pointers so a
// partial JSON file only overrides what it names; the Get* accessors
// supply defaults for the rest. The same schema serves startup files and
// runtime updates.
type Config struct {
	// Screening params
	ThresholdKm       *float64 `json:"threshold_km,omitempty"`
	CellSizeKm        *float64 `json:"cell_size_km,omitempty"`
	CollisionRadiusKm *float64 `json:"collision_radius_km,omitempty"`

	// Probability params
	SampleCount *int    `json:"sample_count,omitempty"`
	Seed        *uint64 `json:"seed,omitempty"`

	// Maneuver params
	SafeDistanceKm *float64 `json:"safe_distance_km,omitempty"`
	DryMassKg      *float64 `json:"dry_mass_kg,omitempty"`
	IspS           *float64 `json:"isp_s,omitempty"`
	MaxThrustN     *float64 `json:"max_thrust_n,omitempty"`
	FuelMassKg     *float64 `json:"fuel_mass_kg,omitempty"`

	// History params
	MaxSnapshots    *int     `json:"max_snapshots,omitempty"`
	MaxEvents       *int     `json:"max_events,omitempty"`
	SnapshotSeconds *float64 `json:"snapshot_seconds,omitempty"`
}

// Empty returns a Config with all fields unset.
func Empty() *Config {
	return &Config{}
}

// Load reads a Config from a JSON file. The path must end in .json and the
// file must be under 1MB; omitted fields keep their defaults, so partial
// configs are safe.
func Load(path string) (*Config, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	info, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024
	if info.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Empty()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate rejects values that would break the numerical core.
func (c *Config) Validate() error {
	if c.ThresholdKm != nil && *c.ThresholdKm <= 0 {
		return fmt.Errorf("threshold_km must be positive, got %g", *c.ThresholdKm)
	}
	if c.CellSizeKm != nil && *c.CellSizeKm <= 0 {
		return fmt.Errorf("cell_size_km must be positive, got %g", *c.CellSizeKm)
	}
	if c.CollisionRadiusKm != nil && *c.CollisionRadiusKm <= 0 {
		return fmt.Errorf("collision_radius_km must be positive, got %g", *c.CollisionRadiusKm)
	}
	if c.SampleCount != nil && *c.SampleCount <= 0 {
		return fmt.Errorf("sample_count must be positive, got %d", *c.SampleCount)
	}
	if c.SafeDistanceKm != nil && *c.SafeDistanceKm <= 0 {
		return fmt.Errorf("safe_distance_km must be positive, got %g", *c.SafeDistanceKm)
	}
	if c.DryMassKg != nil && *c.DryMassKg <= 0 {
		return fmt.Errorf("dry_mass_kg must be positive, got %g", *c.DryMassKg)
	}
	if c.IspS != nil && *c.IspS <= 0 {
		return fmt.Errorf("isp_s must be positive, got %g", *c.IspS)
	}
	if c.FuelMassKg != nil && *c.FuelMassKg < 0 {
		return fmt.Errorf("fuel_mass_kg must be non-negative, got %g", *c.FuelMassKg)
	}
	if c.MaxSnapshots != nil && *c.MaxSnapshots <= 0 {
		return fmt.Errorf("max_snapshots must be positive, got %d", *c.MaxSnapshots)
	}
	if c.MaxEvents != nil && *c.MaxEvents <= 0 {
		return fmt.Errorf("max_events must be positive, got %d", *c.MaxEvents)
	}
	if c.SnapshotSeconds != nil && *c.SnapshotSeconds <= 0 {
		return fmt.Errorf("snapshot_seconds must be positive, got %g", *c.SnapshotSeconds)
	}
	return nil
}

func getFloat(p *float64, def float64) float64 {
	if p != nil {
		return *p
	}
	return def
}

func getInt(p *int, def int) int {
	if p != nil {
		return *p
	}
	return def
}

// GetThresholdKm returns the screening threshold distance.
func (c *Config) GetThresholdKm() float64 { return getFloat(c.ThresholdKm, DefaultThresholdKm) }

// GetCellSizeKm returns the spatial hash cell edge length.
func (c *Config) GetCellSizeKm() float64 { return getFloat(c.CellSizeKm, DefaultCellSizeKm) }

// GetCollisionRadiusKm returns the combined hard-body radius.
func (c *Config) GetCollisionRadiusKm() float64 {
	return getFloat(c.CollisionRadiusKm, DefaultCollisionRadiusKm)
}

// GetSampleCount returns the Monte Carlo sample count.
func (c *Config) GetSampleCount() int { return getInt(c.SampleCount, DefaultSampleCount) }

// GetSeed returns the Monte Carlo RNG seed.
func (c *Config) GetSeed() uint64 {
	if c.Seed != nil {
		return *c.Seed
	}
	return DefaultSeed
}

// GetSafeDistanceKm returns the required post-maneuver miss distance.
func (c *Config) GetSafeDistanceKm() float64 {
	return getFloat(c.SafeDistanceKm, DefaultSafeDistanceKm)
}

// GetDryMassKg returns the spacecraft dry mass.
func (c *Config) GetDryMassKg() float64 { return getFloat(c.DryMassKg, DefaultDryMassKg) }

// GetIspS returns the engine specific impulse.
func (c *Config) GetIspS() float64 { return getFloat(c.IspS, DefaultIspS) }

// GetMaxThrustN returns the maximum engine thrust.
func (c *Config) GetMaxThrustN() float64 { return getFloat(c.MaxThrustN, DefaultMaxThrustN) }

// GetFuelMassKg returns the available fuel mass.
func (c *Config) GetFuelMassKg() float64 { return getFloat(c.FuelMassKg, DefaultFuelMassKg) }

// GetMaxSnapshots returns the history snapshot cap.
func (c *Config) GetMaxSnapshots() int { return getInt(c.MaxSnapshots, DefaultMaxSnapshots) }

// GetMaxEvents returns the history conjunction event cap.
func (c *Config) GetMaxEvents() int { return getInt(c.MaxEvents, DefaultMaxEvents) }

// GetSnapshotSeconds returns the snapshot recording interval.
func (c *Config) GetSnapshotSeconds() float64 {
	return getFloat(c.SnapshotSeconds, DefaultSnapshotSeconds)
}
