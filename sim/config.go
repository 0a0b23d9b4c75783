package sim

import (
	"fmt"
	"math"
)

// Trip-duration distribution names accepted by Config.TripDistribution.
const (
	DistExponential = "exponential"
	DistLogNormal   = "lognormal"
	DistFixed       = "fixed"
)

// Replenishment modes accepted by Config.ReplenishMode.
const (
	// ReplenishPoisson draws the daily count from Poisson(ReplenishRate).
	ReplenishPoisson = "poisson"
	// ReplenishFixed adds floor(ReplenishRate) assets every day.
	ReplenishFixed = "fixed"
)

// Dispatch policies accepted by Config.DispatchPolicy.
const (
	// DispatchFull sends every dispatch-eligible asset out each day.
	DispatchFull = "full"
	// DispatchDemand caps the dispatch pass at a synthetic daily demand.
	DispatchDemand = "demand"
)

// Config holds every knob of a generation run. The zero value is not
// runnable; start from DefaultConfig or call ApplyDefaults before Validate.
type Config struct {
	NAssets       int     `yaml:"n_assets"`       // initial fleet size
	TripDuration  float64 `yaml:"trip_duration"`  // mean trip length in days
	ShrinkageRate float64 `yaml:"shrinkage_rate"` // per-trip loss probability in [0,1]
	ReplenishRate float64 `yaml:"replenish_rate"` // expected new assets per day
	Days          int     `yaml:"days"`           // simulation horizon
	Seed          int64   `yaml:"seed"`           // master seed for all random draws

	TripDistribution string `yaml:"trip_distribution"` // exponential (default), lognormal, fixed
	ReplenishMode    string `yaml:"replenish_mode"`    // poisson (default), fixed
	DispatchPolicy   string `yaml:"dispatch_policy"`   // full (default), demand
	RestDays         int    `yaml:"rest_days"`         // idle days before a returned asset redispatches
}

// DefaultConfig returns the documented CLI defaults.
func DefaultConfig() Config {
	return Config{
		NAssets:          2000,
		TripDuration:     100,
		ShrinkageRate:    0.15,
		ReplenishRate:    1,
		Days:             2000,
		Seed:             42,
		TripDistribution: DistExponential,
		ReplenishMode:    ReplenishPoisson,
		DispatchPolicy:   DispatchFull,
		RestDays:         0,
	}
}

// ApplyDefaults fills empty enum fields so scenario files may omit them.
func (c *Config) ApplyDefaults() {
	if c.TripDistribution == "" {
		c.TripDistribution = DistExponential
	}
	if c.ReplenishMode == "" {
		c.ReplenishMode = ReplenishPoisson
	}
	if c.DispatchPolicy == "" {
		c.DispatchPolicy = DispatchFull
	}
}

// Validate reports the first configuration error, before any simulation
// state exists. A Config that passes Validate cannot fail mid-run for
// configuration reasons.
func (c *Config) Validate() error {
	if c.NAssets < 0 {
		return fmt.Errorf("n_assets must be non-negative, got %d", c.NAssets)
	}
	if math.IsNaN(c.TripDuration) || math.IsInf(c.TripDuration, 0) || c.TripDuration <= 0 {
		return fmt.Errorf("trip_duration must be a positive finite number, got %f", c.TripDuration)
	}
	if math.IsNaN(c.ShrinkageRate) || c.ShrinkageRate < 0 || c.ShrinkageRate > 1 {
		return fmt.Errorf("shrinkage_rate must be in [0,1], got %f", c.ShrinkageRate)
	}
	if math.IsNaN(c.ReplenishRate) || math.IsInf(c.ReplenishRate, 0) || c.ReplenishRate < 0 {
		return fmt.Errorf("replenish_rate must be non-negative and finite, got %f", c.ReplenishRate)
	}
	if c.Days < 0 {
		return fmt.Errorf("days must be non-negative, got %d", c.Days)
	}
	if c.RestDays < 0 {
		return fmt.Errorf("rest_days must be non-negative, got %d", c.RestDays)
	}
	switch c.TripDistribution {
	case DistExponential, DistLogNormal, DistFixed:
	default:
		return fmt.Errorf("unknown trip_distribution %q; valid: exponential, lognormal, fixed", c.TripDistribution)
	}
	switch c.ReplenishMode {
	case ReplenishPoisson, ReplenishFixed:
	default:
		return fmt.Errorf("unknown replenish_mode %q; valid: poisson, fixed", c.ReplenishMode)
	}
	switch c.DispatchPolicy {
	case DispatchFull, DispatchDemand:
	default:
		return fmt.Errorf("unknown dispatch_policy %q; valid: full, demand", c.DispatchPolicy)
	}
	return nil
}
