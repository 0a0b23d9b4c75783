package sim

import (
	"math"
	"math/rand"
)

// DurationSampler generates whole-day trip durations.
type DurationSampler interface {
	// Sample returns a trip duration in days (>= 1).
	Sample(rng *rand.Rand) int
}

// ExponentialDuration produces exponentially-distributed trip lengths
// with the configured mean.
type ExponentialDuration struct {
	mean float64
}

func (s *ExponentialDuration) Sample(rng *rand.Rand) int {
	return clampDays(rng.ExpFloat64() * s.mean)
}

// LogNormalDuration produces log-normally distributed trip lengths with the
// configured mean and a standard deviation of mean/2. The underlying mu and
// sigma are solved from the moment equations
//
//	mean = exp(mu + sigma²/2)
//	var  = (exp(sigma²) - 1) · exp(2mu + sigma²)
//
// so the configured mean is the actual distribution mean, not ln-space mu.
type LogNormalDuration struct {
	mu    float64
	sigma float64
}

// NewLogNormalDuration builds the sampler for the given distribution mean.
func NewLogNormalDuration(mean float64) *LogNormalDuration {
	sigma2 := math.Log(1.25) // 1 + (std/mean)² with std = mean/2
	return &LogNormalDuration{
		mu:    math.Log(mean) - sigma2/2,
		sigma: math.Sqrt(sigma2),
	}
}

func (s *LogNormalDuration) Sample(rng *rand.Rand) int {
	return clampDays(math.Exp(s.mu + s.sigma*rng.NormFloat64()))
}

// FixedDuration always returns the same trip length (zero variance).
type FixedDuration struct {
	days int
}

func (s *FixedDuration) Sample(_ *rand.Rand) int {
	if s.days < 1 {
		return 1
	}
	return s.days
}

// clampDays rounds a sampled duration to whole days, guarding against
// non-finite draws and enforcing the strictly-positive trip invariant.
func clampDays(val float64) int {
	if math.IsInf(val, 0) || math.IsNaN(val) {
		return 1
	}
	d := int(math.Round(val))
	if d < 1 {
		return 1
	}
	return d
}

// NewDurationSampler builds the trip-duration sampler for a validated Config.
func NewDurationSampler(cfg Config) DurationSampler {
	switch cfg.TripDistribution {
	case DistLogNormal:
		return NewLogNormalDuration(cfg.TripDuration)
	case DistFixed:
		return &FixedDuration{days: clampDays(cfg.TripDuration)}
	default:
		return &ExponentialDuration{mean: cfg.TripDuration}
	}
}

// CountSampler generates the number of assets added by one replenishment pass.
type CountSampler interface {
	// Sample returns a non-negative daily count.
	Sample(rng *rand.Rand) int
}

// PoissonCount draws daily counts from Poisson(rate) using Knuth's
// product-of-uniforms method, with a Gaussian approximation for large rates
// where exp(-rate) underflows.
type PoissonCount struct {
	rate float64
}

func (s *PoissonCount) Sample(rng *rand.Rand) int {
	if s.rate <= 0 {
		return 0
	}
	if s.rate > 500 {
		n := int(math.Round(s.rate + math.Sqrt(s.rate)*rng.NormFloat64()))
		if n < 0 {
			return 0
		}
		return n
	}
	limit := math.Exp(-s.rate)
	k := 0
	p := 1.0
	for {
		p *= rng.Float64()
		if p <= limit {
			return k
		}
		k++
	}
}

// FixedCount adds the same whole number of assets every day.
type FixedCount struct {
	count int
}

func (s *FixedCount) Sample(_ *rand.Rand) int {
	return s.count
}

// NewCountSampler builds the replenishment sampler for a validated Config.
func NewCountSampler(cfg Config) CountSampler {
	if cfg.ReplenishMode == ReplenishFixed {
		return &FixedCount{count: int(cfg.ReplenishRate)}
	}
	return &PoissonCount{rate: cfg.ReplenishRate}
}
