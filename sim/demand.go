package sim

import (
	"math"
	"math/rand"
)

// DemandSeries produces a synthetic daily dispatch demand with weekly,
// monthly and yearly seasonal terms plus a slow upward trend. Amplitudes are
// redrawn per day, phases once per run. Used only by the demand dispatch
// policy; the full policy ignores demand entirely.
func DemandSeries(days int, rng *rand.Rand) []int {
	const scale = 0.3

	weeklyPhase := 2 * math.Pi * rng.Float64()
	monthlyPhase := 2 * math.Pi * rng.Float64()
	yearlyPhase := 2 * math.Pi * rng.Float64()

	out := make([]int, days)
	for t := 0; t < days; t++ {
		weeklyAmp := scale * float64(rng.Intn(3))
		monthlyAmp := scale * float64(2+rng.Intn(3))
		yearlyAmp := scale * float64(2+rng.Intn(18))

		ft := float64(t)
		weekly := weeklyAmp * math.Pow(math.Sin(2*math.Pi*ft/7+weeklyPhase), 2)
		monthly := monthlyAmp * math.Sin(2*math.Pi*ft/30+monthlyPhase)
		yearly := yearlyAmp * math.Sin(2*math.Pi*ft/365+yearlyPhase)
		trend := scale * (25 + ft/100)

		d := int(math.Round(trend + weekly + monthly + yearly))
		if d < 0 {
			d = 0
		}
		out[t] = d
	}
	return out
}
