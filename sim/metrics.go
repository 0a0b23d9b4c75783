// Aggregates run-level statistics for final reporting.

package sim

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/fleetgen/fleetgen/sim/record"
)

// Summary aggregates statistics about a finished run for final reporting.
// Useful for eyeballing whether a parameter sweep behaves before handing the
// tables to the estimation notebook.
type Summary struct {
	RunID string

	TotalTrips    int // trips opened, resolved or not
	ResolvedTrips int // trips that ended in a return or a loss

	TotalDispatches  int
	TotalReturns     int
	TotalLosses      int
	TotalReplenished int

	FinalInPool    int
	FinalInTransit int
	FinalLost      int

	ObservedShrinkage float64 // losses / resolved trips
	MeanTripLength    float64 // mean length of resolved trips, in days
}

// NewSummary computes the summary from a finished series.
func NewSummary(runID string, s *record.Series) *Summary {
	sm := &Summary{RunID: runID}

	for _, d := range s.Days() {
		sm.TotalDispatches += d.Dispatched
		sm.TotalReturns += d.Returned
		sm.TotalLosses += d.LostToday
		sm.TotalReplenished += d.Replenished
	}
	if days := s.Days(); len(days) > 0 {
		last := days[len(days)-1]
		sm.FinalInPool = last.InPool
		sm.FinalInTransit = last.InTransit
		sm.FinalLost = last.Lost
	}

	lengths := make([]float64, 0, len(s.Trips()))
	for _, t := range s.Trips() {
		sm.TotalTrips++
		if t.Outcome == record.TripOpen {
			continue
		}
		sm.ResolvedTrips++
		lengths = append(lengths, float64(t.EndDay-t.StartDay))
	}
	if sm.ResolvedTrips > 0 {
		sm.ObservedShrinkage = float64(sm.TotalLosses) / float64(sm.ResolvedTrips)
		sm.MeanTripLength = stat.Mean(lengths, nil)
	}
	return sm
}

// Print displays the summary at the end of a generation run.
func (sm *Summary) Print() {
	fmt.Println("=== Generation Summary ===")
	fmt.Printf("Run ID               : %s\n", sm.RunID)
	fmt.Printf("Total trips          : %d (%d resolved)\n", sm.TotalTrips, sm.ResolvedTrips)
	fmt.Printf("Assets lost          : %d\n", sm.TotalLosses)
	fmt.Printf("Assets replenished   : %d\n", sm.TotalReplenished)
	fmt.Printf("Final pool / transit : %d / %d\n", sm.FinalInPool, sm.FinalInTransit)
	if sm.ResolvedTrips > 0 {
		fmt.Printf("Observed shrinkage   : %.2f%%\n", 100*sm.ObservedShrinkage)
		fmt.Printf("Mean trip length     : %.2f days\n", sm.MeanTripLength)
	}
}
