// sim/simulator.go
package sim

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/fleetgen/fleetgen/sim/record"
)

// Simulator is the daily transition engine. It owns the fleet, the clock and
// the random source for one run; nothing is shared across runs, so parallel
// invocations need no coordination.
//
// Each day executes four passes in fixed order:
//  1. resolve every trip due today (loss roll, then return or lose)
//  2. dispatch every eligible pool asset (optionally capped by demand)
//  3. replenish the fleet with brand-new assets, eligible from tomorrow
//  4. tally end-of-day statuses and event counts into a DailyRecord
//
// Assets are visited in ID order in every pass and all draws come from
// per-subsystem streams of one master seed, so a (Config, seed) pair
// reproduces the run byte for byte.
type Simulator struct {
	Config Config
	RunID  string
	Clock  int // day index of the next step; Config.Days when the run is done
	Fleet  *Fleet
	Series *record.Series

	rng       *PartitionedRNG
	durations DurationSampler
	replenish CountSampler
	demand    []int // per-day dispatch caps; nil under the full policy

	openTrips map[int]int // asset ID → open trip ID in the registry
}

// NewSimulator validates cfg and prepares a run. Configuration errors are
// reported here, before any simulation state exists.
func NewSimulator(cfg Config) (*Simulator, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Simulator{
		Config:    cfg,
		RunID:     uuid.NewString(),
		Fleet:     NewFleet(cfg.NAssets),
		Series:    record.NewSeries(),
		rng:       NewPartitionedRNG(cfg.Seed),
		durations: NewDurationSampler(cfg),
		replenish: NewCountSampler(cfg),
		openTrips: make(map[int]int),
	}
	if cfg.DispatchPolicy == DispatchDemand {
		s.demand = DemandSeries(cfg.Days, s.rng.ForSubsystem(SubsystemDemand))
	}
	return s, nil
}

// Run executes the full horizon and returns the finished series. With
// Days == 0 it returns an empty series immediately. A non-nil error means an
// engine invariant was violated; the partial series should be discarded.
func (s *Simulator) Run() (*record.Series, error) {
	for day := 0; day < s.Config.Days; day++ {
		rec, err := s.step(day)
		if err != nil {
			return nil, err
		}
		if err := s.Series.Append(rec); err != nil {
			return nil, err
		}
		s.Clock = day + 1
	}
	logrus.Infof("run %s finished: %d days, %d assets ever created, %d events",
		s.RunID, s.Series.Len(), s.Fleet.Size(), len(s.Series.Events()))
	return s.Series, nil
}

// step advances the whole fleet by exactly one day.
func (s *Simulator) step(day int) (record.DailyRecord, error) {
	rec := record.DailyRecord{Day: day}
	tripsRNG := s.rng.ForSubsystem(SubsystemTrips)
	lossRNG := s.rng.ForSubsystem(SubsystemShrinkage)

	// Trip completion pass: resolve every trip due by today.
	for _, a := range s.Fleet.Assets() {
		if a.Status != StatusInTransit || a.TripDueDay > day {
			continue
		}
		tripID, ok := s.openTrips[a.ID]
		if !ok {
			return rec, &InvariantError{Op: "resolve_trip", AssetID: a.ID, Status: a.Status}
		}
		delete(s.openTrips, a.ID)

		if lossRNG.Float64() < s.Config.ShrinkageRate {
			if err := s.Fleet.Lose(a.ID); err != nil {
				return rec, err
			}
			if err := s.Series.CloseTrip(tripID, day, record.TripLost); err != nil {
				return rec, err
			}
			s.Series.AddEvent(record.Event{Day: day, AssetID: a.ID, Type: record.EventLoss})
			rec.LostToday++
		} else {
			if err := s.Fleet.CompleteTrip(a.ID, day, s.Config.RestDays); err != nil {
				return rec, err
			}
			if err := s.Series.CloseTrip(tripID, day, record.TripReturned); err != nil {
				return rec, err
			}
			s.Series.AddEvent(record.Event{Day: day, AssetID: a.ID, Type: record.EventReturn})
			rec.Returned++
		}
	}

	// Dispatch pass: send out every eligible pool asset, lowest ID first.
	// Under the demand policy at most demand(day) assets go out.
	budget := -1
	if s.demand != nil {
		budget = s.demand[day]
		rec.Demand = budget
	}
	for _, a := range s.Fleet.Assets() {
		if budget == 0 {
			break
		}
		if a.Status != StatusInPool || a.AvailableFrom > day {
			continue
		}
		dur := s.durations.Sample(tripsRNG)
		if err := s.Fleet.Dispatch(a.ID, day, day+dur); err != nil {
			return rec, err
		}
		s.openTrips[a.ID] = s.Series.OpenTrip(a.ID, day)
		s.Series.AddEvent(record.Event{Day: day, AssetID: a.ID, Type: record.EventDispatch})
		rec.Dispatched++
		if budget > 0 {
			budget--
		}
	}

	// Replenishment pass: brand-new assets, dispatch-eligible tomorrow.
	n := s.replenish.Sample(s.rng.ForSubsystem(SubsystemReplenish))
	for i := 0; i < n; i++ {
		a := s.Fleet.Replenish(day)
		s.Series.AddEvent(record.Event{Day: day, AssetID: a.ID, Type: record.EventReplenish})
		rec.Replenished++
	}

	// End-of-day tally.
	rec.InPool, rec.InTransit, rec.Lost = s.Fleet.CountByStatus()
	logrus.Debugf("day %d: pool=%d transit=%d lost=%d dispatched=%d returned=%d lost_today=%d replenished=%d",
		day, rec.InPool, rec.InTransit, rec.Lost, rec.Dispatched, rec.Returned, rec.LostToday, rec.Replenished)
	return rec, nil
}

// Summary builds the end-of-run summary for this run.
func (s *Simulator) Summary() *Summary {
	return NewSummary(s.RunID, s.Series)
}

// Meta returns the persistence metadata for this run.
func (s *Simulator) Meta() record.RunMeta {
	return record.RunMeta{
		RunID:         s.RunID,
		NAssets:       s.Config.NAssets,
		TripDuration:  s.Config.TripDuration,
		ShrinkageRate: s.Config.ShrinkageRate,
		ReplenishRate: s.Config.ReplenishRate,
		Days:          s.Config.Days,
		Seed:          s.Config.Seed,
	}
}
