package record

import "fmt"

// Series accumulates the outputs of one run: the daily aggregate table, the
// raw event stream, and the trip registry. Daily records are append-only and
// must arrive in ascending day order without gaps or duplicates; once
// appended, a record is never mutated.
type Series struct {
	days   []DailyRecord
	events []Event
	trips  []TripRecord
}

// NewSeries creates an empty Series.
func NewSeries() *Series {
	return &Series{
		days:   make([]DailyRecord, 0),
		events: make([]Event, 0),
		trips:  make([]TripRecord, 0),
	}
}

// Append adds the next daily record. The record's day must be exactly the
// number of days already recorded, which enforces ascending order with no
// gaps and no duplicates.
func (s *Series) Append(rec DailyRecord) error {
	if rec.Day != len(s.days) {
		return fmt.Errorf("daily record out of order: got day %d, want day %d", rec.Day, len(s.days))
	}
	s.days = append(s.days, rec)
	return nil
}

// AddEvent appends one event to the raw event stream.
func (s *Series) AddEvent(ev Event) {
	s.events = append(s.events, ev)
}

// OpenTrip registers a new trip starting on startDay and returns its trip ID.
// Trip IDs are assigned monotonically from 0.
func (s *Series) OpenTrip(assetID, startDay int) int {
	id := len(s.trips)
	s.trips = append(s.trips, TripRecord{
		TripID:   id,
		AssetID:  assetID,
		StartDay: startDay,
		EndDay:   -1,
		Outcome:  TripOpen,
	})
	return id
}

// CloseTrip resolves an open trip on endDay with the given outcome.
func (s *Series) CloseTrip(tripID, endDay int, outcome TripOutcome) error {
	if tripID < 0 || tripID >= len(s.trips) {
		return fmt.Errorf("close of unknown trip %d", tripID)
	}
	t := &s.trips[tripID]
	if t.Outcome != TripOpen {
		return fmt.Errorf("close of already-resolved trip %d (%s)", tripID, t.Outcome)
	}
	t.EndDay = endDay
	t.Outcome = outcome
	return nil
}

// Len returns the number of daily records.
func (s *Series) Len() int {
	return len(s.days)
}

// Days returns the daily series in day order. Callers must not modify it.
func (s *Series) Days() []DailyRecord {
	return s.days
}

// Events returns the raw event stream in emission order. Callers must not
// modify it.
func (s *Series) Events() []Event {
	return s.events
}

// Trips returns the trip registry in trip-ID order. Callers must not
// modify it.
func (s *Series) Trips() []TripRecord {
	return s.trips
}
