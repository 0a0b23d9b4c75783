package record

import (
	"testing"
)

func TestSeries_AppendEnforcesDayOrder(t *testing.T) {
	s := NewSeries()

	if err := s.Append(DailyRecord{Day: 0}); err != nil {
		t.Fatalf("first append: %v", err)
	}
	if err := s.Append(DailyRecord{Day: 1}); err != nil {
		t.Fatalf("second append: %v", err)
	}

	// Gap
	if err := s.Append(DailyRecord{Day: 3}); err == nil {
		t.Error("expected error for day gap")
	}
	// Duplicate
	if err := s.Append(DailyRecord{Day: 1}); err == nil {
		t.Error("expected error for duplicate day")
	}
	// Still intact
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2 after rejected appends", s.Len())
	}
}

func TestSeries_TripLifecycle(t *testing.T) {
	s := NewSeries()

	id := s.OpenTrip(7, 3)
	if id != 0 {
		t.Fatalf("first trip ID = %d, want 0", id)
	}
	tr := s.Trips()[0]
	if tr.AssetID != 7 || tr.StartDay != 3 || tr.EndDay != -1 || tr.Outcome != TripOpen {
		t.Fatalf("open trip = %+v", tr)
	}

	if err := s.CloseTrip(id, 9, TripReturned); err != nil {
		t.Fatalf("close: %v", err)
	}
	tr = s.Trips()[0]
	if tr.EndDay != 9 || tr.Outcome != TripReturned {
		t.Fatalf("closed trip = %+v", tr)
	}
}

func TestSeries_CloseTripRejectsBadIDs(t *testing.T) {
	s := NewSeries()
	id := s.OpenTrip(0, 0)

	if err := s.CloseTrip(99, 1, TripLost); err == nil {
		t.Error("expected error closing unknown trip")
	}
	if err := s.CloseTrip(-1, 1, TripLost); err == nil {
		t.Error("expected error closing negative trip ID")
	}

	if err := s.CloseTrip(id, 1, TripLost); err != nil {
		t.Fatalf("first close: %v", err)
	}
	if err := s.CloseTrip(id, 2, TripReturned); err == nil {
		t.Error("expected error on double close")
	}
	// First resolution sticks
	if tr := s.Trips()[0]; tr.Outcome != TripLost || tr.EndDay != 1 {
		t.Errorf("trip mutated by rejected close: %+v", tr)
	}
}

func TestSeries_MonotonicTripIDs(t *testing.T) {
	s := NewSeries()
	for i := 0; i < 5; i++ {
		if id := s.OpenTrip(i, 0); id != i {
			t.Fatalf("trip %d got ID %d", i, id)
		}
	}
}

func TestSeries_EventsPreserveEmissionOrder(t *testing.T) {
	s := NewSeries()
	s.AddEvent(Event{Day: 0, AssetID: 1, Type: EventDispatch})
	s.AddEvent(Event{Day: 0, AssetID: 2, Type: EventDispatch})
	s.AddEvent(Event{Day: 1, AssetID: 1, Type: EventReturn})

	evs := s.Events()
	if len(evs) != 3 {
		t.Fatalf("len = %d, want 3", len(evs))
	}
	if evs[0].AssetID != 1 || evs[1].AssetID != 2 || evs[2].Type != EventReturn {
		t.Errorf("events out of order: %+v", evs)
	}
}
