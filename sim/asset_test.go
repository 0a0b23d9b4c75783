package sim

import (
	"errors"
	"testing"
)

func TestNewFleet_AllInPool(t *testing.T) {
	f := NewFleet(5)

	if f.Size() != 5 {
		t.Fatalf("Size() = %d, want 5", f.Size())
	}
	for i, a := range f.Assets() {
		if a.ID != i {
			t.Errorf("asset %d has ID %d", i, a.ID)
		}
		if a.Status != StatusInPool {
			t.Errorf("asset %d status = %s, want %s", i, a.Status, StatusInPool)
		}
		if a.AvailableFrom != 0 {
			t.Errorf("asset %d AvailableFrom = %d, want 0", i, a.AvailableFrom)
		}
	}
}

func TestFleet_DispatchReturnCycle(t *testing.T) {
	f := NewFleet(1)

	if err := f.Dispatch(0, 3, 10); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	a := f.Get(0)
	if a.Status != StatusInTransit || a.TripStartDay != 3 || a.TripDueDay != 10 {
		t.Fatalf("after dispatch: %+v", a)
	}

	if err := f.CompleteTrip(0, 10, 0); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if a.Status != StatusInPool {
		t.Errorf("after return status = %s, want %s", a.Status, StatusInPool)
	}
	if a.AvailableFrom != 10 {
		t.Errorf("AvailableFrom = %d, want 10 (same-day redispatch)", a.AvailableFrom)
	}
}

func TestFleet_CompleteTripAppliesRestDays(t *testing.T) {
	f := NewFleet(1)
	if err := f.Dispatch(0, 0, 4); err != nil {
		t.Fatal(err)
	}
	if err := f.CompleteTrip(0, 4, 3); err != nil {
		t.Fatal(err)
	}
	if got := f.Get(0).AvailableFrom; got != 7 {
		t.Errorf("AvailableFrom = %d, want 7", got)
	}
}

func TestFleet_LoseIsTerminal(t *testing.T) {
	f := NewFleet(1)
	if err := f.Dispatch(0, 0, 5); err != nil {
		t.Fatal(err)
	}
	if err := f.Lose(0); err != nil {
		t.Fatal(err)
	}
	if f.Get(0).Status != StatusLost {
		t.Fatalf("status = %s, want %s", f.Get(0).Status, StatusLost)
	}

	// No transition leaves the lost status
	var invErr *InvariantError
	if err := f.Dispatch(0, 1, 6); !errors.As(err, &invErr) {
		t.Errorf("dispatch of lost asset: got %v, want InvariantError", err)
	}
	if err := f.CompleteTrip(0, 1, 0); !errors.As(err, &invErr) {
		t.Errorf("complete of lost asset: got %v, want InvariantError", err)
	}
	if err := f.Lose(0); !errors.As(err, &invErr) {
		t.Errorf("double lose: got %v, want InvariantError", err)
	}
}

func TestFleet_IllegalTransitions(t *testing.T) {
	f := NewFleet(2)

	var invErr *InvariantError
	if err := f.CompleteTrip(0, 0, 0); !errors.As(err, &invErr) {
		t.Errorf("complete of pooled asset: got %v, want InvariantError", err)
	}
	if err := f.Lose(0); !errors.As(err, &invErr) {
		t.Errorf("lose of pooled asset: got %v, want InvariantError", err)
	}

	if err := f.Dispatch(0, 0, 2); err != nil {
		t.Fatal(err)
	}
	if err := f.Dispatch(0, 0, 2); !errors.As(err, &invErr) {
		t.Errorf("double dispatch: got %v, want InvariantError", err)
	}

	if err := f.Dispatch(99, 0, 2); !errors.As(err, &invErr) {
		t.Errorf("dispatch of unknown ID: got %v, want InvariantError", err)
	}
}

func TestFleet_ReplenishAssignsFreshIDs(t *testing.T) {
	f := NewFleet(3)

	a := f.Replenish(10)
	if a.ID != 3 {
		t.Errorf("replenished ID = %d, want 3", a.ID)
	}
	if a.CreatedDay != 10 {
		t.Errorf("CreatedDay = %d, want 10", a.CreatedDay)
	}
	if a.AvailableFrom != 11 {
		t.Errorf("AvailableFrom = %d, want 11 (next-day eligibility)", a.AvailableFrom)
	}

	b := f.Replenish(10)
	if b.ID != 4 {
		t.Errorf("second replenished ID = %d, want 4", b.ID)
	}
	if f.Size() != 5 {
		t.Errorf("Size() = %d, want 5", f.Size())
	}
}

func TestFleet_CountByStatus(t *testing.T) {
	f := NewFleet(4)
	if err := f.Dispatch(0, 0, 3); err != nil {
		t.Fatal(err)
	}
	if err := f.Dispatch(1, 0, 3); err != nil {
		t.Fatal(err)
	}
	if err := f.Lose(1); err != nil {
		t.Fatal(err)
	}

	inPool, inTransit, lost := f.CountByStatus()
	if inPool != 2 || inTransit != 1 || lost != 1 {
		t.Errorf("CountByStatus() = (%d, %d, %d), want (2, 1, 1)", inPool, inTransit, lost)
	}
}
