// Defines the Asset record that models a single reusable unit of equipment,
// and the Fleet that owns every asset created during a run.

package sim

import (
	"fmt"
)

// AssetStatus represents the lifecycle stage of an asset.
// Legal transitions: in_pool → in_transit → {in_pool, lost}.
// Lost is terminal; replenishment creates a brand-new identity instead of
// reviving a lost asset.
type AssetStatus string

const (
	StatusInPool    AssetStatus = "in_pool"
	StatusInTransit AssetStatus = "in_transit"
	StatusLost      AssetStatus = "lost"
)

// Asset is one unit of reusable equipment. IDs are assigned densely from 0
// and are stable for the asset's lifetime within a run.
type Asset struct {
	ID     int
	Status AssetStatus

	CreatedDay int // day the asset entered the fleet (0 for the initial fleet)

	TripStartDay int // day the current trip began; valid only while in transit
	TripDueDay   int // day the current trip resolves; valid only while in transit

	// AvailableFrom is the first day this asset may be dispatched. It
	// enforces both the next-day eligibility of replenished assets and the
	// optional rest period after a return.
	AvailableFrom int
}

func (a Asset) String() string {
	return fmt.Sprintf("Asset(ID: %d, Status: %s, AvailableFrom: %d)", a.ID, a.Status, a.AvailableFrom)
}

// InvariantError reports an illegal state transition attempt. It indicates a
// defect in the engine, not bad input, and must halt the run.
type InvariantError struct {
	Op      string
	AssetID int
	Status  AssetStatus
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("invariant violation: %s on asset %d in status %s", e.Op, e.AssetID, e.Status)
}

// Fleet owns every asset ever created in a run, lost ones included so that
// cumulative accounting reads straight off the status tallies. Assets are
// stored in a slice indexed by ID; iteration order is therefore ID order,
// which the engine relies on for reproducibility.
type Fleet struct {
	assets []*Asset
}

// NewFleet creates nAssets assets, all in the pool and dispatch-eligible on
// day 0, with IDs 0..nAssets-1.
func NewFleet(nAssets int) *Fleet {
	f := &Fleet{assets: make([]*Asset, 0, nAssets)}
	for i := 0; i < nAssets; i++ {
		f.assets = append(f.assets, &Asset{ID: i, Status: StatusInPool})
	}
	return f
}

// Size returns the number of assets ever created, lost ones included.
func (f *Fleet) Size() int {
	return len(f.assets)
}

// Get returns the asset with the given ID, or nil if it does not exist.
func (f *Fleet) Get(id int) *Asset {
	if id < 0 || id >= len(f.assets) {
		return nil
	}
	return f.assets[id]
}

// Assets returns the backing slice in ID order. Callers must not modify it.
func (f *Fleet) Assets() []*Asset {
	return f.assets
}

// Dispatch moves an in-pool asset out on a trip starting on day and due to
// resolve on dueDay.
func (f *Fleet) Dispatch(id, day, dueDay int) error {
	a := f.Get(id)
	if a == nil || a.Status != StatusInPool {
		return &InvariantError{Op: "dispatch", AssetID: id, Status: statusOf(a)}
	}
	a.Status = StatusInTransit
	a.TripStartDay = day
	a.TripDueDay = dueDay
	return nil
}

// CompleteTrip returns an in-transit asset to the pool on day. The asset
// becomes dispatch-eligible again after restDays idle days (0 = same day).
func (f *Fleet) CompleteTrip(id, day, restDays int) error {
	a := f.Get(id)
	if a == nil || a.Status != StatusInTransit {
		return &InvariantError{Op: "complete_trip", AssetID: id, Status: statusOf(a)}
	}
	a.Status = StatusInPool
	a.AvailableFrom = day + restDays
	return nil
}

// Lose marks an in-transit asset as lost. Terminal.
func (f *Fleet) Lose(id int) error {
	a := f.Get(id)
	if a == nil || a.Status != StatusInTransit {
		return &InvariantError{Op: "lose", AssetID: id, Status: statusOf(a)}
	}
	a.Status = StatusLost
	return nil
}

// Replenish creates a brand-new in-pool asset on day. The new asset is
// dispatch-eligible from the following day.
func (f *Fleet) Replenish(day int) *Asset {
	a := &Asset{
		ID:            len(f.assets),
		Status:        StatusInPool,
		CreatedDay:    day,
		AvailableFrom: day + 1,
	}
	f.assets = append(f.assets, a)
	return a
}

// CountByStatus tallies the fleet by lifecycle stage.
func (f *Fleet) CountByStatus() (inPool, inTransit, lost int) {
	for _, a := range f.assets {
		switch a.Status {
		case StatusInPool:
			inPool++
		case StatusInTransit:
			inTransit++
		case StatusLost:
			lost++
		}
	}
	return inPool, inTransit, lost
}

// statusOf tolerates nil for error reporting on unknown IDs.
func statusOf(a *Asset) AssetStatus {
	if a == nil {
		return "unknown"
	}
	return a.Status
}
