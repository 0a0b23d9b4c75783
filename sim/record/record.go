// Package record holds the output data types of a generation run and the
// sinks that persist them. It has no dependencies on sim/ — pure data.
package record

// EventType labels one per-asset lifecycle event.
type EventType string

const (
	// EventDispatch: an asset left the pool on a new trip.
	EventDispatch EventType = "dispatch"
	// EventReturn: a trip resolved with the asset back in the pool.
	EventReturn EventType = "return"
	// EventLoss: a trip resolved with the asset permanently lost.
	EventLoss EventType = "loss"
	// EventReplenish: a brand-new asset entered the fleet.
	EventReplenish EventType = "replenish"
)

// Event is one row of the raw event stream.
type Event struct {
	Day     int
	AssetID int
	Type    EventType
}

// DailyRecord is one row of the daily output series: end-of-day status
// tallies plus the counts of each event type that occurred that day.
// Lost is cumulative — the lost status is terminal, so the end-of-day tally
// of lost assets only ever grows.
type DailyRecord struct {
	Day         int
	InPool      int
	InTransit   int
	Lost        int
	Dispatched  int
	Returned    int
	LostToday   int
	Replenished int
	Demand      int // dispatch cap for the day; 0 under the full policy
}

// TripOutcome labels how (or whether) a trip ended.
type TripOutcome string

const (
	TripReturned TripOutcome = "returned"
	TripLost     TripOutcome = "lost"
	TripOpen     TripOutcome = "open"
)

// TripRecord is one row of the trip registry. EndDay is -1 while the trip
// is still open at the end of the horizon.
type TripRecord struct {
	TripID   int
	AssetID  int
	StartDay int
	EndDay   int
	Outcome  TripOutcome
}

// RunMeta identifies a stored run and the parameters that produced it.
type RunMeta struct {
	RunID         string
	NAssets       int
	TripDuration  float64
	ShrinkageRate float64
	ReplenishRate float64
	Days          int
	Seed          int64
}
