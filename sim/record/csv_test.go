package record

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
)

func sampleSeries(t *testing.T) *Series {
	t.Helper()
	s := NewSeries()

	id := s.OpenTrip(0, 0)
	s.AddEvent(Event{Day: 0, AssetID: 0, Type: EventDispatch})
	if err := s.Append(DailyRecord{Day: 0, InTransit: 1, Dispatched: 1}); err != nil {
		t.Fatal(err)
	}

	if err := s.CloseTrip(id, 1, TripLost); err != nil {
		t.Fatal(err)
	}
	s.AddEvent(Event{Day: 1, AssetID: 0, Type: EventLoss})
	if err := s.Append(DailyRecord{Day: 1, Lost: 1, LostToday: 1}); err != nil {
		t.Fatal(err)
	}
	return s
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return rows
}

func TestWriteCSV_ProducesAllTables(t *testing.T) {
	dir := t.TempDir()
	s := sampleSeries(t)

	if err := WriteCSV(s, dir); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	daily := readCSV(t, filepath.Join(dir, DailyCSV))
	if len(daily) != 3 {
		t.Fatalf("daily rows = %d, want header + 2", len(daily))
	}
	if daily[0][0] != "day" || daily[0][3] != "lost" {
		t.Errorf("unexpected daily header: %v", daily[0])
	}
	if daily[2][0] != "1" || daily[2][3] != "1" {
		t.Errorf("day 1 row = %v", daily[2])
	}

	events := readCSV(t, filepath.Join(dir, EventsCSV))
	if len(events) != 3 {
		t.Fatalf("event rows = %d, want header + 2", len(events))
	}
	if events[2][2] != string(EventLoss) {
		t.Errorf("second event = %v, want loss", events[2])
	}

	trips := readCSV(t, filepath.Join(dir, TripsCSV))
	if len(trips) != 2 {
		t.Fatalf("trip rows = %d, want header + 1", len(trips))
	}
	if trips[1][4] != string(TripLost) {
		t.Errorf("trip row = %v, want lost outcome", trips[1])
	}
}

func TestWriteCSV_CreatesTargetDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")

	if err := WriteCSV(NewSeries(), dir); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	// An empty series still yields header-only tables.
	daily := readCSV(t, filepath.Join(dir, DailyCSV))
	if len(daily) != 1 {
		t.Errorf("daily rows = %d, want header only", len(daily))
	}
}
