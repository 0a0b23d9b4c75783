package record

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Output file names under the target directory.
const (
	DailyCSV  = "daily_reports.csv"
	EventsCSV = "events.csv"
	TripsCSV  = "trips.csv"
)

// WriteCSV materializes the series into three CSV tables under dir:
// daily_reports.csv (one row per day), events.csv (one row per event) and
// trips.csv (one row per trip). The directory is created if missing. Column
// identities are stable; downstream consumers address them by name.
func WriteCSV(s *Series, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating target dir: %w", err)
	}
	if err := writeDailyCSV(s.Days(), filepath.Join(dir, DailyCSV)); err != nil {
		return err
	}
	if err := writeEventsCSV(s.Events(), filepath.Join(dir, EventsCSV)); err != nil {
		return err
	}
	return writeTripsCSV(s.Trips(), filepath.Join(dir, TripsCSV))
}

func writeDailyCSV(days []DailyRecord, path string) error {
	rows := make([][]string, 0, len(days)+1)
	rows = append(rows, []string{
		"day", "in_pool", "in_transit", "lost",
		"dispatched", "returned", "lost_today", "replenished", "demand",
	})
	for _, d := range days {
		rows = append(rows, []string{
			strconv.Itoa(d.Day),
			strconv.Itoa(d.InPool),
			strconv.Itoa(d.InTransit),
			strconv.Itoa(d.Lost),
			strconv.Itoa(d.Dispatched),
			strconv.Itoa(d.Returned),
			strconv.Itoa(d.LostToday),
			strconv.Itoa(d.Replenished),
			strconv.Itoa(d.Demand),
		})
	}
	return writeCSVFile(path, rows)
}

func writeEventsCSV(events []Event, path string) error {
	rows := make([][]string, 0, len(events)+1)
	rows = append(rows, []string{"day", "asset_id", "event"})
	for _, ev := range events {
		rows = append(rows, []string{
			strconv.Itoa(ev.Day),
			strconv.Itoa(ev.AssetID),
			string(ev.Type),
		})
	}
	return writeCSVFile(path, rows)
}

func writeTripsCSV(trips []TripRecord, path string) error {
	rows := make([][]string, 0, len(trips)+1)
	rows = append(rows, []string{"trip_id", "asset_id", "start_day", "end_day", "outcome"})
	for _, t := range trips {
		rows = append(rows, []string{
			strconv.Itoa(t.TripID),
			strconv.Itoa(t.AssetID),
			strconv.Itoa(t.StartDay),
			strconv.Itoa(t.EndDay),
			string(t.Outcome),
		})
	}
	return writeCSVFile(path, rows)
}

func writeCSVFile(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
