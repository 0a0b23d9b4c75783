package record

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore persists run outputs to a SQLite database. Multiple runs may
// share one database; every row carries the run ID.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the SQLite database and runs migrations.
func OpenSQLite(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so notebook readers don't block a concurrent generation.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	st := &SQLiteStore{db: db}
	if err := st.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return st, nil
}

func (st *SQLiteStore) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			run_id         TEXT PRIMARY KEY,
			created_at     INTEGER NOT NULL,
			n_assets       INTEGER NOT NULL,
			trip_duration  REAL    NOT NULL,
			shrinkage_rate REAL    NOT NULL,
			replenish_rate REAL    NOT NULL,
			days           INTEGER NOT NULL,
			seed           INTEGER NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS daily_reports (
			run_id      TEXT    NOT NULL,
			day         INTEGER NOT NULL,
			in_pool     INTEGER NOT NULL,
			in_transit  INTEGER NOT NULL,
			lost        INTEGER NOT NULL,
			dispatched  INTEGER NOT NULL,
			returned    INTEGER NOT NULL,
			lost_today  INTEGER NOT NULL,
			replenished INTEGER NOT NULL,
			demand      INTEGER NOT NULL,
			PRIMARY KEY (run_id, day)
		)`,

		`CREATE TABLE IF NOT EXISTS events (
			run_id   TEXT    NOT NULL,
			day      INTEGER NOT NULL,
			asset_id INTEGER NOT NULL,
			event    TEXT    NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_events_run_day ON events(run_id, day)`,

		`CREATE TABLE IF NOT EXISTS trips (
			run_id    TEXT    NOT NULL,
			trip_id   INTEGER NOT NULL,
			asset_id  INTEGER NOT NULL,
			start_day INTEGER NOT NULL,
			end_day   INTEGER NOT NULL,
			outcome   TEXT    NOT NULL,
			PRIMARY KEY (run_id, trip_id)
		)`,
	}
	for _, stmt := range stmts {
		if _, err := st.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// SaveRun writes the run row plus every daily, event and trip row in a
// single transaction.
func (st *SQLiteStore) SaveRun(meta RunMeta, s *Series) error {
	tx, err := st.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`INSERT INTO runs (run_id, created_at, n_assets, trip_duration, shrinkage_rate, replenish_rate, days, seed)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		meta.RunID, time.Now().Unix(), meta.NAssets, meta.TripDuration,
		meta.ShrinkageRate, meta.ReplenishRate, meta.Days, meta.Seed,
	); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	dailyStmt, err := tx.Prepare(
		`INSERT INTO daily_reports (run_id, day, in_pool, in_transit, lost, dispatched, returned, lost_today, replenished, demand)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare daily insert: %w", err)
	}
	defer dailyStmt.Close()
	for _, d := range s.Days() {
		if _, err := dailyStmt.Exec(meta.RunID, d.Day, d.InPool, d.InTransit, d.Lost,
			d.Dispatched, d.Returned, d.LostToday, d.Replenished, d.Demand); err != nil {
			return fmt.Errorf("insert daily day %d: %w", d.Day, err)
		}
	}

	eventStmt, err := tx.Prepare(
		`INSERT INTO events (run_id, day, asset_id, event) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare event insert: %w", err)
	}
	defer eventStmt.Close()
	for _, ev := range s.Events() {
		if _, err := eventStmt.Exec(meta.RunID, ev.Day, ev.AssetID, string(ev.Type)); err != nil {
			return fmt.Errorf("insert event: %w", err)
		}
	}

	tripStmt, err := tx.Prepare(
		`INSERT INTO trips (run_id, trip_id, asset_id, start_day, end_day, outcome)
		 VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare trip insert: %w", err)
	}
	defer tripStmt.Close()
	for _, t := range s.Trips() {
		if _, err := tripStmt.Exec(meta.RunID, t.TripID, t.AssetID, t.StartDay, t.EndDay, string(t.Outcome)); err != nil {
			return fmt.Errorf("insert trip %d: %w", t.TripID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (st *SQLiteStore) Close() error {
	return st.db.Close()
}
