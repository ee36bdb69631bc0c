// Package catalogdb persists element sets and screening results in SQLite.
package catalogdb

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/orbitops-data/orbitops/internal/probability"
	"github.com/orbitops-data/orbitops/internal/tle"
)

// DB wraps the SQLite handle with catalog-specific operations.
type DB struct {
	*sql.DB
}

// Open opens (or creates) the catalog database at path. Call MigrateUp to
// bring the schema current before use.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog database: %w", err)
	}
	// SQLite handles one writer; the store mutex upstream serializes writes
	// anyway, so a single connection avoids SQLITE_BUSY churn.
	db.SetMaxOpenConns(1)
	return &DB{db}, nil
}

// UpsertElements records an element set, keeping the later epoch on catalog
// number collisions (the same rule the in-memory merge applies). Returns
// the number of rows inserted or replaced.
func (db *DB) UpsertElements(records []tle.TLE, source string) (int, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning element upsert: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO elements (
			catalog_number, name, intl_designator, epoch_jd,
			inclination_rad, raan_rad, eccentricity, arg_perigee_rad,
			mean_anomaly_rad, mean_motion_rad_min, bstar, source
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(catalog_number) DO UPDATE SET
			name = excluded.name,
			intl_designator = excluded.intl_designator,
			epoch_jd = excluded.epoch_jd,
			inclination_rad = excluded.inclination_rad,
			raan_rad = excluded.raan_rad,
			eccentricity = excluded.eccentricity,
			arg_perigee_rad = excluded.arg_perigee_rad,
			mean_anomaly_rad = excluded.mean_anomaly_rad,
			mean_motion_rad_min = excluded.mean_motion_rad_min,
			bstar = excluded.bstar,
			source = excluded.source
		WHERE excluded.epoch_jd > elements.epoch_jd`)
	if err != nil {
		return 0, fmt.Errorf("preparing element upsert: %w", err)
	}
	defer stmt.Close()

	count := 0
	for _, rec := range records {
		res, err := stmt.Exec(
			rec.CatalogNumber, rec.Name, rec.IntlDesignator, rec.EpochJD,
			rec.Inclination, rec.RAAN, rec.Eccentricity, rec.ArgPerigee,
			rec.MeanAnomaly, rec.MeanMotion, rec.Bstar, source,
		)
		if err != nil {
			return count, fmt.Errorf("upserting catalog %d: %w", rec.CatalogNumber, err)
		}
		if n, err := res.RowsAffected(); err == nil {
			count += int(n)
		}
	}

	if err := tx.Commit(); err != nil {
		return count, fmt.Errorf("committing element upsert: %w", err)
	}
	return count, nil
}

// LoadElements reads the persisted element set ordered by catalog number.
func (db *DB) LoadElements() ([]tle.TLE, error) {
	rows, err := db.Query(`
		SELECT catalog_number, name, intl_designator, epoch_jd,
		       inclination_rad, raan_rad, eccentricity, arg_perigee_rad,
		       mean_anomaly_rad, mean_motion_rad_min, bstar
		FROM elements ORDER BY catalog_number`)
	if err != nil {
		return nil, fmt.Errorf("querying elements: %w", err)
	}
	defer rows.Close()

	var out []tle.TLE
	for rows.Next() {
		var rec tle.TLE
		if err := rows.Scan(
			&rec.CatalogNumber, &rec.Name, &rec.IntlDesignator, &rec.EpochJD,
			&rec.Inclination, &rec.RAAN, &rec.Eccentricity, &rec.ArgPerigee,
			&rec.MeanAnomaly, &rec.MeanMotion, &rec.Bstar,
		); err != nil {
			return nil, fmt.Errorf("scanning element row: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// ScreeningRun summarises one archived screening pass.
type ScreeningRun struct {
	RunID       string
	TimeMinutes float64
	ThresholdKm float64
	Objects     int
	Pairs       int
	Duration    time.Duration
	CreatedAt   time.Time
}

// InsertScreeningRun archives a screening pass and its refined conjunction
// records, returning the generated run id.
func (db *DB) InsertScreeningRun(timeMinutes, thresholdKm float64, objects int, duration time.Duration, results []probability.Result) (string, error) {
	runID := uuid.NewString()

	tx, err := db.Begin()
	if err != nil {
		return "", fmt.Errorf("beginning screening archive: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`
		INSERT INTO screening_runs (run_id, time_minutes, threshold_km, objects, pairs, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?)`,
		runID, timeMinutes, thresholdKm, objects, len(results), duration.Milliseconds(),
	); err != nil {
		return "", fmt.Errorf("inserting screening run: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO conjunctions (
			run_id, id1, id2, name1, name2, time_minutes,
			miss_distance_km, relative_speed_km_s, probability,
			samples, hits, combined_radius_km
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("preparing conjunction insert: %w", err)
	}
	defer stmt.Close()

	for _, res := range results {
		if _, err := stmt.Exec(
			runID, res.ID1, res.ID2, res.Name1, res.Name2, res.TCAMinutes,
			res.MissDistanceKm, res.RelativeSpeedKmS, res.Probability,
			res.Samples, res.Hits, res.CombinedRadiusKm,
		); err != nil {
			return "", fmt.Errorf("inserting conjunction %d-%d: %w", res.ID1, res.ID2, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing screening archive: %w", err)
	}
	return runID, nil
}

// RecentRuns returns the most recent screening runs, newest first.
func (db *DB) RecentRuns(limit int) ([]ScreeningRun, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.Query(`
		SELECT run_id, time_minutes, threshold_km, objects, pairs, duration_ms, created_at
		FROM screening_runs ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying screening runs: %w", err)
	}
	defer rows.Close()

	var out []ScreeningRun
	for rows.Next() {
		var run ScreeningRun
		var durationMs int64
		if err := rows.Scan(&run.RunID, &run.TimeMinutes, &run.ThresholdKm,
			&run.Objects, &run.Pairs, &durationMs, &run.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning screening run: %w", err)
		}
		run.Duration = time.Duration(durationMs) * time.Millisecond
		out = append(out, run)
	}
	return out, rows.Err()
}

// ConjunctionsForRun returns the archived records of one screening run.
func (db *DB) ConjunctionsForRun(runID string) ([]probability.Result, error) {
	rows, err := db.Query(`
		SELECT id1, id2, name1, name2, time_minutes,
		       miss_distance_km, relative_speed_km_s, probability,
		       samples, hits, combined_radius_km
		FROM conjunctions WHERE run_id = ? ORDER BY probability DESC`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying conjunctions: %w", err)
	}
	defer rows.Close()

	var out []probability.Result
	for rows.Next() {
		var res probability.Result
		if err := rows.Scan(&res.ID1, &res.ID2, &res.Name1, &res.Name2, &res.TCAMinutes,
			&res.MissDistanceKm, &res.RelativeSpeedKmS, &res.Probability,
			&res.Samples, &res.Hits, &res.CombinedRadiusKm); err != nil {
			return nil, fmt.Errorf("scanning conjunction: %w", err)
		}
		out = append(out, res)
	}
	return out, rows.Err()
}
