// internal/sqlout/sqlout.go
package sqlout

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"hetscan-core/engine"
)

// Open creates (or opens) the results database and ensures the schema.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		started_at  DATETIME NOT NULL,
		alpha       REAL NOT NULL,
		threshold   REAL NOT NULL,
		heterogametic TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS comparisons (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id        INTEGER NOT NULL,
		scaffold      TEXT NOT NULL,
		n_male        INTEGER NOT NULL,
		n_female      INTEGER NOT NULL,
		po_het_male   REAL NOT NULL,
		po_het_female REAL NOT NULL,
		sem_male      REAL NOT NULL,
		sem_female    REAL NOT NULL,
		t             REAL NOT NULL,
		df            REAL NOT NULL,
		p_value       REAL NOT NULL,
		method        TEXT NOT NULL,
		significant   TEXT NOT NULL,
		candidate     INTEGER NOT NULL DEFAULT 0
	);
	CREATE INDEX IF NOT EXISTS idx_comparisons_run ON comparisons(run_id);
	CREATE INDEX IF NOT EXISTS idx_comparisons_scaffold ON comparisons(scaffold);
	`
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// StoreRun inserts one pipeline run and its comparison rows in a single
// transaction. Candidate rows are flagged, not duplicated.
func StoreRun(db *sql.DB, cfg engine.Config, comparisons []engine.Comparison, candidate func(engine.Comparison) bool) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	res, err := tx.Exec(
		`INSERT INTO runs (started_at, alpha, threshold, heterogametic) VALUES (?, ?, ?, ?)`,
		time.Now().UTC(), cfg.Alpha, cfg.LinkageThreshold, cfg.Heterogametic.String(),
	)
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	runID, err := res.LastInsertId()
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	stmt, err := tx.Prepare(
		`INSERT INTO comparisons (run_id, scaffold, n_male, n_female, po_het_male, po_het_female,
		 sem_male, sem_female, t, df, p_value, method, significant, candidate)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	defer func() { _ = stmt.Close() }()
	for _, c := range comparisons {
		if _, err := stmt.Exec(
			runID, c.Scaffold, c.NMale, c.NFemale, c.MeanMale, c.MeanFemale,
			c.SEMMale, c.SEMFemale, c.T, c.DF, c.P, c.Method, c.Significant,
			boolInt(candidate(c)),
		); err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
