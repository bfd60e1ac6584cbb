// ════════════════════════════════════════════════════════════════════════════════════════════════
// ⚡ SIMULATION RUN STORE
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Project: Best-Offset Prefetcher Model
// Component: SQLite Persistence for Trace Runs
//
// Description:
//   Persists each trace-driven simulation run for offline analysis: the run
//   identity (a sha3 fingerprint of the exact configuration JSON), every
//   phase commit the learner made (tick, offset, score, issuance), and the
//   final boundary counters. Identical configurations map to identical
//   fingerprints, so runs are comparable across trace files.
//
// Notes:
//   - Cold path only: one insert per phase conclusion and one summary per
//     run. Nothing here is touched per access.
//   - Schema is created on open; the store is append-only.
// ════════════════════════════════════════════════════════════════════════════════════════════════

package tracestore

import (
	"database/sql"
	"encoding/hex"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/crypto/sha3"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	fingerprint  TEXT NOT NULL,
	config       TEXT NOT NULL,
	trace        TEXT NOT NULL,
	started_unix INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS commits (
	run_id  INTEGER NOT NULL,
	tick    INTEGER NOT NULL,
	offset  INTEGER NOT NULL,
	score   INTEGER NOT NULL,
	issuing INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS summary (
	run_id     INTEGER PRIMARY KEY,
	accesses   INTEGER NOT NULL,
	issued     INTEGER NOT NULL,
	suppressed INTEGER NOT NULL,
	filled     INTEGER NOT NULL,
	dropped    INTEGER NOT NULL,
	malformed  INTEGER NOT NULL
);`

// Summary carries the boundary counters of one finished run.
type Summary struct {
	Accesses   uint64
	Issued     uint64
	Suppressed uint64
	Filled     uint64
	Dropped    uint64
	Malformed  uint64
}

// Store is one open run database.
type Store struct {
	db    *sql.DB
	runID int64
}

// Open opens (creating if needed) the run database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Fingerprint returns the hex sha3-256 of a configuration blob.
func Fingerprint(configJSON []byte) string {
	h := sha3.Sum256(configJSON)
	return hex.EncodeToString(h[:])
}

// BeginRun registers a new run for the given config and trace name and
// returns the config fingerprint. Subsequent RecordCommit/WriteSummary
// calls attach to this run.
func (s *Store) BeginRun(configJSON []byte, traceName string) (string, error) {
	fp := Fingerprint(configJSON)
	res, err := s.db.Exec(
		"INSERT INTO runs (fingerprint, config, trace, started_unix) VALUES (?, ?, ?, ?)",
		fp, string(configJSON), traceName, time.Now().Unix(),
	)
	if err != nil {
		return "", err
	}
	s.runID, err = res.LastInsertId()
	if err != nil {
		return "", err
	}
	return fp, nil
}

// RecordCommit appends one phase conclusion.
func (s *Store) RecordCommit(tick, offset int64, score uint32, issuing bool) error {
	_, err := s.db.Exec(
		"INSERT INTO commits (run_id, tick, offset, score, issuing) VALUES (?, ?, ?, ?, ?)",
		s.runID, tick, offset, score, issuing,
	)
	return err
}

// WriteSummary stores the final counters for the current run.
func (s *Store) WriteSummary(sum Summary) error {
	_, err := s.db.Exec(
		"INSERT OR REPLACE INTO summary (run_id, accesses, issued, suppressed, filled, dropped, malformed) VALUES (?, ?, ?, ?, ?, ?, ?)",
		s.runID, sum.Accesses, sum.Issued, sum.Suppressed, sum.Filled, sum.Dropped, sum.Malformed,
	)
	return err
}

// CommitCount returns how many commits the current run has recorded.
// Diagnostics and tests.
func (s *Store) CommitCount() (int, error) {
	var n int
	err := s.db.QueryRow("SELECT COUNT(*) FROM commits WHERE run_id = ?", s.runID).Scan(&n)
	return n, err
}

// Close releases the database handle.
func (s *Store) Close() error { return s.db.Close() }
