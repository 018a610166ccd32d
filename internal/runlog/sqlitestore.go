package runlog

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dineshachuthan/AIStoryTellerBackendAPI/internal/paths"

	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store using a SQLite database.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

var _ Store = (*SQLiteStore)(nil)

// Open opens (or creates) a SQLite database at path and creates the schema
// if needed. The parent directory is created as well.
func Open(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), paths.DirPerm); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Set PRAGMAs before any DDL.
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys=ON",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("sqlite pragma: %w", err)
		}
	}

	ddl := `
CREATE TABLE IF NOT EXISTS runs (
    id        INTEGER PRIMARY KEY AUTOINCREMENT,
    timestamp TEXT    NOT NULL,
    tool      TEXT    NOT NULL,
    detail    TEXT    NOT NULL DEFAULT '',
    ok        INTEGER NOT NULL DEFAULT 1
);

CREATE TABLE IF NOT EXISTS run_files (
    id       INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id   INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
    file_num INTEGER NOT NULL,
    path     TEXT    NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_runs_timestamp ON runs(timestamp DESC);
CREATE INDEX IF NOT EXISTS idx_run_files_run  ON run_files(run_id);
`
	if _, err := db.Exec(ddl); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite schema: %w", err)
	}

	return &SQLiteStore{db: db, path: path}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Log(tool, detail string, ok bool, files []string) error {
	ts := time.Now().Format(time.RFC3339)

	okInt := 0
	if ok {
		okInt = 1
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		`INSERT INTO runs (timestamp, tool, detail, ok) VALUES (?, ?, ?, ?)`,
		ts, tool, detail, okInt,
	)
	if err != nil {
		return err
	}

	runID, err := res.LastInsertId()
	if err != nil {
		return err
	}

	for i, f := range files {
		if _, err := tx.Exec(
			`INSERT INTO run_files (run_id, file_num, path) VALUES (?, ?, ?)`,
			runID, i+1, f,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) Entries(n int) ([]Entry, error) {
	query := `SELECT id, timestamp, tool, detail, ok FROM runs ORDER BY id`
	entries, err := s.queryRuns(query)
	if err != nil {
		return nil, err
	}
	if n > 0 && len(entries) > n {
		entries = entries[len(entries)-n:]
	}
	if err := s.attachFiles(entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *SQLiteStore) EntriesSince(cutoff time.Time) ([]Entry, error) {
	query := `SELECT id, timestamp, tool, detail, ok FROM runs
		WHERE timestamp >= ? ORDER BY id`
	entries, err := s.queryRuns(query, cutoff.Format(time.RFC3339))
	if err != nil {
		return nil, err
	}
	if err := s.attachFiles(entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *SQLiteStore) EntriesAfter(id int64) ([]Entry, error) {
	query := `SELECT id, timestamp, tool, detail, ok FROM runs
		WHERE id > ? ORDER BY id`
	entries, err := s.queryRuns(query, id)
	if err != nil {
		return nil, err
	}
	if err := s.attachFiles(entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *SQLiteStore) queryRuns(query string, args ...any) ([]Entry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var id int64
		var tsStr, tool, detail string
		var okInt int
		if err := rows.Scan(&id, &tsStr, &tool, &detail, &okInt); err != nil {
			return nil, err
		}
		ts, err := time.Parse(time.RFC3339, tsStr)
		if err != nil {
			continue
		}
		entries = append(entries, Entry{
			ID:     id,
			Time:   ts,
			Tool:   tool,
			Detail: detail,
			OK:     okInt != 0,
		})
	}
	return entries, rows.Err()
}

// attachFiles fills in Entry.Files by run ID.
func (s *SQLiteStore) attachFiles(entries []Entry) error {
	if len(entries) == 0 {
		return nil
	}

	rows, err := s.db.Query(`SELECT run_id, path FROM run_files ORDER BY run_id, file_num`)
	if err != nil {
		return err
	}
	defer rows.Close()

	byRun := map[int64][]string{}
	for rows.Next() {
		var runID int64
		var path string
		if err := rows.Scan(&runID, &path); err != nil {
			return err
		}
		byRun[runID] = append(byRun[runID], path)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for i := range entries {
		entries[i].Files = byRun[entries[i].ID]
	}
	return nil
}

func (s *SQLiteStore) Clean(days int) (int, error) {
	cutoff := DayCutoff(days).Format(time.RFC3339)
	res, err := s.db.Exec(`DELETE FROM runs WHERE timestamp < ?`, cutoff)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	return int(n), err
}

func (s *SQLiteStore) Clear() error {
	_, err := s.db.Exec(`DELETE FROM runs`)
	return err
}

func (s *SQLiteStore) Path() string {
	return s.path
}
