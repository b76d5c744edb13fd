package store

import (
	"database/sql"
	"fmt"
	"os"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/footprint-tools/cmdr/internal/domain"
	"github.com/footprint-tools/cmdr/internal/store/migrations"
)

// Store journals command statuses in SQLite.
// It implements the domain.HistoryStore interface.
type Store struct {
	db   *sql.DB
	path string
}

// New opens the database at path and runs pending migrations.
func New(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if path == ":memory:" {
		// Every connection to :memory: is a separate database
		db.SetMaxOpenConns(1)
	}

	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err = configureSQLite(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("configure database: %w", err)
	}

	setDBPermissions(path)

	if err = migrations.Run(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// NewWithDB creates a Store from an existing, migrated database connection.
func NewWithDB(db *sql.DB) *Store {
	return &Store{db: db}
}

// DB returns the underlying database connection.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func configureSQLite(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// setDBPermissions sets restrictive file permissions on the database and its WAL/SHM files.
func setDBPermissions(path string) {
	if path == ":memory:" {
		return
	}
	_ = os.Chmod(path, 0600)
	_ = os.Chmod(path+"-wal", 0600)
	_ = os.Chmod(path+"-shm", 0600)
}

// Insert adds an entry and returns its id. A zero Timestamp is stamped with the current time.
func (s *Store) Insert(entry domain.HistoryEntry) (int64, error) {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	res, err := s.db.Exec(
		`INSERT INTO command_history
		 (run_id, seq, command, ok, message, timestamp)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		entry.RunID,
		entry.Seq,
		entry.Command,
		boolToInt(entry.OK),
		entry.Message,
		entry.Timestamp.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, fmt.Errorf("insert history entry: %w", err)
	}
	return res.LastInsertId()
}

// List returns entries matching the given filter, newest first.
func (s *Store) List(filter domain.HistoryFilter) ([]domain.HistoryEntry, error) {
	query := `
		SELECT id, run_id, seq, command, ok, message, timestamp
		FROM command_history
	`

	var (
		clauses []string
		args    []any
	)

	if filter.RunID != "" {
		clauses = append(clauses, "substr(run_id, 1, length(?)) = ?")
		args = append(args, filter.RunID, filter.RunID)
	}

	if filter.Command != "" {
		clauses = append(clauses, "command = ?")
		args = append(args, filter.Command)
	}

	if filter.FailedOnly {
		clauses = append(clauses, "ok = 0")
	}

	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}

	query += " ORDER BY id DESC"

	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []domain.HistoryEntry
	for rows.Next() {
		var (
			e  domain.HistoryEntry
			ok int
			ts string
		)
		if err := rows.Scan(&e.ID, &e.RunID, &e.Seq, &e.Command, &ok, &e.Message, &ts); err != nil {
			return nil, err
		}
		e.OK = ok != 0
		e.Timestamp, err = time.Parse(time.RFC3339Nano, ts)
		if err != nil {
			return nil, fmt.Errorf("parse timestamp of entry %d: %w", e.ID, err)
		}
		out = append(out, e)
	}

	return out, rows.Err()
}

// Runs returns the most recent runs, newest first.
func (s *Store) Runs(limit int) ([]domain.RunSummary, error) {
	query := `
		SELECT run_id, MIN(timestamp), COUNT(*), SUM(CASE WHEN ok = 0 THEN 1 ELSE 0 END)
		FROM command_history
		GROUP BY run_id
		ORDER BY MAX(id) DESC
	`

	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []domain.RunSummary
	for rows.Next() {
		var (
			r  domain.RunSummary
			ts string
		)
		if err := rows.Scan(&r.RunID, &ts, &r.Commands, &r.Failed); err != nil {
			return nil, err
		}
		r.Started, err = time.Parse(time.RFC3339Nano, ts)
		if err != nil {
			return nil, fmt.Errorf("parse timestamp of run %s: %w", r.RunID, err)
		}
		out = append(out, r)
	}

	return out, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Verify Store implements domain.HistoryStore
var _ domain.HistoryStore = (*Store)(nil)
