// Package migrations applies the embedded history schema to a sqlite database.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"
)

//go:embed sql/*.sql
var sqlFiles embed.FS

// Migration is one embedded schema step, named NN_description.sql.
type Migration struct {
	Version     int
	Description string
	SQL         string
}

const schemaTable = `
CREATE TABLE IF NOT EXISTS schema_migrations (
	version INTEGER PRIMARY KEY,
	description TEXT NOT NULL,
	applied_at TEXT NOT NULL DEFAULT (datetime('now'))
)`

// Load returns the embedded migrations ordered by version.
func Load() ([]Migration, error) {
	names, err := fs.Glob(sqlFiles, "sql/*.sql")
	if err != nil {
		return nil, fmt.Errorf("list migrations: %w", err)
	}

	all := make([]Migration, 0, len(names))
	byVersion := make(map[int]string, len(names))

	for _, name := range names {
		m, err := parseName(path.Base(name))
		if err != nil {
			return nil, err
		}
		if prev, dup := byVersion[m.Version]; dup {
			return nil, fmt.Errorf("migration version %d used by %s and %s", m.Version, prev, m.Description)
		}
		byVersion[m.Version] = m.Description

		body, err := sqlFiles.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		m.SQL = string(body)
		all = append(all, m)
	}

	sort.Slice(all, func(i, j int) bool { return all[i].Version < all[j].Version })
	return all, nil
}

func parseName(file string) (Migration, error) {
	num, desc, ok := strings.Cut(strings.TrimSuffix(file, ".sql"), "_")
	if !ok || desc == "" {
		return Migration{}, fmt.Errorf("migration %s: want NN_description.sql", file)
	}
	version, err := strconv.Atoi(num)
	if err != nil || version <= 0 {
		return Migration{}, fmt.Errorf("migration %s: bad version %q", file, num)
	}
	return Migration{Version: version, Description: desc}, nil
}

// Run applies every pending migration, each in its own transaction.
func Run(db *sql.DB) error {
	pending, err := Pending(db)
	if err != nil {
		return err
	}

	for _, m := range pending {
		if err := apply(db, m); err != nil {
			return fmt.Errorf("migration %02d_%s: %w", m.Version, m.Description, err)
		}
	}
	return nil
}

func apply(db *sql.DB, m Migration) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	// no-op once committed
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(m.SQL); err != nil {
		return err
	}
	if _, err := tx.Exec(
		"INSERT INTO schema_migrations (version, description) VALUES (?, ?)",
		m.Version, m.Description,
	); err != nil {
		return fmt.Errorf("record: %w", err)
	}
	return tx.Commit()
}

// CurrentVersion returns the highest applied version, 0 on a fresh database.
func CurrentVersion(db *sql.DB) (int, error) {
	if _, err := db.Exec(schemaTable); err != nil {
		return 0, fmt.Errorf("create schema_migrations: %w", err)
	}

	var version sql.NullInt64
	if err := db.QueryRow("SELECT MAX(version) FROM schema_migrations").Scan(&version); err != nil {
		return 0, fmt.Errorf("current schema version: %w", err)
	}
	return int(version.Int64), nil
}

// Pending returns the migrations above CurrentVersion.
func Pending(db *sql.DB) ([]Migration, error) {
	all, err := Load()
	if err != nil {
		return nil, err
	}

	current, err := CurrentVersion(db)
	if err != nil {
		return nil, err
	}

	i := sort.Search(len(all), func(i int) bool { return all[i].Version > current })
	return all[i:], nil
}
