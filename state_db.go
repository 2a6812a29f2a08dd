package main

import (
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// openStateDB opens the optional sqlite datastore. The database is purely a
// diagnostic collaborator: search requests never touch it, only the boot
// log and the /test introspection route do.
func openStateDB(dbPath string) (*sql.DB, error) {
	if strings.TrimSpace(dbPath) == "" {
		return nil, os.ErrInvalid
	}
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", dbPath+"?_foreign_keys=1&_journal=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := ensureStateTables(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func ensureStateTables(db *sql.DB) error {
	if db == nil {
		return nil
	}
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS service_boots (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			started_at_unix INTEGER NOT NULL,
			version TEXT
		)
	`)
	return err
}

func recordServiceBoot(db *sql.DB, now time.Time) error {
	if db == nil {
		return nil
	}
	_, err := db.Exec(
		"INSERT INTO service_boots (started_at_unix, version) VALUES (?, ?)",
		now.Unix(), buildVersionString())
	return err
}

// listTableNames samples user table names for the diagnostic endpoint.
func listTableNames(db *sql.DB, limit int) ([]string, error) {
	if db == nil || limit <= 0 {
		return nil, nil
	}
	rows, err := db.Query(
		"SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name LIMIT ?",
		limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
