package main

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
)

// Storage mirrors result rows into a remote libsql database so sweeps running on
// different hosts can land in one place. The local CSV stays the source of truth;
// every method here is best effort from the sweep's point of view.
type Storage struct {
	db          *sql.DB
	independent string
}

// OpenStorage connects to a libsql URL (libsql://name-org.turso.io?authToken=...)
// and prepares the parameters and measurements tables. The meta map is stored as
// run parameters alongside the sweep start time.
func OpenStorage(url string, independent string, meta map[string]any) (*Storage, error) {
	db, err := sql.Open("libsql", url)
	if err != nil {
		return nil, fmt.Errorf("failed to open results db: %w", err)
	}
	_, err = db.Exec("CREATE TABLE IF NOT EXISTS parameters (name TEXT PRIMARY KEY, value)")
	if err != nil {
		db.Close()
		return nil, err
	}
	parameters := make([]any, 0)
	parameters = append(parameters, "time", time.Now().Format("2006-01-02 15:04:05"))
	parameters = append(parameters, "independent", independent)
	for key, value := range meta {
		parameters = append(parameters, key, fmt.Sprintf("%v", value))
	}
	placeholders := strings.TrimSuffix(strings.Repeat("(?, ?), ", len(parameters)/2), ", ")
	_, err = db.Exec(
		fmt.Sprintf("INSERT INTO parameters VALUES %v ON CONFLICT DO NOTHING", placeholders),
		parameters...,
	)
	if err != nil {
		db.Close()
		return nil, err
	}
	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS measurements (
        param INTEGER,
        runtime_seconds REAL,
        max_memory_bytes INTEGER,
        tool TEXT
    )`)
	if err != nil {
		db.Close()
		return nil, err
	}
	Logger.Infof("initialized remote results storage with meta %v", meta)
	return &Storage{db: db, independent: independent}, nil
}

func (s *Storage) AppendRun(row ResultRow) error {
	_, err := s.db.Exec(
		"INSERT INTO measurements VALUES (?, ?, ?, ?)",
		row.Param,
		row.Seconds,
		row.MemoryBytes,
		row.Tool,
	)
	return err
}

func (s *Storage) Close() error {
	return s.db.Close()
}
