package database

import (
	"database/sql"
	"fmt"
	"log"

	_ "modernc.org/sqlite"
)

// Config holds database configuration
type Config struct {
	Path string
}

// Open opens the sqlite database and ensures the observation table
// exists. The returned handle is owned by the caller for the process
// lifetime; nothing here is a package-level singleton.
func Open(cfg Config) (*sql.DB, error) {
	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Set connection pool settings
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := ensureSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	log.Printf("Database initialized successfully: %s", cfg.Path)
	return db, nil
}

// ensureSchema creates the observation snapshot table. store_id is TEXT
// so leading zeros survive round trips.
func ensureSchema(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS observations (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			area TEXT NOT NULL,
			contractor TEXT NOT NULL,
			store_id TEXT NOT NULL,
			timestamp TEXT NOT NULL,
			helmeted INTEGER NOT NULL,
			unhelmeted INTEGER NOT NULL,
			total INTEGER NOT NULL
		)
	`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to create observations table: %w", err)
	}
	return nil
}
