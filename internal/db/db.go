// Package db opens the SQLite ledger database and applies its schema.
package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// DriverName is the database/sql driver registered by go-sqlite3.
const DriverName = "sqlite3"

// DSN builds the connection string for path.
// Write transactions take the RESERVED lock at BEGIN (_txlock=immediate), so
// concurrent writers, including other processes, are serialized before they
// read the state they validate against.
func DSN(path string) string {
	return fmt.Sprintf("file:%s?_txlock=immediate&_foreign_keys=on&_busy_timeout=5000&_journal_mode=WAL", path)
}

// Open opens the database at path, creating its directory and schema if needed.
func Open(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	database, err := sql.Open(DriverName, DSN(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := database.Ping(); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := InitSchema(database); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return database, nil
}

// InitSchema creates any missing tables and counter rows. It is idempotent.
func InitSchema(database *sql.DB) error {
	if _, err := database.Exec(SchemaSQL); err != nil {
		return err
	}
	return nil
}
