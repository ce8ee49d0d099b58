// Package sqlite_test contains integration tests for the SQLite ledger.
//
// # Schema Protection
//
// This file is the SINGLE POINT where the database schema is loaded for tests.
// All test setup functions use db.GetSchemaSQL() to ensure tests run against
// the authoritative schema, preventing drift between test and production.
//
// DO NOT hardcode CREATE TABLE statements in test files. Use setupTestDB()
// and the seed* helpers instead.
package sqlite_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/electoral/internal/adapters/sqlite"
	"github.com/example/electoral/internal/db"
	"github.com/example/electoral/internal/ports/secondary"
)

const (
	testNow   int64 = 1_772_355_600
	testStart       = testNow + 86_400
	testEnd         = testNow + 2*86_400
)

func unix(secs int64) time.Time {
	return time.Unix(secs, 0).UTC()
}

// setupTestDB creates an in-memory database with the authoritative schema.
// A single connection keeps every query on the same in-memory database.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	testDB.SetMaxOpenConns(1)

	// Use the authoritative schema from schema.go
	_, err = testDB.Exec(db.GetSchemaSQL())
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedElection creates an election through the ledger and returns its ID.
func seedElection(t *testing.T, ledger *sqlite.Ledger, name string) int64 {
	t.Helper()
	var id int64
	err := ledger.Update(context.Background(), func(tx secondary.LedgerWriter) error {
		var err error
		if id, err = tx.NextElectionID(context.Background()); err != nil {
			return err
		}
		return tx.CreateElection(context.Background(), &secondary.ElectionRecord{
			ID:        id,
			Name:      name,
			PostName:  "President",
			Owner:     "owner",
			StartDate: testStart,
			EndDate:   testEnd,
			CreatedAt: testNow,
		})
	})
	if err != nil {
		t.Fatalf("failed to seed election: %v", err)
	}
	return id
}

// seedCandidate registers a candidate through the ledger and returns its ID.
func seedCandidate(t *testing.T, ledger *sqlite.Ledger, electionID int64, name string) int64 {
	t.Helper()
	var id int64
	err := ledger.Update(context.Background(), func(tx secondary.LedgerWriter) error {
		var err error
		if id, err = tx.NextCandidateID(context.Background()); err != nil {
			return err
		}
		return tx.CreateCandidate(context.Background(), &secondary.CandidateRecord{
			ID:         id,
			ElectionID: electionID,
			Name:       name,
			CreatedAt:  testNow,
		})
	})
	if err != nil {
		t.Fatalf("failed to seed candidate: %v", err)
	}
	return id
}
