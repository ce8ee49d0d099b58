package db

// SchemaSQL is the complete schema for the election ledger.
//
// # Schema Drift Protection
//
// This is the SINGLE SOURCE OF TRUTH for the database schema. All tests use
// this schema via GetSchemaSQL(), so a repository query that references a
// missing column fails in tests with "no such column".
//
// Dates are stored as unix seconds. Counter rows hold the last assigned
// election and candidate IDs; they only move forward.
const SchemaSQL = `
-- Registry owner (single row, set once by init)
CREATE TABLE IF NOT EXISTS registry (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	owner TEXT NOT NULL,
	initialized_at INTEGER NOT NULL
);

-- Monotonic ID counters
CREATE TABLE IF NOT EXISTS counters (
	name TEXT PRIMARY KEY CHECK (name IN ('election', 'candidate')),
	value INTEGER NOT NULL DEFAULT 0 CHECK (value >= 0)
);

INSERT OR IGNORE INTO counters (name, value) VALUES ('election', 0), ('candidate', 0);

-- Elections
CREATE TABLE IF NOT EXISTS elections (
	id INTEGER PRIMARY KEY,
	name TEXT NOT NULL,
	post_name TEXT NOT NULL,
	owner TEXT NOT NULL,
	start_date INTEGER NOT NULL,
	end_date INTEGER NOT NULL,
	created_at INTEGER NOT NULL,
	CHECK (start_date < end_date)
);

-- Candidates (IDs are global across elections)
CREATE TABLE IF NOT EXISTS candidates (
	id INTEGER PRIMARY KEY,
	election_id INTEGER NOT NULL,
	name TEXT NOT NULL,
	vote_count INTEGER NOT NULL DEFAULT 0 CHECK (vote_count >= 0),
	created_at INTEGER NOT NULL,
	FOREIGN KEY (election_id) REFERENCES elections(id)
);

CREATE INDEX IF NOT EXISTS idx_candidates_election ON candidates(election_id, id);

-- Vote receipts: at most one per (election, voter)
CREATE TABLE IF NOT EXISTS vote_receipts (
	election_id INTEGER NOT NULL,
	voter TEXT NOT NULL,
	candidate_id INTEGER NOT NULL,
	cast_at INTEGER NOT NULL,
	PRIMARY KEY (election_id, voter),
	FOREIGN KEY (election_id) REFERENCES elections(id),
	FOREIGN KEY (candidate_id) REFERENCES candidates(id)
);

-- Published notifications, oldest first by seq
CREATE TABLE IF NOT EXISTS events (
	seq INTEGER PRIMARY KEY AUTOINCREMENT,
	id TEXT NOT NULL UNIQUE,
	kind TEXT NOT NULL CHECK (kind IN ('ElectionCreated', 'CandidateAdded')),
	election_id INTEGER NOT NULL,
	candidate_id INTEGER,
	actor TEXT NOT NULL,
	occurred_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_events_election ON events(election_id, seq);
`

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
// Tests should use this instead of hardcoding their own schema to prevent drift.
func GetSchemaSQL() string {
	return SchemaSQL
}
