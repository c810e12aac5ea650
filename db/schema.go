// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Timestamps are RFC3339Nano TEXT so the same DDL runs on sqlite and postgres.
const schema = `
-- Elections
CREATE TABLE IF NOT EXISTS election (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    seats INTEGER NOT NULL CHECK (seats >= 1),
    protected_candidate TEXT NOT NULL DEFAULT '',
    status TEXT NOT NULL DEFAULT 'open' CHECK (status IN ('open', 'closed')),
    share_slug TEXT UNIQUE,
    closed_at TEXT,
    final_snapshot_id TEXT,
    ballot_count INTEGER NOT NULL DEFAULT 0,
    created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_election_share_slug ON election(share_slug);
CREATE INDEX IF NOT EXISTS idx_election_status ON election(status);

-- Ballots
CREATE TABLE IF NOT EXISTS ballot (
    id TEXT PRIMARY KEY,
    election_id TEXT NOT NULL REFERENCES election(id) ON DELETE CASCADE,
    seq INTEGER NOT NULL,
    submitted_at TEXT NOT NULL,
    UNIQUE (election_id, seq)
);

CREATE INDEX IF NOT EXISTS idx_ballot_election_id ON ballot(election_id);

-- Ranked preferences, position 0 is the first choice
CREATE TABLE IF NOT EXISTS ballot_rank (
    ballot_id TEXT NOT NULL REFERENCES ballot(id) ON DELETE CASCADE,
    position INTEGER NOT NULL CHECK (position >= 0),
    candidate TEXT NOT NULL,
    PRIMARY KEY (ballot_id, position)
);

-- Result Snapshots
CREATE TABLE IF NOT EXISTS result_snapshot (
    id TEXT PRIMARY KEY,
    election_id TEXT NOT NULL REFERENCES election(id) ON DELETE CASCADE,
    computed_at TEXT NOT NULL,
    payload TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_result_snapshot_election_id ON result_snapshot(election_id);
`
