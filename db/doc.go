// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database, creates the schema and stores ballots.

# Connections

Open selects the driver from the configured database type:

  - sqlite: modernc.org/sqlite (pure Go, the default)
  - postgres: github.com/lib/pq

	conn, err := db.Open(cfg)

SQLite connections are limited to one open connection and have foreign keys
enabled.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - election: Election settings and lifecycle state
  - ballot: One row per submitted ballot, seq preserves submission order
  - ballot_rank: Ranked candidates per ballot
  - result_snapshot: Immutable tabulation results (JSON payload)

# Ballot Storage

	seq, err := db.NextBallotSeq(ctx, tx, electionID)
	err = db.InsertBallot(ctx, tx, ballotID, electionID, seq, rankings, time.Now())
	stored, err := db.LoadRankings(ctx, tx, electionID)

NextBallotSeq increments election.ballot_count only while the election is
open, returning ErrElectionNotOpen otherwise. LoadRankings returns ballots in
seq order with each ballot's candidates in preference order.

# Relationships

	election 1──* ballot
	ballot 1──* ballot_rank
	election 1──* result_snapshot

All foreign keys use ON DELETE CASCADE. Queries use $N placeholders, which
both drivers accept.
*/
package db
