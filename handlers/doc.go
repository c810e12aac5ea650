// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Ranked Pick API.

# Handler Types

  - ElectionHandler: create, inspect and close elections (admin)
  - BallotHandler: ballot submission
  - ResultsHandler: public election info, sealed results and ballot counts

	elections := handlers.NewElectionHandler(db, cfg, m)
	ballots := handlers.NewBallotHandler(db, m)
	results := handlers.NewResultsHandler(db)

The metrics argument may be nil.

# Election Lifecycle

Elections are created open and move to closed exactly once:

	POST /elections              → CreateElection (returns admin_key, share_slug)
	GET  /elections/{id}/admin   → GetElectionAdmin
	POST /elections/{id}/close   → CloseElection (tabulates and seals)

Admin operations require the X-Admin-Key header.

# Voting

	POST /elections/{slug}/ballots → SubmitBallot

Each ballot gets the next sequence number of its election. Tabulation reads
ballots in that order, which decides first-appearance tie-breaks.

# Tabulation

Tabulate runs the instant-runoff count over the stored ballots:

	snapshot, outcome, err := handlers.Tabulate(ctx, tx, election, logger)

The snapshot carries the winners, a record of each round, the narration
transcript and a SHA-256 of the inputs. Elections whose ballots run out
before every seat is filled are stored with exhausted set.
*/
package handlers
