// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreateElectionRequest: name, seats, protected_candidate
  - SubmitBallotRequest: rankings ([]string, most preferred first)

# Response Types

Types for JSON responses:

  - CreateElectionResponse: election_id, admin_key, share_slug
  - SubmitBallotResponse: ballot_id, message
  - ElectionAdminResponse: election, ballot_count
  - CloseElectionResponse: closed_at, snapshot
  - ResultsResponse: election, snapshot, ballot_count
  - ErrorResponse: error, message

# Domain Types

  - Election: election settings and lifecycle state
  - Ballot: one voter's ranking
  - ResultSnapshot: immutable tabulation record (winners, rounds, narration)

# Constants

Status values:

	StatusOpen   = "open"
	StatusClosed = "closed"
*/
package models
