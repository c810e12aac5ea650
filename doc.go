// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the ranked-pick command.

Ranked Pick runs ranked-choice elections: voters rank candidates, and an
instant-runoff count fills one or more seats, narrating every round.

# Serving the API

	ranked-pick serve -p 3318 -d file:ranked-pick.db

Configuration comes from flags, then the environment (and a .env file), then
defaults:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - DATABASE_URL (-d): Connection string (default: file:ranked-pick.db)
  - ADMIN_KEY_SALT (-admin-salt): Secret for admin key HMAC, required
  - ELECTION_SLUG_SALT (-slug-salt): Secret for share slugs, required
  - LOG_JSON (-log-json): JSON logs

# Tallying a File

	ranked-pick tally --ballots board.csv --seats 2 --format text

Each CSV row is one ballot, candidates in preference order. JSON files may
carry name, seats and protected_candidate alongside ballots. The command
exits non-zero when the ballots run out before every seat is filled.

# Architecture

  - rcv: Ballots, tallies, round resolution and the election driver
  - narration: Text, HTML, slog and transcript narrators
  - ballotfile: CSV and JSON ballot files
  - handlers: HTTP request handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, instrumentation, JSON helpers
  - metrics: Prometheus collectors
  - models: Request/response types
  - auth: Admin keys and share slugs
  - db: Connections, schema and ballot storage
  - cliparse: Configuration parsing
*/
package main
