// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Ranked Pick API.

	mux := router.NewRouter(db, cfg, metrics.New())

# Endpoints

Operational:

	GET /health
	GET /metrics - Prometheus exposition

Election management (requires X-Admin-Key):

	POST /elections            - Create election
	GET  /elections/{id}/admin - Settings and ballot count
	POST /elections/{id}/close - Close and tabulate

Voting and results (public, by share slug):

	POST /elections/{slug}/ballots      - Submit a ranked ballot
	GET  /elections/{slug}              - Election settings
	GET  /elections/{slug}/results      - Final results (closed only)
	GET  /elections/{slug}/ballot-count - Ballots received so far

Every API route is wrapped in middleware.Instrument.
*/
package router
