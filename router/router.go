// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/ranked-pick/cliparse"
	"github.com/danielhkuo/ranked-pick/handlers"
	"github.com/danielhkuo/ranked-pick/metrics"
	"github.com/danielhkuo/ranked-pick/middleware"
)

// NewRouter wires every endpoint. A nil m gets a fresh registry.
func NewRouter(db *sql.DB, cfg cliparse.Config, m *metrics.Metrics) *http.ServeMux {
	if m == nil {
		m = metrics.New()
	}
	mux := http.NewServeMux()
	wrap := middleware.Instrument(m)

	electionHandler := handlers.NewElectionHandler(db, cfg, m)
	ballotHandler := handlers.NewBallotHandler(db, m)
	resultsHandler := handlers.NewResultsHandler(db)

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	mux.Handle("GET /metrics", m.Handler())

	// Election management (admin)
	mux.HandleFunc("POST /elections", wrap(electionHandler.CreateElection))
	mux.HandleFunc("GET /elections/{id}/admin", wrap(electionHandler.GetElectionAdmin))
	mux.HandleFunc("POST /elections/{id}/close", wrap(electionHandler.CloseElection))

	// Voting (public, by share slug)
	mux.HandleFunc("POST /elections/{slug}/ballots", wrap(ballotHandler.SubmitBallot))

	// Results (public, sealed until close)
	mux.HandleFunc("GET /elections/{slug}", wrap(resultsHandler.GetElection))
	mux.HandleFunc("GET /elections/{slug}/results", wrap(resultsHandler.GetResults))
	mux.HandleFunc("GET /elections/{slug}/ballot-count", wrap(resultsHandler.GetBallotCount))

	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ranked-pick API v1"))
	})

	return mux
}
