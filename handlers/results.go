// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/ranked-pick/middleware"
	"github.com/danielhkuo/ranked-pick/models"
)

type ResultsHandler struct {
	db *sql.DB
}

func NewResultsHandler(conn *sql.DB) *ResultsHandler {
	return &ResultsHandler{db: conn}
}

// lookup resolves the slug in the path, writing the error response on failure.
func (h *ResultsHandler) lookup(w http.ResponseWriter, r *http.Request) (models.Election, int, bool) {
	shareSlug := r.PathValue("slug")
	if shareSlug == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "slug is required")
		return models.Election{}, 0, false
	}

	election, count, err := electionBySlug(r.Context(), h.db, shareSlug)
	if errors.Is(err, sql.ErrNoRows) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Election not found")
		return models.Election{}, 0, false
	}
	if err != nil {
		slog.Error("failed to query election", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return models.Election{}, 0, false
	}
	return election, count, true
}

// GetElection handles GET /elections/{slug}
// Returns election settings but never results.
func (h *ResultsHandler) GetElection(w http.ResponseWriter, r *http.Request) {
	election, _, ok := h.lookup(w, r)
	if !ok {
		return
	}
	middleware.JSONResponse(w, http.StatusOK, election)
}

// GetResults handles GET /elections/{slug}/results
// Results stay sealed (403) while the election is open.
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	election, count, ok := h.lookup(w, r)
	if !ok {
		return
	}

	if election.Status != models.StatusClosed {
		middleware.ErrorResponse(w, http.StatusForbidden, "Results are hidden until the election is closed")
		return
	}
	if election.FinalSnapshotID == nil {
		slog.Error("closed election has no snapshot", "election_id", election.ID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Results not available")
		return
	}

	snapshot, err := loadSnapshot(r.Context(), h.db, *election.FinalSnapshotID)
	if err != nil {
		slog.Error("failed to load snapshot", "election_id", election.ID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ResultsResponse{
		Election:    election,
		Snapshot:    snapshot,
		BallotCount: count,
	})
}

// GetBallotCount handles GET /elections/{slug}/ballot-count
// The count is public even while the election is open.
func (h *ResultsHandler) GetBallotCount(w http.ResponseWriter, r *http.Request) {
	_, count, ok := h.lookup(w, r)
	if !ok {
		return
	}
	middleware.JSONResponse(w, http.StatusOK, map[string]int{
		"ballot_count": count,
	})
}
