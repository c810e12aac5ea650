// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/ranked-pick/db"
	"github.com/danielhkuo/ranked-pick/metrics"
	"github.com/danielhkuo/ranked-pick/middleware"
	"github.com/danielhkuo/ranked-pick/models"
)

type BallotHandler struct {
	db      *sql.DB
	metrics *metrics.Metrics
}

func NewBallotHandler(conn *sql.DB, m *metrics.Metrics) *BallotHandler {
	return &BallotHandler{db: conn, metrics: m}
}

// validateRankings rejects empty ballots, blank names and repeated candidates.
func validateRankings(rankings []string) error {
	if len(rankings) == 0 {
		return errors.New("rankings must name at least one candidate")
	}
	seen := make(map[string]bool, len(rankings))
	for i, c := range rankings {
		if strings.TrimSpace(c) == "" {
			return fmt.Errorf("ranking %d is blank", i+1)
		}
		if seen[c] {
			return fmt.Errorf("%s is ranked more than once", c)
		}
		seen[c] = true
	}
	return nil
}

// SubmitBallot handles POST /elections/{slug}/ballots
func (h *BallotHandler) SubmitBallot(w http.ResponseWriter, r *http.Request) {
	shareSlug := r.PathValue("slug")
	if shareSlug == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "slug is required")
		return
	}

	var req models.SubmitBallotRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if err := validateRankings(req.Rankings); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	ctx := r.Context()

	var electionID string
	err := h.db.QueryRowContext(ctx, `
		SELECT id FROM election WHERE share_slug = $1
	`, shareSlug).Scan(&electionID)
	if errors.Is(err, sql.ErrNoRows) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Election not found")
		return
	}
	if err != nil {
		slog.Error("failed to query election", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	tx, err := h.db.BeginTx(ctx, nil)
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	seq, err := db.NextBallotSeq(ctx, tx, electionID)
	if errors.Is(err, db.ErrElectionNotOpen) {
		middleware.ErrorResponse(w, http.StatusConflict, "Election is not open for voting")
		return
	}
	if err != nil {
		slog.Error("failed to reserve ballot", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to submit ballot")
		return
	}

	ballotID := uuid.NewString()
	if err := db.InsertBallot(ctx, tx, ballotID, electionID, seq, req.Rankings, time.Now()); err != nil {
		slog.Error("failed to insert ballot", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to submit ballot")
		return
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to submit ballot")
		return
	}

	h.metrics.BallotSubmitted()
	slog.Info("ballot submitted", "election_id", electionID, "ballot_id", ballotID, "seq", seq)

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitBallotResponse{
		BallotID: ballotID,
		Message:  "Ballot submitted successfully",
	})
}
