// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/danielhkuo/ranked-pick/auth"
	"github.com/danielhkuo/ranked-pick/cliparse"
	"github.com/danielhkuo/ranked-pick/db"
	"github.com/danielhkuo/ranked-pick/metrics"
	"github.com/danielhkuo/ranked-pick/middleware"
	"github.com/danielhkuo/ranked-pick/models"
)

type ElectionHandler struct {
	db      *sql.DB
	signer  *auth.Signer
	metrics *metrics.Metrics
}

func NewElectionHandler(conn *sql.DB, cfg cliparse.Config, m *metrics.Metrics) *ElectionHandler {
	return &ElectionHandler{
		db:      conn,
		signer:  auth.NewSigner(cfg.AdminKeySalt, cfg.ElectionSlugSalt),
		metrics: m,
	}
}

// CreateElection handles POST /elections
func (h *ElectionHandler) CreateElection(w http.ResponseWriter, r *http.Request) {
	var req models.CreateElectionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.Seats == 0 {
		req.Seats = 1
	}
	if req.Seats < 1 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "seats must be at least 1")
		return
	}

	electionID, err := auth.NewElectionID()
	if err != nil {
		slog.Error("failed to generate election ID", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create election")
		return
	}
	shareSlug := h.signer.ShareSlug(electionID)

	_, err = h.db.ExecContext(r.Context(), `
		INSERT INTO election (id, name, seats, protected_candidate, status, share_slug, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, electionID, req.Name, req.Seats, req.ProtectedCandidate, models.StatusOpen, shareSlug, db.FormatTime(time.Now()))
	if err != nil {
		slog.Error("failed to insert election", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create election")
		return
	}

	slog.Info("election created", "election_id", electionID, "seats", req.Seats)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateElectionResponse{
		ElectionID: electionID,
		AdminKey:   h.signer.AdminKey(electionID),
		ShareSlug:  shareSlug,
	})
}

// authorize checks X-Admin-Key against the election in the path and returns
// its ID. It writes the error response itself.
func (h *ElectionHandler) authorize(w http.ResponseWriter, r *http.Request) (string, bool) {
	electionID := r.PathValue("id")
	if electionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "election id is required")
		return "", false
	}
	if err := h.signer.VerifyAdminKey(electionID, r.Header.Get("X-Admin-Key")); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
		return "", false
	}
	return electionID, true
}

// GetElectionAdmin handles GET /elections/{id}/admin
func (h *ElectionHandler) GetElectionAdmin(w http.ResponseWriter, r *http.Request) {
	electionID, ok := h.authorize(w, r)
	if !ok {
		return
	}

	election, count, err := electionByID(r.Context(), h.db, electionID)
	if errors.Is(err, sql.ErrNoRows) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Election not found")
		return
	}
	if err != nil {
		slog.Error("failed to query election", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ElectionAdminResponse{
		Election:    election,
		BallotCount: count,
	})
}

// CloseElection handles POST /elections/{id}/close. Closing and tabulating
// happen in one transaction so the stored result always matches the ballots
// accepted before the close.
func (h *ElectionHandler) CloseElection(w http.ResponseWriter, r *http.Request) {
	electionID, ok := h.authorize(w, r)
	if !ok {
		return
	}
	ctx := r.Context()

	tx, err := h.db.BeginTx(ctx, nil)
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	closedAt := time.Now().UTC()
	res, err := tx.ExecContext(ctx, `
		UPDATE election
		SET status = $1, closed_at = $2
		WHERE id = $3 AND status = $4
	`, models.StatusClosed, db.FormatTime(closedAt), electionID, models.StatusOpen)
	if err != nil {
		slog.Error("failed to close election", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to close election")
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		h.closeConflict(w, r, tx, electionID)
		return
	}

	election, _, err := electionByID(ctx, tx, electionID)
	if err != nil {
		slog.Error("failed to query election", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	snapshot, outcome, err := Tabulate(ctx, tx, election, slog.Default())
	if err != nil {
		h.metrics.Tabulated(metrics.OutcomeFailed, 0)
		slog.Error("failed to tabulate election", "election_id", electionID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to tabulate results")
		return
	}

	if err := insertSnapshot(ctx, tx, snapshot); err != nil {
		slog.Error("failed to insert snapshot", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save results")
		return
	}
	_, err = tx.ExecContext(ctx, `
		UPDATE election SET final_snapshot_id = $1 WHERE id = $2
	`, snapshot.ID, electionID)
	if err != nil {
		slog.Error("failed to link snapshot", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save results")
		return
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to close election")
		return
	}

	h.metrics.Tabulated(outcome, len(snapshot.Rounds))
	slog.Info("election closed",
		"election_id", electionID,
		"snapshot_id", snapshot.ID,
		"winners", snapshot.Winners,
		"outcome", outcome,
	)

	middleware.JSONResponse(w, http.StatusOK, models.CloseElectionResponse{
		ClosedAt: closedAt,
		Snapshot: snapshot,
	})
}

// closeConflict explains why the close UPDATE matched no row.
func (h *ElectionHandler) closeConflict(w http.ResponseWriter, r *http.Request, q db.Querier, electionID string) {
	var status string
	err := q.QueryRowContext(r.Context(), `SELECT status FROM election WHERE id = $1`, electionID).Scan(&status)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		middleware.ErrorResponse(w, http.StatusNotFound, "Election not found")
	case err != nil:
		slog.Error("failed to query election", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
	default:
		middleware.ErrorResponse(w, http.StatusConflict, "Election is already closed")
	}
}
