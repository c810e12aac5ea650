// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/ranked-pick/db"
	"github.com/danielhkuo/ranked-pick/metrics"
	"github.com/danielhkuo/ranked-pick/models"
	"github.com/danielhkuo/ranked-pick/narration"
	"github.com/danielhkuo/ranked-pick/rcv"
)

// snapshotPayload is the JSON stored in result_snapshot.payload.
type snapshotPayload struct {
	Winners    []string          `json:"winners"`
	Rounds     []rcv.RoundRecord `json:"rounds"`
	Exhausted  bool              `json:"exhausted"`
	Narration  []string          `json:"narration"`
	InputsHash string            `json:"inputs_hash"`
}

// Tabulate loads the ballots of election in submission order and runs the
// count. Running out of ballots is not an error: the snapshot is marked
// exhausted and carries the partial winners.
func Tabulate(ctx context.Context, q db.Querier, election models.Election, logger *slog.Logger) (models.ResultSnapshot, string, error) {
	stored, err := db.LoadRankings(ctx, q, election.ID)
	if err != nil {
		return models.ResultSnapshot{}, metrics.OutcomeFailed, fmt.Errorf("failed to load ballots: %w", err)
	}
	rankings := stored.Rankings
	if rankings == nil {
		rankings = [][]string{}
	}

	e, err := rcv.New(rankings, election.ProtectedCandidate, election.Name, election.Seats)
	if err != nil {
		return models.ResultSnapshot{}, metrics.OutcomeFailed, err
	}

	transcript := &narration.Transcript{}
	res, err := e.Conduct(narration.Multi(
		transcript,
		narration.NewLog(logger.With("election_id", election.ID)),
	))

	outcome := metrics.OutcomeComplete
	switch {
	case errors.Is(err, rcv.ErrExhaustedElection):
		outcome = metrics.OutcomeExhausted
		logger.Warn("ballots exhausted before all seats were filled",
			"election_id", election.ID,
			"seats", election.Seats,
			"winners", res.Winners,
		)
	case err != nil:
		return models.ResultSnapshot{}, metrics.OutcomeFailed, err
	}

	snapshot := models.ResultSnapshot{
		ID:         uuid.NewString(),
		ElectionID: election.ID,
		ComputedAt: time.Now().UTC(),
		Winners:    nonNil(res.Winners),
		Rounds:     nonNil(res.Rounds),
		Exhausted:  outcome == metrics.OutcomeExhausted,
		Narration:  nonNil(transcript.Lines()),
		InputsHash: inputsHash(election, rankings),
	}
	return snapshot, outcome, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// inputsHash fingerprints everything the outcome depends on, so a stored
// snapshot can be checked against a recount.
func inputsHash(election models.Election, rankings [][]string) string {
	b, _ := json.Marshal(struct {
		Seats     int        `json:"seats"`
		Protected string     `json:"protected"`
		Ballots   [][]string `json:"ballots"`
	}{election.Seats, election.ProtectedCandidate, rankings})

	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

func insertSnapshot(ctx context.Context, q db.Querier, s models.ResultSnapshot) error {
	payload, err := json.Marshal(snapshotPayload{
		Winners:    s.Winners,
		Rounds:     s.Rounds,
		Exhausted:  s.Exhausted,
		Narration:  s.Narration,
		InputsHash: s.InputsHash,
	})
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	_, err = q.ExecContext(ctx, `
		INSERT INTO result_snapshot (id, election_id, computed_at, payload)
		VALUES ($1, $2, $3, $4)
	`, s.ID, s.ElectionID, db.FormatTime(s.ComputedAt), string(payload))
	if err != nil {
		return fmt.Errorf("insert snapshot: %w", err)
	}
	return nil
}

func loadSnapshot(ctx context.Context, q db.Querier, id string) (models.ResultSnapshot, error) {
	var s models.ResultSnapshot
	var computedAt, payload string
	err := q.QueryRowContext(ctx, `
		SELECT id, election_id, computed_at, payload
		FROM result_snapshot
		WHERE id = $1
	`, id).Scan(&s.ID, &s.ElectionID, &computedAt, &payload)
	if err != nil {
		return models.ResultSnapshot{}, fmt.Errorf("query snapshot: %w", err)
	}

	if s.ComputedAt, err = db.ParseTime(computedAt); err != nil {
		return models.ResultSnapshot{}, err
	}

	var p snapshotPayload
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		return models.ResultSnapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	s.Winners = p.Winners
	s.Rounds = p.Rounds
	s.Exhausted = p.Exhausted
	s.Narration = p.Narration
	s.InputsHash = p.InputsHash
	return s, nil
}
