// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrElectionNotOpen is returned when a ballot targets a missing or closed
// election.
var ErrElectionNotOpen = errors.New("election is not open")

// Querier is satisfied by both *sql.DB and *sql.Tx.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// FormatTime renders t the way every timestamp column stores it.
func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// ParseTime reverses FormatTime.
func ParseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	return t, nil
}

// ParseNullTime returns nil for a NULL column.
func ParseNullTime(s sql.NullString) (*time.Time, error) {
	if !s.Valid {
		return nil, nil
	}
	t, err := ParseTime(s.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// NextBallotSeq reserves the next submission sequence number for an open
// election. The UPDATE holds the election row until the transaction ends, so
// a concurrent close either waits for the ballot or rejects it.
func NextBallotSeq(ctx context.Context, q Querier, electionID string) (int, error) {
	var seq int
	err := q.QueryRowContext(ctx, `
		UPDATE election
		SET ballot_count = ballot_count + 1
		WHERE id = $1 AND status = 'open'
		RETURNING ballot_count
	`, electionID).Scan(&seq)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrElectionNotOpen
	}
	if err != nil {
		return 0, fmt.Errorf("reserve ballot seq: %w", err)
	}
	return seq, nil
}

// InsertBallot stores a ballot and its rankings.
func InsertBallot(ctx context.Context, q Querier, ballotID, electionID string, seq int, rankings []string, at time.Time) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO ballot (id, election_id, seq, submitted_at)
		VALUES ($1, $2, $3, $4)
	`, ballotID, electionID, seq, FormatTime(at))
	if err != nil {
		return fmt.Errorf("insert ballot: %w", err)
	}

	for pos, candidate := range rankings {
		_, err := q.ExecContext(ctx, `
			INSERT INTO ballot_rank (ballot_id, position, candidate)
			VALUES ($1, $2, $3)
		`, ballotID, pos, candidate)
		if err != nil {
			return fmt.Errorf("insert ballot rank: %w", err)
		}
	}
	return nil
}

// BallotRankings is the stored ballots of an election in submission order.
type BallotRankings struct {
	IDs      []string
	Rankings [][]string
}

// LoadRankings returns every ballot of an election ordered by submission,
// each ballot's candidates ordered by preference.
func LoadRankings(ctx context.Context, q Querier, electionID string) (BallotRankings, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT b.id, r.candidate
		FROM ballot b
		LEFT JOIN ballot_rank r ON r.ballot_id = b.id
		WHERE b.election_id = $1
		ORDER BY b.seq, r.position
	`, electionID)
	if err != nil {
		return BallotRankings{}, fmt.Errorf("query rankings: %w", err)
	}
	defer rows.Close()

	var out BallotRankings
	for rows.Next() {
		var id string
		var candidate sql.NullString
		if err := rows.Scan(&id, &candidate); err != nil {
			return BallotRankings{}, fmt.Errorf("scan ranking: %w", err)
		}

		last := len(out.IDs) - 1
		if last < 0 || out.IDs[last] != id {
			out.IDs = append(out.IDs, id)
			out.Rankings = append(out.Rankings, []string{})
			last++
		}
		if candidate.Valid {
			out.Rankings[last] = append(out.Rankings[last], candidate.String)
		}
	}
	if err := rows.Err(); err != nil {
		return BallotRankings{}, fmt.Errorf("iterate rankings: %w", err)
	}
	return out, nil
}
