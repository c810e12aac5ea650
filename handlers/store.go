// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"database/sql"

	"github.com/danielhkuo/ranked-pick/db"
	"github.com/danielhkuo/ranked-pick/models"
)

const electionColumns = `
	id, name, seats, protected_candidate, status,
	share_slug, closed_at, final_snapshot_id, created_at, ballot_count`

// electionRow scans an election and its ballot count. key is matched against
// the column named by where.
func electionRow(ctx context.Context, q db.Querier, where, key string) (models.Election, int, error) {
	var (
		e               models.Election
		closedAt        sql.NullString
		finalSnapshotID sql.NullString
		createdAt       string
		ballotCount     int
	)
	err := q.QueryRowContext(ctx, `SELECT `+electionColumns+` FROM election WHERE `+where+` = $1`, key).Scan(
		&e.ID, &e.Name, &e.Seats, &e.ProtectedCandidate, &e.Status,
		&e.ShareSlug, &closedAt, &finalSnapshotID, &createdAt, &ballotCount,
	)
	if err != nil {
		return models.Election{}, 0, err
	}

	if e.CreatedAt, err = db.ParseTime(createdAt); err != nil {
		return models.Election{}, 0, err
	}
	if e.ClosedAt, err = db.ParseNullTime(closedAt); err != nil {
		return models.Election{}, 0, err
	}
	if finalSnapshotID.Valid {
		e.FinalSnapshotID = &finalSnapshotID.String
	}
	return e, ballotCount, nil
}

func electionByID(ctx context.Context, q db.Querier, id string) (models.Election, int, error) {
	return electionRow(ctx, q, "id", id)
}

func electionBySlug(ctx context.Context, q db.Querier, slug string) (models.Election, int, error) {
	return electionRow(ctx, q, "share_slug", slug)
}
