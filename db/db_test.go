// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/danielhkuo/ranked-pick/cliparse"
)

func TestOpenSQLiteAndCreateSchema(t *testing.T) {
	conn, err := Open(cliparse.Config{DatabaseType: cliparse.DatabaseSQLite, DatabaseURL: ":memory:"})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer conn.Close()

	// Twice, to check IF NOT EXISTS
	for i := 0; i < 2; i++ {
		if err := CreateSchema(conn); err != nil {
			t.Fatalf("CreateSchema failed: %v", err)
		}
	}

	for _, table := range []string{"election", "ballot", "ballot_rank", "result_snapshot"} {
		var name string
		err := conn.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = $1`, table).Scan(&name)
		if err != nil {
			t.Errorf("table %s missing: %v", table, err)
		}
	}
}

func TestSchemaRejectsZeroSeats(t *testing.T) {
	conn, err := Open(cliparse.Config{DatabaseType: cliparse.DatabaseSQLite, DatabaseURL: ":memory:"})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer conn.Close()

	if err := CreateSchema(conn); err != nil {
		t.Fatalf("CreateSchema failed: %v", err)
	}

	_, err = conn.Exec(`
		INSERT INTO election (id, name, seats, created_at)
		VALUES ($1, $2, $3, $4)
	`, "e1", "Mayor", 0, "2025-01-01T00:00:00Z")
	if err == nil {
		t.Error("expected CHECK constraint to reject zero seats")
	}
}

func TestOpenUnsupportedType(t *testing.T) {
	if _, err := Open(cliparse.Config{DatabaseType: "mysql"}); err == nil {
		t.Error("expected error for unsupported database type")
	}
}

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := Open(cliparse.Config{DatabaseType: cliparse.DatabaseSQLite, DatabaseURL: ":memory:"})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	if err := CreateSchema(conn); err != nil {
		t.Fatalf("CreateSchema failed: %v", err)
	}
	return conn
}

func insertElection(t *testing.T, conn *sql.DB, id, status string) {
	t.Helper()
	_, err := conn.Exec(`
		INSERT INTO election (id, name, seats, status, share_slug, created_at)
		VALUES ($1, 'Chair', 1, $2, $3, $4)
	`, id, status, "slug-"+id, FormatTime(time.Now()))
	if err != nil {
		t.Fatalf("insert election: %v", err)
	}
}

func TestBallotRoundTrip(t *testing.T) {
	conn := openTestDB(t)
	ctx := context.Background()
	insertElection(t, conn, "e1", "open")

	ballots := [][]string{{"X", "Y"}, {"Z"}, {"Y", "Z", "X"}}
	for i, rankings := range ballots {
		seq, err := NextBallotSeq(ctx, conn, "e1")
		if err != nil {
			t.Fatalf("NextBallotSeq: %v", err)
		}
		if seq != i+1 {
			t.Errorf("seq = %d, want %d", seq, i+1)
		}
		// IDs sort opposite to submission order to prove seq drives ordering
		id := fmt.Sprintf("b%d", 9-i)
		if err := InsertBallot(ctx, conn, id, "e1", seq, rankings, time.Now()); err != nil {
			t.Fatalf("InsertBallot: %v", err)
		}
	}

	got, err := LoadRankings(ctx, conn, "e1")
	if err != nil {
		t.Fatalf("LoadRankings: %v", err)
	}
	if !reflect.DeepEqual(got.Rankings, ballots) {
		t.Errorf("Rankings = %v, want %v", got.Rankings, ballots)
	}
	if !reflect.DeepEqual(got.IDs, []string{"b9", "b8", "b7"}) {
		t.Errorf("IDs = %v", got.IDs)
	}
}

func TestLoadRankingsKeepsEmptyBallots(t *testing.T) {
	conn := openTestDB(t)
	ctx := context.Background()
	insertElection(t, conn, "e1", "open")

	if err := InsertBallot(ctx, conn, "b1", "e1", 1, nil, time.Now()); err != nil {
		t.Fatalf("InsertBallot: %v", err)
	}
	if err := InsertBallot(ctx, conn, "b2", "e1", 2, []string{"A"}, time.Now()); err != nil {
		t.Fatalf("InsertBallot: %v", err)
	}

	got, err := LoadRankings(ctx, conn, "e1")
	if err != nil {
		t.Fatalf("LoadRankings: %v", err)
	}
	want := [][]string{{}, {"A"}}
	if !reflect.DeepEqual(got.Rankings, want) {
		t.Errorf("Rankings = %v, want %v", got.Rankings, want)
	}
}

func TestNextBallotSeqRejectsClosedElection(t *testing.T) {
	conn := openTestDB(t)
	ctx := context.Background()
	insertElection(t, conn, "closed", "closed")

	if _, err := NextBallotSeq(ctx, conn, "closed"); !errors.Is(err, ErrElectionNotOpen) {
		t.Errorf("closed election: err = %v, want ErrElectionNotOpen", err)
	}
	if _, err := NextBallotSeq(ctx, conn, "missing"); !errors.Is(err, ErrElectionNotOpen) {
		t.Errorf("missing election: err = %v, want ErrElectionNotOpen", err)
	}
}

func TestTimeRoundTrip(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 30, 0, 123456789, time.FixedZone("x", 3600))
	got, err := ParseTime(FormatTime(now))
	if err != nil {
		t.Fatalf("ParseTime: %v", err)
	}
	if !got.Equal(now) {
		t.Errorf("round trip = %v, want %v", got, now)
	}

	null, err := ParseNullTime(sql.NullString{})
	if err != nil || null != nil {
		t.Errorf("ParseNullTime(NULL) = %v, %v", null, err)
	}
	if _, err := ParseTime("yesterday"); err == nil {
		t.Error("expected parse error")
	}
}
