// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/ranked-pick/auth"
	"github.com/danielhkuo/ranked-pick/cliparse"
	"github.com/danielhkuo/ranked-pick/db"
)

// SetupTestDB opens a private in-memory sqlite database with the full schema.
// It is closed when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(GetTestConfig())
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:             cliparse.DefaultPort,
		DatabaseType:     cliparse.DatabaseSQLite,
		DatabaseURL:      ":memory:",
		AdminKeySalt:     "test-admin-salt",
		ElectionSlugSalt: "test-slug-salt",
	}
}

// CreateTestElection inserts an election and returns its ID, admin key and
// share slug. status should be "open" or "closed".
func CreateTestElection(t *testing.T, conn *sql.DB, cfg cliparse.Config, seats int, protected, status string) (electionID, adminKey, shareSlug string) {
	t.Helper()

	electionID, err := auth.NewElectionID()
	if err != nil {
		t.Fatalf("Failed to generate election ID: %v", err)
	}
	signer := auth.NewSigner(cfg.AdminKeySalt, cfg.ElectionSlugSalt)
	adminKey = signer.AdminKey(electionID)
	shareSlug = signer.ShareSlug(electionID)

	var closedAt *string
	if status == "closed" {
		s := db.FormatTime(time.Now())
		closedAt = &s
	}

	_, err = conn.Exec(`
		INSERT INTO election (id, name, seats, protected_candidate, status, share_slug, closed_at, created_at)
		VALUES ($1, 'Test Election', $2, $3, $4, $5, $6, $7)
	`, electionID, seats, protected, status, shareSlug, closedAt, db.FormatTime(time.Now()))
	if err != nil {
		t.Fatalf("Failed to create test election: %v", err)
	}

	return electionID, adminKey, shareSlug
}

// SubmitTestBallot appends a ballot to an open election and returns its ID.
func SubmitTestBallot(t *testing.T, conn *sql.DB, electionID string, rankings ...string) string {
	t.Helper()
	ctx := context.Background()

	seq, err := db.NextBallotSeq(ctx, conn, electionID)
	if err != nil {
		t.Fatalf("Failed to reserve ballot seq: %v", err)
	}

	ballotID := uuid.NewString()
	if err := db.InsertBallot(ctx, conn, ballotID, electionID, seq, rankings, time.Now()); err != nil {
		t.Fatalf("Failed to create test ballot: %v", err)
	}
	return ballotID
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body any, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AdminHeaders returns the header map carrying an admin key.
func AdminHeaders(adminKey string) map[string]string {
	return map[string]string{"X-Admin-Key": adminKey}
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
