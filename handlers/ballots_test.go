// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/danielhkuo/ranked-pick/db"
	"github.com/danielhkuo/ranked-pick/models"
	"github.com/danielhkuo/ranked-pick/testutil"
)

func submitBallot(handler *BallotHandler, slug string, body any) *httptest.ResponseRecorder {
	req := testutil.MakeRequest("POST", "/elections/"+slug+"/ballots", body, nil)
	req.SetPathValue("slug", slug)
	w := httptest.NewRecorder()
	handler.SubmitBallot(w, req)
	return w
}

func TestSubmitBallot(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewBallotHandler(conn, nil)

	electionID, _, slug := testutil.CreateTestElection(t, conn, cfg, 1, "", "open")

	w := submitBallot(handler, slug, models.SubmitBallotRequest{Rankings: []string{"Alice", "Bob", "Carol"}})
	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp models.SubmitBallotResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.BallotID == "" {
		t.Fatal("Expected a ballot ID")
	}

	stored, err := db.LoadRankings(context.Background(), conn, electionID)
	if err != nil {
		t.Fatalf("LoadRankings: %v", err)
	}
	if !reflect.DeepEqual(stored.IDs, []string{resp.BallotID}) {
		t.Errorf("Expected stored ballot %s, got %v", resp.BallotID, stored.IDs)
	}
	if !reflect.DeepEqual(stored.Rankings, [][]string{{"Alice", "Bob", "Carol"}}) {
		t.Errorf("Rankings not preserved: %v", stored.Rankings)
	}
}

func TestSubmitBallotValidation(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewBallotHandler(conn, nil)

	_, _, slug := testutil.CreateTestElection(t, conn, cfg, 1, "", "open")

	tests := []struct {
		name string
		body any
	}{
		{"empty rankings", models.SubmitBallotRequest{Rankings: []string{}}},
		{"missing rankings", map[string]string{}},
		{"blank candidate", models.SubmitBallotRequest{Rankings: []string{"A", " "}}},
		{"duplicate candidate", models.SubmitBallotRequest{Rankings: []string{"A", "B", "A"}}},
		{"wrong type", map[string]any{"rankings": "A"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := submitBallot(handler, slug, tt.body)
			testutil.AssertStatus(t, w, http.StatusBadRequest)
		})
	}
}

func TestSubmitBallotElectionState(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewBallotHandler(conn, nil)

	_, _, closedSlug := testutil.CreateTestElection(t, conn, cfg, 1, "", "closed")
	body := models.SubmitBallotRequest{Rankings: []string{"A"}}

	t.Run("closed election", func(t *testing.T) {
		w := submitBallot(handler, closedSlug, body)
		testutil.AssertStatus(t, w, http.StatusConflict)
	})

	t.Run("unknown slug", func(t *testing.T) {
		w := submitBallot(handler, "nope", body)
		testutil.AssertStatus(t, w, http.StatusNotFound)
	})
}

func TestValidateRankings(t *testing.T) {
	if err := validateRankings([]string{"A", "B"}); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
	if err := validateRankings(nil); err == nil {
		t.Error("Expected error for nil rankings")
	}
	if err := validateRankings([]string{"A", "A"}); err == nil {
		t.Error("Expected error for duplicate rankings")
	}
}
