// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/danielhkuo/ranked-pick/db"
	"github.com/danielhkuo/ranked-pick/models"
	"github.com/danielhkuo/ranked-pick/testutil"
)

// TestConcurrentBallotSubmissions checks that simultaneous submissions each
// get a distinct sequence number and none are lost.
func TestConcurrentBallotSubmissions(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewBallotHandler(conn, nil)

	electionID, _, slug := testutil.CreateTestElection(t, conn, cfg, 1, "", "open")
	candidates := []string{"A", "B", "C"}

	const numVoters = 20
	var successCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numVoters; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rankings := []string{candidates[i%3], candidates[(i+1)%3]}
			w := submitBallot(handler, slug, models.SubmitBallotRequest{Rankings: rankings})
			if w.Code == http.StatusCreated {
				successCount.Add(1)
			}
		}(i)
	}
	wg.Wait()

	if int(successCount.Load()) != numVoters {
		t.Errorf("Expected %d successful submissions, got %d", numVoters, successCount.Load())
	}

	rows, err := conn.Query(`SELECT seq FROM ballot WHERE election_id = $1 ORDER BY seq`, electionID)
	if err != nil {
		t.Fatalf("Failed to query ballots: %v", err)
	}
	defer rows.Close()

	want := 1
	for rows.Next() {
		var seq int
		if err := rows.Scan(&seq); err != nil {
			t.Fatalf("Failed to scan seq: %v", err)
		}
		if seq != want {
			t.Errorf("Expected seq %d, got %d", want, seq)
		}
		want++
	}
	if want-1 != numVoters {
		t.Errorf("Expected %d stored ballots, got %d", numVoters, want-1)
	}
}

// TestCloseDuringSubmissions checks that every accepted ballot is counted and
// every ballot arriving after the close is rejected.
func TestCloseDuringSubmissions(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	ballots := NewBallotHandler(conn, nil)
	elections := NewElectionHandler(conn, cfg, nil)

	electionID, adminKey, slug := testutil.CreateTestElection(t, conn, cfg, 1, "", "open")

	const numVoters = 30
	var accepted, rejected atomic.Int32
	var wg sync.WaitGroup
	var closed *httptest.ResponseRecorder

	for i := 0; i < numVoters; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w := submitBallot(ballots, slug, models.SubmitBallotRequest{Rankings: []string{"A"}})
			switch w.Code {
			case http.StatusCreated:
				accepted.Add(1)
			case http.StatusConflict:
				rejected.Add(1)
			default:
				t.Errorf("Unexpected status %d: %s", w.Code, w.Body.String())
			}
		}()

		if i == numVoters/2 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				closed = closeElection(t, elections, electionID, adminKey)
			}()
		}
	}
	wg.Wait()

	testutil.AssertStatus(t, closed, http.StatusOK)
	var closeResp models.CloseElectionResponse
	testutil.AssertJSON(t, closed, &closeResp)

	if int(accepted.Load()+rejected.Load()) != numVoters {
		t.Fatalf("Lost submissions: %d accepted, %d rejected", accepted.Load(), rejected.Load())
	}

	stored, err := db.LoadRankings(context.Background(), conn, electionID)
	if err != nil {
		t.Fatalf("LoadRankings: %v", err)
	}
	if len(stored.IDs) != int(accepted.Load()) {
		t.Errorf("Expected %d stored ballots, got %d", accepted.Load(), len(stored.IDs))
	}

	counted := 0
	if len(closeResp.Snapshot.Rounds) > 0 {
		counted = closeResp.Snapshot.Rounds[0].Continuing
	}
	if counted != int(accepted.Load()) {
		t.Errorf("Snapshot counted %d ballots, %d were accepted", counted, accepted.Load())
	}
}
