package models

import (
	"time"

	"github.com/danielhkuo/ranked-pick/rcv"
)

// Election status constants
const (
	StatusOpen   = "open"
	StatusClosed = "closed"
)

// Request types

type CreateElectionRequest struct {
	Name               string `json:"name"`
	Seats              int    `json:"seats"`
	ProtectedCandidate string `json:"protected_candidate"`
}

// Candidates in order of preference
type SubmitBallotRequest struct {
	Rankings []string `json:"rankings"`
}

// Response types

type CreateElectionResponse struct {
	ElectionID string `json:"election_id"`
	AdminKey   string `json:"admin_key"`
	ShareSlug  string `json:"share_slug"`
}

type SubmitBallotResponse struct {
	BallotID string `json:"ballot_id"`
	Message  string `json:"message"`
}

type CloseElectionResponse struct {
	ClosedAt time.Time      `json:"closed_at"`
	Snapshot ResultSnapshot `json:"snapshot"`
}

type ElectionAdminResponse struct {
	Election    Election `json:"election"`
	BallotCount int      `json:"ballot_count"`
}

type ResultsResponse struct {
	Election    Election       `json:"election"`
	Snapshot    ResultSnapshot `json:"snapshot"`
	BallotCount int            `json:"ballot_count"`
}

// Domain types

type Election struct {
	ID                 string     `json:"id"`
	Name               string     `json:"name"`
	Seats              int        `json:"seats"`
	ProtectedCandidate string     `json:"protected_candidate,omitempty"`
	Status             string     `json:"status"`
	ShareSlug          string     `json:"share_slug"`
	ClosedAt           *time.Time `json:"closed_at,omitempty"`
	FinalSnapshotID    *string    `json:"final_snapshot_id,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}

type Ballot struct {
	ID          string    `json:"id"`
	ElectionID  string    `json:"election_id"`
	Rankings    []string  `json:"rankings"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// Tabulation result types

// ResultSnapshot is the immutable outcome stored when an election closes.
// Exhausted is set when ballots ran out before every seat was filled; Winners
// then holds the partial list.
type ResultSnapshot struct {
	ID         string            `json:"id"`
	ElectionID string            `json:"election_id"`
	ComputedAt time.Time         `json:"computed_at"`
	Winners    []string          `json:"winners"`
	Rounds     []rcv.RoundRecord `json:"rounds"`
	Exhausted  bool              `json:"exhausted"`
	Narration  []string          `json:"narration"`
	InputsHash string            `json:"inputs_hash"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
