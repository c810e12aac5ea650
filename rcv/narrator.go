// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package rcv

// EventKind identifies a narration event.
type EventKind string

const (
	EventElectionStarted   EventKind = "election_started"
	EventRoundStarted      EventKind = "round_started"
	EventTally             EventKind = "tally"
	EventThresholdPassed   EventKind = "threshold_passed"
	EventProtectedRemoved  EventKind = "protected_removed"
	EventFinalRoundWinner  EventKind = "final_round_winner"
	EventEliminated        EventKind = "eliminated"
	EventRoundWon          EventKind = "round_won"
	EventElectionCompleted EventKind = "election_completed"
)

// Event is a single narration record. Only the fields relevant to Kind are set.
type Event struct {
	Kind           EventKind
	Election       string
	Round          int
	Seats          int
	SeatsRemaining int
	WinNumber      int
	CandidatesLeft int
	Candidate      string
	Votes          int
	Tally          []TallyEntry
	Winners        []string
}

// Narrator receives tabulation events. Narration never influences the outcome.
type Narrator interface {
	Narrate(Event)
}

// NarratorFunc adapts a function to Narrator.
type NarratorFunc func(Event)

// Narrate calls f(e).
func (f NarratorFunc) Narrate(e Event) {
	f(e)
}

// Discard drops every event.
var Discard Narrator = NarratorFunc(func(Event) {})
