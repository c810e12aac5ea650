// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package rcv

import (
	"fmt"
	"slices"
)

// TabulationState is the mutable progress of one election.
type TabulationState struct {
	SeatsRemaining int
	Winners        []string
	Round          int
}

// RoundRecord summarizes one completed round.
type RoundRecord struct {
	Round      int          `json:"round"`
	Continuing int          `json:"continuing_ballots"`
	Counted    int          `json:"counted_ballots"`
	WinNumber  int          `json:"win_number"`
	Tally      []TallyEntry `json:"tally"`
	Decision   DecisionKind `json:"decision"`
	Elected    []string     `json:"elected,omitempty"`
	Eliminated string       `json:"eliminated,omitempty"`
}

// Result is the outcome of Conduct.
type Result struct {
	Winners []string      `json:"winners"`
	Rounds  []RoundRecord `json:"rounds"`
}

// Election tabulates one set of ballots.
type Election struct {
	cfg       Config
	ballots   *BallotSet
	state     TabulationState
	conducted bool
	complete  bool
}

// New creates an election. ballots must be non-nil and seats at least 1.
func New(ballots [][]string, protectedCandidate, name string, seats int) (*Election, error) {
	if ballots == nil {
		return nil, fmt.Errorf("%w: ballots are required", ErrInvalidConfiguration)
	}
	if seats < 1 {
		return nil, fmt.Errorf("%w: seats must be at least 1, got %d", ErrInvalidConfiguration, seats)
	}

	return &Election{
		cfg: Config{
			Name:               name,
			Seats:              seats,
			ProtectedCandidate: protectedCandidate,
		},
		ballots: NewBallotSet(ballots),
		state: TabulationState{
			SeatsRemaining: seats,
			Round:          1,
		},
	}, nil
}

// WinnerExists reports whether every seat has been filled.
func (e *Election) WinnerExists() bool {
	return e.complete
}

// Name is the office being filled.
func (e *Election) Name() string {
	return e.cfg.Name
}

// Seats is the number of winners the election fills.
func (e *Election) Seats() int {
	return e.cfg.Seats
}

// ProtectedCandidate returns NoProtectedCandidate when protection is off.
func (e *Election) ProtectedCandidate() string {
	return e.cfg.ProtectedCandidate
}

// Winners returns the elected candidates in the order they were elected.
func (e *Election) Winners() []string {
	return slices.Clone(e.state.Winners)
}

// ConfirmedWinners counts the seats filled so far.
func (e *Election) ConfirmedWinners() int {
	return len(e.state.Winners)
}

// SeatsRemaining counts the seats still open.
func (e *Election) SeatsRemaining() int {
	return e.state.SeatsRemaining
}

// Round returns the number of the next round to run.
func (e *Election) Round() int {
	return e.state.Round
}

// WinNumber is computed from the current continuing ballots.
func (e *Election) WinNumber() int {
	return WinNumber(e.ballots.Len())
}

// Candidates lists every candidate still ranked on a continuing ballot.
func (e *Election) Candidates() []string {
	return e.ballots.DistinctRemaining()
}

// Conduct runs rounds until every seat is filled.
func (e *Election) Conduct(n Narrator) (Result, error) {
	if e.conducted {
		return Result{}, ErrAlreadyConducted
	}
	e.conducted = true
	if n == nil {
		n = Discard
	}

	n.Narrate(Event{
		Kind:      EventElectionStarted,
		Election:  e.cfg.Name,
		Seats:     e.cfg.Seats,
		WinNumber: e.WinNumber(),
	})

	var result Result
	for e.state.SeatsRemaining > 0 {
		n.Narrate(Event{
			Kind:           EventRoundStarted,
			Round:          e.state.Round,
			CandidatesLeft: len(e.ballots.DistinctRemaining()),
		})

		continuing := e.ballots.Len()
		d, err := Decide(e.ballots, e.cfg, e.state.SeatsRemaining)
		if err != nil {
			result.Winners = e.Winners()
			return result, fmt.Errorf("round %d: %w", e.state.Round, err)
		}

		n.Narrate(Event{
			Kind:      EventTally,
			Round:     e.state.Round,
			WinNumber: d.WinNumber,
			Tally:     d.Tally.Descending(),
		})

		e.apply(d, n)
		e.ballots.PruneExhausted()

		result.Rounds = append(result.Rounds, RoundRecord{
			Round:      e.state.Round,
			Continuing: continuing,
			Counted:    d.Tally.Total(),
			WinNumber:  d.WinNumber,
			Tally:      d.Tally.Descending(),
			Decision:   d.Kind,
			Elected:    d.Elected,
			Eliminated: d.Eliminated,
		})
		e.state.Round++
	}

	e.complete = true
	result.Winners = e.Winners()
	n.Narrate(Event{
		Kind:     EventElectionCompleted,
		Election: e.cfg.Name,
		Winners:  result.Winners,
	})
	return result, nil
}

// apply mutates the ballots and tabulation state according to d.
func (e *Election) apply(d Decision, n Narrator) {
	switch d.Kind {
	case DecisionThreshold:
		for _, c := range d.Elected {
			e.elect(c)
			n.Narrate(Event{
				Kind:           EventThresholdPassed,
				Round:          e.state.Round,
				Candidate:      c,
				Votes:          d.Tally.Votes(c),
				WinNumber:      d.WinNumber,
				SeatsRemaining: e.state.SeatsRemaining,
			})
		}

	case DecisionProtectedRemoved:
		e.ballots.Consume(d.Eliminated)
		n.Narrate(Event{Kind: EventProtectedRemoved, Round: e.state.Round, Candidate: d.Eliminated})

	case DecisionFinalRound:
		for _, c := range d.Elected {
			e.elect(c)
			n.Narrate(Event{
				Kind:           EventFinalRoundWinner,
				Round:          e.state.Round,
				Candidate:      c,
				Votes:          d.Tally.Votes(c),
				SeatsRemaining: e.state.SeatsRemaining,
			})
		}

	case DecisionRunoff:
		// Historical tallies left the runoff winner on the ballots. Consuming
		// it keeps a later round from electing the same candidate again.
		e.ballots.Consume(d.Eliminated)
		n.Narrate(Event{Kind: EventEliminated, Round: e.state.Round, Candidate: d.Eliminated, Votes: d.Tally.Votes(d.Eliminated)})
		for _, c := range d.Elected {
			e.elect(c)
			n.Narrate(Event{
				Kind:           EventRoundWon,
				Round:          e.state.Round,
				Candidate:      c,
				Votes:          d.Tally.Votes(c),
				SeatsRemaining: e.state.SeatsRemaining,
			})
		}

	case DecisionElimination:
		e.ballots.Consume(d.Eliminated)
		n.Narrate(Event{Kind: EventEliminated, Round: e.state.Round, Candidate: d.Eliminated, Votes: d.Tally.Votes(d.Eliminated)})
	}
}

// elect records a winner, removes them from every ballot and closes a seat.
func (e *Election) elect(candidate string) {
	e.state.Winners = append(e.state.Winners, candidate)
	e.ballots.Consume(candidate)
	e.state.SeatsRemaining--
}
