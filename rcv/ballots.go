// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package rcv

// BallotSet holds the continuing ballots of one election.
type BallotSet struct {
	ballots [][]string
}

// NewBallotSet copies the given ballots. Empty ballots are kept until the
// first prune, so they count toward the opening win number.
func NewBallotSet(ballots [][]string) *BallotSet {
	set := &BallotSet{ballots: make([][]string, 0, len(ballots))}
	for _, b := range ballots {
		set.ballots = append(set.ballots, append([]string(nil), b...))
	}
	return set
}

// Len returns the number of continuing ballots.
func (s *BallotSet) Len() int {
	return len(s.ballots)
}

// FirstChoices returns the leading entry of every non-empty ballot, in ballot order.
func (s *BallotSet) FirstChoices() []string {
	firsts := make([]string, 0, len(s.ballots))
	for _, b := range s.ballots {
		if len(b) > 0 {
			firsts = append(firsts, b[0])
		}
	}
	return firsts
}

// DistinctRemaining returns every candidate still ranked on any ballot, in
// first-seen order.
func (s *BallotSet) DistinctRemaining() []string {
	seen := make(map[string]struct{})
	var distinct []string
	for _, b := range s.ballots {
		for _, c := range b {
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			distinct = append(distinct, c)
		}
	}
	return distinct
}

// Consume removes every occurrence of candidate from every ballot. Later
// preferences move up; their relative order is unchanged.
func (s *BallotSet) Consume(candidate string) {
	for i, b := range s.ballots {
		kept := b[:0]
		for _, c := range b {
			if c != candidate {
				kept = append(kept, c)
			}
		}
		s.ballots[i] = kept
	}
}

// PruneExhausted drops ballots with no remaining entries.
func (s *BallotSet) PruneExhausted() {
	kept := s.ballots[:0]
	for _, b := range s.ballots {
		if len(b) > 0 {
			kept = append(kept, b)
		}
	}
	for i := len(kept); i < len(s.ballots); i++ {
		s.ballots[i] = nil
	}
	s.ballots = kept
}

// Ballots returns a copy of the continuing ballots.
func (s *BallotSet) Ballots() [][]string {
	out := make([][]string, len(s.ballots))
	for i, b := range s.ballots {
		out[i] = make([]string, len(b))
		copy(out[i], b)
	}
	return out
}
