// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package rcv tabulates ranked-choice (instant-runoff) elections for one or more seats.

# Ballots

A ballot is an ordered list of candidate names, most preferred first. The
BallotSet owns every ballot for the life of one election and shrinks
monotonically: consuming a candidate removes every occurrence of that name
from every ballot, and ballots left empty are pruned after each round.
Ballots submitted empty still count toward the first round's win number.

	set := rcv.NewBallotSet([][]string{{"A", "B"}, {"B", "A"}})
	set.Consume("A")
	set.PruneExhausted()

# Tally

Count builds first-preference totals in ascending order. Ties are broken by
first appearance in the first-choice sequence, never by name:

	t := rcv.Count(set.FirstChoices())
	fewest, _ := t.Fewest()
	most, _ := t.Most()

The win number is a simple majority of the continuing ballots and is
recomputed every round:

	rcv.WinNumber(10) // 6

# Resolution

Decide inspects the current round and returns exactly one Decision, checked
in this order:

  - Threshold: every candidate at or above the win number is elected.
  - ProtectedRemoved: with one more candidate than open seats in a
    multi-seat race, a protected candidate sitting alone in last place is removed.
  - FinalRound: with one more candidate than open seats, the fewest-vote
    candidate is declared a winner. This mirrors the historical behavior of
    the tabulator and is kept on purpose.
  - Runoff: with exactly two candidates in the tally, the leader wins and the
    other is eliminated.
  - Elimination: the fewest-vote candidate is eliminated, skipping the
    protected candidate in favor of the second fewest.

# Elections

	e, err := rcv.New(ballots, rcv.NoProtectedCandidate, "Treasurer", 1)
	if err != nil {
		return err
	}
	result, err := e.Conduct(narration.NewText(os.Stdout))

Conduct runs rounds until every seat is filled. An election can be
conducted once. If every ballot is exhausted while seats remain, Conduct
returns ErrExhaustedElection and the winners found so far stay available
from Winners.
*/
package rcv
