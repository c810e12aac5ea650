// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package rcv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func repeat(ballot []string, n int) [][]string {
	out := make([][]string, n)
	for i := range out {
		out[i] = append([]string(nil), ballot...)
	}
	return out
}

func concat(groups ...[][]string) [][]string {
	var out [][]string
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

func TestDecideThreshold(t *testing.T) {
	set := NewBallotSet(concat(repeat([]string{"A", "B"}, 6), repeat([]string{"B", "A"}, 4)))

	d, err := Decide(set, Config{Seats: 1, ProtectedCandidate: "None"}, 1)
	require.NoError(t, err)

	assert.Equal(t, DecisionThreshold, d.Kind)
	assert.Equal(t, 6, d.WinNumber)
	assert.Equal(t, []string{"A"}, d.Elected)
	assert.Empty(t, d.Eliminated)
	assert.Equal(t, 10, set.Len(), "decide must not mutate the ballots")
}

func TestDecideRunoffOnTwoCandidateTally(t *testing.T) {
	firsts := []string{"A", "A", "A", "B", "B", "B", "B", "B"}
	d, err := standardRound(Decision{Tally: Count(firsts)}, Config{Seats: 1})
	require.NoError(t, err)

	assert.Equal(t, DecisionRunoff, d.Kind)
	assert.Equal(t, []string{"B"}, d.Elected)
	assert.Equal(t, "A", d.Eliminated)
}

func TestDecideProtectedCandidateIsSkipped(t *testing.T) {
	ballots := concat(
		repeat([]string{"N"}, 1),
		repeat([]string{"A"}, 2),
		repeat([]string{"B"}, 3),
		repeat([]string{"C"}, 4),
	)

	d, err := Decide(NewBallotSet(ballots), Config{Seats: 1, ProtectedCandidate: "N"}, 1)
	require.NoError(t, err)
	assert.Equal(t, DecisionElimination, d.Kind)
	assert.Equal(t, "A", d.Eliminated)

	d, err = Decide(NewBallotSet(ballots), Config{Seats: 1, ProtectedCandidate: NoProtectedCandidate}, 1)
	require.NoError(t, err)
	assert.Equal(t, "N", d.Eliminated)
}

func TestDecideProtectedCandidateRemovedAtEnd(t *testing.T) {
	ballots := concat(
		repeat([]string{"A", "B"}, 3),
		repeat([]string{"B", "A"}, 3),
		repeat([]string{"N", "A"}, 1),
	)

	d, err := Decide(NewBallotSet(ballots), Config{Seats: 2, ProtectedCandidate: "N"}, 2)
	require.NoError(t, err)

	assert.Equal(t, DecisionProtectedRemoved, d.Kind)
	assert.Equal(t, "N", d.Eliminated)
	assert.Empty(t, d.Elected)
}

func TestDecideProtectedRuleNeedsMultipleSeats(t *testing.T) {
	ballots := [][]string{{"N", "A"}, {"A", "N"}}

	// Single-seat race: N is in last place but the final-round rule applies instead
	d, err := Decide(NewBallotSet(ballots), Config{Seats: 1, ProtectedCandidate: "N"}, 1)
	require.NoError(t, err)
	assert.Equal(t, DecisionFinalRound, d.Kind)
	assert.Equal(t, []string{"N"}, d.Elected)

	d, err = Decide(NewBallotSet(ballots), Config{Seats: 2, ProtectedCandidate: "N"}, 1)
	require.NoError(t, err)
	assert.Equal(t, DecisionProtectedRemoved, d.Kind)
	assert.Equal(t, "N", d.Eliminated)
}

func TestDecideFinalRoundElectsFewest(t *testing.T) {
	ballots := [][]string{{"A", "B"}, {"B", "A"}, {"A", "B"}, {"B", "A"}}

	d, err := Decide(NewBallotSet(ballots), Config{Seats: 1}, 1)
	require.NoError(t, err)

	assert.Equal(t, DecisionFinalRound, d.Kind)
	assert.Equal(t, 3, d.WinNumber)
	assert.Equal(t, []string{"A"}, d.Elected)
}

func TestDecideExhausted(t *testing.T) {
	_, err := Decide(NewBallotSet([][]string{}), Config{Seats: 2}, 2)
	assert.ErrorIs(t, err, ErrExhaustedElection)
}

func TestStandardRoundOnlyProtectedLeft(t *testing.T) {
	_, err := standardRound(Decision{Tally: Count([]string{"N"})}, Config{Seats: 1, ProtectedCandidate: "N"})
	assert.ErrorIs(t, err, ErrExhaustedElection)
}
