// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package rcv

import "fmt"

// NoProtectedCandidate disables the protected-candidate rules. A candidate
// literally named "" is therefore never protected.
const NoProtectedCandidate = ""

// Config is fixed for the life of an election.
type Config struct {
	Name               string
	Seats              int
	ProtectedCandidate string
}

func (c Config) protects(candidate string) bool {
	return c.ProtectedCandidate != NoProtectedCandidate && c.ProtectedCandidate == candidate
}

// DecisionKind identifies which resolution rule fired in a round.
type DecisionKind string

const (
	DecisionThreshold        DecisionKind = "threshold"
	DecisionProtectedRemoved DecisionKind = "protected_removed"
	DecisionFinalRound       DecisionKind = "final_round"
	DecisionRunoff           DecisionKind = "runoff"
	DecisionElimination      DecisionKind = "elimination"
)

// Decision is the outcome of one round. Elected candidates are listed in
// descending tally order. Eliminated is empty when nobody is removed
// without being elected.
type Decision struct {
	Kind       DecisionKind
	Elected    []string
	Eliminated string
	WinNumber  int
	Tally      Tally
}

// Decide applies the resolution rules to the current ballots. It does not
// modify set.
func Decide(set *BallotSet, cfg Config, seatsRemaining int) (Decision, error) {
	tally := Count(set.FirstChoices())
	if tally.Len() == 0 {
		return Decision{}, fmt.Errorf("%w: %d seat(s) unfilled", ErrExhaustedElection, seatsRemaining)
	}

	d := Decision{WinNumber: WinNumber(set.Len()), Tally: tally}

	if winners := tally.AtLeast(d.WinNumber); len(winners) > 0 {
		d.Kind = DecisionThreshold
		d.Elected = winners
		return d, nil
	}

	distinct := len(set.DistinctRemaining())

	// One candidate too many in a multi-seat race: a protected candidate in
	// sole last place loses its exemption.
	if distinct == seatsRemaining+1 && cfg.Seats > 1 {
		if fewest, _ := tally.Fewest(); cfg.protects(fewest) {
			d.Kind = DecisionProtectedRemoved
			d.Eliminated = fewest
			return d, nil
		}
	}

	// Historical behavior: the fewest-vote candidate takes the seat.
	if distinct-1 == seatsRemaining {
		fewest, _ := tally.Fewest()
		d.Kind = DecisionFinalRound
		d.Elected = []string{fewest}
		return d, nil
	}

	return standardRound(d, cfg)
}

// standardRound resolves a two-candidate runoff or eliminates the weakest
// unprotected candidate.
func standardRound(d Decision, cfg Config) (Decision, error) {
	if d.Tally.Len() == 2 {
		most, _ := d.Tally.Most()
		fewest, _ := d.Tally.Fewest()
		d.Kind = DecisionRunoff
		d.Elected = []string{most}
		d.Eliminated = fewest
		return d, nil
	}

	target, _ := d.Tally.Fewest()
	if cfg.protects(target) {
		second, ok := d.Tally.SecondFewest()
		if !ok {
			return Decision{}, fmt.Errorf("%w: only the protected candidate %q remains", ErrExhaustedElection, target)
		}
		target = second
	}
	d.Kind = DecisionElimination
	d.Eliminated = target
	return d, nil
}
