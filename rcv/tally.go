// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package rcv

import (
	"cmp"
	"slices"
)

// TallyEntry is one candidate's first-preference count for a round.
type TallyEntry struct {
	Candidate string `json:"candidate"`
	Votes     int    `json:"votes"`
}

// Tally is a first-preference count ordered by ascending votes. Candidates
// with equal votes keep the order in which they first appeared.
type Tally struct {
	ascending []TallyEntry
}

// Count tallies a first-choice sequence. Candidates that lead no ballot do
// not appear.
func Count(firstChoices []string) Tally {
	index := make(map[string]int)
	var entries []TallyEntry
	for _, c := range firstChoices {
		i, ok := index[c]
		if !ok {
			i = len(entries)
			index[c] = i
			entries = append(entries, TallyEntry{Candidate: c})
		}
		entries[i].Votes++
	}

	// Stable sort keeps first-appearance order among ties
	slices.SortStableFunc(entries, func(a, b TallyEntry) int {
		return cmp.Compare(a.Votes, b.Votes)
	})
	return Tally{ascending: entries}
}

// WinNumber is the simple majority of the continuing ballots.
func WinNumber(continuing int) int {
	return continuing/2 + 1
}

// Len is the number of candidates with at least one vote.
func (t Tally) Len() int {
	return len(t.ascending)
}

// Total is the number of ballots counted.
func (t Tally) Total() int {
	total := 0
	for _, e := range t.ascending {
		total += e.Votes
	}
	return total
}

// Ascending returns a copy of the entries, fewest votes first.
func (t Tally) Ascending() []TallyEntry {
	return slices.Clone(t.ascending)
}

// Descending returns a copy of the entries, most votes first. It is the exact
// reverse of Ascending, so tied candidates appear latest-first.
func (t Tally) Descending() []TallyEntry {
	out := t.Ascending()
	slices.Reverse(out)
	return out
}

// Votes returns the first-preference count for candidate, or 0.
func (t Tally) Votes(candidate string) int {
	for _, e := range t.ascending {
		if e.Candidate == candidate {
			return e.Votes
		}
	}
	return 0
}

// Most returns the last entry in ascending order.
func (t Tally) Most() (string, bool) {
	if len(t.ascending) == 0 {
		return "", false
	}
	return t.ascending[len(t.ascending)-1].Candidate, true
}

// Fewest returns the first entry in ascending order.
func (t Tally) Fewest() (string, bool) {
	if len(t.ascending) == 0 {
		return "", false
	}
	return t.ascending[0].Candidate, true
}

// SecondFewest returns the second entry in ascending order.
func (t Tally) SecondFewest() (string, bool) {
	if len(t.ascending) < 2 {
		return "", false
	}
	return t.ascending[1].Candidate, true
}

// AtLeast returns every candidate with at least n votes, in descending order.
func (t Tally) AtLeast(n int) []string {
	var out []string
	for i := len(t.ascending) - 1; i >= 0; i-- {
		if t.ascending[i].Votes >= n {
			out = append(out, t.ascending[i].Candidate)
		}
	}
	return out
}
