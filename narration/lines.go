// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package narration

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/ranked-pick/rcv"
)

type style int

const (
	plain style = iota
	title
	heading
	verdict
)

type line struct {
	style style
	text  string
}

// describe turns an event into display lines shared by every textual sink.
func describe(e rcv.Event) []line {
	switch e.Kind {
	case rcv.EventElectionStarted:
		return []line{
			{title, e.Election},
			{title, fmt.Sprintf("Number of winners: %d", e.Seats)},
			{title, fmt.Sprintf("Win Number: %s", humanize.Comma(int64(e.WinNumber)))},
		}

	case rcv.EventRoundStarted:
		return []line{
			{heading, fmt.Sprintf("Round %d", e.Round)},
			{plain, fmt.Sprintf("Number of candidates left: %d", e.CandidatesLeft)},
		}

	case rcv.EventTally:
		out := make([]line, 0, len(e.Tally))
		for _, entry := range e.Tally {
			out = append(out, line{plain, fmt.Sprintf("%s: %s", entry.Candidate, votes(entry.Votes))})
		}
		return out

	case rcv.EventThresholdPassed:
		return []line{
			{plain, fmt.Sprintf("%s has passed the threshold of %s and will be removed from contention",
				e.Candidate, votes(e.WinNumber))},
			{plain, fmt.Sprintf("Spots remaining: %d", e.SeatsRemaining)},
		}

	case rcv.EventProtectedRemoved:
		return []line{{plain, fmt.Sprintf("%s is in last place and will be removed from contention", e.Candidate)}}

	case rcv.EventFinalRoundWinner:
		return []line{{plain, fmt.Sprintf("%s wins last round and is a winner", e.Candidate)}}

	case rcv.EventEliminated:
		return []line{{plain, fmt.Sprintf("%s was eliminated", e.Candidate)}}

	case rcv.EventRoundWon:
		return []line{{plain, fmt.Sprintf("%s won round", e.Candidate)}}

	case rcv.EventElectionCompleted:
		return []line{{verdict, electedSentence(e.Winners, e.Election)}}
	}
	return nil
}

func votes(n int) string {
	if n == 1 {
		return "1 vote"
	}
	return humanize.Comma(int64(n)) + " votes"
}

func electedSentence(winners []string, office string) string {
	if len(winners) == 1 {
		return fmt.Sprintf("%s is elected as %s", winners[0], office)
	}
	return fmt.Sprintf("%s are elected as %s", strings.Join(winners, ", "), office)
}
