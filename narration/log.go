// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package narration

import (
	"log/slog"

	"github.com/danielhkuo/ranked-pick/rcv"
)

// Log emits one structured record per event. Per-candidate tallies are logged
// at debug level.
type Log struct {
	logger *slog.Logger
}

func NewLog(logger *slog.Logger) *Log {
	if logger == nil {
		logger = slog.Default()
	}
	return &Log{logger: logger}
}

func (l *Log) Narrate(e rcv.Event) {
	switch e.Kind {
	case rcv.EventElectionStarted:
		l.logger.Info("election started", "election", e.Election, "seats", e.Seats, "win_number", e.WinNumber)
	case rcv.EventRoundStarted:
		l.logger.Info("round started", "round", e.Round, "candidates_left", e.CandidatesLeft)
	case rcv.EventTally:
		for _, entry := range e.Tally {
			l.logger.Debug("tally", "round", e.Round, "candidate", entry.Candidate, "votes", entry.Votes)
		}
	case rcv.EventThresholdPassed:
		l.logger.Info("candidate passed threshold",
			"round", e.Round,
			"candidate", e.Candidate,
			"votes", e.Votes,
			"win_number", e.WinNumber,
			"seats_remaining", e.SeatsRemaining,
		)
	case rcv.EventProtectedRemoved:
		l.logger.Info("protected candidate removed", "round", e.Round, "candidate", e.Candidate)
	case rcv.EventFinalRoundWinner:
		l.logger.Info("final round winner", "round", e.Round, "candidate", e.Candidate, "votes", e.Votes, "seats_remaining", e.SeatsRemaining)
	case rcv.EventEliminated:
		l.logger.Info("candidate eliminated", "round", e.Round, "candidate", e.Candidate, "votes", e.Votes)
	case rcv.EventRoundWon:
		l.logger.Info("candidate won round", "round", e.Round, "candidate", e.Candidate, "votes", e.Votes, "seats_remaining", e.SeatsRemaining)
	case rcv.EventElectionCompleted:
		l.logger.Info("election completed", "election", e.Election, "winners", e.Winners)
	}
}
