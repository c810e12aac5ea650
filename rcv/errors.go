// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package rcv

import "errors"

var (
	ErrInvalidConfiguration = errors.New("invalid election configuration")
	ErrExhaustedElection    = errors.New("all ballots exhausted before every seat was filled")
	ErrAlreadyConducted     = errors.New("election has already been conducted")
)
