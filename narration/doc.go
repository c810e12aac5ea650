// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package narration renders tabulation events from package rcv.

# Sinks

  - Text: Markdown-style lines for terminals and logs files
  - HTML: fragments suitable for embedding in a results page
  - Log: one slog record per event
  - Transcript: captures plain lines in memory (stored with result snapshots)

Combine sinks with Multi:

	transcript := &narration.Transcript{}
	n := narration.Multi(narration.NewLog(slog.Default()), transcript)
	result, err := election.Conduct(n)

Narration is write-only. Text and HTML keep the first write error and stop
writing; check it with Err once the election has been conducted.
*/
package narration
