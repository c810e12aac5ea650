// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ballotfile reads ranked ballots from disk.

# CSV

One ballot per record, preferences left to right. Blank cells are skipped,
records may have different lengths, and lines starting with # are comments:

	# ballots.csv
	Alice,Bob,Carol
	Bob,,Carol
	Carol

# JSON

Either a bare array of rankings:

	[["Alice", "Bob"], ["Bob"]]

or an election file that also carries settings:

	{
	  "name": "Treasurer",
	  "seats": 1,
	  "protected_candidate": "No Endorsement",
	  "ballots": [["Alice", "Bob"], ["Bob"]]
	}

ReadFile picks the format from the file extension.
*/
package ballotfile
