package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/danielhkuo/ranked-pick/ballotfile"
	"github.com/danielhkuo/ranked-pick/narration"
	"github.com/danielhkuo/ranked-pick/rcv"
)

const (
	formatText = "text"
	formatHTML = "html"
	formatLog  = "log"
)

type tallyOptions struct {
	ballots   string
	name      string
	seats     int
	protected string
	format    string
	logJSON   bool
	verbose   bool
}

func newTallyCmd() *cobra.Command {
	var opts tallyOptions
	cmd := &cobra.Command{
		Use:   "tally --ballots FILE",
		Short: "Tabulate a CSV or JSON ballot file and narrate every round",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTally(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.ballots, "ballots", "b", "", "Ballot file (.csv or .json)")
	f.StringVarP(&opts.name, "name", "n", "", "Election name (default: file setting or file name)")
	f.IntVarP(&opts.seats, "seats", "s", 1, "Number of seats to fill")
	f.StringVar(&opts.protected, "protected", "", "Candidate exempt from ordinary elimination")
	f.StringVarP(&opts.format, "format", "f", formatText, "Output format: text, html or log")
	f.BoolVarP(&opts.logJSON, "log-json", "j", false, "With --format log, print JSON records")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "With --format log, include per-candidate tallies")
	_ = cmd.MarkFlagRequired("ballots")

	return cmd
}

func runTally(cmd *cobra.Command, opts tallyOptions) error {
	file, err := ballotfile.ReadFile(opts.ballots)
	if err != nil {
		return err
	}

	// Flags beat file settings; file settings beat defaults.
	flags := cmd.Flags()
	if flags.Changed("name") || file.Name == "" {
		file.Name = opts.name
	}
	if file.Name == "" {
		file.Name = strings.TrimSuffix(filepath.Base(opts.ballots), filepath.Ext(opts.ballots))
	}
	if flags.Changed("seats") || file.Seats == 0 {
		file.Seats = opts.seats
	}
	if flags.Changed("protected") {
		file.ProtectedCandidate = opts.protected
	}

	election, err := rcv.New(file.Ballots, file.ProtectedCandidate, file.Name, file.Seats)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	var narrator rcv.Narrator
	writeErr := func() error { return nil }

	switch opts.format {
	case formatText:
		t := narration.NewText(out).WithEmphasis(isTerminal(out))
		narrator, writeErr = t, t.Err
	case formatHTML:
		h := narration.NewHTML(out)
		narrator, writeErr = h, h.Err
	case formatLog:
		level := slog.LevelInfo
		if opts.verbose {
			level = slog.LevelDebug
		}
		narrator = narration.NewLog(newLogger(out, opts.logJSON, level))
	default:
		return fmt.Errorf("unknown format %q (want text, html or log)", opts.format)
	}

	_, err = election.Conduct(narrator)
	if werr := writeErr(); werr != nil {
		return fmt.Errorf("failed to write narration: %w", werr)
	}
	return err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
