// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ballotfile

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrUnknownFormat   = errors.New("unknown ballot file format")
	ErrMalformedBallot = errors.New("malformed ballot")
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// File is the content of a ballot file. Settings are zero when the file
// does not carry them.
type File struct {
	Name               string     `json:"name"`
	Seats              int        `json:"seats"`
	ProtectedCandidate string     `json:"protected_candidate"`
	Ballots            [][]string `json:"ballots"`
}

// FormatFromPath maps a file extension to a Format.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

// ReadFile opens path and parses it according to its extension.
func ReadFile(path string) (File, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return File{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return File{}, fmt.Errorf("failed to open ballot file: %w", err)
	}
	defer f.Close()

	return Read(f, format)
}

// Read parses ballots in the given format.
func Read(r io.Reader, format Format) (File, error) {
	switch format {
	case FormatCSV:
		ballots, err := readCSV(r)
		return File{Ballots: ballots}, err
	case FormatJSON:
		return readJSON(r)
	default:
		return File{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func readCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.Comment = '#'
	reader.TrimLeadingSpace = true

	ballots := [][]string{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedBallot, err)
		}

		var ballot []string
		for _, cell := range record {
			if c := strings.TrimSpace(cell); c != "" {
				ballot = append(ballot, c)
			}
		}
		if len(ballot) > 0 {
			ballots = append(ballots, ballot)
		}
	}
	return ballots, nil
}

func readJSON(r io.Reader) (File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return File{}, fmt.Errorf("failed to read ballot file: %w", err)
	}

	var file File
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		err = json.Unmarshal(trimmed, &file.Ballots)
	} else {
		err = json.Unmarshal(trimmed, &file)
	}
	if err != nil {
		return File{}, fmt.Errorf("%w: %v", ErrMalformedBallot, err)
	}
	if file.Ballots == nil {
		return File{}, fmt.Errorf("%w: no ballots", ErrMalformedBallot)
	}
	return file, nil
}
