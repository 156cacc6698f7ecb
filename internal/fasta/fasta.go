// Package fasta reads multi-FASTA text to uppercased sequence records.
package fasta

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// DefaultID names records whose header is missing.
const DefaultID = "Sequence"

// Sequence is a single FASTA record.
type Sequence struct {
	// ID is the header line without the leading '>'
	ID string `json:"id"`

	// Seq is the uppercased sequence
	Seq string `json:"sequence"`
}

// Read a FASTA file (by its path on local FS) to a slice of Sequences.
// A path of "-" reads from stdin.
func Read(path string) (seqs []Sequence, err error) {
	var dat []byte
	if path == "-" {
		if dat, err = io.ReadAll(os.Stdin); err != nil {
			return nil, fmt.Errorf("failed to read FASTA from stdin: %w", err)
		}
	} else {
		if !filepath.IsAbs(path) {
			if path, err = filepath.Abs(path); err != nil {
				return nil, fmt.Errorf("failed to create path to FASTA file: %w", err)
			}
		}

		if dat, err = os.ReadFile(path); err != nil {
			return nil, fmt.Errorf("failed to read FASTA file: %w", err)
		}
	}

	if strings.TrimSpace(string(dat)) == "" {
		return nil, fmt.Errorf("failed to parse sequence(s) from %s: empty input", path)
	}

	return Parse(string(dat)), nil
}

// Parse splits FASTA text into records. Lines are trimmed and sequence
// lines uppercased. Lines ahead of the first header belong to a record
// named DefaultID, and a header with no lines after it is dropped. If no
// record had any lines, the whole text is returned as one DefaultID record.
func Parse(contents string) (seqs []Sequence) {
	id := DefaultID
	var lines []string

	for _, line := range strings.Split(contents, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, ">") {
			if len(lines) > 0 {
				seqs = append(seqs, Sequence{ID: id, Seq: strings.Join(lines, "")})
				lines = nil
			}
			id = line[1:]
			continue
		}
		lines = append(lines, strings.ToUpper(line))
	}

	if len(lines) > 0 {
		seqs = append(seqs, Sequence{ID: id, Seq: strings.Join(lines, "")})
	}

	if len(seqs) == 0 {
		seqs = append(seqs, Sequence{
			ID:  DefaultID,
			Seq: strings.ToUpper(strings.ReplaceAll(contents, "\n", "")),
		})
	}

	return seqs
}

// Write renders the sequences as FASTA records, one line per sequence.
func Write(w io.Writer, seqs []Sequence) error {
	for _, s := range seqs {
		if _, err := fmt.Fprintf(w, ">%s\n%s\n", s.ID, s.Seq); err != nil {
			return fmt.Errorf("failed to write %s: %w", s.ID, err)
		}
	}
	return nil
}
