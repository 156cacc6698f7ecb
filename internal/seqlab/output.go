package seqlab

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/jjtimmons/seqlab/internal/align"
	"github.com/jjtimmons/seqlab/internal/fasta"
)

// outputWriter writes the text form of a command's results, keeping the
// first write error.
type outputWriter struct {
	w   io.Writer
	err error
}

func (o *outputWriter) line(format string, args ...interface{}) {
	if o.err != nil {
		return
	}
	_, o.err = fmt.Fprintf(o.w, format+"\n", args...)
}

// alignment writes the aligned triplet and its score.
func (o *outputWriter) alignment(title string, r align.Result) {
	o.line("%s", title)
	o.line("%s", r.Aligned1)
	o.line("%s", r.Symbols)
	o.line("%s", r.Aligned2)
	o.line("Alignment Score: %d", r.Score)
}

func (o *outputWriter) fasta(seqs []fasta.Sequence) {
	if o.err != nil {
		return
	}
	o.err = fasta.Write(o.w, seqs)
}

// writeOutput writes v as indented JSON, or calls text to write it in its
// text form, to the file at path (stdout if path is empty).
func writeOutput(path string, asJSON bool, v interface{}, text func(w *outputWriter)) (err error) {
	var dst io.Writer = os.Stdout
	if path != "" {
		f, createErr := os.Create(path)
		if createErr != nil {
			return fmt.Errorf("failed to create output file: %w", createErr)
		}
		defer func() {
			if closeErr := f.Close(); err == nil && closeErr != nil {
				err = fmt.Errorf("failed to write the output: %w", closeErr)
			}
		}()
		dst = f
	}

	if asJSON {
		b, marshalErr := json.MarshalIndent(v, "", "  ")
		if marshalErr != nil {
			return fmt.Errorf("failed to serialize output: %w", marshalErr)
		}
		if _, err = dst.Write(append(b, '\n')); err != nil {
			return fmt.Errorf("failed to write the output: %w", err)
		}
		return nil
	}

	tw := tabwriter.NewWriter(dst, 0, 4, 3, ' ', 0)
	w := &outputWriter{w: tw}
	text(w)
	if w.err != nil {
		return fmt.Errorf("failed to write the output: %w", w.err)
	}
	return tw.Flush()
}
