// Package report renders the engine's analysis results as human-readable
// text. Rendering targets an injected io.Writer; the caller decides the
// sink. Each rendered report carries a run id so artifacts from batch runs
// can be told apart.
package report

import (
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/hannes-wan/pcap-editor/engine"
)

const tsLayout = "2006-01-02 15:04:05.000000000"

// RenderDisorder writes a summary of an ordering audit.
func RenderDisorder(w io.Writer, rep *engine.DisorderReport) error {
	_, err := fmt.Fprintf(w, "Disorder scan (run %s)\n- packets scanned: %d\n- out-of-order packets: %d\n",
		uuid.NewString(), rep.Scanned, len(rep.Violations))
	if err != nil {
		return err
	}

	for _, v := range rep.Violations {
		_, err = fmt.Fprintf(w, "  [packet %d] %s < %s (behind by %v)\n",
			v.OriginalIndex, v.Timestamp.Format(tsLayout), v.Previous.Format(tsLayout), v.Magnitude)
		if err != nil {
			return err
		}
	}

	verdict := "no out-of-order packets detected"
	if !rep.Ordered() {
		verdict = "capture contains out-of-order packets"
	}
	_, err = fmt.Fprintf(w, "Result: %s\n", verdict)
	return err
}

// RenderCompare writes the missing/extra packet summary of a differential
// comparison.
func RenderCompare(w io.Writer, res *engine.CompareResult) error {
	_, err := fmt.Fprintf(w,
		"Capture content comparison (run %s)\n- reference packets: %d\n- candidate packets: %d\n- missing packets: %d\n- extra packets: %d\n",
		uuid.NewString(), res.ReferenceCount, res.CandidateCount, len(res.Missing), len(res.Extra))
	if err != nil {
		return err
	}

	if len(res.Missing) > 0 {
		if err = renderEntries(w, "Missing packets (present in reference, absent from candidate):", "reference", res.Missing); err != nil {
			return err
		}
	}
	if len(res.Extra) > 0 {
		if err = renderEntries(w, "Extra packets (present in candidate, absent from reference):", "candidate", res.Extra); err != nil {
			return err
		}
	}

	verdict := "captures are identical"
	if !res.Identical() {
		verdict = "captures differ"
	}
	_, err = fmt.Fprintf(w, "Result: %s\n", verdict)
	return err
}

func renderEntries(w io.Writer, title, side string, entries []engine.DiffEntry) error {
	if _, err := fmt.Fprintf(w, "\n%s\n", title); err != nil {
		return err
	}
	for _, e := range entries {
		_, err := fmt.Fprintf(w, "  [%s %d] %d bytes, hash %s\n", side, e.OriginalIndex, e.Length, e.Hash)
		if err != nil {
			return err
		}
	}
	return nil
}
