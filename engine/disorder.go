package engine

import (
	"time"

	"github.com/hannes-wan/pcap-editor/model"
)

// Violation is one packet whose timestamp runs behind its immediate
// predecessor's in stream order.
type Violation struct {
	OriginalIndex int
	Timestamp     time.Time
	Previous      time.Time
	// Magnitude is how far the packet is behind: Previous - Timestamp.
	Magnitude time.Duration
}

// DisorderReport is the outcome of one ordering audit.
type DisorderReport struct {
	Scanned    int
	Violations []Violation
}

func (r *DisorderReport) Ordered() bool {
	return len(r.Violations) == 0
}

// DetectDisorder scans seq once and records every strict timestamp decrease
// against the immediate predecessor. Equal timestamps are not a violation.
// The scan is read-only; empty and single-packet sequences report zero
// violations.
func DetectDisorder(seq *model.CaptureSequence) *DisorderReport {
	rep := &DisorderReport{Scanned: seq.Len()}
	recs := seq.Records()
	for i := 1; i < len(recs); i++ {
		if recs[i].Timestamp.Before(recs[i-1].Timestamp) {
			rep.Violations = append(rep.Violations, Violation{
				OriginalIndex: recs[i].OriginalIndex,
				Timestamp:     recs[i].Timestamp,
				Previous:      recs[i-1].Timestamp,
				Magnitude:     recs[i-1].Timestamp.Sub(recs[i].Timestamp),
			})
		}
	}
	return rep
}
