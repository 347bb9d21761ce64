// Package engine implements the packet-stream processing core: timestamp
// rescaling, density adjustment, ordering audits and content-based
// comparison over in-memory capture sequences. All operations are pure
// single-threaded passes; the package never performs I/O and never logs.
package engine

import (
	"math"
	"time"

	"github.com/hannes-wan/pcap-editor/model"
)

// Scale rescales the timeline of seq by factor, anchored at the first
// packet's timestamp: t' = t0 + (t-t0)/factor. factor > 1 compresses the
// timeline, 0 < factor < 1 stretches it, 1 is the identity. The absolute
// start time is preserved; only inter-packet spacing changes.
//
// Each packet's offset is computed independently from t0 so rounding error
// does not accumulate across long sequences. Relative timestamp order is
// preserved. The sequence is mutated in place; packet count and payloads
// are untouched. An empty sequence is a no-op.
func Scale(seq *model.CaptureSequence, factor float64) error {
	if factor <= 0 {
		return &InvalidFactorError{Op: "scale", Factor: factor}
	}
	if seq.Len() == 0 {
		return nil
	}

	t0 := seq.Get(0).Timestamp
	for i := 0; i < seq.Len(); i++ {
		rec := seq.Get(i)
		offset := rec.Timestamp.Sub(t0)
		scaled := time.Duration(math.Round(float64(offset) / factor))
		rec.Timestamp = t0.Add(scaled)
	}
	return nil
}
