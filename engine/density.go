package engine

import (
	"time"

	"github.com/hannes-wan/pcap-editor/model"
)

// Dilute down-samples seq by stride: every k-th packet (zero-based position
// i with i mod k == 0) is kept with its timestamp unchanged, so the shape of
// the original time distribution survives without interpolation. The result
// is a new sequence of length ceil(n/k); k == 1 returns a copy of the input.
func Dilute(seq *model.CaptureSequence, k int) (*model.CaptureSequence, error) {
	if k < 1 {
		return nil, &InvalidFactorError{Op: "dilute", Factor: float64(k)}
	}

	recs := seq.Records()
	kept := make([]model.PacketRecord, 0, (len(recs)+k-1)/k)
	for i := range recs {
		if i%k == 0 {
			kept = append(kept, recs[i])
		}
	}
	return seq.WithRecords(kept), nil
}

// Augment emits m copies of every packet. The first copy keeps the original
// timestamp; copy j is placed at t_i + j*gap/m where gap is the interval to
// the next original packet, so duplicates land strictly inside the gap and
// never collide in time. The last packet extrapolates with the preceding
// interval; a single-packet sequence reuses its timestamp. Duplicates keep
// the source packet's OriginalIndex. The result is a new sequence of length
// m*n; m == 1 returns a copy of the input.
func Augment(seq *model.CaptureSequence, m int) (*model.CaptureSequence, error) {
	if m < 1 {
		return nil, &InvalidFactorError{Op: "augment", Factor: float64(m)}
	}

	recs := seq.Records()
	out := make([]model.PacketRecord, 0, len(recs)*m)
	for i := range recs {
		gap := spreadInterval(recs, i)
		out = append(out, recs[i])
		for j := 1; j < m; j++ {
			dup := recs[i]
			dup.Timestamp = recs[i].Timestamp.Add(gap * time.Duration(j) / time.Duration(m))
			out = append(out, dup)
		}
	}
	return seq.WithRecords(out), nil
}

// spreadInterval is the time window available for packet i's duplicates:
// the gap to the next packet, or for the last packet the preceding
// inter-packet interval. Zero for a single-packet sequence.
func spreadInterval(recs []model.PacketRecord, i int) time.Duration {
	switch {
	case i+1 < len(recs):
		return recs[i+1].Timestamp.Sub(recs[i].Timestamp)
	case i > 0:
		return recs[i].Timestamp.Sub(recs[i-1].Timestamp)
	default:
		return 0
	}
}
