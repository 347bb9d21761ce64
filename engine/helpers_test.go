package engine

import (
	"fmt"
	"time"

	"github.com/hannes-wan/pcap-editor/model"
)

var testBase = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

// evenSequence builds n packets spaced interval apart with distinct payloads.
func evenSequence(n int, interval time.Duration) *model.CaptureSequence {
	records := make([]model.PacketRecord, n)
	for i := range records {
		records[i] = model.PacketRecord{
			Timestamp: testBase.Add(time.Duration(i) * interval),
			Data:      []byte(fmt.Sprintf("packet-%04d", i)),
		}
	}
	return model.Load(model.Metadata{}, records)
}

// sequenceAt builds one packet per given offset from testBase.
func sequenceAt(offsets ...time.Duration) *model.CaptureSequence {
	records := make([]model.PacketRecord, len(offsets))
	for i, off := range offsets {
		records[i] = model.PacketRecord{
			Timestamp: testBase.Add(off),
			Data:      []byte(fmt.Sprintf("packet-%04d", i)),
		}
	}
	return model.Load(model.Metadata{}, records)
}

func timestamps(seq *model.CaptureSequence) []time.Time {
	out := make([]time.Time, seq.Len())
	for i, rec := range seq.Records() {
		out[i] = rec.Timestamp
	}
	return out
}
