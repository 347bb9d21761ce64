package model

import (
	"time"
)

// PacketRecord is a single captured packet as the engine sees it: a
// timestamp, the raw payload bytes and the position the packet had in its
// source capture. OriginalIndex is assigned once at load time and never
// changes, even when a transform reorders or duplicates records.
type PacketRecord struct {
	OriginalIndex int
	Timestamp     time.Time
	Data          []byte
	// Length is the original wire length; Data may be shorter if the
	// capture truncated the packet at the snap length.
	Length int
}

// CaptureLength reports how many bytes were actually captured.
func (r *PacketRecord) CaptureLength() int {
	return len(r.Data)
}
