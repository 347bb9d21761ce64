package model

import (
	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
)

// Metadata carries the sequence-level properties copied from the source
// container. It must be handed back unchanged on write-back.
type Metadata struct {
	LinkType   layers.LinkType
	SnapLen    uint32
	Resolution gopacket.TimestampResolution
}

// CaptureSequence is the ordered collection of packet records from one
// capture file. A sequence is owned by exactly one operation at a time;
// transforms either mutate timestamps in place or build a replacement
// sequence with WithRecords.
type CaptureSequence struct {
	meta    Metadata
	records []PacketRecord
}

// Load builds a CaptureSequence from records in arrival order, assigning
// OriginalIndex 0..n-1.
func Load(meta Metadata, records []PacketRecord) *CaptureSequence {
	for i := range records {
		records[i].OriginalIndex = i
	}
	return &CaptureSequence{meta: meta, records: records}
}

// WithRecords returns a new sequence with the same metadata but a different
// record set. Unlike Load it leaves OriginalIndex values untouched, so
// derived sequences keep their provenance.
func (s *CaptureSequence) WithRecords(records []PacketRecord) *CaptureSequence {
	return &CaptureSequence{meta: s.meta, records: records}
}

func (s *CaptureSequence) Len() int {
	return len(s.records)
}

// Get returns the i-th record. The pointer stays valid until the sequence
// is replaced or discarded.
func (s *CaptureSequence) Get(i int) *PacketRecord {
	return &s.records[i]
}

// Records exposes the backing slice for ordered iteration.
func (s *CaptureSequence) Records() []PacketRecord {
	return s.records
}

func (s *CaptureSequence) Meta() Metadata {
	return s.meta
}
