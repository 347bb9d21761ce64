package engine

import (
	"sort"

	"github.com/hannes-wan/pcap-editor/model"
)

// CompareOptions is the comparator's only configuration surface.
type CompareOptions struct {
	// IgnoreTimestamp excludes the timestamp from the content hash, so
	// packets with identical payloads match regardless of capture time.
	IgnoreTimestamp bool
}

// DiffEntry identifies one unmatched packet.
type DiffEntry struct {
	OriginalIndex int
	Length        int
	Hash          Digest
}

// CompareResult is the multiset difference between two sequences.
// Missing holds reference packets absent from the candidate, ascending by
// reference index; Extra holds candidate packets absent from the reference,
// ascending by candidate index.
type CompareResult struct {
	ReferenceCount int
	CandidateCount int
	Missing        []DiffEntry
	Extra          []DiffEntry
}

// Identical reports whether the two sequences carry the same packet
// multiset. Order differences alone never make sequences non-identical.
func (r *CompareResult) Identical() bool {
	return len(r.Missing) == 0 && len(r.Extra) == 0
}

// Compare computes the content-hash multiset difference between a reference
// and a candidate sequence. Packets are bucketed by digest; within each
// bucket occurrences are consumed pairwise front to back, so reordering and
// duplication are both tolerated and duplicates match up to the smaller
// multiplicity. Ties inside a bucket are broken purely by original order.
// This is deliberately not a positional alignment: a stronger algorithm
// would change observable results on inputs with repeated-hash packets.
func Compare(reference, candidate *model.CaptureSequence, opts CompareOptions) *CompareResult {
	refBuckets := bucketize(reference, opts.IgnoreTimestamp)
	candBuckets := bucketize(candidate, opts.IgnoreTimestamp)

	res := &CompareResult{
		ReferenceCount: reference.Len(),
		CandidateCount: candidate.Len(),
	}

	// Greedy pairwise consumption leaves each bucket's tail unmatched.
	for hash, refList := range refBuckets {
		if matched := len(candBuckets[hash]); matched < len(refList) {
			res.Missing = append(res.Missing, refList[matched:]...)
		}
	}
	for hash, candList := range candBuckets {
		if matched := len(refBuckets[hash]); matched < len(candList) {
			res.Extra = append(res.Extra, candList[matched:]...)
		}
	}

	sort.Slice(res.Missing, func(i, j int) bool {
		return res.Missing[i].OriginalIndex < res.Missing[j].OriginalIndex
	})
	sort.Slice(res.Extra, func(i, j int) bool {
		return res.Extra[i].OriginalIndex < res.Extra[j].OriginalIndex
	})
	return res
}

// bucketize maps each distinct digest to its occurrences in load order.
func bucketize(seq *model.CaptureSequence, ignoreTimestamp bool) map[Digest][]DiffEntry {
	buckets := make(map[Digest][]DiffEntry, seq.Len())
	recs := seq.Records()
	for i := range recs {
		hash := HashRecord(&recs[i], ignoreTimestamp)
		buckets[hash] = append(buckets[hash], DiffEntry{
			OriginalIndex: recs[i].OriginalIndex,
			Length:        len(recs[i].Data),
			Hash:          hash,
		})
	}
	return buckets
}
