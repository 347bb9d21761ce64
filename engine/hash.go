package engine

import (
	"encoding/binary"
	"encoding/hex"

	"lukechampine.com/blake3"

	"github.com/hannes-wan/pcap-editor/model"
)

// DigestSize is the content hash width in bytes. 256 bits keeps the
// collision probability negligible even for very large captures, so digest
// equality is treated as payload equality.
const DigestSize = 32

// Digest is a packet's content-identity key.
type Digest [DigestSize]byte

func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// HashRecord computes the content hash of a record over its payload bytes.
// Unless ignoreTimestamp is set, the timestamp (unix seconds plus
// nanoseconds, big endian) is folded in after the payload, so two packets
// with identical bytes but different capture times hash differently.
// No other record field ever participates.
func HashRecord(rec *model.PacketRecord, ignoreTimestamp bool) Digest {
	h := blake3.New(DigestSize, nil)
	h.Write(rec.Data)
	if !ignoreTimestamp {
		var ts [12]byte
		binary.BigEndian.PutUint64(ts[:8], uint64(rec.Timestamp.Unix()))
		binary.BigEndian.PutUint32(ts[8:], uint32(rec.Timestamp.Nanosecond()))
		h.Write(ts[:])
	}
	var d Digest
	h.Sum(d[:0])
	return d
}
