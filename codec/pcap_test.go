package codec

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hannes-wan/pcap-editor/model"
)

func testSequence(t *testing.T, n int) *model.CaptureSequence {
	t.Helper()
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	records := make([]model.PacketRecord, n)
	for i := range records {
		data := bytes.Repeat([]byte{byte(i + 1)}, 60)
		records[i] = model.PacketRecord{
			// Microsecond grid: the default pcap writer stores µs.
			Timestamp: base.Add(time.Duration(i) * 125 * time.Microsecond),
			Data:      data,
			Length:    len(data),
		}
	}
	meta := model.Metadata{
		LinkType:   layers.LinkTypeEthernet,
		SnapLen:    65535,
		Resolution: gopacket.TimestampResolutionMicrosecond,
	}
	return model.Load(meta, records)
}

func TestWriteReadRoundTrip(t *testing.T) {
	seq := testSequence(t, 25)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, seq))

	got, err := Read(&buf)
	require.NoError(t, err)

	require.Equal(t, seq.Len(), got.Len())
	assert.Equal(t, seq.Meta().LinkType, got.Meta().LinkType)
	assert.Equal(t, seq.Meta().SnapLen, got.Meta().SnapLen)
	for i := 0; i < seq.Len(); i++ {
		want, have := seq.Get(i), got.Get(i)
		assert.Equal(t, i, have.OriginalIndex)
		assert.Equal(t, want.Data, have.Data)
		assert.True(t, want.Timestamp.Equal(have.Timestamp),
			"timestamp of packet %d must survive the round trip", i)
	}
}

func TestReadFileWriteFileRoundTrip(t *testing.T) {
	seq := testSequence(t, 10)
	path := filepath.Join(t.TempDir(), "capture.pcap")

	require.NoError(t, WriteFile(path, seq))

	got, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, seq.Len(), got.Len())
	assert.Equal(t, seq.Get(7).Data, got.Get(7).Data)
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.pcap"))
	require.Error(t, err)
	var lerr *LoadError
	assert.ErrorAs(t, err, &lerr)
}

func TestReadRejectsGarbage(t *testing.T) {
	_, err := Read(bytes.NewReader([]byte("this is not a pcap file at all")))
	assert.Error(t, err)
}

func TestWriteFileBadPath(t *testing.T) {
	seq := testSequence(t, 1)
	err := WriteFile(filepath.Join(t.TempDir(), "missing", "out.pcap"), seq)
	require.Error(t, err)
	var werr *WriteError
	assert.ErrorAs(t, err, &werr)
}

func TestWriteEmptySequence(t *testing.T) {
	seq := testSequence(t, 0)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, seq))

	got, err := Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Len())
}
