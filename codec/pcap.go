// Package codec reads and writes the pcap container format. It is the
// engine's only I/O boundary: it materializes a full CaptureSequence from a
// file and serializes a transformed sequence back, preserving the source
// metadata (link type, snap length, timestamp resolution).
package codec

import (
	"fmt"
	"io"
	"os"

	"github.com/google/gopacket"
	"github.com/google/gopacket/pcapgo"
	"github.com/pkg/errors"
	slog "github.com/vearne/simplelog"

	"github.com/hannes-wan/pcap-editor/model"
)

// LoadError wraps any failure while reading a capture file. It is fatal;
// the engine never retries or partially recovers from a malformed source.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// WriteError wraps any failure while serializing a capture file.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Read materializes a capture sequence from r, preserving per-packet order
// as load order.
func Read(r io.Reader) (*model.CaptureSequence, error) {
	pr, err := pcapgo.NewReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "read pcap header")
	}

	meta := model.Metadata{
		LinkType:   pr.LinkType(),
		SnapLen:    pr.Snaplen(),
		Resolution: pr.Resolution(),
	}

	var records []model.PacketRecord
	for {
		data, ci, err := pr.ReadPacketData()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "read packet %d", len(records))
		}
		records = append(records, model.PacketRecord{
			Timestamp: ci.Timestamp,
			Data:      data,
			Length:    ci.Length,
		})
	}
	return model.Load(meta, records), nil
}

// Write serializes seq to w with its original metadata. Nanosecond-
// resolution captures are written back with the nanosecond pcap magic so
// the source precision survives.
func Write(w io.Writer, seq *model.CaptureSequence) error {
	meta := seq.Meta()
	var pw *pcapgo.Writer
	if meta.Resolution == gopacket.TimestampResolutionNanosecond {
		pw = pcapgo.NewWriterNanos(w)
	} else {
		pw = pcapgo.NewWriter(w)
	}
	if err := pw.WriteFileHeader(meta.SnapLen, meta.LinkType); err != nil {
		return errors.Wrap(err, "write pcap header")
	}

	recs := seq.Records()
	for i := range recs {
		ci := gopacket.CaptureInfo{
			Timestamp:     recs[i].Timestamp,
			CaptureLength: len(recs[i].Data),
			Length:        recs[i].Length,
		}
		if ci.Length < ci.CaptureLength {
			ci.Length = ci.CaptureLength
		}
		if err := pw.WritePacket(ci, recs[i].Data); err != nil {
			return errors.Wrapf(err, "write packet %d", i)
		}
	}
	return nil
}

// ReadFile loads the capture at path. Failures surface as *LoadError.
func ReadFile(path string) (*model.CaptureSequence, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	seq, err := Read(f)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	slog.Debug("loaded %d packets from %s", seq.Len(), path)
	return seq, nil
}

// WriteFile serializes seq to path. Failures surface as *WriteError.
func WriteFile(path string, seq *model.CaptureSequence) error {
	f, err := os.Create(path)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}

	if err := Write(f, seq); err != nil {
		f.Close()
		return &WriteError{Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	slog.Debug("wrote %d packets to %s", seq.Len(), path)
	return nil
}
