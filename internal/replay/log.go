// Package replay records and replays runs. A replay file is a
// zstd-compressed JSONL stream: one header, a sparse sequence of input
// frames, and periodic state digests. Because the simulation is
// deterministic given seed and inputs, re-simulating the frames must
// reproduce every digest, which makes replays double as a determinism
// check.
package replay

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"hash/fnv"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"

	"github.com/justinjohnso-itp/lane-courier/internal/core"
)

// Version is bumped whenever the record shapes change incompatibly.
const Version = 1

// Header opens every replay file.
type Header struct {
	Version  int    `json:"version"`
	RunID    string `json:"runId"`
	Seed     int64  `json:"seed"`
	TickRate int    `json:"tickRate"`
}

// Frame records the input of one tick. Ticks without input are omitted.
type Frame struct {
	Tick     uint64   `json:"tick"`
	Steering float64  `json:"steering,omitempty"`
	Actions  []string `json:"actions,omitempty"`
}

// Digest records a state hash at a tick.
type Digest struct {
	Tick  uint64 `json:"tick"`
	Hash  uint64 `json:"hash"`
	Score int    `json:"score"`
}

// Record is one JSONL line, discriminated by Type.
type Record struct {
	Type   string  `json:"type"`
	Header *Header `json:"header,omitempty"`
	Frame  *Frame  `json:"frame,omitempty"`
	Digest *Digest `json:"digest,omitempty"`
}

// DigestSnapshot hashes a snapshot's JSON encoding. Struct-only fields
// keep the encoding stable, so the hash is stable too.
func DigestSnapshot(snap core.Snapshot) (uint64, error) {
	b, err := json.Marshal(snap)
	if err != nil {
		return 0, err
	}
	h := fnv.New64a()
	h.Write(b)
	return h.Sum64(), nil
}

// Writer streams records into a zstd-compressed JSONL file.
type Writer struct {
	f   *os.File
	enc *zstd.Encoder
	w   *bufio.Writer
}

// NewWriter creates the replay file, making parent directories as needed.
func NewWriter(path string) (*Writer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("replay: cannot create directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("replay: cannot create file: %w", err)
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("replay: cannot create encoder: %w", err)
	}
	return &Writer{f: f, enc: enc, w: bufio.NewWriterSize(enc, 64*1024)}, nil
}

func (w *Writer) write(rec Record) error {
	b, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	if _, err := w.w.Write(b); err != nil {
		return err
	}
	return w.w.WriteByte('\n')
}

// WriteHeader must be the first record written.
func (w *Writer) WriteHeader(h Header) error {
	return w.write(Record{Type: "header", Header: &h})
}

// WriteFrame records one tick's input.
func (w *Writer) WriteFrame(f Frame) error {
	return w.write(Record{Type: "frame", Frame: &f})
}

// WriteDigest records a state hash.
func (w *Writer) WriteDigest(d Digest) error {
	return w.write(Record{Type: "digest", Digest: &d})
}

// Close flushes and closes the file.
func (w *Writer) Close() error {
	var firstErr error
	if err := w.w.Flush(); err != nil {
		firstErr = err
	}
	if err := w.enc.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	if err := w.f.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}

// Reader iterates the records of a replay file.
type Reader struct {
	f   *os.File
	dec *zstd.Decoder
	sc  *bufio.Scanner
}

// OpenReader opens a replay file for reading.
func OpenReader(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("replay: cannot open file: %w", err)
	}
	dec, err := zstd.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("replay: cannot create decoder: %w", err)
	}
	sc := bufio.NewScanner(dec)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	return &Reader{f: f, dec: dec, sc: sc}, nil
}

// Next returns the next record, or io.EOF at end of stream.
func (r *Reader) Next() (Record, error) {
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return Record{}, err
		}
		return Record{}, io.EOF
	}
	var rec Record
	if err := json.Unmarshal(r.sc.Bytes(), &rec); err != nil {
		return Record{}, fmt.Errorf("replay: malformed record: %w", err)
	}
	return rec, nil
}

// Close releases the decoder and file.
func (r *Reader) Close() error {
	r.dec.Close()
	return r.f.Close()
}

// recordedActions are the actions worth persisting, in wire order.
var recordedActions = []core.Action{
	core.ActionCycle,
	core.ActionCycleBack,
	core.ActionDeliver,
	core.ActionPause,
	core.ActionRestart,
}

// EncodeFrame converts an input frame into a replay frame.
// Returns false when the frame carries no input worth recording.
func EncodeFrame(tick uint64, in core.InputFrame) (Frame, bool) {
	f := Frame{Tick: tick, Steering: in.Steering}
	for _, action := range recordedActions {
		if in.Has(action) {
			f.Actions = append(f.Actions, action.String())
		}
	}
	if f.Steering == 0 && len(f.Actions) == 0 {
		return Frame{}, false
	}
	return f, true
}

// DecodeFrame reconstructs an input frame from a replay frame.
func DecodeFrame(f Frame) (core.InputFrame, error) {
	in := core.NewInputFrame()
	in.Steering = f.Steering
	for _, name := range f.Actions {
		action, ok := core.ParseAction(name)
		if !ok {
			return in, fmt.Errorf("replay: unknown action %q", name)
		}
		in.Set(action)
	}
	return in, nil
}

// ErrDigestMismatch reports a replay whose re-simulation diverged.
var ErrDigestMismatch = errors.New("replay: digest mismatch")
