package replay

import (
	"fmt"
	"io"

	"github.com/justinjohnso-itp/lane-courier/internal/core"
)

// Stepper is the simulation surface replay needs: advance one tick and
// observe the state. The session satisfies it.
type Stepper interface {
	Step(in core.InputFrame) core.StepResult
	Snapshot() core.Snapshot
}

// Recorder writes a run to a replay file as it is played.
type Recorder struct {
	w     *Writer
	every uint64
}

// NewRecorder creates the file and writes the header. every is the digest
// interval in ticks.
func NewRecorder(path string, h Header, every uint64) (*Recorder, error) {
	if every == 0 {
		every = 300
	}
	h.Version = Version
	w, err := NewWriter(path)
	if err != nil {
		return nil, err
	}
	if err := w.WriteHeader(h); err != nil {
		w.Close()
		return nil, err
	}
	return &Recorder{w: w, every: every}, nil
}

// OnTick records one tick: the input frame when it carries input, and a
// digest on the configured interval. snap is only invoked when a digest is
// due. step is the 1-based Step call index, not the session tick — paused
// steps consume a step without advancing the session, and replay must
// reproduce those too.
func (r *Recorder) OnTick(step uint64, in core.InputFrame, snap func() core.Snapshot) error {
	if f, ok := EncodeFrame(step, in); ok {
		if err := r.w.WriteFrame(f); err != nil {
			return err
		}
	}
	if step%r.every == 0 {
		return r.writeDigest(step, snap())
	}
	return nil
}

// Finish writes a final digest and closes the file.
func (r *Recorder) Finish(step uint64, snap core.Snapshot) error {
	if err := r.writeDigest(step, snap); err != nil {
		r.w.Close()
		return err
	}
	return r.w.Close()
}

func (r *Recorder) writeDigest(tick uint64, snap core.Snapshot) error {
	hash, err := DigestSnapshot(snap)
	if err != nil {
		return err
	}
	return r.w.WriteDigest(Digest{Tick: tick, Hash: hash, Score: snap.Score})
}

// VerifyResult summarizes a verification pass.
type VerifyResult struct {
	Ticks   uint64
	Frames  int
	Digests int
	Score   int
}

// Verify re-simulates a replay file against a freshly built session and
// checks every recorded digest. build receives the header so the caller
// can reconstruct the run with the recorded seed and tick rate.
func Verify(path string, build func(Header) (Stepper, error)) (VerifyResult, error) {
	var res VerifyResult

	r, err := OpenReader(path)
	if err != nil {
		return res, err
	}
	defer r.Close()

	first, err := r.Next()
	if err != nil {
		return res, fmt.Errorf("replay: missing header: %w", err)
	}
	if first.Type != "header" || first.Header == nil {
		return res, fmt.Errorf("replay: first record is %q, want header", first.Type)
	}
	if first.Header.Version != Version {
		return res, fmt.Errorf("replay: unsupported version %d", first.Header.Version)
	}

	sim, err := build(*first.Header)
	if err != nil {
		return res, err
	}

	var cur uint64
	stepTo := func(target uint64, in core.InputFrame) {
		for cur+1 < target {
			sim.Step(core.NewInputFrame())
			cur++
		}
		if cur < target {
			sim.Step(in)
			cur++
		}
	}

	for {
		rec, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return res, err
		}

		switch rec.Type {
		case "frame":
			in, err := DecodeFrame(*rec.Frame)
			if err != nil {
				return res, err
			}
			stepTo(rec.Frame.Tick, in)
			res.Frames++
		case "digest":
			stepTo(rec.Digest.Tick, core.NewInputFrame())
			snap := sim.Snapshot()
			hash, err := DigestSnapshot(snap)
			if err != nil {
				return res, err
			}
			if hash != rec.Digest.Hash {
				return res, fmt.Errorf("%w at tick %d", ErrDigestMismatch, rec.Digest.Tick)
			}
			res.Digests++
			res.Score = snap.Score
		default:
			return res, fmt.Errorf("replay: unexpected record type %q", rec.Type)
		}
	}

	res.Ticks = cur
	return res, nil
}
