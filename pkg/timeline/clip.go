// Package timeline maps tick positions onto the frames of a clip.
//
// # Core Components
//
//   - [Clip]: a span of ticks played at a [tick.Rate]. It reports the
//     progress through the span, the frame shown at any tick, and the start of
//     every frame it contains.
//
//   - [Tween]: interpolates between begin and end values of any type using a
//     clip's progress.
//
// # Basic Usage
//
//	clip, err := timeline.NewClip(0, 2*tick.Second, tick.FPS24)
//	if err != nil {
//	    return err
//	}
//	opacity := timeline.TweenFloat64(0, 1)
//	for i, start := range clip.Frames() {
//	    render(i, opacity.Transform(clip, start))
//	}
//
// Everything here is a pure function of its inputs. Drive a clip from
// whatever clock the host application uses; the clip never reads time itself.
package timeline

import (
	"fmt"
	"iter"

	"github.com/go-drift/tick/pkg/errors"
	"github.com/go-drift/tick/pkg/tick"
)

// Phase describes where a tick lies relative to a clip.
//
//	          Start              End
//	Before ─────┼──── Playing ────┼───── After
type Phase int

const (
	// PhaseBefore means the tick precedes the clip.
	PhaseBefore Phase = iota
	// PhasePlaying means the tick lies within [Start, End).
	PhasePlaying
	// PhaseAfter means the tick is at or past the end of the clip.
	PhaseAfter
)

// String returns a human-readable representation of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseBefore:
		return "before"
	case PhasePlaying:
		return "playing"
	case PhaseAfter:
		return "after"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Clip is a span of ticks shown at a frame rate.
//
// A clip's frames are the frames of the rate's grid, counted from tick zero,
// whose start lies inside [Start, End). They are numbered from 0 within the
// clip. A clip that starts between two frame boundaries begins with the next
// whole frame.
type Clip struct {
	// Start is the first tick of the clip.
	Start tick.Tick

	// Length is the duration of the clip. Always positive.
	Length tick.Tick

	// Rate converts between ticks and frames.
	Rate tick.Rate

	// Curve transforms linear progress (optional).
	Curve func(float64) float64
}

// NewClip returns a clip covering [start, start+length) at rate. It fails
// with ErrInvalidInput for a non-positive length or a nil rate, and with
// ErrOverflow when the end does not fit in a tick.
func NewClip(start, length tick.Tick, rate tick.Rate) (*Clip, error) {
	if length <= 0 {
		return nil, errors.New("timeline.NewClip", errors.KindInvalidInput, length)
	}
	if rate == nil {
		return nil, errors.New("timeline.NewClip", errors.KindInvalidInput, "nil rate")
	}
	if _, err := start.Add(length); err != nil {
		return nil, err
	}
	return &Clip{
		Start:  start,
		Length: length,
		Rate:   rate,
		Curve:  LinearCurve,
	}, nil
}

// ClipFrames returns a clip holding count frames at rate, starting at frame
// first. The clip's bounds land exactly on frame boundaries.
func ClipFrames(first, count int64, rate tick.FrameRate) (*Clip, error) {
	if count <= 0 {
		return nil, errors.New("timeline.ClipFrames", errors.KindInvalidInput, count)
	}
	start, err := tick.FromFrame(first, rate)
	if err != nil {
		return nil, err
	}
	length, err := rate.TicksPerFrame().Mul(count)
	if err != nil {
		return nil, err
	}
	return NewClip(start, length, rate)
}

// End returns the first tick after the clip.
func (c *Clip) End() tick.Tick {
	return c.Start + c.Length
}

// Phase reports where at lies relative to the clip.
func (c *Clip) Phase(at tick.Tick) Phase {
	switch {
	case at < c.Start:
		return PhaseBefore
	case at >= c.End():
		return PhaseAfter
	default:
		return PhasePlaying
	}
}

// Contains reports whether at lies within [Start, End).
func (c *Clip) Contains(at tick.Tick) bool {
	return c.Phase(at) == PhasePlaying
}

// Progress returns how far at lies through the clip, clamped to [0, 1] and
// passed through Curve.
func (c *Clip) Progress(at tick.Tick) float64 {
	var progress float64
	switch c.Phase(at) {
	case PhaseBefore:
		progress = 0
	case PhaseAfter:
		progress = 1
	default:
		progress = float64(at-c.Start) / float64(c.Length)
	}
	if c.Curve != nil {
		return c.Curve(progress)
	}
	return progress
}

// bounds returns the absolute indices of the first and last frame whose
// start lies inside the clip. last < first when the clip holds no frame
// start.
func (c *Clip) bounds() (first, last int64) {
	first = c.Rate.FrameAt(c.Start)
	if s, err := c.Rate.FrameStart(first); err != nil || s < c.Start {
		first++
	}
	last = c.Rate.FrameAt(c.End() - 1)
	return first, last
}

// FrameCount returns the number of frames that start inside the clip.
func (c *Clip) FrameCount() int64 {
	first, last := c.bounds()
	if last < first {
		return 0
	}
	return last - first + 1
}

// FrameAt returns the clip-relative index of the frame shown at at. Ticks
// before the first frame map to 0 and ticks after the clip map to the last
// frame, so playback never leaves the clip. A clip with no frames returns
// -1.
func (c *Clip) FrameAt(at tick.Tick) int64 {
	first, last := c.bounds()
	if last < first {
		return -1
	}
	f := c.Rate.FrameAt(at)
	return min(max(f, first), last) - first
}

// FrameStart returns the tick at which clip-relative frame i begins.
func (c *Clip) FrameStart(i int64) (tick.Tick, error) {
	first, last := c.bounds()
	if i < 0 || i > last-first {
		return 0, errors.New("timeline.Clip.FrameStart", errors.KindInvalidInput, i)
	}
	return c.Rate.FrameStart(first + i)
}

// Frames iterates over the clip's frames in order, yielding each
// clip-relative index with the tick at which that frame starts. Every index
// appears exactly once.
func (c *Clip) Frames() iter.Seq2[int64, tick.Tick] {
	return func(yield func(int64, tick.Tick) bool) {
		first, last := c.bounds()
		for f := first; f <= last; f++ {
			start, err := c.Rate.FrameStart(f)
			if err != nil || !yield(f-first, start) {
				return
			}
			if f == last {
				return
			}
		}
	}
}
