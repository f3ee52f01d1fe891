package tick

import (
	"math"
	"strconv"

	"github.com/go-drift/tick/pkg/errors"
)

// Rate converts between ticks and frame indices. [FrameRate] implements it
// exactly; [ApproxFrameRate] implements it with rounding.
type Rate interface {
	// FrameAt returns the index of the frame containing t.
	FrameAt(t Tick) int64
	// FrameStart returns the tick at which frame begins.
	FrameStart(frame int64) (Tick, error)
}

// ApproxFrameRate is a frames-per-second value that need not divide
// [TicksPerSecond], such as 29.97hz. Frame boundaries at such a rate fall
// between ticks, so each conversion rounds to the nearest tick and frame
// lengths vary by one tick. Use [FrameRate] wherever exact alignment matters.
type ApproxFrameRate struct {
	fps float64
}

// NewApproxFrameRate returns fps as an ApproxFrameRate. It fails with
// ErrInvalidFrameRate unless fps is finite, strictly positive and no more
// than TicksPerSecond.
func NewApproxFrameRate(fps float64) (ApproxFrameRate, error) {
	if math.IsNaN(fps) || fps <= 0 || fps > float64(TicksPerSecond) {
		return ApproxFrameRate{}, errors.New("tick.NewApproxFrameRate", errors.KindInvalidFrameRate, fps)
	}
	return ApproxFrameRate{fps: fps}, nil
}

// NTSC returns the pulled-down rate rate*1000/1001, e.g. NTSC(30) is
// 29.97hz and NTSC(24) is 23.976hz. The result is validated like
// NewApproxFrameRate.
func NTSC(rate uint32) (ApproxFrameRate, error) {
	if rate == 0 {
		return ApproxFrameRate{}, errors.New("tick.NTSC", errors.KindInvalidFrameRate, rate)
	}
	return NewApproxFrameRate(float64(rate) * 1000 / 1001)
}

// FPS returns the number of frames per second.
func (r ApproxFrameRate) FPS() float64 {
	return r.fps
}

// Exact returns r as a FrameRate when it is a whole number that evenly
// divides TicksPerSecond.
func (r ApproxFrameRate) Exact() (FrameRate, bool) {
	if r.fps != math.Trunc(r.fps) || r.fps > math.MaxUint32 {
		return FrameRate{}, false
	}
	fr, err := NewFrameRate(int64(r.fps))
	if err != nil {
		return FrameRate{}, false
	}
	return fr, true
}

// FrameAt returns the index of the frame containing t: the last frame whose
// FrameStart is at or before t. A tick produced by FrameStart therefore maps
// back to the same frame, as long as consecutive frame starts stay distinct.
// Frame starts are computed in float64, so that holds only while the rounding
// error at |t| is small next to the frame length: for video rates over
// spans of 2^50 ticks (years at either resolution), but only for about 2^36
// ticks when fps is within a tick per second of TicksPerSecond.
func (r ApproxFrameRate) FrameAt(t Tick) int64 {
	if r.fps == 0 {
		panic("tick: use of zero ApproxFrameRate")
	}
	f := estimateFrame(float64(t) * r.fps / float64(TicksPerSecond))
	// The estimate is off by at most one frame; settle it against the
	// rounded frame starts. Starts beyond the tick range count as after t
	// for positive frames and before t for negative ones.
	for {
		s, err := r.FrameStart(f)
		if (err == nil && s <= t) || (err != nil && f < 0) {
			break
		}
		f--
	}
	for {
		s, err := r.FrameStart(f + 1)
		if (err == nil && s > t) || (err != nil && f >= 0) {
			break
		}
		f++
	}
	return f
}

// FrameStart returns the tick nearest to where frame begins, rounding
// halfway values away from zero. It fails with ErrOverflow when the result
// does not fit in a Tick.
func (r ApproxFrameRate) FrameStart(frame int64) (Tick, error) {
	if r.fps == 0 {
		panic("tick: use of zero ApproxFrameRate")
	}
	t, ok := roundToTick(float64(frame) * float64(TicksPerSecond) / r.fps)
	if !ok {
		return 0, errors.New("tick.ApproxFrameRate.FrameStart", errors.KindOverflow, frame)
	}
	return t, nil
}

// String returns the rate formatted like "29.97fps", with at most three
// decimals.
func (r ApproxFrameRate) String() string {
	return strconv.FormatFloat(math.Round(r.fps*1000)/1000, 'f', -1, 64) + "fps"
}

func estimateFrame(x float64) int64 {
	f := math.Floor(x)
	switch {
	case f >= math.MaxInt64:
		return math.MaxInt64 - 1
	case f < math.MinInt64:
		return math.MinInt64
	default:
		return int64(f)
	}
}
