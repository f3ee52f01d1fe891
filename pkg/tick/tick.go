package tick

import (
	"math"

	"github.com/go-drift/tick/pkg/errors"
)

// Tick is a count of 1/[TicksPerSecond] second intervals since an arbitrary
// origin. Negative values are allowed, as editors and animation systems
// routinely place content before time zero.
//
// Ticks are plain values: compare them with ==, < and friends, copy them
// freely, and share them between goroutines without synchronization.
type Tick int64

// Common tick spans.
const (
	Second Tick = Tick(TicksPerSecond)
	Minute      = 60 * Second
	Hour        = 60 * Minute
)

// Bounds of the representable range.
const (
	MinTick Tick = math.MinInt64
	MaxTick Tick = math.MaxInt64
)

// New returns a Tick holding count ticks.
func New(count int64) Tick {
	return Tick(count)
}

// FromSeconds quantizes secs to the nearest tick, rounding halfway values
// away from zero. NaN and infinite inputs fail with ErrInvalidInput; values
// beyond the int64 tick range fail with ErrOverflow.
func FromSeconds(secs float64) (Tick, error) {
	if math.IsNaN(secs) || math.IsInf(secs, 0) {
		return 0, errors.New("tick.FromSeconds", errors.KindInvalidInput, secs)
	}
	t, ok := roundToTick(secs * float64(TicksPerSecond))
	if !ok {
		return 0, errors.New("tick.FromSeconds", errors.KindOverflow, secs)
	}
	return t, nil
}

// MustFromSeconds is like FromSeconds but panics on error. It is intended for
// constant-like values in initializers and tests.
func MustFromSeconds(secs float64) Tick {
	t, err := FromSeconds(secs)
	if err != nil {
		panic(err)
	}
	return t
}

// Seconds returns the tick count as floating-point seconds.
func (t Tick) Seconds() float64 {
	return float64(t) / float64(TicksPerSecond)
}

// Count returns the raw tick count.
func (t Tick) Count() int64 {
	return int64(t)
}

// Compare returns -1 if t is before u, +1 if t is after u and 0 if they are
// equal.
func (t Tick) Compare(u Tick) int {
	switch {
	case t < u:
		return -1
	case t > u:
		return 1
	default:
		return 0
	}
}

// Before reports whether t is earlier than u.
func (t Tick) Before(u Tick) bool { return t < u }

// After reports whether t is later than u.
func (t Tick) After(u Tick) bool { return t > u }

// ToFrame returns the index of the frame at rate r that contains t, that is
// the number of whole frames between the origin and t. Negative ticks map to
// negative frames with floor semantics, so frame -1 covers the interval just
// before the origin.
//
// The result is exact: TicksPerFrame is an integer for every FrameRate.
func (t Tick) ToFrame(r FrameRate) int64 {
	return floorDiv(int64(t), int64(r.TicksPerFrame()))
}

// FromFrame returns the tick at which frame starts at rate r. It fails with
// ErrOverflow when the result does not fit in a Tick.
func FromFrame(frame int64, r FrameRate) (Tick, error) {
	n, ok := mul64(frame, int64(r.TicksPerFrame()))
	if !ok {
		return 0, errors.New("tick.FromFrame", errors.KindOverflow, frame)
	}
	return Tick(n), nil
}

// Truncate returns the start of the frame at rate r that contains t, so
// t.Truncate(r) equals FromFrame(t.ToFrame(r), r). Negative ticks round
// down, away from zero. The result saturates at MinTick when that frame
// starts before the representable range.
func (t Tick) Truncate(r FrameRate) Tick {
	m := int64(r.TicksPerFrame())
	rem := int64(t) % m
	if rem >= 0 {
		return t - Tick(rem)
	}
	if t1 := t - Tick(m+rem); t1 < t {
		return t1
	}
	return MinTick
}

// Round returns t rounded to the nearest frame boundary at rate r, with
// halfway values rounded away from zero. Like time.Duration.Round, the
// result saturates at MinTick or MaxTick when the boundary is out of range.
func (t Tick) Round(r FrameRate) Tick {
	m := int64(r.TicksPerFrame())
	rem := int64(t) % m
	if rem < 0 {
		rem = -rem
		if rem+rem < m {
			return t + Tick(rem)
		}
		if t1 := t - Tick(m) + Tick(rem); t1 < t {
			return t1
		}
		return MinTick
	}
	if rem+rem < m {
		return t - Tick(rem)
	}
	if t1 := t + Tick(m) - Tick(rem); t1 > t {
		return t1
	}
	return MaxTick
}

// roundToTick rounds x half away from zero and reports whether it fits.
func roundToTick(x float64) (Tick, bool) {
	r := math.Round(x)
	// float64(math.MaxInt64) rounds up to 2^63, which is out of range.
	if r >= math.MaxInt64 || r < math.MinInt64 {
		return 0, false
	}
	return Tick(r), true
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
