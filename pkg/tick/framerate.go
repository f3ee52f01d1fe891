package tick

import (
	"cmp"
	stderrors "errors"
	"math"
	"slices"
	"strconv"
	"time"

	"github.com/go-drift/tick/pkg/errors"
)

// FrameRate is a frames-per-second value that evenly divides
// [TicksPerSecond]. Every frame at a FrameRate is a whole number of ticks
// long, so frame indexing never strobes.
//
// Construct FrameRates with [NewFrameRate] or [MustFrameRate]. The zero
// FrameRate is invalid and panics when used for conversion.
type FrameRate struct {
	rate uint32
}

var errNotDivisor = stderrors.New("rate does not evenly divide the tick resolution")

// Frame rates valid under both the default and the tick_lowres resolution.
var (
	FPS6   = MustFrameRate(6)
	FPS8   = MustFrameRate(8)
	FPS12  = MustFrameRate(12)
	FPS24  = MustFrameRate(24)
	FPS25  = MustFrameRate(25)
	FPS30  = MustFrameRate(30)
	FPS48  = MustFrameRate(48)
	FPS50  = MustFrameRate(50)
	FPS60  = MustFrameRate(60)
	FPS72  = MustFrameRate(72)
	FPS90  = MustFrameRate(90)
	FPS120 = MustFrameRate(120)
	FPS144 = MustFrameRate(144)
	FPS240 = MustFrameRate(240)
)

// NewFrameRate validates rate and returns it as a FrameRate. It fails with
// ErrInvalidFrameRate when rate is not positive, does not fit in a uint32, or
// does not evenly divide TicksPerSecond.
func NewFrameRate(rate int64) (FrameRate, error) {
	if rate <= 0 || rate > math.MaxUint32 {
		return FrameRate{}, errors.New("tick.NewFrameRate", errors.KindInvalidFrameRate, rate)
	}
	if TicksPerSecond%rate != 0 {
		return FrameRate{}, errors.Wrap("tick.NewFrameRate", errors.KindInvalidFrameRate, rate,
			errNotDivisor)
	}
	return FrameRate{rate: uint32(rate)}, nil
}

// MustFrameRate is like NewFrameRate but panics on error.
func MustFrameRate(rate int64) FrameRate {
	r, err := NewFrameRate(rate)
	if err != nil {
		panic(err)
	}
	return r
}

// Rate returns the number of frames per second.
func (r FrameRate) Rate() uint32 {
	return r.rate
}

// IsZero reports whether r is the invalid zero FrameRate.
func (r FrameRate) IsZero() bool {
	return r.rate == 0
}

// TicksPerFrame returns the exact length of one frame.
func (r FrameRate) TicksPerFrame() Tick {
	if r.rate == 0 {
		panic("tick: use of zero FrameRate")
	}
	return Tick(TicksPerSecond / int64(r.rate))
}

// FrameDuration returns the length of one frame as a time.Duration, rounded
// to the nearest nanosecond.
func (r FrameRate) FrameDuration() time.Duration {
	// A single frame is at most one second, so this cannot overflow.
	d, _ := r.TicksPerFrame().Duration()
	return d
}

// String returns the rate formatted like "60fps".
func (r FrameRate) String() string {
	return strconv.FormatUint(uint64(r.rate), 10) + "fps"
}

// FrameAt implements [Rate].
func (r FrameRate) FrameAt(t Tick) int64 {
	return t.ToFrame(r)
}

// FrameStart implements [Rate].
func (r FrameRate) FrameStart(frame int64) (Tick, error) {
	return FromFrame(frame, r)
}

// SupportedRates returns every FrameRate up to and including limit, in
// ascending order. A limit of zero returns all of them.
func SupportedRates(limit uint32) []FrameRate {
	var rates []FrameRate
	for d := int64(1); d*d <= TicksPerSecond; d++ {
		if TicksPerSecond%d != 0 {
			continue
		}
		rates = append(rates, FrameRate{rate: uint32(d)})
		if q := TicksPerSecond / d; q != d {
			rates = append(rates, FrameRate{rate: uint32(q)})
		}
	}
	slices.SortFunc(rates, func(a, b FrameRate) int {
		return cmp.Compare(a.rate, b.rate)
	})
	if limit == 0 {
		return rates
	}
	n, found := slices.BinarySearchFunc(rates, limit, func(r FrameRate, target uint32) int {
		return cmp.Compare(r.rate, target)
	})
	if found {
		n++
	}
	return rates[:n]
}
