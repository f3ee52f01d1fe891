package tick

import (
	"math/bits"
	"time"

	"github.com/go-drift/tick/pkg/errors"
)

const nanosPerSecond = int64(time.Second)

// FromDuration converts d to ticks, rounding halfway values away from zero.
// The conversion uses 128-bit intermediates, so it is exact whenever d is a
// whole number of ticks.
func FromDuration(d time.Duration) (Tick, error) {
	n, ok := mulDivRound(int64(d), TicksPerSecond, nanosPerSecond)
	if !ok {
		return 0, errors.New("tick.FromDuration", errors.KindOverflow, d)
	}
	return Tick(n), nil
}

// Duration converts t to a time.Duration, rounding to the nearest
// nanosecond. It fails with ErrOverflow beyond roughly ±292 years.
func (t Tick) Duration() (time.Duration, error) {
	n, ok := mulDivRound(int64(t), nanosPerSecond, TicksPerSecond)
	if !ok {
		return 0, errors.New("tick.Duration", errors.KindOverflow, int64(t))
	}
	return time.Duration(n), nil
}

// mulDivRound returns x*m/d rounded half away from zero. m and d must be
// positive.
func mulDivRound(x, m, d int64) (int64, bool) {
	neg := x < 0
	ux := uint64(x)
	if neg {
		ux = -ux
	}
	hi, lo := bits.Mul64(ux, uint64(m))
	if hi >= uint64(d) {
		return 0, false
	}
	q, r := bits.Div64(hi, lo, uint64(d))
	if r >= uint64(d)-r {
		q++
		if q == 0 {
			return 0, false
		}
	}
	if neg {
		if q > 1<<63 {
			return 0, false
		}
		return int64(-q), true
	}
	if q > 1<<63-1 {
		return 0, false
	}
	return int64(q), true
}
