package timeline

import (
	"math"

	"github.com/go-drift/tick/pkg/tick"
)

// Tween interpolates between Begin and End values based on clip progress.
//
// Use the helper constructors ([TweenFloat64], [TweenTick]) for common types,
// or create custom tweens with a Lerp function.
type Tween[T any] struct {
	// Begin is the starting value (when t = 0).
	Begin T
	// End is the ending value (when t = 1).
	End T
	// Lerp linearly interpolates between Begin and End. Receives the begin value,
	// end value, and progress t in [0, 1]. Returns the interpolated value.
	Lerp func(a, b T, t float64) T
}

// Evaluate returns the interpolated value at t (0.0 to 1.0).
func (tw *Tween[T]) Evaluate(t float64) T {
	if tw.Lerp == nil {
		return tw.End
	}
	return tw.Lerp(tw.Begin, tw.End, t)
}

// Transform returns the interpolated value at tick at within clip.
func (tw *Tween[T]) Transform(clip *Clip, at tick.Tick) T {
	return tw.Evaluate(clip.Progress(at))
}

// LerpFloat64 linearly interpolates between two float64 values.
func LerpFloat64(a, b float64, t float64) float64 {
	return a + (b-a)*t
}

// LerpTick interpolates between two ticks, rounding to the nearest tick.
// The endpoints are returned exactly at t = 0 and t = 1.
func LerpTick(a, b tick.Tick, t float64) tick.Tick {
	switch t {
	case 0:
		return a
	case 1:
		return b
	}
	return a + tick.Tick(math.Round(float64(b-a)*t))
}

// TweenFloat64 creates a tween for float64 values.
func TweenFloat64(begin, end float64) *Tween[float64] {
	return &Tween[float64]{
		Begin: begin,
		End:   end,
		Lerp:  LerpFloat64,
	}
}

// TweenTick creates a tween for tick values, such as a playhead retimed
// across a clip.
func TweenTick(begin, end tick.Tick) *Tween[tick.Tick] {
	return &Tween[tick.Tick]{
		Begin: begin,
		End:   end,
		Lerp:  LerpTick,
	}
}
