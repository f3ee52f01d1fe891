package timeline

import "math"

// A Curve maps linear clip progress in [0, 1] to eased progress. Set a
// [Clip]'s Curve field to apply one.
//
// Standard curves: [LinearCurve], [Ease], [EaseIn], [EaseOut], [EaseInOut].
// [CubicBezier] builds CSS-style curves, [Steps] quantizes progress and
// [Reverse] mirrors a curve.

// LinearCurve returns linear progress (no easing).
func LinearCurve(t float64) float64 {
	return t
}

// Ease is equivalent to CSS ease.
var Ease = CubicBezier(0.25, 0.1, 0.25, 1.0)

// EaseIn starts slowly and accelerates. Equivalent to CSS ease-in.
var EaseIn = CubicBezier(0.42, 0.0, 1.0, 1.0)

// EaseOut starts quickly and decelerates. Equivalent to CSS ease-out.
var EaseOut = CubicBezier(0.0, 0.0, 0.58, 1.0)

// EaseInOut starts and ends slowly. Equivalent to CSS ease-in-out.
var EaseInOut = CubicBezier(0.42, 0.0, 0.58, 1.0)

// CubicBezier returns an easing function matching CSS cubic-bezier(x1, y1,
// x2, y2). The curve runs from (0,0) to (1,1).
func CubicBezier(x1, y1, x2, y2 float64) func(float64) float64 {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		return bezier(y1, y2, solveBezierX(x1, x2, t))
	}
}

// solveBezierX finds the curve parameter whose x coordinate is x.
func solveBezierX(x1, x2, x float64) float64 {
	const eps = 1e-7

	u := x
	for range 8 {
		dx := bezier(x1, x2, u) - x
		if math.Abs(dx) < eps {
			return clampUnit(u)
		}
		slope := bezierSlope(x1, x2, u)
		if math.Abs(slope) < eps {
			break
		}
		u -= dx / slope
	}

	// Newton stalled; bisect.
	lo, hi := 0.0, 1.0
	u = clampUnit(u)
	for range 12 {
		dx := bezier(x1, x2, u) - x
		if math.Abs(dx) < eps {
			break
		}
		if dx > 0 {
			hi = u
		} else {
			lo = u
		}
		u = (lo + hi) / 2
	}
	return u
}

func bezier(a, b, u float64) float64 {
	v := 1 - u
	return 3*v*v*u*a + 3*v*u*u*b + u*u*u
}

func bezierSlope(a, b, u float64) float64 {
	v := 1 - u
	return 3*v*v*a + 6*v*u*(b-a) + 3*u*u*(1-b)
}

// Steps returns a curve that holds each of n equal steps, like CSS
// steps(n, jump-end). Progress only reaches 1 at the very end.
// Steps panics if n is not positive.
func Steps(n int) func(float64) float64 {
	if n <= 0 {
		panic("timeline: Steps requires n > 0")
	}
	return func(t float64) float64 {
		if t >= 1 {
			return 1
		}
		if t <= 0 {
			return 0
		}
		return math.Floor(t*float64(n)) / float64(n)
	}
}

// Reverse returns the point reflection of curve, turning an ease-in into an
// ease-out.
func Reverse(curve func(float64) float64) func(float64) float64 {
	return func(t float64) float64 {
		return 1 - curve(1-t)
	}
}

func clampUnit(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}
