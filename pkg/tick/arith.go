package tick

import (
	"math"

	"github.com/go-drift/tick/pkg/errors"
)

// Arithmetic on ticks is checked. A wrapped tick count would corrupt every
// timestamp derived from it, so each operation returns ErrOverflow instead.

// Add returns t+u.
func (t Tick) Add(u Tick) (Tick, error) {
	s := t + u
	if (u > 0 && s < t) || (u < 0 && s > t) {
		return 0, overflow("tick.Add", t)
	}
	return s, nil
}

// Sub returns t-u.
func (t Tick) Sub(u Tick) (Tick, error) {
	d := t - u
	if (u > 0 && d > t) || (u < 0 && d < t) {
		return 0, overflow("tick.Sub", t)
	}
	return d, nil
}

// Mul returns t scaled by the integer factor n.
func (t Tick) Mul(n int64) (Tick, error) {
	p, ok := mul64(int64(t), n)
	if !ok {
		return 0, overflow("tick.Mul", t)
	}
	return Tick(p), nil
}

// Div returns t divided by n, truncated toward zero. Division by zero fails
// with ErrInvalidInput.
func (t Tick) Div(n int64) (Tick, error) {
	if n == 0 {
		return 0, errors.New("tick.Div", errors.KindInvalidInput, n)
	}
	if t == MinTick && n == -1 {
		return 0, overflow("tick.Div", t)
	}
	return t / Tick(n), nil
}

// Scale returns t multiplied by f, rounded half away from zero to the nearest
// tick. The product is computed in float64, so counts above 2^53 lose
// precision before rounding.
func (t Tick) Scale(f float64) (Tick, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errors.New("tick.Scale", errors.KindInvalidInput, f)
	}
	r, ok := roundToTick(float64(t) * f)
	if !ok {
		return 0, overflow("tick.Scale", t)
	}
	return r, nil
}

// DivFloat returns t divided by f, rounded half away from zero.
func (t Tick) DivFloat(f float64) (Tick, error) {
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errors.New("tick.DivFloat", errors.KindInvalidInput, f)
	}
	r, ok := roundToTick(float64(t) / f)
	if !ok {
		return 0, overflow("tick.DivFloat", t)
	}
	return r, nil
}

// Neg returns -t.
func (t Tick) Neg() (Tick, error) {
	if t == MinTick {
		return 0, overflow("tick.Neg", t)
	}
	return -t, nil
}

// Abs returns the absolute value of t.
func (t Tick) Abs() (Tick, error) {
	if t >= 0 {
		return t, nil
	}
	if t == MinTick {
		return 0, overflow("tick.Abs", t)
	}
	return -t, nil
}

func overflow(op string, t Tick) error {
	return errors.New(op, errors.KindOverflow, int64(t))
}

func mul64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	p := a * b
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	if p/b != a {
		return 0, false
	}
	return p, true
}
