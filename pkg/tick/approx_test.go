package tick

import (
	stderrors "errors"
	"math"
	"testing"

	"github.com/go-drift/tick/pkg/errors"
)

func TestNewApproxFrameRateRejects(t *testing.T) {
	for _, fps := range []float64{0, -1, -29.97, math.NaN(), math.Inf(1), math.Inf(-1), float64(TicksPerSecond) + 1} {
		_, err := NewApproxFrameRate(fps)
		if !stderrors.Is(err, errors.ErrInvalidFrameRate) {
			t.Errorf("NewApproxFrameRate(%v) error = %v, want ErrInvalidFrameRate", fps, err)
		}
	}
	for _, base := range []uint32{0, math.MaxUint32} {
		if _, err := NTSC(base); !stderrors.Is(err, errors.ErrInvalidFrameRate) {
			t.Errorf("NTSC(%d) error = %v, want ErrInvalidFrameRate", base, err)
		}
	}
}

func TestApproxIntegerScaledRate(t *testing.T) {
	// 2997 frames per second stands in for 29.97hz scaled by 100.
	r, err := NewApproxFrameRate(2997)
	if err != nil {
		t.Fatal(err)
	}
	hundred := MustFromSeconds(100)
	frames := r.FrameAt(hundred)
	if frames != 299700 {
		t.Fatalf("FrameAt(100s) = %d, want 299700", frames)
	}
	back, err := r.FrameStart(frames)
	if err != nil {
		t.Fatal(err)
	}
	if back != hundred {
		t.Errorf("FrameStart(%d) = %s, want %s", frames, back, hundred)
	}
}

func TestApproxRoundTrip(t *testing.T) {
	for _, base := range []uint32{24, 30, 60} {
		r, err := NTSC(base)
		if err != nil {
			t.Fatal(err)
		}
		prev := MinTick
		for frame := int64(-1000); frame <= 100000; frame++ {
			start, err := r.FrameStart(frame)
			if err != nil {
				t.Fatal(err)
			}
			if got := r.FrameAt(start); got != frame {
				t.Fatalf("%s: frame %d starts at %d which maps to %d", r, frame, start, got)
			}
			if start <= prev {
				t.Fatalf("%s: frame %d does not start after frame %d", r, frame, frame-1)
			}
			if got := r.FrameAt(start - 1); got != frame-1 {
				t.Fatalf("%s: tick before frame %d maps to %d", r, frame, got)
			}
			prev = start
		}
	}
}

func TestApproxRoundTripFarFromOrigin(t *testing.T) {
	near, err := NewApproxFrameRate(float64(TicksPerSecond) - 0.5)
	if err != nil {
		t.Fatal(err)
	}
	type farCase struct {
		rate ApproxFrameRate
		span float64
	}
	tests := []farCase{{near, 1 << 36}}
	for _, base := range []uint32{24, 30, 60, 120, 240} {
		r, err := NTSC(base)
		if err != nil {
			t.Fatal(err)
		}
		tests = append(tests, farCase{r, 1 << 50})
	}

	for _, tt := range tests {
		center := int64(tt.span * tt.rate.FPS() / float64(TicksPerSecond))
		for _, c := range []int64{center, -center} {
			for frame := c - 2000; frame < c+2000; frame++ {
				start, err := tt.rate.FrameStart(frame)
				if err != nil {
					t.Fatal(err)
				}
				if got := tt.rate.FrameAt(start); got != frame {
					t.Fatalf("%s: frame %d starts at %d which maps to %d", tt.rate, frame, start, got)
				}
			}
		}
	}
}

func TestApproxExact(t *testing.T) {
	r, _ := NewApproxFrameRate(60)
	exact, ok := r.Exact()
	if !ok || exact != FPS60 {
		t.Errorf("Exact() = %v, %v; want 60fps, true", exact, ok)
	}
	for _, fps := range []float64{29.97, 17, 1000.5} {
		r, _ := NewApproxFrameRate(fps)
		if _, ok := r.Exact(); ok {
			t.Errorf("%v should not be exact", fps)
		}
	}
}

func TestApproxMatchesExactForDivisors(t *testing.T) {
	approx, _ := NewApproxFrameRate(24)
	for _, tk := range []Tick{0, 1, Second - 1, Second, 7 * Hour, -Second - 1} {
		if a, e := approx.FrameAt(tk), tk.ToFrame(FPS24); a != e {
			t.Errorf("tick %d: approx frame %d, exact frame %d", tk, a, e)
		}
	}
}

func TestApproxString(t *testing.T) {
	tests := []struct {
		base uint32
		want string
	}{
		{24, "23.976fps"},
		{30, "29.97fps"},
		{60, "59.94fps"},
	}
	for _, tt := range tests {
		r, _ := NTSC(tt.base)
		if got := r.String(); got != tt.want {
			t.Errorf("NTSC(%d).String() = %q, want %q", tt.base, got, tt.want)
		}
	}
}

func TestApproxFrameStartOverflow(t *testing.T) {
	r, _ := NewApproxFrameRate(0.001)
	_, err := r.FrameStart(math.MaxInt64 / 2)
	if !stderrors.Is(err, errors.ErrOverflow) {
		t.Errorf("error = %v, want ErrOverflow", err)
	}
}
