package tick

import (
	stderrors "errors"
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/go-drift/tick/pkg/errors"
)

func TestFromSecondsRoundTrip(t *testing.T) {
	for _, secs := range []float64{0, 1, -1, 0.5, 2.5, 1.5, 100, 3600, -86400} {
		got, err := FromSeconds(secs)
		if err != nil {
			t.Fatalf("FromSeconds(%v): %v", secs, err)
		}
		if got.Seconds() != secs {
			t.Errorf("FromSeconds(%v).Seconds() = %v", secs, got.Seconds())
		}
	}
}

func TestFromSecondsWholeTicks(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for range 10000 {
		// Keep counts well inside float64's exact integer range.
		k := rng.Int64N(1<<50) - 1<<49
		secs := float64(k) / float64(TicksPerSecond)
		got, err := FromSeconds(secs)
		if err != nil {
			t.Fatalf("FromSeconds(%v): %v", secs, err)
		}
		if got.Count() != k {
			t.Fatalf("FromSeconds(%d/TicksPerSecond) = %d", k, got.Count())
		}
		if got.Seconds() != secs {
			t.Fatalf("Seconds() = %v, want %v", got.Seconds(), secs)
		}
		again, _ := FromSeconds(got.Seconds())
		if again != got {
			t.Fatalf("second quantization moved %d to %d", got, again)
		}
	}
}

func TestFromSecondsRounding(t *testing.T) {
	half := 0.5 / float64(TicksPerSecond)
	tests := []struct {
		secs float64
		want Tick
	}{
		{half, 1},
		{-half, -1},
		{half * 0.9, 0},
		{-half * 0.9, 0},
		{3 * half, 2},
	}
	for _, tt := range tests {
		got, err := FromSeconds(tt.secs)
		if err != nil {
			t.Fatalf("FromSeconds(%v): %v", tt.secs, err)
		}
		if got != tt.want {
			t.Errorf("FromSeconds(%v) = %d, want %d", tt.secs, got, tt.want)
		}
	}
}

func TestFromSecondsInvalid(t *testing.T) {
	for _, secs := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := FromSeconds(secs)
		if !stderrors.Is(err, errors.ErrInvalidInput) {
			t.Errorf("FromSeconds(%v) error = %v, want ErrInvalidInput", secs, err)
		}
		if stderrors.Is(err, errors.ErrOverflow) {
			t.Errorf("FromSeconds(%v) should not report overflow", secs)
		}
	}
	for _, secs := range []float64{1e300, -1e300, math.MaxInt64} {
		_, err := FromSeconds(secs)
		if !stderrors.Is(err, errors.ErrOverflow) {
			t.Errorf("FromSeconds(%v) error = %v, want ErrOverflow", secs, err)
		}
	}
}

func TestMustFromSecondsPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for NaN")
		}
	}()
	MustFromSeconds(math.NaN())
}

func TestToFrame(t *testing.T) {
	tests := []struct {
		secs float64
		rate FrameRate
		want int64
	}{
		{1.0, FPS120, 120},
		{1.0, FPS60, 60},
		{0.5, FPS30, 15},
		{1.0, FPS24, 24},
		{2.0, FPS30, 60},
		{0.5, FPS120, 60},
		{1.0, FPS25, 25},
		{0, FPS60, 0},
		{-1.0, FPS60, -60},
	}
	for _, tt := range tests {
		ticks := MustFromSeconds(tt.secs)
		got := ticks.ToFrame(tt.rate)
		if got != tt.want {
			t.Errorf("%s at %vs = frame %d, want %d", tt.rate, tt.secs, got, tt.want)
		}
		back, err := FromFrame(got, tt.rate)
		if err != nil {
			t.Fatalf("FromFrame(%d, %s): %v", got, tt.rate, err)
		}
		if back != ticks {
			t.Errorf("FromFrame(%d, %s) = %d, want %d", got, tt.rate, back, ticks)
		}
	}
}

func TestToFrameFloorsNegative(t *testing.T) {
	tpf := FPS60.TicksPerFrame()
	tests := []struct {
		t    Tick
		want int64
	}{
		{-1, -1},
		{-tpf, -1},
		{-tpf - 1, -2},
		{tpf - 1, 0},
		{tpf, 1},
	}
	for _, tt := range tests {
		if got := tt.t.ToFrame(FPS60); got != tt.want {
			t.Errorf("%s.ToFrame(60fps) = %d, want %d", tt.t, got, tt.want)
		}
	}
}

func TestOneSecondIsExact(t *testing.T) {
	sixty, err := FromFrame(60, FPS60)
	if err != nil {
		t.Fatal(err)
	}
	if sixty != Second {
		t.Errorf("60 frames at 60fps = %d ticks, want %d", sixty, Second)
	}
	if sixty.ToFrame(FPS60) != 60 {
		t.Errorf("round trip = %d, want 60", sixty.ToFrame(FPS60))
	}
}

func sampleTicks(rng *rand.Rand, n int) []Tick {
	ticks := []Tick{0, 1, -1, Second, -Second, Hour, -Hour}
	for range n {
		ticks = append(ticks, Tick(rng.Int64N(1<<50)-1<<49))
	}
	return ticks
}

func TestNoStrobing(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	ticks := sampleTicks(rng, 500)
	for _, r := range SupportedRates(1000) {
		if TicksPerSecond%int64(r.Rate()) != 0 {
			t.Fatalf("%s does not divide TicksPerSecond", r)
		}
		tpf := r.TicksPerFrame()
		for _, tk := range ticks {
			frame := tk.ToFrame(r)
			start, err := FromFrame(frame, r)
			if err != nil {
				t.Fatalf("FromFrame(%d, %s): %v", frame, r, err)
			}
			if got := start.ToFrame(r); got != frame {
				t.Fatalf("%s: frame %d starts at %d which maps to frame %d", r, frame, start, got)
			}
			if tk < start || tk >= start+tpf {
				t.Fatalf("%s: tick %d outside frame %d [%d, %d)", r, tk, frame, start, start+tpf)
			}
		}
	}
}

func TestToFrameMonotonic(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	ticks := sampleTicks(rng, 1000)
	slices.Sort(ticks)
	for _, r := range []FrameRate{FPS24, FPS25, FPS30, FPS60, FPS144, FPS240} {
		prev := ticks[0].ToFrame(r)
		for _, tk := range ticks[1:] {
			f := tk.ToFrame(r)
			if f < prev {
				t.Fatalf("%s: frame went backwards at %d (%d < %d)", r, tk, f, prev)
			}
			prev = f
		}
	}
}

func TestNTSCVector(t *testing.T) {
	// One 29.97hz frame stretched by the 1001/1000 pull-down.
	ticks := MustFromSeconds(1001.0 / 1000.0 * (1.0 / 29.97))
	frame := ticks.ToFrame(FPS30)
	if frame != 1 {
		t.Fatalf("frame = %d, want 1", frame)
	}
	start, err := FromFrame(frame, FPS30)
	if err != nil {
		t.Fatal(err)
	}
	if start != FPS30.TicksPerFrame() {
		t.Errorf("frame 1 starts at %d, want %d", start, FPS30.TicksPerFrame())
	}
	if ticks.Truncate(FPS30) != start {
		t.Errorf("Truncate = %d, want %d", ticks.Truncate(FPS30), start)
	}
}

func TestNTSCFactors(t *testing.T) {
	if LowResolution {
		t.Skip("11 and 13 do not divide the low resolution")
	}
	for _, rate := range []int64{11, 13, 143, 1001} {
		r, err := NewFrameRate(rate)
		if err != nil {
			t.Fatalf("NewFrameRate(%d): %v", rate, err)
		}
		for _, frame := range []int64{0, 1, 1000, 29970, -7} {
			start, err := FromFrame(frame, r)
			if err != nil {
				t.Fatal(err)
			}
			if int64(start)%int64(r.TicksPerFrame()) != 0 {
				t.Errorf("%s frame %d starts off a tick boundary", r, frame)
			}
			if start.ToFrame(r) != frame {
				t.Errorf("%s frame %d round-tripped to %d", r, frame, start.ToFrame(r))
			}
		}
	}
}

func TestFromFrameOverflow(t *testing.T) {
	_, err := FromFrame(math.MaxInt64, FPS60)
	if !stderrors.Is(err, errors.ErrOverflow) {
		t.Errorf("error = %v, want ErrOverflow", err)
	}
}

func TestTruncateAndRound(t *testing.T) {
	tpf := FPS60.TicksPerFrame()
	tests := []struct {
		t         Tick
		truncated Tick
		rounded   Tick
	}{
		{0, 0, 0},
		{tpf, tpf, tpf},
		{tpf + 1, tpf, tpf},
		{tpf + tpf/2, tpf, 2 * tpf},
		{2*tpf - 1, tpf, 2 * tpf},
		{-1, -tpf, 0},
		{-tpf/2 - 1, -tpf, -tpf},
		{-tpf, -tpf, -tpf},
		{-tpf - 1, -2 * tpf, -tpf},
		{MaxTick, MaxTick - MaxTick%tpf, MaxTick - MaxTick%tpf},
	}
	for _, tt := range tests {
		if got := tt.t.Truncate(FPS60); got != tt.truncated {
			t.Errorf("%s.Truncate = %d, want %d", tt.t, got, tt.truncated)
		}
		if got := tt.t.Round(FPS60); got != tt.rounded {
			t.Errorf("%s.Round = %d, want %d", tt.t, got, tt.rounded)
		}
	}
}

func TestTruncateMatchesToFrame(t *testing.T) {
	for _, r := range []FrameRate{FPS24, FPS60, MustFrameRate(7)} {
		tpf := r.TicksPerFrame()
		for _, at := range []Tick{0, 1, -1, tpf - 1, -tpf + 1, -tpf, 5*tpf + 3, -5*tpf - 3, Hour + 1, -Hour - 1} {
			want, err := FromFrame(at.ToFrame(r), r)
			if err != nil {
				t.Fatal(err)
			}
			if got := at.Truncate(r); got != want {
				t.Errorf("%s.Truncate(%s) = %d, want %d", at, r, got, want)
			}
			if got := at.Truncate(r); got > at || at-got >= tpf {
				t.Errorf("%s.Truncate(%s) = %d is not the start of its frame", at, r, got)
			}
		}
	}
}

func TestTruncateSaturates(t *testing.T) {
	// MinTick is not a multiple of the 60fps frame length in either build.
	if got := MinTick.Truncate(FPS60); got != MinTick {
		t.Errorf("MinTick.Truncate(60fps) = %d, want MinTick", got)
	}
}

func TestRoundSaturates(t *testing.T) {
	fps1 := MustFrameRate(1)
	if got := MaxTick.Round(fps1); got != MaxTick {
		t.Errorf("MaxTick.Round(1fps) = %d, want MaxTick", got)
	}
	if got := MinTick.Round(fps1); got != MinTick {
		t.Errorf("MinTick.Round(1fps) = %d, want MinTick", got)
	}
}

func TestCompare(t *testing.T) {
	a, b := New(1), New(2)
	if a.Compare(b) != -1 || b.Compare(a) != 1 || a.Compare(a) != 0 {
		t.Error("Compare ordering is wrong")
	}
	if !a.Before(b) || a.After(b) || !b.After(a) {
		t.Error("Before/After ordering is wrong")
	}
}

func TestSpanConstants(t *testing.T) {
	if Second.Count() != TicksPerSecond {
		t.Errorf("Second = %d", Second)
	}
	if Hour.Seconds() != 3600 {
		t.Errorf("Hour.Seconds() = %v", Hour.Seconds())
	}
}
