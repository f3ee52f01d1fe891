// Package tick provides a fixed-point representation of time where each
// second is divided into [TicksPerSecond] ticks.
//
// The resolution is a common multiple of the frame and refresh rates used in
// practice, so a frame boundary at any of those rates lands exactly on a tick
// boundary. Converting between ticks and frame indices is integer arithmetic
// with no remainder, and timing built on ticks never drifts or strobes no
// matter how long playback runs. The only rounding in the package happens when
// a floating-point second value is first quantized with [FromSeconds].
//
// A [Tick] represents exactly:
//
//   - 24hz and 48hz for film.
//   - 6hz, 8hz and 12hz for animating on 4s, 3s and 2s.
//   - 25hz and 50hz for PAL television.
//   - 30hz and 60hz for web video and NTSC-region television.
//   - 72hz, 90hz, 120hz, 144hz and 240hz for headsets and high refresh
//     displays.
//
// # Frame rates
//
// [FrameRate] is the strict rate type. [NewFrameRate] rejects any rate that
// does not evenly divide [TicksPerSecond], so every rate it accepts has an
// integral number of ticks per frame:
//
//	rate, err := tick.NewFrameRate(120)
//	if err != nil {
//	    return err
//	}
//	t := tick.MustFromSeconds(1)
//	frame := t.ToFrame(rate) // 120
//
// Rates such as 29.97hz have no integral frame length at any practical
// resolution. [ApproxFrameRate] handles them as an explicit opt-in, rounding
// to the nearest tick on every conversion.
//
// # Build configuration
//
// Building with the tick_lowres tag switches [TicksPerSecond] to 25,200,
// which keeps tick magnitudes small at the cost of dropping rates with 11 or
// 13 as a factor:
//
//	go build -tags tick_lowres ./...
//
// # Errors
//
// Failures are returned as *errors.TickError values from
// github.com/go-drift/tick/pkg/errors and can be matched with errors.Is
// against ErrInvalidFrameRate, ErrInvalidInput and ErrOverflow. Arithmetic
// never wraps silently.
package tick
