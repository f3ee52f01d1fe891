//go:build tick_lowres

package tick

// TicksPerSecond is the number of ticks in one second.
//
// The tick_lowres build uses 25,200, which still divides evenly by the common
// film, PAL, NTSC-integer and VR rates but not by 11 or 13.
const TicksPerSecond int64 = 25_200

// LowResolution reports whether the tick_lowres build tag is active.
const LowResolution = true
