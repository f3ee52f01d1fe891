//go:build !tick_lowres

package tick

// TicksPerSecond is the number of ticks in one second.
//
// 3,603,600 is the least common multiple of 1 through 16 and 25, so film,
// PAL, integer NTSC and VR rates all divide it, as do the 11 and 13 factors
// that NTSC timing needs. Build with the tick_lowres tag to select 25,200.
const TicksPerSecond int64 = 3_603_600

// LowResolution reports whether the tick_lowres build tag is active.
const LowResolution = false
