package cmd

import (
	"fmt"

	"github.com/go-drift/tick/pkg/tick"
)

func init() {
	RegisterCommand(&Command{
		Name:  "frame",
		Short: "Show the frame displayed at a tick",
		Long: `Show which frame is displayed at a point in time.

The time is a tick count ("7207200") or seconds with an "s" suffix ("2s").
The rate must divide the tick resolution unless --approx is given, in which
case fractional rates such as 29.97 are accepted.`,
		Usage: "tick frame <ticks|Ns> <fps> [--approx]",
		Run:   runFrame,
	})
}

func runFrame(args []string) error {
	approx := false
	var positional []string
	for _, arg := range args {
		if arg == "--approx" {
			approx = true
			continue
		}
		positional = append(positional, arg)
	}
	if len(positional) != 2 {
		return fmt.Errorf("frame requires a time and a rate")
	}

	at, err := tick.Parse(positional[0])
	if err != nil {
		return err
	}

	var rate tick.Rate
	if approx {
		rate, err = tick.ParseApproxFrameRate(positional[1])
	} else {
		rate, err = tick.ParseFrameRate(positional[1])
	}
	if err != nil {
		return err
	}

	frame := rate.FrameAt(at)
	start, err := rate.FrameStart(frame)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "frame: %d\n", frame)
	fmt.Fprintf(stdout, "rate:  %s\n", rate)
	fmt.Fprintf(stdout, "start: %d ticks\n", start.Count())
	return nil
}
