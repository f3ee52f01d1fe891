package cmd

import (
	"fmt"
	"strconv"

	"github.com/go-drift/tick/pkg/errors"
	"github.com/go-drift/tick/pkg/tick"
)

func init() {
	RegisterCommand(&Command{
		Name:  "secs",
		Short: "Convert seconds to ticks",
		Long: `Convert one or more durations in seconds to tick counts.

Values are rounded to the nearest tick, halves away from zero.`,
		Usage: "tick secs <seconds>...",
		Run:   runSecs,
	})
}

func runSecs(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("secs requires at least one value")
	}
	for _, arg := range args {
		secs, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return errors.Wrap("cmd.secs", errors.KindParsing, arg, err)
		}
		t, err := tick.FromSeconds(secs)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "%ss = %d ticks\n", arg, t.Count())
	}
	return nil
}
