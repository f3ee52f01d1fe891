package cmd

import (
	"fmt"
	"strconv"

	"github.com/go-drift/tick/pkg/errors"
	"github.com/go-drift/tick/pkg/tick"
)

const defaultRateLimit = 240

func init() {
	RegisterCommand(&Command{
		Name:  "rates",
		Short: "List exact frame rates",
		Long: `List the integer frame rates that land on whole ticks in this build,
up to max (default 240). Pass 0 to list every divisor of the resolution.`,
		Usage: "tick rates [max]",
		Run:   runRates,
	})
}

func runRates(args []string) error {
	var limit uint64 = defaultRateLimit
	switch len(args) {
	case 0:
	case 1:
		n, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			return errors.Wrap("cmd.rates", errors.KindParsing, args[0], err)
		}
		limit = n
	default:
		return fmt.Errorf("rates takes at most one argument")
	}

	for _, r := range tick.SupportedRates(uint32(limit)) {
		fmt.Fprintf(stdout, "%-10s %d ticks/frame\n", r, r.TicksPerFrame().Count())
	}
	return nil
}
