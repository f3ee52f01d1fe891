package cmd

import (
	"fmt"

	"github.com/go-drift/tick/cmd/tick/internal/config"
)

func init() {
	RegisterCommand(&Command{
		Name:  "check",
		Short: "Validate the project's frame rates",
		Long: `Load tick.yaml and report which of the configured rates are exact.

With strict: true (the default) a rate that does not divide the tick
resolution is an error. With strict: false it is listed as inexact.
TICK_CONFIG overrides the config file location.`,
		Usage: "tick check [dir]",
		Run:   runCheck,
	})
}

func runCheck(args []string) error {
	var root string
	switch len(args) {
	case 0:
		var err error
		if root, err = config.FindProjectRoot(); err != nil {
			return err
		}
	case 1:
		root = args[0]
	default:
		return fmt.Errorf("check takes at most one directory")
	}

	cfg, err := config.Resolve(root)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Project: %s\n", cfg.Name)
	if cfg.ModulePath != "" {
		fmt.Fprintf(stdout, "Module:  %s\n", cfg.ModulePath)
	}
	fmt.Fprintf(stdout, "Strict:  %t\n", cfg.Strict)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Rates:")
	for _, r := range cfg.Rates {
		fmt.Fprintf(stdout, "  %-10s exact    %d ticks/frame\n", r, r.TicksPerFrame().Count())
	}
	for _, n := range cfg.Inexact {
		fmt.Fprintf(stdout, "  %-10s inexact\n", fmt.Sprintf("%dfps", n))
	}
	for _, r := range cfg.Approximate {
		fmt.Fprintf(stdout, "  %-10s approx\n", r)
	}
	return nil
}
