// Command tick converts between seconds, ticks and frame indices and checks
// a project's frame rates against the tick resolution.
package main

import (
	"os"

	"github.com/go-drift/tick/cmd/tick/cmd"
	"github.com/go-drift/tick/pkg/errors"
)

func main() {
	os.Exit(run())
}

func run() (code int) {
	defer errors.RecoverWithCallback("main", func(any) { code = 2 })
	if err := cmd.Execute(); err != nil {
		errors.Report("tick", err)
		return 1
	}
	return 0
}
