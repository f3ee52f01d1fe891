// Package cmd implements the tick CLI commands.
//
// The command structure follows standard Go CLI patterns with a root command
// that dispatches to subcommands (secs, frame, rates, check).
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/go-drift/tick/pkg/errors"
	"github.com/go-drift/tick/pkg/tick"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Command represents a CLI command.
type Command struct {
	Name        string
	Short       string
	Long        string
	Usage       string
	Run         func(args []string) error
	SubCommands []*Command
}

var rootCmd = &Command{
	Name:  "tick",
	Short: "tick - frame-exact media time",
	Long: `tick converts between seconds, ticks and frame indices. A tick is
1/` + fmt.Sprint(tick.TicksPerSecond) + ` of a second, so every common frame
rate lands on a whole number of ticks.

Use "tick <command> --help" for more information about a command.`,
	Usage: "tick <command> [flags]",
}

// stdout receives command output. Tests replace it.
var stdout io.Writer = os.Stdout

// Commands registered with the CLI.
var commands = make(map[string]*Command)

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	rootCmd.SubCommands = append(rootCmd.SubCommands, cmd)
}

// Execute runs the CLI with the process arguments.
func Execute() error {
	return run(os.Args[1:])
}

func run(args []string) error {
	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	// Handle global flags
	var filteredArgs []string
	for _, arg := range args {
		switch arg {
		case "-h", "--help", "help":
			if len(filteredArgs) == 0 {
				printHelp(rootCmd)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "-v", "--version", "version":
			if len(filteredArgs) == 0 {
				printVersion()
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "--verbose":
			errors.SetHandler(&errors.LogHandler{Verbose: true})
		default:
			filteredArgs = append(filteredArgs, arg)
		}
	}
	args = filteredArgs

	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	// Find and execute the command
	cmdName := args[0]
	cmd, ok := commands[cmdName]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", cmdName)
		printHelp(rootCmd)
		return fmt.Errorf("unknown command: %s", cmdName)
	}

	// Check for help flag on subcommand
	cmdArgs := args[1:]
	for _, arg := range cmdArgs {
		if arg == "-h" || arg == "--help" || arg == "help" {
			printCommandHelp(cmd)
			return nil
		}
	}

	return cmd.Run(cmdArgs)
}

func printVersion() {
	res := "default"
	if tick.LowResolution {
		res = "tick_lowres"
	}
	fmt.Fprintf(stdout, "tick version %s (built %s)\n", Version, BuildTime)
	fmt.Fprintf(stdout, "resolution: %d ticks/s (%s)\n", tick.TicksPerSecond, res)
}

func printHelp(cmd *Command) {
	fmt.Fprintln(stdout, cmd.Long)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Usage:")
	fmt.Fprintf(stdout, "  %s\n", cmd.Usage)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Commands:")
	for _, sub := range cmd.SubCommands {
		fmt.Fprintf(stdout, "  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Flags:")
	fmt.Fprintln(stdout, "  -h, --help           Show help for a command")
	fmt.Fprintln(stdout, "  -v, --version        Show version and tick resolution")
	fmt.Fprintln(stdout, "  --verbose            Include stack traces in error output")
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Environment:")
	fmt.Fprintln(stdout, "  TICK_CONFIG          Config file path (default: tick.yaml in the project root)")
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Examples:")
	fmt.Fprintln(stdout, "  tick secs 1.5             Ticks in one and a half seconds")
	fmt.Fprintln(stdout, "  tick frame 2s 24          Frame shown at 2s at 24fps")
	fmt.Fprintln(stdout, "  tick rates 120            Exact rates up to 120fps")
	fmt.Fprintln(stdout, "  tick check                Validate tick.yaml rates")
}

func printCommandHelp(cmd *Command) {
	fmt.Fprintln(stdout, cmd.Long)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Usage:")
	fmt.Fprintf(stdout, "  %s\n", cmd.Usage)
}
