// Package main provides a command-line driver for go-tooltip sessions.
//
// Usage:
//
//	tooltip repl [-config file] [-trace level]   Drive a simulated host interactively
//	tooltip live [-config file]                  Run a tooltip in the terminal
//	tooltip help                                 Show help
//
// Examples:
//
//	tooltip repl -config tooltip.yaml   Start the REPL with options from a file
//	tooltip repl -trace Debug           Trace every command and callback
//	tooltip live                        Hover the label in the middle of the screen
package main

import (
	"fmt"
	"os"
)

const version = "0.1.0"

const usage = `tooltip - placement and visibility driver for go-tooltip sessions

Usage:
  tooltip <command> [options]

Commands:
  repl        Drive a session on a simulated host from a prompt
  live        Run a tooltip in this terminal using the mouse
  version     Print version information
  help        Show this help message

Options:
  -config     YAML file with session options
  -trace      Trace level for repl [Debug|Info|Error] (default Info)

Examples:
  tooltip repl                        Start with default options
  tooltip repl -config tooltip.yaml   Load options from a file
  tooltip live -config click.yaml     Click mode in the terminal

For more information, see https://github.com/grindlemire/go-tooltip
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "repl":
		if err := runREPL(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "live":
		if err := runLive(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("tooltip version %s\n", version)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", command)
		fmt.Print(usage)
		os.Exit(1)
	}
}
