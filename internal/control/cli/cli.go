// Package cli provides the command-line interface for timeruler.
package cli

// CommandLineOpts are the options and commands go-flags parses the command
// line into.
type CommandLineOpts struct {
	Version bool `short:"v" long:"version" description:"Show the program version"`

	TuiCommand     TuiCommand     `command:"tui" subcommands-optional:"true" description:"Run the interactive ruler in the terminal"`
	PlanCommand    PlanCommand    `command:"plan" subcommands-optional:"true" description:"Print the draw plan of a ruler without a terminal"`
	VersionCommand VersionCommand `command:"version" subcommands-optional:"true" description:"Show the program version"`
}

// Opts are the parsed command line options.
var Opts CommandLineOpts
