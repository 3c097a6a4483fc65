package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/timeruler/internal/control/cli"
)

func main() {
	// stderr until a command (tui) redirects it
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	parser := flags.NewParser(&cli.Opts, flags.Default)
	parser.SubcommandsOptional = true

	_, err := parser.Parse()
	switch {
	case flags.WroteHelp(err):
		os.Exit(0)
	case err != nil:
		fmt.Fprintf(os.Stderr, "fatal error (e.g. flag parsing):\n > %s\n", err.Error())
		os.Exit(1)
	}

	var fallback flags.Commander
	switch {
	case cli.Opts.Version:
		fallback = &cli.VersionCommand{}
	case parser.Active == nil:
		fallback = &cli.Opts.TuiCommand
	default:
		return
	}
	if err := fallback.Execute(nil); err != nil {
		fmt.Fprintf(os.Stderr, "exited with error:\n > %s\n", err.Error())
		os.Exit(1)
	}
}
