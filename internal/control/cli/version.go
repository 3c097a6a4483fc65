package cli

import (
	"fmt"
	"io"
	"os"
)

// For proper builds, these variables should be set via ldflags.
var version = "development"
var hash = "unknown"

// VersionCommand contains flags for the `version` command line command, for
// `go-flags` to parse command line args into.
type VersionCommand struct{}

// Execute executes the version command.
// (This gets called by `go-flags` when `version` is provided on the command
// line)
func (command *VersionCommand) Execute(args []string) error {
	return writeVersion(os.Stdout)
}

func writeVersion(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s (%s)\n", version, hash)
	return err
}
