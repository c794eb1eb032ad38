// Command jamo converts Korean text between syllables and jamo.
package main

import (
	"os"

	"github.com/gg582/hanjamo/internal/cli"
	"github.com/gg582/hanjamo/internal/logging"
)

// Set with -ldflags at release time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	rootCmd := cli.NewRootCommand(cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	})
	if err := rootCmd.Execute(); err != nil {
		logging.Default().Error("command failed", logging.FieldError, err)
		return 1
	}
	return 0
}
