package config

import (
	"flag"
	"os"
	"time"

	"github.com/omccomas/terminal/internal/flagx"
)

// parseFlags populates selected client Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the backend API
//	-f string   sqlite database file path
//	-q string   search engine URL prefix
//	-nb         disable the boot sequence
//	-md int     macro step delay, milliseconds
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-f", "-q", "-nb", "-md"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.ServerURL, "a", config.ServerURL, "base URL of the backend API")
	fs.StringVar(&config.DatabasePath, "f", config.DatabasePath, "sqlite database file")
	fs.StringVar(&config.SearchURL, "q", config.SearchURL, "search engine URL prefix")

	noBoot := fs.Bool("nb", !config.BootSequence, "skip the boot sequence")
	macroStepDelay := fs.Int("md", int(config.MacroStepDelay.Milliseconds()), "macro step delay (in milliseconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.BootSequence = !*noBoot
	config.MacroStepDelay = time.Duration(*macroStepDelay) * time.Millisecond
}
