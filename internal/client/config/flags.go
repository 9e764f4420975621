package config

import (
	"flag"
	"os"

	"github.com/campusreg/lostfound/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the registry server (default from Config)
//	-f string   path of the session file (default: per-user config dir)
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-f"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "base URL of the registry server")
	fs.StringVar(&cfg.SessionFile, "f", cfg.SessionFile, "path of the session file")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
