package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/wordtrail/internal/flagx"
)

// ownFlags are the flags parseFlags reads; everything else in args is left
// to the command parser.
var ownFlags = []string{
	"-a", "--a", "-server", "--server",
	"-d", "--d", "-store", "--store",
	"-l", "--l", "-log-level", "--log-level",
}

// parseFlags overlays cfg with values from the command-line flags.
//
//	-a, --server string      backend base URL
//	-d, --store string       local store path
//	-l, --log-level string   log level
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ServerBaseURL, "a", cfg.ServerBaseURL, "backend base URL")
	fs.StringVar(&cfg.ServerBaseURL, "server", cfg.ServerBaseURL, "backend base URL")
	fs.StringVar(&cfg.StorePath, "d", cfg.StorePath, "local store path")
	fs.StringVar(&cfg.StorePath, "store", cfg.StorePath, "local store path")
	fs.StringVar(&cfg.Log.Level, "l", cfg.Log.Level, "log level")
	fs.StringVar(&cfg.Log.Level, "log-level", cfg.Log.Level, "log level")

	return fs.Parse(flagx.FilterArgs(args, ownFlags))
}
