package config

import (
	"flag"
	"os"

	"github.com/gsbevilaqua83/private-rest-api/internal/flagx"
)

// parseFlags populates Config fields from -a and -t. os.Args is filtered with
// flagx.FilterArgs first so other flags do not interfere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "base URL of the API server")
	fs.DurationVar(&cfg.RequestTimeout, "t", cfg.RequestTimeout, "request timeout")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
