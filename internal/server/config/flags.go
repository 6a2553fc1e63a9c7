package config

import (
	"flag"
	"os"

	"github.com/gsbevilaqua83/private-rest-api/internal/flagx"
)

// parseFlags populates server Config fields from command-line flags.
//
// Supported flags:
//
//	-a string     HTTP bind address (e.g., ":5000")
//	-d string     PostgreSQL DSN
//	-l string     log level (debug, info, warn, error)
//	-lf string    log format (json or text)
//	-bc int       bcrypt cost for new passwords
//	-rt duration  HTTP read timeout
//	-wt duration  HTTP write timeout
//	-st duration  graceful shutdown timeout
//	-sr int       attempts for serializable registration transactions
//
// os.Args is filtered with flagx.FilterArgs first, so flags owned by other
// loaders (-c, the seeder's -s) do not break parsing.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-l", "-lf", "-bc", "-rt", "-wt", "-st", "-sr"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.StringVar(&config.LogFormat, "lf", config.LogFormat, "log format: json or text")
	fs.IntVar(&config.BcryptCost, "bc", config.BcryptCost, "bcrypt cost")
	fs.DurationVar(&config.ReadTimeout, "rt", config.ReadTimeout, "HTTP read timeout")
	fs.DurationVar(&config.WriteTimeout, "wt", config.WriteTimeout, "HTTP write timeout")
	fs.DurationVar(&config.ShutdownTimeout, "st", config.ShutdownTimeout, "graceful shutdown timeout")
	fs.IntVar(&config.SerializableRetries, "sr", config.SerializableRetries, "serializable transaction attempts")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
