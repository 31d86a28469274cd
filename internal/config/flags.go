package config

import (
	"flag"
	"os"

	"github.com/salarywatch/backend/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":3001")
//	-d string   SQLite database path
//	-o string   comma-separated allowed CORS origins
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-o"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database path")
	fs.StringVar(&config.CORSOrigins, "o", config.CORSOrigins, "allowed CORS origins")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
