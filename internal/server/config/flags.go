package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/bookmarkd/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-d string   PostgreSQL DSN (empty selects the in-memory store)
//	-s string   JWT HMAC secret key
//	-t int      access token validity, minutes
//	-o string   comma-separated allowed CORS origins
//	-release    run the HTTP router in release mode
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with flags handled elsewhere (such as
// -c/-config). Duration flags are accepted as integers in minutes and then
// converted to time.Duration values.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-t", "-o", "-release"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	accessTokenValidityDuration := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access_token_validity_duration (in minutes)")

	fs.StringVar(&config.CORSAllowedOrigins, "o", config.CORSAllowedOrigins, "allowed CORS origins (comma-separated)")
	fs.BoolVar(&config.ReleaseMode, "release", config.ReleaseMode, "run in release mode")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.AccessTokenValidityDuration = time.Duration(*accessTokenValidityDuration) * time.Minute
}
