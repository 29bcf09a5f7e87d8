package config

import (
	"flag"
	"io"
	"strings"

	"github.com/dmitrijs2005/gatekeeper/internal/flagx"
)

var serverFlags = flagx.Spec{
	Valued:   []string{"-a", "-l", "-d", "-v", "-rp", "-origins", "-u", "-grace", "-sweep", "-floor"},
	Switches: []string{"-secure-cookie", "-dev"},
}

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string        gRPC bind address (e.g. ":50051")
//	-l string        HTTP bind address (e.g. ":8080")
//	-d string        PostgreSQL DSN, or "memory"
//	-v string        log level (debug, info, warn, error)
//	-rp string       WebAuthn relying party id
//	-origins string  comma separated WebAuthn origins
//	-u string        public base URL used in emailed links
//	-grace duration  session grace window
//	-sweep duration  sweeper interval
//	-floor duration  latency floor for public failures
//	-secure-cookie   mark the session cookie Secure
//	-dev             print undeliverable messages to stderr
//
// Secrets are deliberately not accepted as flags.
func parseFlags(config *Config, args []string) error {
	args = flagx.Filter(args, serverFlags)

	fs := flag.NewFlagSet("gatekeeper", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run gRPC server")
	fs.StringVar(&config.EndpointAddrHTTP, "l", config.EndpointAddrHTTP, "address and port to run HTTP server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.LogLevel, "v", config.LogLevel, "log level")
	fs.StringVar(&config.RPID, "rp", config.RPID, "WebAuthn relying party id")
	origins := fs.String("origins", strings.Join(config.RPOrigins, ","), "WebAuthn origins")
	fs.StringVar(&config.PublicBaseURL, "u", config.PublicBaseURL, "public base URL")
	fs.DurationVar(&config.SessionGrace, "grace", config.SessionGrace, "session grace window")
	fs.DurationVar(&config.SweepInterval, "sweep", config.SweepInterval, "sweep interval")
	fs.DurationVar(&config.FailureFloor, "floor", config.FailureFloor, "failure latency floor")
	fs.BoolVar(&config.CookieSecure, "secure-cookie", config.CookieSecure, "secure session cookie")
	fs.BoolVar(&config.DevMode, "dev", config.DevMode, "development delivery")

	if err := fs.Parse(args); err != nil {
		return err
	}

	config.RPOrigins = splitList(*origins)
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
