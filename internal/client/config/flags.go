package config

import (
	"flag"
	"os"
	"time"

	"github.com/terrabond/terrabond-cli/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Note: the function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, to avoid interference with other
// components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-u", "-s", "-t", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.AuthServiceURL, "a", cfg.AuthServiceURL, "base URL of the auth service")
	fs.StringVar(&cfg.UserServiceURL, "u", cfg.UserServiceURL, "base URL of the user service")
	fs.StringVar(&cfg.SocialServiceURL, "s", cfg.SocialServiceURL, "base URL of the social service")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.SessionDBPath, "d", cfg.SessionDBPath, "path of the local session database")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
