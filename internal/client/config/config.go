package config

import "time"

// Config holds runtime settings for the TerraBond CLI.
//
// Fields:
//   - AuthServiceURL / UserServiceURL / SocialServiceURL: base URLs of the
//     three backend services, including their /api/... prefixes.
//   - RequestTimeout: per-request HTTP timeout.
//   - SessionDBPath: location of the local SQLite database holding the
//     persisted session.
type Config struct {
	AuthServiceURL   string
	UserServiceURL   string
	SocialServiceURL string
	RequestTimeout   time.Duration
	SessionDBPath    string
}

// LoadDefaults populates c with sensible defaults matching a local
// development deployment of the backend services.
func (c *Config) LoadDefaults() {
	c.AuthServiceURL = "http://localhost:8081/api/auth"
	c.UserServiceURL = "http://localhost:8082/api/users"
	c.SocialServiceURL = "http://localhost:8083/api/social"
	c.RequestTimeout = 10 * time.Second
	c.SessionDBPath = "terrabond.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
