// Package config handles configuration for the server, including defaults,
// JSON overlay, environment overlay, and command-line flags.
package config

// Config holds runtime settings for the SalaryWatch server.
//
// Fields:
//   - EndpointAddrHTTP: bind address for the public HTTP endpoint.
//   - DatabaseDSN: path to the SQLite database file (or ":memory:").
//   - CORSOrigins: comma-separated list of allowed CORS origins; "*" allows all.
type Config struct {
	EndpointAddrHTTP string
	DatabaseDSN      string
	CORSOrigins      string
}

// LoadDefaults populates Config with sensible development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":3001"
	c.DatabaseDSN = "database.sqlite"
	c.CORSOrigins = "*"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, environment variables (with optional .env file),
// and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
