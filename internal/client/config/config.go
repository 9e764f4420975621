// Package config holds runtime settings for the registry CLI.
package config

// Config holds runtime settings for the lost-and-found CLI.
//
// Fields:
//   - ServerURL: base URL of the registry HTTP API.
//   - SessionFile: where the signed-in session is persisted between runs.
//     Empty means the per-user default location is used.
type Config struct {
	ServerURL   string
	SessionFile string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://localhost:5000"
	c.SessionFile = ""
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
