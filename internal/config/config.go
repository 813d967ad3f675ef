package config

// Config holds runtime settings for the WorkProof CLI.
//
// Fields:
//   - StorageDriver: "sqlite" (local file) or "postgres".
//   - DatabaseDSN: sqlite file path or postgres connection string.
//   - DataDir: directory for imported timecard photos.
type Config struct {
	StorageDriver string
	DatabaseDSN   string
	DataDir       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.StorageDriver = "sqlite"
	c.DatabaseDSN = "workproof.db"
	c.DataDir = "."
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
