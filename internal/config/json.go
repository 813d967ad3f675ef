package config

import (
	"encoding/json"
	"os"

	"github.com/cbdowney09-alt/WorkProof/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. After
// parsing, non-empty values are copied into the runtime Config.
type JsonConfig struct {
	StorageDriver string `json:"storage_driver"`
	DatabaseDSN   string `json:"database_dsn"`
	DataDir       string `json:"data_dir"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path comes from the -c or -config flags (flagx.JsonConfigFlags);
// if neither is set, no JSON is loaded. Read or unmarshal errors panic
// (caller should recover if desired). Intended usage is:
// defaults -> parseJson -> parseFlags, where later stages override earlier
// ones.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.StorageDriver != "" {
		cfg.StorageDriver = jc.StorageDriver
	}
	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.DataDir != "" {
		cfg.DataDir = jc.DataDir
	}
}
